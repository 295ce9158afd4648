package v1

import (
	"errors"
	"net/http"

	"github.com/automacao-pmo/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no recurso matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errRecursoIDParameter = errors.New("the recurso_id parameter must be set")
	errAnoParameter       = errors.New("the ano parameter must be set to a valid year")
	errMesParameter       = errors.New("the mes parameter must be a month between 1 and 12")
	errHorasDiaParameter  = errors.New("the horas_dia parameter must be a positive number")
	errJanelaInvalida     = errors.New("mes_fim cannot be before mes_inicio")
	errSemAlocacoes       = errors.New("there are no alocacoes for this recurso")
	errApontamentoJira    = errors.New("JIRA-sourced apontamentos cannot be changed")
	errDimTempoVazio      = errors.New("dim_tempo has no business days for this year, populate it first")
)

// Login errors
var errCredenciaisInvalidas = errors.New("invalid email or password")
