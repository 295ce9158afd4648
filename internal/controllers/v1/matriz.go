package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/metrics"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/automacao-pmo/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlanejamentoMensalEntry is one (year, month, hours) planned figure.
type PlanejamentoMensalEntry struct {
	Ano             int             `json:"ano" example:"2025"`
	Mes             int             `json:"mes" example:"2"`
	HorasPlanejadas decimal.Decimal `json:"horas_planejadas" example:"35.5"`
}

// MatrizProjeto is the planning view of one project of the resource.
type MatrizProjeto struct {
	ProjetoID          uint64                    `json:"projeto_id" example:"4312"`
	StatusAlocacaoID   *uint64                   `json:"status_alocacao_id" example:"1"`
	Observacao         string                    `json:"observacao" example:"Atualização"`
	EsforcoEstimado    decimal.NullDecimal       `json:"esforco_estimado" swaggertype:"number" example:"300"`
	PlanejamentoMensal []PlanejamentoMensalEntry `json:"planejamento_mensal"`
}

// Matriz is the full planning matrix of one resource.
type Matriz struct {
	RecursoID uint64          `json:"recurso_id" example:"87"`
	Projetos  []MatrizProjeto `json:"projetos"`
}

type MatrizResponse struct {
	Data  *Matriz `json:"data"`  // The planning matrix
	Error *string `json:"error"` // The error, if any occurred
}

// AlteracaoProjeto is the submitted change-set for one project. The
// planejamento_mensal list is the complete desired state for the
// allocation, months missing from it are deleted.
type AlteracaoProjeto struct {
	ProjetoID          uint64                    `json:"projeto_id" example:"4312"`
	StatusAlocacaoID   *uint64                   `json:"status_alocacao_id" example:"1"`
	Observacao         *string                   `json:"observacao" example:"Atualização"`
	EsforcoEstimado    *decimal.Decimal          `json:"esforco_estimado" swaggertype:"number" example:"300"`
	PlanejamentoMensal []PlanejamentoMensalEntry `json:"planejamento_mensal"`
}

// SalvarMatrizEditable is the batch-save request body.
type SalvarMatrizEditable struct {
	RecursoID          uint64             `json:"recurso_id" example:"87"`
	AlteracoesProjetos []AlteracaoProjeto `json:"alteracoes_projetos"`
}

type SalvarMatrizResponse struct {
	Data  *SalvarMatrizResult `json:"data"`  // Result of the batch save
	Error *string             `json:"error"` // The error, if any occurred
}

type SalvarMatrizResult struct {
	RecursoID           uint64 `json:"recurso_id" example:"87"`
	ProjetosProcessados int    `json:"projetos_processados" example:"3"`
}

// RegisterMatrizRoutes registers the routes for the planning matrix with
// the RouterGroup that is passed.
func RegisterMatrizRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:recursoId", OptionsMatriz)
	r.GET("/:recursoId", GetMatrizPlanejamento)
	r.OPTIONS("/salvar", OptionsMatrizSalvar)
	r.POST("/salvar", auth.Middleware(), auth.RequireAdmin(), SalvarMatrizPlanejamento)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Matriz
// @Success		204
// @Router			/v1/matriz-planejamento/{recursoId} [options]
func OptionsMatriz(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Matriz
// @Success		204
// @Router			/v1/matriz-planejamento/salvar [options]
func OptionsMatrizSalvar(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get planning matrix
// @Description	Returns every project the recurso has an alocacao for, with the complete set of planned hours
// @Tags			Matriz
// @Produce		json
// @Success		200	{object}	MatrizResponse
// @Failure		400	{object}	MatrizResponse
// @Failure		404	{object}	MatrizResponse
// @Router			/v1/matriz-planejamento/{recursoId} [get]
func GetMatrizPlanejamento(c *gin.Context) {
	recursoID, err := httputil.IDFromParam(c, "recursoId")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatrizResponse{Error: &s})
		return
	}

	var recurso models.Recurso
	err = models.DB.First(&recurso, recursoID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatrizResponse{Error: &s})
		return
	}

	alocacoes, err := recurso.Alocacoes(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MatrizResponse{Error: &s})
		return
	}

	// A resource without any allocation has no matrix
	if len(alocacoes) == 0 {
		s := errSemAlocacoes.Error()
		c.JSON(http.StatusNotFound, MatrizResponse{Error: &s})
		return
	}

	matriz := Matriz{RecursoID: recurso.ID, Projetos: make([]MatrizProjeto, 0, len(alocacoes))}
	for _, alocacao := range alocacoes {
		planejamento, err := alocacao.Planejamento(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MatrizResponse{Error: &s})
			return
		}

		projeto := MatrizProjeto{
			ProjetoID:          alocacao.ProjetoID,
			StatusAlocacaoID:   alocacao.StatusAlocacaoID,
			Observacao:         alocacao.Observacao,
			EsforcoEstimado:    alocacao.EsforcoEstimado,
			PlanejamentoMensal: make([]PlanejamentoMensalEntry, 0, len(planejamento)),
		}

		for _, row := range planejamento {
			projeto.PlanejamentoMensal = append(projeto.PlanejamentoMensal, PlanejamentoMensalEntry{
				Ano:             row.Ano,
				Mes:             row.Mes,
				HorasPlanejadas: row.HorasPlanejadas,
			})
		}

		matriz.Projetos = append(matriz.Projetos, projeto)
	}

	c.JSON(http.StatusOK, MatrizResponse{Data: &matriz})
}

// @Summary		Save planning matrix
// @Description	Applies a batch of planning change-sets for one recurso in a single transaction
// @Tags			Matriz
// @Accept			json
// @Produce		json
// @Success		200		{object}	SalvarMatrizResponse
// @Failure		400		{object}	SalvarMatrizResponse
// @Failure		404		{object}	SalvarMatrizResponse
// @Param			batch	body		SalvarMatrizEditable	true	"Change sets"
// @Router			/v1/matriz-planejamento/salvar [post]
func SalvarMatrizPlanejamento(c *gin.Context) {
	var editable SalvarMatrizEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SalvarMatrizResponse{Error: &s})
		return
	}

	// The resource must exist before anything is written
	var recurso models.Recurso
	err = models.DB.First(&recurso, editable.RecursoID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SalvarMatrizResponse{Error: &s})
		return
	}

	// Validate every change-set up front so that bad input never costs a
	// partially executed transaction
	for _, alteracao := range editable.AlteracoesProjetos {
		for _, entry := range alteracao.PlanejamentoMensal {
			if entry.Mes < 1 || entry.Mes > 12 {
				s := models.ErrMesInvalido.Error()
				c.JSON(http.StatusBadRequest, SalvarMatrizResponse{Error: &s})
				return
			}

			if entry.HorasPlanejadas.IsNegative() {
				s := models.ErrHorasPlanejadasNegativas.Error()
				c.JSON(http.StatusBadRequest, SalvarMatrizResponse{Error: &s})
				return
			}
		}
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, alteracao := range editable.AlteracoesProjetos {
			err := salvarAlteracao(tx, recurso.ID, alteracao)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SalvarMatrizResponse{Error: &s})
		return
	}

	metrics.PlanejamentoSavesTotal.Inc()

	c.JSON(http.StatusOK, SalvarMatrizResponse{Data: &SalvarMatrizResult{
		RecursoID:           recurso.ID,
		ProjetosProcessados: len(editable.AlteracoesProjetos),
	}})
}

// salvarAlteracao applies one change-set: it finds or creates the
// allocation, patches the supplied metadata fields and reconciles the
// planned-hours rows against the submitted list.
func salvarAlteracao(tx *gorm.DB, recursoID uint64, alteracao AlteracaoProjeto) error {
	err := tx.First(&models.Projeto{}, alteracao.ProjetoID).Error
	if err != nil {
		return err
	}

	var alocacao models.Alocacao
	err = tx.
		Where(&models.Alocacao{RecursoID: recursoID, ProjetoID: alteracao.ProjetoID}).
		First(&alocacao).Error

	switch {
	case err == nil:
		// Partial update semantics: only fields present in the change-set
		// are written
		updates := map[string]interface{}{}
		if alteracao.StatusAlocacaoID != nil {
			err = tx.First(&models.StatusProjeto{}, *alteracao.StatusAlocacaoID).Error
			if err != nil {
				return err
			}
			updates["status_alocacao_id"] = *alteracao.StatusAlocacaoID
		}
		if alteracao.Observacao != nil {
			updates["observacao"] = *alteracao.Observacao
		}
		if alteracao.EsforcoEstimado != nil {
			updates["esforco_estimado"] = *alteracao.EsforcoEstimado
		}

		if len(updates) > 0 {
			err = tx.Model(&alocacao).Updates(updates).Error
			if err != nil {
				return err
			}
		}

	case errors.Is(err, models.ErrResourceNotFound):
		alocacao = models.Alocacao{
			RecursoID:          recursoID,
			ProjetoID:          alteracao.ProjetoID,
			StatusAlocacaoID:   alteracao.StatusAlocacaoID,
			DataInicioAlocacao: alocacaoInicio(alteracao.PlanejamentoMensal),
		}
		if alteracao.Observacao != nil {
			alocacao.Observacao = *alteracao.Observacao
		}
		if alteracao.EsforcoEstimado != nil {
			alocacao.EsforcoEstimado = decimal.NewNullDecimal(*alteracao.EsforcoEstimado)
		}

		err = tx.Create(&alocacao).Error
		if err != nil {
			return err
		}

	default:
		return err
	}

	desired := make([]models.HorasPlanejadas, 0, len(alteracao.PlanejamentoMensal))
	for _, entry := range alteracao.PlanejamentoMensal {
		desired = append(desired, models.HorasPlanejadas{
			AlocacaoID:      alocacao.ID,
			Ano:             entry.Ano,
			Mes:             entry.Mes,
			HorasPlanejadas: entry.HorasPlanejadas,
		})
	}

	return alocacao.ReconcilePlanejamento(tx, desired)
}

// alocacaoInicio returns the start date for an allocation created by the
// batch save: the first day of the earliest submitted planning month, or
// today when no months were submitted.
func alocacaoInicio(planejamento []PlanejamentoMensalEntry) time.Time {
	var earliest types.Month
	for _, entry := range planejamento {
		month := types.NewMonth(entry.Ano, time.Month(entry.Mes))
		if earliest.IsZero() || month.Before(earliest) {
			earliest = month
		}
	}

	if earliest.IsZero() {
		return time.Now().In(time.UTC)
	}

	return earliest.FirstDay()
}
