package models

import (
	"errors"
	"time"

	"github.com/automacao-pmo/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HorasPlanejadas is the planned effort of a single allocation for a single
// month. Rows are written exclusively by the planning matrix batch save.
type HorasPlanejadas struct {
	Model
	AlocacaoID      uint64          `gorm:"uniqueIndex:horas_planejadas_alocacao_ano_mes"`
	Alocacao        Alocacao        `json:"-"`
	Ano             int             `gorm:"uniqueIndex:horas_planejadas_alocacao_ano_mes"`
	Mes             int             `gorm:"uniqueIndex:horas_planejadas_alocacao_ano_mes"`
	HorasPlanejadas decimal.Decimal `gorm:"type:DECIMAL(5,2)"`
}

func (HorasPlanejadas) TableName() string {
	return "horas_planejadas_alocacao"
}

var (
	ErrMesInvalido              = errors.New("the month must be between 1 and 12")
	ErrHorasPlanejadasNegativas = errors.New("planned hours must not be negative")
)

func (h *HorasPlanejadas) BeforeSave(_ *gorm.DB) error {
	if h.Mes < 1 || h.Mes > 12 {
		return ErrMesInvalido
	}

	if h.HorasPlanejadas.IsNegative() {
		return ErrHorasPlanejadasNegativas
	}

	return nil
}

// Competencia returns the (year, month) the row belongs to.
func (h HorasPlanejadas) Competencia() types.Month {
	return types.NewMonth(h.Ano, time.Month(h.Mes))
}
