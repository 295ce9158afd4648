package models

import (
	"errors"
	"time"

	"github.com/automacao-pmo/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HorasDisponiveisRH is the HR capacity of a resource for a month: the
// hours the resource is available to work after absences and holidays.
type HorasDisponiveisRH struct {
	Model
	RecursoID        uint64          `gorm:"uniqueIndex:horas_disponiveis_recurso_ano_mes"`
	Recurso          Recurso         `json:"-"`
	Ano              int             `gorm:"uniqueIndex:horas_disponiveis_recurso_ano_mes"`
	Mes              int             `gorm:"uniqueIndex:horas_disponiveis_recurso_ano_mes"`
	HorasDisponiveis decimal.Decimal `gorm:"type:DECIMAL(6,2)"`
}

func (HorasDisponiveisRH) TableName() string {
	return "horas_disponiveis_rh"
}

var ErrHorasDisponiveisNegativas = errors.New("available hours cannot be negative")

func (h *HorasDisponiveisRH) BeforeSave(_ *gorm.DB) error {
	if h.Mes < 1 || h.Mes > 12 {
		return ErrMesInvalido
	}

	if h.HorasDisponiveis.IsNegative() {
		return ErrHorasDisponiveisNegativas
	}

	return nil
}

func (h *HorasDisponiveisRH) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*HorasDisponiveisRH)
	return tx.First(&Recurso{}, toSave.RecursoID).Error
}

// Competencia returns the capacity month.
func (h HorasDisponiveisRH) Competencia() types.Month {
	return types.NewMonth(h.Ano, time.Month(h.Mes))
}
