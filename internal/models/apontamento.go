package models

import (
	"errors"
	"strings"
	"time"

	"github.com/automacao-pmo/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FonteApontamento is the origin of a time entry.
type FonteApontamento string

const (
	FonteJira   FonteApontamento = "JIRA"
	FonteManual FonteApontamento = "MANUAL"
)

// Apontamento is a logged unit of actual work: hours on a date for a
// resource and project. Externally synced entries are immutable, manual
// entries can be corrected by admins.
type Apontamento struct {
	Model
	RecursoID       uint64  `gorm:"index"`
	Recurso         Recurso `json:"-"`
	ProjetoID       uint64  `gorm:"index"`
	Projeto         Projeto `json:"-"`
	JiraWorklogID   *string `gorm:"uniqueIndex"`
	JiraIssueKey    string
	DataApontamento time.Time       `gorm:"type:date;index"`
	HorasApontadas  decimal.Decimal `gorm:"type:DECIMAL(5,2)"`
	Descricao       string
	Fonte           FonteApontamento `gorm:"default:MANUAL"`
}

func (Apontamento) TableName() string {
	return "apontamento"
}

var (
	ErrHorasApontadasInvalidas = errors.New("logged hours must be more than 0 and at most 24")
	ErrDataApontamentoRequired = errors.New("the entry date must be set")
	ErrFonteInvalida           = errors.New("the entry origin must be JIRA or MANUAL")
)

func (a *Apontamento) BeforeSave(_ *gorm.DB) error {
	a.Descricao = strings.TrimSpace(a.Descricao)
	a.JiraIssueKey = strings.TrimSpace(a.JiraIssueKey)

	if a.Fonte == "" {
		a.Fonte = FonteManual
	}

	if a.Fonte != FonteJira && a.Fonte != FonteManual {
		return ErrFonteInvalida
	}

	if a.DataApontamento.IsZero() {
		return ErrDataApontamentoRequired
	}
	a.DataApontamento = a.DataApontamento.In(time.UTC)

	if !a.HorasApontadas.IsPositive() || a.HorasApontadas.GreaterThan(decimal.NewFromInt(24)) {
		return ErrHorasApontadasInvalidas
	}

	return nil
}

func (a *Apontamento) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*Apontamento)
	return a.checkIntegrity(tx, *toSave)
}

func (a *Apontamento) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("RecursoID", "ProjetoID") {
		toSave, ok := tx.Statement.Dest.(Apontamento)
		if !ok {
			return nil
		}
		return a.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Apontamento) checkIntegrity(tx *gorm.DB, toSave Apontamento) error {
	if err := tx.First(&Recurso{}, toSave.RecursoID).Error; err != nil {
		return err
	}

	return tx.First(&Projeto{}, toSave.ProjetoID).Error
}

// AfterFind updates the entry date to use UTC as timezone, not +0000.
func (a *Apontamento) AfterFind(_ *gorm.DB) error {
	a.DataApontamento = a.DataApontamento.In(time.UTC)
	return nil
}

// Competencia returns the (year, month) the entry was logged in.
func (a Apontamento) Competencia() types.Month {
	return types.MonthOf(a.DataApontamento)
}
