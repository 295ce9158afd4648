package models

import (
	"strings"
	"time"

	"github.com/automacao-pmo/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Alocacao binds a resource to a project over a date range and carries the
// planning metadata for that pair. It owns the HorasPlanejadas rows of the
// pair, which are deleted together with it.
type Alocacao struct {
	Model
	RecursoID          uint64  `gorm:"uniqueIndex:alocacao_recurso_projeto_key"`
	Recurso            Recurso `json:"-"`
	ProjetoID          uint64  `gorm:"uniqueIndex:alocacao_recurso_projeto_key"`
	Projeto            Projeto `json:"-"`
	StatusAlocacaoID   *uint64
	StatusAlocacao     *StatusProjeto `json:"-" gorm:"foreignKey:StatusAlocacaoID"`
	Observacao         string
	DataInicioAlocacao time.Time           `gorm:"type:date"`
	DataFimAlocacao    *time.Time          `gorm:"type:date"`
	EsforcoEstimado    decimal.NullDecimal `gorm:"type:DECIMAL(10,2)"`
}

func (Alocacao) TableName() string {
	return "alocacao_recurso_projeto"
}

func (a *Alocacao) BeforeSave(_ *gorm.DB) error {
	a.Observacao = strings.TrimSpace(a.Observacao)

	if a.DataInicioAlocacao.IsZero() {
		a.DataInicioAlocacao = time.Now().In(time.UTC)
	}
	a.DataInicioAlocacao = a.DataInicioAlocacao.In(time.UTC)

	return nil
}

func (a *Alocacao) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*Alocacao)
	return a.checkIntegrity(tx, *toSave)
}

func (a *Alocacao) BeforeUpdate(tx *gorm.DB) error {
	toSave, ok := tx.Statement.Dest.(Alocacao)
	if !ok {
		return nil
	}

	if tx.Statement.Changed("RecursoID", "ProjetoID", "StatusAlocacaoID") {
		return a.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (a *Alocacao) checkIntegrity(tx *gorm.DB, toSave Alocacao) error {
	if toSave.RecursoID != 0 {
		if err := tx.First(&Recurso{}, toSave.RecursoID).Error; err != nil {
			return err
		}
	}

	if toSave.ProjetoID != 0 {
		if err := tx.First(&Projeto{}, toSave.ProjetoID).Error; err != nil {
			return err
		}
	}

	if toSave.StatusAlocacaoID != nil {
		return tx.First(&StatusProjeto{}, *toSave.StatusAlocacaoID).Error
	}

	return nil
}

// AfterDelete removes the planned-hours rows owned by the allocation.
func (a *Alocacao) AfterDelete(tx *gorm.DB) error {
	return tx.Where(&HorasPlanejadas{AlocacaoID: a.ID}).Delete(&HorasPlanejadas{}).Error
}

// Planejamento returns the planned-hours rows of the allocation ordered by
// year and month.
func (a Alocacao) Planejamento(db *gorm.DB) ([]HorasPlanejadas, error) {
	var planejamento []HorasPlanejadas

	err := db.
		Where(&HorasPlanejadas{AlocacaoID: a.ID}).
		Order("ano ASC, mes ASC").
		Find(&planejamento).
		Error
	if err != nil {
		return nil, err
	}

	return planejamento, nil
}

// ReconcilePlanejamento makes the stored planned-hours rows of the
// allocation match the submitted set exactly.
//
// Every submitted (ano, mes) is upserted with its hours. Every stored row
// whose (ano, mes) is not in the submitted set is deleted: the submitted
// list is the complete desired state for the allocation, not a delta.
func (a Alocacao) ReconcilePlanejamento(tx *gorm.DB, desired []HorasPlanejadas) error {
	existing, err := a.Planejamento(tx)
	if err != nil {
		return err
	}

	submitted := make(map[types.Month]bool, len(desired))
	for _, entry := range desired {
		submitted[entry.Competencia()] = true

		err = tx.
			Where(&HorasPlanejadas{AlocacaoID: a.ID, Ano: entry.Ano, Mes: entry.Mes}).
			Assign(map[string]interface{}{"horas_planejadas": entry.HorasPlanejadas}).
			FirstOrCreate(&HorasPlanejadas{}).
			Error
		if err != nil {
			return err
		}
	}

	for _, row := range existing {
		if submitted[row.Competencia()] {
			continue
		}

		err = tx.Delete(&row).Error
		if err != nil {
			return err
		}
	}

	return nil
}
