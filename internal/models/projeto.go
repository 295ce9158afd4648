package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Projeto represents a project that resources are allocated to and log
// hours against.
type Projeto struct {
	Model
	Nome               string
	CodigoEmpresa      *string `gorm:"uniqueIndex"`
	Descricao          string
	StatusProjetoID    uint64
	StatusProjeto      StatusProjeto `json:"-"`
	SecaoID            *uint64
	Secao              *Secao `json:"-"`
	DataInicioPrevista *time.Time
	DataFimPrevista    *time.Time
	Ativo              bool `gorm:"default:true"`
}

func (Projeto) TableName() string {
	return "projeto"
}

func (p *Projeto) BeforeSave(_ *gorm.DB) error {
	p.Nome = strings.TrimSpace(p.Nome)
	p.Descricao = strings.TrimSpace(p.Descricao)

	if p.CodigoEmpresa != nil {
		codigo := strings.TrimSpace(*p.CodigoEmpresa)
		p.CodigoEmpresa = &codigo
	}

	return nil
}

func (p *Projeto) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*Projeto)
	return p.checkIntegrity(tx, *toSave)
}

func (p *Projeto) BeforeUpdate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(Projeto)

	if tx.Statement.Changed("StatusProjetoID") || tx.Statement.Changed("SecaoID") {
		return p.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (p *Projeto) checkIntegrity(tx *gorm.DB, toSave Projeto) error {
	if toSave.StatusProjetoID != 0 {
		err := tx.First(&StatusProjeto{}, toSave.StatusProjetoID).Error
		if err != nil {
			return err
		}
	}

	if toSave.SecaoID != nil {
		return tx.First(&Secao{}, *toSave.SecaoID).Error
	}

	return nil
}
