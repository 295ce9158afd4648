package models

import (
	"strings"

	"gorm.io/gorm"
)

// Equipe represents a team inside a section.
type Equipe struct {
	Model
	SecaoID   uint64 `gorm:"uniqueIndex:equipe_secao_nome"`
	Secao     Secao  `json:"-"`
	Nome      string `gorm:"uniqueIndex:equipe_secao_nome"`
	Descricao string
	Ativo     bool `gorm:"default:true"`
}

func (Equipe) TableName() string {
	return "equipe"
}

func (e *Equipe) BeforeSave(_ *gorm.DB) error {
	e.Nome = strings.TrimSpace(e.Nome)
	e.Descricao = strings.TrimSpace(e.Descricao)

	return nil
}

func (e *Equipe) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*Equipe)
	return e.checkIntegrity(tx, *toSave)
}

func (e *Equipe) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("SecaoID") {
		toSave := tx.Statement.Dest.(Equipe)
		return e.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (e *Equipe) checkIntegrity(tx *gorm.DB, toSave Equipe) error {
	return tx.First(&Secao{}, toSave.SecaoID).Error
}
