package models

import (
	"strings"

	"gorm.io/gorm"
)

// Recurso represents a person that logs hours and receives allocations.
type Recurso struct {
	Model
	EquipePrincipalID *uint64
	EquipePrincipal   *Equipe `json:"-" gorm:"foreignKey:EquipePrincipalID"`
	Nome              string
	Email             string `gorm:"uniqueIndex"`
	Matricula         string
	Cargo             string
	Ativo             bool `gorm:"default:true"`
}

func (Recurso) TableName() string {
	return "recurso"
}

func (r *Recurso) BeforeSave(_ *gorm.DB) error {
	r.Nome = strings.TrimSpace(r.Nome)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Matricula = strings.TrimSpace(r.Matricula)
	r.Cargo = strings.TrimSpace(r.Cargo)

	return nil
}

func (r *Recurso) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*Recurso)
	return r.checkIntegrity(tx, *toSave)
}

func (r *Recurso) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("EquipePrincipalID") {
		toSave := tx.Statement.Dest.(Recurso)
		return r.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (r *Recurso) checkIntegrity(tx *gorm.DB, toSave Recurso) error {
	if toSave.EquipePrincipalID == nil {
		return nil
	}

	return tx.First(&Equipe{}, *toSave.EquipePrincipalID).Error
}

// Alocacoes returns all allocations of the resource.
func (r Recurso) Alocacoes(db *gorm.DB) ([]Alocacao, error) {
	var alocacoes []Alocacao
	err := db.Where(&Alocacao{RecursoID: r.ID}).Order("projeto_id ASC").Find(&alocacoes).Error
	if err != nil {
		return nil, err
	}

	return alocacoes, nil
}
