package models

import (
	"strings"

	"gorm.io/gorm"
)

// Secao represents an organizational section. It is the highest level of
// the hierarchy, teams and projects reference it.
type Secao struct {
	Model
	Nome      string `gorm:"uniqueIndex"`
	Descricao string
	Ativo     bool `gorm:"default:true"`
}

func (Secao) TableName() string {
	return "secao"
}

func (s *Secao) BeforeSave(_ *gorm.DB) error {
	s.Nome = strings.TrimSpace(s.Nome)
	s.Descricao = strings.TrimSpace(s.Descricao)

	return nil
}

// Equipes returns all teams of the section.
func (s Secao) Equipes(db *gorm.DB) ([]Equipe, error) {
	var equipes []Equipe
	err := db.Where(&Equipe{SecaoID: s.ID}).Order("nome ASC").Find(&equipes).Error
	if err != nil {
		return nil, err
	}

	return equipes, nil
}
