package models

import (
	"strings"

	"gorm.io/gorm"
)

// StatusProjeto represents a status that projects and allocations can be in,
// e.g. "Em Andamento" or "Concluído".
type StatusProjeto struct {
	Model
	Nome          string `gorm:"uniqueIndex"`
	Descricao     string
	IsFinal       bool
	OrdemExibicao *int
}

func (StatusProjeto) TableName() string {
	return "status_projeto"
}

func (s *StatusProjeto) BeforeSave(_ *gorm.DB) error {
	s.Nome = strings.TrimSpace(s.Nome)
	s.Descricao = strings.TrimSpace(s.Descricao)

	return nil
}
