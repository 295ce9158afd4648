package models_test

import (
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/automacao-pmo/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestHorasDisponiveisMesInvalido() {
	recurso := suite.createTestRecurso(models.Recurso{})

	err := models.DB.Create(&models.HorasDisponiveisRH{RecursoID: recurso.ID, Ano: 2025, Mes: 0, HorasDisponiveis: decimal.NewFromInt(160)}).Error
	suite.Assert().ErrorIs(err, models.ErrMesInvalido)
}

func (suite *TestSuiteStandard) TestHorasDisponiveisNegativas() {
	recurso := suite.createTestRecurso(models.Recurso{})

	err := models.DB.Create(&models.HorasDisponiveisRH{RecursoID: recurso.ID, Ano: 2025, Mes: 1, HorasDisponiveis: decimal.NewFromInt(-8)}).Error
	suite.Assert().ErrorIs(err, models.ErrHorasDisponiveisNegativas)
}

func (suite *TestSuiteStandard) TestHorasDisponiveisChecksReferences() {
	err := models.DB.Create(&models.HorasDisponiveisRH{RecursoID: 4077, Ano: 2025, Mes: 1, HorasDisponiveis: decimal.NewFromInt(160)}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestHorasDisponiveisUnique() {
	recurso := suite.createTestRecurso(models.Recurso{})
	suite.createTestHorasDisponiveis(models.HorasDisponiveisRH{RecursoID: recurso.ID, Ano: 2025, Mes: 1, HorasDisponiveis: decimal.NewFromInt(160)})

	err := models.DB.Create(&models.HorasDisponiveisRH{RecursoID: recurso.ID, Ano: 2025, Mes: 1, HorasDisponiveis: decimal.NewFromInt(168)}).Error
	suite.Assert().ErrorIs(err, models.ErrHorasDisponiveisNotUnique)
}

func (suite *TestSuiteStandard) TestHorasDisponiveisCompetencia() {
	horas := models.HorasDisponiveisRH{Ano: 2025, Mes: 7}
	suite.Assert().Equal(types.NewMonth(2025, 7), horas.Competencia())
}
