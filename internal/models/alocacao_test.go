package models_test

import (
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestAlocacaoTrimsObservacao() {
	alocacao := suite.createTestAlocacao(models.Alocacao{Observacao: "  Alocação parcial  "})
	suite.Assert().Equal("Alocação parcial", alocacao.Observacao)
}

func (suite *TestSuiteStandard) TestAlocacaoSetsDataInicio() {
	alocacao := suite.createTestAlocacao(models.Alocacao{})
	suite.Assert().False(alocacao.DataInicioAlocacao.IsZero(), "DataInicioAlocacao was not defaulted on create")
}

func (suite *TestSuiteStandard) TestAlocacaoChecksReferences() {
	err := models.DB.Create(&models.Alocacao{RecursoID: 4077, ProjetoID: 4077}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	recurso := suite.createTestRecurso(models.Recurso{})
	err = models.DB.Create(&models.Alocacao{RecursoID: recurso.ID, ProjetoID: 4077}).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestAlocacaoUnique() {
	alocacao := suite.createTestAlocacao(models.Alocacao{})

	err := models.DB.Create(&models.Alocacao{RecursoID: alocacao.RecursoID, ProjetoID: alocacao.ProjetoID}).Error
	suite.Assert().ErrorIs(err, models.ErrAlocacaoNotUnique)
}

func (suite *TestSuiteStandard) TestPlanejamentoOrdered() {
	alocacao := suite.createTestAlocacao(models.Alocacao{})

	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2025, Mes: 1, HorasPlanejadas: decimal.NewFromInt(40)})
	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2024, Mes: 12, HorasPlanejadas: decimal.NewFromInt(20)})

	planejamento, err := alocacao.Planejamento(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(planejamento, 2)

	suite.Assert().Equal(2024, planejamento[0].Ano)
	suite.Assert().Equal(12, planejamento[0].Mes)
	suite.Assert().Equal(2025, planejamento[1].Ano)
	suite.Assert().Equal(1, planejamento[1].Mes)
}

func (suite *TestSuiteStandard) TestReconcilePlanejamento() {
	alocacao := suite.createTestAlocacao(models.Alocacao{})

	desired := []models.HorasPlanejadas{
		{Ano: 2024, Mes: 12, HorasPlanejadas: decimal.NewFromInt(20)},
		{Ano: 2025, Mes: 1, HorasPlanejadas: decimal.NewFromInt(40)},
	}

	err := alocacao.ReconcilePlanejamento(models.DB, desired)
	suite.Require().Nil(err)

	planejamento, err := alocacao.Planejamento(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(planejamento, 2)
	suite.Assert().True(planejamento[0].HorasPlanejadas.Equal(decimal.NewFromInt(20)))
	suite.Assert().True(planejamento[1].HorasPlanejadas.Equal(decimal.NewFromInt(40)))
}

func (suite *TestSuiteStandard) TestReconcilePlanejamentoIdempotent() {
	alocacao := suite.createTestAlocacao(models.Alocacao{})

	desired := []models.HorasPlanejadas{
		{Ano: 2025, Mes: 2, HorasPlanejadas: decimal.RequireFromString("35.5")},
	}

	err := alocacao.ReconcilePlanejamento(models.DB, desired)
	suite.Require().Nil(err)

	err = alocacao.ReconcilePlanejamento(models.DB, desired)
	suite.Require().Nil(err)

	planejamento, err := alocacao.Planejamento(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(planejamento, 1)
	suite.Assert().True(planejamento[0].HorasPlanejadas.Equal(decimal.RequireFromString("35.5")))
}

func (suite *TestSuiteStandard) TestReconcilePlanejamentoDeletesOmitted() {
	alocacao := suite.createTestAlocacao(models.Alocacao{})

	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2024, Mes: 1, HorasPlanejadas: decimal.NewFromInt(10)})
	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2024, Mes: 2, HorasPlanejadas: decimal.NewFromInt(10)})

	// The submitted set is the complete desired state, months that are
	// not submitted again are removed
	err := alocacao.ReconcilePlanejamento(models.DB, []models.HorasPlanejadas{
		{Ano: 2024, Mes: 3, HorasPlanejadas: decimal.NewFromInt(10)},
	})
	suite.Require().Nil(err)

	planejamento, err := alocacao.Planejamento(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(planejamento, 1)
	suite.Assert().Equal(2024, planejamento[0].Ano)
	suite.Assert().Equal(3, planejamento[0].Mes)
}

func (suite *TestSuiteStandard) TestReconcilePlanejamentoUpdatesHours() {
	alocacao := suite.createTestAlocacao(models.Alocacao{})

	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2025, Mes: 1, HorasPlanejadas: decimal.NewFromInt(40)})

	err := alocacao.ReconcilePlanejamento(models.DB, []models.HorasPlanejadas{
		{Ano: 2025, Mes: 1, HorasPlanejadas: decimal.NewFromInt(16)},
	})
	suite.Require().Nil(err)

	planejamento, err := alocacao.Planejamento(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(planejamento, 1)
	suite.Assert().True(planejamento[0].HorasPlanejadas.Equal(decimal.NewFromInt(16)), "Hours were not updated, they are %s", planejamento[0].HorasPlanejadas)
}

func (suite *TestSuiteStandard) TestAlocacaoDeleteCascades() {
	alocacao := suite.createTestAlocacao(models.Alocacao{})
	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2025, Mes: 1, HorasPlanejadas: decimal.NewFromInt(40)})

	err := models.DB.Delete(&alocacao).Error
	suite.Require().Nil(err)

	var count int64
	err = models.DB.Model(&models.HorasPlanejadas{}).Where(&models.HorasPlanejadas{AlocacaoID: alocacao.ID}).Count(&count).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), count)
}
