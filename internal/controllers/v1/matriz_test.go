package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/automacao-pmo/backend/internal/controllers/v1"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/automacao-pmo/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMatrizGetInvalidID() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/matriz-planejamento/nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMatrizGetRecursoNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "/v1/matriz-planejamento/4077", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatrizGetSemAlocacoes() {
	recurso := suite.createTestRecurso(models.Recurso{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/matriz-planejamento/%d", recurso.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatrizGet() {
	recurso := suite.createTestRecurso(models.Recurso{})
	projeto := suite.createTestProjeto(models.Projeto{})
	alocacao := suite.createTestAlocacao(models.Alocacao{RecursoID: recurso.ID, ProjetoID: projeto.ID, Observacao: "Meio período"})

	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2025, Mes: 1, HorasPlanejadas: decimal.NewFromInt(40)})
	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2024, Mes: 12, HorasPlanejadas: decimal.NewFromInt(20)})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/matriz-planejamento/%d", recurso.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatrizResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(recurso.ID, response.Data.RecursoID)
	suite.Require().Len(response.Data.Projetos, 1)
	suite.Assert().Equal(projeto.ID, response.Data.Projetos[0].ProjetoID)
	suite.Assert().Equal("Meio período", response.Data.Projetos[0].Observacao)

	// Planned months are ordered chronologically
	planejamento := response.Data.Projetos[0].PlanejamentoMensal
	suite.Require().Len(planejamento, 2)
	suite.Assert().Equal(2024, planejamento[0].Ano)
	suite.Assert().Equal(12, planejamento[0].Mes)
	suite.Assert().Equal(2025, planejamento[1].Ano)
	suite.Assert().Equal(1, planejamento[1].Mes)
}

func (suite *TestSuiteStandard) TestMatrizSalvarRequiresAuth() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/matriz-planejamento/salvar", v1.SalvarMatrizEditable{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestMatrizSalvarCreatesAlocacao() {
	recurso := suite.createTestRecurso(models.Recurso{})
	projeto := suite.createTestProjeto(models.Projeto{})
	esforco := decimal.NewFromInt(300)
	observacao := "Atualização"

	body := v1.SalvarMatrizEditable{
		RecursoID: recurso.ID,
		AlteracoesProjetos: []v1.AlteracaoProjeto{
			{
				ProjetoID:       projeto.ID,
				Observacao:      &observacao,
				EsforcoEstimado: &esforco,
				PlanejamentoMensal: []v1.PlanejamentoMensalEntry{
					{Ano: 2024, Mes: 12, HorasPlanejadas: decimal.NewFromInt(20)},
					{Ano: 2025, Mes: 1, HorasPlanejadas: decimal.NewFromInt(40)},
					{Ano: 2025, Mes: 2, HorasPlanejadas: decimal.RequireFromString("35.5")},
				},
			},
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "/v1/matriz-planejamento/salvar", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SalvarMatrizResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(1, response.Data.ProjetosProcessados)

	var alocacao models.Alocacao
	err := models.DB.Where(&models.Alocacao{RecursoID: recurso.ID, ProjetoID: projeto.ID}).First(&alocacao).Error
	suite.Require().Nil(err)
	suite.Assert().Equal("Atualização", alocacao.Observacao)
	suite.Assert().True(alocacao.EsforcoEstimado.Valid)
	suite.Assert().True(alocacao.EsforcoEstimado.Decimal.Equal(esforco))

	// The start date is the first day of the earliest planned month
	suite.Assert().Equal(2024, alocacao.DataInicioAlocacao.Year())
	suite.Assert().Equal(12, int(alocacao.DataInicioAlocacao.Month()))
	suite.Assert().Equal(1, alocacao.DataInicioAlocacao.Day())

	planejamento, err := alocacao.Planejamento(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(planejamento, 3)
}

func (suite *TestSuiteStandard) TestMatrizSalvarIdempotent() {
	recurso := suite.createTestRecurso(models.Recurso{})
	projeto := suite.createTestProjeto(models.Projeto{})

	body := v1.SalvarMatrizEditable{
		RecursoID: recurso.ID,
		AlteracoesProjetos: []v1.AlteracaoProjeto{
			{
				ProjetoID: projeto.ID,
				PlanejamentoMensal: []v1.PlanejamentoMensalEntry{
					{Ano: 2025, Mes: 1, HorasPlanejadas: decimal.NewFromInt(40)},
				},
			},
		},
	}

	for i := 0; i < 2; i++ {
		r := test.Request(suite.T(), http.MethodPost, "/v1/matriz-planejamento/salvar", body, test.AdminHeader(suite.T()))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	}

	var count int64
	err := models.DB.Model(&models.HorasPlanejadas{}).Count(&count).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestMatrizSalvarDeletesOmittedMonths() {
	recurso := suite.createTestRecurso(models.Recurso{})
	projeto := suite.createTestProjeto(models.Projeto{})
	alocacao := suite.createTestAlocacao(models.Alocacao{RecursoID: recurso.ID, ProjetoID: projeto.ID})

	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2024, Mes: 1, HorasPlanejadas: decimal.NewFromInt(10)})
	suite.createTestHorasPlanejadas(models.HorasPlanejadas{AlocacaoID: alocacao.ID, Ano: 2024, Mes: 2, HorasPlanejadas: decimal.NewFromInt(10)})

	body := v1.SalvarMatrizEditable{
		RecursoID: recurso.ID,
		AlteracoesProjetos: []v1.AlteracaoProjeto{
			{
				ProjetoID: projeto.ID,
				PlanejamentoMensal: []v1.PlanejamentoMensalEntry{
					{Ano: 2024, Mes: 3, HorasPlanejadas: decimal.NewFromInt(10)},
				},
			},
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "/v1/matriz-planejamento/salvar", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	planejamento, err := alocacao.Planejamento(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(planejamento, 1)
	suite.Assert().Equal(3, planejamento[0].Mes)
}

func (suite *TestSuiteStandard) TestMatrizSalvarUpdatesMetadata() {
	recurso := suite.createTestRecurso(models.Recurso{})
	projeto := suite.createTestProjeto(models.Projeto{})
	status := suite.createTestStatusProjeto(models.StatusProjeto{})
	suite.createTestAlocacao(models.Alocacao{RecursoID: recurso.ID, ProjetoID: projeto.ID, Observacao: "Antiga"})

	observacao := "Nova observação"
	body := v1.SalvarMatrizEditable{
		RecursoID: recurso.ID,
		AlteracoesProjetos: []v1.AlteracaoProjeto{
			{
				ProjetoID:        projeto.ID,
				StatusAlocacaoID: &status.ID,
				Observacao:       &observacao,
			},
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "/v1/matriz-planejamento/salvar", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var alocacao models.Alocacao
	err := models.DB.Where(&models.Alocacao{RecursoID: recurso.ID, ProjetoID: projeto.ID}).First(&alocacao).Error
	suite.Require().Nil(err)
	suite.Assert().Equal("Nova observação", alocacao.Observacao)
	suite.Require().NotNil(alocacao.StatusAlocacaoID)
	suite.Assert().Equal(status.ID, *alocacao.StatusAlocacaoID)
}

func (suite *TestSuiteStandard) TestMatrizSalvarValidation() {
	recurso := suite.createTestRecurso(models.Recurso{})
	projeto := suite.createTestProjeto(models.Projeto{})

	tests := []struct {
		name  string
		entry v1.PlanejamentoMensalEntry
	}{
		{"invalid month", v1.PlanejamentoMensalEntry{Ano: 2025, Mes: 13, HorasPlanejadas: decimal.NewFromInt(8)}},
		{"negative hours", v1.PlanejamentoMensalEntry{Ano: 2025, Mes: 1, HorasPlanejadas: decimal.NewFromInt(-8)}},
	}

	for _, tt := range tests {
		body := v1.SalvarMatrizEditable{
			RecursoID: recurso.ID,
			AlteracoesProjetos: []v1.AlteracaoProjeto{
				{ProjetoID: projeto.ID, PlanejamentoMensal: []v1.PlanejamentoMensalEntry{tt.entry}},
			},
		}

		r := test.Request(suite.T(), http.MethodPost, "/v1/matriz-planejamento/salvar", body, test.AdminHeader(suite.T()))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}

	// Nothing may have been written
	var count int64
	err := models.DB.Model(&models.Alocacao{}).Count(&count).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), count)
}

func (suite *TestSuiteStandard) TestMatrizSalvarUnknownProjeto() {
	recurso := suite.createTestRecurso(models.Recurso{})

	body := v1.SalvarMatrizEditable{
		RecursoID: recurso.ID,
		AlteracoesProjetos: []v1.AlteracaoProjeto{
			{ProjetoID: 4077},
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "/v1/matriz-planejamento/salvar", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatrizSalvarUnknownRecurso() {
	body := v1.SalvarMatrizEditable{RecursoID: 4077}

	r := test.Request(suite.T(), http.MethodPost, "/v1/matriz-planejamento/salvar", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
