package v1_test

import (
	"net/http"

	v1 "github.com/automacao-pmo/backend/internal/controllers/v1"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/automacao-pmo/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestHorasDisponiveisUpsert() {
	recurso := suite.createTestRecurso(models.Recurso{})

	body := v1.HorasDisponiveisEditable{RecursoID: recurso.ID, Ano: 2025, Mes: 3, HorasDisponiveis: decimal.NewFromInt(168)}
	r := test.Request(suite.T(), http.MethodPost, "/v1/horas-disponiveis-rh", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// A second submission for the same month replaces the hours
	body.HorasDisponiveis = decimal.NewFromInt(160)
	r = test.Request(suite.T(), http.MethodPost, "/v1/horas-disponiveis-rh", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var rows []models.HorasDisponiveisRH
	err := models.DB.Where(&models.HorasDisponiveisRH{RecursoID: recurso.ID}).Find(&rows).Error
	suite.Require().Nil(err)
	suite.Require().Len(rows, 1)
	suite.Assert().True(rows[0].HorasDisponiveis.Equal(decimal.NewFromInt(160)))
}

func (suite *TestSuiteStandard) TestHorasDisponiveisUpsertUnknownRecurso() {
	body := v1.HorasDisponiveisEditable{RecursoID: 4077, Ano: 2025, Mes: 3, HorasDisponiveis: decimal.NewFromInt(168)}

	r := test.Request(suite.T(), http.MethodPost, "/v1/horas-disponiveis-rh", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestHorasDisponiveisGet() {
	recurso := suite.createTestRecurso(models.Recurso{})
	suite.createTestHorasDisponiveis(models.HorasDisponiveisRH{RecursoID: recurso.ID, Ano: 2025, Mes: 1, HorasDisponiveis: decimal.NewFromInt(168)})
	suite.createTestHorasDisponiveis(models.HorasDisponiveisRH{RecursoID: recurso.ID, Ano: 2024, Mes: 12, HorasDisponiveis: decimal.NewFromInt(152)})

	r := test.Request(suite.T(), http.MethodGet, "/v1/horas-disponiveis-rh?ano=2025", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HorasDisponiveisListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 1)
	suite.Assert().Equal(1, response.Data[0].Mes)

	// The ano parameter is required
	r = test.Request(suite.T(), http.MethodGet, "/v1/horas-disponiveis-rh", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDimTempoPopular() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/dim-tempo/popular?ano=2025", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PopularDimTempoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(365, response.Data.Dias)

	r = test.Request(suite.T(), http.MethodPost, "/v1/dim-tempo/popular?ano=nope", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "/v1/dim-tempo/popular?ano=1850", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGerarHorasDisponiveis() {
	recursoA := suite.createTestRecurso(models.Recurso{})
	recursoB := suite.createTestRecurso(models.Recurso{})

	// Inactive resources are skipped
	inativo := suite.createTestRecurso(models.Recurso{})
	err := models.DB.Model(&inativo).Update("ativo", false).Error
	suite.Require().Nil(err)

	r := test.Request(suite.T(), http.MethodPost, "/v1/dim-tempo/popular?ano=2025", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, "/v1/horas-disponiveis-rh/gerar?ano=2025&horas_dia=8", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.GerarCapacidadeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal(2, response.Data.Recursos)
	suite.Assert().Equal(24, response.Data.LinhasGravadas)

	// March 2025 has 21 weekdays
	var march models.HorasDisponiveisRH
	err = models.DB.Where(&models.HorasDisponiveisRH{RecursoID: recursoA.ID, Ano: 2025, Mes: 3}).First(&march).Error
	suite.Require().Nil(err)
	suite.Assert().True(march.HorasDisponiveis.Equal(decimal.NewFromInt(168)), "March capacity is %s", march.HorasDisponiveis)

	var count int64
	err = models.DB.Model(&models.HorasDisponiveisRH{}).Where(&models.HorasDisponiveisRH{RecursoID: recursoB.ID}).Count(&count).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(12), count)
}

func (suite *TestSuiteStandard) TestGerarHorasDisponiveisParameters() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/horas-disponiveis-rh/gerar?horas_dia=8", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodPost, "/v1/horas-disponiveis-rh/gerar?ano=2025&horas_dia=-1", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGerarHorasDisponiveisWithoutDimTempo() {
	suite.createTestRecurso(models.Recurso{})

	r := test.Request(suite.T(), http.MethodPost, "/v1/horas-disponiveis-rh/gerar?ano=2025&horas_dia=8", "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
