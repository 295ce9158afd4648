package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/automacao-pmo/backend/internal/controllers/v1"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/automacao-pmo/backend/test"
)

func (suite *TestSuiteStandard) TestProjetoCreate() {
	status := suite.createTestStatusProjeto(models.StatusProjeto{})
	codigo := "PRJ-4312"

	body := v1.ProjetoEditable{
		Nome:            "Portal do Cliente",
		CodigoEmpresa:   &codigo,
		StatusProjetoID: status.ID,
	}

	r := test.Request(suite.T(), http.MethodPost, "/v1/projetos", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ProjetoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Require().NotNil(response.Data.CodigoEmpresa)
	suite.Assert().Equal("PRJ-4312", *response.Data.CodigoEmpresa)
}

func (suite *TestSuiteStandard) TestProjetoCreateDuplicateCodigo() {
	codigo := "PRJ-1"
	suite.createTestProjeto(models.Projeto{CodigoEmpresa: &codigo})
	status := suite.createTestStatusProjeto(models.StatusProjeto{})

	r := test.Request(suite.T(), http.MethodPost, "/v1/projetos", v1.ProjetoEditable{Nome: "Outro", CodigoEmpresa: &codigo, StatusProjetoID: status.ID}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestProjetoCreateUnknownStatus() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/projetos", v1.ProjetoEditable{Nome: "Portal", StatusProjetoID: 4077}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestProjetoListFilter() {
	status := suite.createTestStatusProjeto(models.StatusProjeto{})
	secao := suite.createTestSecao(models.Secao{})

	suite.createTestProjeto(models.Projeto{StatusProjetoID: status.ID, SecaoID: &secao.ID})
	suite.createTestProjeto(models.Projeto{StatusProjetoID: status.ID})
	suite.createTestProjeto(models.Projeto{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/projetos?status_projeto_id=%d", status.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProjetoListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 2)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/projetos?secao_id=%d", secao.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 1)
}

func (suite *TestSuiteStandard) TestStatusProjetoOrder() {
	dois := 2
	um := 1
	suite.createTestStatusProjeto(models.StatusProjeto{Nome: "Concluído", OrdemExibicao: &dois})
	suite.createTestStatusProjeto(models.StatusProjeto{Nome: "Em Andamento", OrdemExibicao: &um})

	r := test.Request(suite.T(), http.MethodGet, "/v1/status-projeto", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatusProjetoListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Em Andamento", response.Data[0].Nome)
	suite.Assert().Equal("Concluído", response.Data[1].Nome)
}

func (suite *TestSuiteStandard) TestStatusProjetoCreate() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/status-projeto", v1.StatusProjetoEditable{Nome: "Em Andamento"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	// Status names are unique
	r = test.Request(suite.T(), http.MethodPost, "/v1/status-projeto", v1.StatusProjetoEditable{Nome: "Em Andamento"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
