package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/automacao-pmo/backend/internal/controllers/v1"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/automacao-pmo/backend/test"
)

func (suite *TestSuiteStandard) TestSecaoCreate() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/secoes", v1.SecaoEditable{Nome: "Engenharia de Software"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.SecaoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Engenharia de Software", response.Data.Nome)
	suite.Assert().True(response.Data.Ativo)
}

func (suite *TestSuiteStandard) TestSecaoCreateDuplicateName() {
	suite.createTestSecao(models.Secao{Nome: "Engenharia"})

	r := test.Request(suite.T(), http.MethodPost, "/v1/secoes", v1.SecaoEditable{Nome: "Engenharia"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSecaoCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/secoes", `{ "nome": `, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSecaoList() {
	suite.createTestSecao(models.Secao{Nome: "Zulu"})
	suite.createTestSecao(models.Secao{Nome: "Alfa"})

	r := test.Request(suite.T(), http.MethodGet, "/v1/secoes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SecaoListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Alfa", response.Data[0].Nome)
	suite.Assert().Equal("Zulu", response.Data[1].Nome)
}

func (suite *TestSuiteStandard) TestSecaoGet() {
	secao := suite.createTestSecao(models.Secao{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/secoes/%d", secao.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, "/v1/secoes/4077", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "/v1/secoes/nope", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestSecaoUpdate() {
	secao := suite.createTestSecao(models.Secao{Nome: "Engenharia", Descricao: "Sistemas internos"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/secoes/%d", secao.ID), map[string]any{"nome": "Plataforma"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SecaoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Plataforma", response.Data.Nome)

	// Fields that are not part of the request are not changed
	suite.Assert().Equal("Sistemas internos", response.Data.Descricao)
}

func (suite *TestSuiteStandard) TestSecaoDelete() {
	secao := suite.createTestSecao(models.Secao{})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/secoes/%d", secao.ID), "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/secoes/%d", secao.ID), "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestSecaoOptions() {
	secao := suite.createTestSecao(models.Secao{})

	r := test.Request(suite.T(), http.MethodOptions, "/v1/secoes", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, POST", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, fmt.Sprintf("/v1/secoes/%d", secao.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("GET, PATCH, DELETE", r.Header().Get("allow"))
}
