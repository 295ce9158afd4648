package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/automacao-pmo/backend/internal/controllers/v1"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/automacao-pmo/backend/test"
)

func (suite *TestSuiteStandard) TestEquipeCreate() {
	secao := suite.createTestSecao(models.Secao{})

	r := test.Request(suite.T(), http.MethodPost, "/v1/equipes", v1.EquipeEditable{SecaoID: secao.ID, Nome: "Plataforma"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.EquipeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Plataforma", response.Data.Nome)
	suite.Assert().Equal(secao.ID, response.Data.SecaoID)
}

func (suite *TestSuiteStandard) TestEquipeCreateUnknownSecao() {
	r := test.Request(suite.T(), http.MethodPost, "/v1/equipes", v1.EquipeEditable{SecaoID: 4077, Nome: "Plataforma"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEquipeNameUniquePerSecao() {
	equipe := suite.createTestEquipe(models.Equipe{Nome: "Plataforma"})

	// The same name in the same section is rejected
	r := test.Request(suite.T(), http.MethodPost, "/v1/equipes", v1.EquipeEditable{SecaoID: equipe.SecaoID, Nome: "Plataforma"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The same name in another section is fine
	outraSecao := suite.createTestSecao(models.Secao{})
	r = test.Request(suite.T(), http.MethodPost, "/v1/equipes", v1.EquipeEditable{SecaoID: outraSecao.ID, Nome: "Plataforma"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestEquipeListFilter() {
	secao := suite.createTestSecao(models.Secao{})
	suite.createTestEquipe(models.Equipe{SecaoID: secao.ID})
	suite.createTestEquipe(models.Equipe{})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/equipes?secao_id=%d", secao.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EquipeListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Len(response.Data, 1)
}
