package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/automacao-pmo/backend/internal/controllers/v1"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/automacao-pmo/backend/test"
)

func (suite *TestSuiteStandard) TestRecursoCreate() {
	equipe := suite.createTestEquipe(models.Equipe{})

	body := v1.RecursoEditable{
		Nome:              "Maria Souza",
		Email:             "Maria.Souza@Example.com",
		EquipePrincipalID: &equipe.ID,
		Cargo:             "Desenvolvedora",
	}

	r := test.Request(suite.T(), http.MethodPost, "/v1/recursos", body, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.RecursoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("maria.souza@example.com", response.Data.Email)
}

func (suite *TestSuiteStandard) TestRecursoCreateDuplicateEmail() {
	recurso := suite.createTestRecurso(models.Recurso{})

	r := test.Request(suite.T(), http.MethodPost, "/v1/recursos", v1.RecursoEditable{Nome: "Outra Pessoa", Email: recurso.Email}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestRecursoCreateUnknownEquipe() {
	equipeID := uint64(4077)

	r := test.Request(suite.T(), http.MethodPost, "/v1/recursos", v1.RecursoEditable{Nome: "Maria", Email: "m@example.com", EquipePrincipalID: &equipeID}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestRecursoListFilter() {
	equipe := suite.createTestEquipe(models.Equipe{})
	suite.createTestRecurso(models.Recurso{Nome: "Bruno", EquipePrincipalID: &equipe.ID})
	suite.createTestRecurso(models.Recurso{Nome: "Ana", EquipePrincipalID: &equipe.ID})
	suite.createTestRecurso(models.Recurso{Nome: "Carlos"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("/v1/recursos?equipe_id=%d", equipe.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecursoListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().Len(response.Data, 2)
	suite.Assert().Equal("Ana", response.Data[0].Nome)
	suite.Assert().Equal("Bruno", response.Data[1].Nome)
}

func (suite *TestSuiteStandard) TestRecursoUpdateAndDelete() {
	recurso := suite.createTestRecurso(models.Recurso{Cargo: "Analista"})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("/v1/recursos/%d", recurso.ID), map[string]any{"cargo": "Coordenador"}, test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.RecursoResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("Coordenador", response.Data.Cargo)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("/v1/recursos/%d", recurso.ID), "", test.AdminHeader(suite.T()))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
}
