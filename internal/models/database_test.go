package models_test

import (
	"github.com/automacao-pmo/backend/internal/models"
)

func (suite *TestSuiteStandard) TestNotFoundError() {
	err := models.DB.First(&models.StatusProjeto{}, 4077).Error
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Equal("there is no status projeto matching your query", err.Error())
}

func (suite *TestSuiteStandard) TestGeneralErrorOnClosedDB() {
	suite.CloseDB()

	err := models.DB.First(&models.Secao{}, 1).Error
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
