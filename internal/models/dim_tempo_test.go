package models_test

import (
	"github.com/automacao-pmo/backend/internal/models"
)

func (suite *TestSuiteStandard) TestPopulateDimTempo() {
	dias, err := models.PopulateDimTempo(models.DB, 2025)
	suite.Require().Nil(err)
	suite.Assert().Equal(365, dias)

	// Leap year
	dias, err = models.PopulateDimTempo(models.DB, 2024)
	suite.Require().Nil(err)
	suite.Assert().Equal(366, dias)
}

func (suite *TestSuiteStandard) TestPopulateDimTempoIdempotent() {
	_, err := models.PopulateDimTempo(models.DB, 2025)
	suite.Require().Nil(err)

	// Populating the same year again replaces the rows instead of
	// duplicating them
	_, err = models.PopulateDimTempo(models.DB, 2025)
	suite.Require().Nil(err)

	var count int64
	err = models.DB.Model(&models.DimTempo{}).Where(&models.DimTempo{Ano: 2025}).Count(&count).Error
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(365), count)
}

func (suite *TestSuiteStandard) TestPopulateDimTempoAnoInvalido() {
	_, err := models.PopulateDimTempo(models.DB, 1889)
	suite.Assert().ErrorIs(err, models.ErrAnoInvalido)

	_, err = models.PopulateDimTempo(models.DB, 3000)
	suite.Assert().ErrorIs(err, models.ErrAnoInvalido)
}

func (suite *TestSuiteStandard) TestBusinessDays() {
	_, err := models.PopulateDimTempo(models.DB, 2025)
	suite.Require().Nil(err)

	// March 2025 has 21 weekdays
	dias, err := models.BusinessDays(models.DB, 2025, 3)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(21), dias)

	// Unpopulated years have no business days
	dias, err = models.BusinessDays(models.DB, 2019, 3)
	suite.Require().Nil(err)
	suite.Assert().Equal(int64(0), dias)
}
