package v1

import (
	"net/http"
	"strconv"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HorasDisponiveisEditable represents all user configurable parameters
type HorasDisponiveisEditable struct {
	RecursoID        uint64          `json:"recurso_id" example:"87"`
	Ano              int             `json:"ano" example:"2025"`
	Mes              int             `json:"mes" example:"3"`
	HorasDisponiveis decimal.Decimal `json:"horas_disponiveis" example:"168"`
}

func (editable HorasDisponiveisEditable) model() models.HorasDisponiveisRH {
	return models.HorasDisponiveisRH{
		RecursoID:        editable.RecursoID,
		Ano:              editable.Ano,
		Mes:              editable.Mes,
		HorasDisponiveis: editable.HorasDisponiveis,
	}
}

type HorasDisponiveisResponse struct {
	Data  *models.HorasDisponiveisRH `json:"data"`  // Data for the capacity row
	Error *string                    `json:"error"` // The error, if any occurred
}

type HorasDisponiveisListResponse struct {
	Data  []models.HorasDisponiveisRH `json:"data"`  // List of capacity rows
	Error *string                     `json:"error"` // The error, if any occurred
}

type GerarCapacidadeResponse struct {
	Data  *GerarCapacidadeResult `json:"data"`  // Result of the generation run
	Error *string                `json:"error"` // The error, if any occurred
}

type GerarCapacidadeResult struct {
	Ano            int             `json:"ano" example:"2025"`
	Recursos       int             `json:"recursos" example:"42"`
	LinhasGravadas int             `json:"linhas_gravadas" example:"504"`
	HorasPorDia    decimal.Decimal `json:"horas_por_dia" example:"8"`
}

// RegisterHorasDisponiveisRoutes registers the routes for HR capacity with
// the RouterGroup that is passed.
func RegisterHorasDisponiveisRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHorasDisponiveisList)
	r.GET("", GetHorasDisponiveis)
	r.POST("", auth.Middleware(), auth.RequireAdmin(), UpsertHorasDisponiveis)
	r.OPTIONS("/gerar", OptionsHorasDisponiveisGerar)
	r.POST("/gerar", auth.Middleware(), auth.RequireAdmin(), GerarHorasDisponiveis)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			HorasDisponiveis
// @Success		204
// @Router			/v1/horas-disponiveis-rh [options]
func OptionsHorasDisponiveisList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			HorasDisponiveis
// @Success		204
// @Router			/v1/horas-disponiveis-rh/gerar [options]
func OptionsHorasDisponiveisGerar(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get capacity
// @Description	Returns HR capacity rows for a year
// @Tags			HorasDisponiveis
// @Produce		json
// @Success		200	{object}	HorasDisponiveisListResponse
// @Failure		400	{object}	HorasDisponiveisListResponse
// @Router			/v1/horas-disponiveis-rh [get]
// @Param			ano			query	int		true	"Year"
// @Param			mes			query	int		false	"Month"
// @Param			recurso_id	query	uint64	false	"Filter by recurso"
func GetHorasDisponiveis(c *gin.Context) {
	var filter struct {
		Ano       int     `form:"ano"`
		Mes       *int    `form:"mes"`
		RecursoID *uint64 `form:"recurso_id"`
	}

	err := c.ShouldBind(&filter)
	if err != nil || filter.Ano == 0 {
		s := errAnoParameter.Error()
		c.JSON(http.StatusBadRequest, HorasDisponiveisListResponse{Error: &s})
		return
	}

	rows, err := models.CapacidadeEmEscopo(models.DB, filter.Ano, filter.Mes, filter.RecursoID, nil, nil)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HorasDisponiveisListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, HorasDisponiveisListResponse{Data: rows})
}

// @Summary		Upsert capacity
// @Description	Creates or replaces the HR capacity of a recurso for one month
// @Tags			HorasDisponiveis
// @Produce		json
// @Success		200		{object}	HorasDisponiveisResponse
// @Failure		400		{object}	HorasDisponiveisResponse
// @Failure		404		{object}	HorasDisponiveisResponse
// @Param			horas	body		HorasDisponiveisEditable	true	"Capacity"
// @Router			/v1/horas-disponiveis-rh [post]
func UpsertHorasDisponiveis(c *gin.Context) {
	var editable HorasDisponiveisEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HorasDisponiveisResponse{Error: &s})
		return
	}

	// There is exactly one capacity row per recurso and month, a second
	// submission replaces the stored hours.
	row := editable.model()
	err = models.DB.
		Where(&models.HorasDisponiveisRH{RecursoID: editable.RecursoID, Ano: editable.Ano, Mes: editable.Mes}).
		Assign(map[string]interface{}{"horas_disponiveis": editable.HorasDisponiveis}).
		FirstOrCreate(&row).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HorasDisponiveisResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, HorasDisponiveisResponse{Data: &row})
}

// @Summary		Generate capacity
// @Description	Generates the HR capacity for every active recurso as business days times hours per day
// @Tags			HorasDisponiveis
// @Produce		json
// @Success		200	{object}	GerarCapacidadeResponse
// @Failure		400	{object}	GerarCapacidadeResponse
// @Router			/v1/horas-disponiveis-rh/gerar [post]
// @Param			ano			query	int		true	"Year"
// @Param			horas_dia	query	number	true	"Hours per business day"
func GerarHorasDisponiveis(c *gin.Context) {
	ano, err := strconv.Atoi(c.Query("ano"))
	if err != nil || ano == 0 {
		s := errAnoParameter.Error()
		c.JSON(http.StatusBadRequest, GerarCapacidadeResponse{Error: &s})
		return
	}

	horasDia, err := decimal.NewFromString(c.Query("horas_dia"))
	if err != nil || !horasDia.IsPositive() {
		s := errHorasDiaParameter.Error()
		c.JSON(http.StatusBadRequest, GerarCapacidadeResponse{Error: &s})
		return
	}

	var recursos []models.Recurso
	err = models.DB.Where(&models.Recurso{Ativo: true}).Find(&recursos).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GerarCapacidadeResponse{Error: &s})
		return
	}

	result := GerarCapacidadeResult{Ano: ano, Recursos: len(recursos), HorasPorDia: horasDia}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		anyBusinessDays := false

		for mes := 1; mes <= 12; mes++ {
			dias, err := models.BusinessDays(tx, ano, mes)
			if err != nil {
				return err
			}

			if dias == 0 {
				continue
			}
			anyBusinessDays = true

			horas := horasDia.Mul(decimal.NewFromInt(dias))
			for _, recurso := range recursos {
				err = tx.
					Where(&models.HorasDisponiveisRH{RecursoID: recurso.ID, Ano: ano, Mes: mes}).
					Assign(map[string]interface{}{"horas_disponiveis": horas}).
					FirstOrCreate(&models.HorasDisponiveisRH{}).Error
				if err != nil {
					return err
				}

				result.LinhasGravadas++
			}
		}

		if !anyBusinessDays {
			return errDimTempoVazio
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), GerarCapacidadeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, GerarCapacidadeResponse{Data: &result})
}

type PopularDimTempoResponse struct {
	Data  *PopularDimTempoResult `json:"data"`  // Result of the population run
	Error *string                `json:"error"` // The error, if any occurred
}

type PopularDimTempoResult struct {
	Ano  int `json:"ano" example:"2025"`
	Dias int `json:"dias" example:"365"`
}

// RegisterDimTempoRoutes registers the routes for the calendar dimension
// with the RouterGroup that is passed.
func RegisterDimTempoRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/popular", OptionsDimTempoPopular)
	r.POST("/popular", auth.Middleware(), auth.RequireAdmin(), PopularDimTempo)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			DimTempo
// @Success		204
// @Router			/v1/dim-tempo/popular [options]
func OptionsDimTempoPopular(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Populate calendar
// @Description	Fills the calendar dimension for a whole year, replacing existing rows
// @Tags			DimTempo
// @Produce		json
// @Success		200	{object}	PopularDimTempoResponse
// @Failure		400	{object}	PopularDimTempoResponse
// @Router			/v1/dim-tempo/popular [post]
// @Param			ano	query	int	true	"Year"
func PopularDimTempo(c *gin.Context) {
	ano, err := strconv.Atoi(c.Query("ano"))
	if err != nil {
		s := errAnoParameter.Error()
		c.JSON(http.StatusBadRequest, PopularDimTempoResponse{Error: &s})
		return
	}

	dias, err := models.PopulateDimTempo(models.DB, ano)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PopularDimTempoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PopularDimTempoResponse{Data: &PopularDimTempoResult{Ano: ano, Dias: dias}})
}
