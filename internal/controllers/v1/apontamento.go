package v1

import (
	"net/http"
	"time"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ApontamentoEditable represents all user configurable parameters.
// Entries created through the API are always MANUAL, JIRA entries only
// ever come from the synchronization job.
type ApontamentoEditable struct {
	RecursoID       uint64          `json:"recurso_id" example:"87"`
	ProjetoID       uint64          `json:"projeto_id" example:"4312"`
	DataApontamento time.Time       `json:"data_apontamento" example:"2025-03-12T00:00:00Z"`
	HorasApontadas  decimal.Decimal `json:"horas_apontadas" example:"8"`
	Descricao       string          `json:"descricao" example:"Revisão de código" default:""`
}

func (editable ApontamentoEditable) model() models.Apontamento {
	return models.Apontamento{
		RecursoID:       editable.RecursoID,
		ProjetoID:       editable.ProjetoID,
		DataApontamento: editable.DataApontamento,
		HorasApontadas:  editable.HorasApontadas,
		Descricao:       editable.Descricao,
		Fonte:           models.FonteManual,
	}
}

type ApontamentoResponse struct {
	Data  *models.Apontamento `json:"data"`  // Data for the Apontamento
	Error *string             `json:"error"` // The error, if any occurred
}

type ApontamentoListResponse struct {
	Data  []models.Apontamento `json:"data"`  // List of Apontamentos
	Error *string              `json:"error"` // The error, if any occurred
}

// RegisterApontamentoRoutes registers the routes for apontamentos with
// the RouterGroup that is passed.
func RegisterApontamentoRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsApontamentoList)
		r.GET("", GetApontamentos)
		r.POST("", auth.Middleware(), auth.RequireAdmin(), CreateApontamento)
	}

	{
		r.OPTIONS("/:id", OptionsApontamentoDetail)
		r.GET("/:id", GetApontamento)
		r.PATCH("/:id", auth.Middleware(), auth.RequireAdmin(), UpdateApontamento)
		r.DELETE("/:id", auth.Middleware(), auth.RequireAdmin(), DeleteApontamento)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Apontamentos
// @Success		204
// @Router			/v1/apontamentos [options]
func OptionsApontamentoList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Apontamentos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/apontamentos/{id} [options]
func OptionsApontamentoDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Apontamento{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create apontamento
// @Description	Creates a new manual apontamento
// @Tags			Apontamentos
// @Produce		json
// @Success		201			{object}	ApontamentoResponse
// @Failure		400			{object}	ApontamentoResponse
// @Failure		404			{object}	ApontamentoResponse
// @Param			apontamento	body		ApontamentoEditable	true	"Apontamento"
// @Router			/v1/apontamentos [post]
func CreateApontamento(c *gin.Context) {
	var editable ApontamentoEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoResponse{Error: &s})
		return
	}

	apontamento := editable.model()
	err = models.DB.Create(&apontamento).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ApontamentoResponse{Data: &apontamento})
}

// @Summary		Get apontamentos
// @Description	Returns a list of apontamentos
// @Tags			Apontamentos
// @Produce		json
// @Success		200	{object}	ApontamentoListResponse
// @Failure		400	{object}	ApontamentoListResponse
// @Router			/v1/apontamentos [get]
// @Param			recurso_id	query	uint64	false	"Filter by recurso"
// @Param			projeto_id	query	uint64	false	"Filter by projeto"
// @Param			data_inicio	query	string	false	"Entries from this date (RFC 3339)"
// @Param			data_fim	query	string	false	"Entries up to this date (RFC 3339)"
func GetApontamentos(c *gin.Context) {
	var filter struct {
		RecursoID  uint64     `form:"recurso_id"`
		ProjetoID  uint64     `form:"projeto_id"`
		DataInicio *time.Time `form:"data_inicio" time_format:"2006-01-02" time_utc:"1"`
		DataFim    *time.Time `form:"data_fim" time_format:"2006-01-02" time_utc:"1"`
	}

	err := c.ShouldBind(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ApontamentoListResponse{Error: &s})
		return
	}

	q := models.DB.
		Where(&models.Apontamento{RecursoID: filter.RecursoID, ProjetoID: filter.ProjetoID}).
		Order("data_apontamento ASC, id ASC")

	if filter.DataInicio != nil {
		q = q.Where("data_apontamento >= ?", *filter.DataInicio)
	}
	if filter.DataFim != nil {
		q = q.Where("data_apontamento <= ?", *filter.DataFim)
	}

	var apontamentos []models.Apontamento
	err = q.Find(&apontamentos).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ApontamentoListResponse{Data: apontamentos})
}

// @Summary		Get apontamento
// @Description	Returns a specific apontamento
// @Tags			Apontamentos
// @Produce		json
// @Success		200	{object}	ApontamentoResponse
// @Failure		400	{object}	ApontamentoResponse
// @Failure		404	{object}	ApontamentoResponse
// @Router			/v1/apontamentos/{id} [get]
func GetApontamento(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoResponse{Error: &s})
		return
	}

	var apontamento models.Apontamento
	err = models.DB.First(&apontamento, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ApontamentoResponse{Data: &apontamento})
}

// @Summary		Update apontamento
// @Description	Update an existing manual apontamento. JIRA-sourced entries cannot be changed.
// @Tags			Apontamentos
// @Accept			json
// @Produce		json
// @Success		200			{object}	ApontamentoResponse
// @Failure		400			{object}	ApontamentoResponse
// @Failure		404			{object}	ApontamentoResponse
// @Param			apontamento	body		ApontamentoEditable	true	"Apontamento"
// @Router			/v1/apontamentos/{id} [patch]
func UpdateApontamento(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoResponse{Error: &s})
		return
	}

	var apontamento models.Apontamento
	err = models.DB.First(&apontamento, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoResponse{Error: &s})
		return
	}

	if apontamento.Fonte == models.FonteJira {
		s := errApontamentoJira.Error()
		c.JSON(http.StatusBadRequest, ApontamentoResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ApontamentoEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoResponse{Error: &s})
		return
	}

	var data ApontamentoEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoResponse{Error: &s})
		return
	}

	err = models.DB.Model(&apontamento).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApontamentoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ApontamentoResponse{Data: &apontamento})
}

// @Summary		Delete apontamento
// @Description	Deletes an apontamento
// @Tags			Apontamentos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/apontamentos/{id} [delete]
func DeleteApontamento(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var apontamento models.Apontamento
	err = models.DB.First(&apontamento, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if apontamento.Fonte == models.FonteJira {
		c.JSON(http.StatusBadRequest, httpError{Error: errApontamentoJira.Error()})
		return
	}

	err = models.DB.Delete(&apontamento).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
