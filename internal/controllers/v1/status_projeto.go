package v1

import (
	"net/http"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// StatusProjetoEditable represents all user configurable parameters
type StatusProjetoEditable struct {
	Nome          string `json:"nome" example:"Em Andamento"`
	Descricao     string `json:"descricao" example:"Projeto em execução" default:""`
	IsFinal       bool   `json:"is_final" example:"false" default:"false"`
	OrdemExibicao *int   `json:"ordem_exibicao" example:"2"`
}

func (editable StatusProjetoEditable) model() models.StatusProjeto {
	return models.StatusProjeto{
		Nome:          editable.Nome,
		Descricao:     editable.Descricao,
		IsFinal:       editable.IsFinal,
		OrdemExibicao: editable.OrdemExibicao,
	}
}

type StatusProjetoResponse struct {
	Data  *models.StatusProjeto `json:"data"`  // Data for the StatusProjeto
	Error *string               `json:"error"` // The error, if any occurred
}

type StatusProjetoListResponse struct {
	Data  []models.StatusProjeto `json:"data"`  // List of StatusProjetos
	Error *string                `json:"error"` // The error, if any occurred
}

// RegisterStatusProjetoRoutes registers the routes for status with
// the RouterGroup that is passed.
func RegisterStatusProjetoRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsStatusProjetoList)
		r.GET("", GetStatusProjetos)
		r.POST("", auth.Middleware(), auth.RequireAdmin(), CreateStatusProjeto)
	}

	{
		r.OPTIONS("/:id", OptionsStatusProjetoDetail)
		r.GET("/:id", GetStatusProjeto)
		r.PATCH("/:id", auth.Middleware(), auth.RequireAdmin(), UpdateStatusProjeto)
		r.DELETE("/:id", auth.Middleware(), auth.RequireAdmin(), DeleteStatusProjeto)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			StatusProjetos
// @Success		204
// @Router			/v1/status-projeto [options]
func OptionsStatusProjetoList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			StatusProjetos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/status-projeto/{id} [options]
func OptionsStatusProjetoDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.StatusProjeto{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create status
// @Description	Creates a new project status
// @Tags			StatusProjetos
// @Produce		json
// @Success		201		{object}	StatusProjetoResponse
// @Failure		400		{object}	StatusProjetoResponse
// @Param			status	body		StatusProjetoEditable	true	"StatusProjeto"
// @Router			/v1/status-projeto [post]
func CreateStatusProjeto(c *gin.Context) {
	var editable StatusProjetoEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoResponse{Error: &s})
		return
	}

	statusProjeto := editable.model()
	err = models.DB.Create(&statusProjeto).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, StatusProjetoResponse{Data: &statusProjeto})
}

// @Summary		Get status list
// @Description	Returns the list of project status ordered for display
// @Tags			StatusProjetos
// @Produce		json
// @Success		200	{object}	StatusProjetoListResponse
// @Router			/v1/status-projeto [get]
func GetStatusProjetos(c *gin.Context) {
	var statusProjetos []models.StatusProjeto
	err := models.DB.Order("ordem_exibicao ASC, nome ASC").Find(&statusProjetos).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, StatusProjetoListResponse{Data: statusProjetos})
}

// @Summary		Get status
// @Description	Returns a specific project status
// @Tags			StatusProjetos
// @Produce		json
// @Success		200	{object}	StatusProjetoResponse
// @Failure		400	{object}	StatusProjetoResponse
// @Failure		404	{object}	StatusProjetoResponse
// @Router			/v1/status-projeto/{id} [get]
func GetStatusProjeto(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoResponse{Error: &s})
		return
	}

	var statusProjeto models.StatusProjeto
	err = models.DB.First(&statusProjeto, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, StatusProjetoResponse{Data: &statusProjeto})
}

// @Summary		Update status
// @Description	Update an existing project status. Only values to be updated need to be specified.
// @Tags			StatusProjetos
// @Accept			json
// @Produce		json
// @Success		200		{object}	StatusProjetoResponse
// @Failure		400		{object}	StatusProjetoResponse
// @Failure		404		{object}	StatusProjetoResponse
// @Param			status	body		StatusProjetoEditable	true	"StatusProjeto"
// @Router			/v1/status-projeto/{id} [patch]
func UpdateStatusProjeto(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoResponse{Error: &s})
		return
	}

	var statusProjeto models.StatusProjeto
	err = models.DB.First(&statusProjeto, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, StatusProjetoEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoResponse{Error: &s})
		return
	}

	var data StatusProjetoEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoResponse{Error: &s})
		return
	}

	err = models.DB.Model(&statusProjeto).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatusProjetoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, StatusProjetoResponse{Data: &statusProjeto})
}

// @Summary		Delete status
// @Description	Deletes a project status
// @Tags			StatusProjetos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/status-projeto/{id} [delete]
func DeleteStatusProjeto(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var statusProjeto models.StatusProjeto
	err = models.DB.First(&statusProjeto, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&statusProjeto).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
