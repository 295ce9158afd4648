package v1

import (
	"net/http"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// SecaoEditable represents all user configurable parameters
type SecaoEditable struct {
	Nome      string `json:"nome" example:"Engenharia de Software"`
	Descricao string `json:"descricao" example:"Seção responsável pelos sistemas internos" default:""`
	Ativo     bool   `json:"ativo" example:"true" default:"true"`
}

func (editable SecaoEditable) model() models.Secao {
	return models.Secao{
		Nome:      editable.Nome,
		Descricao: editable.Descricao,
		Ativo:     editable.Ativo,
	}
}

type SecaoResponse struct {
	Data  *models.Secao `json:"data"`  // Data for the Secao
	Error *string       `json:"error"` // The error, if any occurred
}

type SecaoListResponse struct {
	Data  []models.Secao `json:"data"`  // List of Secoes
	Error *string        `json:"error"` // The error, if any occurred
}

// RegisterSecaoRoutes registers the routes for secoes with
// the RouterGroup that is passed.
func RegisterSecaoRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsSecaoList)
		r.GET("", GetSecoes)
		r.POST("", auth.Middleware(), auth.RequireAdmin(), CreateSecao)
	}

	{
		r.OPTIONS("/:id", OptionsSecaoDetail)
		r.GET("/:id", GetSecao)
		r.PATCH("/:id", auth.Middleware(), auth.RequireAdmin(), UpdateSecao)
		r.DELETE("/:id", auth.Middleware(), auth.RequireAdmin(), DeleteSecao)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Secoes
// @Success		204
// @Router			/v1/secoes [options]
func OptionsSecaoList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Secoes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/secoes/{id} [options]
func OptionsSecaoDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Secao{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create secao
// @Description	Creates a new secao
// @Tags			Secoes
// @Produce		json
// @Success		201		{object}	SecaoResponse
// @Failure		400		{object}	SecaoResponse
// @Failure		500		{object}	SecaoResponse
// @Param			secao	body		SecaoEditable	true	"Secao"
// @Router			/v1/secoes [post]
func CreateSecao(c *gin.Context) {
	editable := SecaoEditable{Ativo: true}

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoResponse{Error: &s})
		return
	}

	secao := editable.model()
	err = models.DB.Create(&secao).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, SecaoResponse{Data: &secao})
}

// @Summary		Get secoes
// @Description	Returns a list of secoes
// @Tags			Secoes
// @Produce		json
// @Success		200	{object}	SecaoListResponse
// @Failure		500	{object}	SecaoListResponse
// @Router			/v1/secoes [get]
func GetSecoes(c *gin.Context) {
	var secoes []models.Secao
	err := models.DB.Order("nome ASC").Find(&secoes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SecaoListResponse{Data: secoes})
}

// @Summary		Get secao
// @Description	Returns a specific secao
// @Tags			Secoes
// @Produce		json
// @Success		200	{object}	SecaoResponse
// @Failure		400	{object}	SecaoResponse
// @Failure		404	{object}	SecaoResponse
// @Router			/v1/secoes/{id} [get]
func GetSecao(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoResponse{Error: &s})
		return
	}

	var secao models.Secao
	err = models.DB.First(&secao, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SecaoResponse{Data: &secao})
}

// @Summary		Update secao
// @Description	Update an existing secao. Only values to be updated need to be specified.
// @Tags			Secoes
// @Accept			json
// @Produce		json
// @Success		200		{object}	SecaoResponse
// @Failure		400		{object}	SecaoResponse
// @Failure		404		{object}	SecaoResponse
// @Param			secao	body		SecaoEditable	true	"Secao"
// @Router			/v1/secoes/{id} [patch]
func UpdateSecao(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoResponse{Error: &s})
		return
	}

	var secao models.Secao
	err = models.DB.First(&secao, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, SecaoEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoResponse{Error: &s})
		return
	}

	var data SecaoEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoResponse{Error: &s})
		return
	}

	err = models.DB.Model(&secao).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SecaoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, SecaoResponse{Data: &secao})
}

// @Summary		Delete secao
// @Description	Deletes a secao
// @Tags			Secoes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/secoes/{id} [delete]
func DeleteSecao(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var secao models.Secao
	err = models.DB.First(&secao, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&secao).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
