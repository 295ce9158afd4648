package v1

import (
	"net/http"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// EquipeEditable represents all user configurable parameters
type EquipeEditable struct {
	SecaoID   uint64 `json:"secao_id" example:"3"`
	Nome      string `json:"nome" example:"Plataforma"`
	Descricao string `json:"descricao" example:"Time de infraestrutura e plataforma" default:""`
	Ativo     bool   `json:"ativo" example:"true" default:"true"`
}

func (editable EquipeEditable) model() models.Equipe {
	return models.Equipe{
		SecaoID:   editable.SecaoID,
		Nome:      editable.Nome,
		Descricao: editable.Descricao,
		Ativo:     editable.Ativo,
	}
}

type EquipeResponse struct {
	Data  *models.Equipe `json:"data"`  // Data for the Equipe
	Error *string        `json:"error"` // The error, if any occurred
}

type EquipeListResponse struct {
	Data  []models.Equipe `json:"data"`  // List of Equipes
	Error *string         `json:"error"` // The error, if any occurred
}

// RegisterEquipeRoutes registers the routes for equipes with
// the RouterGroup that is passed.
func RegisterEquipeRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsEquipeList)
		r.GET("", GetEquipes)
		r.POST("", auth.Middleware(), auth.RequireAdmin(), CreateEquipe)
	}

	{
		r.OPTIONS("/:id", OptionsEquipeDetail)
		r.GET("/:id", GetEquipe)
		r.PATCH("/:id", auth.Middleware(), auth.RequireAdmin(), UpdateEquipe)
		r.DELETE("/:id", auth.Middleware(), auth.RequireAdmin(), DeleteEquipe)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Equipes
// @Success		204
// @Router			/v1/equipes [options]
func OptionsEquipeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Equipes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/equipes/{id} [options]
func OptionsEquipeDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Equipe{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create equipe
// @Description	Creates a new equipe in a secao
// @Tags			Equipes
// @Produce		json
// @Success		201		{object}	EquipeResponse
// @Failure		400		{object}	EquipeResponse
// @Failure		404		{object}	EquipeResponse
// @Param			equipe	body		EquipeEditable	true	"Equipe"
// @Router			/v1/equipes [post]
func CreateEquipe(c *gin.Context) {
	editable := EquipeEditable{Ativo: true}

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeResponse{Error: &s})
		return
	}

	equipe := editable.model()
	err = models.DB.Create(&equipe).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, EquipeResponse{Data: &equipe})
}

// @Summary		Get equipes
// @Description	Returns a list of equipes
// @Tags			Equipes
// @Produce		json
// @Success		200	{object}	EquipeListResponse
// @Failure		400	{object}	EquipeListResponse
// @Router			/v1/equipes [get]
// @Param			secao_id	query	uint64	false	"Filter by secao"
func GetEquipes(c *gin.Context) {
	var filter struct {
		SecaoID uint64 `form:"secao_id"`
	}

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	var equipes []models.Equipe
	err := models.DB.
		Where(&models.Equipe{SecaoID: filter.SecaoID}).
		Order("nome ASC").
		Find(&equipes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, EquipeListResponse{Data: equipes})
}

// @Summary		Get equipe
// @Description	Returns a specific equipe
// @Tags			Equipes
// @Produce		json
// @Success		200	{object}	EquipeResponse
// @Failure		400	{object}	EquipeResponse
// @Failure		404	{object}	EquipeResponse
// @Router			/v1/equipes/{id} [get]
func GetEquipe(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeResponse{Error: &s})
		return
	}

	var equipe models.Equipe
	err = models.DB.First(&equipe, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, EquipeResponse{Data: &equipe})
}

// @Summary		Update equipe
// @Description	Update an existing equipe. Only values to be updated need to be specified.
// @Tags			Equipes
// @Accept			json
// @Produce		json
// @Success		200		{object}	EquipeResponse
// @Failure		400		{object}	EquipeResponse
// @Failure		404		{object}	EquipeResponse
// @Param			equipe	body		EquipeEditable	true	"Equipe"
// @Router			/v1/equipes/{id} [patch]
func UpdateEquipe(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeResponse{Error: &s})
		return
	}

	var equipe models.Equipe
	err = models.DB.First(&equipe, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EquipeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeResponse{Error: &s})
		return
	}

	var data EquipeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeResponse{Error: &s})
		return
	}

	err = models.DB.Model(&equipe).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), EquipeResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, EquipeResponse{Data: &equipe})
}

// @Summary		Delete equipe
// @Description	Deletes an equipe
// @Tags			Equipes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/equipes/{id} [delete]
func DeleteEquipe(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var equipe models.Equipe
	err = models.DB.First(&equipe, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&equipe).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
