package v1

import (
	"net/http"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RecursoEditable represents all user configurable parameters
type RecursoEditable struct {
	EquipePrincipalID *uint64 `json:"equipe_principal_id" example:"7"`
	Nome              string  `json:"nome" example:"Maria Souza"`
	Email             string  `json:"email" example:"maria.souza@example.com"`
	Matricula         string  `json:"matricula" example:"F1234567" default:""`
	Cargo             string  `json:"cargo" example:"Desenvolvedora" default:""`
	Ativo             bool    `json:"ativo" example:"true" default:"true"`
}

func (editable RecursoEditable) model() models.Recurso {
	return models.Recurso{
		EquipePrincipalID: editable.EquipePrincipalID,
		Nome:              editable.Nome,
		Email:             editable.Email,
		Matricula:         editable.Matricula,
		Cargo:             editable.Cargo,
		Ativo:             editable.Ativo,
	}
}

type RecursoResponse struct {
	Data  *models.Recurso `json:"data"`  // Data for the Recurso
	Error *string         `json:"error"` // The error, if any occurred
}

type RecursoListResponse struct {
	Data  []models.Recurso `json:"data"`  // List of Recursos
	Error *string          `json:"error"` // The error, if any occurred
}

// RegisterRecursoRoutes registers the routes for recursos with
// the RouterGroup that is passed.
func RegisterRecursoRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsRecursoList)
		r.GET("", GetRecursos)
		r.POST("", auth.Middleware(), auth.RequireAdmin(), CreateRecurso)
	}

	{
		r.OPTIONS("/:id", OptionsRecursoDetail)
		r.GET("/:id", GetRecurso)
		r.PATCH("/:id", auth.Middleware(), auth.RequireAdmin(), UpdateRecurso)
		r.DELETE("/:id", auth.Middleware(), auth.RequireAdmin(), DeleteRecurso)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recursos
// @Success		204
// @Router			/v1/recursos [options]
func OptionsRecursoList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Recursos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/recursos/{id} [options]
func OptionsRecursoDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Recurso{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create recurso
// @Description	Creates a new recurso
// @Tags			Recursos
// @Produce		json
// @Success		201		{object}	RecursoResponse
// @Failure		400		{object}	RecursoResponse
// @Failure		404		{object}	RecursoResponse
// @Param			recurso	body		RecursoEditable	true	"Recurso"
// @Router			/v1/recursos [post]
func CreateRecurso(c *gin.Context) {
	editable := RecursoEditable{Ativo: true}

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoResponse{Error: &s})
		return
	}

	recurso := editable.model()
	err = models.DB.Create(&recurso).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, RecursoResponse{Data: &recurso})
}

// @Summary		Get recursos
// @Description	Returns a list of recursos
// @Tags			Recursos
// @Produce		json
// @Success		200	{object}	RecursoListResponse
// @Failure		400	{object}	RecursoListResponse
// @Router			/v1/recursos [get]
// @Param			equipe_id	query	uint64	false	"Filter by equipe principal"
func GetRecursos(c *gin.Context) {
	var filter struct {
		EquipeID uint64 `form:"equipe_id"`
	}

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := models.DB.Order("nome ASC")
	if filter.EquipeID != 0 {
		q = q.Where(&models.Recurso{EquipePrincipalID: &filter.EquipeID})
	}

	var recursos []models.Recurso
	err := q.Find(&recursos).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, RecursoListResponse{Data: recursos})
}

// @Summary		Get recurso
// @Description	Returns a specific recurso
// @Tags			Recursos
// @Produce		json
// @Success		200	{object}	RecursoResponse
// @Failure		400	{object}	RecursoResponse
// @Failure		404	{object}	RecursoResponse
// @Router			/v1/recursos/{id} [get]
func GetRecurso(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoResponse{Error: &s})
		return
	}

	var recurso models.Recurso
	err = models.DB.First(&recurso, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, RecursoResponse{Data: &recurso})
}

// @Summary		Update recurso
// @Description	Update an existing recurso. Only values to be updated need to be specified.
// @Tags			Recursos
// @Accept			json
// @Produce		json
// @Success		200		{object}	RecursoResponse
// @Failure		400		{object}	RecursoResponse
// @Failure		404		{object}	RecursoResponse
// @Param			recurso	body		RecursoEditable	true	"Recurso"
// @Router			/v1/recursos/{id} [patch]
func UpdateRecurso(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoResponse{Error: &s})
		return
	}

	var recurso models.Recurso
	err = models.DB.First(&recurso, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, RecursoEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoResponse{Error: &s})
		return
	}

	var data RecursoEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoResponse{Error: &s})
		return
	}

	err = models.DB.Model(&recurso).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), RecursoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, RecursoResponse{Data: &recurso})
}

// @Summary		Delete recurso
// @Description	Deletes a recurso
// @Tags			Recursos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/recursos/{id} [delete]
func DeleteRecurso(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var recurso models.Recurso
	err = models.DB.First(&recurso, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&recurso).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
