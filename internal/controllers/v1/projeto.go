package v1

import (
	"net/http"
	"time"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// ProjetoEditable represents all user configurable parameters
type ProjetoEditable struct {
	Nome               string     `json:"nome" example:"Portal do Cliente"`
	CodigoEmpresa      *string    `json:"codigo_empresa" example:"PRJ-4312"`
	Descricao          string     `json:"descricao" example:"Reescrita do portal de autoatendimento" default:""`
	StatusProjetoID    uint64     `json:"status_projeto_id" example:"1"`
	SecaoID            *uint64    `json:"secao_id" example:"3"`
	DataInicioPrevista *time.Time `json:"data_inicio_prevista" example:"2025-01-06T00:00:00Z"`
	DataFimPrevista    *time.Time `json:"data_fim_prevista" example:"2025-09-30T00:00:00Z"`
	Ativo              bool       `json:"ativo" example:"true" default:"true"`
}

func (editable ProjetoEditable) model() models.Projeto {
	return models.Projeto{
		Nome:               editable.Nome,
		CodigoEmpresa:      editable.CodigoEmpresa,
		Descricao:          editable.Descricao,
		StatusProjetoID:    editable.StatusProjetoID,
		SecaoID:            editable.SecaoID,
		DataInicioPrevista: editable.DataInicioPrevista,
		DataFimPrevista:    editable.DataFimPrevista,
		Ativo:              editable.Ativo,
	}
}

type ProjetoResponse struct {
	Data  *models.Projeto `json:"data"`  // Data for the Projeto
	Error *string         `json:"error"` // The error, if any occurred
}

type ProjetoListResponse struct {
	Data  []models.Projeto `json:"data"`  // List of Projetos
	Error *string          `json:"error"` // The error, if any occurred
}

// RegisterProjetoRoutes registers the routes for projetos with
// the RouterGroup that is passed.
func RegisterProjetoRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsProjetoList)
		r.GET("", GetProjetos)
		r.POST("", auth.Middleware(), auth.RequireAdmin(), CreateProjeto)
	}

	{
		r.OPTIONS("/:id", OptionsProjetoDetail)
		r.GET("/:id", GetProjeto)
		r.PATCH("/:id", auth.Middleware(), auth.RequireAdmin(), UpdateProjeto)
		r.DELETE("/:id", auth.Middleware(), auth.RequireAdmin(), DeleteProjeto)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projetos
// @Success		204
// @Router			/v1/projetos [options]
func OptionsProjetoList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projetos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/projetos/{id} [options]
func OptionsProjetoDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Projeto{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create projeto
// @Description	Creates a new projeto
// @Tags			Projetos
// @Produce		json
// @Success		201		{object}	ProjetoResponse
// @Failure		400		{object}	ProjetoResponse
// @Failure		404		{object}	ProjetoResponse
// @Param			projeto	body		ProjetoEditable	true	"Projeto"
// @Router			/v1/projetos [post]
func CreateProjeto(c *gin.Context) {
	editable := ProjetoEditable{Ativo: true}

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoResponse{Error: &s})
		return
	}

	projeto := editable.model()
	err = models.DB.Create(&projeto).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusCreated, ProjetoResponse{Data: &projeto})
}

// @Summary		Get projetos
// @Description	Returns a list of projetos
// @Tags			Projetos
// @Produce		json
// @Success		200	{object}	ProjetoListResponse
// @Failure		400	{object}	ProjetoListResponse
// @Router			/v1/projetos [get]
// @Param			status_projeto_id	query	uint64	false	"Filter by status"
// @Param			secao_id			query	uint64	false	"Filter by secao"
func GetProjetos(c *gin.Context) {
	var filter struct {
		StatusProjetoID uint64 `form:"status_projeto_id"`
		SecaoID         uint64 `form:"secao_id"`
	}

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	q := models.DB.Order("nome ASC").
		Where(&models.Projeto{StatusProjetoID: filter.StatusProjetoID})
	if filter.SecaoID != 0 {
		q = q.Where(&models.Projeto{SecaoID: &filter.SecaoID})
	}

	var projetos []models.Projeto
	err := q.Find(&projetos).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoListResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProjetoListResponse{Data: projetos})
}

// @Summary		Get projeto
// @Description	Returns a specific projeto
// @Tags			Projetos
// @Produce		json
// @Success		200	{object}	ProjetoResponse
// @Failure		400	{object}	ProjetoResponse
// @Failure		404	{object}	ProjetoResponse
// @Router			/v1/projetos/{id} [get]
func GetProjeto(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoResponse{Error: &s})
		return
	}

	var projeto models.Projeto
	err = models.DB.First(&projeto, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProjetoResponse{Data: &projeto})
}

// @Summary		Update projeto
// @Description	Update an existing projeto. Only values to be updated need to be specified.
// @Tags			Projetos
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProjetoResponse
// @Failure		400		{object}	ProjetoResponse
// @Failure		404		{object}	ProjetoResponse
// @Param			projeto	body		ProjetoEditable	true	"Projeto"
// @Router			/v1/projetos/{id} [patch]
func UpdateProjeto(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoResponse{Error: &s})
		return
	}

	var projeto models.Projeto
	err = models.DB.First(&projeto, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ProjetoEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoResponse{Error: &s})
		return
	}

	var data ProjetoEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoResponse{Error: &s})
		return
	}

	err = models.DB.Model(&projeto).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProjetoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, ProjetoResponse{Data: &projeto})
}

// @Summary		Delete projeto
// @Description	Deletes a projeto
// @Tags			Projetos
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Router			/v1/projetos/{id} [delete]
func DeleteProjeto(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var projeto models.Projeto
	err = models.DB.First(&projeto, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&projeto).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
