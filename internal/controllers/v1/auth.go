package v1

import (
	"net/http"
	"strings"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// LoginEditable is the login request body.
type LoginEditable struct {
	Email string `json:"email" example:"maria.souza@example.com"`
	Senha string `json:"senha" example:"hunter2"`
}

// Login carries the token and the user it was issued for.
type Login struct {
	Token   string         `json:"token"`
	Usuario models.Usuario `json:"usuario"`
}

type LoginResponse struct {
	Data  *Login  `json:"data"`  // The issued token
	Error *string `json:"error"` // The error, if any occurred
}

// RegisterAuthRoutes registers the authentication routes with the
// RouterGroup that is passed.
func RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/login", OptionsLogin)
	r.POST("/login", PostLogin)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Auth
// @Success		204
// @Router			/v1/auth/login [options]
func OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Log in
// @Description	Issues a bearer token for an active user
// @Tags			Auth
// @Produce		json
// @Success		200		{object}	LoginResponse
// @Failure		400		{object}	LoginResponse
// @Failure		401		{object}	LoginResponse
// @Param			login	body		LoginEditable	true	"Credentials"
// @Router			/v1/auth/login [post]
func PostLogin(c *gin.Context) {
	var editable LoginEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), LoginResponse{Error: &s})
		return
	}

	var usuario models.Usuario
	email := strings.ToLower(strings.TrimSpace(editable.Email))
	err = models.DB.Where("email = ?", email).First(&usuario).Error
	if err != nil || !usuario.Ativo || !usuario.CheckSenha(editable.Senha) {
		// The same answer for unknown email and wrong password
		s := errCredenciaisInvalidas.Error()
		c.JSON(http.StatusUnauthorized, LoginResponse{Error: &s})
		return
	}

	token, err := auth.NewToken(usuario.ID, usuario.Role)
	if err != nil {
		s := models.ErrGeneral.Error()
		c.JSON(http.StatusInternalServerError, LoginResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Data: &Login{Token: token, Usuario: usuario}})
}
