package router

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/automacao-pmo/backend/internal/controllers/healthz"
	v1 "github.com/automacao-pmo/backend/internal/controllers/v1"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/metrics"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router controls the routes for the API.
func Router() (*gin.Engine, error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(metrics.Middleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	// Profiling is disabled by default
	if _, ok := os.LookupEnv("ENABLE_PPROF"); ok {
		pprof.Register(r)
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	r.GET("/metrics", metrics.Handler())

	healthz.RegisterRoutes(r.Group("/healthz"))

	// API v1 setup
	apiV1 := r.Group("/v1")
	{
		apiV1.GET("", GetV1)
		apiV1.OPTIONS("", OptionsV1)
	}

	v1.RegisterAuthRoutes(apiV1.Group("/auth"))
	v1.RegisterSecaoRoutes(apiV1.Group("/secoes"))
	v1.RegisterEquipeRoutes(apiV1.Group("/equipes"))
	v1.RegisterRecursoRoutes(apiV1.Group("/recursos"))
	v1.RegisterStatusProjetoRoutes(apiV1.Group("/status-projeto"))
	v1.RegisterProjetoRoutes(apiV1.Group("/projetos"))
	v1.RegisterApontamentoRoutes(apiV1.Group("/apontamentos"))
	v1.RegisterHorasDisponiveisRoutes(apiV1.Group("/horas-disponiveis-rh"))
	v1.RegisterDimTempoRoutes(apiV1.Group("/dim-tempo"))
	v1.RegisterMatrizRoutes(apiV1.Group("/matriz-planejamento"))
	v1.RegisterRelatorioRoutes(apiV1.Group("/relatorios"))

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"/healthz"`
	Metrics string `json:"metrics" example:"/metrics"`
	Version string `json:"version" example:"/version"`
	V1      string `json:"v1" example:"/v1"`
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: "/healthz",
			Metrics: "/metrics",
			Version: "/version",
			V1:      "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Auth             string `json:"auth" example:"/v1/auth"`
	Secoes           string `json:"secoes" example:"/v1/secoes"`
	Equipes          string `json:"equipes" example:"/v1/equipes"`
	Recursos         string `json:"recursos" example:"/v1/recursos"`
	StatusProjeto    string `json:"status_projeto" example:"/v1/status-projeto"`
	Projetos         string `json:"projetos" example:"/v1/projetos"`
	Apontamentos     string `json:"apontamentos" example:"/v1/apontamentos"`
	HorasDisponiveis string `json:"horas_disponiveis_rh" example:"/v1/horas-disponiveis-rh"`
	DimTempo         string `json:"dim_tempo" example:"/v1/dim-tempo"`
	Matriz           string `json:"matriz_planejamento" example:"/v1/matriz-planejamento"`
	Relatorios       string `json:"relatorios" example:"/v1/relatorios"`
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Auth:             "/v1/auth",
			Secoes:           "/v1/secoes",
			Equipes:          "/v1/equipes",
			Recursos:         "/v1/recursos",
			StatusProjeto:    "/v1/status-projeto",
			Projetos:         "/v1/projetos",
			Apontamentos:     "/v1/apontamentos",
			HorasDisponiveis: "/v1/horas-disponiveis-rh",
			DimTempo:         "/v1/dim-tempo",
			Matriz:           "/v1/matriz-planejamento",
			Relatorios:       "/v1/relatorios",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
