package v1

import (
	"net/http"
	"time"

	"github.com/automacao-pmo/backend/internal/auth"
	"github.com/automacao-pmo/backend/internal/httputil"
	"github.com/automacao-pmo/backend/internal/models"
	"github.com/automacao-pmo/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// MesPlanejadoRealizado is the planned/realized pair of one month.
type MesPlanejadoRealizado struct {
	Planejado decimal.Decimal `json:"planejado" example:"20"`
	Realizado decimal.Decimal `json:"realizado" example:"8"`
}

// LinhaResumo is one of the report summary rows.
type LinhaResumo struct {
	Label            string                           `json:"label" example:"Esforço Total"`
	EsforcoPlanejado decimal.Decimal                  `json:"esforco_planejado" example:"95.5"`
	EsforcoRealizado decimal.Decimal                  `json:"esforco_realizado" example:"63"`
	Meses            map[string]MesPlanejadoRealizado `json:"meses"`
}

// ProjetoPlanejadoRealizado is the per-project report row.
type ProjetoPlanejadoRealizado struct {
	ID               uint64                           `json:"id" example:"4312"`
	Nome             string                           `json:"nome" example:"Portal do Cliente"`
	CodigoEmpresa    *string                          `json:"codigo_empresa" example:"PRJ-4312"`
	Status           string                           `json:"status" example:"Em Andamento"`
	EsforcoPlanejado decimal.Decimal                  `json:"esforco_planejado" example:"95.5"`
	EsforcoRealizado decimal.Decimal                  `json:"esforco_realizado" example:"63"`
	Meses            map[string]MesPlanejadoRealizado `json:"meses"`
}

// PlanejadoVsRealizado is the full planned-vs-realized report.
type PlanejadoVsRealizado struct {
	RecursoID    uint64                      `json:"recurso_id" example:"87"`
	LinhasResumo []LinhaResumo               `json:"linhas_resumo"`
	Projetos     []ProjetoPlanejadoRealizado `json:"projetos"`
}

type PlanejadoVsRealizadoResponse struct {
	Data  *PlanejadoVsRealizado `json:"data"`  // The report
	Error *string               `json:"error"` // The error, if any occurred
}

// DisponibilidadeRecurso is one row of the availability report.
type DisponibilidadeRecurso struct {
	RecursoID                             uint64          `json:"recurso_id" example:"87"`
	RecursoNome                           string          `json:"recurso_nome" example:"Maria Souza"`
	Ano                                   int             `json:"ano" example:"2025"`
	Mes                                   int             `json:"mes" example:"3"`
	HorasDisponiveisRH                    decimal.Decimal `json:"horas_disponiveis_rh" example:"168"`
	HorasPlanejadas                       decimal.Decimal `json:"horas_planejadas" example:"120"`
	HorasRealizadas                       decimal.Decimal `json:"horas_realizadas" example:"96"`
	HorasLivres                           decimal.Decimal `json:"horas_livres" example:"48"`
	PercentualAlocacaoRH                  decimal.Decimal `json:"percentual_alocacao_rh" example:"71.43"`
	PercentualUtilizacaoSobrePlanejado    decimal.Decimal `json:"percentual_utilizacao_sobre_planejado" example:"80"`
	PercentualUtilizacaoSobreDisponivelRH decimal.Decimal `json:"percentual_utilizacao_sobre_disponivel_rh" example:"57.14"`
}

type DisponibilidadeListResponse struct {
	Data  []DisponibilidadeRecurso `json:"data"`  // Availability rows
	Error *string                  `json:"error"` // The error, if any occurred
}

type HorasPorProjetoResponse struct {
	Data  []models.HorasPorProjetoLinha `json:"data"`  // Hours grouped by project
	Error *string                       `json:"error"` // The error, if any occurred
}

type HorasPorRecursoResponse struct {
	Data  []models.HorasPorRecursoLinha `json:"data"`  // Hours grouped by resource
	Error *string                       `json:"error"` // The error, if any occurred
}

// RegisterRelatorioRoutes registers the report routes with the RouterGroup
// that is passed. All reports are restricted to admins.
func RegisterRelatorioRoutes(r *gin.RouterGroup) {
	r.Use(auth.Middleware(), auth.RequireAdmin())

	r.GET("/planejado-vs-realizado", GetPlanejadoVsRealizado)
	r.GET("/disponibilidade-recursos", GetDisponibilidadeRecursos)
	r.GET("/horas-por-projeto", GetHorasPorProjeto)
	r.GET("/horas-por-recurso", GetHorasPorRecurso)
}

// @Summary		Planned vs realized report
// @Description	Compares planned and logged hours of a recurso per project over a contiguous month window
// @Tags			Relatorios
// @Produce		json
// @Success		200	{object}	PlanejadoVsRealizadoResponse
// @Failure		400	{object}	PlanejadoVsRealizadoResponse
// @Failure		404	{object}	PlanejadoVsRealizadoResponse
// @Router			/v1/relatorios/planejado-vs-realizado [get]
// @Param			recurso_id	query	uint64	true	"Recurso"
// @Param			status		query	string	false	"Filter projects by status name"
// @Param			mes_inicio	query	string	false	"Window start (YYYY-MM)"
// @Param			mes_fim		query	string	false	"Window end (YYYY-MM)"
func GetPlanejadoVsRealizado(c *gin.Context) {
	var filter struct {
		RecursoID uint64 `form:"recurso_id"`
		Status    string `form:"status"`
		MesInicio string `form:"mes_inicio"`
		MesFim    string `form:"mes_fim"`
	}

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBind(&filter)

	if filter.RecursoID == 0 {
		s := errRecursoIDParameter.Error()
		c.JSON(http.StatusBadRequest, PlanejadoVsRealizadoResponse{Error: &s})
		return
	}

	var recurso models.Recurso
	err := models.DB.First(&recurso, filter.RecursoID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanejadoVsRealizadoResponse{Error: &s})
		return
	}

	var mesInicio, mesFim types.Month
	if filter.MesInicio != "" {
		if mesInicio, err = types.ParseMonth(filter.MesInicio); err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, PlanejadoVsRealizadoResponse{Error: &s})
			return
		}
	}
	if filter.MesFim != "" {
		if mesFim, err = types.ParseMonth(filter.MesFim); err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, PlanejadoVsRealizadoResponse{Error: &s})
			return
		}
	}
	if !mesInicio.IsZero() && !mesFim.IsZero() && mesFim.Before(mesInicio) {
		s := errJanelaInvalida.Error()
		c.JSON(http.StatusBadRequest, PlanejadoVsRealizadoResponse{Error: &s})
		return
	}

	report, err := buildPlanejadoVsRealizado(recurso, filter.Status, mesInicio, mesFim)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PlanejadoVsRealizadoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, PlanejadoVsRealizadoResponse{Data: report})
}

// buildPlanejadoVsRealizado assembles the report from two independently
// grouped aggregates that are outer-joined on (projeto, ano, mes).
func buildPlanejadoVsRealizado(recurso models.Recurso, statusNome string, mesInicio, mesFim types.Month) (*PlanejadoVsRealizado, error) {
	planejado, err := models.PlanejadoPorProjetoMes(models.DB, recurso.ID)
	if err != nil {
		return nil, err
	}

	realizado, err := models.RealizadoPorProjetoMes(models.DB, recurso.ID)
	if err != nil {
		return nil, err
	}

	// The window is the given bounds, falling back to the earliest and
	// latest month carrying data on either side
	var dataMin, dataMax types.Month
	for _, soma := range planejado {
		dataMin, dataMax = widen(dataMin, dataMax, soma.Competencia())
	}
	for _, soma := range realizado {
		dataMin, dataMax = widen(dataMin, dataMax, soma.Competencia())
	}

	if mesInicio.IsZero() {
		mesInicio = dataMin
	}
	if mesFim.IsZero() {
		mesFim = dataMax
	}

	report := &PlanejadoVsRealizado{
		RecursoID:    recurso.ID,
		LinhasResumo: []LinhaResumo{},
		Projetos:     []ProjetoPlanejadoRealizado{},
	}

	if mesInicio.IsZero() || mesFim.IsZero() {
		// No data and no bounds, there is no window to report on
		return report, nil
	}

	// Months of the reporting window form a contiguous sequence, months
	// without data appear with zero values
	meses := mesInicio.Sequence(mesFim)

	type chave struct {
		projetoID uint64
		mes       types.Month
	}

	planejadoPorChave := make(map[chave]decimal.Decimal)
	realizadoPorChave := make(map[chave]decimal.Decimal)
	projetoIDs := []uint64{}

	for _, soma := range planejado {
		mes := soma.Competencia()
		if mes.Before(mesInicio) || mes.After(mesFim) {
			continue
		}

		planejadoPorChave[chave{soma.ProjetoID, mes}] = soma.Horas
		if !slices.Contains(projetoIDs, soma.ProjetoID) {
			projetoIDs = append(projetoIDs, soma.ProjetoID)
		}
	}

	for _, soma := range realizado {
		mes := soma.Competencia()
		if mes.Before(mesInicio) || mes.After(mesFim) {
			continue
		}

		realizadoPorChave[chave{soma.ProjetoID, mes}] = soma.Horas
		if !slices.Contains(projetoIDs, soma.ProjetoID) {
			projetoIDs = append(projetoIDs, soma.ProjetoID)
		}
	}

	// Summary rows are computed over all projects, before the status
	// filter narrows the project list
	capacidade, err := models.CapacidadePorMes(models.DB, recurso.ID)
	if err != nil {
		return nil, err
	}

	total := LinhaResumo{Label: "Esforço Total", Meses: make(map[string]MesPlanejadoRealizado, len(meses))}
	disponivel := LinhaResumo{Label: "Disponível RH", Meses: make(map[string]MesPlanejadoRealizado, len(meses))}
	gap := LinhaResumo{Label: "Gap", Meses: make(map[string]MesPlanejadoRealizado, len(meses))}

	for _, mes := range meses {
		var somaPlanejado, somaRealizado decimal.Decimal
		for _, projetoID := range projetoIDs {
			somaPlanejado = somaPlanejado.Add(planejadoPorChave[chave{projetoID, mes}])
			somaRealizado = somaRealizado.Add(realizadoPorChave[chave{projetoID, mes}])
		}

		total.Meses[mes.String()] = MesPlanejadoRealizado{Planejado: somaPlanejado, Realizado: somaRealizado}
		total.EsforcoPlanejado = total.EsforcoPlanejado.Add(somaPlanejado)
		total.EsforcoRealizado = total.EsforcoRealizado.Add(somaRealizado)

		horasDisponiveis := capacidade[mes]
		disponivel.Meses[mes.String()] = MesPlanejadoRealizado{Planejado: horasDisponiveis}
		disponivel.EsforcoPlanejado = disponivel.EsforcoPlanejado.Add(horasDisponiveis)

		horasGap := horasDisponiveis.Sub(somaPlanejado)
		gap.Meses[mes.String()] = MesPlanejadoRealizado{Planejado: horasGap}
		gap.EsforcoPlanejado = gap.EsforcoPlanejado.Add(horasGap)
	}

	report.LinhasResumo = []LinhaResumo{total, disponivel, gap}

	if len(projetoIDs) == 0 {
		return report, nil
	}

	var projetos []models.Projeto
	err = models.DB.Preload("StatusProjeto").Find(&projetos, projetoIDs).Error
	if err != nil {
		return nil, err
	}

	for _, projeto := range projetos {
		// The status filter applies to the project list only, after
		// aggregation
		if statusNome != "" && projeto.StatusProjeto.Nome != statusNome {
			continue
		}

		linha := ProjetoPlanejadoRealizado{
			ID:            projeto.ID,
			Nome:          projeto.Nome,
			CodigoEmpresa: projeto.CodigoEmpresa,
			Status:        projeto.StatusProjeto.Nome,
			Meses:         make(map[string]MesPlanejadoRealizado, len(meses)),
		}

		for _, mes := range meses {
			par := MesPlanejadoRealizado{
				Planejado: planejadoPorChave[chave{projeto.ID, mes}],
				Realizado: realizadoPorChave[chave{projeto.ID, mes}],
			}

			linha.Meses[mes.String()] = par
			linha.EsforcoPlanejado = linha.EsforcoPlanejado.Add(par.Planejado)
			linha.EsforcoRealizado = linha.EsforcoRealizado.Add(par.Realizado)
		}

		report.Projetos = append(report.Projetos, linha)
	}

	slices.SortFunc(report.Projetos, func(a, b ProjetoPlanejadoRealizado) int {
		switch {
		case a.Nome < b.Nome:
			return -1
		case a.Nome > b.Nome:
			return 1
		default:
			return 0
		}
	})

	return report, nil
}

// widen grows the [inicio, fim] window so that it contains mes. Bounds
// that were explicitly given are kept.
func widen(inicio, fim, mes types.Month) (types.Month, types.Month) {
	if inicio.IsZero() || mes.Before(inicio) {
		inicio = mes
	}
	if fim.IsZero() || mes.After(fim) {
		fim = mes
	}

	return inicio, fim
}

var cem = decimal.NewFromInt(100)

// percentual returns parte/todo as a percentage rounded to two decimal
// places, 0 when the denominator is zero.
func percentual(parte, todo decimal.Decimal) decimal.Decimal {
	if todo.IsZero() {
		return decimal.Zero
	}

	return parte.Div(todo).Mul(cem).Round(2)
}

// @Summary		Availability report
// @Description	Returns capacity, planned and realized hours plus utilization percentages per recurso and month
// @Tags			Relatorios
// @Produce		json
// @Success		200	{object}	DisponibilidadeListResponse
// @Failure		400	{object}	DisponibilidadeListResponse
// @Router			/v1/relatorios/disponibilidade-recursos [get]
// @Param			ano			query	int		true	"Year"
// @Param			mes			query	int		false	"Month"
// @Param			recurso_id	query	uint64	false	"Filter by recurso"
// @Param			equipe_id	query	uint64	false	"Filter by equipe"
// @Param			secao_id	query	uint64	false	"Filter by secao"
func GetDisponibilidadeRecursos(c *gin.Context) {
	var filter struct {
		Ano       int     `form:"ano"`
		Mes       *int    `form:"mes"`
		RecursoID *uint64 `form:"recurso_id"`
		EquipeID  *uint64 `form:"equipe_id"`
		SecaoID   *uint64 `form:"secao_id"`
	}

	err := c.ShouldBind(&filter)
	if err != nil || filter.Ano == 0 {
		s := errAnoParameter.Error()
		c.JSON(http.StatusBadRequest, DisponibilidadeListResponse{Error: &s})
		return
	}
	if filter.Mes != nil && (*filter.Mes < 1 || *filter.Mes > 12) {
		s := errMesParameter.Error()
		c.JSON(http.StatusBadRequest, DisponibilidadeListResponse{Error: &s})
		return
	}

	capacidade, err := models.CapacidadeEmEscopo(models.DB, filter.Ano, filter.Mes, filter.RecursoID, filter.EquipeID, filter.SecaoID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DisponibilidadeListResponse{Error: &s})
		return
	}

	linhas := make([]DisponibilidadeRecurso, 0, len(capacidade))
	if len(capacidade) == 0 {
		c.JSON(http.StatusOK, DisponibilidadeListResponse{Data: linhas})
		return
	}

	recursoIDs := make([]uint64, 0, len(capacidade))
	for _, row := range capacidade {
		if !slices.Contains(recursoIDs, row.RecursoID) {
			recursoIDs = append(recursoIDs, row.RecursoID)
		}
	}

	planejado, err := models.PlanejadoPorRecursoMes(models.DB, recursoIDs)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DisponibilidadeListResponse{Error: &s})
		return
	}

	realizado, err := models.RealizadoPorRecursoMes(models.DB, recursoIDs)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DisponibilidadeListResponse{Error: &s})
		return
	}

	type chave struct {
		recursoID uint64
		mes       types.Month
	}

	planejadoPorChave := make(map[chave]decimal.Decimal, len(planejado))
	for _, soma := range planejado {
		planejadoPorChave[chave{soma.RecursoID, soma.Competencia()}] = soma.Horas
	}

	realizadoPorChave := make(map[chave]decimal.Decimal, len(realizado))
	for _, soma := range realizado {
		realizadoPorChave[chave{soma.RecursoID, soma.Competencia()}] = soma.Horas
	}

	for _, row := range capacidade {
		mes := types.NewMonth(row.Ano, time.Month(row.Mes))
		horasPlanejadas := planejadoPorChave[chave{row.RecursoID, mes}]
		horasRealizadas := realizadoPorChave[chave{row.RecursoID, mes}]

		linhas = append(linhas, DisponibilidadeRecurso{
			RecursoID:                             row.RecursoID,
			RecursoNome:                           row.Recurso.Nome,
			Ano:                                   row.Ano,
			Mes:                                   row.Mes,
			HorasDisponiveisRH:                    row.HorasDisponiveis,
			HorasPlanejadas:                       horasPlanejadas,
			HorasRealizadas:                       horasRealizadas,
			HorasLivres:                           row.HorasDisponiveis.Sub(horasPlanejadas),
			PercentualAlocacaoRH:                  percentual(horasPlanejadas, row.HorasDisponiveis),
			PercentualUtilizacaoSobrePlanejado:    percentual(horasRealizadas, horasPlanejadas),
			PercentualUtilizacaoSobreDisponivelRH: percentual(horasRealizadas, row.HorasDisponiveis),
		})
	}

	c.JSON(http.StatusOK, DisponibilidadeListResponse{Data: linhas})
}

// bindRelatorioFiltro parses the shared date/section/team filters of the
// grouped time-entry reports.
func bindRelatorioFiltro(c *gin.Context) (models.RelatorioFiltro, error) {
	var query struct {
		DataInicio *time.Time `form:"data_inicio" time_format:"2006-01-02" time_utc:"1"`
		DataFim    *time.Time `form:"data_fim" time_format:"2006-01-02" time_utc:"1"`
		SecaoID    *uint64    `form:"secao_id"`
		EquipeID   *uint64    `form:"equipe_id"`
	}

	err := c.ShouldBind(&query)
	if err != nil {
		return models.RelatorioFiltro{}, err
	}

	return models.RelatorioFiltro{
		DataInicio: query.DataInicio,
		DataFim:    query.DataFim,
		SecaoID:    query.SecaoID,
		EquipeID:   query.EquipeID,
	}, nil
}

// @Summary		Hours by project
// @Description	Sums logged hours per project
// @Tags			Relatorios
// @Produce		json
// @Success		200	{object}	HorasPorProjetoResponse
// @Failure		400	{object}	HorasPorProjetoResponse
// @Router			/v1/relatorios/horas-por-projeto [get]
// @Param			data_inicio	query	string	false	"Entries from this date (YYYY-MM-DD)"
// @Param			data_fim	query	string	false	"Entries up to this date (YYYY-MM-DD)"
// @Param			secao_id	query	uint64	false	"Filter by secao"
// @Param			equipe_id	query	uint64	false	"Filter by equipe"
func GetHorasPorProjeto(c *gin.Context) {
	filtro, err := bindRelatorioFiltro(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HorasPorProjetoResponse{Error: &s})
		return
	}

	linhas, err := models.HorasPorProjeto(models.DB, filtro)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HorasPorProjetoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, HorasPorProjetoResponse{Data: linhas})
}

// @Summary		Hours by resource
// @Description	Sums logged hours per recurso
// @Tags			Relatorios
// @Produce		json
// @Success		200	{object}	HorasPorRecursoResponse
// @Failure		400	{object}	HorasPorRecursoResponse
// @Router			/v1/relatorios/horas-por-recurso [get]
// @Param			data_inicio	query	string	false	"Entries from this date (YYYY-MM-DD)"
// @Param			data_fim	query	string	false	"Entries up to this date (YYYY-MM-DD)"
// @Param			secao_id	query	uint64	false	"Filter by secao"
// @Param			equipe_id	query	uint64	false	"Filter by equipe"
func GetHorasPorRecurso(c *gin.Context) {
	filtro, err := bindRelatorioFiltro(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, HorasPorRecursoResponse{Error: &s})
		return
	}

	linhas, err := models.HorasPorRecurso(models.DB, filtro)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HorasPorRecursoResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, HorasPorRecursoResponse{Data: linhas})
}
