package models

import (
	"time"

	"github.com/automacao-pmo/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjetoMesSoma is an hour sum for one project in one month.
type ProjetoMesSoma struct {
	ProjetoID uint64
	Ano       int
	Mes       int
	Horas     decimal.Decimal
}

// Competencia returns the month of the sum.
func (s ProjetoMesSoma) Competencia() types.Month {
	return types.NewMonth(s.Ano, time.Month(s.Mes))
}

// RecursoMesSoma is an hour sum for one resource in one month.
type RecursoMesSoma struct {
	RecursoID uint64
	Ano       int
	Mes       int
	Horas     decimal.Decimal
}

// Competencia returns the month of the sum.
func (s RecursoMesSoma) Competencia() types.Month {
	return types.NewMonth(s.Ano, time.Month(s.Mes))
}

// PlanejadoPorProjetoMes sums planned hours of a resource grouped by
// project and month, across all of its allocations.
func PlanejadoPorProjetoMes(db *gorm.DB, recursoID uint64) ([]ProjetoMesSoma, error) {
	var sums []ProjetoMesSoma

	err := db.Table("horas_planejadas_alocacao").
		Joins("JOIN alocacao_recurso_projeto ON alocacao_recurso_projeto.id = horas_planejadas_alocacao.alocacao_id").
		Where("alocacao_recurso_projeto.recurso_id = ?", recursoID).
		Select("alocacao_recurso_projeto.projeto_id AS projeto_id, horas_planejadas_alocacao.ano AS ano, horas_planejadas_alocacao.mes AS mes, SUM(horas_planejadas_alocacao.horas_planejadas) AS horas").
		Group("alocacao_recurso_projeto.projeto_id, horas_planejadas_alocacao.ano, horas_planejadas_alocacao.mes").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}

	return sums, nil
}

// RealizadoPorProjetoMes sums logged hours of a resource grouped by
// project and month of the entry date.
func RealizadoPorProjetoMes(db *gorm.DB, recursoID uint64) ([]ProjetoMesSoma, error) {
	var sums []ProjetoMesSoma

	err := db.Table("apontamento").
		Where("apontamento.recurso_id = ?", recursoID).
		Select("apontamento.projeto_id AS projeto_id, CAST(strftime('%Y', apontamento.data_apontamento) AS INTEGER) AS ano, CAST(strftime('%m', apontamento.data_apontamento) AS INTEGER) AS mes, SUM(apontamento.horas_apontadas) AS horas").
		Group("apontamento.projeto_id, ano, mes").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}

	return sums, nil
}

// CapacidadePorMes returns the HR capacity of a resource keyed by month.
func CapacidadePorMes(db *gorm.DB, recursoID uint64) (map[types.Month]decimal.Decimal, error) {
	var rows []HorasDisponiveisRH
	err := db.Where(&HorasDisponiveisRH{RecursoID: recursoID}).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	capacity := make(map[types.Month]decimal.Decimal, len(rows))
	for _, row := range rows {
		capacity[row.Competencia()] = row.HorasDisponiveis
	}

	return capacity, nil
}

// PlanejadoPorRecursoMes sums planned hours grouped by resource and month
// for the given resources.
func PlanejadoPorRecursoMes(db *gorm.DB, recursoIDs []uint64) ([]RecursoMesSoma, error) {
	var sums []RecursoMesSoma

	err := db.Table("horas_planejadas_alocacao").
		Joins("JOIN alocacao_recurso_projeto ON alocacao_recurso_projeto.id = horas_planejadas_alocacao.alocacao_id").
		Where("alocacao_recurso_projeto.recurso_id IN ?", recursoIDs).
		Select("alocacao_recurso_projeto.recurso_id AS recurso_id, horas_planejadas_alocacao.ano AS ano, horas_planejadas_alocacao.mes AS mes, SUM(horas_planejadas_alocacao.horas_planejadas) AS horas").
		Group("alocacao_recurso_projeto.recurso_id, horas_planejadas_alocacao.ano, horas_planejadas_alocacao.mes").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}

	return sums, nil
}

// RealizadoPorRecursoMes sums logged hours grouped by resource and month
// of the entry date for the given resources.
func RealizadoPorRecursoMes(db *gorm.DB, recursoIDs []uint64) ([]RecursoMesSoma, error) {
	var sums []RecursoMesSoma

	err := db.Table("apontamento").
		Where("apontamento.recurso_id IN ?", recursoIDs).
		Select("apontamento.recurso_id AS recurso_id, CAST(strftime('%Y', apontamento.data_apontamento) AS INTEGER) AS ano, CAST(strftime('%m', apontamento.data_apontamento) AS INTEGER) AS mes, SUM(apontamento.horas_apontadas) AS horas").
		Group("apontamento.recurso_id, ano, mes").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}

	return sums, nil
}

// RelatorioFiltro narrows the grouped time-entry reports.
type RelatorioFiltro struct {
	DataInicio *time.Time
	DataFim    *time.Time
	SecaoID    *uint64
	EquipeID   *uint64
}

func (f RelatorioFiltro) apply(query *gorm.DB) *gorm.DB {
	if f.DataInicio != nil {
		query = query.Where("apontamento.data_apontamento >= ?", *f.DataInicio)
	}
	if f.DataFim != nil {
		query = query.Where("apontamento.data_apontamento <= ?", *f.DataFim)
	}
	if f.EquipeID != nil {
		query = query.Where("recurso.equipe_principal_id = ?", *f.EquipeID)
	}
	if f.SecaoID != nil {
		query = query.Where("equipe.secao_id = ?", *f.SecaoID)
	}

	return query
}

// HorasPorProjetoLinha is one row of the hours-by-project report.
type HorasPorProjetoLinha struct {
	ProjetoID   uint64          `json:"projeto_id"`
	ProjetoNome string          `json:"projeto_nome"`
	TotalHoras  decimal.Decimal `json:"total_horas"`
}

// HorasPorProjeto sums logged hours per project within a filter scope.
func HorasPorProjeto(db *gorm.DB, filtro RelatorioFiltro) ([]HorasPorProjetoLinha, error) {
	linhas := []HorasPorProjetoLinha{}

	query := db.Table("apontamento").
		Joins("JOIN projeto ON projeto.id = apontamento.projeto_id").
		Joins("JOIN recurso ON recurso.id = apontamento.recurso_id").
		Joins("LEFT JOIN equipe ON equipe.id = recurso.equipe_principal_id").
		Select("projeto.id AS projeto_id, projeto.nome AS projeto_nome, SUM(apontamento.horas_apontadas) AS total_horas").
		Group("projeto.id, projeto.nome").
		Order("total_horas DESC")

	err := filtro.apply(query).Scan(&linhas).Error
	if err != nil {
		return nil, err
	}

	return linhas, nil
}

// HorasPorRecursoLinha is one row of the hours-by-resource report.
type HorasPorRecursoLinha struct {
	RecursoID   uint64          `json:"recurso_id"`
	RecursoNome string          `json:"recurso_nome"`
	TotalHoras  decimal.Decimal `json:"total_horas"`
}

// HorasPorRecurso sums logged hours per resource within a filter scope.
func HorasPorRecurso(db *gorm.DB, filtro RelatorioFiltro) ([]HorasPorRecursoLinha, error) {
	linhas := []HorasPorRecursoLinha{}

	query := db.Table("apontamento").
		Joins("JOIN recurso ON recurso.id = apontamento.recurso_id").
		Joins("LEFT JOIN equipe ON equipe.id = recurso.equipe_principal_id").
		Select("recurso.id AS recurso_id, recurso.nome AS recurso_nome, SUM(apontamento.horas_apontadas) AS total_horas").
		Group("recurso.id, recurso.nome").
		Order("total_horas DESC")

	err := filtro.apply(query).Scan(&linhas).Error
	if err != nil {
		return nil, err
	}

	return linhas, nil
}

// CapacidadeEmEscopo returns capacity rows for a year, optionally narrowed
// by month, resource, team or section, ordered by resource name then month.
func CapacidadeEmEscopo(db *gorm.DB, ano int, mes *int, recursoID, equipeID, secaoID *uint64) ([]HorasDisponiveisRH, error) {
	query := db.Model(&HorasDisponiveisRH{}).
		Joins("JOIN recurso ON recurso.id = horas_disponiveis_rh.recurso_id").
		Joins("LEFT JOIN equipe ON equipe.id = recurso.equipe_principal_id").
		Select("horas_disponiveis_rh.*").
		Where("horas_disponiveis_rh.ano = ?", ano).
		Order("recurso.nome ASC, horas_disponiveis_rh.mes ASC")

	if mes != nil {
		query = query.Where("horas_disponiveis_rh.mes = ?", *mes)
	}
	if recursoID != nil {
		query = query.Where("horas_disponiveis_rh.recurso_id = ?", *recursoID)
	}
	if equipeID != nil {
		query = query.Where("recurso.equipe_principal_id = ?", *equipeID)
	}
	if secaoID != nil {
		query = query.Where("equipe.secao_id = ?", *secaoID)
	}

	var rows []HorasDisponiveisRH
	err := query.Preload("Recurso").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
