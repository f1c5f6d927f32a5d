// Package report concentra as computações derivadas sobre o cache de
// estado: estatísticas de painel, séries de gráfico, receita por
// profissional, comissões e exportações. Todas as funções são puras e
// determinísticas; nenhuma toca o banco.
package report

import (
	"time"

	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/cliente"
	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	"github.com/gfsilva/salao-gestor/internal/domain/profissional"
	"github.com/gfsilva/salao-gestor/internal/domain/salao"
)

// formato de data usado nas comparações lexicográficas
const dateLayout = "2006-01-02"

// SalaoStats são os indicadores exibidos no painel de um salão
type SalaoStats struct {
	AgendamentosHoje    int     `json:"agendamentosHoje"`
	EntradasDia         float64 `json:"entradasDia"`
	SaidasDia           float64 `json:"saidasDia"`
	SaldoDia            float64 `json:"saldoDia"`
	EntradasMes         float64 `json:"entradasMes"`
	SaidasMes           float64 `json:"saidasMes"`
	SaldoMes            float64 `json:"saldoMes"`
	ClientesTotal       int     `json:"clientesTotal"`
	ProfissionaisAtivos int     `json:"profissionaisAtivos"`
}

// ComputeSalaoStats calcula os indicadores do painel para o instante
// informado. As somas do dia e do mês comparam as datas como strings
// ISO, em intervalo fechado.
func ComputeSalaoStats(
	agendamentos []*agendamento.Agendamento,
	lancamentos []*financeiro.Lancamento,
	clientes []*cliente.Cliente,
	profissionais []*profissional.Profissional,
	now time.Time,
) SalaoStats {
	hoje := now.Format(dateLayout)
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format(dateLayout)
	fimMes := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, now.Location()).Format(dateLayout)

	var stats SalaoStats

	for _, a := range agendamentos {
		if a.Data == hoje && a.Status != agendamento.StatusCancelado {
			stats.AgendamentosHoje++
		}
	}

	for _, l := range lancamentos {
		noDia := l.Data == hoje
		noMes := l.Data >= inicioMes && l.Data <= fimMes

		switch l.Tipo {
		case financeiro.TipoEntrada:
			if noDia {
				stats.EntradasDia += l.Valor
			}
			if noMes {
				stats.EntradasMes += l.Valor
			}
		case financeiro.TipoSaida:
			if noDia {
				stats.SaidasDia += l.Valor
			}
			if noMes {
				stats.SaidasMes += l.Valor
			}
		}
	}

	stats.SaldoDia = stats.EntradasDia - stats.SaidasDia
	stats.SaldoMes = stats.EntradasMes - stats.SaidasMes
	stats.ClientesTotal = len(clientes)

	for _, p := range profissionais {
		if p.Ativo() {
			stats.ProfissionaisAtivos++
		}
	}

	return stats
}

// MasterStats são os indicadores do painel do administrador master
type MasterStats struct {
	Total    int `json:"total"`
	Ativos   int `json:"ativos"`
	Vencendo int `json:"vencendo"`
	Inativos int `json:"inativos"`
}

// ComputeMasterStats classifica os salões cadastrados. Vencendo conta os
// salões ativos cuja expiração ocorre em até sete dias, inclusive hoje.
func ComputeMasterStats(saloes []*salao.Salao, now time.Time) MasterStats {
	stats := MasterStats{Total: len(saloes)}

	for _, s := range saloes {
		if !s.Ativo || s.Expirado(now) {
			stats.Inativos++
			continue
		}
		stats.Ativos++
		if dias := s.ExpiraEm(now); dias >= 0 && dias <= 7 {
			stats.Vencendo++
		}
	}

	return stats
}
