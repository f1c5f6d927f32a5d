package report

import (
	"testing"
	"time"

	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/cliente"
	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	"github.com/gfsilva/salao-gestor/internal/domain/profissional"
	"github.com/gfsilva/salao-gestor/internal/domain/salao"
)

func TestComputeSalaoStats(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)

	agendamentos := []*agendamento.Agendamento{
		{ID: "a1", Data: "2026-08-15", Status: agendamento.StatusPendente},
		{ID: "a2", Data: "2026-08-15", Status: agendamento.StatusConcluido},
		{ID: "a3", Data: "2026-08-15", Status: agendamento.StatusCancelado}, // cancelado não conta
		{ID: "a4", Data: "2026-08-16", Status: agendamento.StatusPendente},  // outro dia
	}

	lancamentos := []*financeiro.Lancamento{
		{Data: "2026-08-15", Tipo: financeiro.TipoEntrada, Valor: 100},
		{Data: "2026-08-15", Tipo: financeiro.TipoSaida, Valor: 30},
		{Data: "2026-08-01", Tipo: financeiro.TipoEntrada, Valor: 50},  // mês, não dia
		{Data: "2026-08-31", Tipo: financeiro.TipoSaida, Valor: 20},   // último dia do mês conta
		{Data: "2026-07-31", Tipo: financeiro.TipoEntrada, Valor: 999}, // fora do mês
		{Data: "2026-09-01", Tipo: financeiro.TipoEntrada, Valor: 999}, // fora do mês
	}

	clientes := []*cliente.Cliente{{ID: "c1"}, {ID: "c2"}}
	profissionais := []*profissional.Profissional{
		{ID: "p1", Status: profissional.StatusAtivo},
		{ID: "p2", Status: profissional.StatusInativo},
	}

	stats := ComputeSalaoStats(agendamentos, lancamentos, clientes, profissionais, now)

	if stats.AgendamentosHoje != 2 {
		t.Errorf("AgendamentosHoje = %d, want 2", stats.AgendamentosHoje)
	}
	if stats.EntradasDia != 100 || stats.SaidasDia != 30 || stats.SaldoDia != 70 {
		t.Errorf("dia = %v/%v/%v, want 100/30/70", stats.EntradasDia, stats.SaidasDia, stats.SaldoDia)
	}
	if stats.EntradasMes != 150 || stats.SaidasMes != 50 || stats.SaldoMes != 100 {
		t.Errorf("mês = %v/%v/%v, want 150/50/100", stats.EntradasMes, stats.SaidasMes, stats.SaldoMes)
	}
	if stats.ClientesTotal != 2 {
		t.Errorf("ClientesTotal = %d, want 2", stats.ClientesTotal)
	}
	if stats.ProfissionaisAtivos != 1 {
		t.Errorf("ProfissionaisAtivos = %d, want 1", stats.ProfissionaisAtivos)
	}
}

func TestComputeSalaoStatsVazio(t *testing.T) {
	stats := ComputeSalaoStats(nil, nil, nil, nil, time.Now())
	if stats != (SalaoStats{}) {
		t.Errorf("stats de caches vazios = %+v, want zerado", stats)
	}
}

func TestComputeMasterStats(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	saloes := []*salao.Salao{
		{ID: "s1", Ativo: true, DataExpiracao: "2027-01-01"}, // ativo
		{ID: "s2", Ativo: true, DataExpiracao: "2026-09-03"}, // vencendo
		{ID: "s3", Ativo: true, DataExpiracao: "2026-08-01"}, // expirado
		{ID: "s4", Ativo: false, DataExpiracao: "2027-01-01"}, // desativado
	}

	stats := ComputeMasterStats(saloes, now)

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}
	if stats.Ativos != 2 {
		t.Errorf("Ativos = %d, want 2", stats.Ativos)
	}
	if stats.Vencendo != 1 {
		t.Errorf("Vencendo = %d, want 1", stats.Vencendo)
	}
	if stats.Inativos != 2 {
		t.Errorf("Inativos = %d, want 2", stats.Inativos)
	}
}
