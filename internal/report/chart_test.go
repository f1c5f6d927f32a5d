package report

import (
	"testing"
	"time"

	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
)

func TestGraficoSemanal(t *testing.T) {
	now := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	lancamentos := []*financeiro.Lancamento{
		{Data: "2026-08-30", Tipo: financeiro.TipoEntrada, Valor: 100},
		{Data: "2026-08-30", Tipo: financeiro.TipoSaida, Valor: 40},
		{Data: "2026-08-24", Tipo: financeiro.TipoEntrada, Valor: 80},
		{Data: "2026-08-23", Tipo: financeiro.TipoEntrada, Valor: 999}, // fora da janela
		{Data: "2026-08-31", Tipo: financeiro.TipoEntrada, Valor: 999}, // futuro
	}

	pontos := GraficoSemanal(lancamentos, now)

	if len(pontos) != 7 {
		t.Fatalf("len(pontos) = %d, want 7", len(pontos))
	}
	if pontos[0].Data != "2026-08-24" || pontos[6].Data != "2026-08-30" {
		t.Errorf("janela errada: %s .. %s, want 2026-08-24 .. 2026-08-30", pontos[0].Data, pontos[6].Data)
	}
	if pontos[0].Label != "24/08" {
		t.Errorf("Label = %q, want 24/08", pontos[0].Label)
	}

	if pontos[0].Entradas != 80 {
		t.Errorf("entradas do primeiro dia = %v, want 80", pontos[0].Entradas)
	}
	if pontos[6].Entradas != 100 || pontos[6].Saidas != 40 {
		t.Errorf("hoje = %v/%v, want 100/40", pontos[6].Entradas, pontos[6].Saidas)
	}

	// dias sem lançamento saem zerados, nunca omitidos
	for _, p := range pontos[1:6] {
		if p.Entradas != 0 || p.Saidas != 0 {
			t.Errorf("dia %s deveria estar zerado: %+v", p.Data, p)
		}
	}
}

func TestGraficoSemanalSemLancamentos(t *testing.T) {
	pontos := GraficoSemanal(nil, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC))
	if len(pontos) != 7 {
		t.Fatalf("len(pontos) = %d, want 7", len(pontos))
	}
	for _, p := range pontos {
		if p.Entradas != 0 || p.Saidas != 0 {
			t.Errorf("ponto %s não zerado: %+v", p.Data, p)
		}
	}
}
