package report

import (
	"reflect"
	"testing"

	"github.com/gfsilva/salao-gestor/internal/domain/produto"
)

func TestComputeProdutoStats(t *testing.T) {
	produtos := []*produto.Produto{
		{Nome: "SHAMPOO", PrecoCusto: 10, PrecoVenda: 25, QuantidadeEstoque: 4, EstoqueMinimo: 2},
		{Nome: "CERA", PrecoCusto: 8, PrecoVenda: 20, QuantidadeEstoque: 1, EstoqueMinimo: 3},
		{Nome: "OLEO", PrecoCusto: 12, PrecoVenda: 30, QuantidadeEstoque: 0, EstoqueMinimo: 0},
	}

	stats := ComputeProdutoStats(produtos)

	if stats.ValorCusto != 48 { // 10*4 + 8*1 + 12*0
		t.Errorf("ValorCusto = %v, want 48", stats.ValorCusto)
	}
	if stats.ValorVenda != 120 { // 25*4 + 20*1 + 30*0
		t.Errorf("ValorVenda = %v, want 120", stats.ValorVenda)
	}
	if !reflect.DeepEqual(stats.EstoqueBaixo, []string{"CERA", "OLEO"}) {
		t.Errorf("EstoqueBaixo = %v, want [CERA OLEO]", stats.EstoqueBaixo)
	}
}

func TestComputeProdutoStatsVazio(t *testing.T) {
	stats := ComputeProdutoStats(nil)
	if stats.ValorCusto != 0 || stats.ValorVenda != 0 || len(stats.EstoqueBaixo) != 0 {
		t.Errorf("stats de estoque vazio = %+v", stats)
	}
}
