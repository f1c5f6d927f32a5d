package report

import (
	"github.com/gfsilva/salao-gestor/internal/domain/produto"
)

// ProdutoStats é a situação consolidada do estoque
type ProdutoStats struct {
	ValorCusto   float64  `json:"valorCusto"`
	ValorVenda   float64  `json:"valorVenda"`
	EstoqueBaixo []string `json:"estoqueBaixo"`
}

// ComputeProdutoStats valoriza o estoque a custo e a venda e lista os
// produtos no nível mínimo ou abaixo, na ordem do cache.
func ComputeProdutoStats(produtos []*produto.Produto) ProdutoStats {
	stats := ProdutoStats{EstoqueBaixo: make([]string, 0)}

	for _, p := range produtos {
		stats.ValorCusto += p.PrecoCusto * float64(p.QuantidadeEstoque)
		stats.ValorVenda += p.PrecoVenda * float64(p.QuantidadeEstoque)
		if p.EstoqueBaixo() {
			stats.EstoqueBaixo = append(stats.EstoqueBaixo, p.Nome)
		}
	}

	return stats
}
