package dto

import (
	"github.com/gfsilva/salao-gestor/internal/domain/produto"
)

// ProdutoRequest representa os dados para criação ou atualização de um
// produto
type ProdutoRequest struct {
	Nome              string  `json:"nome" binding:"required"`
	Descricao         string  `json:"descricao"`
	PrecoVenda        float64 `json:"precoVenda"`
	PrecoCusto        float64 `json:"precoCusto"`
	QuantidadeEstoque int     `json:"quantidadeEstoque"`
	EstoqueMinimo     int     `json:"estoqueMinimo"`
}

// ProdutoResponse representa um produto com o alerta de estoque derivado
type ProdutoResponse struct {
	*produto.Produto
	EstoqueBaixo bool `json:"estoqueBaixo"`
}

// ToProdutoResponse converte um produto de domínio para o formato de
// resposta
func ToProdutoResponse(p *produto.Produto) *ProdutoResponse {
	if p == nil {
		return nil
	}
	return &ProdutoResponse{
		Produto:      p,
		EstoqueBaixo: p.EstoqueBaixo(),
	}
}

// ToProdutoResponseList converte uma lista de produtos
func ToProdutoResponseList(produtos []*produto.Produto) []*ProdutoResponse {
	out := make([]*ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, ToProdutoResponse(p))
	}
	return out
}
