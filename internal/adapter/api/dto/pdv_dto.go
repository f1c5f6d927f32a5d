package dto

import (
	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	"github.com/gfsilva/salao-gestor/internal/pdv"
)

// ItemCarrinhoRequest representa um item a incluir no carrinho
type ItemCarrinhoRequest struct {
	Tipo       string `json:"tipo" binding:"required,oneof=servico produto"`
	RefID      string `json:"refId" binding:"required"`
	Quantidade int    `json:"quantidade" binding:"required,gt=0"`
}

// CarrinhoResponse representa o carrinho atual com o total derivado
type CarrinhoResponse struct {
	ClienteNome string     `json:"clienteNome,omitempty"`
	Itens       []pdv.Item `json:"itens"`
	Total       float64    `json:"total"`
}

// ToCarrinhoResponse converte o carrinho para o formato de resposta
func ToCarrinhoResponse(c *pdv.Carrinho) CarrinhoResponse {
	itens := c.Itens
	if itens == nil {
		itens = []pdv.Item{}
	}
	return CarrinhoResponse{
		ClienteNome: c.ClienteNome,
		Itens:       itens,
		Total:       c.Total(),
	}
}

// SelecionarClienteRequest define o cliente da venda em andamento
type SelecionarClienteRequest struct {
	ClienteNome string `json:"clienteNome"`
}

// FinalizarVendaRequest representa os dados para fechar a venda
type FinalizarVendaRequest struct {
	FormaPagamento string `json:"formaPagamento" binding:"required"`
}

// VendaResponse devolve o lançamento gerado pela venda
type VendaResponse struct {
	Lancamento *financeiro.Lancamento `json:"lancamento"`
}
