// Package pdv implementa o ponto de venda: carrinho com itens de serviço
// e produto, total derivado e finalização da venda com lançamento no
// financeiro e baixa de estoque.
package pdv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrCarrinhoVazio      = errors.New("carrinho vazio")
	ErrQuantidadeInvalida = errors.New("quantidade deve ser maior que zero")
	ErrTipoItemInvalido   = errors.New("tipo de item inválido")
	ErrItemNaoEncontrado  = errors.New("item não encontrado no carrinho")
)

// TipoItem distingue itens de serviço e de produto no carrinho
type TipoItem string

const (
	ItemServico TipoItem = "servico"
	ItemProduto TipoItem = "produto"
)

// Item é uma linha do carrinho. RefID aponta para o registro do catálogo;
// nome e preço são congelados no momento da inclusão.
type Item struct {
	Tipo          TipoItem `json:"tipo"`
	RefID         string   `json:"refId"`
	Nome          string   `json:"nome"`
	PrecoUnitario float64  `json:"precoUnitario"`
	Quantidade    int      `json:"quantidade"`
}

// Subtotal é o valor da linha
func (i Item) Subtotal() float64 {
	return i.PrecoUnitario * float64(i.Quantidade)
}

// Carrinho acumula os itens de uma venda em andamento
type Carrinho struct {
	ClienteNome string `json:"clienteNome"`
	Itens       []Item `json:"itens"`
}

// Adicionar inclui um item no carrinho. Itens repetidos do mesmo registro
// acumulam quantidade em vez de duplicar a linha.
func (c *Carrinho) Adicionar(item Item) error {
	if item.Tipo != ItemServico && item.Tipo != ItemProduto {
		return ErrTipoItemInvalido
	}
	if item.Quantidade <= 0 {
		return ErrQuantidadeInvalida
	}

	for i := range c.Itens {
		if c.Itens[i].Tipo == item.Tipo && c.Itens[i].RefID == item.RefID {
			c.Itens[i].Quantidade += item.Quantidade
			return nil
		}
	}
	c.Itens = append(c.Itens, item)
	return nil
}

// Remover retira a linha do registro informado
func (c *Carrinho) Remover(tipo TipoItem, refID string) error {
	for i := range c.Itens {
		if c.Itens[i].Tipo == tipo && c.Itens[i].RefID == refID {
			c.Itens = append(c.Itens[:i], c.Itens[i+1:]...)
			return nil
		}
	}
	return ErrItemNaoEncontrado
}

// Total soma quantidade vezes preço unitário de todas as linhas
func (c *Carrinho) Total() float64 {
	var total float64
	for _, item := range c.Itens {
		total += item.Subtotal()
	}
	return total
}

// Vazio indica se não há itens no carrinho
func (c *Carrinho) Vazio() bool {
	return len(c.Itens) == 0
}

// Limpar descarta itens e cliente selecionado
func (c *Carrinho) Limpar() {
	c.Itens = nil
	c.ClienteNome = ""
}

// Descricao monta a descrição do lançamento gerado pela venda, no formato
// "VENDA PDV - CLIENTE (2x CORTE, 1x SHAMPOO)". Sem cliente selecionado a
// venda sai como CONSUMIDOR.
func (c *Carrinho) Descricao() string {
	cliente := strings.ToUpper(strings.TrimSpace(c.ClienteNome))
	if cliente == "" {
		cliente = "CONSUMIDOR"
	}

	partes := make([]string, 0, len(c.Itens))
	for _, item := range c.Itens {
		partes = append(partes, fmt.Sprintf("%dx %s", item.Quantidade, strings.ToUpper(item.Nome)))
	}

	return fmt.Sprintf("VENDA PDV - %s (%s)", cliente, strings.Join(partes, ", "))
}
