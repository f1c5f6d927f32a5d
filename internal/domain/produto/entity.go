package produto

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyNome       = errors.New("nome não pode ser vazio")
	ErrPrecoNegativo   = errors.New("preços não podem ser negativos")
	ErrEstoqueNegativo = errors.New("quantidade em estoque não pode ser negativa")
	ErrMinimoNegativo  = errors.New("estoque mínimo não pode ser negativo")
	ErrProdutoNotFound = errors.New("produto não encontrado")
)

// Produto representa um produto vendido pelo salão, com controle de estoque
type Produto struct {
	ID                string  `json:"id"`
	Nome              string  `json:"nome"`
	Descricao         string  `json:"descricao,omitempty"`
	PrecoVenda        float64 `json:"precoVenda"`
	PrecoCusto        float64 `json:"precoCusto"`
	QuantidadeEstoque int     `json:"quantidadeEstoque"`
	EstoqueMinimo     int     `json:"estoqueMinimo"`
	TenantID          string  `json:"tenantId,omitempty"`
	CreatedAt         string  `json:"createdAt"`
	UpdatedAt         string  `json:"updatedAt"`
}

// NewProduto cria um novo produto
func NewProduto(nome string, precoVenda, precoCusto float64, quantidade, minimo int) (*Produto, error) {
	p := &Produto{
		Nome:              strings.ToUpper(nome),
		PrecoVenda:        precoVenda,
		PrecoCusto:        precoCusto,
		QuantidadeEstoque: quantidade,
		EstoqueMinimo:     minimo,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

// Validate verifica as invariantes do produto
func (p *Produto) Validate() error {
	if strings.TrimSpace(p.Nome) == "" {
		return ErrEmptyNome
	}
	if p.PrecoVenda < 0 || p.PrecoCusto < 0 {
		return ErrPrecoNegativo
	}
	if p.QuantidadeEstoque < 0 {
		return ErrEstoqueNegativo
	}
	if p.EstoqueMinimo < 0 {
		return ErrMinimoNegativo
	}
	return nil
}

// EstoqueBaixo indica se o produto está no nível mínimo de estoque ou abaixo
func (p *Produto) EstoqueBaixo() bool {
	return p.QuantidadeEstoque <= p.EstoqueMinimo
}

// Baixa retorna a quantidade em estoque após a venda de qtd unidades,
// nunca abaixo de zero.
func (p *Produto) Baixa(qtd int) int {
	nova := p.QuantidadeEstoque - qtd
	if nova < 0 {
		return 0
	}
	return nova
}
