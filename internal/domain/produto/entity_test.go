package produto

import (
	"errors"
	"testing"
)

func TestNewProdutoValidacao(t *testing.T) {
	tests := []struct {
		name    string
		nome    string
		venda   float64
		custo   float64
		qtd     int
		minimo  int
		wantErr error
	}{
		{"valido", "Shampoo", 35, 18, 10, 3, nil},
		{"nome vazio", "  ", 35, 18, 10, 3, ErrEmptyNome},
		{"preco venda negativo", "Shampoo", -1, 18, 10, 3, ErrPrecoNegativo},
		{"preco custo negativo", "Shampoo", 35, -1, 10, 3, ErrPrecoNegativo},
		{"estoque negativo", "Shampoo", 35, 18, -1, 3, ErrEstoqueNegativo},
		{"minimo negativo", "Shampoo", 35, 18, 10, -1, ErrMinimoNegativo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduto(tt.nome, tt.venda, tt.custo, tt.qtd, tt.minimo)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewProduto() err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && p.Nome != "SHAMPOO" {
				t.Errorf("Nome = %q, want caixa alta", p.Nome)
			}
		})
	}
}

func TestBaixa(t *testing.T) {
	tests := []struct {
		name    string
		estoque int
		qtd     int
		want    int
	}{
		{"baixa normal", 5, 3, 2},
		{"baixa total", 5, 5, 0},
		{"baixa maior que o estoque trava em zero", 2, 5, 0},
		{"estoque zerado", 0, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Produto{QuantidadeEstoque: tt.estoque}
			if got := p.Baixa(tt.qtd); got != tt.want {
				t.Errorf("Baixa(%d) = %d, want %d", tt.qtd, got, tt.want)
			}
		})
	}
}

func TestEstoqueBaixo(t *testing.T) {
	tests := []struct {
		estoque int
		minimo  int
		want    bool
	}{
		{10, 3, false},
		{3, 3, true},
		{2, 3, true},
		{0, 0, true},
	}

	for _, tt := range tests {
		p := &Produto{QuantidadeEstoque: tt.estoque, EstoqueMinimo: tt.minimo}
		if got := p.EstoqueBaixo(); got != tt.want {
			t.Errorf("EstoqueBaixo(estoque=%d, minimo=%d) = %v, want %v", tt.estoque, tt.minimo, got, tt.want)
		}
	}
}
