package pdv

import (
	"errors"
	"testing"
)

func TestAdicionar(t *testing.T) {
	c := &Carrinho{}

	if err := c.Adicionar(Item{Tipo: ItemServico, RefID: "s1", Nome: "CORTE", PrecoUnitario: 30, Quantidade: 1}); err != nil {
		t.Fatalf("Adicionar() err = %v", err)
	}
	if err := c.Adicionar(Item{Tipo: ItemProduto, RefID: "p1", Nome: "SHAMPOO", PrecoUnitario: 15, Quantidade: 1}); err != nil {
		t.Fatalf("Adicionar() err = %v", err)
	}

	// mesmo registro acumula quantidade em vez de duplicar linha
	if err := c.Adicionar(Item{Tipo: ItemServico, RefID: "s1", Nome: "CORTE", PrecoUnitario: 30, Quantidade: 1}); err != nil {
		t.Fatalf("Adicionar() err = %v", err)
	}

	if len(c.Itens) != 2 {
		t.Fatalf("len(Itens) = %d, want 2", len(c.Itens))
	}
	if c.Itens[0].Quantidade != 2 {
		t.Errorf("quantidade acumulada = %d, want 2", c.Itens[0].Quantidade)
	}
	if c.Total() != 75 {
		t.Errorf("Total() = %v, want 75", c.Total())
	}
}

func TestAdicionarInvalido(t *testing.T) {
	c := &Carrinho{}

	if err := c.Adicionar(Item{Tipo: "combo", RefID: "x", Quantidade: 1}); !errors.Is(err, ErrTipoItemInvalido) {
		t.Errorf("tipo inválido: err = %v, want %v", err, ErrTipoItemInvalido)
	}
	if err := c.Adicionar(Item{Tipo: ItemServico, RefID: "s1", Quantidade: 0}); !errors.Is(err, ErrQuantidadeInvalida) {
		t.Errorf("quantidade zero: err = %v, want %v", err, ErrQuantidadeInvalida)
	}
	if !c.Vazio() {
		t.Error("item inválido entrou no carrinho")
	}
}

func TestRemover(t *testing.T) {
	c := &Carrinho{}
	_ = c.Adicionar(Item{Tipo: ItemServico, RefID: "s1", Nome: "CORTE", PrecoUnitario: 30, Quantidade: 1})
	_ = c.Adicionar(Item{Tipo: ItemProduto, RefID: "p1", Nome: "SHAMPOO", PrecoUnitario: 15, Quantidade: 2})

	if err := c.Remover(ItemProduto, "p1"); err != nil {
		t.Fatalf("Remover() err = %v", err)
	}
	if len(c.Itens) != 1 || c.Itens[0].RefID != "s1" {
		t.Errorf("linha errada removida: %+v", c.Itens)
	}

	if err := c.Remover(ItemProduto, "p1"); !errors.Is(err, ErrItemNaoEncontrado) {
		t.Errorf("remover ausente: err = %v, want %v", err, ErrItemNaoEncontrado)
	}
}

func TestDescricao(t *testing.T) {
	c := &Carrinho{ClienteNome: "Ana Souza"}
	_ = c.Adicionar(Item{Tipo: ItemServico, RefID: "s1", Nome: "Corte", PrecoUnitario: 30, Quantidade: 2})
	_ = c.Adicionar(Item{Tipo: ItemProduto, RefID: "p1", Nome: "Shampoo", PrecoUnitario: 15, Quantidade: 1})

	want := "VENDA PDV - ANA SOUZA (2x CORTE, 1x SHAMPOO)"
	if got := c.Descricao(); got != want {
		t.Errorf("Descricao() = %q, want %q", got, want)
	}
}

func TestDescricaoSemCliente(t *testing.T) {
	c := &Carrinho{}
	_ = c.Adicionar(Item{Tipo: ItemProduto, RefID: "p1", Nome: "Shampoo", PrecoUnitario: 15, Quantidade: 1})

	want := "VENDA PDV - CONSUMIDOR (1x SHAMPOO)"
	if got := c.Descricao(); got != want {
		t.Errorf("Descricao() = %q, want %q", got, want)
	}
}

func TestLimpar(t *testing.T) {
	c := &Carrinho{ClienteNome: "ANA"}
	_ = c.Adicionar(Item{Tipo: ItemServico, RefID: "s1", Nome: "CORTE", PrecoUnitario: 30, Quantidade: 1})

	c.Limpar()
	if !c.Vazio() || c.ClienteNome != "" {
		t.Errorf("Limpar() deixou resíduo: %+v", c)
	}
}
