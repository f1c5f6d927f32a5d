package pdv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/adapter/repository"
	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	. "github.com/gfsilva/salao-gestor/internal/pdv"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

const tenantID = "t1"

func novoFinalizador(store *docstore.MemoryStore) *Finalizador {
	return NewFinalizador(
		repository.NewFinanceiroRepository(store),
		repository.NewProdutoRepository(store),
		logger.NewNopLogger(),
	)
}

func seedProduto(store *docstore.MemoryStore, id, nome string, estoque int) {
	store.Seed(repository.TenantCol(tenantID, repository.ColProdutos), id, map[string]interface{}{
		"nome":              nome,
		"precoVenda":        15.0,
		"precoCusto":        8.0,
		"quantidadeEstoque": estoque,
		"estoqueMinimo":     1,
	})
}

func TestFinalizar(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()
	seedProduto(store, "p1", "SHAMPOO", 5)

	f := novoFinalizador(store)
	carrinho := &Carrinho{ClienteNome: "ANA"}
	_ = carrinho.Adicionar(Item{Tipo: ItemServico, RefID: "s1", Nome: "CORTE", PrecoUnitario: 30, Quantidade: 2})
	_ = carrinho.Adicionar(Item{Tipo: ItemProduto, RefID: "p1", Nome: "SHAMPOO", PrecoUnitario: 15, Quantidade: 3})

	now := time.Date(2026, 8, 30, 16, 0, 0, 0, time.UTC)
	lanc, err := f.Finalizar(context.Background(), tenantID, carrinho, "pix", now)
	if err != nil {
		t.Fatalf("Finalizar() err = %v", err)
	}

	if lanc.Tipo != financeiro.TipoEntrada || lanc.Valor != 105 {
		t.Errorf("lançamento = %+v, want entrada de 105", lanc)
	}
	if lanc.Data != "2026-08-30" {
		t.Errorf("Data = %q, want 2026-08-30", lanc.Data)
	}
	if lanc.Descricao != "VENDA PDV - ANA (2x CORTE, 3x SHAMPOO)" {
		t.Errorf("Descricao = %q", lanc.Descricao)
	}
	if lanc.FormaPagamento != "pix" || lanc.Observacoes != "Venda realizada via PDV" {
		t.Errorf("lançamento = %+v", lanc)
	}

	// lançamento persistido
	gravado, err := repository.NewFinanceiroRepository(store).FindByID(context.Background(), tenantID, lanc.ID)
	if err != nil {
		t.Fatalf("lançamento não foi gravado: %v", err)
	}
	if gravado.Valor != 105 {
		t.Errorf("valor gravado = %v, want 105", gravado.Valor)
	}

	// baixa de estoque do produto vendido
	p, err := repository.NewProdutoRepository(store).FindByID(context.Background(), tenantID, "p1")
	if err != nil {
		t.Fatalf("FindByID() err = %v", err)
	}
	if p.QuantidadeEstoque != 2 {
		t.Errorf("estoque = %d, want 2", p.QuantidadeEstoque)
	}

	// carrinho limpo após o sucesso
	if !carrinho.Vazio() || carrinho.ClienteNome != "" {
		t.Errorf("carrinho não foi limpo: %+v", carrinho)
	}
}

func TestFinalizarBaixaTravaEmZero(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()
	seedProduto(store, "p1", "SHAMPOO", 2)

	f := novoFinalizador(store)
	carrinho := &Carrinho{}
	_ = carrinho.Adicionar(Item{Tipo: ItemProduto, RefID: "p1", Nome: "SHAMPOO", PrecoUnitario: 15, Quantidade: 5})

	if _, err := f.Finalizar(context.Background(), tenantID, carrinho, "dinheiro", time.Now()); err != nil {
		t.Fatalf("Finalizar() err = %v", err)
	}

	p, err := repository.NewProdutoRepository(store).FindByID(context.Background(), tenantID, "p1")
	if err != nil {
		t.Fatalf("FindByID() err = %v", err)
	}
	if p.QuantidadeEstoque != 0 {
		t.Errorf("estoque = %d, want 0", p.QuantidadeEstoque)
	}
}

func TestFinalizarCarrinhoVazio(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()

	f := novoFinalizador(store)
	if _, err := f.Finalizar(context.Background(), tenantID, &Carrinho{}, "pix", time.Now()); !errors.Is(err, ErrCarrinhoVazio) {
		t.Errorf("err = %v, want %v", err, ErrCarrinhoVazio)
	}
}

func TestFinalizarProdutoAusenteMantemCarrinho(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()

	f := novoFinalizador(store)
	carrinho := &Carrinho{}
	_ = carrinho.Adicionar(Item{Tipo: ItemProduto, RefID: "fantasma", Nome: "SHAMPOO", PrecoUnitario: 15, Quantidade: 1})

	if _, err := f.Finalizar(context.Background(), tenantID, carrinho, "pix", time.Now()); err == nil {
		t.Fatal("venda de produto inexistente deveria falhar")
	}
	if carrinho.Vazio() {
		t.Error("carrinho foi limpo apesar da falha")
	}
}
