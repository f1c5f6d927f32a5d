package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/domain/salao"
)

func novoSalao(t *testing.T) *salao.Salao {
	t.Helper()
	s, err := salao.NewSalao("Studio Bela", "studiobela", "s3nh4", salao.PlanoBasico, "2099-01-01")
	if err != nil {
		t.Fatalf("NewSalao() err = %v", err)
	}
	s.Email = "contato@studiobela.com"
	return s
}

func TestSalaoCreateEFind(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()
	repo := NewSalaoRepository(store)
	ctx := context.Background()

	id, err := repo.Create(ctx, novoSalao(t))
	if err != nil {
		t.Fatalf("Create() err = %v", err)
	}

	got, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID() err = %v", err)
	}
	if got.ID != id || got.Nome != "Studio Bela" || !got.Ativo {
		t.Errorf("FindByID() = %+v", got)
	}

	if _, err := repo.FindByID(ctx, "fantasma"); !errors.Is(err, salao.ErrSalaoNotFound) {
		t.Errorf("FindByID(fantasma) err = %v, want %v", err, salao.ErrSalaoNotFound)
	}
}

func TestSalaoFindByUsuarioEEmail(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()
	repo := NewSalaoRepository(store)
	ctx := context.Background()

	if _, err := repo.Create(ctx, novoSalao(t)); err != nil {
		t.Fatalf("Create() err = %v", err)
	}

	got, err := repo.FindByUsuario(ctx, "studiobela")
	if err != nil {
		t.Fatalf("FindByUsuario() err = %v", err)
	}
	if got.Usuario != "studiobela" {
		t.Errorf("Usuario = %q", got.Usuario)
	}

	got, err = repo.FindByEmail(ctx, "contato@studiobela.com")
	if err != nil {
		t.Fatalf("FindByEmail() err = %v", err)
	}
	if got.Email != "contato@studiobela.com" {
		t.Errorf("Email = %q", got.Email)
	}

	if _, err := repo.FindByUsuario(ctx, "ninguem"); !errors.Is(err, salao.ErrSalaoNotFound) {
		t.Errorf("FindByUsuario(ninguem) err = %v, want %v", err, salao.ErrSalaoNotFound)
	}
}

func TestSalaoUpdateSenha(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()
	repo := NewSalaoRepository(store)
	ctx := context.Background()

	id, err := repo.Create(ctx, novoSalao(t))
	if err != nil {
		t.Fatalf("Create() err = %v", err)
	}

	if err := repo.UpdateSenha(ctx, id, "nova"); err != nil {
		t.Fatalf("UpdateSenha() err = %v", err)
	}

	got, err := repo.FindByID(ctx, id)
	if err != nil {
		t.Fatalf("FindByID() err = %v", err)
	}
	if !got.CheckSenha("nova") {
		t.Error("senha não foi trocada")
	}
	// os demais campos sobrevivem ao update parcial
	if got.Nome != "Studio Bela" {
		t.Errorf("Nome = %q", got.Nome)
	}

	if err := repo.UpdateSenha(ctx, id, ""); !errors.Is(err, salao.ErrEmptySenha) {
		t.Errorf("UpdateSenha vazia err = %v, want %v", err, salao.ErrEmptySenha)
	}
}

func TestSalaoListOrdenaPorCriacao(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()
	repo := NewSalaoRepository(store)
	ctx := context.Background()

	store.Seed(ColSaloes, "s1", map[string]interface{}{
		"nome": "ANTIGO", "usuario": "antigo", "plano": "basico", "ativo": true, "createdAt": "2026-01-01T00:00:00Z",
	})
	store.Seed(ColSaloes, "s2", map[string]interface{}{
		"nome": "RECENTE", "usuario": "recente", "plano": "basico", "ativo": true, "createdAt": "2026-06-01T00:00:00Z",
	})

	saloes, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() err = %v", err)
	}
	if len(saloes) != 2 || saloes[0].Nome != "RECENTE" || saloes[1].Nome != "ANTIGO" {
		t.Errorf("ordem errada: %v", []string{saloes[0].Nome, saloes[1].Nome})
	}
}

func TestSalaoDelete(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()
	repo := NewSalaoRepository(store)
	ctx := context.Background()

	id, err := repo.Create(ctx, novoSalao(t))
	if err != nil {
		t.Fatalf("Create() err = %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("Delete() err = %v", err)
	}
	if _, err := repo.FindByID(ctx, id); !errors.Is(err, salao.ErrSalaoNotFound) {
		t.Errorf("salão deletado ainda encontrado: err = %v", err)
	}
}

func TestTenantCol(t *testing.T) {
	if got := TenantCol("t1", ColClientes); got != "saloes/t1/clientes" {
		t.Errorf("TenantCol() = %q", got)
	}
}
