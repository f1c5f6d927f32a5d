package repository

import (
	"context"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
)

// FinanceiroRepository implementa financeiro.Repository sobre o banco
// de documentos
type FinanceiroRepository struct {
	store docstore.Store
}

// NewFinanceiroRepository cria uma nova instância de FinanceiroRepository
func NewFinanceiroRepository(store docstore.Store) *FinanceiroRepository {
	return &FinanceiroRepository{store: store}
}

// Create cria um novo lançamento e retorna o id gerado
func (r *FinanceiroRepository) Create(ctx context.Context, tenantID string, l *financeiro.Lancamento) (string, error) {
	if err := l.Validate(); err != nil {
		return "", err
	}
	l.Normalize()
	l.UpdatedAt = nowISO()
	data, err := toMap(l)
	if err != nil {
		return "", err
	}
	return r.store.Add(ctx, TenantCol(tenantID, ColFinanceiro), data)
}

// FindByID busca um lançamento pelo ID
func (r *FinanceiroRepository) FindByID(ctx context.Context, tenantID, id string) (*financeiro.Lancamento, error) {
	doc, err := r.store.Get(ctx, TenantCol(tenantID, ColFinanceiro), id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, financeiro.ErrLancamentoNotFound
		}
		return nil, err
	}
	var l financeiro.Lancamento
	if err := fromDoc(doc, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// List lista os lançamentos por data, mais recentes primeiro
func (r *FinanceiroRepository) List(ctx context.Context, tenantID string) ([]*financeiro.Lancamento, error) {
	docs, err := r.store.GetOnce(ctx, docstore.Query{Path: TenantCol(tenantID, ColFinanceiro), OrderBy: "data", Desc: true})
	if err != nil {
		return nil, err
	}
	lancamentos := make([]*financeiro.Lancamento, 0, len(docs))
	for _, doc := range docs {
		var l financeiro.Lancamento
		if err := fromDoc(doc, &l); err != nil {
			return nil, err
		}
		lancamentos = append(lancamentos, &l)
	}
	return lancamentos, nil
}

// Update grava o lançamento com merge no documento existente
func (r *FinanceiroRepository) Update(ctx context.Context, tenantID, id string, l *financeiro.Lancamento) error {
	if err := l.Validate(); err != nil {
		return err
	}
	l.Normalize()
	l.UpdatedAt = nowISO()
	data, err := toMap(l)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, TenantCol(tenantID, ColFinanceiro), id, data, true)
}

// Delete remove um lançamento
func (r *FinanceiroRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.store.Delete(ctx, TenantCol(tenantID, ColFinanceiro), id)
}
