package repository

import (
	"context"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
)

// AgendamentoRepository implementa agendamento.Repository sobre o banco
// de documentos
type AgendamentoRepository struct {
	store docstore.Store
}

// NewAgendamentoRepository cria uma nova instância de AgendamentoRepository
func NewAgendamentoRepository(store docstore.Store) *AgendamentoRepository {
	return &AgendamentoRepository{store: store}
}

// Create cria um novo agendamento e retorna o id gerado
func (r *AgendamentoRepository) Create(ctx context.Context, tenantID string, a *agendamento.Agendamento) (string, error) {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return "", err
	}
	a.UpdatedAt = nowISO()
	data, err := toMap(a)
	if err != nil {
		return "", err
	}
	return r.store.Add(ctx, TenantCol(tenantID, ColAgendamentos), data)
}

// FindByID busca um agendamento pelo ID
func (r *AgendamentoRepository) FindByID(ctx context.Context, tenantID, id string) (*agendamento.Agendamento, error) {
	doc, err := r.store.Get(ctx, TenantCol(tenantID, ColAgendamentos), id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, agendamento.ErrAgendamentoNotFound
		}
		return nil, err
	}
	var a agendamento.Agendamento
	if err := fromDoc(doc, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// List lista os agendamentos por data, mais recentes primeiro
func (r *AgendamentoRepository) List(ctx context.Context, tenantID string) ([]*agendamento.Agendamento, error) {
	docs, err := r.store.GetOnce(ctx, docstore.Query{Path: TenantCol(tenantID, ColAgendamentos), OrderBy: "data", Desc: true})
	if err != nil {
		return nil, err
	}
	ags := make([]*agendamento.Agendamento, 0, len(docs))
	for _, doc := range docs {
		var a agendamento.Agendamento
		if err := fromDoc(doc, &a); err != nil {
			return nil, err
		}
		ags = append(ags, &a)
	}
	return ags, nil
}

// Update grava o agendamento com merge no documento existente
func (r *AgendamentoRepository) Update(ctx context.Context, tenantID, id string, a *agendamento.Agendamento) error {
	a.Normalize()
	if err := a.Validate(); err != nil {
		return err
	}
	a.UpdatedAt = nowISO()
	data, err := toMap(a)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, TenantCol(tenantID, ColAgendamentos), id, data, true)
}

// Delete remove um agendamento
func (r *AgendamentoRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.store.Delete(ctx, TenantCol(tenantID, ColAgendamentos), id)
}
