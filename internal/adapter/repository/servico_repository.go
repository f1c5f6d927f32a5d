package repository

import (
	"context"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/domain/servico"
)

// ServicoRepository implementa servico.Repository sobre o banco de documentos
type ServicoRepository struct {
	store docstore.Store
}

// NewServicoRepository cria uma nova instância de ServicoRepository
func NewServicoRepository(store docstore.Store) *ServicoRepository {
	return &ServicoRepository{store: store}
}

// Create cria um novo serviço e retorna o id gerado
func (r *ServicoRepository) Create(ctx context.Context, tenantID string, s *servico.Servico) (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	s.UpdatedAt = nowISO()
	data, err := toMap(s)
	if err != nil {
		return "", err
	}
	return r.store.Add(ctx, TenantCol(tenantID, ColServicos), data)
}

// FindByID busca um serviço pelo ID
func (r *ServicoRepository) FindByID(ctx context.Context, tenantID, id string) (*servico.Servico, error) {
	doc, err := r.store.Get(ctx, TenantCol(tenantID, ColServicos), id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, servico.ErrServicoNotFound
		}
		return nil, err
	}
	var s servico.Servico
	if err := fromDoc(doc, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// List lista os serviços ordenados por nome
func (r *ServicoRepository) List(ctx context.Context, tenantID string) ([]*servico.Servico, error) {
	docs, err := r.store.GetOnce(ctx, docstore.Query{Path: TenantCol(tenantID, ColServicos), OrderBy: "nome"})
	if err != nil {
		return nil, err
	}
	servicos := make([]*servico.Servico, 0, len(docs))
	for _, doc := range docs {
		var s servico.Servico
		if err := fromDoc(doc, &s); err != nil {
			return nil, err
		}
		servicos = append(servicos, &s)
	}
	return servicos, nil
}

// Update grava o serviço com merge no documento existente
func (r *ServicoRepository) Update(ctx context.Context, tenantID, id string, s *servico.Servico) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.UpdatedAt = nowISO()
	data, err := toMap(s)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, TenantCol(tenantID, ColServicos), id, data, true)
}

// Delete remove um serviço
func (r *ServicoRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.store.Delete(ctx, TenantCol(tenantID, ColServicos), id)
}
