package repository

import (
	"context"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/domain/profissional"
)

// ProfissionalRepository implementa profissional.Repository sobre o banco
// de documentos
type ProfissionalRepository struct {
	store docstore.Store
}

// NewProfissionalRepository cria uma nova instância de ProfissionalRepository
func NewProfissionalRepository(store docstore.Store) *ProfissionalRepository {
	return &ProfissionalRepository{store: store}
}

// Create cria um novo profissional e retorna o id gerado
func (r *ProfissionalRepository) Create(ctx context.Context, tenantID string, p *profissional.Profissional) (string, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return "", err
	}
	p.UpdatedAt = nowISO()
	data, err := toMap(p)
	if err != nil {
		return "", err
	}
	return r.store.Add(ctx, TenantCol(tenantID, ColProfissionais), data)
}

// FindByID busca um profissional pelo ID
func (r *ProfissionalRepository) FindByID(ctx context.Context, tenantID, id string) (*profissional.Profissional, error) {
	doc, err := r.store.Get(ctx, TenantCol(tenantID, ColProfissionais), id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, profissional.ErrProfissionalNotFound
		}
		return nil, err
	}
	var p profissional.Profissional
	if err := fromDoc(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista os profissionais ordenados por nome
func (r *ProfissionalRepository) List(ctx context.Context, tenantID string) ([]*profissional.Profissional, error) {
	docs, err := r.store.GetOnce(ctx, docstore.Query{Path: TenantCol(tenantID, ColProfissionais), OrderBy: "nome"})
	if err != nil {
		return nil, err
	}
	profs := make([]*profissional.Profissional, 0, len(docs))
	for _, doc := range docs {
		var p profissional.Profissional
		if err := fromDoc(doc, &p); err != nil {
			return nil, err
		}
		profs = append(profs, &p)
	}
	return profs, nil
}

// Update grava o profissional com merge no documento existente
func (r *ProfissionalRepository) Update(ctx context.Context, tenantID, id string, p *profissional.Profissional) error {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = nowISO()
	data, err := toMap(p)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, TenantCol(tenantID, ColProfissionais), id, data, true)
}

// Delete remove um profissional
func (r *ProfissionalRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.store.Delete(ctx, TenantCol(tenantID, ColProfissionais), id)
}
