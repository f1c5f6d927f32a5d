package repository

import (
	"context"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/domain/cliente"
)

// ClienteRepository implementa cliente.Repository sobre o banco de documentos
type ClienteRepository struct {
	store docstore.Store
}

// NewClienteRepository cria uma nova instância de ClienteRepository
func NewClienteRepository(store docstore.Store) *ClienteRepository {
	return &ClienteRepository{store: store}
}

// Create cria um novo cliente e retorna o id gerado
func (r *ClienteRepository) Create(ctx context.Context, tenantID string, c *cliente.Cliente) (string, error) {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return "", err
	}
	c.UpdatedAt = nowISO()
	data, err := toMap(c)
	if err != nil {
		return "", err
	}
	return r.store.Add(ctx, TenantCol(tenantID, ColClientes), data)
}

// FindByID busca um cliente pelo ID
func (r *ClienteRepository) FindByID(ctx context.Context, tenantID, id string) (*cliente.Cliente, error) {
	doc, err := r.store.Get(ctx, TenantCol(tenantID, ColClientes), id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, cliente.ErrClienteNotFound
		}
		return nil, err
	}
	var c cliente.Cliente
	if err := fromDoc(doc, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// List lista os clientes ordenados por nome
func (r *ClienteRepository) List(ctx context.Context, tenantID string) ([]*cliente.Cliente, error) {
	docs, err := r.store.GetOnce(ctx, docstore.Query{Path: TenantCol(tenantID, ColClientes), OrderBy: "nome"})
	if err != nil {
		return nil, err
	}
	clientes := make([]*cliente.Cliente, 0, len(docs))
	for _, doc := range docs {
		var c cliente.Cliente
		if err := fromDoc(doc, &c); err != nil {
			return nil, err
		}
		clientes = append(clientes, &c)
	}
	return clientes, nil
}

// Update grava o cliente com merge no documento existente
func (r *ClienteRepository) Update(ctx context.Context, tenantID, id string, c *cliente.Cliente) error {
	c.Normalize()
	if err := c.Validate(); err != nil {
		return err
	}
	c.UpdatedAt = nowISO()
	data, err := toMap(c)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, TenantCol(tenantID, ColClientes), id, data, true)
}

// Delete remove um cliente
func (r *ClienteRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.store.Delete(ctx, TenantCol(tenantID, ColClientes), id)
}
