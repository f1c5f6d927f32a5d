package cliente

import (
	"context"
)

// Repository define a interface para operações de repositório de clientes.
// Todas as operações são escopadas ao salão (tenant) informado.
type Repository interface {
	// Create cria um novo cliente e retorna o id gerado
	Create(ctx context.Context, tenantID string, c *Cliente) (string, error)

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, tenantID, id string) (*Cliente, error)

	// List lista os clientes ordenados por nome
	List(ctx context.Context, tenantID string) ([]*Cliente, error)

	// Update grava o cliente (merge no documento existente)
	Update(ctx context.Context, tenantID, id string, c *Cliente) error

	// Delete remove um cliente
	Delete(ctx context.Context, tenantID, id string) error
}
