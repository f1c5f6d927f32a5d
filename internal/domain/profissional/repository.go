package profissional

import (
	"context"
)

// Repository define a interface para operações de repositório de profissionais
type Repository interface {
	// Create cria um novo profissional e retorna o id gerado
	Create(ctx context.Context, tenantID string, p *Profissional) (string, error)

	// FindByID busca um profissional pelo ID
	FindByID(ctx context.Context, tenantID, id string) (*Profissional, error)

	// List lista os profissionais ordenados por nome
	List(ctx context.Context, tenantID string) ([]*Profissional, error)

	// Update grava o profissional (merge no documento existente)
	Update(ctx context.Context, tenantID, id string, p *Profissional) error

	// Delete remove um profissional
	Delete(ctx context.Context, tenantID, id string) error
}
