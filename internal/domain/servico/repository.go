package servico

import (
	"context"
)

// Repository define a interface para operações de repositório de serviços
type Repository interface {
	// Create cria um novo serviço e retorna o id gerado
	Create(ctx context.Context, tenantID string, s *Servico) (string, error)

	// FindByID busca um serviço pelo ID
	FindByID(ctx context.Context, tenantID, id string) (*Servico, error)

	// List lista os serviços ordenados por nome
	List(ctx context.Context, tenantID string) ([]*Servico, error)

	// Update grava o serviço (merge no documento existente)
	Update(ctx context.Context, tenantID, id string, s *Servico) error

	// Delete remove um serviço
	Delete(ctx context.Context, tenantID, id string) error
}
