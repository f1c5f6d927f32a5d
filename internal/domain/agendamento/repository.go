package agendamento

import (
	"context"
)

// Repository define a interface para operações de repositório de agendamentos
type Repository interface {
	// Create cria um novo agendamento e retorna o id gerado
	Create(ctx context.Context, tenantID string, a *Agendamento) (string, error)

	// FindByID busca um agendamento pelo ID
	FindByID(ctx context.Context, tenantID, id string) (*Agendamento, error)

	// List lista os agendamentos ordenados por data (mais recentes primeiro)
	List(ctx context.Context, tenantID string) ([]*Agendamento, error)

	// Update grava o agendamento (merge no documento existente)
	Update(ctx context.Context, tenantID, id string, a *Agendamento) error

	// Delete remove um agendamento
	Delete(ctx context.Context, tenantID, id string) error
}
