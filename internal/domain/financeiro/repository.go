package financeiro

import (
	"context"
)

// Repository define a interface para operações de repositório do financeiro
type Repository interface {
	// Create cria um novo lançamento e retorna o id gerado
	Create(ctx context.Context, tenantID string, l *Lancamento) (string, error)

	// FindByID busca um lançamento pelo ID
	FindByID(ctx context.Context, tenantID, id string) (*Lancamento, error)

	// List lista os lançamentos ordenados por data (mais recentes primeiro)
	List(ctx context.Context, tenantID string) ([]*Lancamento, error)

	// Update grava o lançamento (merge no documento existente)
	Update(ctx context.Context, tenantID, id string, l *Lancamento) error

	// Delete remove um lançamento
	Delete(ctx context.Context, tenantID, id string) error
}
