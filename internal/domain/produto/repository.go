package produto

import (
	"context"
)

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria um novo produto e retorna o id gerado
	Create(ctx context.Context, tenantID string, p *Produto) (string, error)

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, tenantID, id string) (*Produto, error)

	// List lista os produtos ordenados por nome
	List(ctx context.Context, tenantID string) ([]*Produto, error)

	// Update grava o produto (merge no documento existente)
	Update(ctx context.Context, tenantID, id string, p *Produto) error

	// UpdateEstoque atualiza apenas a quantidade em estoque do produto
	UpdateEstoque(ctx context.Context, tenantID, id string, quantidade int) error

	// Delete remove um produto
	Delete(ctx context.Context, tenantID, id string) error
}
