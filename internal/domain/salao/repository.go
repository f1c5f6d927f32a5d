package salao

import (
	"context"
)

// Repository define a interface para operações de repositório de salões.
// Os salões são a coleção raiz do banco de documentos; todas as demais
// coleções ficam aninhadas sob um salão.
type Repository interface {
	// Create cria um novo salão e retorna o id gerado
	Create(ctx context.Context, s *Salao) (string, error)

	// FindByID busca um salão pelo ID
	FindByID(ctx context.Context, id string) (*Salao, error)

	// FindByUsuario busca um salão pelo campo usuario
	FindByUsuario(ctx context.Context, usuario string) (*Salao, error)

	// FindByEmail busca um salão pelo campo email
	FindByEmail(ctx context.Context, email string) (*Salao, error)

	// List lista os salões ordenados por criação (mais recentes primeiro)
	List(ctx context.Context) ([]*Salao, error)

	// Update grava o salão por inteiro (merge no documento existente)
	Update(ctx context.Context, id string, s *Salao) error

	// UpdateSenha troca a senha do salão
	UpdateSenha(ctx context.Context, id, senha string) error

	// Delete remove um salão. As subcoleções não são removidas em cascata,
	// paridade com o comportamento original.
	Delete(ctx context.Context, id string) error
}
