package repository

import (
	"context"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/domain/salao"
)

// SalaoRepository implementa salao.Repository sobre o banco de documentos
type SalaoRepository struct {
	store docstore.Store
}

// NewSalaoRepository cria uma nova instância de SalaoRepository
func NewSalaoRepository(store docstore.Store) *SalaoRepository {
	return &SalaoRepository{store: store}
}

// Create cria um novo salão e retorna o id gerado
func (r *SalaoRepository) Create(ctx context.Context, s *salao.Salao) (string, error) {
	if err := validateSalao(s); err != nil {
		return "", err
	}
	s.UpdatedAt = nowISO()
	data, err := toMap(s)
	if err != nil {
		return "", err
	}
	return r.store.Add(ctx, ColSaloes, data)
}

// FindByID busca um salão pelo ID
func (r *SalaoRepository) FindByID(ctx context.Context, id string) (*salao.Salao, error) {
	doc, err := r.store.Get(ctx, ColSaloes, id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, salao.ErrSalaoNotFound
		}
		return nil, err
	}
	var s salao.Salao
	if err := fromDoc(doc, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FindByUsuario busca um salão pelo campo usuario
func (r *SalaoRepository) FindByUsuario(ctx context.Context, usuario string) (*salao.Salao, error) {
	return r.findByField(ctx, "usuario", usuario)
}

// FindByEmail busca um salão pelo campo email
func (r *SalaoRepository) FindByEmail(ctx context.Context, email string) (*salao.Salao, error) {
	return r.findByField(ctx, "email", email)
}

func (r *SalaoRepository) findByField(ctx context.Context, field, value string) (*salao.Salao, error) {
	docs, err := r.store.GetOnce(ctx, docstore.Query{
		Path:    ColSaloes,
		Filters: []docstore.Filter{{Field: field, Value: value}},
	})
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, salao.ErrSalaoNotFound
	}
	var s salao.Salao
	if err := fromDoc(docs[0], &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// List lista os salões por criação, mais recentes primeiro
func (r *SalaoRepository) List(ctx context.Context) ([]*salao.Salao, error) {
	docs, err := r.store.GetOnce(ctx, docstore.Query{Path: ColSaloes, OrderBy: "createdAt", Desc: true})
	if err != nil {
		return nil, err
	}
	saloes := make([]*salao.Salao, 0, len(docs))
	for _, doc := range docs {
		var s salao.Salao
		if err := fromDoc(doc, &s); err != nil {
			return nil, err
		}
		saloes = append(saloes, &s)
	}
	return saloes, nil
}

// Update grava o salão com merge no documento existente
func (r *SalaoRepository) Update(ctx context.Context, id string, s *salao.Salao) error {
	if err := validateSalao(s); err != nil {
		return err
	}
	s.UpdatedAt = nowISO()
	data, err := toMap(s)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, ColSaloes, id, data, true)
}

// UpdateSenha troca apenas a senha do salão
func (r *SalaoRepository) UpdateSenha(ctx context.Context, id, senha string) error {
	if senha == "" {
		return salao.ErrEmptySenha
	}
	return r.store.Update(ctx, ColSaloes, id, map[string]interface{}{
		"senha":     senha,
		"updatedAt": nowISO(),
	})
}

// Delete remove um salão; as subcoleções ficam órfãs (sem cascata)
func (r *SalaoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, ColSaloes, id)
}

func validateSalao(s *salao.Salao) error {
	if s.Nome == "" {
		return salao.ErrEmptyNome
	}
	if s.Usuario == "" {
		return salao.ErrEmptyUsuario
	}
	switch s.Plano {
	case salao.PlanoBasico, salao.PlanoProfissional, salao.PlanoPremium:
	default:
		return salao.ErrInvalidPlano
	}
	return nil
}
