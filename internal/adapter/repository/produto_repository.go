package repository

import (
	"context"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/domain/produto"
)

// ProdutoRepository implementa produto.Repository sobre o banco de documentos
type ProdutoRepository struct {
	store docstore.Store
}

// NewProdutoRepository cria uma nova instância de ProdutoRepository
func NewProdutoRepository(store docstore.Store) *ProdutoRepository {
	return &ProdutoRepository{store: store}
}

// Create cria um novo produto e retorna o id gerado
func (r *ProdutoRepository) Create(ctx context.Context, tenantID string, p *produto.Produto) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	p.UpdatedAt = nowISO()
	data, err := toMap(p)
	if err != nil {
		return "", err
	}
	return r.store.Add(ctx, TenantCol(tenantID, ColProdutos), data)
}

// FindByID busca um produto pelo ID
func (r *ProdutoRepository) FindByID(ctx context.Context, tenantID, id string) (*produto.Produto, error) {
	doc, err := r.store.Get(ctx, TenantCol(tenantID, ColProdutos), id)
	if err != nil {
		if err == docstore.ErrNotFound {
			return nil, produto.ErrProdutoNotFound
		}
		return nil, err
	}
	var p produto.Produto
	if err := fromDoc(doc, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// List lista os produtos ordenados por nome
func (r *ProdutoRepository) List(ctx context.Context, tenantID string) ([]*produto.Produto, error) {
	docs, err := r.store.GetOnce(ctx, docstore.Query{Path: TenantCol(tenantID, ColProdutos), OrderBy: "nome"})
	if err != nil {
		return nil, err
	}
	produtos := make([]*produto.Produto, 0, len(docs))
	for _, doc := range docs {
		var p produto.Produto
		if err := fromDoc(doc, &p); err != nil {
			return nil, err
		}
		produtos = append(produtos, &p)
	}
	return produtos, nil
}

// Update grava o produto com merge no documento existente
func (r *ProdutoRepository) Update(ctx context.Context, tenantID, id string, p *produto.Produto) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.UpdatedAt = nowISO()
	data, err := toMap(p)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, TenantCol(tenantID, ColProdutos), id, data, true)
}

// UpdateEstoque atualiza apenas a quantidade em estoque
func (r *ProdutoRepository) UpdateEstoque(ctx context.Context, tenantID, id string, quantidade int) error {
	if quantidade < 0 {
		return produto.ErrEstoqueNegativo
	}
	return r.store.Update(ctx, TenantCol(tenantID, ColProdutos), id, map[string]interface{}{
		"quantidadeEstoque": quantidade,
		"updatedAt":         nowISO(),
	})
}

// Delete remove um produto
func (r *ProdutoRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.store.Delete(ctx, TenantCol(tenantID, ColProdutos), id)
}
