// Package docstore envolve o banco de documentos remoto: caminhos de
// coleção, consultas, leituras pontuais, escritas e assinaturas em tempo
// real. Os documentos são registros chave/valor sem esquema; a tipagem é
// imposta pela camada de repositório.
package docstore

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indica que o documento não existe
	ErrNotFound = errors.New("documento não encontrado")
	// ErrClosed indica que o store já foi fechado
	ErrClosed = errors.New("store fechado")
)

// Filter é um filtro de igualdade sobre um campo do documento
type Filter struct {
	Field string
	Value interface{}
}

// Query descreve uma consulta sobre uma coleção. Path é o caminho completo
// da coleção, com segmentos separados por barra (ex.:
// "saloes/<tenantID>/clientes").
type Query struct {
	Path    string
	OrderBy string
	Desc    bool
	Filters []Filter
}

// Document é um documento lido do banco
type Document struct {
	ID   string
	Data map[string]interface{}
}

// UnsubscribeFunc cancela uma assinatura ativa
type UnsubscribeFunc func()

// Store é a superfície do banco de documentos consumida pelo núcleo.
// Subscribe entrega o snapshot completo da consulta a cada mudança, na
// ordem em que o banco os emite; erros de assinatura vão para onError e
// nunca encerram o processo.
type Store interface {
	// GetOnce executa a consulta uma única vez
	GetOnce(ctx context.Context, q Query) ([]Document, error)

	// Get lê um documento pelo id
	Get(ctx context.Context, path, id string) (Document, error)

	// Add cria um documento com id gerado pelo banco
	Add(ctx context.Context, path string, data map[string]interface{}) (string, error)

	// Set grava um documento por inteiro; com merge, campos ausentes são
	// preservados
	Set(ctx context.Context, path, id string, data map[string]interface{}, merge bool) error

	// Update aplica um conjunto parcial de campos a um documento existente
	Update(ctx context.Context, path, id string, fields map[string]interface{}) error

	// Delete remove um documento
	Delete(ctx context.Context, path, id string) error

	// Subscribe registra um listener para a consulta
	Subscribe(q Query, onSnapshot func([]Document), onError func(error)) (UnsubscribeFunc, error)

	// Close libera os recursos do store
	Close() error
}
