package docstore

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore implementa Store em memória, com assinaturas notificadas a
// cada mutação. Usado nos testes e no modo de desenvolvimento sem
// credenciais do Firestore.
type MemoryStore struct {
	mu     sync.Mutex
	data   map[string]map[string]map[string]interface{} // path -> id -> documento
	subs   map[int]*memorySub
	nextID int
	closed bool
}

type memorySub struct {
	query      Query
	queue      chan []Document // fila de entrega, na ordem de emissão
	onSnapshot func([]Document)
	onError    func(error)
}

// NewMemoryStore cria um store vazio
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[string]map[string]interface{}),
		subs: make(map[int]*memorySub),
	}
}

func cloneDoc(d map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// run executa a consulta sobre o estado atual; chamador segura o lock
func (s *MemoryStore) run(q Query) []Document {
	col := s.data[q.Path]
	docs := make([]Document, 0, len(col))

outer:
	for id, data := range col {
		for _, f := range q.Filters {
			if data[f.Field] != f.Value {
				continue outer
			}
		}
		docs = append(docs, Document{ID: id, Data: cloneDoc(data)})
	}

	if q.OrderBy != "" {
		sort.SliceStable(docs, func(i, j int) bool {
			less := lessValue(docs[i].Data[q.OrderBy], docs[j].Data[q.OrderBy])
			if q.Desc {
				return !less && !equalValue(docs[i].Data[q.OrderBy], docs[j].Data[q.OrderBy])
			}
			return less
		})
	}
	return docs
}

func lessValue(a, b interface{}) bool {
	switch av := a.(type) {
	case string:
		bv, _ := b.(string)
		return strings.Compare(av, bv) < 0
	case float64:
		bv, _ := b.(float64)
		return av < bv
	case int:
		bv, _ := b.(int)
		return av < bv
	case bool:
		bv, _ := b.(bool)
		return !av && bv
	default:
		return false
	}
}

func equalValue(a, b interface{}) bool {
	return !lessValue(a, b) && !lessValue(b, a)
}

// notify enfileira o snapshot atual para todas as assinaturas da coleção
// tocada; chamador segura o lock. A fila única por assinatura garante que
// os snapshots chegam ao callback na ordem em que as mutações ocorreram.
func (s *MemoryStore) notify(path string) {
	for _, sub := range s.subs {
		if sub.query.Path == path {
			sub.queue <- s.run(sub.query)
		}
	}
}

// GetOnce executa a consulta uma única vez
func (s *MemoryStore) GetOnce(ctx context.Context, q Query) ([]Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	return s.run(q), nil
}

// Get lê um documento pelo id
func (s *MemoryStore) Get(ctx context.Context, path, id string) (Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Document{}, ErrClosed
	}
	data, ok := s.data[path][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Data: cloneDoc(data)}, nil
}

// Add cria um documento com id gerado
func (s *MemoryStore) Add(ctx context.Context, path string, data map[string]interface{}) (string, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return "", ErrClosed
	}
	id := uuid.New().String()
	if s.data[path] == nil {
		s.data[path] = make(map[string]map[string]interface{})
	}
	s.data[path][id] = cloneDoc(data)
	s.notify(path)
	s.mu.Unlock()
	return id, nil
}

// Set grava um documento por inteiro, opcionalmente com merge
func (s *MemoryStore) Set(ctx context.Context, path, id string, data map[string]interface{}, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if s.data[path] == nil {
		s.data[path] = make(map[string]map[string]interface{})
	}
	if merge {
		if s.data[path][id] == nil {
			s.data[path][id] = make(map[string]interface{})
		}
		for k, v := range data {
			s.data[path][id][k] = v
		}
	} else {
		s.data[path][id] = cloneDoc(data)
	}
	s.notify(path)
	return nil
}

// Update aplica campos parciais a um documento existente
func (s *MemoryStore) Update(ctx context.Context, path, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	doc, ok := s.data[path][id]
	if !ok {
		return ErrNotFound
	}
	for k, v := range fields {
		doc[k] = v
	}
	s.notify(path)
	return nil
}

// Delete remove um documento; remover um id inexistente não é erro
func (s *MemoryStore) Delete(ctx context.Context, path, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if col, ok := s.data[path]; ok {
		delete(col, id)
	}
	s.notify(path)
	return nil
}

// Subscribe registra um listener que recebe o snapshot inicial e um novo
// snapshot completo a cada mutação na coleção
func (s *MemoryStore) Subscribe(q Query, onSnapshot func([]Document), onError func(error)) (UnsubscribeFunc, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	key := s.nextID
	s.nextID++
	sub := &memorySub{query: q, queue: make(chan []Document, 64), onSnapshot: onSnapshot, onError: onError}
	s.subs[key] = sub
	// snapshot inicial entra na mesma fila das mutações, como o banco real
	// entrega ao registrar o listener
	sub.queue <- s.run(q)
	s.mu.Unlock()

	// uma goroutine por assinatura consome a fila na ordem de emissão
	go func() {
		for docs := range sub.queue {
			sub.onSnapshot(docs)
		}
	}()

	return func() {
		s.mu.Lock()
		if _, ok := s.subs[key]; ok {
			delete(s.subs, key)
			close(sub.queue)
		}
		s.mu.Unlock()
	}, nil
}

// Close descarta todas as assinaturas e bloqueia novas operações
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for _, sub := range s.subs {
		close(sub.queue)
	}
	s.subs = make(map[int]*memorySub)
	return nil
}

// Seed grava um documento com id conhecido sem disparar notificações,
// conveniência para testes
func (s *MemoryStore) Seed(path, id string, data map[string]interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[path] == nil {
		s.data[path] = make(map[string]map[string]interface{})
	}
	s.data[path][id] = cloneDoc(data)
}
