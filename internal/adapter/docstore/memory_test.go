package docstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAddEGet(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	id, err := s.Add(context.Background(), "clientes", map[string]interface{}{"nome": "ANA"})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	doc, err := s.Get(context.Background(), "clientes", id)
	require.NoError(t, err)
	require.Equal(t, "ANA", doc.Data["nome"])

	_, err = s.Get(context.Background(), "clientes", "fantasma")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSetMerge(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	s.Seed("clientes", "c1", map[string]interface{}{"nome": "ANA", "telefone": "1199"})

	// merge preserva os campos não informados
	require.NoError(t, s.Set(context.Background(), "clientes", "c1", map[string]interface{}{"nome": "ANA SOUZA"}, true))
	doc, err := s.Get(context.Background(), "clientes", "c1")
	require.NoError(t, err)
	require.Equal(t, "ANA SOUZA", doc.Data["nome"])
	require.Equal(t, "1199", doc.Data["telefone"])

	// sem merge o documento é substituído por inteiro
	require.NoError(t, s.Set(context.Background(), "clientes", "c1", map[string]interface{}{"nome": "BIA"}, false))
	doc, err = s.Get(context.Background(), "clientes", "c1")
	require.NoError(t, err)
	require.Equal(t, "BIA", doc.Data["nome"])
	require.NotContains(t, doc.Data, "telefone")
}

func TestUpdateAusente(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	err := s.Update(context.Background(), "clientes", "fantasma", map[string]interface{}{"nome": "X"})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteAusenteSilencioso(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	require.NoError(t, s.Delete(context.Background(), "clientes", "fantasma"))
}

func TestGetOnceFiltrosEOrdenacao(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	s.Seed("saloes", "s1", map[string]interface{}{"nome": "BELA", "ativo": true, "createdAt": "2026-01-01"})
	s.Seed("saloes", "s2", map[string]interface{}{"nome": "ALFA", "ativo": false, "createdAt": "2026-03-01"})
	s.Seed("saloes", "s3", map[string]interface{}{"nome": "CHIC", "ativo": true, "createdAt": "2026-02-01"})

	docs, err := s.GetOnce(context.Background(), Query{Path: "saloes", Filters: []Filter{{Field: "ativo", Value: true}}})
	require.NoError(t, err)
	require.Len(t, docs, 2)

	docs, err = s.GetOnce(context.Background(), Query{Path: "saloes", OrderBy: "nome"})
	require.NoError(t, err)
	require.Equal(t, []string{"ALFA", "BELA", "CHIC"}, []string{
		docs[0].Data["nome"].(string), docs[1].Data["nome"].(string), docs[2].Data["nome"].(string),
	})

	docs, err = s.GetOnce(context.Background(), Query{Path: "saloes", OrderBy: "createdAt", Desc: true})
	require.NoError(t, err)
	require.Equal(t, "s2", docs[0].ID)
	require.Equal(t, "s1", docs[2].ID)
}

func TestSubscribeEntregaSnapshots(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	s.Seed("clientes", "c1", map[string]interface{}{"nome": "ANA"})

	snapshots := make(chan []Document, 8)
	unsub, err := s.Subscribe(Query{Path: "clientes", OrderBy: "nome"},
		func(docs []Document) { snapshots <- docs },
		func(err error) { t.Errorf("onError inesperado: %v", err) },
	)
	require.NoError(t, err)
	defer unsub()

	// snapshot inicial chega mesmo sem mutações
	select {
	case docs := <-snapshots:
		require.Len(t, docs, 1)
		require.Equal(t, "c1", docs[0].ID)
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot inicial não entregue")
	}

	// cada mutação entrega o snapshot completo da coleção
	_, err = s.Add(context.Background(), "clientes", map[string]interface{}{"nome": "BIA"})
	require.NoError(t, err)

	select {
	case docs := <-snapshots:
		require.Len(t, docs, 2)
		require.Equal(t, "ANA", docs[0].Data["nome"])
		require.Equal(t, "BIA", docs[1].Data["nome"])
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot da mutação não entregue")
	}
}

func TestSubscribeOutraColecaoNaoNotifica(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	snapshots := make(chan []Document, 8)
	unsub, err := s.Subscribe(Query{Path: "clientes"},
		func(docs []Document) { snapshots <- docs },
		nil,
	)
	require.NoError(t, err)
	defer unsub()

	<-snapshots // inicial

	_, err = s.Add(context.Background(), "produtos", map[string]interface{}{"nome": "SHAMPOO"})
	require.NoError(t, err)

	select {
	case docs := <-snapshots:
		t.Fatalf("mutação em outra coleção notificou: %v", docs)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestUnsubscribe(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()

	snapshots := make(chan []Document, 8)
	unsub, err := s.Subscribe(Query{Path: "clientes"},
		func(docs []Document) { snapshots <- docs },
		nil,
	)
	require.NoError(t, err)

	<-snapshots // inicial
	unsub()

	_, err = s.Add(context.Background(), "clientes", map[string]interface{}{"nome": "ANA"})
	require.NoError(t, err)

	select {
	case docs := <-snapshots:
		t.Fatalf("assinatura cancelada recebeu snapshot: %v", docs)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestCloseBloqueiaOperacoes(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Close())

	_, err := s.Add(context.Background(), "clientes", map[string]interface{}{"nome": "ANA"})
	require.ErrorIs(t, err, ErrClosed)

	_, err = s.GetOnce(context.Background(), Query{Path: "clientes"})
	require.ErrorIs(t, err, ErrClosed)
}

func TestDocumentosDevolvidosSaoCopias(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	s.Seed("clientes", "c1", map[string]interface{}{"nome": "ANA"})

	doc, err := s.Get(context.Background(), "clientes", "c1")
	require.NoError(t, err)
	doc.Data["nome"] = "MUTADO"

	fresh, err := s.Get(context.Background(), "clientes", "c1")
	require.NoError(t, err)
	require.Equal(t, "ANA", fresh.Data["nome"])
}

// Mutações em sequência rápida chegam ao listener na ordem em que foram
// aplicadas; um snapshot antigo nunca é entregue depois de um mais novo.
func TestSubscribeEntregaNaOrdemDasMutacoes(t *testing.T) {
	s := NewMemoryStore()
	defer s.Close()
	s.Seed("clientes", "c1", map[string]interface{}{"v": 0})

	var mu sync.Mutex
	var vistos []int
	unsub, err := s.Subscribe(Query{Path: "clientes"}, func(docs []Document) {
		mu.Lock()
		defer mu.Unlock()
		if len(docs) == 1 {
			if v, ok := docs[0].Data["v"].(int); ok {
				vistos = append(vistos, v)
			}
		}
	}, nil)
	require.NoError(t, err)
	defer unsub()

	const ultimo = 50
	for i := 1; i <= ultimo; i++ {
		require.NoError(t, s.Update(context.Background(), "clientes", "c1", map[string]interface{}{"v": i}))
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(vistos) > 0 && vistos[len(vistos)-1] == ultimo
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	for i := 1; i < len(vistos); i++ {
		require.LessOrEqual(t, vistos[i-1], vistos[i], "snapshot antigo entregue depois de um mais novo")
	}
}
