package sync

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/adapter/repository"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

const tenantID = "t1"

func novoEngine(t *testing.T) (*Engine, *docstore.MemoryStore, *state.Container) {
	t.Helper()
	store := docstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() })

	st := state.NewContainer(nil)
	e := NewEngine(store, st, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	e.Start(ctx)

	return e, store, st
}

func eventually(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 10*time.Millisecond, msg)
}

func TestBindTenantPopulaEstado(t *testing.T) {
	e, store, st := novoEngine(t)

	col := repository.TenantCol(tenantID, repository.ColClientes)
	store.Seed(col, "c1", map[string]interface{}{"nome": "ANA"})
	store.Seed(col, "c2", map[string]interface{}{"nome": "BIA"})

	e.BindTenant(tenantID)

	eventually(t, func() bool { return len(st.Clientes()) == 2 }, "snapshot inicial não chegou ao estado")
	eventually(t, e.Online, "snapshot recebido deveria marcar online")
}

func TestMutacaoPropagaAoEstado(t *testing.T) {
	e, store, st := novoEngine(t)
	col := repository.TenantCol(tenantID, repository.ColClientes)
	store.Seed(col, "c1", map[string]interface{}{"nome": "ANA", "telefone": "1199"})

	e.BindTenant(tenantID)
	eventually(t, func() bool { return len(st.Clientes()) == 1 }, "snapshot inicial não chegou")

	// alteração parcial vira merge no cache
	require.NoError(t, store.Update(context.Background(), col, "c1", map[string]interface{}{"nome": "ANA SOUZA"}))
	eventually(t, func() bool {
		lista := st.Clientes()
		return len(lista) == 1 && lista[0].Nome == "ANA SOUZA" && lista[0].Telefone == "1199"
	}, "update não foi aplicado ao cache")

	// registro novo entra por inteiro
	_, err := store.Add(context.Background(), col, map[string]interface{}{"nome": "CARLA"})
	require.NoError(t, err)
	eventually(t, func() bool { return len(st.Clientes()) == 2 }, "registro novo não chegou ao cache")

	// remoção some do cache
	require.NoError(t, store.Delete(context.Background(), col, "c1"))
	eventually(t, func() bool {
		lista := st.Clientes()
		return len(lista) == 1 && lista[0].Nome == "CARLA"
	}, "remoção não foi aplicada ao cache")
}

func TestBindMasterPopulaSaloes(t *testing.T) {
	e, store, st := novoEngine(t)
	store.Seed(repository.ColSaloes, "s1", map[string]interface{}{"nome": "STUDIO BELA", "ativo": true})

	e.BindMaster()

	eventually(t, func() bool {
		lista := st.Saloes()
		return len(lista) == 1 && lista[0].Nome == "STUDIO BELA"
	}, "coleção de salões não chegou ao estado")
}

func TestUnbindParaDePropagar(t *testing.T) {
	e, store, st := novoEngine(t)
	col := repository.TenantCol(tenantID, repository.ColClientes)
	store.Seed(col, "c1", map[string]interface{}{"nome": "ANA"})

	e.BindTenant(tenantID)
	eventually(t, func() bool { return len(st.Clientes()) == 1 }, "snapshot inicial não chegou")

	e.Unbind()
	_, err := store.Add(context.Background(), col, map[string]interface{}{"nome": "BIA"})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	require.Len(t, st.Clientes(), 1, "mutação após Unbind não deveria propagar")
}

func TestListenRecebeEventos(t *testing.T) {
	e, store, _ := novoEngine(t)
	col := repository.TenantCol(tenantID, repository.ColClientes)
	store.Seed(col, "c1", map[string]interface{}{"nome": "ANA"})

	ch, cancel := e.Listen()
	defer cancel()

	e.BindTenant(tenantID)

	select {
	case ev := <-ch:
		require.Equal(t, KindUpserted, ev.Kind)
		require.Equal(t, repository.ColClientes, ev.Colecao)
		require.Equal(t, "c1", ev.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("nenhum evento entregue ao ouvinte")
	}
}

func TestListenCancelamentoFechaCanal(t *testing.T) {
	e, _, _ := novoEngine(t)

	ch, cancel := e.Listen()
	cancel()
	cancel() // cancelar duas vezes é inofensivo

	_, ok := <-ch
	require.False(t, ok, "canal deveria estar fechado após o cancelamento")
}

func TestSnapshotIdenticoNaoGeraEvento(t *testing.T) {
	e, store, _ := novoEngine(t)
	col := repository.TenantCol(tenantID, repository.ColClientes)
	store.Seed(col, "c1", map[string]interface{}{"nome": "ANA"})

	ch, cancelListen := e.Listen()
	defer cancelListen()
	e.BindTenant(tenantID)

	// consome o upsert do snapshot inicial
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot inicial não gerou evento")
	}

	// reescrever o documento com o mesmo conteúdo não muda nada
	require.NoError(t, store.Set(context.Background(), col, "c1", map[string]interface{}{"nome": "ANA"}, false))

	select {
	case ev := <-ch:
		t.Fatalf("snapshot sem diferenças gerou evento: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}
