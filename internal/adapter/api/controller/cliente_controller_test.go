package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/adapter/repository"
	clientedomain "github.com/gfsilva/salao-gestor/internal/domain/cliente"
	salaodomain "github.com/gfsilva/salao-gestor/internal/domain/salao"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

func getClientes(t *testing.T, ctrl *ClienteController, tenantID string) []*clientedomain.Cliente {
	t.Helper()

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/clientes", nil)
	ctx.Set("tenant_id", tenantID)

	ctrl.List(ctx)
	require.Equal(t, http.StatusOK, w.Code)

	var clientes []*clientedomain.Cliente
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &clientes))
	return clientes
}

// O cache do container pertence à sessão vinculada; uma requisição
// autenticada de outro tenant vai ao banco e nunca enxerga esse cache.
func TestListClientesNaoServeCacheDeOutroTenant(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := docstore.NewMemoryStore()
	t.Cleanup(func() { store.Close() })
	repo := repository.NewClienteRepository(store)

	// sessão do tenant A vinculada ao container, com cache populado
	st := state.NewContainer(nil)
	st.Login(
		&state.User{ID: "salao-a", Nome: "Salão A", Role: state.RoleTenantAdmin},
		&salaodomain.Salao{ID: "salao-a"},
		false,
	)
	st.SetClientes([]*clientedomain.Cliente{{ID: "c1", Nome: "ANA"}})

	// o tenant B tem a própria base no banco
	bruna, err := clientedomain.NewCliente("Bruna")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), "salao-b", bruna)
	require.NoError(t, err)

	ctrl := NewClienteController(repo, st, logger.NewNopLogger())

	// requisição do tenant B: responde do banco, não do cache de A
	deB := getClientes(t, ctrl, "salao-b")
	require.Len(t, deB, 1)
	require.Equal(t, "BRUNA", deB[0].Nome)

	// o próprio tenant A continua atendido pelo cache
	deA := getClientes(t, ctrl, "salao-a")
	require.Len(t, deA, 1)
	require.Equal(t, "ANA", deA[0].Nome)
}
