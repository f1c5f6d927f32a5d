package controller

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/state"
)

// cacheDoTenant informa se o cache do container pertence ao tenant da
// requisição. O container guarda as coleções da última sessão vinculada;
// um token válido de outro tenant nunca é servido por esse cache.
func cacheDoTenant(st *state.Container, ctx *gin.Context) bool {
	tenantID := ctx.GetString("tenant_id")
	return tenantID != "" && st.TenantID() == tenantID
}

// colecao resolve uma coleção para a requisição: responde do cache quando
// ele pertence ao tenant autenticado e já foi populado, senão busca no
// banco pelo tenant do token.
func colecao[T any](
	ctx *gin.Context,
	st *state.Container,
	cache func() []*T,
	busca func(context.Context, string) ([]*T, error),
) ([]*T, error) {
	if cacheDoTenant(st, ctx) {
		if itens := cache(); len(itens) > 0 {
			return itens, nil
		}
	}
	return busca(ctx.Request.Context(), ctx.GetString("tenant_id"))
}
