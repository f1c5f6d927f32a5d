// Package tenant propaga o salão da sessão pelos contextos das
// requisições e valida o escopo de tenant nas rotas funcionais.
package tenant

import (
	"context"
)

type contextKey string

const (
	// tenantIDKey é a chave usada para armazenar o ID do salão no contexto
	tenantIDKey contextKey = "tenant_id"
)

// SetTenantIDContext define o ID do salão no contexto
func SetTenantIDContext(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// GetTenantIDFromContext obtém o ID do salão do contexto
func GetTenantIDFromContext(ctx context.Context) string {
	if tenantID, ok := ctx.Value(tenantIDKey).(string); ok {
		return tenantID
	}
	return ""
}

// GetTenantID obtém o ID do salão de um contexto do Gin
func GetTenantID(c interface{}) string {
	if gc, ok := c.(interface{ GetString(string) string }); ok {
		return gc.GetString("tenant_id")
	}

	if gc, ok := c.(interface {
		Get(string) (interface{}, bool)
	}); ok {
		if val, exists := gc.Get("tenant_id"); exists {
			if tenantID, ok := val.(string); ok {
				return tenantID
			}
		}
	}

	return ""
}
