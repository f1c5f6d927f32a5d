package tenant

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
)

// TenantValidator define a interface para validação de salão
type TenantValidator interface {
	ValidateTenant(tenantID string) (bool, error)
}

// TenantMiddleware valida o salão da sessão em rotas com escopo de
// tenant. O tenant ID vem das claims do token, nunca de cabeçalho do
// cliente.
func TenantMiddleware(validator TenantValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetString("tenant_id")
		if tenantID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Sessão sem salão",
				"Esta rota exige uma sessão de salão autenticada",
			))
			return
		}

		valid, err := validator.ValidateTenant(tenantID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"Erro ao validar salão",
				err.Error(),
			))
			return
		}

		if !valid {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Salão inválido",
				"O salão da sessão não existe ou está inativo",
			))
			return
		}

		c.Request = c.Request.WithContext(SetTenantIDContext(c.Request.Context(), tenantID))

		c.Next()
	}
}

// ExpiredGateMiddleware bloqueia sessões de salão com plano vencido. A
// sessão continua autenticada, mas toda rota funcional responde com o
// aviso de contato com o administrador; apenas logout fica de fora do
// bloqueio.
func ExpiredGateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		expiradoVal, exists := c.Get("sessao_expirada")
		if !exists {
			c.Next()
			return
		}

		if expirado, ok := expiradoVal.(bool); ok && expirado {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"Plano vencido",
				"O plano deste salão está vencido. Entre em contato com o administrador.",
			))
			return
		}

		c.Next()
	}
}
