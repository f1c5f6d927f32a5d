package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterFinanceiroRoutes registra as rotas do financeiro
func RegisterFinanceiroRoutes(tenant *gin.RouterGroup, financeiroController *controller.FinanceiroController) {
	financeiro := tenant.Group("/financeiro")
	{
		financeiro.POST("", financeiroController.Create)
		financeiro.GET("", financeiroController.List)
		financeiro.GET("/:id", financeiroController.Get)
		financeiro.PUT("/:id", financeiroController.Update)
		financeiro.DELETE("/:id", financeiroController.Delete)
	}
}
