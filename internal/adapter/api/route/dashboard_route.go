package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterDashboardRoutes registra as rotas do painel. A rota de status
// de conectividade é pública: o cliente a consulta antes mesmo de
// autenticar.
func RegisterDashboardRoutes(public, tenant *gin.RouterGroup, dashboardController *controller.DashboardController) {
	public.GET("/dashboard/status", dashboardController.Status)

	dashboard := tenant.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardController.Stats)
		dashboard.GET("/grafico", dashboardController.Grafico)
		dashboard.GET("/estoque", dashboardController.Estoque)
	}
}
