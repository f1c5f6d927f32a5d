package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterRelatorioRoutes registra as rotas de relatórios e exportações
func RegisterRelatorioRoutes(tenant *gin.RouterGroup, relatorioController *controller.RelatorioController) {
	relatorios := tenant.Group("/relatorios")
	{
		relatorios.GET("/profissionais", relatorioController.Profissionais)
		relatorios.GET("/profissionais/export/csv", relatorioController.ExportCSV)
		relatorios.GET("/profissionais/export/html", relatorioController.ExportHTML)
		relatorios.GET("/profissionais/export/xlsx", relatorioController.ExportXLSX)
		relatorios.GET("/comissoes", relatorioController.Comissoes)
	}
}
