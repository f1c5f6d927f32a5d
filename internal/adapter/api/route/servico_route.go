package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterServicoRoutes registra as rotas do catálogo de serviços
func RegisterServicoRoutes(tenant *gin.RouterGroup, servicoController *controller.ServicoController) {
	servicos := tenant.Group("/servicos")
	{
		servicos.POST("", servicoController.Create)
		servicos.GET("", servicoController.List)
		servicos.GET("/:id", servicoController.Get)
		servicos.PUT("/:id", servicoController.Update)
		servicos.DELETE("/:id", servicoController.Delete)
	}
}
