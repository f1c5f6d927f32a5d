package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterClienteRoutes registra as rotas do módulo de clientes
func RegisterClienteRoutes(tenant *gin.RouterGroup, clienteController *controller.ClienteController) {
	clientes := tenant.Group("/clientes")
	{
		clientes.POST("", clienteController.Create)
		clientes.GET("", clienteController.List)
		clientes.GET("/:id", clienteController.Get)
		clientes.PUT("/:id", clienteController.Update)
		clientes.DELETE("/:id", clienteController.Delete)
	}
}
