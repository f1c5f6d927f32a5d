package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterPDVRoutes registra as rotas do ponto de venda
func RegisterPDVRoutes(tenant *gin.RouterGroup, pdvController *controller.PDVController) {
	pdv := tenant.Group("/pdv")
	{
		pdv.GET("/carrinho", pdvController.Carrinho)
		pdv.POST("/carrinho/itens", pdvController.AdicionarItem)
		pdv.DELETE("/carrinho/itens/:tipo/:refId", pdvController.RemoverItem)
		pdv.PUT("/carrinho/cliente", pdvController.SelecionarCliente)
		pdv.POST("/finalizar", pdvController.Finalizar)
	}
}
