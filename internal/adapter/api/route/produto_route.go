package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterProdutoRoutes registra as rotas do módulo de produtos
func RegisterProdutoRoutes(tenant *gin.RouterGroup, produtoController *controller.ProdutoController) {
	produtos := tenant.Group("/produtos")
	{
		produtos.POST("", produtoController.Create)
		produtos.GET("", produtoController.List)
		produtos.GET("/:id", produtoController.Get)
		produtos.PUT("/:id", produtoController.Update)
		produtos.PATCH("/:id/estoque", produtoController.UpdateEstoque)
		produtos.DELETE("/:id", produtoController.Delete)
	}
}
