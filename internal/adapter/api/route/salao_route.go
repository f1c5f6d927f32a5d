package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterSalaoRoutes registra as rotas do cadastro de salões, restritas
// ao painel master
func RegisterSalaoRoutes(master *gin.RouterGroup, salaoController *controller.SalaoController) {
	saloes := master.Group("/saloes")
	{
		saloes.POST("", salaoController.Create)
		saloes.GET("", salaoController.List)
		saloes.GET("/stats", salaoController.Stats)
		saloes.GET("/:id", salaoController.Get)
		saloes.PUT("/:id", salaoController.Update)
		saloes.DELETE("/:id", salaoController.Delete)
	}
}
