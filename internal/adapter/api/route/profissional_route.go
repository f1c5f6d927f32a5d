package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterProfissionalRoutes registra as rotas do módulo de profissionais
func RegisterProfissionalRoutes(tenant *gin.RouterGroup, profissionalController *controller.ProfissionalController) {
	profissionais := tenant.Group("/profissionais")
	{
		profissionais.POST("", profissionalController.Create)
		profissionais.GET("", profissionalController.List)
		profissionais.GET("/:id", profissionalController.Get)
		profissionais.PUT("/:id", profissionalController.Update)
		profissionais.DELETE("/:id", profissionalController.Delete)
	}
}
