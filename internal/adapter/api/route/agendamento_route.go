package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterAgendamentoRoutes registra as rotas da agenda
func RegisterAgendamentoRoutes(tenant *gin.RouterGroup, agendamentoController *controller.AgendamentoController) {
	agendamentos := tenant.Group("/agendamentos")
	{
		agendamentos.POST("", agendamentoController.Create)
		agendamentos.GET("", agendamentoController.List)
		agendamentos.GET("/calendario", agendamentoController.Calendario)
		agendamentos.GET("/:id", agendamentoController.Get)
		agendamentos.PUT("/:id", agendamentoController.Update)
		agendamentos.DELETE("/:id", agendamentoController.Delete)
	}
}
