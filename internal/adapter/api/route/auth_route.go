package route

import (
	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
)

// RegisterAuthRoutes registra as rotas de autenticação. Login é público;
// as demais exigem sessão.
func RegisterAuthRoutes(public, authenticated *gin.RouterGroup, authController *controller.AuthController) {
	public.POST("/auth/login", authController.Login)

	auth := authenticated.Group("/auth")
	{
		auth.POST("/logout", authController.Logout)
		auth.POST("/refresh", authController.Refresh)
		auth.PUT("/senha", authController.TrocarSenha)
	}
}
