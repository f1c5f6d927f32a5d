package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	"github.com/gfsilva/salao-gestor/internal/auth"
	pkgauth "github.com/gfsilva/salao-gestor/pkg/auth"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// AuthController gerencia as requisições de autenticação e sessão
type AuthController struct {
	authService *auth.Service
	jwtService  *pkgauth.JWTService
	logger      logger.Logger
}

// NewAuthController cria uma nova instância de AuthController
func NewAuthController(authService *auth.Service, jwtService *pkgauth.JWTService, logger logger.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login autentica um salão ou o administrador master
// @Summary Login
// @Description Autentica pelo usuário ou e-mail e retorna o token da sessão
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	result, err := c.authService.Login(ctx.Request.Context(), req.Identidade, req.Senha)
	if err != nil {
		if errors.Is(err, auth.ErrCredenciaisInvalidas) || errors.Is(err, auth.ErrSalaoInativo) {
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "falha na autenticação", err.Error()))
			return
		}
		c.logger.Error("Erro ao autenticar", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao autenticar", err.Error()))
		return
	}

	tenantID := ""
	if result.Tenant != nil {
		tenantID = result.Tenant.ID
	}

	token, err := c.jwtService.GenerateToken(result.User, tenantID, result.Expirado)
	if err != nil {
		c.logger.Error("Erro ao gerar token", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar token", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		User:     result.User,
		Tenant:   dto.ToSalaoResponse(result.Tenant),
		IsMaster: result.IsMaster,
		Expirado: result.Expirado,
	})
}

// Logout encerra a sessão atual
// @Summary Logout
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	c.authService.Logout()
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("sessão encerrada", nil))
}

// Refresh renova o token da sessão
// @Summary Renovar token
// @Tags auth
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.SuccessResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/refresh [post]
func (c *AuthController) Refresh(ctx *gin.Context) {
	authHeader := ctx.GetHeader("Authorization")
	if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token não informado", ""))
		return
	}

	token, err := c.jwtService.RefreshToken(authHeader[7:])
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "token inválido", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("token renovado", gin.H{"token": token}))
}

// TrocarSenha troca a senha da sessão autenticada
// @Summary Trocar senha
// @Tags auth
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param senha body dto.TrocarSenhaRequest true "Senhas"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/senha [put]
func (c *AuthController) TrocarSenha(ctx *gin.Context) {
	var req dto.TrocarSenhaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	err := c.authService.TrocarSenha(ctx.Request.Context(), req.SenhaAtual, req.NovaSenha)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrSenhaAtualIncorreta):
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "senha atual incorreta", err.Error()))
		case errors.Is(err, auth.ErrSemSessao):
			ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(http.StatusUnauthorized, "sessão inválida", err.Error()))
		default:
			c.logger.Error("Erro ao trocar senha", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao trocar senha", err.Error()))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("senha alterada", nil))
}
