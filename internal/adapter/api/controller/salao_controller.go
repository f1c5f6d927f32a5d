package controller

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	salaodomain "github.com/gfsilva/salao-gestor/internal/domain/salao"
	"github.com/gfsilva/salao-gestor/internal/report"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// SalaoController gerencia o cadastro de salões do painel master
type SalaoController struct {
	salaoRepo salaodomain.Repository
	state     *state.Container
	logger    logger.Logger
}

// NewSalaoController cria uma nova instância de SalaoController
func NewSalaoController(salaoRepo salaodomain.Repository, st *state.Container, logger logger.Logger) *SalaoController {
	return &SalaoController{
		salaoRepo: salaoRepo,
		state:     st,
		logger:    logger,
	}
}

// Create cria um novo salão
// @Summary Criar salão
// @Tags saloes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param salao body dto.SalaoRequest true "Dados do salão"
// @Success 201 {object} dto.SalaoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /saloes [post]
func (c *SalaoController) Create(ctx *gin.Context) {
	var req dto.SalaoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := salaodomain.NewSalao(req.Nome, req.Usuario, req.Senha, salaodomain.Plano(req.Plano), req.DataExpiracao)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar salão", err.Error()))
		return
	}

	s.Email = strings.ToLower(strings.TrimSpace(req.Email))
	s.Telefone = req.Telefone
	s.Responsavel = req.Responsavel
	s.LogoURL = req.LogoURL
	if req.Ativo != nil {
		s.Ativo = *req.Ativo
	}

	id, err := c.salaoRepo.Create(ctx.Request.Context(), s)
	if err != nil {
		c.logger.Error("Erro ao criar salão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar salão", err.Error()))
		return
	}
	s.ID = id

	ctx.JSON(http.StatusCreated, dto.ToSalaoResponse(s))
}

// List lista os salões cadastrados
// @Summary Listar salões
// @Tags saloes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.SalaoResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /saloes [get]
func (c *SalaoController) List(ctx *gin.Context) {
	// O cache espelha a coleção via assinatura master; cai no banco quando
	// a sessão corrente do container não é master ou o cache está vazio
	var saloes []*salaodomain.Salao
	if _, _, _, _, isMaster := c.state.Session(); isMaster {
		saloes = c.state.Saloes()
	}
	if len(saloes) == 0 {
		var err error
		saloes, err = c.salaoRepo.List(ctx.Request.Context())
		if err != nil {
			c.logger.Error("Erro ao listar salões", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar salões", err.Error()))
			return
		}
	}

	ctx.JSON(http.StatusOK, dto.ToSalaoResponseList(saloes))
}

// Get busca um salão pelo ID
// @Summary Buscar salão
// @Tags saloes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do salão"
// @Success 200 {object} dto.SalaoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /saloes/{id} [get]
func (c *SalaoController) Get(ctx *gin.Context) {
	s, err := c.salaoRepo.FindByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, salaodomain.ErrSalaoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "salão não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar salão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar salão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalaoResponse(s))
}

// Update atualiza um salão
// @Summary Atualizar salão
// @Tags saloes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do salão"
// @Param salao body dto.SalaoRequest true "Dados do salão"
// @Success 200 {object} dto.SalaoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /saloes/{id} [put]
func (c *SalaoController) Update(ctx *gin.Context) {
	var req dto.SalaoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	id := ctx.Param("id")
	s, err := c.salaoRepo.FindByID(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, salaodomain.ErrSalaoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "salão não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar salão", err.Error()))
		return
	}

	s.Nome = strings.ToUpper(strings.TrimSpace(req.Nome))
	s.Usuario = strings.TrimSpace(req.Usuario)
	s.Email = strings.ToLower(strings.TrimSpace(req.Email))
	s.Telefone = req.Telefone
	s.Responsavel = req.Responsavel
	s.Plano = salaodomain.Plano(req.Plano)
	s.DataExpiracao = req.DataExpiracao
	s.LogoURL = req.LogoURL
	if req.Senha != "" {
		s.Senha = req.Senha
	}
	if req.Ativo != nil {
		s.Ativo = *req.Ativo
	}

	if err := c.salaoRepo.Update(ctx.Request.Context(), id, s); err != nil {
		c.logger.Error("Erro ao atualizar salão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar salão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalaoResponse(s))
}

// Delete remove um salão
// @Summary Remover salão
// @Tags saloes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do salão"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /saloes/{id} [delete]
func (c *SalaoController) Delete(ctx *gin.Context) {
	if err := c.salaoRepo.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		c.logger.Error("Erro ao remover salão", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover salão", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("salão removido", nil))
}

// Stats devolve os indicadores do painel master
// @Summary Indicadores do painel master
// @Tags saloes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} report.MasterStats
// @Failure 500 {object} dto.ErrorResponse
// @Router /saloes/stats [get]
func (c *SalaoController) Stats(ctx *gin.Context) {
	var saloes []*salaodomain.Salao
	if _, _, _, _, isMaster := c.state.Session(); isMaster {
		saloes = c.state.Saloes()
	}
	if len(saloes) == 0 {
		var err error
		saloes, err = c.salaoRepo.List(ctx.Request.Context())
		if err != nil {
			c.logger.Error("Erro ao listar salões", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar salões", err.Error()))
			return
		}
	}

	ctx.JSON(http.StatusOK, report.ComputeMasterStats(saloes, time.Now()))
}
