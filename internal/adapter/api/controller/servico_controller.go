package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	servicodomain "github.com/gfsilva/salao-gestor/internal/domain/servico"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// ServicoController gerencia o catálogo de serviços
type ServicoController struct {
	servicoRepo servicodomain.Repository
	state       *state.Container
	logger      logger.Logger
}

// NewServicoController cria uma nova instância de ServicoController
func NewServicoController(servicoRepo servicodomain.Repository, st *state.Container, logger logger.Logger) *ServicoController {
	return &ServicoController{
		servicoRepo: servicoRepo,
		state:       st,
		logger:      logger,
	}
}

// Create cria um novo serviço
// @Summary Criar serviço
// @Tags servicos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param servico body dto.ServicoRequest true "Dados do serviço"
// @Success 201 {object} servico.Servico
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /servicos [post]
func (c *ServicoController) Create(ctx *gin.Context) {
	var req dto.ServicoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	s, err := servicodomain.NewServico(req.Nome, req.Preco, req.Duracao)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar serviço", err.Error()))
		return
	}

	id, err := c.servicoRepo.Create(ctx.Request.Context(), ctx.GetString("tenant_id"), s)
	if err != nil {
		c.logger.Error("Erro ao criar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar serviço", err.Error()))
		return
	}
	s.ID = id

	ctx.JSON(http.StatusCreated, s)
}

// List lista os serviços do salão
// @Summary Listar serviços
// @Tags servicos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} servico.Servico
// @Failure 500 {object} dto.ErrorResponse
// @Router /servicos [get]
func (c *ServicoController) List(ctx *gin.Context) {
	servicos, err := colecao(ctx, c.state, c.state.Servicos, c.servicoRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar serviços", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar serviços", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, servicos)
}

// Get busca um serviço pelo ID
// @Summary Buscar serviço
// @Tags servicos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Success 200 {object} servico.Servico
// @Failure 404 {object} dto.ErrorResponse
// @Router /servicos/{id} [get]
func (c *ServicoController) Get(ctx *gin.Context) {
	s, err := c.servicoRepo.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, servicodomain.ErrServicoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "serviço não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// Update atualiza um serviço
// @Summary Atualizar serviço
// @Tags servicos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Param servico body dto.ServicoRequest true "Dados do serviço"
// @Success 200 {object} servico.Servico
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /servicos/{id} [put]
func (c *ServicoController) Update(ctx *gin.Context) {
	var req dto.ServicoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	s, err := c.servicoRepo.FindByID(ctx.Request.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, servicodomain.ErrServicoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "serviço não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar serviço", err.Error()))
		return
	}

	s.Nome = req.Nome
	s.Preco = req.Preco
	s.Duracao = req.Duracao
	if err := s.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.servicoRepo.Update(ctx.Request.Context(), tenantID, id, s); err != nil {
		c.logger.Error("Erro ao atualizar serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, s)
}

// Delete remove um serviço
// @Summary Remover serviço
// @Tags servicos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do serviço"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /servicos/{id} [delete]
func (c *ServicoController) Delete(ctx *gin.Context) {
	if err := c.servicoRepo.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id")); err != nil {
		c.logger.Error("Erro ao remover serviço", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover serviço", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("serviço removido", nil))
}
