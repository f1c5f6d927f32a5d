package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	financeirodomain "github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// FinanceiroController gerencia os lançamentos do caixa
type FinanceiroController struct {
	financeiroRepo financeirodomain.Repository
	state          *state.Container
	logger         logger.Logger
}

// NewFinanceiroController cria uma nova instância de FinanceiroController
func NewFinanceiroController(financeiroRepo financeirodomain.Repository, st *state.Container, logger logger.Logger) *FinanceiroController {
	return &FinanceiroController{
		financeiroRepo: financeiroRepo,
		state:          st,
		logger:         logger,
	}
}

// Create cria um novo lançamento
// @Summary Criar lançamento
// @Tags financeiro
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param lancamento body dto.LancamentoRequest true "Dados do lançamento"
// @Success 201 {object} financeiro.Lancamento
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financeiro [post]
func (c *FinanceiroController) Create(ctx *gin.Context) {
	var req dto.LancamentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	l, err := financeirodomain.NewLancamento(req.Data, req.Descricao, financeirodomain.Tipo(req.Tipo), req.Valor, req.FormaPagamento)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar lançamento", err.Error()))
		return
	}
	l.Observacoes = req.Observacoes

	id, err := c.financeiroRepo.Create(ctx.Request.Context(), ctx.GetString("tenant_id"), l)
	if err != nil {
		c.logger.Error("Erro ao criar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar lançamento", err.Error()))
		return
	}
	l.ID = id

	ctx.JSON(http.StatusCreated, l)
}

// List lista os lançamentos; os parâmetros inicio e fim delimitam o
// intervalo de datas, fechado nas duas pontas
// @Summary Listar lançamentos
// @Tags financeiro
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param inicio query string false "Data inicial (yyyy-MM-dd)"
// @Param fim query string false "Data final (yyyy-MM-dd)"
// @Success 200 {array} financeiro.Lancamento
// @Failure 500 {object} dto.ErrorResponse
// @Router /financeiro [get]
func (c *FinanceiroController) List(ctx *gin.Context) {
	lancamentos, err := colecao(ctx, c.state, c.state.Financeiro, c.financeiroRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar lançamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos", err.Error()))
		return
	}

	inicio := ctx.Query("inicio")
	fim := ctx.Query("fim")
	if inicio != "" || fim != "" {
		filtrados := make([]*financeirodomain.Lancamento, 0, len(lancamentos))
		for _, l := range lancamentos {
			if inicio != "" && l.Data < inicio {
				continue
			}
			if fim != "" && l.Data > fim {
				continue
			}
			filtrados = append(filtrados, l)
		}
		lancamentos = filtrados
	}

	ctx.JSON(http.StatusOK, lancamentos)
}

// Get busca um lançamento pelo ID
// @Summary Buscar lançamento
// @Tags financeiro
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Success 200 {object} financeiro.Lancamento
// @Failure 404 {object} dto.ErrorResponse
// @Router /financeiro/{id} [get]
func (c *FinanceiroController) Get(ctx *gin.Context) {
	l, err := c.financeiroRepo.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, financeirodomain.ErrLancamentoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, l)
}

// Update atualiza um lançamento
// @Summary Atualizar lançamento
// @Tags financeiro
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Param lancamento body dto.LancamentoRequest true "Dados do lançamento"
// @Success 200 {object} financeiro.Lancamento
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /financeiro/{id} [put]
func (c *FinanceiroController) Update(ctx *gin.Context) {
	var req dto.LancamentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	l, err := c.financeiroRepo.FindByID(ctx.Request.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, financeirodomain.ErrLancamentoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "lançamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar lançamento", err.Error()))
		return
	}

	l.Data = req.Data
	l.Descricao = req.Descricao
	l.Tipo = financeirodomain.Tipo(req.Tipo)
	l.Valor = req.Valor
	l.FormaPagamento = req.FormaPagamento
	l.Observacoes = req.Observacoes
	if err := l.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}
	l.Normalize()

	if err := c.financeiroRepo.Update(ctx.Request.Context(), tenantID, id, l); err != nil {
		c.logger.Error("Erro ao atualizar lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, l)
}

// Delete remove um lançamento
// @Summary Remover lançamento
// @Tags financeiro
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do lançamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /financeiro/{id} [delete]
func (c *FinanceiroController) Delete(ctx *gin.Context) {
	if err := c.financeiroRepo.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id")); err != nil {
		c.logger.Error("Erro ao remover lançamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover lançamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("lançamento removido", nil))
}
