package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	produtodomain "github.com/gfsilva/salao-gestor/internal/domain/produto"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// ProdutoController gerencia o estoque de produtos
type ProdutoController struct {
	produtoRepo produtodomain.Repository
	state       *state.Container
	logger      logger.Logger
}

// NewProdutoController cria uma nova instância de ProdutoController
func NewProdutoController(produtoRepo produtodomain.Repository, st *state.Container, logger logger.Logger) *ProdutoController {
	return &ProdutoController{
		produtoRepo: produtoRepo,
		state:       st,
		logger:      logger,
	}
}

// Create cria um novo produto
// @Summary Criar produto
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param produto body dto.ProdutoRequest true "Dados do produto"
// @Success 201 {object} dto.ProdutoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos [post]
func (c *ProdutoController) Create(ctx *gin.Context) {
	var req dto.ProdutoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := produtodomain.NewProduto(req.Nome, req.PrecoVenda, req.PrecoCusto, req.QuantidadeEstoque, req.EstoqueMinimo)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar produto", err.Error()))
		return
	}
	p.Descricao = req.Descricao

	id, err := c.produtoRepo.Create(ctx.Request.Context(), ctx.GetString("tenant_id"), p)
	if err != nil {
		c.logger.Error("Erro ao criar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar produto", err.Error()))
		return
	}
	p.ID = id

	ctx.JSON(http.StatusCreated, dto.ToProdutoResponse(p))
}

// List lista os produtos do salão
// @Summary Listar produtos
// @Tags produtos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} dto.ProdutoResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos [get]
func (c *ProdutoController) List(ctx *gin.Context) {
	produtos, err := colecao(ctx, c.state, c.state.Produtos, c.produtoRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar produtos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar produtos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoResponseList(produtos))
}

// Get busca um produto pelo ID
// @Summary Buscar produto
// @Tags produtos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.ProdutoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /produtos/{id} [get]
func (c *ProdutoController) Get(ctx *gin.Context) {
	p, err := c.produtoRepo.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, produtodomain.ErrProdutoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoResponse(p))
}

// Update atualiza um produto
// @Summary Atualizar produto
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param produto body dto.ProdutoRequest true "Dados do produto"
// @Success 200 {object} dto.ProdutoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /produtos/{id} [put]
func (c *ProdutoController) Update(ctx *gin.Context) {
	var req dto.ProdutoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	p, err := c.produtoRepo.FindByID(ctx.Request.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, produtodomain.ErrProdutoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "produto não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar produto", err.Error()))
		return
	}

	p.Nome = req.Nome
	p.Descricao = req.Descricao
	p.PrecoVenda = req.PrecoVenda
	p.PrecoCusto = req.PrecoCusto
	p.QuantidadeEstoque = req.QuantidadeEstoque
	p.EstoqueMinimo = req.EstoqueMinimo
	if err := p.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.produtoRepo.Update(ctx.Request.Context(), tenantID, id, p); err != nil {
		c.logger.Error("Erro ao atualizar produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProdutoResponse(p))
}

// UpdateEstoque ajusta apenas a quantidade em estoque
// @Summary Ajustar estoque
// @Tags produtos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Param estoque body object true "Quantidade"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /produtos/{id}/estoque [patch]
func (c *ProdutoController) UpdateEstoque(ctx *gin.Context) {
	var req struct {
		Quantidade int `json:"quantidade" binding:"gte=0"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.produtoRepo.UpdateEstoque(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"), req.Quantidade); err != nil {
		c.logger.Error("Erro ao ajustar estoque", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao ajustar estoque", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("estoque ajustado", nil))
}

// Delete remove um produto
// @Summary Remover produto
// @Tags produtos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do produto"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /produtos/{id} [delete]
func (c *ProdutoController) Delete(ctx *gin.Context) {
	if err := c.produtoRepo.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id")); err != nil {
		c.logger.Error("Erro ao remover produto", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover produto", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("produto removido", nil))
}
