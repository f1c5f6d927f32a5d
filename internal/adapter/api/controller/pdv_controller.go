package controller

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	produtodomain "github.com/gfsilva/salao-gestor/internal/domain/produto"
	servicodomain "github.com/gfsilva/salao-gestor/internal/domain/servico"
	"github.com/gfsilva/salao-gestor/internal/pdv"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// PDVController gerencia o ponto de venda. Cada sessão autenticada tem o
// seu carrinho, mantido em memória até a finalização da venda.
type PDVController struct {
	finalizador *pdv.Finalizador
	servicoRepo servicodomain.Repository
	produtoRepo produtodomain.Repository
	state       *state.Container
	logger      logger.Logger

	mu        sync.Mutex
	carrinhos map[string]*pdv.Carrinho
}

// NewPDVController cria uma nova instância de PDVController
func NewPDVController(
	finalizador *pdv.Finalizador,
	servicoRepo servicodomain.Repository,
	produtoRepo produtodomain.Repository,
	st *state.Container,
	logger logger.Logger,
) *PDVController {
	return &PDVController{
		finalizador: finalizador,
		servicoRepo: servicoRepo,
		produtoRepo: produtoRepo,
		state:       st,
		logger:      logger,
		carrinhos:   make(map[string]*pdv.Carrinho),
	}
}

// carrinho devolve o carrinho da sessão, criando-o se necessário
func (c *PDVController) carrinho(ctx *gin.Context) *pdv.Carrinho {
	userID := ctx.GetString("user_id")

	c.mu.Lock()
	defer c.mu.Unlock()
	cart, ok := c.carrinhos[userID]
	if !ok {
		cart = &pdv.Carrinho{}
		c.carrinhos[userID] = cart
	}
	return cart
}

// resolve congela nome e preço do item a partir do catálogo. O cache
// responde primeiro quando pertence ao tenant da requisição; ausência no
// cache cai no banco.
func (c *PDVController) resolve(ctx *gin.Context, req dto.ItemCarrinhoRequest) (pdv.Item, error) {
	item := pdv.Item{
		Tipo:       pdv.TipoItem(req.Tipo),
		RefID:      req.RefID,
		Quantidade: req.Quantidade,
	}

	switch item.Tipo {
	case pdv.ItemServico:
		if cacheDoTenant(c.state, ctx) {
			for _, s := range c.state.Servicos() {
				if s.ID == req.RefID {
					item.Nome = s.Nome
					item.PrecoUnitario = s.Preco
					return item, nil
				}
			}
		}
		s, err := c.servicoRepo.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), req.RefID)
		if err != nil {
			return item, err
		}
		item.Nome = s.Nome
		item.PrecoUnitario = s.Preco
		return item, nil

	case pdv.ItemProduto:
		if cacheDoTenant(c.state, ctx) {
			for _, p := range c.state.Produtos() {
				if p.ID == req.RefID {
					item.Nome = p.Nome
					item.PrecoUnitario = p.PrecoVenda
					return item, nil
				}
			}
		}
		p, err := c.produtoRepo.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), req.RefID)
		if err != nil {
			return item, err
		}
		item.Nome = p.Nome
		item.PrecoUnitario = p.PrecoVenda
		return item, nil
	}

	return item, pdv.ErrTipoItemInvalido
}

// Carrinho devolve o carrinho atual da sessão
// @Summary Ver carrinho
// @Tags pdv
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} dto.CarrinhoResponse
// @Router /pdv/carrinho [get]
func (c *PDVController) Carrinho(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCarrinhoResponse(c.carrinho(ctx)))
}

// AdicionarItem inclui um serviço ou produto no carrinho
// @Summary Adicionar item ao carrinho
// @Tags pdv
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param item body dto.ItemCarrinhoRequest true "Item"
// @Success 200 {object} dto.CarrinhoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pdv/carrinho/itens [post]
func (c *PDVController) AdicionarItem(ctx *gin.Context) {
	var req dto.ItemCarrinhoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	item, err := c.resolve(ctx, req)
	if err != nil {
		if errors.Is(err, servicodomain.ErrServicoNotFound) || errors.Is(err, produtodomain.ErrProdutoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não encontrado no catálogo", err.Error()))
			return
		}
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao resolver item", err.Error()))
		return
	}

	cart := c.carrinho(ctx)
	if err := cart.Adicionar(item); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao adicionar item", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCarrinhoResponse(cart))
}

// RemoverItem retira um item do carrinho
// @Summary Remover item do carrinho
// @Tags pdv
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param tipo path string true "Tipo do item (servico ou produto)"
// @Param refId path string true "ID do registro no catálogo"
// @Success 200 {object} dto.CarrinhoResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /pdv/carrinho/itens/{tipo}/{refId} [delete]
func (c *PDVController) RemoverItem(ctx *gin.Context) {
	cart := c.carrinho(ctx)
	if err := cart.Remover(pdv.TipoItem(ctx.Param("tipo")), ctx.Param("refId")); err != nil {
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "item não encontrado", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCarrinhoResponse(cart))
}

// SelecionarCliente define o cliente da venda em andamento
// @Summary Selecionar cliente da venda
// @Tags pdv
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cliente body dto.SelecionarClienteRequest true "Cliente"
// @Success 200 {object} dto.CarrinhoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /pdv/carrinho/cliente [put]
func (c *PDVController) SelecionarCliente(ctx *gin.Context) {
	var req dto.SelecionarClienteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cart := c.carrinho(ctx)
	cart.ClienteNome = req.ClienteNome

	ctx.JSON(http.StatusOK, dto.ToCarrinhoResponse(cart))
}

// Finalizar fecha a venda do carrinho atual
// @Summary Finalizar venda
// @Tags pdv
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param venda body dto.FinalizarVendaRequest true "Forma de pagamento"
// @Success 200 {object} dto.VendaResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /pdv/finalizar [post]
func (c *PDVController) Finalizar(ctx *gin.Context) {
	var req dto.FinalizarVendaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cart := c.carrinho(ctx)
	lanc, err := c.finalizador.Finalizar(ctx.Request.Context(), ctx.GetString("tenant_id"), cart, req.FormaPagamento, time.Now())
	if err != nil {
		if errors.Is(err, pdv.ErrCarrinhoVazio) {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "carrinho vazio", err.Error()))
			return
		}
		// O carrinho permanece para nova tentativa; baixas de estoque já
		// aplicadas não são desfeitas
		c.logger.Error("Erro ao finalizar venda", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao finalizar venda", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.VendaResponse{Lancamento: lanc})
}
