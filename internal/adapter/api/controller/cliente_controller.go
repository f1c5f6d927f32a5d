package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	clientedomain "github.com/gfsilva/salao-gestor/internal/domain/cliente"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// ClienteController gerencia as requisições relacionadas a clientes
type ClienteController struct {
	clienteRepo clientedomain.Repository
	state       *state.Container
	logger      logger.Logger
}

// NewClienteController cria uma nova instância de ClienteController
func NewClienteController(clienteRepo clientedomain.Repository, st *state.Container, logger logger.Logger) *ClienteController {
	return &ClienteController{
		clienteRepo: clienteRepo,
		state:       st,
		logger:      logger,
	}
}

func (c *ClienteController) fill(cli *clientedomain.Cliente, req dto.ClienteRequest) {
	cli.Nome = req.Nome
	cli.Telefone = req.Telefone
	cli.Email = req.Email
	cli.Endereco = req.Endereco
	cli.Numero = req.Numero
	cli.Bairro = req.Bairro
	cli.Cidade = req.Cidade
	cli.Estado = req.Estado
	cli.CEP = req.CEP
	cli.Observacoes = req.Observacoes
	cli.PontosFidelidade = req.PontosFidelidade
}

// Create cria um novo cliente
// @Summary Criar cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param cliente body dto.ClienteRequest true "Dados do cliente"
// @Success 201 {object} cliente.Cliente
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [post]
func (c *ClienteController) Create(ctx *gin.Context) {
	var req dto.ClienteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	cli, err := clientedomain.NewCliente(req.Nome)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar cliente", err.Error()))
		return
	}
	c.fill(cli, req)

	tenantID := ctx.GetString("tenant_id")
	id, err := c.clienteRepo.Create(ctx.Request.Context(), tenantID, cli)
	if err != nil {
		c.logger.Error("Erro ao criar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar cliente", err.Error()))
		return
	}
	cli.ID = id

	ctx.JSON(http.StatusCreated, cli)
}

// List lista os clientes do salão; o parâmetro q filtra por nome,
// telefone ou e-mail
// @Summary Listar clientes
// @Tags clientes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param q query string false "Termo de busca"
// @Success 200 {array} cliente.Cliente
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes [get]
func (c *ClienteController) List(ctx *gin.Context) {
	clientes, err := colecao(ctx, c.state, c.state.Clientes, c.clienteRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar clientes", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar clientes", err.Error()))
		return
	}

	if termo := ctx.Query("q"); termo != "" {
		filtrados := make([]*clientedomain.Cliente, 0, len(clientes))
		for _, cli := range clientes {
			if cli.Matches(termo) {
				filtrados = append(filtrados, cli)
			}
		}
		clientes = filtrados
	}

	ctx.JSON(http.StatusOK, clientes)
}

// Get busca um cliente pelo ID
// @Summary Buscar cliente
// @Tags clientes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} cliente.Cliente
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id} [get]
func (c *ClienteController) Get(ctx *gin.Context) {
	cli, err := c.clienteRepo.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, clientedomain.ErrClienteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, cli)
}

// Update atualiza um cliente
// @Summary Atualizar cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Param cliente body dto.ClienteRequest true "Dados do cliente"
// @Success 200 {object} cliente.Cliente
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /clientes/{id} [put]
func (c *ClienteController) Update(ctx *gin.Context) {
	var req dto.ClienteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	cli, err := c.clienteRepo.FindByID(ctx.Request.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, clientedomain.ErrClienteNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "cliente não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar cliente", err.Error()))
		return
	}

	c.fill(cli, req)

	if err := c.clienteRepo.Update(ctx.Request.Context(), tenantID, id, cli); err != nil {
		c.logger.Error("Erro ao atualizar cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, cli)
}

// Delete remove um cliente
// @Summary Remover cliente
// @Tags clientes
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do cliente"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /clientes/{id} [delete]
func (c *ClienteController) Delete(ctx *gin.Context) {
	if err := c.clienteRepo.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id")); err != nil {
		c.logger.Error("Erro ao remover cliente", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover cliente", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("cliente removido", nil))
}
