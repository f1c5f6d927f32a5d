package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	profissionaldomain "github.com/gfsilva/salao-gestor/internal/domain/profissional"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// ProfissionalController gerencia as requisições relacionadas a
// profissionais
type ProfissionalController struct {
	profissionalRepo profissionaldomain.Repository
	state            *state.Container
	logger           logger.Logger
}

// NewProfissionalController cria uma nova instância de ProfissionalController
func NewProfissionalController(profissionalRepo profissionaldomain.Repository, st *state.Container, logger logger.Logger) *ProfissionalController {
	return &ProfissionalController{
		profissionalRepo: profissionalRepo,
		state:            st,
		logger:           logger,
	}
}

func (c *ProfissionalController) fill(p *profissionaldomain.Profissional, req dto.ProfissionalRequest) {
	p.Nome = req.Nome
	p.Celular = req.Celular
	p.Fixo = req.Fixo
	p.Email = req.Email
	p.Endereco = req.Endereco
	p.Numero = req.Numero
	p.Bairro = req.Bairro
	p.Cidade = req.Cidade
	p.Estado = req.Estado
	p.CEP = req.CEP
	if req.Status != "" {
		p.Status = req.Status
	}
	p.TipoComissao = profissionaldomain.TipoComissao(req.TipoComissao)
	p.PercentualComissao = req.PercentualComissao
}

// Create cria um novo profissional
// @Summary Criar profissional
// @Tags profissionais
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param profissional body dto.ProfissionalRequest true "Dados do profissional"
// @Success 201 {object} profissional.Profissional
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /profissionais [post]
func (c *ProfissionalController) Create(ctx *gin.Context) {
	var req dto.ProfissionalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	p, err := profissionaldomain.NewProfissional(req.Nome)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar profissional", err.Error()))
		return
	}
	c.fill(p, req)

	if err := p.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	id, err := c.profissionalRepo.Create(ctx.Request.Context(), ctx.GetString("tenant_id"), p)
	if err != nil {
		c.logger.Error("Erro ao criar profissional", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar profissional", err.Error()))
		return
	}
	p.ID = id

	ctx.JSON(http.StatusCreated, p)
}

// List lista os profissionais do salão
// @Summary Listar profissionais
// @Tags profissionais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} profissional.Profissional
// @Failure 500 {object} dto.ErrorResponse
// @Router /profissionais [get]
func (c *ProfissionalController) List(ctx *gin.Context) {
	profissionais, err := colecao(ctx, c.state, c.state.Profissionais, c.profissionalRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar profissionais", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar profissionais", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, profissionais)
}

// Get busca um profissional pelo ID
// @Summary Buscar profissional
// @Tags profissionais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do profissional"
// @Success 200 {object} profissional.Profissional
// @Failure 404 {object} dto.ErrorResponse
// @Router /profissionais/{id} [get]
func (c *ProfissionalController) Get(ctx *gin.Context) {
	p, err := c.profissionalRepo.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, profissionaldomain.ErrProfissionalNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "profissional não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar profissional", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar profissional", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// Update atualiza um profissional
// @Summary Atualizar profissional
// @Tags profissionais
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do profissional"
// @Param profissional body dto.ProfissionalRequest true "Dados do profissional"
// @Success 200 {object} profissional.Profissional
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /profissionais/{id} [put]
func (c *ProfissionalController) Update(ctx *gin.Context) {
	var req dto.ProfissionalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	p, err := c.profissionalRepo.FindByID(ctx.Request.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, profissionaldomain.ErrProfissionalNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "profissional não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar profissional", err.Error()))
		return
	}

	c.fill(p, req)
	if err := p.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.profissionalRepo.Update(ctx.Request.Context(), tenantID, id, p); err != nil {
		c.logger.Error("Erro ao atualizar profissional", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar profissional", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, p)
}

// Delete remove um profissional
// @Summary Remover profissional
// @Tags profissionais
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do profissional"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /profissionais/{id} [delete]
func (c *ProfissionalController) Delete(ctx *gin.Context) {
	if err := c.profissionalRepo.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id")); err != nil {
		c.logger.Error("Erro ao remover profissional", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover profissional", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("profissional removido", nil))
}
