package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	agendamentodomain "github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	servicodomain "github.com/gfsilva/salao-gestor/internal/domain/servico"
	"github.com/gfsilva/salao-gestor/internal/report"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// AgendamentoController gerencia a agenda do salão
type AgendamentoController struct {
	agendamentoRepo agendamentodomain.Repository
	servicoRepo     servicodomain.Repository
	state           *state.Container
	logger          logger.Logger
}

// NewAgendamentoController cria uma nova instância de AgendamentoController
func NewAgendamentoController(
	agendamentoRepo agendamentodomain.Repository,
	servicoRepo servicodomain.Repository,
	st *state.Container,
	logger logger.Logger,
) *AgendamentoController {
	return &AgendamentoController{
		agendamentoRepo: agendamentoRepo,
		servicoRepo:     servicoRepo,
		state:           st,
		logger:          logger,
	}
}

// resolveValor grava no agendamento o preço atual do serviço no catálogo
// quando o nome casa; sem correspondência vale o valor do formulário
func (c *AgendamentoController) resolveValor(ctx *gin.Context, a *agendamentodomain.Agendamento) error {
	servicos, err := colecao(ctx, c.state, c.state.Servicos, c.servicoRepo.List)
	if err != nil {
		return err
	}
	a.Valor = report.ValorSugerido(a, servicos)
	return nil
}

// draft monta o rascunho de lançamento de um agendamento concluído. O
// valor gravado já reflete o preço de catálogo resolvido na gravação.
func (c *AgendamentoController) draft(a *agendamentodomain.Agendamento) *dto.LancamentoDraft {
	if !a.Concluido() {
		return nil
	}

	return &dto.LancamentoDraft{
		Data:      a.Data,
		Descricao: a.DescricaoFinanceiro(),
		Tipo:      financeiro.TipoEntrada,
		Valor:     a.Valor,
	}
}

// Create cria um novo agendamento. Datas anteriores ao dia atual são
// rejeitadas; agendamentos criados já concluídos devolvem o rascunho de
// lançamento financeiro.
// @Summary Criar agendamento
// @Tags agendamentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param agendamento body dto.AgendamentoRequest true "Dados do agendamento"
// @Success 201 {object} dto.AgendamentoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /agendamentos [post]
func (c *AgendamentoController) Create(ctx *gin.Context) {
	var req dto.AgendamentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	a, err := agendamentodomain.NewAgendamento(req.Data, req.Hora, req.ClienteNome, req.Servico, req.Profissional)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "erro ao criar agendamento", err.Error()))
		return
	}

	if a.NoPassado(time.Now()) {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "data inválida", agendamentodomain.ErrDataPassada.Error()))
		return
	}

	a.ClienteTelefone = req.ClienteTelefone
	a.ProfissionalID = req.ProfissionalID
	a.Valor = req.Valor
	a.Observacoes = req.Observacoes
	if req.Status != "" {
		a.Status = agendamentodomain.Status(req.Status)
		if err := a.Validate(); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
			return
		}
	}

	if err := c.resolveValor(ctx, a); err != nil {
		c.logger.Error("Erro ao consultar serviços", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar serviços", err.Error()))
		return
	}

	id, err := c.agendamentoRepo.Create(ctx.Request.Context(), ctx.GetString("tenant_id"), a)
	if err != nil {
		c.logger.Error("Erro ao criar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao salvar agendamento", err.Error()))
		return
	}
	a.ID = id

	ctx.JSON(http.StatusCreated, dto.AgendamentoResponse{Agendamento: a, Lancamento: c.draft(a)})
}

// List lista os agendamentos do salão; o parâmetro data filtra por um dia
// @Summary Listar agendamentos
// @Tags agendamentos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param data query string false "Dia (yyyy-MM-dd)"
// @Success 200 {array} agendamento.Agendamento
// @Failure 500 {object} dto.ErrorResponse
// @Router /agendamentos [get]
func (c *AgendamentoController) List(ctx *gin.Context) {
	agendamentos, err := colecao(ctx, c.state, c.state.Agendamentos, c.agendamentoRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar agendamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar agendamentos", err.Error()))
		return
	}

	if data := ctx.Query("data"); data != "" {
		filtrados := make([]*agendamentodomain.Agendamento, 0, len(agendamentos))
		for _, a := range agendamentos {
			if a.Data == data {
				filtrados = append(filtrados, a)
			}
		}
		agendamentos = filtrados
	}

	ctx.JSON(http.StatusOK, agendamentos)
}

// Calendario conta os agendamentos não cancelados por dia do mês
// @Summary Agendamentos por dia do mês
// @Tags agendamentos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param mes query string false "Mês (yyyy-MM); padrão é o mês corrente"
// @Success 200 {object} map[int]int
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /agendamentos/calendario [get]
func (c *AgendamentoController) Calendario(ctx *gin.Context) {
	ref := time.Now()
	if mes := ctx.Query("mes"); mes != "" {
		parsed, err := time.Parse("2006-01", mes)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "mês inválido", "use o formato yyyy-MM"))
			return
		}
		ref = parsed
	}

	agendamentos, err := colecao(ctx, c.state, c.state.Agendamentos, c.agendamentoRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar agendamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar agendamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, report.AgendamentosPorDia(agendamentos, ref.Year(), ref.Month()))
}

// Get busca um agendamento pelo ID
// @Summary Buscar agendamento
// @Tags agendamentos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do agendamento"
// @Success 200 {object} agendamento.Agendamento
// @Failure 404 {object} dto.ErrorResponse
// @Router /agendamentos/{id} [get]
func (c *AgendamentoController) Get(ctx *gin.Context) {
	a, err := c.agendamentoRepo.FindByID(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id"))
	if err != nil {
		if errors.Is(err, agendamentodomain.ErrAgendamentoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "agendamento não encontrado", ""))
			return
		}
		c.logger.Error("Erro ao buscar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar agendamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, a)
}

// Update atualiza um agendamento. Transições para Concluido devolvem o
// rascunho de lançamento financeiro pré-preenchido.
// @Summary Atualizar agendamento
// @Tags agendamentos
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do agendamento"
// @Param agendamento body dto.AgendamentoRequest true "Dados do agendamento"
// @Success 200 {object} dto.AgendamentoResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /agendamentos/{id} [put]
func (c *AgendamentoController) Update(ctx *gin.Context) {
	var req dto.AgendamentoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	tenantID := ctx.GetString("tenant_id")
	id := ctx.Param("id")

	a, err := c.agendamentoRepo.FindByID(ctx.Request.Context(), tenantID, id)
	if err != nil {
		if errors.Is(err, agendamentodomain.ErrAgendamentoNotFound) {
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "agendamento não encontrado", ""))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao buscar agendamento", err.Error()))
		return
	}

	a.Data = req.Data
	a.Hora = req.Hora
	a.ClienteNome = req.ClienteNome
	a.ClienteTelefone = req.ClienteTelefone
	a.Servico = req.Servico
	a.Profissional = req.Profissional
	a.ProfissionalID = req.ProfissionalID
	a.Valor = req.Valor
	a.Observacoes = req.Observacoes
	if req.Status != "" {
		a.Status = agendamentodomain.Status(req.Status)
	}
	a.Normalize()
	if err := a.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "dados inválidos", err.Error()))
		return
	}

	if err := c.resolveValor(ctx, a); err != nil {
		c.logger.Error("Erro ao consultar serviços", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao consultar serviços", err.Error()))
		return
	}

	if err := c.agendamentoRepo.Update(ctx.Request.Context(), tenantID, id, a); err != nil {
		c.logger.Error("Erro ao atualizar agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao atualizar agendamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.AgendamentoResponse{Agendamento: a, Lancamento: c.draft(a)})
}

// Delete remove um agendamento
// @Summary Remover agendamento
// @Tags agendamentos
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param id path string true "ID do agendamento"
// @Success 200 {object} dto.SuccessResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /agendamentos/{id} [delete]
func (c *AgendamentoController) Delete(ctx *gin.Context) {
	if err := c.agendamentoRepo.Delete(ctx.Request.Context(), ctx.GetString("tenant_id"), ctx.Param("id")); err != nil {
		c.logger.Error("Erro ao remover agendamento", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao remover agendamento", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("agendamento removido", nil))
}
