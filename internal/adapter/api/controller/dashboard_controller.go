package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	agendamentodomain "github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	clientedomain "github.com/gfsilva/salao-gestor/internal/domain/cliente"
	financeirodomain "github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	produtodomain "github.com/gfsilva/salao-gestor/internal/domain/produto"
	profissionaldomain "github.com/gfsilva/salao-gestor/internal/domain/profissional"
	"github.com/gfsilva/salao-gestor/internal/report"
	"github.com/gfsilva/salao-gestor/internal/state"
	syncengine "github.com/gfsilva/salao-gestor/internal/sync"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// DashboardController serve os indicadores do painel do salão. O cache do
// container responde quando pertence ao tenant da requisição; caso
// contrário as coleções vêm do banco.
type DashboardController struct {
	agendamentoRepo  agendamentodomain.Repository
	financeiroRepo   financeirodomain.Repository
	clienteRepo      clientedomain.Repository
	profissionalRepo profissionaldomain.Repository
	produtoRepo      produtodomain.Repository
	state            *state.Container
	engine           *syncengine.Engine
	logger           logger.Logger
}

// NewDashboardController cria uma nova instância de DashboardController
func NewDashboardController(
	agendamentoRepo agendamentodomain.Repository,
	financeiroRepo financeirodomain.Repository,
	clienteRepo clientedomain.Repository,
	profissionalRepo profissionaldomain.Repository,
	produtoRepo produtodomain.Repository,
	st *state.Container,
	engine *syncengine.Engine,
	logger logger.Logger,
) *DashboardController {
	return &DashboardController{
		agendamentoRepo:  agendamentoRepo,
		financeiroRepo:   financeiroRepo,
		clienteRepo:      clienteRepo,
		profissionalRepo: profissionalRepo,
		produtoRepo:      produtoRepo,
		state:            st,
		engine:           engine,
		logger:           logger,
	}
}

func (c *DashboardController) falha(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg, "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, msg, err.Error()))
}

// Stats devolve os indicadores do dia e do mês
// @Summary Indicadores do painel
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} report.SalaoStats
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/stats [get]
func (c *DashboardController) Stats(ctx *gin.Context) {
	agendamentos, err := colecao(ctx, c.state, c.state.Agendamentos, c.agendamentoRepo.List)
	if err != nil {
		c.falha(ctx, "erro ao listar agendamentos", err)
		return
	}
	lancamentos, err := colecao(ctx, c.state, c.state.Financeiro, c.financeiroRepo.List)
	if err != nil {
		c.falha(ctx, "erro ao listar lançamentos", err)
		return
	}
	clientes, err := colecao(ctx, c.state, c.state.Clientes, c.clienteRepo.List)
	if err != nil {
		c.falha(ctx, "erro ao listar clientes", err)
		return
	}
	profissionais, err := colecao(ctx, c.state, c.state.Profissionais, c.profissionalRepo.List)
	if err != nil {
		c.falha(ctx, "erro ao listar profissionais", err)
		return
	}

	ctx.JSON(http.StatusOK, report.ComputeSalaoStats(
		agendamentos,
		lancamentos,
		clientes,
		profissionais,
		time.Now(),
	))
}

// Grafico devolve a série dos últimos sete dias
// @Summary Gráfico semanal de movimentação
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} report.PontoGrafico
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/grafico [get]
func (c *DashboardController) Grafico(ctx *gin.Context) {
	lancamentos, err := colecao(ctx, c.state, c.state.Financeiro, c.financeiroRepo.List)
	if err != nil {
		c.falha(ctx, "erro ao listar lançamentos", err)
		return
	}

	ctx.JSON(http.StatusOK, report.GraficoSemanal(lancamentos, time.Now()))
}

// Estoque devolve a valorização do estoque e os produtos abaixo do mínimo
// @Summary Situação do estoque
// @Tags dashboard
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {object} report.ProdutoStats
// @Failure 500 {object} dto.ErrorResponse
// @Router /dashboard/estoque [get]
func (c *DashboardController) Estoque(ctx *gin.Context) {
	produtos, err := colecao(ctx, c.state, c.state.Produtos, c.produtoRepo.List)
	if err != nil {
		c.falha(ctx, "erro ao listar produtos", err)
		return
	}

	ctx.JSON(http.StatusOK, report.ComputeProdutoStats(produtos))
}

// Status devolve o estado de conectividade com o banco
// @Summary Conectividade
// @Tags dashboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /dashboard/status [get]
func (c *DashboardController) Status(ctx *gin.Context) {
	online := c.engine.Online()
	status := "offline"
	if online {
		status = "online"
	}

	ctx.JSON(http.StatusOK, gin.H{
		"online": online,
		"status": status,
	})
}
