package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/dto"
	agendamentodomain "github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	financeirodomain "github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	profissionaldomain "github.com/gfsilva/salao-gestor/internal/domain/profissional"
	"github.com/gfsilva/salao-gestor/internal/report"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

// RelatorioController serve os relatórios derivados e suas exportações.
// O cache do container responde quando pertence ao tenant da requisição;
// caso contrário as coleções vêm do banco.
type RelatorioController struct {
	financeiroRepo   financeirodomain.Repository
	profissionalRepo profissionaldomain.Repository
	agendamentoRepo  agendamentodomain.Repository
	state            *state.Container
	logger           logger.Logger
}

// NewRelatorioController cria uma nova instância de RelatorioController
func NewRelatorioController(
	financeiroRepo financeirodomain.Repository,
	profissionalRepo profissionaldomain.Repository,
	agendamentoRepo agendamentodomain.Repository,
	st *state.Container,
	logger logger.Logger,
) *RelatorioController {
	return &RelatorioController{
		financeiroRepo:   financeiroRepo,
		profissionalRepo: profissionalRepo,
		agendamentoRepo:  agendamentoRepo,
		state:            st,
		logger:           logger,
	}
}

func (c *RelatorioController) filtro(ctx *gin.Context) report.FiltroReceita {
	return report.FiltroReceita{
		Inicio:       ctx.Query("inicio"),
		Fim:          ctx.Query("fim"),
		Profissional: ctx.Query("profissional"),
	}
}

// lancamentos resolve a coleção do financeiro para a requisição
func (c *RelatorioController) lancamentos(ctx *gin.Context) ([]*financeirodomain.Lancamento, bool) {
	lancamentos, err := colecao(ctx, c.state, c.state.Financeiro, c.financeiroRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar lançamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar lançamentos", err.Error()))
		return nil, false
	}
	return lancamentos, true
}

// Profissionais devolve a receita agrupada por profissional
// @Summary Receita por profissional
// @Tags relatorios
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param inicio query string false "Data inicial (yyyy-MM-dd)"
// @Param fim query string false "Data final (yyyy-MM-dd)"
// @Param profissional query string false "Nome do profissional"
// @Success 200 {array} report.LinhaReceita
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/profissionais [get]
func (c *RelatorioController) Profissionais(ctx *gin.Context) {
	lancamentos, ok := c.lancamentos(ctx)
	if !ok {
		return
	}

	linhas := report.ReceitaPorProfissional(lancamentos, c.filtro(ctx))
	ctx.JSON(http.StatusOK, gin.H{
		"linhas": linhas,
		"total":  report.TotalReceita(linhas),
	})
}

// Comissoes devolve a comissão apurada por profissional ativo
// @Summary Comissões por profissional
// @Tags relatorios
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Success 200 {array} report.LinhaComissao
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/comissoes [get]
func (c *RelatorioController) Comissoes(ctx *gin.Context) {
	profissionais, err := colecao(ctx, c.state, c.state.Profissionais, c.profissionalRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar profissionais", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar profissionais", err.Error()))
		return
	}

	agendamentos, err := colecao(ctx, c.state, c.state.Agendamentos, c.agendamentoRepo.List)
	if err != nil {
		c.logger.Error("Erro ao listar agendamentos", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao listar agendamentos", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, report.Comissoes(profissionais, agendamentos))
}

// ExportCSV exporta a receita por profissional em CSV
// @Summary Exportar receita (CSV)
// @Tags relatorios
// @Produce text/csv
// @Param Authorization header string true "Bearer token"
// @Param inicio query string false "Data inicial (yyyy-MM-dd)"
// @Param fim query string false "Data final (yyyy-MM-dd)"
// @Success 200 {string} string
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/profissionais/export/csv [get]
func (c *RelatorioController) ExportCSV(ctx *gin.Context) {
	lancamentos, ok := c.lancamentos(ctx)
	if !ok {
		return
	}

	linhas := report.ReceitaPorProfissional(lancamentos, c.filtro(ctx))
	out, err := report.ExportCSV(linhas)
	if err != nil {
		c.logger.Error("Erro ao gerar CSV", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar CSV", err.Error()))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="receita-profissionais.csv"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out))
}

// ExportHTML exporta a receita por profissional como documento de
// impressão
// @Summary Exportar receita (impressão)
// @Tags relatorios
// @Produce text/html
// @Param Authorization header string true "Bearer token"
// @Param inicio query string false "Data inicial (yyyy-MM-dd)"
// @Param fim query string false "Data final (yyyy-MM-dd)"
// @Success 200 {string} string
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/profissionais/export/html [get]
func (c *RelatorioController) ExportHTML(ctx *gin.Context) {
	lancamentos, ok := c.lancamentos(ctx)
	if !ok {
		return
	}

	filtro := c.filtro(ctx)
	linhas := report.ReceitaPorProfissional(lancamentos, filtro)
	out, err := report.ExportHTML(linhas, filtro)
	if err != nil {
		c.logger.Error("Erro ao gerar HTML", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar HTML", err.Error()))
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// ExportXLSX exporta a receita por profissional em planilha Excel
// @Summary Exportar receita (XLSX)
// @Tags relatorios
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param Authorization header string true "Bearer token"
// @Param inicio query string false "Data inicial (yyyy-MM-dd)"
// @Param fim query string false "Data final (yyyy-MM-dd)"
// @Success 200 {string} string
// @Failure 500 {object} dto.ErrorResponse
// @Router /relatorios/profissionais/export/xlsx [get]
func (c *RelatorioController) ExportXLSX(ctx *gin.Context) {
	lancamentos, ok := c.lancamentos(ctx)
	if !ok {
		return
	}

	linhas := report.ReceitaPorProfissional(lancamentos, c.filtro(ctx))
	out, err := report.ExportXLSX(linhas)
	if err != nil {
		c.logger.Error("Erro ao gerar XLSX", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "erro ao gerar planilha", err.Error()))
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="receita-profissionais.xlsx"`)
	ctx.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
}
