package report

import (
	"sort"

	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
)

// OutrosBucket agrupa lançamentos cuja descrição não segue a convenção
// "SERVIÇO - CLIENTE (PROFISSIONAL)"
const OutrosBucket = "Outros"

// LinhaReceita é a receita agregada de um profissional no período
type LinhaReceita struct {
	Profissional string   `json:"profissional"`
	Quantidade   int      `json:"quantidade"`
	Total        float64  `json:"total"`
	Servicos     []string `json:"servicos"`
}

// FiltroReceita delimita o relatório de receita por profissional. Datas
// vazias não restringem; o intervalo é fechado nas duas pontas, comparado
// como string ISO. Profissional, quando informado, restringe a uma única
// linha.
type FiltroReceita struct {
	Inicio       string
	Fim          string
	Profissional string
}

// ReceitaPorProfissional agrupa os lançamentos de entrada pelo nome do
// profissional extraído da descrição. Lançamentos fora da convenção caem
// no grupo Outros. As linhas saem ordenadas por total decrescente; empates
// são resolvidos pelo nome.
func ReceitaPorProfissional(lancamentos []*financeiro.Lancamento, filtro FiltroReceita) []LinhaReceita {
	type acumulado struct {
		quantidade int
		total      float64
		servicos   map[string]struct{}
	}
	grupos := make(map[string]*acumulado)

	for _, l := range lancamentos {
		if l.Tipo != financeiro.TipoEntrada {
			continue
		}
		if filtro.Inicio != "" && l.Data < filtro.Inicio {
			continue
		}
		if filtro.Fim != "" && l.Data > filtro.Fim {
			continue
		}

		nome := l.Profissional()
		if nome == "" {
			nome = OutrosBucket
		}
		if filtro.Profissional != "" && nome != filtro.Profissional {
			continue
		}

		g, ok := grupos[nome]
		if !ok {
			g = &acumulado{servicos: make(map[string]struct{})}
			grupos[nome] = g
		}
		g.quantidade++
		g.total += l.Valor
		if servico := l.Servico(); servico != "" {
			g.servicos[servico] = struct{}{}
		}
	}

	linhas := make([]LinhaReceita, 0, len(grupos))
	for nome, g := range grupos {
		servicos := make([]string, 0, len(g.servicos))
		for s := range g.servicos {
			servicos = append(servicos, s)
		}
		sort.Strings(servicos)

		linhas = append(linhas, LinhaReceita{
			Profissional: nome,
			Quantidade:   g.quantidade,
			Total:        g.total,
			Servicos:     servicos,
		})
	}

	sort.Slice(linhas, func(i, j int) bool {
		if linhas[i].Total != linhas[j].Total {
			return linhas[i].Total > linhas[j].Total
		}
		return linhas[i].Profissional < linhas[j].Profissional
	})

	return linhas
}

// TotalReceita soma o total de todas as linhas do relatório
func TotalReceita(linhas []LinhaReceita) float64 {
	var total float64
	for _, l := range linhas {
		total += l.Total
	}
	return total
}
