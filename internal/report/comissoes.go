package report

import (
	"sort"

	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/profissional"
)

// LinhaComissao é a comissão apurada para um profissional
type LinhaComissao struct {
	Profissional string  `json:"profissional"`
	QtdServicos  int     `json:"qtdServicos"`
	TotalGerado  float64 `json:"totalGerado"`
	Comissao     float64 `json:"comissao"`
}

// Comissoes apura a comissão de cada profissional ativo somando o valor
// gravado em seus agendamentos concluídos.
func Comissoes(
	profissionais []*profissional.Profissional,
	agendamentos []*agendamento.Agendamento,
) []LinhaComissao {
	linhas := make([]LinhaComissao, 0, len(profissionais))
	for _, p := range profissionais {
		if !p.Ativo() {
			continue
		}

		linha := LinhaComissao{Profissional: p.Nome}
		for _, a := range agendamentos {
			if a.Status != agendamento.StatusConcluido || a.Profissional != p.Nome {
				continue
			}
			linha.QtdServicos++
			linha.TotalGerado += a.Valor
		}

		linha.Comissao = p.Comissao(linha.TotalGerado, linha.QtdServicos)
		linhas = append(linhas, linha)
	}

	sort.Slice(linhas, func(i, j int) bool {
		if linhas[i].Comissao != linhas[j].Comissao {
			return linhas[i].Comissao > linhas[j].Comissao
		}
		return linhas[i].Profissional < linhas[j].Profissional
	})

	return linhas
}
