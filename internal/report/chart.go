package report

import (
	"time"

	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
)

// PontoGrafico é um dia da série de movimentação do painel
type PontoGrafico struct {
	Label    string  `json:"label"` // dd/MM
	Data     string  `json:"data"`  // yyyy-MM-dd
	Entradas float64 `json:"entradas"`
	Saidas   float64 `json:"saidas"`
}

// GraficoSemanal soma entradas e saídas dos últimos sete dias corridos,
// incluindo hoje. Retorna sempre sete pontos, do mais antigo ao mais
// recente; dias sem lançamento aparecem zerados.
func GraficoSemanal(lancamentos []*financeiro.Lancamento, now time.Time) []PontoGrafico {
	pontos := make([]PontoGrafico, 0, 7)

	for i := 6; i >= 0; i-- {
		dia := now.AddDate(0, 0, -i)
		ponto := PontoGrafico{
			Label: dia.Format("02/01"),
			Data:  dia.Format(dateLayout),
		}

		for _, l := range lancamentos {
			if l.Data != ponto.Data {
				continue
			}
			switch l.Tipo {
			case financeiro.TipoEntrada:
				ponto.Entradas += l.Valor
			case financeiro.TipoSaida:
				ponto.Saidas += l.Valor
			}
		}

		pontos = append(pontos, ponto)
	}

	return pontos
}
