package report

import (
	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/servico"
)

// ValorSugerido devolve o valor a gravar em um agendamento: o preço atual
// do serviço no catálogo quando o nome casa e o preço é positivo, senão o
// valor já presente no agendamento.
func ValorSugerido(a *agendamento.Agendamento, servicos []*servico.Servico) float64 {
	for _, s := range servicos {
		if s.Nome == a.Servico {
			if s.Preco > 0 {
				return s.Preco
			}
			break
		}
	}
	return a.Valor
}
