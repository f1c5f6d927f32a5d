package report

import (
	"testing"

	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/servico"
)

func TestValorSugerido(t *testing.T) {
	catalogo := []*servico.Servico{
		{Nome: "CORTE", Preco: 60},
		{Nome: "ESCOVA", Preco: 45},
	}

	tests := []struct {
		name     string
		a        *agendamento.Agendamento
		servicos []*servico.Servico
		want     float64
	}{
		{
			name:     "serviço no catálogo prevalece sobre o valor gravado",
			a:        &agendamento.Agendamento{Servico: "CORTE", Valor: 40},
			servicos: catalogo,
			want:     60,
		},
		{
			name:     "serviço fora do catálogo mantém o valor gravado",
			a:        &agendamento.Agendamento{Servico: "BARBA", Valor: 25},
			servicos: catalogo,
			want:     25,
		},
		{
			name:     "serviço com preço zero no catálogo mantém o valor gravado",
			a:        &agendamento.Agendamento{Servico: "DEPILACAO", Valor: 35},
			servicos: []*servico.Servico{{Nome: "DEPILACAO", Preco: 0}},
			want:     35,
		},
		{
			name: "catálogo vazio mantém o valor gravado",
			a:    &agendamento.Agendamento{Servico: "CORTE", Valor: 40},
			want: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValorSugerido(tt.a, tt.servicos); got != tt.want {
				t.Errorf("ValorSugerido() = %v, esperado %v", got, tt.want)
			}
		})
	}
}
