package report

import (
	"fmt"
	"time"

	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
)

// AgendamentosPorDia conta os agendamentos não cancelados de cada dia do
// mês informado (1..31). O mapa traz somente os dias que têm agendamento.
func AgendamentosPorDia(agendamentos []*agendamento.Agendamento, ano int, mes time.Month) map[int]int {
	prefixo := fmt.Sprintf("%04d-%02d-", ano, mes)

	porDia := make(map[int]int)
	for _, a := range agendamentos {
		if a.Status == agendamento.StatusCancelado {
			continue
		}
		if len(a.Data) != 10 || a.Data[:8] != prefixo {
			continue
		}

		var dia int
		if _, err := fmt.Sscanf(a.Data[8:], "%d", &dia); err != nil || dia < 1 || dia > 31 {
			continue
		}
		porDia[dia]++
	}

	return porDia
}
