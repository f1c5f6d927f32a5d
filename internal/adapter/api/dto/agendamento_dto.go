package dto

import (
	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
)

// AgendamentoRequest representa os dados para criação ou atualização de
// um agendamento
type AgendamentoRequest struct {
	Data            string  `json:"data" binding:"required"`
	Hora            string  `json:"hora" binding:"required"`
	ClienteNome     string  `json:"clienteNome" binding:"required"`
	ClienteTelefone string  `json:"clienteTelefone"`
	Servico         string  `json:"servico" binding:"required"`
	Profissional    string  `json:"profissional" binding:"required"`
	ProfissionalID  string  `json:"profissionalId"`
	Status          string  `json:"status"`
	Valor           float64 `json:"valor"`
	Observacoes     string  `json:"observacoes"`
}

// AgendamentoResponse devolve o agendamento gravado e, quando o status é
// Concluido, o rascunho de lançamento financeiro pré-preenchido para
// confirmação
type AgendamentoResponse struct {
	Agendamento *agendamento.Agendamento `json:"agendamento"`
	Lancamento  *LancamentoDraft         `json:"lancamento,omitempty"`
}

// LancamentoDraft é o rascunho de lançamento gerado por um agendamento
// concluído. O valor vem do catálogo de serviços quando o nome casa.
type LancamentoDraft struct {
	Data      string          `json:"data"`
	Descricao string          `json:"descricao"`
	Tipo      financeiro.Tipo `json:"tipo"`
	Valor     float64         `json:"valor"`
}
