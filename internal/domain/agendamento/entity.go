package agendamento

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyData           = errors.New("data não pode ser vazia")
	ErrEmptyHora           = errors.New("hora não pode ser vazia")
	ErrEmptyClienteNome    = errors.New("nome do cliente não pode ser vazio")
	ErrEmptyServico        = errors.New("serviço não pode ser vazio")
	ErrEmptyProfissional   = errors.New("profissional não pode ser vazio")
	ErrInvalidStatus       = errors.New("status inválido")
	ErrDataPassada         = errors.New("não é possível agendar com datas anteriores à atual")
	ErrAgendamentoNotFound = errors.New("agendamento não encontrado")
)

// Status de um agendamento
type Status string

const (
	StatusPendente   Status = "Pendente"
	StatusConfirmado Status = "Confirmado"
	StatusConcluido  Status = "Concluido"
	StatusCancelado  Status = "Cancelado"
)

// Agendamento representa um agendamento de serviço. Cliente, serviço e
// profissional são gravados pelo nome, não por referência: uma renomeação
// posterior não se propaga ao histórico.
type Agendamento struct {
	ID              string  `json:"id"`
	Data            string  `json:"data"` // formato yyyy-MM-dd
	Hora            string  `json:"hora"`
	ClienteNome     string  `json:"clienteNome"`
	ClienteTelefone string  `json:"clienteTelefone,omitempty"`
	Servico         string  `json:"servico"`
	Profissional    string  `json:"profissional"`
	ProfissionalID  string  `json:"profissionalId,omitempty"`
	Status          Status  `json:"status"`
	Valor           float64 `json:"valor"`
	Observacoes     string  `json:"observacoes,omitempty"`
	TenantID        string  `json:"tenantId,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// NewAgendamento cria um novo agendamento pendente
func NewAgendamento(data, hora, clienteNome, servico, profissional string) (*Agendamento, error) {
	a := &Agendamento{
		Data:         data,
		Hora:         hora,
		ClienteNome:  strings.ToUpper(clienteNome),
		Servico:      strings.ToUpper(servico),
		Profissional: strings.ToUpper(profissional),
		Status:       StatusPendente,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().Format(time.RFC3339)
	a.CreatedAt = now
	a.UpdatedAt = now
	return a, nil
}

// Normalize aplica a convenção de caixa alta aos nomes denormalizados
func (a *Agendamento) Normalize() {
	a.ClienteNome = strings.ToUpper(a.ClienteNome)
	a.Servico = strings.ToUpper(a.Servico)
	a.Profissional = strings.ToUpper(a.Profissional)
}

// Validate verifica as invariantes do agendamento
func (a *Agendamento) Validate() error {
	if a.Data == "" {
		return ErrEmptyData
	}
	if a.Hora == "" {
		return ErrEmptyHora
	}
	if strings.TrimSpace(a.ClienteNome) == "" {
		return ErrEmptyClienteNome
	}
	if strings.TrimSpace(a.Servico) == "" {
		return ErrEmptyServico
	}
	if strings.TrimSpace(a.Profissional) == "" {
		return ErrEmptyProfissional
	}
	switch a.Status {
	case StatusPendente, StatusConfirmado, StatusConcluido, StatusCancelado:
	default:
		return ErrInvalidStatus
	}
	return nil
}

// NoPassado indica se a data do agendamento é anterior ao dia de hoje.
// Apenas novos agendamentos são bloqueados por essa regra.
func (a *Agendamento) NoPassado(now time.Time) bool {
	d, err := time.Parse("2006-01-02", a.Data)
	if err != nil {
		return false
	}
	hoje := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return d.Before(hoje)
}

// Concluido indica se o agendamento foi concluído
func (a *Agendamento) Concluido() bool {
	return a.Status == StatusConcluido
}

// DescricaoFinanceiro monta a descrição do lançamento financeiro sugerido
// quando o agendamento é concluído: "SERVIÇO - CLIENTE (PROFISSIONAL)".
func (a *Agendamento) DescricaoFinanceiro() string {
	return a.Servico + " - " + a.ClienteNome + " (" + a.Profissional + ")"
}
