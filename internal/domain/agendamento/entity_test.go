package agendamento

import (
	"errors"
	"testing"
	"time"
)

func TestNewAgendamento(t *testing.T) {
	a, err := NewAgendamento("2026-09-01", "14:30", "ana souza", "corte", "maria")
	if err != nil {
		t.Fatalf("NewAgendamento() err = %v", err)
	}
	if a.Status != StatusPendente {
		t.Errorf("Status = %q, want %q", a.Status, StatusPendente)
	}
	if a.ClienteNome != "ANA SOUZA" || a.Servico != "CORTE" || a.Profissional != "MARIA" {
		t.Errorf("nomes não foram gravados em caixa alta: %+v", a)
	}
}

func TestValidate(t *testing.T) {
	valido := func() *Agendamento {
		return &Agendamento{Data: "2026-09-01", Hora: "14:30", ClienteNome: "ANA", Servico: "CORTE", Profissional: "MARIA", Status: StatusPendente}
	}

	tests := []struct {
		name    string
		mutate  func(*Agendamento)
		wantErr error
	}{
		{"valido", func(a *Agendamento) {}, nil},
		{"sem data", func(a *Agendamento) { a.Data = "" }, ErrEmptyData},
		{"sem hora", func(a *Agendamento) { a.Hora = "" }, ErrEmptyHora},
		{"sem cliente", func(a *Agendamento) { a.ClienteNome = " " }, ErrEmptyClienteNome},
		{"sem servico", func(a *Agendamento) { a.Servico = "" }, ErrEmptyServico},
		{"sem profissional", func(a *Agendamento) { a.Profissional = "" }, ErrEmptyProfissional},
		{"status invalido", func(a *Agendamento) { a.Status = "Agendado" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valido()
			tt.mutate(a)
			if err := a.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNoPassado(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		data string
		want bool
	}{
		{"2026-08-29", true},
		{"2026-08-30", false}, // hoje não conta como passado
		{"2026-08-31", false},
		{"data-invalida", false},
	}

	for _, tt := range tests {
		a := &Agendamento{Data: tt.data}
		if got := a.NoPassado(now); got != tt.want {
			t.Errorf("NoPassado(%q) = %v, want %v", tt.data, got, tt.want)
		}
	}
}

func TestDescricaoFinanceiro(t *testing.T) {
	a := &Agendamento{ClienteNome: "ANA SOUZA", Servico: "CORTE", Profissional: "MARIA"}
	want := "CORTE - ANA SOUZA (MARIA)"
	if got := a.DescricaoFinanceiro(); got != want {
		t.Errorf("DescricaoFinanceiro() = %q, want %q", got, want)
	}
}

func TestConcluido(t *testing.T) {
	if !(&Agendamento{Status: StatusConcluido}).Concluido() {
		t.Error("agendamento concluído não reconhecido")
	}
	if (&Agendamento{Status: StatusConfirmado}).Concluido() {
		t.Error("agendamento confirmado tratado como concluído")
	}
}
