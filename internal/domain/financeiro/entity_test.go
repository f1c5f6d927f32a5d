package financeiro

import (
	"errors"
	"testing"
)

func TestNewLancamentoValidacao(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		descricao string
		tipo      Tipo
		valor     float64
		wantErr   error
	}{
		{"entrada valida", "2026-08-30", "Corte - Ana (Maria)", TipoEntrada, 50, nil},
		{"saida valida", "2026-08-30", "Compra de produtos", TipoSaida, 120, nil},
		{"data vazia", "", "Corte", TipoEntrada, 50, ErrEmptyData},
		{"descricao vazia", "2026-08-30", "   ", TipoEntrada, 50, ErrEmptyDescricao},
		{"tipo invalido", "2026-08-30", "Corte", Tipo("transferencia"), 50, ErrInvalidTipo},
		{"valor zero", "2026-08-30", "Corte", TipoEntrada, 0, ErrValorInvalido},
		{"valor negativo", "2026-08-30", "Corte", TipoEntrada, -10, ErrValorInvalido},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := NewLancamento(tt.data, tt.descricao, tt.tipo, tt.valor, "")
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewLancamento() err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && l.CreatedAt == "" {
				t.Errorf("lançamento criado sem CreatedAt")
			}
		})
	}
}

func TestNewLancamentoDescricaoCaixaAlta(t *testing.T) {
	l, err := NewLancamento("2026-08-30", "corte - ana (maria)", TipoEntrada, 50, "pix")
	if err != nil {
		t.Fatalf("NewLancamento() err = %v", err)
	}
	if l.Descricao != "CORTE - ANA (MARIA)" {
		t.Errorf("Descricao = %q, want caixa alta", l.Descricao)
	}
}

func TestNormalizeLimpaFormaPagamentoDeSaida(t *testing.T) {
	l := &Lancamento{Data: "2026-08-30", Descricao: "Compra", Tipo: TipoSaida, Valor: 80, FormaPagamento: "pix"}
	l.Normalize()
	if l.FormaPagamento != "" {
		t.Errorf("saída manteve formaPagamento %q", l.FormaPagamento)
	}

	e := &Lancamento{Data: "2026-08-30", Descricao: "Corte", Tipo: TipoEntrada, Valor: 50, FormaPagamento: "pix"}
	e.Normalize()
	if e.FormaPagamento != "pix" {
		t.Errorf("entrada perdeu formaPagamento")
	}
}

func TestProfissional(t *testing.T) {
	tests := []struct {
		descricao string
		want      string
	}{
		{"CORTE - ANA (MARIA)", "MARIA"},
		{"ESCOVA - BIA (JOSE CARLOS)", "JOSE CARLOS"},
		{"LIMPEZA - PEDRO (SEM PARENTESE", ""},
		{"COMPRA DE PRODUTOS", ""},
		{"VENDA PDV - CONSUMIDOR (2x SHAMPOO)", ""},
		{"", ""},
	}

	for _, tt := range tests {
		l := &Lancamento{Descricao: tt.descricao}
		if got := l.Profissional(); got != tt.want {
			t.Errorf("Profissional(%q) = %q, want %q", tt.descricao, got, tt.want)
		}
	}
}

func TestServico(t *testing.T) {
	tests := []struct {
		descricao string
		want      string
	}{
		{"CORTE - ANA (MARIA)", "CORTE"},
		{"LUZES E ESCOVA - BIA (MARIA)", "LUZES E ESCOVA"},
		{"COMPRA DE PRODUTOS", "COMPRA DE PRODUTOS"},
	}

	for _, tt := range tests {
		l := &Lancamento{Descricao: tt.descricao}
		if got := l.Servico(); got != tt.want {
			t.Errorf("Servico(%q) = %q, want %q", tt.descricao, got, tt.want)
		}
	}
}

func TestEntrada(t *testing.T) {
	if !(&Lancamento{Tipo: TipoEntrada}).Entrada() {
		t.Error("entrada não reconhecida")
	}
	if (&Lancamento{Tipo: TipoSaida}).Entrada() {
		t.Error("saída reconhecida como entrada")
	}
}
