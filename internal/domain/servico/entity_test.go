package servico

import (
	"errors"
	"testing"
)

func TestNewServico(t *testing.T) {
	tests := []struct {
		name    string
		nome    string
		preco   float64
		duracao int
		wantErr error
	}{
		{"valido", "Corte", 60, 30, nil},
		{"preco zero", "Avaliação", 0, 15, nil},
		{"duracao minima", "Retoque", 20, DuracaoMinima, nil},
		{"nome vazio", "  ", 60, 30, ErrEmptyNome},
		{"preco negativo", "Corte", -1, 30, ErrPrecoNegativo},
		{"duracao curta", "Corte", 60, 4, ErrDuracaoMinima},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewServico(tt.nome, tt.preco, tt.duracao)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewServico() err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && s.CreatedAt == "" {
				t.Errorf("serviço criado sem CreatedAt: %+v", s)
			}
		})
	}
}

func TestNomeCaixaAlta(t *testing.T) {
	s, err := NewServico("luzes e escova", 180, 90)
	if err != nil {
		t.Fatal(err)
	}
	if s.Nome != "LUZES E ESCOVA" {
		t.Errorf("Nome = %q, want caixa alta", s.Nome)
	}
}
