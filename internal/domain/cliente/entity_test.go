package cliente

import "testing"

func TestNewCliente(t *testing.T) {
	c, err := NewCliente("ana souza")
	if err != nil {
		t.Fatalf("NewCliente() err = %v", err)
	}
	if c.Nome != "ANA SOUZA" {
		t.Errorf("Nome = %q, want caixa alta", c.Nome)
	}

	if _, err := NewCliente("  "); err != ErrEmptyNome {
		t.Errorf("nome vazio: err = %v, want %v", err, ErrEmptyNome)
	}
}

func TestMatches(t *testing.T) {
	c := &Cliente{Nome: "ANA SOUZA", Telefone: "11999887766"}

	tests := []struct {
		termo string
		want  bool
	}{
		{"", true},
		{"ana", true},
		{"SOUZA", true},
		{"99887", true},
		{"pedro", false},
	}

	for _, tt := range tests {
		if got := c.Matches(tt.termo); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.termo, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	c := &Cliente{Nome: "ANA", PontosFidelidade: -1}
	if err := c.Validate(); err != ErrPontosNegativos {
		t.Errorf("Validate() = %v, want %v", err, ErrPontosNegativos)
	}
}
