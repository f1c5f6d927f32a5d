package repository

import (
	"testing"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
)

func TestValidateTenant(t *testing.T) {
	store := docstore.NewMemoryStore()
	defer store.Close()

	store.Seed(ColSaloes, "ativo", map[string]interface{}{
		"nome": "BELA", "usuario": "bela", "plano": "basico", "ativo": true,
	})
	store.Seed(ColSaloes, "inativo", map[string]interface{}{
		"nome": "CHIC", "usuario": "chic", "plano": "basico", "ativo": false,
	})

	v := NewTenantValidator(NewSalaoRepository(store))

	tests := []struct {
		name     string
		tenantID string
		want     bool
	}{
		{"salao ativo", "ativo", true},
		{"salao inativo", "inativo", false},
		{"salao inexistente", "fantasma", false},
		{"id vazio", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := v.ValidateTenant(tt.tenantID)
			if err != nil {
				t.Fatalf("ValidateTenant(%q) err = %v", tt.tenantID, err)
			}
			if ok != tt.want {
				t.Errorf("ValidateTenant(%q) = %v, want %v", tt.tenantID, ok, tt.want)
			}
		})
	}
}
