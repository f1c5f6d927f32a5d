package repository

import (
	"context"
	"errors"

	"github.com/gfsilva/salao-gestor/internal/domain/salao"
	pkgtenant "github.com/gfsilva/salao-gestor/pkg/tenant"
)

// TenantValidator valida o salão da sessão contra o cadastro
type TenantValidator struct {
	repository salao.Repository
}

// NewTenantValidator cria uma nova instância de TenantValidator
func NewTenantValidator(repository salao.Repository) pkgtenant.TenantValidator {
	return &TenantValidator{
		repository: repository,
	}
}

// ValidateTenant verifica se o salão existe e está ativo
func (v *TenantValidator) ValidateTenant(tenantID string) (bool, error) {
	if tenantID == "" {
		return false, nil
	}

	s, err := v.repository.FindByID(context.Background(), tenantID)
	if err != nil {
		if errors.Is(err, salao.ErrSalaoNotFound) {
			return false, nil
		}
		return false, err
	}

	return s.Ativo, nil
}
