package tenant

import "errors"

// Erros comuns relacionados a operações sobre o salão da sessão
var (
	// ErrTenantNotSpecified ocorre quando a sessão não carrega um salão
	ErrTenantNotSpecified = errors.New("salão não especificado na sessão")

	// ErrTenantNotFound ocorre quando o salão não é encontrado
	ErrTenantNotFound = errors.New("salão não encontrado")

	// ErrTenantNotActive ocorre quando o salão não está ativo
	ErrTenantNotActive = errors.New("salão não está ativo")
)
