package dto

import (
	"github.com/gfsilva/salao-gestor/internal/state"
)

// LoginRequest representa os dados de login. Identidade aceita o usuário
// ou o e-mail cadastrado.
type LoginRequest struct {
	Identidade string `json:"identidade" binding:"required"`
	Senha      string `json:"senha" binding:"required"`
}

// LoginResponse representa a resposta de autenticação
type LoginResponse struct {
	Token    string         `json:"token"`
	User     *state.User    `json:"user"`
	Tenant   *SalaoResponse `json:"tenant,omitempty"`
	IsMaster bool           `json:"isMaster"`
	Expirado bool           `json:"expirado"`
}

// TrocarSenhaRequest representa os dados de troca de senha
type TrocarSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual" binding:"required"`
	NovaSenha  string `json:"novaSenha" binding:"required,min=3"`
}
