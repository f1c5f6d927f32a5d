package dto

import (
	"time"

	"github.com/gfsilva/salao-gestor/internal/domain/salao"
)

// SalaoRequest representa os dados para criação ou atualização de um salão
type SalaoRequest struct {
	Nome          string `json:"nome" binding:"required"`
	Usuario       string `json:"usuario" binding:"required"`
	Senha         string `json:"senha"`
	Email         string `json:"email"`
	Telefone      string `json:"telefone"`
	Responsavel   string `json:"responsavel"`
	Plano         string `json:"plano" binding:"required"`
	DataExpiracao string `json:"dataExpiracao" binding:"required"`
	Ativo         *bool  `json:"ativo"`
	LogoURL       string `json:"logoUrl"`
}

// SalaoResponse representa um salão nas respostas da API. A senha nunca
// sai do servidor.
type SalaoResponse struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Usuario       string `json:"usuario"`
	Email         string `json:"email,omitempty"`
	Telefone      string `json:"telefone,omitempty"`
	Responsavel   string `json:"responsavel,omitempty"`
	Plano         string `json:"plano"`
	DataExpiracao string `json:"dataExpiracao"`
	Ativo         bool   `json:"ativo"`
	Expirado      bool   `json:"expirado"`
	ExpiraEm      int    `json:"expiraEm"`
	LogoURL       string `json:"logoUrl,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToSalaoResponse converte um salão de domínio para o formato de resposta
func ToSalaoResponse(s *salao.Salao) *SalaoResponse {
	if s == nil {
		return nil
	}
	now := time.Now()
	return &SalaoResponse{
		ID:            s.ID,
		Nome:          s.Nome,
		Usuario:       s.Usuario,
		Email:         s.Email,
		Telefone:      s.Telefone,
		Responsavel:   s.Responsavel,
		Plano:         string(s.Plano),
		DataExpiracao: s.DataExpiracao,
		Ativo:         s.Ativo,
		Expirado:      s.Expirado(now),
		ExpiraEm:      s.ExpiraEm(now),
		LogoURL:       s.LogoURL,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

// ToSalaoResponseList converte uma lista de salões
func ToSalaoResponseList(saloes []*salao.Salao) []*SalaoResponse {
	out := make([]*SalaoResponse, 0, len(saloes))
	for _, s := range saloes {
		out = append(out, ToSalaoResponse(s))
	}
	return out
}
