package servico

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyNome       = errors.New("nome não pode ser vazio")
	ErrPrecoNegativo   = errors.New("preço não pode ser negativo")
	ErrDuracaoMinima   = errors.New("duração mínima é de 5 minutos")
	ErrServicoNotFound = errors.New("serviço não encontrado")
)

// DuracaoMinima é a menor duração aceita para um serviço, em minutos
const DuracaoMinima = 5

// Servico representa um serviço oferecido pelo salão
type Servico struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Duracao   int     `json:"duracao"` // em minutos
	TenantID  string  `json:"tenantId,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// NewServico cria um novo serviço
func NewServico(nome string, preco float64, duracao int) (*Servico, error) {
	s := &Servico{
		Nome:    strings.ToUpper(nome),
		Preco:   preco,
		Duracao: duracao,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().Format(time.RFC3339)
	s.CreatedAt = now
	s.UpdatedAt = now
	return s, nil
}

// Validate verifica as invariantes do serviço
func (s *Servico) Validate() error {
	if strings.TrimSpace(s.Nome) == "" {
		return ErrEmptyNome
	}
	if s.Preco < 0 {
		return ErrPrecoNegativo
	}
	if s.Duracao < DuracaoMinima {
		return ErrDuracaoMinima
	}
	return nil
}
