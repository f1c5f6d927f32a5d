package salao

import (
	"errors"
	"time"
)

var (
	ErrEmptyNome      = errors.New("nome não pode ser vazio")
	ErrEmptyUsuario   = errors.New("usuário não pode ser vazio")
	ErrEmptySenha     = errors.New("senha não pode ser vazia")
	ErrInvalidPlano   = errors.New("plano inválido")
	ErrSalaoNotFound  = errors.New("salão não encontrado")
	ErrSalaoInactive  = errors.New("salão inativo")
	ErrInvalidData    = errors.New("data de expiração inválida")
	ErrSenhaIncorreta = errors.New("senha incorreta")
)

// Plano representa o plano contratado pelo salão
type Plano string

const (
	PlanoBasico       Plano = "basico"
	PlanoProfissional Plano = "profissional"
	PlanoPremium      Plano = "premium"
)

// Salao representa um tenant: o salão que contratou o sistema.
// As credenciais são comparadas em texto puro, por paridade com o
// comportamento original do sistema.
type Salao struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	Usuario       string `json:"usuario"`
	Senha         string `json:"senha,omitempty"`
	Email         string `json:"email,omitempty"`
	Telefone      string `json:"telefone,omitempty"`
	Responsavel   string `json:"responsavel,omitempty"`
	Plano         Plano  `json:"plano"`
	DataExpiracao string `json:"dataExpiracao"` // formato yyyy-MM-dd
	Ativo         bool   `json:"ativo"`
	LogoURL       string `json:"logoUrl,omitempty"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// NewSalao cria um novo salão ativo
func NewSalao(nome, usuario, senha string, plano Plano, dataExpiracao string) (*Salao, error) {
	if nome == "" {
		return nil, ErrEmptyNome
	}
	if usuario == "" {
		return nil, ErrEmptyUsuario
	}
	if senha == "" {
		return nil, ErrEmptySenha
	}
	switch plano {
	case PlanoBasico, PlanoProfissional, PlanoPremium:
	default:
		return nil, ErrInvalidPlano
	}
	if dataExpiracao != "" {
		if _, err := time.Parse("2006-01-02", dataExpiracao); err != nil {
			return nil, ErrInvalidData
		}
	}

	now := time.Now().Format(time.RFC3339)
	return &Salao{
		Nome:          nome,
		Usuario:       usuario,
		Senha:         senha,
		Plano:         plano,
		DataExpiracao: dataExpiracao,
		Ativo:         true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Expirado verifica se a data de expiração já passou em relação a now
func (s *Salao) Expirado(now time.Time) bool {
	if s.DataExpiracao == "" {
		return false
	}
	exp, err := time.Parse("2006-01-02", s.DataExpiracao)
	if err != nil {
		return false
	}
	return exp.Before(now)
}

// ExpiraEm retorna quantos dias faltam para a expiração; negativo se já expirou
func (s *Salao) ExpiraEm(now time.Time) int {
	exp, err := time.Parse("2006-01-02", s.DataExpiracao)
	if err != nil {
		return 0
	}
	return int(exp.Sub(now).Hours() / 24)
}

// CheckSenha compara a senha informada com a armazenada (texto puro)
func (s *Salao) CheckSenha(senha string) bool {
	return s.Senha == senha
}
