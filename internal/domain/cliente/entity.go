package cliente

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyNome       = errors.New("nome não pode ser vazio")
	ErrPontosNegativos = errors.New("pontos de fidelidade não podem ser negativos")
	ErrClienteNotFound = errors.New("cliente não encontrado")
)

// Cliente representa um cliente do salão
type Cliente struct {
	ID               string `json:"id"`
	Nome             string `json:"nome"`
	Telefone         string `json:"telefone,omitempty"`
	Email            string `json:"email,omitempty"`
	Endereco         string `json:"endereco,omitempty"`
	Numero           string `json:"numero,omitempty"`
	Bairro           string `json:"bairro,omitempty"`
	Cidade           string `json:"cidade,omitempty"`
	Estado           string `json:"estado,omitempty"`
	CEP              string `json:"cep,omitempty"`
	Observacoes      string `json:"observacoes,omitempty"`
	PontosFidelidade int    `json:"pontosFidelidade"`
	TenantID         string `json:"tenantId,omitempty"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

// NewCliente cria um novo cliente. Nomes e endereço são gravados em
// caixa alta e o email em minúsculas, convenção herdada do sistema.
func NewCliente(nome string) (*Cliente, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, ErrEmptyNome
	}

	now := time.Now().Format(time.RFC3339)
	return &Cliente{
		Nome:             strings.ToUpper(nome),
		PontosFidelidade: 0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Normalize aplica a convenção de caixa dos campos textuais
func (c *Cliente) Normalize() {
	c.Nome = strings.ToUpper(c.Nome)
	c.Endereco = strings.ToUpper(c.Endereco)
	c.Numero = strings.ToUpper(c.Numero)
	c.Bairro = strings.ToUpper(c.Bairro)
	c.Cidade = strings.ToUpper(c.Cidade)
	c.Estado = strings.ToUpper(c.Estado)
	c.Email = strings.ToLower(c.Email)
}

// Validate verifica as invariantes do cliente
func (c *Cliente) Validate() error {
	if strings.TrimSpace(c.Nome) == "" {
		return ErrEmptyNome
	}
	if c.PontosFidelidade < 0 {
		return ErrPontosNegativos
	}
	return nil
}

// Matches verifica se o cliente casa com o termo de busca (nome ou telefone)
func (c *Cliente) Matches(termo string) bool {
	if termo == "" {
		return true
	}
	termo = strings.ToLower(termo)
	return strings.Contains(strings.ToLower(c.Nome), termo) ||
		strings.Contains(c.Telefone, termo)
}
