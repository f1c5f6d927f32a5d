package profissional

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyNome            = errors.New("nome não pode ser vazio")
	ErrInvalidStatus        = errors.New("status inválido")
	ErrInvalidTipoComissao  = errors.New("tipo de comissão inválido")
	ErrComissaoForaDaFaixa  = errors.New("percentual de comissão deve estar entre 0 e 100")
	ErrProfissionalNotFound = errors.New("profissional não encontrado")
)

// Status do profissional
const (
	StatusAtivo   = "ativo"
	StatusInativo = "inativo"
)

// TipoComissao define como a comissão do profissional é calculada
type TipoComissao string

const (
	// ComissaoPercentual paga um percentual sobre a receita gerada
	ComissaoPercentual TipoComissao = "percentual"
	// ComissaoFixaPorServico paga um valor fixo por serviço concluído
	ComissaoFixaPorServico TipoComissao = "fixo_por_servico"
)

// Profissional representa um profissional do salão
type Profissional struct {
	ID                 string       `json:"id"`
	Nome               string       `json:"nome"`
	Celular            string       `json:"celular,omitempty"`
	Fixo               string       `json:"fixo,omitempty"`
	Email              string       `json:"email,omitempty"`
	Endereco           string       `json:"endereco,omitempty"`
	Numero             string       `json:"numero,omitempty"`
	Bairro             string       `json:"bairro,omitempty"`
	Cidade             string       `json:"cidade,omitempty"`
	Estado             string       `json:"estado,omitempty"`
	CEP                string       `json:"cep,omitempty"`
	Status             string       `json:"status"`
	TipoComissao       TipoComissao `json:"tipoComissao,omitempty"`
	PercentualComissao float64      `json:"percentualComissao,omitempty"`
	TenantID           string       `json:"tenantId,omitempty"`
	CreatedAt          string       `json:"createdAt"`
	UpdatedAt          string       `json:"updatedAt"`
}

// NewProfissional cria um novo profissional ativo
func NewProfissional(nome string) (*Profissional, error) {
	if strings.TrimSpace(nome) == "" {
		return nil, ErrEmptyNome
	}

	now := time.Now().Format(time.RFC3339)
	return &Profissional{
		Nome:      strings.ToUpper(nome),
		Status:    StatusAtivo,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Normalize aplica a convenção de caixa dos campos textuais
func (p *Profissional) Normalize() {
	p.Nome = strings.ToUpper(p.Nome)
	p.Endereco = strings.ToUpper(p.Endereco)
	p.Numero = strings.ToUpper(p.Numero)
	p.Bairro = strings.ToUpper(p.Bairro)
	p.Cidade = strings.ToUpper(p.Cidade)
	p.Estado = strings.ToUpper(p.Estado)
	p.Email = strings.ToLower(p.Email)
}

// Validate verifica as invariantes do profissional
func (p *Profissional) Validate() error {
	if strings.TrimSpace(p.Nome) == "" {
		return ErrEmptyNome
	}
	if p.Status != StatusAtivo && p.Status != StatusInativo {
		return ErrInvalidStatus
	}
	switch p.TipoComissao {
	case "", ComissaoPercentual, ComissaoFixaPorServico:
	default:
		return ErrInvalidTipoComissao
	}
	if p.TipoComissao == ComissaoPercentual && (p.PercentualComissao < 0 || p.PercentualComissao > 100) {
		return ErrComissaoForaDaFaixa
	}
	return nil
}

// Ativo verifica se o profissional está ativo
func (p *Profissional) Ativo() bool {
	return p.Status == StatusAtivo
}

// Comissao calcula a comissão sobre um total gerado e uma quantidade de
// serviços concluídos, conforme o tipo configurado.
func (p *Profissional) Comissao(totalGerado float64, qtdServicos int) float64 {
	if p.TipoComissao == ComissaoPercentual {
		return totalGerado * p.PercentualComissao / 100
	}
	return float64(qtdServicos) * p.PercentualComissao
}
