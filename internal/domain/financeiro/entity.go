package financeiro

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrEmptyData          = errors.New("data não pode ser vazia")
	ErrEmptyDescricao     = errors.New("descrição não pode ser vazia")
	ErrInvalidTipo        = errors.New("tipo deve ser entrada ou saída")
	ErrValorInvalido      = errors.New("valor deve ser maior que zero")
	ErrLancamentoNotFound = errors.New("lançamento não encontrado")
)

// Tipo é a direção do lançamento no caixa
type Tipo string

const (
	TipoEntrada Tipo = "entrada"
	TipoSaida   Tipo = "saida"
)

// profissionalRe extrai o profissional do sufixo entre parênteses da
// descrição, convenção "SERVIÇO - CLIENTE (PROFISSIONAL)".
var profissionalRe = regexp.MustCompile(`\(([A-Z\s]+)\)`)

// Lancamento representa um lançamento do financeiro (receita ou despesa).
// O valor é sempre positivo; a direção vai no campo Tipo, nunca no sinal.
type Lancamento struct {
	ID            string  `json:"id"`
	Data          string  `json:"data"` // formato yyyy-MM-dd
	Descricao     string  `json:"descricao"`
	Tipo          Tipo    `json:"tipo"`
	Valor         float64 `json:"valor"`
	FormaPagamento string `json:"formaPagamento,omitempty"`
	Observacoes   string  `json:"observacoes,omitempty"`
	TenantID      string  `json:"tenantId,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	UpdatedAt     string  `json:"updatedAt"`
}

// NewLancamento cria um novo lançamento
func NewLancamento(data, descricao string, tipo Tipo, valor float64, formaPagamento string) (*Lancamento, error) {
	l := &Lancamento{
		Data:           data,
		Descricao:      strings.ToUpper(descricao),
		Tipo:           tipo,
		Valor:          valor,
		FormaPagamento: formaPagamento,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	l.Normalize()

	now := time.Now().Format(time.RFC3339)
	l.CreatedAt = now
	l.UpdatedAt = now
	return l, nil
}

// Validate verifica as invariantes do lançamento
func (l *Lancamento) Validate() error {
	if l.Data == "" {
		return ErrEmptyData
	}
	if strings.TrimSpace(l.Descricao) == "" {
		return ErrEmptyDescricao
	}
	if l.Tipo != TipoEntrada && l.Tipo != TipoSaida {
		return ErrInvalidTipo
	}
	if l.Valor <= 0 {
		return ErrValorInvalido
	}
	return nil
}

// Normalize grava a descrição em caixa alta e limpa a forma de pagamento
// de saídas: ela só tem significado para entradas.
func (l *Lancamento) Normalize() {
	l.Descricao = strings.ToUpper(l.Descricao)
	if l.Tipo != TipoEntrada {
		l.FormaPagamento = ""
	}
}

// Entrada indica se o lançamento é uma receita
func (l *Lancamento) Entrada() bool {
	return l.Tipo == TipoEntrada
}

// Profissional extrai o nome do profissional da descrição. Descrições fora
// da convenção retornam vazio.
func (l *Lancamento) Profissional() string {
	m := profissionalRe.FindStringSubmatch(l.Descricao)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// Servico extrai o nome do serviço (prefixo antes de " - ") da descrição
func (l *Lancamento) Servico() string {
	idx := strings.Index(l.Descricao, " - ")
	if idx < 0 {
		return l.Descricao
	}
	return l.Descricao[:idx]
}
