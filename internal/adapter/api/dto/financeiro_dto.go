package dto

// LancamentoRequest representa os dados para criação ou atualização de um
// lançamento do financeiro
type LancamentoRequest struct {
	Data           string  `json:"data" binding:"required"`
	Descricao      string  `json:"descricao" binding:"required"`
	Tipo           string  `json:"tipo" binding:"required,oneof=entrada saida"`
	Valor          float64 `json:"valor" binding:"required,gt=0"`
	FormaPagamento string  `json:"formaPagamento"`
	Observacoes    string  `json:"observacoes"`
}
