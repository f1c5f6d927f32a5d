package dto

// ServicoRequest representa os dados para criação ou atualização de um
// serviço do catálogo
type ServicoRequest struct {
	Nome    string  `json:"nome" binding:"required"`
	Preco   float64 `json:"preco"`
	Duracao int     `json:"duracao"`
}
