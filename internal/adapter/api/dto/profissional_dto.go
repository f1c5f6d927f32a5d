package dto

// ProfissionalRequest representa os dados para criação ou atualização de
// um profissional
type ProfissionalRequest struct {
	Nome               string  `json:"nome" binding:"required"`
	Celular            string  `json:"celular"`
	Fixo               string  `json:"fixo"`
	Email              string  `json:"email"`
	Endereco           string  `json:"endereco"`
	Numero             string  `json:"numero"`
	Bairro             string  `json:"bairro"`
	Cidade             string  `json:"cidade"`
	Estado             string  `json:"estado"`
	CEP                string  `json:"cep"`
	Status             string  `json:"status"`
	TipoComissao       string  `json:"tipoComissao"`
	PercentualComissao float64 `json:"percentualComissao"`
}
