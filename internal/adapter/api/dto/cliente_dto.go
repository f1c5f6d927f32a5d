package dto

// ClienteRequest representa os dados para criação ou atualização de um
// cliente
type ClienteRequest struct {
	Nome             string `json:"nome" binding:"required"`
	Telefone         string `json:"telefone"`
	Email            string `json:"email"`
	Endereco         string `json:"endereco"`
	Numero           string `json:"numero"`
	Bairro           string `json:"bairro"`
	Cidade           string `json:"cidade"`
	Estado           string `json:"estado"`
	CEP              string `json:"cep"`
	Observacoes      string `json:"observacoes"`
	PontosFidelidade int    `json:"pontosFidelidade"`
}
