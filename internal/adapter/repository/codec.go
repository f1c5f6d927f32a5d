package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
)

// Nomes das coleções no banco de documentos. As coleções de dados do salão
// ficam aninhadas sob o documento do tenant: "saloes/<id>/<coleção>".
const (
	ColSaloes        = "saloes"
	ColClientes      = "clientes"
	ColProdutos      = "produtos"
	ColProfissionais = "profissionais"
	ColServicos      = "servicos"
	ColAgendamentos  = "agendamentos"
	ColFinanceiro    = "financeiro"
)

// TenantCol monta o caminho de uma coleção escopada a um salão
func TenantCol(tenantID, col string) string {
	return ColSaloes + "/" + tenantID + "/" + col
}

// toMap converte uma entidade para o registro sem esquema gravado no banco.
// O id nunca é gravado dentro do documento; ele é o nome do documento.
func toMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar entidade: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("erro ao converter entidade: %w", err)
	}
	delete(m, "id")
	return m, nil
}

// fromDoc preenche uma entidade a partir de um documento lido do banco
func fromDoc(doc docstore.Document, v interface{}) error {
	data := make(map[string]interface{}, len(doc.Data)+1)
	for k, val := range doc.Data {
		data[k] = val
	}
	data["id"] = doc.ID

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("erro ao serializar documento %s: %w", doc.ID, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("erro ao decodificar documento %s: %w", doc.ID, err)
	}
	return nil
}

// nowISO é o timestamp de modificação gravado em toda escrita
func nowISO() string {
	return time.Now().Format(time.RFC3339)
}
