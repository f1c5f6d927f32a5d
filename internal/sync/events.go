package sync

// Kind é o tipo de mudança observada em uma coleção
type Kind string

const (
	// KindUpserted indica documento criado ou alterado
	KindUpserted Kind = "upserted"
	// KindDeleted indica documento removido
	KindDeleted Kind = "deleted"
)

// Event é uma mudança tipada emitida pela camada de sincronização. Os
// snapshots do banco chegam como coleções completas; o motor os reduz a
// eventos por documento, entregues na ordem de emissão de cada coleção.
// Entre coleções distintas não há garantia de ordem.
type Event struct {
	Kind     Kind                   `json:"kind"`
	Colecao  string                 `json:"colecao"`
	ID       string                 `json:"id"`
	Registro map[string]interface{} `json:"registro,omitempty"`
}
