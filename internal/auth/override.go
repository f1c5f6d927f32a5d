package auth

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// OverrideStore guarda a senha master trocada em tempo de execução. O
// arquivo sobrevive a reinícios e prevalece sobre a senha configurada.
type OverrideStore struct {
	mu   sync.Mutex
	path string
}

// NewOverrideStore cria o store apontando para o arquivo informado
func NewOverrideStore(path string) *OverrideStore {
	return &OverrideStore{path: path}
}

type overrideFile struct {
	Senha string `json:"senha"`
}

// Load lê o override, se existir
func (o *OverrideStore) Load() (string, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	raw, err := os.ReadFile(o.path)
	if err != nil {
		return "", false
	}

	var f overrideFile
	if err := json.Unmarshal(raw, &f); err != nil || f.Senha == "" {
		return "", false
	}
	return f.Senha, true
}

// Save grava o override de forma atômica
func (o *OverrideStore) Save(senha string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	raw, err := json.Marshal(overrideFile{Senha: senha})
	if err != nil {
		return err
	}

	tmp := o.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(o.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, o.path)
}
