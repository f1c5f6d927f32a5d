package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/gfsilva/salao-gestor/internal/domain/salao"
)

// Persisted é o subconjunto do estado que sobrevive a reinícios do
// processo: identidade da sessão, referência ao tenant ativo e tema. Os
// caches de coleção são sempre voláteis e repopulados pela sincronização.
type Persisted struct {
	User            *User        `json:"user"`
	Tenant          *salao.Salao `json:"tenant"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	IsMaster        bool         `json:"isMaster"`
	DarkMode        bool         `json:"darkMode"`
}

// Persister grava e recupera o subconjunto persistido do estado
type Persister interface {
	Save(p *Persisted) error
	Load() (*Persisted, error)
}

// FilePersister guarda o estado em um arquivo JSON local
type FilePersister struct {
	path string
}

// NewFilePersister cria um persister no caminho informado
func NewFilePersister(path string) *FilePersister {
	return &FilePersister{path: path}
}

// Save grava o estado de forma atômica (arquivo temporário + rename)
func (f *FilePersister) Save(p *Persisted) error {
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Load recupera o estado; arquivo ausente não é erro
func (f *FilePersister) Load() (*Persisted, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var p Persisted
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// persist grava o subconjunto persistido; falhas são silenciosas, como o
// armazenamento local do navegador. Chamador segura o lock.
func (c *Container) persist() {
	if c.persister == nil {
		return
	}
	_ = c.persister.Save(&Persisted{
		User:            c.user,
		Tenant:          c.tenant,
		IsAuthenticated: c.isAuthenticated,
		IsMaster:        c.isMaster,
		DarkMode:        c.darkMode,
	})
}

// restore recarrega a sessão persistida na criação do container
func (c *Container) restore() {
	if c.persister == nil {
		return
	}
	p, err := c.persister.Load()
	if err != nil || p == nil {
		return
	}
	c.user = p.User
	c.tenant = p.Tenant
	c.isAuthenticated = p.IsAuthenticated
	c.isMaster = p.IsMaster
	c.darkMode = p.DarkMode
}
