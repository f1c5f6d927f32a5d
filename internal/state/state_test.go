package state

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gfsilva/salao-gestor/internal/domain/cliente"
	"github.com/gfsilva/salao-gestor/internal/domain/salao"
)

func TestLoginSelecionaVisaoPorPapel(t *testing.T) {
	c := NewContainer(nil)

	c.Login(&User{ID: "master", Role: RoleMasterAdmin}, nil, true)
	if c.CurrentView() != ViewDashboard {
		t.Errorf("visão do master = %q, want %q", c.CurrentView(), ViewDashboard)
	}

	c.Login(&User{ID: "t1", Role: RoleTenantAdmin}, &salao.Salao{ID: "t1"}, false)
	if c.CurrentView() != ViewAgenda {
		t.Errorf("visão do salão = %q, want %q", c.CurrentView(), ViewAgenda)
	}
}

func TestLogoutLimpaSessaoECaches(t *testing.T) {
	c := NewContainer(nil)
	c.Login(&User{ID: "t1", Role: RoleTenantAdmin}, &salao.Salao{ID: "t1"}, false)
	c.AddCliente(&cliente.Cliente{ID: "c1", Nome: "ANA"})
	c.AddSalao(&salao.Salao{ID: "s1"})

	c.Logout()

	user, tenant, authenticated, expired, master := c.Session()
	if user != nil || tenant != nil || authenticated || expired || master {
		t.Errorf("sessão não foi limpa: %v %v %v %v %v", user, tenant, authenticated, expired, master)
	}
	if len(c.Clientes()) != 0 || len(c.Saloes()) != 0 {
		t.Error("caches de coleção sobreviveram ao logout")
	}
}

func TestSetExpired(t *testing.T) {
	c := NewContainer(nil)
	c.Login(&User{ID: "t1"}, &salao.Salao{ID: "t1"}, false)
	c.SetExpired(true)

	_, _, authenticated, expired, _ := c.Session()
	if !authenticated || !expired {
		t.Errorf("sessão expirada deveria seguir autenticada: authenticated=%v expired=%v", authenticated, expired)
	}
}

func TestUpdateClienteAplicaParcial(t *testing.T) {
	c := NewContainer(nil)
	c.AddCliente(&cliente.Cliente{ID: "c1", Nome: "ANA", Telefone: "1199"})

	c.UpdateCliente("c1", map[string]interface{}{"nome": "ANA SOUZA"})

	got := c.Clientes()[0]
	if got.Nome != "ANA SOUZA" {
		t.Errorf("Nome = %q, want ANA SOUZA", got.Nome)
	}
	if got.Telefone != "1199" {
		t.Errorf("campo fora do parcial foi alterado: Telefone = %q", got.Telefone)
	}
}

func TestUpdateClienteIdempotente(t *testing.T) {
	c := NewContainer(nil)
	c.AddCliente(&cliente.Cliente{ID: "c1", Nome: "ANA", PontosFidelidade: 3})

	parcial := map[string]interface{}{"nome": "ANA SOUZA", "pontosFidelidade": 5}
	c.UpdateCliente("c1", parcial)
	primeira := c.Clientes()[0]
	c.UpdateCliente("c1", parcial)
	segunda := c.Clientes()[0]

	if !reflect.DeepEqual(primeira, segunda) {
		t.Errorf("aplicar o mesmo parcial duas vezes divergiu: %+v != %+v", primeira, segunda)
	}
}

func TestUpdateClienteAusenteNoOp(t *testing.T) {
	c := NewContainer(nil)
	c.AddCliente(&cliente.Cliente{ID: "c1", Nome: "ANA"})

	c.UpdateCliente("inexistente", map[string]interface{}{"nome": "X"})

	lista := c.Clientes()
	if len(lista) != 1 || lista[0].Nome != "ANA" {
		t.Errorf("update de id ausente alterou o cache: %+v", lista)
	}
}

func TestDeleteCliente(t *testing.T) {
	c := NewContainer(nil)
	c.AddCliente(&cliente.Cliente{ID: "c1"})
	c.AddCliente(&cliente.Cliente{ID: "c2"})

	c.DeleteCliente("c1")
	if len(c.Clientes()) != 1 || c.Clientes()[0].ID != "c2" {
		t.Errorf("delete removeu o registro errado: %+v", c.Clientes())
	}

	c.DeleteCliente("inexistente") // silencioso
	if len(c.Clientes()) != 1 {
		t.Error("delete de id ausente alterou o cache")
	}
}

func TestLeiturasDevolvemCopias(t *testing.T) {
	c := NewContainer(nil)
	c.AddCliente(&cliente.Cliente{ID: "c1"})

	lista := c.Clientes()
	lista[0] = nil

	if c.Clientes()[0] == nil {
		t.Error("mutação no slice devolvido vazou para o cache")
	}
}

func TestFilePersisterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	p := NewFilePersister(path)

	c := NewContainer(p)
	c.Login(&User{ID: "t1", Nome: "Studio Bela", Role: RoleTenantAdmin}, &salao.Salao{ID: "t1", Nome: "Studio Bela"}, false)
	c.ToggleDarkMode()
	c.AddCliente(&cliente.Cliente{ID: "c1"})

	restaurado := NewContainer(NewFilePersister(path))
	user, tenant, authenticated, _, master := restaurado.Session()
	if user == nil || user.ID != "t1" || tenant == nil || tenant.ID != "t1" {
		t.Fatalf("sessão não foi restaurada: user=%+v tenant=%+v", user, tenant)
	}
	if !authenticated || master {
		t.Errorf("flags restauradas erradas: authenticated=%v master=%v", authenticated, master)
	}
	if !restaurado.DarkMode() {
		t.Error("tema não foi restaurado")
	}
	if len(restaurado.Clientes()) != 0 {
		t.Error("cache de coleção não deveria ser persistido")
	}
}

func TestFilePersisterArquivoAusente(t *testing.T) {
	p := NewFilePersister(filepath.Join(t.TempDir(), "nao-existe.json"))
	loaded, err := p.Load()
	if err != nil || loaded != nil {
		t.Errorf("Load() de arquivo ausente = (%v, %v), want (nil, nil)", loaded, err)
	}
}
