// Package state mantém o estado do processo: sessão autenticada, contexto
// do tenant, navegação e as cópias locais de cada coleção remota. O
// container nunca fala com o banco: é um cache com redutores explícitos,
// alimentado pela camada de sincronização ou, de forma otimista, pela
// camada de apresentação.
package state

import (
	"encoding/json"
	"sync"

	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/cliente"
	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	"github.com/gfsilva/salao-gestor/internal/domain/produto"
	"github.com/gfsilva/salao-gestor/internal/domain/profissional"
	"github.com/gfsilva/salao-gestor/internal/domain/salao"
	"github.com/gfsilva/salao-gestor/internal/domain/servico"
)

// Papéis de sessão
const (
	RoleMasterAdmin = "master_admin"
	RoleTenantAdmin = "tenant_admin"
)

// Visões iniciais por papel
const (
	ViewDashboard = "dashboard"
	ViewAgenda    = "agenda"
)

// User é a identidade autenticada da sessão
type User struct {
	ID    string `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}

// Container é o detentor único do estado do processo. Todos os acessos são
// protegidos por mutex; as leituras devolvem cópias dos slices.
type Container struct {
	mu sync.RWMutex

	// Sessão
	user            *User
	tenant          *salao.Salao
	isAuthenticated bool
	isExpired       bool
	isMaster        bool

	// Navegação e UI
	currentView string
	sidebarOpen bool
	darkMode    bool
	loading     bool

	// Coleções em cache
	saloes        []*salao.Salao
	clientes      []*cliente.Cliente
	profissionais []*profissional.Profissional
	servicos      []*servico.Servico
	produtos      []*produto.Produto
	agendamentos  []*agendamento.Agendamento
	financeiro    []*financeiro.Lancamento

	persister Persister
}

// NewContainer cria um container vazio. O persister é opcional; quando
// presente, a identidade da sessão e o tema sobrevivem a reinícios.
func NewContainer(p Persister) *Container {
	c := &Container{
		currentView: ViewDashboard,
		sidebarOpen: true,
		persister:   p,
	}
	c.restore()
	return c
}

// ===== Sessão =====

// Login registra a sessão autenticada e seleciona a visão inicial pelo
// papel. Não tem efeito algum sobre o banco remoto.
func (c *Container) Login(user *User, tenant *salao.Salao, isMaster bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = user
	c.tenant = tenant
	c.isAuthenticated = true
	c.isExpired = false
	c.isMaster = isMaster
	if isMaster {
		c.currentView = ViewDashboard
	} else {
		c.currentView = ViewAgenda
	}
	c.persist()
}

// Logout limpa a sessão e todos os caches locais; os dados remotos não
// são afetados.
func (c *Container) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.tenant = nil
	c.isAuthenticated = false
	c.isExpired = false
	c.isMaster = false
	c.currentView = ViewDashboard
	c.saloes = nil
	c.clientes = nil
	c.profissionais = nil
	c.servicos = nil
	c.produtos = nil
	c.agendamentos = nil
	c.financeiro = nil
	c.persist()
}

// SetExpired marca a sessão do tenant como expirada
func (c *Container) SetExpired(expired bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.isExpired = expired
}

// SetTenant substitui o tenant da sessão (após troca de senha, por exemplo)
func (c *Container) SetTenant(t *salao.Salao) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tenant = t
	c.persist()
}

// TenantID devolve o id do tenant da sessão corrente, vazio quando a
// sessão não é de tenant
func (c *Container) TenantID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.tenant == nil {
		return ""
	}
	return c.tenant.ID
}

// Session devolve a identidade da sessão atual
func (c *Container) Session() (user *User, tenant *salao.Salao, isAuthenticated, isExpired, isMaster bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user, c.tenant, c.isAuthenticated, c.isExpired, c.isMaster
}

// ===== Navegação e UI =====

// SetCurrentView muda a visão de navegação corrente
func (c *Container) SetCurrentView(view string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentView = view
}

// CurrentView devolve a visão corrente
func (c *Container) CurrentView() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentView
}

// ToggleSidebar alterna a barra lateral
func (c *Container) ToggleSidebar() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sidebarOpen = !c.sidebarOpen
}

// SetLoading marca uma operação em andamento
func (c *Container) SetLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = loading
}

// ToggleDarkMode alterna o tema; a preferência é persistida
func (c *Container) ToggleDarkMode() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.darkMode = !c.darkMode
	c.persist()
}

// DarkMode devolve a preferência de tema
func (c *Container) DarkMode() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.darkMode
}

// ===== Redutores genéricos =====

// mergePartial aplica um registro parcial sobre a entidade, casando pelos
// nomes de campo do documento. Aplicar o mesmo parcial duas vezes produz o
// mesmo resultado.
func mergePartial[T any](entity *T, partial map[string]interface{}) *T {
	raw, err := json.Marshal(entity)
	if err != nil {
		return entity
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return entity
	}
	for k, v := range partial {
		m[k] = v
	}
	merged, err := json.Marshal(m)
	if err != nil {
		return entity
	}
	out := new(T)
	if err := json.Unmarshal(merged, out); err != nil {
		return entity
	}
	return out
}

func updateByID[T any](list []*T, id string, getID func(*T) string, partial map[string]interface{}) []*T {
	for i, item := range list {
		if getID(item) == id {
			list[i] = mergePartial(item, partial)
			return list
		}
	}
	return list // id ausente: no-op
}

func deleteByID[T any](list []*T, id string, getID func(*T) string) []*T {
	for i, item := range list {
		if getID(item) == id {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

func snapshot[T any](list []*T) []*T {
	out := make([]*T, len(list))
	copy(out, list)
	return out
}

// ===== Salões (master) =====

func (c *Container) SetSaloes(list []*salao.Salao) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saloes = list
}

func (c *Container) AddSalao(s *salao.Salao) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saloes = append(c.saloes, s)
}

func (c *Container) UpdateSalao(id string, partial map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saloes = updateByID(c.saloes, id, func(s *salao.Salao) string { return s.ID }, partial)
}

func (c *Container) DeleteSalao(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.saloes = deleteByID(c.saloes, id, func(s *salao.Salao) string { return s.ID })
}

func (c *Container) Saloes() []*salao.Salao {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.saloes)
}

// ===== Clientes =====

func (c *Container) SetClientes(list []*cliente.Cliente) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientes = list
}

func (c *Container) AddCliente(item *cliente.Cliente) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientes = append(c.clientes, item)
}

func (c *Container) UpdateCliente(id string, partial map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientes = updateByID(c.clientes, id, func(x *cliente.Cliente) string { return x.ID }, partial)
}

func (c *Container) DeleteCliente(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clientes = deleteByID(c.clientes, id, func(x *cliente.Cliente) string { return x.ID })
}

func (c *Container) Clientes() []*cliente.Cliente {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.clientes)
}

// ===== Profissionais =====

func (c *Container) SetProfissionais(list []*profissional.Profissional) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profissionais = list
}

func (c *Container) AddProfissional(item *profissional.Profissional) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profissionais = append(c.profissionais, item)
}

func (c *Container) UpdateProfissional(id string, partial map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profissionais = updateByID(c.profissionais, id, func(x *profissional.Profissional) string { return x.ID }, partial)
}

func (c *Container) DeleteProfissional(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profissionais = deleteByID(c.profissionais, id, func(x *profissional.Profissional) string { return x.ID })
}

func (c *Container) Profissionais() []*profissional.Profissional {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.profissionais)
}

// ===== Serviços =====

func (c *Container) SetServicos(list []*servico.Servico) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.servicos = list
}

func (c *Container) AddServico(item *servico.Servico) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.servicos = append(c.servicos, item)
}

func (c *Container) UpdateServico(id string, partial map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.servicos = updateByID(c.servicos, id, func(x *servico.Servico) string { return x.ID }, partial)
}

func (c *Container) DeleteServico(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.servicos = deleteByID(c.servicos, id, func(x *servico.Servico) string { return x.ID })
}

func (c *Container) Servicos() []*servico.Servico {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.servicos)
}

// ===== Produtos =====

func (c *Container) SetProdutos(list []*produto.Produto) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.produtos = list
}

func (c *Container) AddProduto(item *produto.Produto) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.produtos = append(c.produtos, item)
}

func (c *Container) UpdateProduto(id string, partial map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.produtos = updateByID(c.produtos, id, func(x *produto.Produto) string { return x.ID }, partial)
}

func (c *Container) DeleteProduto(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.produtos = deleteByID(c.produtos, id, func(x *produto.Produto) string { return x.ID })
}

func (c *Container) Produtos() []*produto.Produto {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.produtos)
}

// ===== Agendamentos =====

func (c *Container) SetAgendamentos(list []*agendamento.Agendamento) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agendamentos = list
}

func (c *Container) AddAgendamento(item *agendamento.Agendamento) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agendamentos = append(c.agendamentos, item)
}

func (c *Container) UpdateAgendamento(id string, partial map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agendamentos = updateByID(c.agendamentos, id, func(x *agendamento.Agendamento) string { return x.ID }, partial)
}

func (c *Container) DeleteAgendamento(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.agendamentos = deleteByID(c.agendamentos, id, func(x *agendamento.Agendamento) string { return x.ID })
}

func (c *Container) Agendamentos() []*agendamento.Agendamento {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.agendamentos)
}

// ===== Financeiro =====

func (c *Container) SetFinanceiro(list []*financeiro.Lancamento) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.financeiro = list
}

func (c *Container) AddFinanceiro(item *financeiro.Lancamento) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.financeiro = append(c.financeiro, item)
}

func (c *Container) UpdateFinanceiro(id string, partial map[string]interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.financeiro = updateByID(c.financeiro, id, func(x *financeiro.Lancamento) string { return x.ID }, partial)
}

func (c *Container) DeleteFinanceiro(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.financeiro = deleteByID(c.financeiro, id, func(x *financeiro.Lancamento) string { return x.ID })
}

func (c *Container) Financeiro() []*financeiro.Lancamento {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return snapshot(c.financeiro)
}
