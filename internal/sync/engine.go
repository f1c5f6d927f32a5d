// Package sync mantém o estado em memória espelhado com o banco de
// documentos. O motor assina as coleções do escopo da sessão (painel
// master ou um salão específico), reduz cada snapshot a eventos tipados
// e aplica os eventos ao contêiner de estado. Erros de assinatura nunca
// derrubam o processo: o motor marca a conexão como offline e segue
// aguardando o próximo snapshot.
package sync

import (
	"context"
	"encoding/json"
	"reflect"
	gosync "sync"
	"time"

	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/adapter/repository"
	"github.com/gfsilva/salao-gestor/internal/domain/agendamento"
	"github.com/gfsilva/salao-gestor/internal/domain/cliente"
	"github.com/gfsilva/salao-gestor/internal/domain/financeiro"
	"github.com/gfsilva/salao-gestor/internal/domain/produto"
	"github.com/gfsilva/salao-gestor/internal/domain/profissional"
	"github.com/gfsilva/salao-gestor/internal/domain/salao"
	"github.com/gfsilva/salao-gestor/internal/domain/servico"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
	"github.com/gfsilva/salao-gestor/pkg/metrics"
)

// intervalo entre sondagens de conectividade
const probeInterval = 30 * time.Second

// tamanho do buffer do canal de eventos e dos canais de ouvintes
const eventBuffer = 256

// binding descreve a assinatura de uma coleção do escopo de um salão
type binding struct {
	col     string
	orderBy string
	desc    bool
}

var tenantBindings = []binding{
	{repository.ColClientes, "nome", false},
	{repository.ColProdutos, "nome", false},
	{repository.ColProfissionais, "nome", false},
	{repository.ColServicos, "nome", false},
	{repository.ColAgendamentos, "data", true},
	{repository.ColFinanceiro, "data", true},
}

// Engine é o motor de sincronização
type Engine struct {
	store  docstore.Store
	state  *state.Container
	logger logger.Logger

	events chan Event

	mu        gosync.Mutex
	unsubs    []docstore.UnsubscribeFunc
	prev      map[string]map[string]map[string]interface{}
	online    bool
	listeners map[int]chan Event
	nextID    int
}

// NewEngine cria um motor de sincronização sobre o store informado
func NewEngine(store docstore.Store, st *state.Container, log logger.Logger) *Engine {
	return &Engine{
		store:     store,
		state:     st,
		logger:    log,
		events:    make(chan Event, eventBuffer),
		prev:      make(map[string]map[string]map[string]interface{}),
		listeners: make(map[int]chan Event),
	}
}

// Start inicia o redutor de eventos e a sondagem de conectividade. O motor
// encerra quando o contexto for cancelado.
func (e *Engine) Start(ctx context.Context) {
	go e.reduceLoop(ctx)
	go e.probeLoop(ctx)
}

// BindMaster assina a coleção de salões, usada pelo painel do administrador
// master. Assinaturas anteriores são canceladas antes.
func (e *Engine) BindMaster() {
	e.Unbind()
	e.bind(repository.ColSaloes, docstore.Query{
		Path:    repository.ColSaloes,
		OrderBy: "createdAt",
		Desc:    true,
	})
}

// BindTenant assina as seis coleções do salão informado. Assinaturas
// anteriores são canceladas antes.
func (e *Engine) BindTenant(tenantID string) {
	e.Unbind()
	for _, b := range tenantBindings {
		e.bind(b.col, docstore.Query{
			Path:    repository.TenantCol(tenantID, b.col),
			OrderBy: b.orderBy,
			Desc:    b.desc,
		})
	}
}

// Unbind cancela todas as assinaturas ativas e descarta os snapshots
// anteriores. O cache de estado não é tocado aqui; quem limpa é o logout.
func (e *Engine) Unbind() {
	e.mu.Lock()
	unsubs := e.unsubs
	e.unsubs = nil
	e.prev = make(map[string]map[string]map[string]interface{})
	e.mu.Unlock()

	for _, u := range unsubs {
		u()
	}
}

// Online informa se o último contato com o banco teve sucesso
func (e *Engine) Online() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.online
}

// Listen registra um ouvinte do fluxo de eventos. Eventos são entregues
// após a aplicação ao estado; se o ouvinte não acompanhar o ritmo, eventos
// são descartados. A função retornada cancela o registro.
func (e *Engine) Listen() (<-chan Event, func()) {
	ch := make(chan Event, eventBuffer)

	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners[id] = ch
	e.mu.Unlock()

	return ch, func() {
		e.mu.Lock()
		if _, ok := e.listeners[id]; ok {
			delete(e.listeners, id)
			close(ch)
		}
		e.mu.Unlock()
	}
}

func (e *Engine) bind(col string, q docstore.Query) {
	unsub, err := e.store.Subscribe(q,
		func(docs []docstore.Document) { e.onSnapshot(col, docs) },
		func(err error) { e.onError(col, err) },
	)
	if err != nil {
		e.onError(col, err)
		return
	}

	e.mu.Lock()
	e.unsubs = append(e.unsubs, unsub)
	e.mu.Unlock()
}

// onSnapshot compara o snapshot recebido com o anterior e reduz a
// diferença a eventos por documento. Documentos inalterados não geram
// evento; na primeira entrega todos chegam como upsert.
func (e *Engine) onSnapshot(col string, docs []docstore.Document) {
	e.mu.Lock()
	prev := e.prev[col]
	cur := make(map[string]map[string]interface{}, len(docs))
	events := make([]Event, 0, len(docs))

	for _, d := range docs {
		cur[d.ID] = d.Data
		if old, ok := prev[d.ID]; ok && reflect.DeepEqual(old, d.Data) {
			continue
		}
		events = append(events, Event{Kind: KindUpserted, Colecao: col, ID: d.ID, Registro: d.Data})
	}
	for id := range prev {
		if _, ok := cur[id]; !ok {
			events = append(events, Event{Kind: KindDeleted, Colecao: col, ID: id})
		}
	}

	e.prev[col] = cur
	e.setOnlineLocked(true)
	e.mu.Unlock()

	metrics.SnapshotsTotal.WithLabelValues(col).Inc()

	for _, ev := range events {
		e.events <- ev
	}
}

func (e *Engine) onError(col string, err error) {
	e.mu.Lock()
	e.setOnlineLocked(false)
	e.mu.Unlock()

	metrics.SyncErrorsTotal.WithLabelValues(col).Inc()
	e.logger.Error("Falha na assinatura da coleção", "colecao", col, "error", err)
}

// setOnlineLocked registra transições de conectividade; exige e.mu
func (e *Engine) setOnlineLocked(online bool) {
	if e.online == online {
		return
	}
	e.online = online
	if online {
		metrics.Online.Set(1)
		e.logger.Info("Conexão com o banco restabelecida")
	} else {
		metrics.Online.Set(0)
		e.logger.Warn("Conexão com o banco indisponível")
	}
}

// reduceLoop consome o canal de eventos, aplica cada um ao contêiner de
// estado e repassa aos ouvintes registrados
func (e *Engine) reduceLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-e.events:
			e.apply(ev)
			e.fanout(ev)
		}
	}
}

// probeLoop sonda o banco periodicamente para detectar retorno de
// conectividade mesmo sem assinaturas ativas
func (e *Engine) probeLoop(ctx context.Context) {
	ticker := time.NewTicker(probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			_, err := e.store.GetOnce(probeCtx, docstore.Query{Path: repository.ColSaloes})
			cancel()

			e.mu.Lock()
			e.setOnlineLocked(err == nil)
			e.mu.Unlock()
		}
	}
}

func (e *Engine) fanout(ev Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, ch := range e.listeners {
		select {
		case ch <- ev:
		default:
		}
	}
}

// apply encaminha o evento ao contêiner de estado. Registros que não
// decodificam para a entidade da coleção são registrados e descartados.
func (e *Engine) apply(ev Event) {
	switch ev.Colecao {
	case repository.ColSaloes:
		applyEvent(e, ev, e.state.Saloes, salaoID, e.state.AddSalao, e.state.UpdateSalao, e.state.DeleteSalao)
	case repository.ColClientes:
		applyEvent(e, ev, e.state.Clientes, clienteID, e.state.AddCliente, e.state.UpdateCliente, e.state.DeleteCliente)
	case repository.ColProfissionais:
		applyEvent(e, ev, e.state.Profissionais, profissionalID, e.state.AddProfissional, e.state.UpdateProfissional, e.state.DeleteProfissional)
	case repository.ColServicos:
		applyEvent(e, ev, e.state.Servicos, servicoID, e.state.AddServico, e.state.UpdateServico, e.state.DeleteServico)
	case repository.ColProdutos:
		applyEvent(e, ev, e.state.Produtos, produtoID, e.state.AddProduto, e.state.UpdateProduto, e.state.DeleteProduto)
	case repository.ColAgendamentos:
		applyEvent(e, ev, e.state.Agendamentos, agendamentoID, e.state.AddAgendamento, e.state.UpdateAgendamento, e.state.DeleteAgendamento)
	case repository.ColFinanceiro:
		applyEvent(e, ev, e.state.Financeiro, financeiroID, e.state.AddFinanceiro, e.state.UpdateFinanceiro, e.state.DeleteFinanceiro)
	default:
		e.logger.Warn("Evento de coleção desconhecida descartado", "colecao", ev.Colecao)
	}
}

func salaoID(s *salao.Salao) string { return s.ID }

func clienteID(c *cliente.Cliente) string { return c.ID }

func profissionalID(p *profissional.Profissional) string { return p.ID }

func servicoID(s *servico.Servico) string { return s.ID }

func produtoID(p *produto.Produto) string { return p.ID }

func agendamentoID(a *agendamento.Agendamento) string { return a.ID }

func financeiroID(l *financeiro.Lancamento) string { return l.ID }

// applyEvent resolve upsert contra o cache: registros já presentes
// recebem o merge parcial, registros novos entram decodificados por
// inteiro. Deleções de registros ausentes são silenciosas.
func applyEvent[T any](
	e *Engine,
	ev Event,
	list func() []*T,
	id func(*T) string,
	add func(*T),
	update func(string, map[string]interface{}),
	remove func(string),
) {
	if ev.Kind == KindDeleted {
		remove(ev.ID)
		return
	}

	for _, item := range list() {
		if id(item) == ev.ID {
			update(ev.ID, ev.Registro)
			return
		}
	}

	item := new(T)
	if err := decodeRegistro(ev.ID, ev.Registro, item); err != nil {
		e.logger.Error("Registro inválido descartado", "colecao", ev.Colecao, "id", ev.ID, "error", err)
		return
	}
	add(item)
}

// decodeRegistro injeta o id no registro e o decodifica para a entidade
func decodeRegistro(id string, registro map[string]interface{}, out interface{}) error {
	m := make(map[string]interface{}, len(registro)+1)
	for k, v := range registro {
		m[k] = v
	}
	m["id"] = id

	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
