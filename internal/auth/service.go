// Package auth implementa a resolução de sessão: autenticação do
// administrador master, autenticação de salões por usuário ou e-mail,
// expiração de plano e troca de senha. As transições de sessão acionam
// a (re)assinatura das coleções via Binder.
package auth

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gfsilva/salao-gestor/internal/domain/salao"
	"github.com/gfsilva/salao-gestor/internal/state"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

var (
	ErrCredenciaisInvalidas = errors.New("usuário ou senha inválidos")
	ErrSalaoInativo         = errors.New("salão inativo, entre em contato com o administrador")
	ErrSenhaAtualIncorreta  = errors.New("senha atual incorreta")
	ErrSemSessao            = errors.New("nenhuma sessão autenticada")
)

// MasterConfig é a identidade do administrador master. A senha aqui é a
// padrão; uma troca de senha grava um override local que passa a valer.
type MasterConfig struct {
	Usuario string
	Email   string
	Senha   string
}

// MasterConfigFromEnv carrega a identidade master do ambiente, com os
// valores originais como padrão
func MasterConfigFromEnv() MasterConfig {
	cfg := MasterConfig{
		Usuario: "admin",
		Email:   "admin@example.com",
		Senha:   "123",
	}
	if v := os.Getenv("MASTER_USUARIO"); v != "" {
		cfg.Usuario = v
	}
	if v := os.Getenv("MASTER_EMAIL"); v != "" {
		cfg.Email = v
	}
	if v := os.Getenv("MASTER_SENHA"); v != "" {
		cfg.Senha = v
	}
	return cfg
}

// Binder liga e desliga as assinaturas de coleções conforme o escopo da
// sessão. Implementado pelo motor de sincronização.
type Binder interface {
	BindMaster()
	BindTenant(tenantID string)
	Unbind()
}

// Service resolve sessões contra o cadastro de salões
type Service struct {
	saloes   salao.Repository
	state    *state.Container
	binder   Binder
	master   MasterConfig
	override *OverrideStore
	logger   logger.Logger
}

// NewService cria o serviço de autenticação
func NewService(saloes salao.Repository, st *state.Container, binder Binder, master MasterConfig, override *OverrideStore, log logger.Logger) *Service {
	return &Service{
		saloes:   saloes,
		state:    st,
		binder:   binder,
		master:   master,
		override: override,
		logger:   log,
	}
}

// Result descreve a sessão resultante de um login
type Result struct {
	User     *state.User
	Tenant   *salao.Salao
	IsMaster bool
	Expirado bool
}

// Login autentica pela identidade informada. Primeiro compara com o
// master (usuário ou e-mail); depois procura um salão pelo campo usuario
// e, em seguida, pelo e-mail. Salão com plano vencido autentica marcado
// como expirado; salão inativo não autentica.
func (s *Service) Login(ctx context.Context, identidade, senha string) (*Result, error) {
	identidade = strings.TrimSpace(identidade)

	if s.isMaster(identidade, senha) {
		user := &state.User{
			ID:    "master",
			Nome:  "Administrador",
			Email: s.master.Email,
			Role:  state.RoleMasterAdmin,
		}
		s.state.Login(user, nil, true)
		s.binder.BindMaster()
		s.logger.Info("Login master realizado")
		return &Result{User: user, IsMaster: true}, nil
	}

	t, err := s.lookup(ctx, identidade)
	if err != nil {
		return nil, err
	}
	if !t.CheckSenha(senha) {
		return nil, ErrCredenciaisInvalidas
	}

	user := &state.User{
		ID:    t.ID,
		Nome:  t.Nome,
		Email: t.Email,
		Role:  state.RoleTenantAdmin,
	}

	if t.Expirado(time.Now()) {
		s.state.Login(user, t, false)
		s.state.SetExpired(true)
		s.binder.Unbind()
		s.logger.Warn("Login de salão com plano vencido", "salao_id", t.ID)
		return &Result{User: user, Tenant: t, Expirado: true}, nil
	}

	if !t.Ativo {
		return nil, ErrSalaoInativo
	}

	s.state.Login(user, t, false)
	s.binder.BindTenant(t.ID)
	s.logger.Info("Login de salão realizado", "salao_id", t.ID)
	return &Result{User: user, Tenant: t}, nil
}

// Logout limpa a sessão, os caches e cancela as assinaturas
func (s *Service) Logout() {
	s.binder.Unbind()
	s.state.Logout()
}

// TrocarSenha troca a senha da sessão atual. Para o master, grava um
// override local; para um salão, atualiza o documento remoto e o tenant
// da sessão.
func (s *Service) TrocarSenha(ctx context.Context, senhaAtual, novaSenha string) error {
	user, tenant, authenticated, _, isMaster := s.state.Session()
	if !authenticated || user == nil {
		return ErrSemSessao
	}

	if isMaster {
		if senhaAtual != s.masterSenha() {
			return ErrSenhaAtualIncorreta
		}
		if err := s.override.Save(novaSenha); err != nil {
			return err
		}
		s.logger.Info("Senha master alterada")
		return nil
	}

	if tenant == nil {
		return ErrSemSessao
	}
	if !tenant.CheckSenha(senhaAtual) {
		return ErrSenhaAtualIncorreta
	}
	if err := s.saloes.UpdateSenha(ctx, tenant.ID, novaSenha); err != nil {
		return err
	}

	atualizado := *tenant
	atualizado.Senha = novaSenha
	s.state.SetTenant(&atualizado)
	s.logger.Info("Senha do salão alterada", "salao_id", tenant.ID)
	return nil
}

func (s *Service) isMaster(identidade, senha string) bool {
	if identidade != s.master.Usuario && !strings.EqualFold(identidade, s.master.Email) {
		return false
	}
	return senha == s.masterSenha()
}

// masterSenha devolve a senha master vigente, com o override local
// prevalecendo sobre a configuração
func (s *Service) masterSenha() string {
	if s.override != nil {
		if senha, ok := s.override.Load(); ok {
			return senha
		}
	}
	return s.master.Senha
}

// lookup procura o salão primeiro pelo usuário, depois pelo e-mail
func (s *Service) lookup(ctx context.Context, identidade string) (*salao.Salao, error) {
	t, err := s.saloes.FindByUsuario(ctx, identidade)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, salao.ErrSalaoNotFound) {
		return nil, err
	}

	t, err = s.saloes.FindByEmail(ctx, strings.ToLower(identidade))
	if err == nil {
		return t, nil
	}
	if errors.Is(err, salao.ErrSalaoNotFound) {
		return nil, ErrCredenciaisInvalidas
	}
	return nil, err
}
