package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gfsilva/salao-gestor/internal/adapter/api/controller"
	"github.com/gfsilva/salao-gestor/internal/adapter/api/route"
	"github.com/gfsilva/salao-gestor/internal/adapter/docstore"
	"github.com/gfsilva/salao-gestor/internal/adapter/repository"
	"github.com/gfsilva/salao-gestor/internal/auth"
	"github.com/gfsilva/salao-gestor/internal/pdv"
	"github.com/gfsilva/salao-gestor/internal/state"
	syncengine "github.com/gfsilva/salao-gestor/internal/sync"
	pkgauth "github.com/gfsilva/salao-gestor/pkg/auth"
	"github.com/gfsilva/salao-gestor/pkg/logger"
	pkgtenant "github.com/gfsilva/salao-gestor/pkg/tenant"
	"github.com/gfsilva/salao-gestor/pkg/ws"
)

// App representa a aplicação e suas dependências
type App struct {
	router *gin.Engine
	store  docstore.Store
	engine *syncengine.Engine
	logger logger.Logger
	cancel context.CancelFunc
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Banco de documentos: Firestore quando configurado, memória como
	// alternativa de desenvolvimento
	var store docstore.Store
	if os.Getenv("FIREBASE_PROJECT_ID") != "" {
		fs, err := docstore.NewFirestoreStore(context.Background(), docstore.NewFirestoreConfigFromEnv())
		if err != nil {
			return nil, err
		}
		store = fs
	} else {
		log.Warn("FIREBASE_PROJECT_ID não configurado, usando store em memória")
		store = docstore.NewMemoryStore()
	}

	// Estado do processo, com identidade de sessão persistida
	statePath := envOr("STATE_FILE", "data/session.json")
	container := state.NewContainer(state.NewFilePersister(statePath))

	// Motor de sincronização
	ctx, cancel := context.WithCancel(context.Background())
	engine := syncengine.NewEngine(store, container, log)
	engine.Start(ctx)

	// Repositórios
	salaoRepo := repository.NewSalaoRepository(store)
	clienteRepo := repository.NewClienteRepository(store)
	profissionalRepo := repository.NewProfissionalRepository(store)
	servicoRepo := repository.NewServicoRepository(store)
	produtoRepo := repository.NewProdutoRepository(store)
	agendamentoRepo := repository.NewAgendamentoRepository(store)
	financeiroRepo := repository.NewFinanceiroRepository(store)

	tenantValidator := repository.NewTenantValidator(salaoRepo)

	// Autenticação
	jwtService, err := pkgauth.NewJWTService()
	if err != nil {
		cancel()
		return nil, err
	}
	override := auth.NewOverrideStore(envOr("MASTER_SENHA_FILE", "data/master-senha.json"))
	authService := auth.NewService(salaoRepo, container, engine, auth.MasterConfigFromEnv(), override, log)

	// Ponto de venda
	finalizador := pdv.NewFinalizador(financeiroRepo, produtoRepo, log)

	// Controllers
	authController := controller.NewAuthController(authService, jwtService, log)
	salaoController := controller.NewSalaoController(salaoRepo, container, log)
	clienteController := controller.NewClienteController(clienteRepo, container, log)
	profissionalController := controller.NewProfissionalController(profissionalRepo, container, log)
	servicoController := controller.NewServicoController(servicoRepo, container, log)
	produtoController := controller.NewProdutoController(produtoRepo, container, log)
	agendamentoController := controller.NewAgendamentoController(agendamentoRepo, servicoRepo, container, log)
	financeiroController := controller.NewFinanceiroController(financeiroRepo, container, log)
	pdvController := controller.NewPDVController(finalizador, servicoRepo, produtoRepo, container, log)
	relatorioController := controller.NewRelatorioController(financeiroRepo, profissionalRepo, agendamentoRepo, container, log)
	dashboardController := controller.NewDashboardController(agendamentoRepo, financeiroRepo, clienteRepo, profissionalRepo, produtoRepo, container, engine, log)

	wsHandler := ws.NewHandler(engine, log, allowedOrigins())

	// Router
	router := gin.Default()
	router.Use(cors.New(corsConfig()))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/ws/events", gin.WrapH(wsHandler))

	api := router.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": "1.0.0"})
	})

	authenticated := api.Group("")
	authenticated.Use(pkgauth.JWTAuthMiddleware(jwtService))

	master := authenticated.Group("")
	master.Use(pkgauth.RoleAuthMiddleware(state.RoleMasterAdmin))

	tenantScoped := authenticated.Group("")
	tenantScoped.Use(pkgtenant.ExpiredGateMiddleware(), pkgtenant.TenantMiddleware(tenantValidator))

	route.RegisterAuthRoutes(api, authenticated, authController)
	route.RegisterSalaoRoutes(master, salaoController)
	route.RegisterClienteRoutes(tenantScoped, clienteController)
	route.RegisterProfissionalRoutes(tenantScoped, profissionalController)
	route.RegisterServicoRoutes(tenantScoped, servicoController)
	route.RegisterProdutoRoutes(tenantScoped, produtoController)
	route.RegisterAgendamentoRoutes(tenantScoped, agendamentoController)
	route.RegisterFinanceiroRoutes(tenantScoped, financeiroController)
	route.RegisterPDVRoutes(tenantScoped, pdvController)
	route.RegisterRelatorioRoutes(tenantScoped, relatorioController)
	route.RegisterDashboardRoutes(api, tenantScoped, dashboardController)

	return &App{
		router: router,
		store:  store,
		engine: engine,
		logger: log,
		cancel: cancel,
	}, nil
}

// Start sobe o servidor HTTP e aguarda o sinal de encerramento
func (a *App) Start() error {
	srv := &http.Server{
		Addr:    ":" + envOr("PORT", "8080"),
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Servidor iniciado", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.Close()
		return err
	case sig := <-quit:
		a.logger.Info("Encerrando", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("Erro no shutdown do servidor", "error", err)
	}

	a.Close()
	return nil
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	a.engine.Unbind()
	a.cancel()
	if err := a.store.Close(); err != nil {
		a.logger.Error("Erro ao fechar o store", "error", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func allowedOrigins() []string {
	raw := os.Getenv("CORS_ALLOWED_ORIGINS")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	if origins := allowedOrigins(); len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
