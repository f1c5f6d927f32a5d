// Package ws expõe o fluxo de eventos de sincronização por WebSocket.
// Cada conexão recebe os eventos tipados conforme o motor os aplica ao
// estado; conexões lentas perdem eventos em vez de represar o motor.
package ws

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	syncengine "github.com/gfsilva/salao-gestor/internal/sync"
	"github.com/gfsilva/salao-gestor/pkg/logger"
)

const pingInterval = 15 * time.Second

// Handler atende conexões WebSocket do fluxo de eventos
type Handler struct {
	engine         *syncengine.Engine
	logger         logger.Logger
	allowedOrigins []string
}

// NewHandler cria um handler de eventos WebSocket
func NewHandler(engine *syncengine.Engine, log logger.Logger, allowedOrigins []string) *Handler {
	return &Handler{
		engine:         engine,
		logger:         log,
		allowedOrigins: allowedOrigins,
	}
}

// getUpgrader monta o upgrader com a checagem de origem da instância
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				// Clientes fora do navegador não mandam origem
				return true
			}
			for _, allowed := range h.allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			h.logger.Warn("Origem de websocket rejeitada", "origin", origin)
			return false
		},
	}
}

// ServeHTTP faz o upgrade da conexão e repassa os eventos até o cliente
// desconectar
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("Falha no upgrade do websocket", "error", err)
		return
	}
	defer conn.Close()

	events, cancel := h.engine.Listen()
	defer cancel()

	// Leitor descarta mensagens do cliente e detecta desconexão
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
				return
			}
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				h.logger.Debug("Conexão de eventos encerrada", "error", err)
				return
			}
		}
	}
}
