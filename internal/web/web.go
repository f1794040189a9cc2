// Package web serves the browser chat UI and its websocket chat channel.
package web

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/GayathriPCh/LoLCode-AI/internal/chat"
)

// Web provides the chat page and the /ws/chat channel.
type Web struct {
	proxy  *chat.Proxy
	logger *slog.Logger
}

// New creates a Web backed by the given completion proxy.
func New(proxy *chat.Proxy, logger *slog.Logger) *Web {
	if logger == nil {
		logger = slog.Default()
	}
	return &Web{
		proxy:  proxy,
		logger: logger,
	}
}

// RegisterRoutes mounts the page and websocket routes onto the given router.
func (w *Web) RegisterRoutes(r chi.Router) {
	r.Get("/", w.ServeIndex)
	r.Get("/ws/chat", w.handleWebSocket)
}
