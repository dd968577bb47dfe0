// Package ws serves the hub over WebSocket: one authenticated connection
// per upgrade, frames in both directions carried as JSON text messages.
package ws

import (
	"accelerator-hub/auth"
	"accelerator-hub/contract"
	"accelerator-hub/observability"
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

const tokenQueryParam = "token"

type Handler struct {
	log        *slog.Logger
	verifier   contract.TokenVerifier
	hub        contract.IHub
	monitoring *observability.MonitoringManager
	upgrader   websocket.Upgrader
	origins    originPolicy
	opts       Options

	baseCtx context.Context
	cancel  context.CancelFunc
	mu      sync.Mutex
	closed  bool
	wg      sync.WaitGroup
}

func NewHandler(log *slog.Logger, verifier contract.TokenVerifier, hub contract.IHub,
	monitoring *observability.MonitoringManager, allowedOrigins []string, opts Options) *Handler {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Handler{
		log:        log,
		verifier:   verifier,
		hub:        hub,
		monitoring: monitoring,
		origins:    newOriginPolicy(log, allowedOrigins),
		opts:       opts,
		baseCtx:    ctx,
		cancel:     cancel,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Checked before the upgrade in ServeHTTP
		CheckOrigin: func(*http.Request) bool { return true },
	}
	return h
}

// ServeHTTP authenticates then upgrades. Nothing is registered until the
// handshake has completed, so a rejected client leaves no trace.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.origins.allows(r) {
		h.monitoring.IncrRejected()
		h.log.Warn("Origin rejected", "origin", r.Header.Get("Origin"), "remote_addr", r.RemoteAddr)
		http.Error(w, "origin not allowed", http.StatusForbidden)
		return
	}

	identity, err := h.verifier.Verify(r.Context(), requestToken(r))
	if err != nil {
		h.monitoring.IncrRejected()
		h.log.Info("Connection rejected", "remote_addr", r.RemoteAddr, "error", err)
		http.Error(w, "authentication error", http.StatusUnauthorized)
		return
	}

	if h.isClosed() {
		http.Error(w, "server shutting down", http.StatusServiceUnavailable)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		h.log.Warn("WebSocket upgrade failed", "remote_addr", r.RemoteAddr, "error", err)
		return
	}

	if !h.track() {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
		_ = conn.Close()
		return
	}
	defer h.wg.Done()

	s := newSession(h.log, conn, h.hub, h.monitoring, h.opts)
	id := h.hub.Connect(identity, s.sink)
	s.sender = contract.Sender{ConnectionID: id, Identity: identity}
	s.run(h.baseCtx)
}

// requestToken prefers the Authorization header, browsers cannot set it
// on a WebSocket handshake so the query parameter is accepted too.
func requestToken(r *http.Request) string {
	if token, ok := auth.BearerToken(r.Header.Get("Authorization")); ok {
		return token
	}
	return r.URL.Query().Get(tokenQueryParam)
}

func (h *Handler) isClosed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.closed
}

// track counts a session unless Shutdown already started.
func (h *Handler) track() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.wg.Add(1)
	return true
}

// Shutdown closes every live session and waits for their cleanup.
func (h *Handler) Shutdown(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()
	h.cancel()
	done := make(chan struct{})
	go func() {
		h.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
