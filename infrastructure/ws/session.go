package ws

import (
	"accelerator-hub/contract"
	"accelerator-hub/errors"
	"accelerator-hub/observability"
	"accelerator-hub/sink"
	"context"
	stderrors "errors"
	"io"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// Options tunes every session served by a Handler.
type Options struct {
	MaxMessageSize     int64
	InboundBufferSize  int
	OutboundBufferSize int
	PingInterval       time.Duration
	PongWait           time.Duration
	WriteTimeout       time.Duration
	RateLimit          rate.Limit
	RateBurst          int
}

// session drives one connection with three goroutines: the reader feeds
// inbound frames to a single dispatcher, the writer is the only one
// touching the socket for writes.
type session struct {
	log        *slog.Logger
	conn       *websocket.Conn
	hub        contract.IHub
	monitoring *observability.MonitoringManager
	sink       *sink.ConnectionSink
	sender     contract.Sender
	inbound    chan []byte
	limiter    *rate.Limiter
	opts       Options
	closeOnce  sync.Once
}

func newSession(log *slog.Logger, conn *websocket.Conn, hub contract.IHub,
	monitoring *observability.MonitoringManager, opts Options) *session {
	conn.SetReadLimit(opts.MaxMessageSize)
	return &session{
		log:        log,
		conn:       conn,
		hub:        hub,
		monitoring: monitoring,
		sink:       sink.NewConnectionSink(opts.OutboundBufferSize),
		inbound:    make(chan []byte, opts.InboundBufferSize),
		limiter:    rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		opts:       opts,
	}
}

// run blocks until the connection is gone. Cleanup always happens, once.
func (s *session) run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.close()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer cancel()
		s.writePump(ctx)
	}()
	go func() {
		defer wg.Done()
		defer cancel()
		s.dispatchLoop(ctx)
	}()

	s.readPump(ctx)
	cancel()
	wg.Wait()
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		s.sink.Close()
		s.hub.Disconnect(context.Background(), s.sender.ConnectionID)
		if err := s.conn.Close(); err != nil && !isExpectedCloseError(err) {
			s.log.Debug("Error closing connection", "connection_id", s.sender.ConnectionID, "error", err)
		}
	})
}

func (s *session) recoverPanic(pump string) {
	if r := recover(); r != nil {
		s.log.Error("Session goroutine panicked", "pump", pump, "connection_id", s.sender.ConnectionID, "panic", r)
	}
}

func (s *session) readPump(ctx context.Context) {
	defer close(s.inbound)
	defer s.recoverPanic("read")

	_ = s.conn.SetReadDeadline(time.Now().Add(s.opts.PongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(s.opts.PongWait))
	})

	for {
		_, raw, err := s.conn.ReadMessage()
		if err != nil {
			s.logReadError(err)
			return
		}
		if !s.limiter.Allow() {
			s.monitoring.IncrRateLimited()
			s.log.Warn("Dropping event", "connection_id", s.sender.ConnectionID, "user_id", s.sender.Identity.UserID, "error", errors.ErrRateLimited)
			continue
		}
		select {
		case s.inbound <- raw:
		case <-ctx.Done():
			return
		}
	}
}

// dispatchLoop handles events one at a time, which keeps every sender's
// events in order.
func (s *session) dispatchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case raw, ok := <-s.inbound:
			if !ok {
				return
			}
			s.dispatch(ctx, raw)
		}
	}
}

func (s *session) dispatch(ctx context.Context, raw []byte) {
	defer s.recoverPanic("dispatch")
	// Errors are logged by the hub and never end the connection
	_ = s.hub.Handle(ctx, s.sender, raw)
}

func (s *session) writePump(ctx context.Context) {
	defer s.recoverPanic("write")
	ticker := time.NewTicker(s.opts.PingInterval)
	defer func() {
		ticker.Stop()
		// Unblocks the reader
		_ = s.conn.Close()
	}()

	for {
		select {
		case n := <-s.sink.Outbound():
			payload, err := n.Encode()
			if err != nil {
				s.log.Error("Unable to encode notification", "event", n.Name, "error", err)
				continue
			}
			if err := s.write(websocket.TextMessage, payload); err != nil {
				s.log.Debug("Write failed", "connection_id", s.sender.ConnectionID, "error", err)
				return
			}
		case <-ticker.C:
			if err := s.write(websocket.PingMessage, nil); err != nil {
				s.log.Debug("Ping failed", "connection_id", s.sender.ConnectionID, "error", err)
				return
			}
		case <-s.sink.Done():
			return
		case <-ctx.Done():
			_ = s.write(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"))
			return
		}
	}
}

func (s *session) write(messageType int, payload []byte) error {
	if err := s.conn.SetWriteDeadline(time.Now().Add(s.opts.WriteTimeout)); err != nil {
		return err
	}
	return s.conn.WriteMessage(messageType, payload)
}

func (s *session) logReadError(err error) {
	attrs := []any{"connection_id", s.sender.ConnectionID, "user_id", s.sender.Identity.UserID, "error", err}
	switch {
	case stderrors.Is(err, websocket.ErrReadLimit):
		s.log.Warn("Frame exceeded maximum size", append(attrs, "limit", s.opts.MaxMessageSize)...)
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived),
		stderrors.Is(err, io.EOF), isExpectedCloseError(err):
		s.log.Debug("Client disconnected", attrs...)
	default:
		s.log.Info("Connection lost", attrs...)
	}
}

func isExpectedCloseError(err error) bool {
	return stderrors.Is(err, net.ErrClosed) || stderrors.Is(err, websocket.ErrCloseSent)
}
