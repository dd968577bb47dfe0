package sink

import (
	"accelerator-hub/domain/event"
	"accelerator-hub/errors"
	"context"
	"sync"
)

// ConnectionSink buffers notifications for one connection until its writer
// drains them. The outbound channel is never closed: Close only signals
// done, so a late Consume from a concurrent fan-out cannot panic.
type ConnectionSink struct {
	outbound chan event.Notification
	done     chan struct{}
	once     sync.Once
}

func NewConnectionSink(bufferSize int) *ConnectionSink {
	return &ConnectionSink{
		outbound: make(chan event.Notification, bufferSize),
		done:     make(chan struct{}),
	}
}

// Consume is called by the router, possibly from many goroutines.
// It never blocks: a full buffer loses the notification.
func (s *ConnectionSink) Consume(ctx context.Context, n event.Notification) error {
	select {
	case <-s.done:
		return errors.ErrConnectionClosed
	default:
	}

	select {
	case s.outbound <- n:
		return nil
	case <-s.done:
		return errors.ErrConnectionClosed
	case <-ctx.Done():
		return ctx.Err()
	default:
		return errors.ErrSinkFull
	}
}

// Outbound is drained by the connection writer.
func (s *ConnectionSink) Outbound() <-chan event.Notification {
	return s.outbound
}

func (s *ConnectionSink) Done() <-chan struct{} {
	return s.done
}

func (s *ConnectionSink) Close() {
	s.once.Do(func() { close(s.done) })
}
