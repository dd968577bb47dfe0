package sink_test

import (
	"accelerator-hub/domain/event"
	"accelerator-hub/errors"
	"accelerator-hub/sink"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectionSink_Consume(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	s := sink.NewConnectionSink(2)
	n := event.Notification{Name: event.CallEnded, Data: event.CallEndedPayload{EndedBy: "u1"}}

	// Given a buffer of two
	req.NoError(s.Consume(ctx, n))
	req.NoError(s.Consume(ctx, n))

	// When it is full, the third notification is lost without blocking
	req.ErrorIs(s.Consume(ctx, n), errors.ErrSinkFull)

	// Then the writer still gets the first two in order
	req.Equal(n, <-s.Outbound())
	req.Equal(n, <-s.Outbound())
}

func TestConnectionSink_Close(t *testing.T) {
	req := require.New(t)
	s := sink.NewConnectionSink(1)

	// Close is idempotent
	s.Close()
	s.Close()

	_, open := <-s.Done()
	req.False(open)
	req.ErrorIs(s.Consume(context.Background(), event.Notification{}), errors.ErrConnectionClosed)
}

func TestConnectionSink_ConsumeRacingClose(t *testing.T) {
	s := sink.NewConnectionSink(8)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Consume(context.Background(), event.Notification{Name: event.UserTyping})
		}()
	}
	s.Close()
	wg.Wait()
}
