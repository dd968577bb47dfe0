package runtime

import (
	"accelerator-hub/contract"
	"accelerator-hub/domain"
	"accelerator-hub/domain/event"
	"accelerator-hub/errors"
	"accelerator-hub/observability"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

const fixedTS = "2026-03-01T09:30:00.000Z"

func newTestRouter(registry contract.IRegistry) *Router {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	router := NewRouter(log, registry, observability.NewMonitoringManager(log))
	router.now = func() time.Time { return fixedNow }
	return router
}

type connected struct {
	sender contract.Sender
	sink   *recordingSink
}

func connect(registry *Registry, identity domain.Identity) connected {
	sink := &recordingSink{}
	id := registry.Register(identity, sink)
	return connected{sender: contract.Sender{ConnectionID: id, Identity: identity}, sink: sink}
}

// fullSink behaves like a connection whose outbound buffer is saturated.
type fullSink struct{}

func (fullSink) Consume(context.Context, event.Notification) error { return errors.ErrSinkFull }

func TestRouter_SendMessage_ReachesEveryConnectionOfRecipient(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry := NewRegistry()
	router := newTestRouter(registry)

	// Given alice has two connections, bob one and carol one
	alice1 := connect(registry, alice)
	alice2 := connect(registry, alice)
	bobConn := connect(registry, bob)
	carol := connect(registry, domain.Identity{UserID: "carol", Role: domain.RoleInvestor})

	// When bob sends a message to alice
	err := router.Dispatch(ctx, bobConn.sender, event.SendMessage{RecipientID: "alice", Message: lo.ToPtr("Hi")})
	req.NoError(err)

	// Then both alice connections receive it, with the default type
	want := event.Notification{
		Name: event.NewMessage,
		Data: event.MessagePayload{SenderID: "bob", Message: "Hi", Type: "text", Timestamp: fixedTS},
	}
	req.Equal([]event.Notification{want}, alice1.sink.Received())
	req.Equal([]event.Notification{want}, alice2.sink.Received())

	// And nobody else does
	req.Empty(bobConn.sink.Received())
	req.Empty(carol.sink.Received())
}

func TestRouter_SendMessage_OfflineRecipientIsSilentlyDropped(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	router := newTestRouter(registry)
	bobConn := connect(registry, bob)

	// When bob writes to somebody who is not connected
	err := router.Dispatch(context.Background(), bobConn.sender, event.SendMessage{RecipientID: "ghost", Message: lo.ToPtr("Hi"), Type: "file"})

	// Then nothing fails and nothing is delivered
	req.NoError(err)
	req.Empty(bobConn.sink.Received())
}

func TestRouter_SendMessage_EmptyMessageIsDelivered(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	router := newTestRouter(registry)
	aliceConn := connect(registry, alice)
	bobConn := connect(registry, bob)

	req.NoError(router.Dispatch(context.Background(), bobConn.sender, event.SendMessage{RecipientID: "alice", Message: lo.ToPtr("")}))

	req.Equal([]event.Notification{{
		Name: event.NewMessage,
		Data: event.MessagePayload{SenderID: "bob", Message: "", Type: "text", Timestamp: fixedTS},
	}}, aliceConn.sink.Received())
}

func TestRouter_SendMessage_ToSelfSkipsSendingConnection(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	router := newTestRouter(registry)
	laptop := connect(registry, alice)
	phone := connect(registry, alice)

	req.NoError(router.Dispatch(context.Background(), laptop.sender, event.SendMessage{RecipientID: "alice", Message: lo.ToPtr("note to self")}))

	req.Empty(laptop.sink.Received())
	req.Len(phone.sink.Received(), 1)
}

func TestRouter_Typing_ExcludesSender(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry := NewRegistry()
	router := newTestRouter(registry)
	alice1 := connect(registry, alice)
	bobConn := connect(registry, bob)
	outsider := connect(registry, domain.Identity{UserID: "dave", Role: domain.RoleGovernment})

	// Given alice and bob are in chat c1
	req.NoError(router.Dispatch(ctx, alice1.sender, event.JoinChat{ChatID: "c1"}))
	req.NoError(router.Dispatch(ctx, bobConn.sender, event.JoinChat{ChatID: "c1"}))

	// When alice starts and stops typing
	req.NoError(router.Dispatch(ctx, alice1.sender, event.TypingStart{ChatID: "c1"}))
	req.NoError(router.Dispatch(ctx, alice1.sender, event.TypingStop{ChatID: "c1"}))

	// Then only bob is told, in order
	req.Equal([]event.Notification{
		{Name: event.UserTyping, Data: event.TypingPayload{SenderID: "alice", ChatID: "c1", Timestamp: fixedTS}},
		{Name: event.UserStoppedTyping, Data: event.TypingPayload{SenderID: "alice", ChatID: "c1", Timestamp: fixedTS}},
	}, bobConn.sink.Received())
	req.Empty(alice1.sink.Received())
	req.Empty(outsider.sink.Received())
}

func TestRouter_JoinLeaveChat_RoundTrip(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry := NewRegistry()
	router := newTestRouter(registry)
	alice1 := connect(registry, alice)
	before := registry.GroupsOf(alice1.sender.ConnectionID)

	req.NoError(router.Dispatch(ctx, alice1.sender, event.JoinChat{ChatID: "c1"}))
	req.NoError(router.Dispatch(ctx, alice1.sender, event.JoinChat{ChatID: "c1"}))
	req.Contains(registry.GroupsOf(alice1.sender.ConnectionID), domain.ChatGroup("c1"))

	req.NoError(router.Dispatch(ctx, alice1.sender, event.LeaveChat{ChatID: "c1"}))
	req.NoError(router.Dispatch(ctx, alice1.sender, event.LeaveChat{ChatID: "c1"}))
	req.Equal(before, registry.GroupsOf(alice1.sender.ConnectionID))
}

func TestRouter_JoinPitchRoom_AnnouncesToPresentMembers(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry := NewRegistry()
	router := newTestRouter(registry)
	x := connect(registry, alice)
	y := connect(registry, bob)

	// Given X is already in pitch p1
	req.NoError(router.Dispatch(ctx, x.sender, event.JoinPitchRoom{PitchID: "p1"}))
	req.Empty(x.sink.Received())

	// When Y joins
	req.NoError(router.Dispatch(ctx, y.sender, event.JoinPitchRoom{PitchID: "p1"}))

	// Then X is told and Y is now a member
	req.Equal([]event.Notification{{
		Name: event.UserJoinedPitch,
		Data: event.JoinedPitchPayload{SenderID: "bob", PitchID: "p1", Timestamp: fixedTS},
	}}, x.sink.Received())
	req.Empty(y.sink.Received())
	req.Len(registry.MembersOf(domain.PitchGroup("p1"), domain.NoConnection), 2)
}

func TestRouter_PitchStream(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry := NewRegistry()
	router := newTestRouter(registry)
	streamer := connect(registry, alice)
	viewer := connect(registry, bob)
	req.NoError(router.Dispatch(ctx, streamer.sender, event.JoinPitchRoom{PitchID: "p1"}))
	req.NoError(router.Dispatch(ctx, viewer.sender, event.JoinPitchRoom{PitchID: "p1"}))
	streamer.sink.received = nil

	req.NoError(router.Dispatch(ctx, streamer.sender, event.StartPitchStream{PitchID: "p1"}))
	req.NoError(router.Dispatch(ctx, streamer.sender, event.PitchStreamData{PitchID: "p1", StreamData: json.RawMessage(`{"chunk":1}`)}))

	req.Empty(streamer.sink.Received())
	req.Equal([]event.Notification{
		{Name: event.PitchStreamStarted, Data: event.StreamStartedPayload{StreamerID: "alice", PitchID: "p1", Timestamp: fixedTS}},
		{Name: event.PitchStreamUpdate, Data: event.StreamUpdatePayload{StreamData: json.RawMessage(`{"chunk":1}`), Timestamp: fixedTS}},
	}, viewer.sink.Received())
}

func TestRouter_CallSignaling(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry := NewRegistry()
	router := newTestRouter(registry)
	a := connect(registry, alice)
	b := connect(registry, bob)
	offer := json.RawMessage(`{"sdp":"offer-sdp"}`)
	answer := json.RawMessage(`{"sdp":"answer-sdp"}`)

	// When A calls B
	req.NoError(router.Dispatch(ctx, a.sender, event.CallUser{RecipientID: "bob", Offer: offer, CallType: "video"}))
	// Then B gets the offer untouched
	req.Equal([]event.Notification{{
		Name: event.IncomingCall,
		Data: event.IncomingCallPayload{CallerID: "alice", Offer: offer, CallType: "video", Timestamp: fixedTS},
	}}, b.sink.Received())

	// When B answers
	req.NoError(router.Dispatch(ctx, b.sender, event.AnswerCall{CallerID: "alice", Answer: answer}))
	// Then A gets the answer
	req.Equal([]event.Notification{{
		Name: event.CallAnswered,
		Data: event.CallAnsweredPayload{Answer: answer, ResponderID: "bob", Timestamp: fixedTS},
	}}, a.sink.Received())

	// When A hangs up
	req.NoError(router.Dispatch(ctx, a.sender, event.EndCall{RecipientID: "bob"}))
	req.Equal(event.Notification{
		Name: event.CallEnded,
		Data: event.CallEndedPayload{EndedBy: "alice", Timestamp: fixedTS},
	}, b.sink.Received()[1])
}

func TestRouter_BusinessUpdate_And_Status(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	registry := NewRegistry()
	router := newTestRouter(registry)
	owner := connect(registry, alice)
	mentor := connect(registry, bob)
	other := connect(registry, domain.Identity{UserID: "eve", Role: domain.RoleInvestor})
	_, err := registry.Join(mentor.sender.ConnectionID, domain.BusinessGroup("b1"))
	req.NoError(err)

	req.NoError(router.Dispatch(ctx, owner.sender, event.BusinessUpdate{BusinessID: "b1", Update: json.RawMessage(`{"stage":"seed"}`)}))
	req.Equal([]event.Notification{{
		Name: event.BusinessUpdated,
		Data: event.BusinessUpdatedPayload{Update: json.RawMessage(`{"stage":"seed"}`), UpdatedBy: "alice", Timestamp: fixedTS},
	}}, mentor.sink.Received())
	req.Empty(other.sink.Received())

	// When alice changes her status, everyone else hears about it
	req.NoError(router.Dispatch(ctx, owner.sender, event.UpdateStatus{Status: "away"}))
	status := event.Notification{Name: event.UserStatusChanged, Data: event.StatusPayload{SenderID: "alice", Status: "away", Timestamp: fixedTS}}
	req.Equal(status, mentor.sink.Received()[1])
	req.Equal([]event.Notification{status}, other.sink.Received())
	req.Empty(owner.sink.Received())
}

func TestRouter_SendNotification(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	router := newTestRouter(registry)
	a := connect(registry, alice)
	b := connect(registry, bob)

	req.NoError(router.Dispatch(context.Background(), a.sender, event.SendNotification{
		RecipientID: "bob", Type: "meeting", Title: "Tomorrow", Message: "10am", Data: json.RawMessage(`{"room":3}`),
	}))

	req.Equal([]event.Notification{{
		Name: event.NewNotification,
		Data: event.NotificationPayload{Type: "meeting", Title: "Tomorrow", Message: "10am", Data: json.RawMessage(`{"room":3}`), Timestamp: fixedTS},
	}}, b.sink.Received())
}

func TestRouter_FullSinkDoesNotStopFanout(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	router := newTestRouter(registry)
	registry.Register(alice, fullSink{})
	healthy := connect(registry, alice)
	sender := connect(registry, bob)

	req.NoError(router.Dispatch(context.Background(), sender.sender, event.SendMessage{RecipientID: "alice", Message: lo.ToPtr("Hi")}))
	req.Len(healthy.sink.Received(), 1)
}

func TestRouter_NotifyUsers(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	router := newTestRouter(registry)
	a1 := connect(registry, alice)
	a2 := connect(registry, alice)
	b := connect(registry, bob)

	delivered := router.NotifyUsers(context.Background(), []string{"alice", "alice", "ghost"}, event.NotificationPayload{Type: "funding", Title: "Offer"})

	req.Equal(2, delivered)
	want := event.Notification{Name: event.NewNotification, Data: event.NotificationPayload{Type: "funding", Title: "Offer", Timestamp: fixedTS}}
	req.Equal([]event.Notification{want}, a1.sink.Received())
	req.Equal([]event.Notification{want}, a2.sink.Received())
	req.Empty(b.sink.Received())
}

func TestRouter_BroadcastToRole(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	router := newTestRouter(registry)
	entrepreneur := connect(registry, alice)
	mentor := connect(registry, bob)

	delivered, err := router.BroadcastToRole(context.Background(), domain.RoleMentor, "program_update", json.RawMessage(`{"cohort":"spring"}`))
	req.NoError(err)
	req.Equal(1, delivered)
	req.Empty(entrepreneur.sink.Received())

	got := mentor.sink.Received()
	req.Len(got, 1)
	req.Equal(event.Name("program_update"), got[0].Name)
	raw, ok := got[0].Data.(json.RawMessage)
	req.True(ok)
	req.JSONEq(`{"cohort":"spring","timestamp":"`+fixedTS+`"}`, string(raw))

	_, err = router.BroadcastToRole(context.Background(), domain.RoleMentor, "", nil)
	req.ErrorIs(err, errors.ErrMalformedEvent)
}
