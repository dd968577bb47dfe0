package runtime

import (
	"accelerator-hub/contract"
	"accelerator-hub/domain"
	"accelerator-hub/domain/event"
	"accelerator-hub/errors"
	"accelerator-hub/observability"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

// Router turns an inbound event into notifications for the right connections.
// It holds no state of its own: targets come from registry snapshots and
// delivery happens after the snapshot is taken.
type Router struct {
	log        *slog.Logger
	registry   contract.IRegistry
	monitoring *observability.MonitoringManager
	now        func() time.Time
}

func NewRouter(log *slog.Logger, registry contract.IRegistry, monitoring *observability.MonitoringManager) *Router {
	return &Router{log: log, registry: registry, monitoring: monitoring, now: time.Now}
}

// Dispatch handles one event from one sender.
// The sending connection never receives its own relay.
func (r *Router) Dispatch(ctx context.Context, sender contract.Sender, in event.Inbound) error {
	ts := event.FormatTimestamp(r.now())
	from := sender.Identity.UserID
	self := sender.ConnectionID

	switch e := in.(type) {
	case event.SendMessage:
		r.deliver(ctx, in.Kind(), r.registry.ConnectionsOf(e.RecipientID, self), event.Notification{
			Name: event.NewMessage,
			Data: event.MessagePayload{
				SenderID:  from,
				Message:   *e.Message,
				Type:      lo.Ternary(e.Type == "", event.DefaultMessageType, e.Type),
				Timestamp: ts,
			},
		})

	case event.JoinChat:
		return r.join(sender, domain.ChatGroup(e.ChatID))

	case event.LeaveChat:
		changed, err := r.registry.Leave(self, domain.ChatGroup(e.ChatID))
		if err != nil {
			return err
		}
		r.log.Debug("Left chat", "connection_id", self, "chat_id", e.ChatID, "changed", changed)

	case event.JoinPitchRoom:
		group := domain.PitchGroup(e.PitchID)
		if err := r.join(sender, group); err != nil {
			return err
		}
		r.deliver(ctx, in.Kind(), r.registry.MembersOf(group, self), event.Notification{
			Name: event.UserJoinedPitch,
			Data: event.JoinedPitchPayload{SenderID: from, PitchID: e.PitchID, Timestamp: ts},
		})

	case event.BusinessUpdate:
		r.deliver(ctx, in.Kind(), r.registry.MembersOf(domain.BusinessGroup(e.BusinessID), self), event.Notification{
			Name: event.BusinessUpdated,
			Data: event.BusinessUpdatedPayload{Update: e.Update, UpdatedBy: from, Timestamp: ts},
		})

	case event.SendNotification:
		r.deliver(ctx, in.Kind(), r.registry.ConnectionsOf(e.RecipientID, self), event.Notification{
			Name: event.NewNotification,
			Data: event.NotificationPayload{Type: e.Type, Title: e.Title, Message: e.Message, Data: e.Data, Timestamp: ts},
		})

	case event.TypingStart:
		r.deliver(ctx, in.Kind(), r.registry.MembersOf(domain.ChatGroup(e.ChatID), self), event.Notification{
			Name: event.UserTyping,
			Data: event.TypingPayload{SenderID: from, ChatID: e.ChatID, Timestamp: ts},
		})

	case event.TypingStop:
		r.deliver(ctx, in.Kind(), r.registry.MembersOf(domain.ChatGroup(e.ChatID), self), event.Notification{
			Name: event.UserStoppedTyping,
			Data: event.TypingPayload{SenderID: from, ChatID: e.ChatID, Timestamp: ts},
		})

	case event.UpdateStatus:
		r.deliver(ctx, in.Kind(), r.registry.MembersOf(domain.Broadcast, self), event.Notification{
			Name: event.UserStatusChanged,
			Data: event.StatusPayload{SenderID: from, Status: e.Status, Timestamp: ts},
		})

	case event.CallUser:
		r.deliver(ctx, in.Kind(), r.registry.ConnectionsOf(e.RecipientID, self), event.Notification{
			Name: event.IncomingCall,
			Data: event.IncomingCallPayload{CallerID: from, Offer: e.Offer, CallType: e.CallType, Timestamp: ts},
		})

	case event.AnswerCall:
		r.deliver(ctx, in.Kind(), r.registry.ConnectionsOf(e.CallerID, self), event.Notification{
			Name: event.CallAnswered,
			Data: event.CallAnsweredPayload{Answer: e.Answer, ResponderID: from, Timestamp: ts},
		})

	case event.EndCall:
		r.deliver(ctx, in.Kind(), r.registry.ConnectionsOf(e.RecipientID, self), event.Notification{
			Name: event.CallEnded,
			Data: event.CallEndedPayload{EndedBy: from, Timestamp: ts},
		})

	case event.StartPitchStream:
		r.deliver(ctx, in.Kind(), r.registry.MembersOf(domain.PitchGroup(e.PitchID), self), event.Notification{
			Name: event.PitchStreamStarted,
			Data: event.StreamStartedPayload{StreamerID: from, PitchID: e.PitchID, Timestamp: ts},
		})

	case event.PitchStreamData:
		r.deliver(ctx, in.Kind(), r.registry.MembersOf(domain.PitchGroup(e.PitchID), self), event.Notification{
			Name: event.PitchStreamUpdate,
			Data: event.StreamUpdatePayload{StreamData: e.StreamData, Timestamp: ts},
		})

	default:
		return fmt.Errorf("%w: %T", errors.ErrUnknownKind, in)
	}
	return nil
}

// NotifyUsers pushes a new_notification to every connection of every listed user.
// It returns how many connections accepted it.
func (r *Router) NotifyUsers(ctx context.Context, userIDs []string, payload event.NotificationPayload) int {
	if payload.Timestamp == "" {
		payload.Timestamp = event.FormatTimestamp(r.now())
	}
	n := event.Notification{Name: event.NewNotification, Data: payload}

	delivered := 0
	for _, userID := range lo.Uniq(userIDs) {
		delivered += r.deliver(ctx, "notify_users", r.registry.ConnectionsOf(userID, domain.NoConnection), n)
	}
	return delivered
}

// BroadcastToRole sends an arbitrary event to every connection of a role.
func (r *Router) BroadcastToRole(ctx context.Context, role domain.Role, name event.Name, data json.RawMessage) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("%w: event name is missing", errors.ErrInvalidPayload)
	}
	stamped, err := event.StampRaw(data, event.FormatTimestamp(r.now()))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", errors.ErrInvalidPayload, err)
	}
	n := event.Notification{Name: name, Data: stamped}
	return r.deliver(ctx, "broadcast_to_role", r.registry.MembersOf(domain.RoleGroup(role), domain.NoConnection), n), nil
}

// Broadcast reaches every connection except the given one.
func (r *Router) Broadcast(ctx context.Context, except domain.ConnectionID, n event.Notification) int {
	return r.deliver(ctx, "broadcast", r.registry.MembersOf(domain.Broadcast, except), n)
}

func (r *Router) join(sender contract.Sender, group domain.Group) error {
	changed, err := r.registry.Join(sender.ConnectionID, group)
	if err != nil {
		return err
	}
	r.log.Debug("Joined group", "connection_id", sender.ConnectionID, "group", group, "changed", changed)
	return nil
}

// deliver enqueues without blocking: a full or closed sink loses the notification.
func (r *Router) deliver(ctx context.Context, origin event.Kind, recipients []contract.Recipient, n event.Notification) int {
	if len(recipients) == 0 {
		r.log.Debug("Dropping notification", "kind", origin, "event", n.Name, "error", errors.ErrUnreachableTarget)
		return 0
	}

	delivered := 0
	for _, rcp := range recipients {
		if err := rcp.Sink.Consume(ctx, n); err != nil {
			r.monitoring.IncrDropped()
			r.log.Debug("Notification lost", "event", n.Name, "connection_id", rcp.ConnectionID, "user_id", rcp.UserID, "error", err)
			continue
		}
		delivered++
	}
	r.monitoring.IncrDelivered(delivered)
	return delivered
}
