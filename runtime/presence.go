package runtime

import (
	"accelerator-hub/contract"
	"accelerator-hub/domain"
	"accelerator-hub/domain/event"
	"context"
	"log/slog"
)

// Presence derives online state from the registry.
// Going online is silent; going offline is announced once, when the last
// connection of an identity is gone.
type Presence struct {
	log      *slog.Logger
	registry contract.IRegistry
	router   *Router
}

func NewPresence(log *slog.Logger, registry contract.IRegistry, router *Router) *Presence {
	return &Presence{log: log, registry: registry, router: router}
}

// Departed must be given the result of exactly one successful Unregister.
func (p *Presence) Departed(ctx context.Context, departure domain.Departure) int {
	if !departure.LastForIdentity {
		return 0
	}
	userID := departure.Identity.UserID
	p.log.Info("User went offline", "user_id", userID)

	return p.router.Broadcast(ctx, domain.NoConnection, event.Notification{
		Name: event.UserStatusChanged,
		Data: event.StatusPayload{
			SenderID:  userID,
			Status:    event.StatusOffline,
			Timestamp: event.FormatTimestamp(p.router.now()),
		},
	})
}

func (p *Presence) IsOnline(userID string) bool {
	return p.registry.IsOnline(userID)
}

func (p *Presence) Online() []string {
	return p.registry.OnlineUsers()
}
