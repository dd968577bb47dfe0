// Package runtime handles connection admission, event routing and presence.
// It orchestrates the hub without knowing anything about the transport.
package runtime

import (
	"accelerator-hub/contract"
	"accelerator-hub/domain"
	"accelerator-hub/domain/event"
	"accelerator-hub/observability"
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

type Orchestrator struct {
	mu         sync.Mutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	registry   contract.IRegistry
	router     *Router
	presence   *Presence
	monitoring *observability.MonitoringManager
	workers    []contract.Worker
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, monitoring *observability.MonitoringManager) *Orchestrator {
	router := NewRouter(log, registry, monitoring)
	return &Orchestrator{
		log:        log,
		supervisor: supervisor,
		registry:   registry,
		router:     router,
		presence:   NewPresence(log, registry, router),
		monitoring: monitoring,
	}
}

// Add registers background workers started by Start.
func (o *Orchestrator) Add(workers ...contract.Worker) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.workers = append(o.workers, workers...)
}

// Connect admits an already authenticated identity.
func (o *Orchestrator) Connect(identity domain.Identity, sink contract.EventSink) domain.ConnectionID {
	id := o.registry.Register(identity, sink)
	o.log.Info("Connection registered", "connection_id", id, "user_id", identity.UserID,
		"role", identity.Role, "groups", o.registry.GroupsOf(id))
	return id
}

// Handle decodes and routes one raw frame.
// A malformed frame is logged and dropped, the connection stays usable.
func (o *Orchestrator) Handle(ctx context.Context, sender contract.Sender, raw []byte) error {
	in, err := event.Decode(raw)
	if err != nil {
		o.monitoring.IncrMalformed()
		o.log.Warn("Dropping malformed event", "connection_id", sender.ConnectionID, "user_id", sender.Identity.UserID, "error", err)
		return err
	}
	if err := o.router.Dispatch(ctx, sender, in); err != nil {
		o.log.Warn("Event rejected", "connection_id", sender.ConnectionID, "kind", in.Kind(), "error", err)
		return err
	}
	return nil
}

// Disconnect may be called any number of times for the same connection.
func (o *Orchestrator) Disconnect(ctx context.Context, id domain.ConnectionID) {
	departure, ok := o.registry.Unregister(id)
	if !ok {
		return
	}
	o.log.Info("Connection unregistered", "connection_id", id, "user_id", departure.Identity.UserID)
	o.presence.Departed(ctx, departure)
}

// NotifyUsers skips recipients with no live connection. Nothing is queued
// for them.
func (o *Orchestrator) NotifyUsers(ctx context.Context, userIDs []string, notification event.NotificationPayload) int {
	if offline := lo.Reject(userIDs, func(id string, _ int) bool { return o.presence.IsOnline(id) }); len(offline) > 0 {
		o.log.Debug("Notification recipients offline", "type", notification.Type, "user_ids", offline)
	}
	return o.router.NotifyUsers(ctx, userIDs, notification)
}

func (o *Orchestrator) BroadcastToRole(ctx context.Context, role domain.Role, name event.Name, data json.RawMessage) (int, error) {
	return o.router.BroadcastToRole(ctx, role, name, data)
}

func (o *Orchestrator) Presence() *Presence {
	return o.presence
}

// Start hands the background workers to the supervisor and blocks until
// the context is canceled or every worker returned.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	o.supervisor.Add(o.workers...)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// Stop cancels the supervised workers.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
