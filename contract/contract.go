//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"accelerator-hub/domain"
	"accelerator-hub/domain/event"
	"context"
	"encoding/json"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// Used for logging and supervision, so the Worker interface needs no name.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink is the outbound side of one live connection.
// Consume must never block: a full buffer is reported, not waited on.
type EventSink interface {
	Consume(ctx context.Context, n event.Notification) error
}

// Recipient is a snapshot entry handed out by the registry.
// Delivering to it happens outside any registry lock.
type Recipient struct {
	ConnectionID domain.ConnectionID
	UserID       string
	Sink         EventSink
}

// Sender identifies the connection an inbound event came from.
type Sender struct {
	ConnectionID domain.ConnectionID
	Identity     domain.Identity
}

type IRegistry interface {
	Register(identity domain.Identity, sink EventSink) domain.ConnectionID
	Unregister(id domain.ConnectionID) (domain.Departure, bool)
	ConnectionsOf(userID string, except domain.ConnectionID) []Recipient
	Join(id domain.ConnectionID, group domain.Group) (bool, error)
	Leave(id domain.ConnectionID, group domain.Group) (bool, error)
	MembersOf(group domain.Group, except domain.ConnectionID) []Recipient
	GroupsOf(id domain.ConnectionID) []domain.Group
	IsOnline(userID string) bool
	OnlineUsers() []string
	Stats() domain.RegistryStats
}

type TokenVerifier interface {
	Verify(ctx context.Context, token string) (domain.Identity, error)
}

// IHub is what the transports see of the runtime.
type IHub interface {
	Connect(identity domain.Identity, sink EventSink) domain.ConnectionID
	Handle(ctx context.Context, sender Sender, raw []byte) error
	Disconnect(ctx context.Context, id domain.ConnectionID)
	NotifyUsers(ctx context.Context, userIDs []string, notification event.NotificationPayload) int
	BroadcastToRole(ctx context.Context, role domain.Role, name event.Name, data json.RawMessage) (int, error)
}
