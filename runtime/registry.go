package runtime

import (
	"accelerator-hub/contract"
	"accelerator-hub/domain"
	"accelerator-hub/errors"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/lo"
)

type Set[K comparable] map[K]struct{}

type connection struct {
	identity domain.Identity
	sink     contract.EventSink
	groups   Set[domain.Group]
}

// Registry is the single source of truth for live connections and their groups.
// One lock guards every map so a snapshot is always consistent; no sink is
// ever called while the lock is held.
type Registry struct {
	mu          sync.RWMutex
	connections map[domain.ConnectionID]*connection
	byUser      map[string]Set[domain.ConnectionID]
	groups      map[domain.Group]Set[domain.ConnectionID]
}

func NewRegistry() *Registry {
	return &Registry{
		connections: make(map[domain.ConnectionID]*connection),
		byUser:      make(map[string]Set[domain.ConnectionID]),
		groups:      make(map[domain.Group]Set[domain.ConnectionID]),
	}
}

// Register admits an authenticated connection and puts it in its user,
// role and broadcast groups before anyone can address it.
func (r *Registry) Register(identity domain.Identity, sink contract.EventSink) domain.ConnectionID {
	id := domain.NewConnectionID()
	conn := &connection{identity: identity, sink: sink, groups: make(Set[domain.Group])}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.connections[id] = conn
	if _, ok := r.byUser[identity.UserID]; !ok {
		r.byUser[identity.UserID] = make(Set[domain.ConnectionID])
	}
	r.byUser[identity.UserID][id] = struct{}{}
	for _, g := range domain.AutoGroups(identity) {
		r.add(id, conn, g)
	}
	return id
}

// Unregister removes the connection from every group it belongs to.
// Only the first call for a given id reports ok, later calls are no-ops.
func (r *Registry) Unregister(id domain.ConnectionID) (domain.Departure, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[id]
	if !ok {
		return domain.Departure{}, false
	}
	for g := range conn.groups {
		r.remove(id, conn, g)
	}
	delete(r.connections, id)

	userID := conn.identity.UserID
	delete(r.byUser[userID], id)
	last := len(r.byUser[userID]) == 0
	if last {
		delete(r.byUser, userID)
	}
	return domain.Departure{Identity: conn.identity, LastForIdentity: last}, true
}

// ConnectionsOf returns every live connection of the user except the given one.
func (r *Registry) ConnectionsOf(userID string, except domain.ConnectionID) []contract.Recipient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(r.byUser[userID], except)
}

// Join is idempotent and reports whether the membership changed.
func (r *Registry) Join(id domain.ConnectionID, group domain.Group) (bool, error) {
	if group.Reserved() {
		return false, fmt.Errorf("%w: %s", errors.ErrReservedGroup, group)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[id]
	if !ok {
		return false, fmt.Errorf("%w: %s", errors.ErrUnknownConnection, id)
	}
	if _, in := conn.groups[group]; in {
		return false, nil
	}
	r.add(id, conn, group)
	return true, nil
}

// Leave is idempotent and reports whether the membership changed.
func (r *Registry) Leave(id domain.ConnectionID, group domain.Group) (bool, error) {
	if group.Reserved() {
		return false, fmt.Errorf("%w: %s", errors.ErrReservedGroup, group)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	conn, ok := r.connections[id]
	if !ok {
		return false, fmt.Errorf("%w: %s", errors.ErrUnknownConnection, id)
	}
	if _, in := conn.groups[group]; !in {
		return false, nil
	}
	r.remove(id, conn, group)
	return true, nil
}

// MembersOf snapshots the members of a group except the given connection.
// Returns nil when the group does not exist.
func (r *Registry) MembersOf(group domain.Group, except domain.ConnectionID) []contract.Recipient {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot(r.groups[group], except)
}

func (r *Registry) GroupsOf(id domain.ConnectionID) []domain.Group {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conn, ok := r.connections[id]
	if !ok {
		return nil
	}
	groups := lo.Keys(conn.groups)
	slices.Sort(groups)
	return groups
}

func (r *Registry) IsOnline(userID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID]) > 0
}

func (r *Registry) OnlineUsers() []string {
	r.mu.RLock()
	users := lo.Keys(r.byUser)
	r.mu.RUnlock()

	slices.Sort(users)
	return users
}

func (r *Registry) Stats() domain.RegistryStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.RegistryStats{
		Connections: len(r.connections),
		Identities:  len(r.byUser),
		Groups:      len(r.groups),
	}
}

// add and remove expect the write lock to be held.
func (r *Registry) add(id domain.ConnectionID, conn *connection, group domain.Group) {
	conn.groups[group] = struct{}{}
	if _, ok := r.groups[group]; !ok {
		r.groups[group] = make(Set[domain.ConnectionID])
	}
	r.groups[group][id] = struct{}{}
}

func (r *Registry) remove(id domain.ConnectionID, conn *connection, group domain.Group) {
	delete(conn.groups, group)
	if members, ok := r.groups[group]; ok {
		delete(members, id)
		// A group lives only as long as it has members
		if len(members) == 0 {
			delete(r.groups, group)
		}
	}
}

func (r *Registry) snapshot(ids Set[domain.ConnectionID], except domain.ConnectionID) []contract.Recipient {
	if len(ids) == 0 {
		return nil
	}
	return lo.FilterMap(lo.Keys(ids), func(id domain.ConnectionID, _ int) (contract.Recipient, bool) {
		conn, ok := r.connections[id]
		if !ok || id == except {
			return contract.Recipient{}, false
		}
		return contract.Recipient{ConnectionID: id, UserID: conn.identity.UserID, Sink: conn.sink}, true
	})
}
