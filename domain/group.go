// Package domain contains core concepts of the hub.
// This file defines Group names and the reserved namespaces.
package domain

import "strings"

type GroupKind string

const (
	GroupUser      GroupKind = "user"
	GroupRole      GroupKind = "role"
	GroupChat      GroupKind = "chat"
	GroupBusiness  GroupKind = "business"
	GroupPitch     GroupKind = "pitch"
	GroupBroadcast GroupKind = "broadcast"
)

// Group is a named logical channel such as "chat:42".
type Group string

// Broadcast is joined by every connection at registration.
const Broadcast Group = "broadcast:all"

func newGroup(kind GroupKind, id string) Group {
	return Group(string(kind) + ":" + id)
}

func UserGroup(userID string) Group { return newGroup(GroupUser, userID) }
func RoleGroup(role Role) Group { return newGroup(GroupRole, string(role)) }
func ChatGroup(chatID string) Group { return newGroup(GroupChat, chatID) }
func BusinessGroup(businessID string) Group { return newGroup(GroupBusiness, businessID) }
func PitchGroup(pitchID string) Group { return newGroup(GroupPitch, pitchID) }

func (g Group) Kind() GroupKind {
	kind, _, _ := strings.Cut(string(g), ":")
	return GroupKind(kind)
}

func (g Group) ID() string {
	_, id, _ := strings.Cut(string(g), ":")
	return id
}

// Reserved groups get their members at registration time and cannot be
// joined or left on request.
func (g Group) Reserved() bool {
	switch g.Kind() {
	case GroupUser, GroupRole, GroupBroadcast:
		return true
	default:
		return false
	}
}

// AutoGroups lists the groups a connection of the identity belongs to
// as soon as it is registered.
func AutoGroups(identity Identity) []Group {
	return []Group{UserGroup(identity.UserID), RoleGroup(identity.Role), Broadcast}
}
