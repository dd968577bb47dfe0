package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGroup_KindAndID(t *testing.T) {
	req := require.New(t)

	g := ChatGroup("c:42")
	req.Equal(Group("chat:c:42"), g)
	req.Equal(GroupChat, g.Kind())
	// Only the first colon separates the namespace
	req.Equal("c:42", g.ID())
}

func TestGroup_Reserved(t *testing.T) {
	tests := []struct {
		group    Group
		reserved bool
	}{
		{UserGroup("u1"), true},
		{RoleGroup(RoleMentor), true},
		{Broadcast, true},
		{ChatGroup("c1"), false},
		{BusinessGroup("b1"), false},
		{PitchGroup("p1"), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.group), func(t *testing.T) {
			require.Equal(t, tt.reserved, tt.group.Reserved())
		})
	}
}

func TestAutoGroups(t *testing.T) {
	req := require.New(t)
	identity := Identity{UserID: "u1", Role: RoleInvestor}

	groups := AutoGroups(identity)

	req.ElementsMatch([]Group{"user:u1", "role:investor", "broadcast:all"}, groups)
	for _, g := range groups {
		req.True(g.Reserved())
	}
}
