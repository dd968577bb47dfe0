package repositories

import (
	"accelerator-hub/domain"
	"accelerator-hub/errors"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(openTestDB(t))
	createdAt := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)

	// Given a new mentor
	user := User{ID: "u-42", Role: domain.RoleMentor, CreatedAt: createdAt}
	req.NoError(repo.CreateUser(user))

	// When reading it back
	got, err := repo.GetUser("u-42")

	// Then every field survives
	req.NoError(err)
	req.Equal(user, got)

	// And the id cannot be taken twice
	req.ErrorIs(repo.CreateUser(user), errors.ErrUserAlreadyExists)
}

func TestUserRepository_GetUser_NotFound(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(openTestDB(t))

	_, err := repo.GetUser("nobody")
	req.ErrorIs(err, errors.ErrUserNotFound)
}

func TestUserRepository_SaveUser_Upserts(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(openTestDB(t))
	user := User{ID: "u-1", Role: domain.RoleInvestor, CreatedAt: time.UnixMilli(1700000000000).UTC()}
	req.NoError(repo.SaveUser(user))

	// When the user gets disabled
	user.Disabled = true
	req.NoError(repo.SaveUser(user))

	got, err := repo.GetUser("u-1")
	req.NoError(err)
	req.True(got.Disabled)
}

func TestUserRepository_RejectsInvalidUsers(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(openTestDB(t))

	req.ErrorIs(repo.SaveUser(User{ID: "u-1", Role: "admin"}), errors.ErrUnknownRole)
	req.Error(repo.SaveUser(User{Role: domain.RoleMentor}))
}

func TestUserRepository_ListUsers_SortedByID(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository(openTestDB(t))

	for _, id := range []string{"c", "a", "b"} {
		req.NoError(repo.CreateUser(User{ID: id, Role: domain.RoleEntrepreneur, CreatedAt: time.Now()}))
	}

	users, err := repo.ListUsers()
	req.NoError(err)
	req.Len(users, 3)
	req.Equal("a", users[0].ID)
	req.Equal("c", users[2].ID)
}
