//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"accelerator-hub/domain"
	"accelerator-hub/errors"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

const userPrefix = "user:"

// IUserRepository is the identity directory shared with the CRUD API.
// The hub only reads it; hubctl writes it.
type IUserRepository interface {
	CreateUser(user User) error
	SaveUser(user User) error
	GetUser(id string) (User, error)
	ListUsers() ([]User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

type User struct {
	ID        string
	Role      domain.Role
	Disabled  bool
	CreatedAt time.Time
}

// diskUser is the CBOR record stored under "user:<id>".
type diskUser struct {
	ID        string `cbor:"1,keyasint"`
	Role      string `cbor:"2,keyasint"`
	Disabled  bool   `cbor:"3,keyasint,omitempty"`
	CreatedAt int64  `cbor:"4,keyasint"`
}

var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("repositories: CBOR encoder initialization failed: " + err.Error())
	}
}

// CreateUser fails with ErrUserAlreadyExists when the id is taken.
func (u *UserRepository) CreateUser(user User) error {
	data, err := encode(user)
	if err != nil {
		return err
	}
	return u.db.Update(func(txn *badger.Txn) error {
		key := []byte(userPrefix + user.ID)
		if _, err := txn.Get(key); err == nil {
			return fmt.Errorf("%w: %s", errors.ErrUserAlreadyExists, user.ID)
		}
		return txn.Set(key, data)
	})
}

// SaveUser inserts or replaces the user.
func (u *UserRepository) SaveUser(user User) error {
	data, err := encode(user)
	if err != nil {
		return err
	}
	return u.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(userPrefix+user.ID), data)
	})
}

func (u *UserRepository) GetUser(id string) (User, error) {
	var record diskUser
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(userPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return cbor.Unmarshal(val, &record)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return User{}, fmt.Errorf("%w: %s", errors.ErrUserNotFound, id)
	}
	if err != nil {
		return User{}, err
	}
	return toUser(record)
}

// ListUsers scans the "user:" prefix and returns users sorted by id.
func (u *UserRepository) ListUsers() ([]User, error) {
	var users []User
	err := u.db.View(func(txn *badger.Txn) error {
		prefix := []byte(userPrefix)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var record diskUser
			if err := it.Item().Value(func(val []byte) error {
				return cbor.Unmarshal(val, &record)
			}); err != nil {
				return err
			}
			user, err := toUser(record)
			if err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, err
}

func encode(user User) ([]byte, error) {
	if user.ID == "" {
		return nil, fmt.Errorf("user id is empty")
	}
	if _, err := domain.ParseRole(string(user.Role)); err != nil {
		return nil, err
	}
	return encMode.Marshal(diskUser{
		ID:        user.ID,
		Role:      string(user.Role),
		Disabled:  user.Disabled,
		CreatedAt: user.CreatedAt.UnixMilli(),
	})
}

func toUser(record diskUser) (User, error) {
	role, err := domain.ParseRole(record.Role)
	if err != nil {
		return User{}, err
	}
	return User{
		ID:        record.ID,
		Role:      role,
		Disabled:  record.Disabled,
		CreatedAt: time.UnixMilli(record.CreatedAt).UTC(),
	}, nil
}

// DecodeUser reads a raw "user:" record, used by the debug inspector.
func DecodeUser(val []byte) (User, error) {
	var record diskUser
	if err := cbor.Unmarshal(val, &record); err != nil {
		return User{}, err
	}
	return toUser(record)
}
