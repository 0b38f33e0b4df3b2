package repositories

import (
	"time"

	"chatter/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerUserRepository implements UserRepository using BadgerDB. A secondary
// key per email address backs the uniqueness check and lookup for login.
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// storedUser is the persisted form of models.User. The API type hides the
// password hash from JSON, so the stored document needs its own
// serialization.
type storedUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

func toStoredUser(u *models.User) *storedUser {
	return &storedUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
}

func (s *storedUser) toModel() *models.User {
	return &models.User{
		ID:        s.ID,
		Username:  s.Username,
		Email:     s.Email,
		Password:  s.Password,
		CreatedAt: s.CreatedAt,
	}
}

// Insert persists a new user. Returns ErrDuplicate if the email is taken.
func (r *BadgerUserRepository) Insert(user *models.User) error {
	user.BeforeCreate()

	data, err := marshalEntity(toStoredUser(user))
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(userEmailKey(user.Email))
		if err == nil {
			return ErrDuplicate
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		if err := txn.Set(userKey(user.ID), data); err != nil {
			return err
		}
		return txn.Set(userEmailKey(user.Email), []byte(user.ID))
	})
}

// FindByID retrieves a user by ID
func (r *BadgerUserRepository) FindByID(id string) (*models.User, error) {
	var stored storedUser

	err := r.db.View(func(txn *badger.Txn) error {
		return getEntity(txn, userKey(id), &stored)
	})
	if err != nil {
		return nil, err
	}
	return stored.toModel(), nil
}

// FindByEmail retrieves a user by email address.
func (r *BadgerUserRepository) FindByEmail(email string) (*models.User, error) {
	var stored storedUser

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userEmailKey(email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}
		return getEntity(txn, userKey(id), &stored)
	})
	if err != nil {
		return nil, err
	}
	return stored.toModel(), nil
}
