package repository

import (
	"encoding/json"

	"github.com/VIPUlNEGI1/Flight/internal/domain"
	"github.com/VIPUlNEGI1/Flight/internal/store"
)

type UserRepository struct {
	store store.Store
}

func NewUserRepo(s store.Store) *UserRepository {
	return &UserRepository{store: s}
}

func (r *UserRepository) List() []domain.User {
	raw, ok := r.store.Read(usersKey)
	if !ok {
		return nil
	}
	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil
	}
	return users
}

func (r *UserRepository) FindByEmail(email string) (*domain.User, error) {
	for _, u := range r.List() {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// Create appends a user, rejecting duplicate emails. Every lookup
// keys on email, so uniqueness is enforced at the write path.
func (r *UserRepository) Create(u domain.User) error {
	return r.store.Update(usersKey, func(raw json.RawMessage) (any, error) {
		current := decodeUsers(raw)
		for _, existing := range current {
			if existing.Email == u.Email {
				return nil, domain.ErrEmailTaken
			}
		}
		return append(current, u), nil
	})
}

func (r *UserRepository) Delete(email string) error {
	return r.store.Update(usersKey, func(raw json.RawMessage) (any, error) {
		current := decodeUsers(raw)
		kept := make([]domain.User, 0, len(current))
		found := false
		for _, u := range current {
			if u.Email == email {
				found = true
				continue
			}
			kept = append(kept, u)
		}
		if !found {
			return nil, domain.ErrUserNotFound
		}
		return kept, nil
	})
}

func decodeUsers(raw json.RawMessage) []domain.User {
	if raw == nil {
		return []domain.User{}
	}
	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		return []domain.User{}
	}
	return users
}
