package repository

import (
	"errors"
	"sync"

	"github.com/SundayYogurt/signup_service/internal/domain"
)

// inMemoryUserRepository keeps users in a map behind a mutex. It backs
// the service when no DATABASE_DSN is configured and doubles as the
// store used by the test suites.
type inMemoryUserRepository struct {
	mu    sync.Mutex
	seq   uint
	users map[uint]*domain.User
}

func NewInMemoryUserRepository() UserRepository {
	return &inMemoryUserRepository{users: map[uint]*domain.User{}}
}

func clone(u *domain.User) *domain.User {
	c := *u
	if u.ActivationToken != nil {
		t := *u.ActivationToken
		c.ActivationToken = &t
	}
	return &c
}

func (r *inMemoryUserRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	user.ID = r.seq
	r.users[user.ID] = clone(user)
	return user, nil
}

func (r *inMemoryUserRepository) FindUserByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepository) FindUserByActivationToken(token string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Inactive && u.ActivationToken != nil && *u.ActivationToken == token {
			return clone(u), nil
		}
	}
	return nil, nil
}

func (r *inMemoryUserRepository) SaveUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return errors.New("failed to save user")
	}
	r.users[user.ID] = clone(user)
	return nil
}

func (r *inMemoryUserRepository) DeleteUser(user *domain.User) error {
	if user == nil {
		return errors.New("nil user")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, user.ID)
	return nil
}

func (r *inMemoryUserRepository) CountUsers() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.users)), nil
}

func (r *inMemoryUserRepository) DeleteAllUsers() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = map[uint]*domain.User{}
	return nil
}
