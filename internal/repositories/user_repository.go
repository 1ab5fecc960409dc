package repositories

import (
	"context"
	"strings"
	"sync"

	"salon-backend/internal/models"
	"salon-backend/internal/timeutil"

	"github.com/google/uuid"
)

// UserRepository holds exactly two accounts, one per role. There is no user
// registration; only the credentials of an existing role can change.
type UserRepository struct {
	mu    sync.RWMutex
	users map[models.Role]*models.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[models.Role]*models.User),
	}
}

// Seed installs the credential set for a role, replacing any previous one.
func (r *UserRepository) Seed(_ context.Context, role models.Role, username, passwordHash string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[role] = &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		Role:         role,
		UpdatedAt:    timeutil.Now(),
	}
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepository) Get(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *UserRepository) GetByRole(_ context.Context, role models.Role) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[role]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// UpdateCredentials swaps the username and password hash of a role's account.
// The account id is preserved so issued tokens keep resolving.
func (r *UserRepository) UpdateCredentials(_ context.Context, role models.Role, username, passwordHash string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[role]
	if !ok {
		return nil, ErrNotFound
	}
	u.Username = username
	u.PasswordHash = passwordHash
	u.UpdatedAt = timeutil.Now()

	cp := *u
	return &cp, nil
}
