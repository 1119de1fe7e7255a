package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoptions/internal/domain/users"
)

type usersRepo struct {
	mu   sync.RWMutex
	byID map[string]users.User
}

func NewUsersRepo() users.Repository {
	return &usersRepo{
		byID: make(map[string]users.User),
	}
}

func (r *usersRepo) GetAll(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}

	// Orden estable por created_at asc (solo para consistencia en dev)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *usersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *usersRepo) GetByEmail(ctx context.Context, email string) (users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *usersRepo) Create(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	if _, exists := r.byID[u.ID]; exists {
		return errors.New("user already exists")
	}
	r.byID[u.ID] = u
	return nil
}

func (r *usersRepo) CreateMany(ctx context.Context, us []users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range us {
		if strings.TrimSpace(u.ID) == "" {
			return errors.New("user id required")
		}
		r.byID[u.ID] = u
	}
	return nil
}

func (r *usersRepo) Update(ctx context.Context, u users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[u.ID]; !exists {
		return users.ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *usersRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return users.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
