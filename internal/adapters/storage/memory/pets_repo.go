package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-adoptions/internal/domain/pets"
)

type petsRepo struct {
	mu   sync.RWMutex
	byID map[string]pets.Pet
}

func NewPetsRepo() pets.Repository {
	return &petsRepo{
		byID: make(map[string]pets.Pet),
	}
}

func (r *petsRepo) GetAll(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *petsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petsRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petsRepo) CreateMany(ctx context.Context, ps []pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range ps {
		if strings.TrimSpace(p.ID) == "" {
			return errors.New("pet id required")
		}
		r.byID[p.ID] = p
	}
	return nil
}

func (r *petsRepo) Update(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[p.ID]; !exists {
		return pets.ErrNotFound
	}
	r.byID[p.ID] = p
	return nil
}

func (r *petsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return pets.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
