package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidID    = errors.New("invalid pet id")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name      string
	Species   string
	BirthDate *time.Time
	Image     string
}

// Create registra una mascota nueva: siempre sin adoptar y sin dueño.
func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	species := strings.TrimSpace(in.Species)

	if name == "" || species == "" || in.BirthDate == nil {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	p := Pet{
		ID:        uuid.NewString(),
		Name:      name,
		Species:   species,
		BirthDate: in.BirthDate,
		Adopted:   false,
		Owner:     nil,
		Image:     strings.TrimSpace(in.Image),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// CreateMany inserta mascotas ya armadas (mock generator).
func (s *Service) CreateMany(ctx context.Context, ps []Pet) error {
	if len(ps) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, ps)
}

func (s *Service) GetAll(ctx context.Context) ([]Pet, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	if uuid.Validate(id) != nil {
		return Pet{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Name      *string
	Species   *string
	BirthDate *time.Time
	Adopted   *bool
	Owner     *string
	Image     *string
}

func (in UpdateInput) empty() bool {
	return in.Name == nil && in.Species == nil && in.BirthDate == nil &&
		in.Adopted == nil && in.Owner == nil && in.Image == nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	if uuid.Validate(id) != nil {
		return Pet{}, ErrInvalidID
	}
	if in.empty() {
		return Pet{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		p.Species = strings.TrimSpace(*in.Species)
	}
	if in.BirthDate != nil {
		p.BirthDate = in.BirthDate
	}
	if in.Adopted != nil {
		p.Adopted = *in.Adopted
	}
	if in.Owner != nil {
		p.Owner = in.Owner
	}
	if in.Image != nil {
		p.Image = strings.TrimSpace(*in.Image)
	}

	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
