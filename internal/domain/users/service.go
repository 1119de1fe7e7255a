package users

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidID    = errors.New("invalid user id")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmailInUse   = errors.New("email already in use")
	ErrNotFound     = errors.New("user not found")
)

// HashFunc transforma una contraseña en claro a su hash persistible.
type HashFunc func(password string) (string, error)

type Service struct {
	repo Repository
	hash HashFunc
	now  func() time.Time
}

func NewService(repo Repository, hash HashFunc) *Service {
	return &Service{
		repo: repo,
		hash: hash,
		now:  time.Now,
	}
}

type CreateInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string // ya hasheada: el service no re-hashea en Create
	Role      Role
}

// Create da de alta un usuario. El email debe ser único; la contraseña
// llega ya hasheada por el caller (registro o mock generator).
func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)
	email := strings.TrimSpace(in.Email)

	if first == "" || last == "" || email == "" || strings.TrimSpace(in.Password) == "" {
		return User{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailInUse
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	role := in.Role
	if role == "" {
		role = RoleUser
	}

	now := s.now()
	u := User{
		ID:        uuid.NewString(),
		FirstName: first,
		LastName:  last,
		Email:     email,
		Password:  in.Password,
		Role:      role,
		Pets:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// CreateMany inserta usuarios ya armados (mock generator). No valida
// unicidad de emails entre sí: el generador garantiza eso por lote.
func (s *Service) CreateMany(ctx context.Context, us []User) error {
	if len(us) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, us)
}

func (s *Service) GetAll(ctx context.Context) ([]User, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	if uuid.Validate(id) != nil {
		return User{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return User{}, ErrInvalidInput
	}
	return s.repo.GetByEmail(ctx, email)
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string // en claro; se re-hashea acá si viene
	Role      *Role
	Pets      *[]string
}

func (in UpdateInput) empty() bool {
	return in.FirstName == nil && in.LastName == nil && in.Email == nil &&
		in.Password == nil && in.Role == nil && in.Pets == nil
}

// Update aplica un update parcial. La contraseña se re-hashea si y solo si
// viene presente y no vacía; vacía es un error, no un "borrar contraseña".
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (User, error) {
	if uuid.Validate(id) != nil {
		return User{}, ErrInvalidID
	}
	if in.empty() {
		return User{}, ErrInvalidInput
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.FirstName != nil {
		u.FirstName = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		u.LastName = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.Role != nil {
		u.Role = *in.Role
	}
	if in.Pets != nil {
		u.Pets = *in.Pets
	}
	if in.Password != nil {
		if strings.TrimSpace(*in.Password) == "" {
			return User{}, ErrInvalidInput
		}
		hashed, err := s.hash(*in.Password)
		if err != nil {
			return User{}, err
		}
		u.Password = hashed
	}

	u.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return ErrInvalidID
	}
	return s.repo.Delete(ctx, id)
}
