package adoptions

import (
	"context"
	"errors"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"

	"github.com/google/uuid"
)

var (
	ErrInvalidID      = errors.New("invalid id")
	ErrNotFound       = errors.New("adoption not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrPetNotFound    = errors.New("pet not found")
	ErrAlreadyAdopted = errors.New("pet already adopted")
)

// Service orquesta el workflow de adopción sobre los services de
// usuarios y mascotas, más su propio repo de adopciones.
type Service struct {
	repo  Repository
	users *users.Service
	pets  *pets.Service
	now   func() time.Time
}

func NewService(repo Repository, usersSvc *users.Service, petsSvc *pets.Service) *Service {
	return &Service{
		repo:  repo,
		users: usersSvc,
		pets:  petsSvc,
		now:   time.Now,
	}
}

// Adopt ejecuta "el usuario userID adopta la mascota petID".
//
// La secuencia es: validar IDs, leer usuario, leer mascota, chequear
// adopted, crear Adoption, actualizar user.Pets, marcar la mascota.
// Cualquier fallo antes de crear la Adoption deja el store intacto.
// Los tres writes finales NO son atómicos: un fallo a mitad de camino
// deja estado intermedio (Adoption creada sin mascota marcada), y dos
// Adopt concurrentes sobre la misma mascota pueden pasar ambos el
// chequeo de adopted. Ese es el comportamiento del sistema, no se
// envuelve en transacción ni se compensa.
func (s *Service) Adopt(ctx context.Context, userID, petID string) (Adoption, error) {
	if uuid.Validate(userID) != nil || uuid.Validate(petID) != nil {
		return Adoption{}, ErrInvalidID
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return Adoption{}, ErrUserNotFound
		}
		return Adoption{}, err
	}

	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			return Adoption{}, ErrPetNotFound
		}
		return Adoption{}, err
	}

	if p.Adopted {
		return Adoption{}, ErrAlreadyAdopted
	}

	a := Adoption{
		ID:        uuid.NewString(),
		Owner:     u.ID,
		Pet:       p.ID,
		CreatedAt: s.now(),
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return Adoption{}, err
	}

	userPets := append(u.Pets, p.ID)
	if _, err := s.users.Update(ctx, u.ID, users.UpdateInput{Pets: &userPets}); err != nil {
		return Adoption{}, err
	}

	adopted := true
	if _, err := s.pets.Update(ctx, p.ID, pets.UpdateInput{Adopted: &adopted, Owner: &u.ID}); err != nil {
		return Adoption{}, err
	}

	return a, nil
}

func (s *Service) GetAll(ctx context.Context) ([]Adoption, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Adoption, error) {
	if uuid.Validate(id) != nil {
		return Adoption{}, ErrInvalidID
	}
	return s.repo.GetByID(ctx, id)
}
