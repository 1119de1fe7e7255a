package mocking

import (
	"context"
	"errors"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

var (
	// ErrNoUsers: no se pueden insertar mascotas mock sin usuarios en el store.
	ErrNoUsers = errors.New("no users found")
)

// mockPassword es la credencial fija de todos los usuarios mock; se
// hashea una vez por lote. Es para abaratar la generación de datos de
// prueba, no una propiedad de seguridad.
const mockPassword = "coder123"

var mockSpecies = []string{"dog", "cat", "bird", "rabbit"}

type Service struct {
	users *users.Service
	pets  *pets.Service
	hash  users.HashFunc
	faker *gofakeit.Faker
	now   func() time.Time
}

func NewService(usersSvc *users.Service, petsSvc *pets.Service, hash users.HashFunc) *Service {
	return &Service{
		users: usersSvc,
		pets:  petsSvc,
		hash:  hash,
		faker: gofakeit.New(0),
		now:   time.Now,
	}
}

// GenerateUsers produce n usuarios sintéticos sin persistirlos. Los
// emails son únicos dentro del lote y contra el snapshot de emails ya
// persistidos tomado al inicio (best effort: no protege contra inserts
// concurrentes durante la generación).
func (s *Service) GenerateUsers(ctx context.Context, n int) ([]users.User, error) {
	hashed, err := s.hash(mockPassword)
	if err != nil {
		return nil, err
	}

	existing, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(existing))
	for _, u := range existing {
		seen[u.Email] = struct{}{}
	}

	now := s.now()
	out := make([]users.User, 0, n)
	for i := 0; i < n; i++ {
		var email string
		for {
			email = s.faker.Email()
			if _, dup := seen[email]; !dup {
				break
			}
		}
		seen[email] = struct{}{}

		out = append(out, users.User{
			ID:        uuid.NewString(),
			FirstName: s.faker.FirstName(),
			LastName:  s.faker.LastName(),
			Email:     email,
			Password:  hashed,
			Role:      users.Role(s.faker.RandomString([]string{string(users.RoleUser), string(users.RoleAdmin)})),
			Pets:      []string{},
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out, nil
}

// GeneratePets produce n mascotas sintéticas sin persistirlas. El owner
// se elige uniforme entre los usuarios existentes o nil; con cero
// usuarios todas salen sin owner. Una mascota mock nunca sale con
// Adopted=true, aunque tenga owner asignado.
func (s *Service) GeneratePets(ctx context.Context, n int) ([]pets.Pet, error) {
	existing, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(existing))
	for _, u := range existing {
		ids = append(ids, u.ID)
	}
	return s.buildPets(ids, n), nil
}

// GenerateAndInsertUsers genera n usuarios y los persiste en bloque.
func (s *Service) GenerateAndInsertUsers(ctx context.Context, n int) ([]users.User, error) {
	us, err := s.GenerateUsers(ctx, n)
	if err != nil {
		return nil, err
	}
	if err := s.users.CreateMany(ctx, us); err != nil {
		return nil, err
	}
	return us, nil
}

// GenerateAndInsertPets genera n mascotas y las persiste. A diferencia
// de GeneratePets, exige que existan usuarios: sin usuarios falla y no
// inserta nada.
func (s *Service) GenerateAndInsertPets(ctx context.Context, n int) ([]pets.Pet, error) {
	existing, err := s.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, ErrNoUsers
	}

	ids := make([]string, 0, len(existing))
	for _, u := range existing {
		ids = append(ids, u.ID)
	}

	ps := s.buildPets(ids, n)
	if err := s.pets.CreateMany(ctx, ps); err != nil {
		return nil, err
	}
	return ps, nil
}

func (s *Service) buildPets(ownerIDs []string, n int) []pets.Pet {
	now := s.now()
	out := make([]pets.Pet, 0, n)
	for i := 0; i < n; i++ {
		bd := s.faker.DateRange(now.AddDate(-5, 0, 0), now)

		// posición len(ownerIDs) == sin owner
		var owner *string
		if pick := s.faker.Number(0, len(ownerIDs)); pick < len(ownerIDs) {
			id := ownerIDs[pick]
			owner = &id
		}

		out = append(out, pets.Pet{
			ID:        uuid.NewString(),
			Name:      s.faker.PetName(),
			Species:   s.faker.RandomString(mockSpecies),
			BirthDate: &bd,
			Adopted:   false,
			Owner:     owner,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return out
}
