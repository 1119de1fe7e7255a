package users

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID map[string]User
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]User{}}
}

func (r *testRepo) GetAll(ctx context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (User, error) {
	u, ok := r.byID[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) Create(ctx context.Context, u User) error {
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) CreateMany(ctx context.Context, us []User) error {
	for _, u := range us {
		r.byID[u.ID] = u
	}
	return nil
}

func (r *testRepo) Update(ctx context.Context, u User) error {
	if _, ok := r.byID[u.ID]; !ok {
		return ErrNotFound
	}
	r.byID[u.ID] = u
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// hash falso y observable: evita bcrypt en unit tests
type countingHash struct {
	calls int
}

func (h *countingHash) fn(pw string) (string, error) {
	h.calls++
	return "hashed:" + pw, nil
}

func newService() (*Service, *testRepo, *countingHash) {
	repo := newTestRepo()
	h := &countingHash{}
	return NewService(repo, h.fn), repo, h
}

// -------------------------
// Tests
// -------------------------

func TestCreate_AssignsDefaults(t *testing.T) {
	svc, _, _ := newService()

	u, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Juan",
		LastName:  "Pérez",
		Email:     "juan@example.com",
		Password:  "already-hashed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.ID == "" {
		t.Fatal("id not assigned")
	}
	if u.Role != RoleUser {
		t.Fatalf("expected default role user, got %s", u.Role)
	}
	if u.Pets == nil || len(u.Pets) != 0 {
		t.Fatalf("expected empty pets list, got %v", u.Pets)
	}
	// Create no re-hashea: la contraseña llega ya hasheada
	if u.Password != "already-hashed" {
		t.Fatalf("password was altered: %s", u.Password)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc, _, _ := newService()

	in := CreateInput{FirstName: "A", LastName: "B", Email: "dup@example.com", Password: "h"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := svc.Create(context.Background(), in)
	if !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestCreate_MissingFields(t *testing.T) {
	svc, repo, _ := newService()

	_, err := svc.Create(context.Background(), CreateInput{FirstName: "A", Email: "a@example.com"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("store mutated on invalid input")
	}
}

func TestUpdate_RehashesPasswordOnlyWhenPresent(t *testing.T) {
	svc, repo, h := newService()

	u, err := svc.Create(context.Background(), CreateInput{
		FirstName: "Juan", LastName: "Pérez", Email: "juan@example.com", Password: "h0",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// update sin password: no llama al hash
	name := "Juana"
	if _, err := svc.Update(context.Background(), u.ID, UpdateInput{FirstName: &name}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if h.calls != 0 {
		t.Fatalf("hash called %d times on password-less update", h.calls)
	}

	// update con password: re-hashea
	pw := "nuevo-secreto"
	updated, err := svc.Update(context.Background(), u.ID, UpdateInput{Password: &pw})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if h.calls != 1 {
		t.Fatalf("expected 1 hash call, got %d", h.calls)
	}
	if updated.Password != "hashed:nuevo-secreto" {
		t.Fatalf("password not re-hashed: %s", updated.Password)
	}
	if repo.byID[u.ID].Password != "hashed:nuevo-secreto" {
		t.Fatal("re-hashed password not persisted")
	}
}

func TestUpdate_EmptyPasswordRejected(t *testing.T) {
	svc, _, _ := newService()

	u, err := svc.Create(context.Background(), CreateInput{
		FirstName: "A", LastName: "B", Email: "x@example.com", Password: "h",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	empty := ""
	_, err = svc.Update(context.Background(), u.ID, UpdateInput{Password: &empty})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdate_NoFields(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Update(context.Background(), uuid.NewString(), UpdateInput{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestIDValidation(t *testing.T) {
	svc, _, _ := newService()

	if _, err := svc.GetByID(context.Background(), "not-an-id"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if err := svc.Delete(context.Background(), "not-an-id"); !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
	if _, err := svc.GetByID(context.Background(), uuid.NewString()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
