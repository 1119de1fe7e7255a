package mocking

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

const (
	defaultMockPets  = 100
	defaultMockUsers = 50
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/mocks", func(mr chi.Router) {
		mr.Get("/mockingpets", mockingPetsHandler(svc))
		mr.Get("/mockingusers", mockingUsersHandler(svc))
		mr.Post("/generateData", generateDataHandler(svc))
	})
}

// mockUserResponse sí incluye el hash: es data de prueba con una
// credencial fija conocida, no una cuenta real.
type mockUserResponse struct {
	ID        string   `json:"id"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	Pets      []string `json:"pets"`
}

type mockPetResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	BirthDate *time.Time `json:"birth_date"`
	Adopted   bool       `json:"adopted"`
	Owner     *string    `json:"owner"`
}

type generateDataRequest struct {
	// Punteros para distinguir "falta el campo" de cero.
	Users *int `json:"users"`
	Pets  *int `json:"pets"`
}

func mockingPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps, err := svc.GeneratePets(r.Context(), defaultMockPets)
		if err != nil {
			web.Error(w, http.StatusInternalServerError, "Error generating pets")
			return
		}
		web.Success(w, http.StatusOK, toMockPets(ps))
	}
}

func mockingUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		us, err := svc.GenerateUsers(r.Context(), defaultMockUsers)
		if err != nil {
			web.Error(w, http.StatusInternalServerError, "Error generating users")
			return
		}
		web.Success(w, http.StatusOK, toMockUsers(us))
	}
}

func generateDataHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req generateDataRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Error(w, http.StatusBadRequest, "users and pets must be numbers")
			return
		}

		if req.Users == nil || req.Pets == nil || *req.Users == 0 || *req.Pets == 0 {
			web.Error(w, http.StatusBadRequest, "users and pets are required")
			return
		}

		us, err := svc.GenerateAndInsertUsers(r.Context(), *req.Users)
		if err != nil {
			web.Error(w, http.StatusInternalServerError, "Error inserting users into database")
			return
		}

		ps, err := svc.GenerateAndInsertPets(r.Context(), *req.Pets)
		if err != nil {
			if errors.Is(err, ErrNoUsers) {
				web.Error(w, http.StatusInternalServerError, "No users found in the database")
				return
			}
			web.Error(w, http.StatusInternalServerError, "Error generating or inserting pets")
			return
		}

		web.SuccessMessage(w, http.StatusOK, "Mock data generated successfully", map[string]any{
			"users": toMockUsers(us),
			"pets":  toMockPets(ps),
		})
	}
}

func toMockUsers(us []users.User) []mockUserResponse {
	out := make([]mockUserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, mockUserResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Password:  u.Password,
			Role:      string(u.Role),
			Pets:      u.Pets,
		})
	}
	return out
}

func toMockPets(ps []pets.Pet) []mockPetResponse {
	out := make([]mockPetResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, mockPetResponse{
			ID:        p.ID,
			Name:      p.Name,
			Species:   p.Species,
			BirthDate: p.BirthDate,
			Adopted:   p.Adopted,
			Owner:     p.Owner,
		})
	}
	return out
}
