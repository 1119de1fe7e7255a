package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoptions/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, hash HashFunc) {
	r.Route("/api/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc, hash))
		ur.Get("/{uid}", getUserHandler(svc))
		ur.Put("/{uid}", updateUserHandler(svc))
		ur.Delete("/{uid}", deleteUserHandler(svc))
	})
}

type createUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

type updateUserRequest struct {
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	Email     *string   `json:"email"`
	Password  *string   `json:"password"`
	Role      *string   `json:"role"`
	Pets      *[]string `json:"pets"`
}

// userResponse omite el hash de contraseña a propósito.
type userResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Pets      []string  `json:"pets"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		us, err := svc.GetAll(r.Context())
		if err != nil {
			web.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]userResponse, 0, len(us))
		for _, u := range us {
			out = append(out, toUserResponse(u))
		}
		web.Success(w, http.StatusOK, out)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "uid"))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidID):
				web.Error(w, http.StatusBadRequest, "Invalid user ID")
			case errors.Is(err, ErrNotFound):
				web.Error(w, http.StatusNotFound, "User not found")
			default:
				web.Error(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		web.Success(w, http.StatusOK, toUserResponse(u))
	}
}

func createUserHandler(svc *Service, hash HashFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
			web.Error(w, http.StatusBadRequest, "First name, last name, email, and password are required")
			return
		}

		hashed, err := hash(req.Password)
		if err != nil {
			web.Error(w, http.StatusBadRequest, "Invalid password")
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  hashed,
			Role:      Role(req.Role),
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailInUse):
				web.Error(w, http.StatusBadRequest, "Email already in use")
			case errors.Is(err, ErrInvalidInput):
				web.Error(w, http.StatusBadRequest, "First name, last name, email, and password are required")
			default:
				web.Error(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		web.SuccessMessage(w, http.StatusCreated, "User created successfully", toUserResponse(u))
	}
}

func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		var role *Role
		if req.Role != nil {
			rr := Role(*req.Role)
			role = &rr
		}

		u, err := svc.Update(r.Context(), chi.URLParam(r, "uid"), UpdateInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
			Role:      role,
			Pets:      req.Pets,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidID):
				web.Error(w, http.StatusBadRequest, "Invalid user ID")
			case errors.Is(err, ErrInvalidInput):
				if req.Password != nil {
					web.Error(w, http.StatusBadRequest, "Password cannot be empty")
					return
				}
				web.Error(w, http.StatusBadRequest, "No update data provided")
			case errors.Is(err, ErrNotFound):
				web.Error(w, http.StatusNotFound, "User not found")
			default:
				web.Error(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		web.SuccessMessage(w, http.StatusOK, "User updated", toUserResponse(u))
	}
}

func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "uid")); err != nil {
			switch {
			case errors.Is(err, ErrInvalidID):
				web.Error(w, http.StatusBadRequest, "Invalid user ID")
			case errors.Is(err, ErrNotFound):
				web.Error(w, http.StatusNotFound, "User not found")
			default:
				web.Error(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		web.SuccessMessage(w, http.StatusOK, "User deleted", nil)
	}
}

func toUserResponse(u User) userResponse {
	pets := u.Pets
	if pets == nil {
		pets = []string{}
	}
	return userResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      string(u.Role),
		Pets:      pets,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
