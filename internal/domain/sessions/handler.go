package sessions

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoptions/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// CookieName es la cookie donde viaja el token de sesión.
const CookieName = "adoptions_session"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/sessions", func(sr chi.Router) {
		sr.Post("/register", registerHandler(svc))
		sr.Post("/login", loginHandler(svc))
		sr.Get("/current", currentHandler(svc))
	})
}

type registerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		id, err := svc.Register(r.Context(), RegisterInput{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				web.Error(w, http.StatusBadRequest, "Incomplete values")
			case errors.Is(err, ErrUserExists):
				web.Error(w, http.StatusBadRequest, "User already exists")
			default:
				web.Error(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		web.Success(w, http.StatusOK, id)
	}
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		tok, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				web.Error(w, http.StatusBadRequest, "Incomplete values")
			case errors.Is(err, ErrUserNotFound):
				web.Error(w, http.StatusNotFound, "User doesn't exist")
			case errors.Is(err, ErrBadPassword):
				web.Error(w, http.StatusBadRequest, "Incorrect password")
			default:
				web.Error(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     CookieName,
			Value:    tok,
			Path:     "/",
			MaxAge:   svc.TokenTTL(),
			HttpOnly: true,
		})
		web.SuccessMessage(w, http.StatusOK, "Logged in", nil)
	}
}

func currentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil {
			web.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		claims, err := svc.Current(cookie.Value)
		if err != nil {
			web.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		web.Success(w, http.StatusOK, map[string]string{
			"email":      claims.Email,
			"first_name": claims.FirstName,
			"last_name":  claims.LastName,
			"role":       claims.Role,
		})
	}
}
