package adoptions

import (
	"errors"
	"net/http"
	"time"

	"pet-adoptions/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/adoptions", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc))
		ar.Get("/{aid}", getAdoptionHandler(svc))
		ar.Post("/{uid}/{pid}", adoptHandler(svc))
	})
}

type adoptionResponse struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Pet       string    `json:"pet"`
	CreatedAt time.Time `json:"created_at"`
}

func listAdoptionsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		as, err := svc.GetAll(r.Context())
		if err != nil {
			web.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]adoptionResponse, 0, len(as))
		for _, a := range as {
			out = append(out, toAdoptionResponse(a))
		}
		web.Success(w, http.StatusOK, out)
	}
}

func getAdoptionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "aid"))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidID):
				web.Error(w, http.StatusBadRequest, "Invalid adoption ID format")
			case errors.Is(err, ErrNotFound):
				web.Error(w, http.StatusNotFound, "Adoption not found")
			default:
				web.Error(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}
		web.Success(w, http.StatusOK, toAdoptionResponse(a))
	}
}

func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Adopt(r.Context(), chi.URLParam(r, "uid"), chi.URLParam(r, "pid"))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidID):
				web.Error(w, http.StatusBadRequest, "Invalid user or pet ID format")
			case errors.Is(err, ErrUserNotFound):
				web.Error(w, http.StatusNotFound, "User not found")
			case errors.Is(err, ErrPetNotFound):
				web.Error(w, http.StatusNotFound, "Pet not found")
			case errors.Is(err, ErrAlreadyAdopted):
				web.Error(w, http.StatusBadRequest, "Pet is already adopted")
			default:
				web.Error(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		web.SuccessMessage(w, http.StatusCreated, "Pet adopted", toAdoptionResponse(a))
	}
}

func toAdoptionResponse(a Adoption) adoptionResponse {
	return adoptionResponse{
		ID:        a.ID,
		Owner:     a.Owner,
		Pet:       a.Pet,
		CreatedAt: a.CreatedAt,
	}
}
