package pets

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pet-adoptions/internal/platform/web"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const maxImageBytes = 5 << 20 // 5 MiB por imagen

func RegisterRoutes(r chi.Router, svc *Service, uploadDir string) {
	r.Route("/api/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Post("/withimage", createPetWithImageHandler(svc, uploadDir))
		pr.Get("/{pid}", getPetHandler(svc))
		pr.Put("/{pid}", updatePetHandler(svc))
		pr.Delete("/{pid}", deletePetHandler(svc))
	})
}

type createPetRequest struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	BirthDate string `json:"birth_date"` // YYYY-MM-DD
}

type updatePetRequest struct {
	Name      *string `json:"name"`
	Species   *string `json:"species"`
	BirthDate *string `json:"birth_date"` // YYYY-MM-DD
	Adopted   *bool   `json:"adopted"`
	Owner     *string `json:"owner"`
	Image     *string `json:"image"`
}

type petResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Species   string     `json:"species"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Adopted   bool       `json:"adopted"`
	Owner     *string    `json:"owner"`
	Image     string     `json:"image,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ps, err := svc.GetAll(r.Context())
		if err != nil {
			web.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		out := make([]petResponse, 0, len(ps))
		for _, p := range ps {
			out = append(out, toPetResponse(p))
		}
		web.Success(w, http.StatusOK, out)
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "pid"))
		if err != nil {
			writePetError(w, err)
			return
		}
		web.Success(w, http.StatusOK, toPetResponse(p))
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		bd, ok := parseBirthDate(w, req.BirthDate)
		if !ok {
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			BirthDate: bd,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				web.Error(w, http.StatusBadRequest, "Name, species and birth_date are required")
				return
			}
			web.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		web.Success(w, http.StatusCreated, toPetResponse(p))
	}
}

// createPetWithImageHandler recibe multipart/form-data con campos
// name, species, birth_date y el archivo "image".
func createPetWithImageHandler(svc *Service, uploadDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxImageBytes); err != nil {
			web.Error(w, http.StatusBadRequest, "Invalid multipart form")
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			web.Error(w, http.StatusBadRequest, "Image is required")
			return
		}
		defer file.Close()

		bd, ok := parseBirthDate(w, r.FormValue("birth_date"))
		if !ok {
			return
		}

		name := r.FormValue("name")
		species := r.FormValue("species")
		if strings.TrimSpace(name) == "" || strings.TrimSpace(species) == "" || bd == nil {
			web.Error(w, http.StatusBadRequest, "Name, species and birth_date are required")
			return
		}

		imagePath, err := saveImage(uploadDir, header.Filename, file)
		if err != nil {
			web.Error(w, http.StatusInternalServerError, "Could not store image")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:      name,
			Species:   species,
			BirthDate: bd,
			Image:     imagePath,
		})
		if err != nil {
			web.Error(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		web.Success(w, http.StatusCreated, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.Error(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		var bd *time.Time
		if req.BirthDate != nil {
			parsed, ok := parseBirthDate(w, *req.BirthDate)
			if !ok {
				return
			}
			bd = parsed
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "pid"), UpdateInput{
			Name:      req.Name,
			Species:   req.Species,
			BirthDate: bd,
			Adopted:   req.Adopted,
			Owner:     req.Owner,
			Image:     req.Image,
		})
		if err != nil {
			writePetError(w, err)
			return
		}

		web.SuccessMessage(w, http.StatusOK, "Pet updated", toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "pid")); err != nil {
			writePetError(w, err)
			return
		}
		web.SuccessMessage(w, http.StatusOK, "Pet deleted", nil)
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:        p.ID,
		Name:      p.Name,
		Species:   p.Species,
		BirthDate: p.BirthDate,
		Adopted:   p.Adopted,
		Owner:     p.Owner,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func writePetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		web.Error(w, http.StatusBadRequest, "Invalid pet ID")
	case errors.Is(err, ErrInvalidInput):
		web.Error(w, http.StatusBadRequest, "No update data provided")
	case errors.Is(err, ErrNotFound):
		web.Error(w, http.StatusNotFound, "Pet not found")
	default:
		web.Error(w, http.StatusInternalServerError, "Internal server error")
	}
}

// parseBirthDate valida el formato YYYY-MM-DD; escribe el 400 si es inválido.
// Vacío devuelve (nil, true): que el service decida si era requerido.
func parseBirthDate(w http.ResponseWriter, raw string) (*time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		web.Error(w, http.StatusBadRequest, "birth_date must be YYYY-MM-DD")
		return nil, false
	}
	return &t, true
}

func saveImage(uploadDir, original string, src io.Reader) (string, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", err
	}

	name := uuid.NewString() + filepath.Ext(original)
	path := filepath.Join(uploadDir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, maxImageBytes)); err != nil {
		_ = os.Remove(path)
		return "", err
	}
	return path, nil
}
