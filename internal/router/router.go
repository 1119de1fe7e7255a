package router

import (
	"database/sql"
	"net/http"

	_ "pet-adoptions/docs"
	mem "pet-adoptions/internal/adapters/storage/memory"
	pg "pet-adoptions/internal/adapters/storage/postgres"
	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/mocking"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/sessions"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/middleware"
	"pet-adoptions/internal/platform/config"
	"pet-adoptions/internal/platform/credentials"
	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/platform/token"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Cfg config.Config
	Log logger.Logger

	// Opcional: si viene, usa Postgres. Si no, intenta por Cfg.DBDSN
	// y cae a in-memory (dev/tests).
	DB *sql.DB
}

func NewRouter(opts Options) http.Handler {
	log := opts.Log
	if log == nil {
		log = logger.NewFromEnv()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	var (
		userRepo     users.Repository
		petRepo      pets.Repository
		adoptionRepo adoptions.Repository
	)

	db := opts.DB
	if db == nil && opts.Cfg.DBDSN != "" {
		opened, err := pg.Open(opts.Cfg.DBDSN)
		if err != nil {
			log.Error("postgres unavailable, falling back to in-memory", logger.Fields{"error": err.Error()})
		} else {
			db = opened
		}
	}

	if db != nil {
		userRepo = pg.NewUsersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		adoptionRepo = pg.NewAdoptionsRepo(db)
	} else {
		userRepo = mem.NewUsersRepo()
		petRepo = mem.NewPetsRepo()
		adoptionRepo = mem.NewAdoptionsRepo()
	}

	tokens := token.New(opts.Cfg.JWTSecret, opts.Cfg.TokenTTL)

	// Services por módulo
	usersSvc := users.NewService(userRepo, credentials.Hash)
	petsSvc := pets.NewService(petRepo)
	adoptionsSvc := adoptions.NewService(adoptionRepo, usersSvc, petsSvc)
	sessionsSvc := sessions.NewService(usersSvc, credentials.Hash, credentials.Verify, tokens)
	mockingSvc := mocking.NewService(usersSvc, petsSvc, credentials.Hash)

	// Rutas por módulo
	users.RegisterRoutes(r, usersSvc, credentials.Hash)
	pets.RegisterRoutes(r, petsSvc, opts.Cfg.UploadDir)
	adoptions.RegisterRoutes(r, adoptionsSvc)
	sessions.RegisterRoutes(r, sessionsSvc)
	mocking.RegisterRoutes(r, mockingSvc)

	r.Get("/api-docs/*", httpSwagger.Handler(
		httpSwagger.URL("/api-docs/doc.json"),
	))

	return r
}
