package main

import (
	"net/http"
	"os"
	"time"

	"pet-adoptions/internal/platform/config"
	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env es opcional; en producción la config viene por entorno
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New(logger.Options{
		Level: logger.ParseLevel(cfg.LogLevel),
		JSON:  cfg.LogFormat == "json",
		App:   cfg.AppName,
	})

	r := router.NewRouter(router.Options{Cfg: cfg, Log: log})

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", logger.Fields{"addr": cfg.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
}
