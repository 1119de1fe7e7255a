package config

import (
	"os"
	"strconv"
	"time"
)

// Config agrupa toda la configuración del proceso, leída una sola vez al inicio.
type Config struct {
	Addr      string
	DBDSN     string // vacío => repos in-memory
	JWTSecret string
	TokenTTL  time.Duration
	UploadDir string

	LogLevel  string
	LogFormat string
	AppName   string
}

// FromEnv construye la Config desde variables de entorno para que main quede liviano.
func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		if p := os.Getenv("PORT"); p != "" {
			addr = ":" + p
		} else {
			addr = ":8080"
		}
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// default solo para dev; en producción debe venir por entorno
		secret = "dev-secret-change-me"
	}

	ttl := time.Hour
	if v := os.Getenv("TOKEN_TTL_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			ttl = time.Duration(m) * time.Minute
		}
	}

	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "public/img"
	}

	return Config{
		Addr:      addr,
		DBDSN:     os.Getenv("DB_DSN"),
		JWTSecret: secret,
		TokenTTL:  ttl,
		UploadDir: uploadDir,
		LogLevel:  os.Getenv("LOG_LEVEL"),
		LogFormat: os.Getenv("LOG_FORMAT"),
		AppName:   os.Getenv("APP_NAME"),
	}
}
