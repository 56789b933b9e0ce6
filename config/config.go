package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/joho/godotenv"
)

var (
	AppName      string
	AppAddr      string
	AllowOrigins string
	FormTTL      time.Duration
	FooterHTML   string
)

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	AppName = getEnv("APP_NAME", "registro")
	AppAddr = getEnv("APP_ADDR", "0.0.0.0:3000")
	AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	FormTTL = getDuration("FORM_TTL", 30*time.Minute)
	FooterHTML = getEnv("FOOTER_HTML", `¿Ya tienes cuenta? <a href="/login">Inicia sesión</a>`)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go duration strings ("15m", "1h").
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warnf("invalid %s=%q, using %s", key, raw, fallback)
		return fallback
	}
	return d
}
