package auth

import (
	"os"
	"time"
)

// Config carries token signing settings.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// DefaultConfig reads auth settings from the environment. The development
// fallback secret only applies when JWT_SECRET is unset.
func DefaultConfig() Config {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-me"
	}
	return Config{
		Secret:   secret,
		TokenTTL: 2 * time.Hour,
	}
}
