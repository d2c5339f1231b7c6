package dsn

import (
	"fmt"
	"os"
)

// FromEnv собирает postgres DSN из переменных окружения (см. .env).
func FromEnv() string {
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "shiptracker")
	pass := os.Getenv("DB_PASS")
	name := envOr("DB_NAME", "shiptracker")
	sslmode := envOr("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, pass, name, sslmode)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
