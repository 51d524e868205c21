package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"JWT_SECRET", "JWT_ACCESS_EXPIRY", "JWT_REFRESH_EXPIRY",
		"ADMIN_EMAILS", "ADMIN_USER_IDS", "ADMIN_TOKEN", "PORT", "CORS_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "annadata_db", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "*", cfg.CORSOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "annadata")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("PORT", "3001")

	cfg := Load()

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, "annadata", cfg.DBUser)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, "3001", cfg.Port)
}

func TestLoadInvalidExpiryFallsBack(t *testing.T) {
	t.Setenv("JWT_ACCESS_EXPIRY", "soon")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "pw",
		DBName:     "annadata_db",
		DBSSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=pw dbname=annadata_db port=5432 sslmode=disable TimeZone=UTC",
		cfg.DSN())
}
