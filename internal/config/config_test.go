package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetConfig(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "BADGER")
	t.Setenv("RATE_LIMIT_TIME_FRAME", "30s")
	t.Setenv("ENV", "Production")
	t.Setenv("MINIO_ENDPOINT", "localhost:9000")
	t.Setenv("MINIO_BUCKET", "")

	cfg := GetConfig()

	assert.Equal(t, StorageDriverBadger, cfg.Storage.Driver)
	assert.Equal(t, 30*time.Second, cfg.RateLimiter.TimeFrame)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.Minio.Enabled())
	assert.Equal(t, "comite2025", cfg.Auth.ADMIN_PASSWORD)
}

func TestLocationFallback(t *testing.T) {
	cfg := Config{Timezone: "Not/AZone"}
	loc := cfg.Location()

	_, offset := time.Date(2025, 1, 1, 0, 0, 0, 0, loc).Zone()
	assert.Equal(t, -3*60*60, offset)
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{DB_HOST: "h", DB_PORT: "5432", DB_USERNAME: "u", DB_PASSWORD: "p", DB_DATABASE: "d", DB_SSLMODE: "disable"}
	assert.Equal(t, "host=h user=u password=p dbname=d port=5432 sslmode=disable TimeZone=UTC", d.DSN())
}

func TestRedacted(t *testing.T) {
	cfg := Config{
		Port: "8080",
		DB:   DatabaseConfig{DB_HOST: "db", DB_PASSWORD: "db-pass"},
		Auth: AuthConfig{JWT_SECRET: "jwt-secret", ADMIN_PASSWORD: "comite2025", ADMIN_PASSWORD_HASH: "$2a$10$hash"},
		Mail: MailConfig{SEND_GRID: SendGridConfig{API_KEY: "SG.key"}},
		Minio: MinioConfig{
			ENDPOINT:   "localhost:9000",
			ACCESS_KEY: "minio-access",
			SECRET_KEY: "minio-secret",
		},
	}

	out := fmt.Sprintf("%+v", cfg.Redacted())
	for _, secret := range []string{"db-pass", "jwt-secret", "comite2025", "$2a$10$hash", "SG.key", "minio-access", "minio-secret"} {
		assert.NotContains(t, out, secret)
	}
	assert.Contains(t, out, "localhost:9000")
	assert.Contains(t, out, "[REDACTED]")

	// the original keeps its values
	assert.Equal(t, "jwt-secret", cfg.Auth.JWT_SECRET)
	// empty stays empty so a missing secret is still visible
	assert.Empty(t, Config{}.Redacted().Auth.JWT_SECRET)
}
