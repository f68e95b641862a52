package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/comite-bacias/presenca/internal/env"
)

type StorageDriver string

const (
	StorageDriverMemory   StorageDriver = "memory"
	StorageDriverSqlite   StorageDriver = "sqlite"
	StorageDriverPostgres StorageDriver = "postgres"
	StorageDriverBadger   StorageDriver = "badger"
)

type Config struct {
	Port string
	ENV  string
	// Public URL of the front-end. Used as the verification link on PDFs and as the base of signing links.
	AppURL           string
	OrganizationName string
	Timezone         string
	Storage          StorageConfig
	DB               DatabaseConfig
	RateLimiter      RateLimiterConfig
	Mail             MailConfig
	Auth             AuthConfig
	Minio            MinioConfig
}

type StorageConfig struct {
	Driver     StorageDriver
	SqlitePath string
	BadgerDir  string
}

type RateLimiterConfig struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type AuthConfig struct {
	JWT_SECRET string
	TokenTTL   time.Duration
	// Shared admin password. This is a UI gate, not access control.
	ADMIN_PASSWORD string
	// Optional bcrypt hash, takes precedence over ADMIN_PASSWORD when set.
	ADMIN_PASSWORD_HASH string
}

type DatabaseConfig struct {
	DB_HOST      string
	DB_PORT      string
	DB_DATABASE  string
	DB_USERNAME  string
	DB_PASSWORD  string
	DB_SSLMODE   string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  string
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.DB_HOST, d.DB_USERNAME, d.DB_PASSWORD, d.DB_DATABASE, d.DB_PORT, d.DB_SSLMODE)
}

type MailConfig struct {
	SEND_GRID  SendGridConfig
	FROM_EMAIL string
	// Receipt mails are sent only when enabled and an api key is present.
	Enabled bool
}

type SendGridConfig struct {
	API_KEY string
}

type MinioConfig struct {
	ENDPOINT   string
	ACCESS_KEY string
	SECRET_KEY string
	BUCKET     string
	USE_SSL    bool
}

func (m MinioConfig) Enabled() bool {
	return m.ENDPOINT != "" && m.BUCKET != ""
}

func (c Config) IsProduction() bool {
	return strings.EqualFold(c.ENV, "production")
}

func GetConfig() Config {
	return Config{
		Port:             env.GetString("PORT", "8080"),
		ENV:              env.GetString("ENV", "development"),
		AppURL:           env.GetString("APP_URL", "http://localhost:5173/"),
		OrganizationName: env.GetString("ORGANIZATION_NAME", "Comitê de Bacias Hidrográficas"),
		Timezone:         env.GetString("TIMEZONE", "America/Sao_Paulo"),
		Storage: StorageConfig{
			Driver:     StorageDriver(strings.ToLower(env.GetString("STORAGE_DRIVER", string(StorageDriverSqlite)))),
			SqlitePath: env.GetString("SQLITE_PATH", "presenca.sqlite"),
			BadgerDir:  env.GetString("BADGER_DIR", "data/badger"),
		},
		DB: DatabaseConfig{
			DB_HOST:      env.GetString("DB_HOST", "127.0.0.1"),
			DB_PORT:      env.GetString("DB_PORT", "5432"),
			DB_USERNAME:  env.GetString("DB_USERNAME", "root"),
			DB_PASSWORD:  env.GetString("DB_PASSWORD", ""),
			DB_DATABASE:  env.GetString("DB_DATABASE", "presenca"),
			DB_SSLMODE:   env.GetString("DB_SSLMODE", "disable"),
			MaxOpenConns: env.GetInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns: env.GetInt("DB_MAX_IDLE_CONNS", 30),
			MaxIdleTime:  env.GetString("DB_MAX_IDLE_TIME", "15m"),
		},
		// By default if not specified, we allow 5000 requests per minute on all routes
		RateLimiter: RateLimiterConfig{
			RequestsPerTimeFrame: env.GetInt("RATE_LIMIT_REQUESTS_PER_TIME_FRAME", 5000),
			TimeFrame:            env.GetDuration("RATE_LIMIT_TIME_FRAME", time.Minute),
			Enabled:              env.GetBool("RATE_LIMIT_ENABLED", true),
		},
		Mail: MailConfig{
			FROM_EMAIL: env.GetString("MAIL_FROM_MAIL", ""),
			Enabled:    env.GetBool("MAIL_RECEIPT_ENABLED", false),
			SEND_GRID: SendGridConfig{
				API_KEY: env.GetString("MAIL_SEND_GRID_API_KEY", ""),
			},
		},
		Auth: AuthConfig{
			JWT_SECRET:          env.GetString("AUTH_JWT_SECRET", ""),
			TokenTTL:            env.GetDuration("AUTH_TOKEN_TTL", 8*time.Hour),
			ADMIN_PASSWORD:      env.GetString("ADMIN_PASSWORD", "comite2025"),
			ADMIN_PASSWORD_HASH: env.GetString("ADMIN_PASSWORD_HASH", ""),
		},
		Minio: MinioConfig{
			ENDPOINT:   env.GetString("MINIO_ENDPOINT", ""),
			ACCESS_KEY: env.GetString("MINIO_ACCESS_KEY", ""),
			SECRET_KEY: env.GetString("MINIO_SECRET_KEY", ""),
			BUCKET:     env.GetString("MINIO_BUCKET", ""),
			USE_SSL:    env.GetBool("MINIO_USE_SSL", false),
		},
	}
}

const redacted = "[REDACTED]"

func redact(v string) string {
	if v == "" {
		return ""
	}
	return redacted
}

// Redacted returns a copy safe to log: passwords, secrets and api keys are masked.
func (c Config) Redacted() Config {
	c.DB.DB_PASSWORD = redact(c.DB.DB_PASSWORD)
	c.Auth.JWT_SECRET = redact(c.Auth.JWT_SECRET)
	c.Auth.ADMIN_PASSWORD = redact(c.Auth.ADMIN_PASSWORD)
	c.Auth.ADMIN_PASSWORD_HASH = redact(c.Auth.ADMIN_PASSWORD_HASH)
	c.Mail.SEND_GRID.API_KEY = redact(c.Mail.SEND_GRID.API_KEY)
	c.Minio.ACCESS_KEY = redact(c.Minio.ACCESS_KEY)
	c.Minio.SECRET_KEY = redact(c.Minio.SECRET_KEY)
	return c
}

// Location used to format timestamps for display. Falls back to UTC-3 when tzdata is missing.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone("BRT", -3*60*60)
	}
	return loc
}
