package appcontext

import (
	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/comite-bacias/presenca/internal/auth"
	"github.com/comite-bacias/presenca/internal/config"
	filestorage "github.com/comite-bacias/presenca/internal/file_storage"
	"github.com/comite-bacias/presenca/internal/mailer"
	"github.com/comite-bacias/presenca/internal/metrics"
	"go.uber.org/zap"
)

// Application contains core dependencies for the app.
type Application struct {
	// Config holds application settings provided from .env file.
	Config *config.Config

	Logger *zap.SugaredLogger

	// Store owns records and signatures. Persist every Change it returns.
	Store *attendance.Store

	// Exporter renders CSV and PDF downloads from the store.
	Exporter *attendance.Exporter

	// Mailer sends signature receipts. mailer.Noop when disabled.
	Mailer mailer.Client

	// JWTService manages JWT operations for the admin session such as generate and verify.
	JWTService auth.JWTInterface

	AdminGate *auth.AdminGate

	// Archive keeps a copy of PDF exports. Nil when MinIO is not configured.
	Archive *filestorage.Archive

	Metrics *metrics.Metrics
}
