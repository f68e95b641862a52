package main

import (
	"context"

	appcontext "github.com/comite-bacias/presenca/internal/app_context"
	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/comite-bacias/presenca/internal/auth"
	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/env"
	filestorage "github.com/comite-bacias/presenca/internal/file_storage"
	"github.com/comite-bacias/presenca/internal/mailer"
	"github.com/comite-bacias/presenca/internal/metrics"
	ratelimiter "github.com/comite-bacias/presenca/internal/rate_limiter"
	"github.com/comite-bacias/presenca/internal/repository"
	"github.com/comite-bacias/presenca/internal/route"
	"github.com/comite-bacias/presenca/internal/util"
	"github.com/comite-bacias/presenca/pkg/presenca"
	"github.com/gin-gonic/gin"
)

// this function run before main
func init() {
	env.LoadEnv(".env")
}

func main() {
	cfg := config.GetConfig()

	logger := util.NewLogger(cfg.ENV)
	logger.Debugf("Configuration: %+v \n", cfg.Redacted())

	port, closePort, err := repository.NewPort(&cfg, logger)
	if err != nil {
		logger.Panic(err)
	}
	defer closePort()
	logger.Infof("Storage %s ready", cfg.Storage.Driver)

	store := attendance.NewStore(port, attendance.WithLogger(logger))
	if err := store.Load(context.Background()); err != nil {
		logger.Panic(err)
	}

	pdf := presenca.NewPDFGenerator(presenca.NewDefaultConfig(cfg.OrganizationName, cfg.AppURL))

	var mail mailer.Client = mailer.Noop{}
	if cfg.Mail.Enabled && cfg.Mail.SEND_GRID.API_KEY != "" {
		mail = mailer.NewSendgrid(cfg.Mail.SEND_GRID.API_KEY, cfg.Mail.FROM_EMAIL, cfg.IsProduction(), logger)
	} else {
		logger.Info("Signature receipts are disabled")
	}

	archive, err := filestorage.NewArchive(&cfg.Minio, logger)
	if err != nil {
		logger.Error("Error connecting to minio")
		logger.Panic(err)
	}

	m, err := metrics.NewMetrics()
	if err != nil {
		logger.Panic(err)
	}

	jwtService := auth.NewJwt(cfg.Auth, logger)
	app := appcontext.Application{
		Config:     &cfg,
		Logger:     logger,
		Store:      store,
		Exporter:   attendance.NewExporter(store, pdf, cfg.Location()),
		Mailer:     mail,
		JWTService: jwtService,
		AdminGate:  auth.NewAdminGate(cfg.Auth, jwtService, logger),
		Archive:    archive,
		Metrics:    m,
	}

	if cfg.IsProduction() {
		logger.Info("Running in production mode")
		gin.SetMode(gin.ReleaseMode)
	}

	rateLimiter := ratelimiter.NewRateLimiter(cfg.RateLimiter, logger)
	r := route.NewRouter(&app, rateLimiter)

	if err := r.Run("0.0.0.0:" + app.Config.Port); err != nil {
		logger.Panicf("Error running server: %v \n", err)
	}
}
