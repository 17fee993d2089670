package main

import (
	"context"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"certviewer/internal/cache"
	"certviewer/internal/config"
	"certviewer/internal/database"
	"certviewer/internal/database/migration"
	handlers "certviewer/internal/http/handler"
	"certviewer/internal/logger"
	"certviewer/internal/otel"
	"certviewer/internal/repository/postgres"
	"certviewer/internal/service"
	"certviewer/internal/storage"
	"certviewer/internal/theme"
	"certviewer/web"
)

// @title Certificate Viewer
// @version 1.0
// @BasePath /
func main() {
	configFile := pflag.StringP("config", "c", os.Getenv("CONFIG_FILE"), "Path to a config file (yaml, json, toml or ini). Environment variables take precedence.")
	pflag.Parse()

	// Configuration: defaults < config file < .env (auto-loaded) < environment
	cfg, err := config.Load(*configFile)
	if err != nil {
		zap.NewExample().Fatal("failed to load configuration", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, tracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	// Themes are compiled in unless THEMES_DIR points at a directory of them
	var themes fs.FS
	if cfg.ThemesDir != "" {
		themes = os.DirFS(cfg.ThemesDir)
	} else if themes, err = fs.Sub(web.Themes, "themes"); err != nil {
		log.Fatal("failed to open embedded themes", zap.Error(err))
	}
	th, err := theme.Load(themes, cfg.Site.Theme)
	if err != nil {
		log.Fatal("failed to load theme", zap.String("theme", cfg.Site.Theme), zap.Error(err))
	}

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		log.Fatal("failed to initialize object storage", zap.Error(err))
	}

	var certCache cache.Cache = cache.Nop{}
	if cfg.Redis.Addr != "" {
		rc, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rc.Close()
		certCache = rc
	}

	certRepo := postgres.NewCertificatePostgres(db)
	introRepo := postgres.NewIntroductionPostgres(db)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Name),
	)

	app, err := handlers.New(handlers.Options{
		Site:          cfg.Site,
		Theme:         th,
		Logger:        log,
		Registry:      reg,
		DB:            db,
		Certificates:  service.NewCertificateService(certRepo, objStore, certCache, time.Duration(cfg.Redis.TTLSec)*time.Second, log),
		Introductions: service.NewIntroductionService(introRepo),
		Verifier:      service.NewVerifier(certRepo, objStore),
		Tracing:       tracing,
	})
	if err != nil {
		log.Fatal("failed to build http app", zap.Error(err))
	}

	addr := ":" + cfg.Port
	serveErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", addr), zap.String("theme", th.Name))
		serveErr <- app.Listen(addr)
	}()

	select {
	case err := <-serveErr:
		log.Fatal("failed to start server", zap.Error(err))
	case <-ctx.Done():
	}

	timeout := time.Duration(cfg.ShutdownTimeoutSec) * time.Second
	log.Info("graceful shutdown initiated", zap.Duration("timeout", timeout))
	if err := app.ShutdownWithTimeout(timeout); err != nil {
		log.Error("error shutting down http server", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("error shutting down tracer provider", zap.Error(err))
	}
	log.Info("exiting")
}
