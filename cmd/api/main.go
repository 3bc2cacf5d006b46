package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"skyline/internal/http/handlers"
	"skyline/internal/http/httpapi"
	"skyline/internal/infra"
	"skyline/internal/infra/geoip"
	"skyline/internal/middleware"
	"skyline/internal/storage"
	"skyline/internal/tracking"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	store, err := buildStorage(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize media storage")
	}

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable, country resolution disabled")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		defer resolver.Close()
		lookup = resolver.CountryCode
	}

	runner := infra.NewSQLRunner(dbpool, logger)
	app := handlers.NewApp(cfg, logger, store, runner)

	tracker := tracking.NewTracker(app.Metrics, cfg.Location(), cfg.IsDevelopment(), logger, "/api/admin/")
	router := httpapi.NewRouter(app, httpapi.RouterDeps{
		Sessions: middleware.NewSessionManager(),
		Tracker:  tracker,
		Country:  lookup,
	})

	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}

// buildStorage selects the media backend. Development without ImageKit
// credentials runs entirely on the local filesystem; otherwise the ImageKit
// client is used, with a filesystem fallback in development.
func buildStorage(cfg *infra.Config, logger infra.Logger) (storage.Storage, error) {
	fs, err := storage.NewFileStore(cfg.MediaRoot, cfg.MediaBaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.IsDevelopment() && cfg.ImageKitPrivateKey == "" {
		logger.Info().Str("root", cfg.MediaRoot).Msg("using filesystem media storage")
		return fs, nil
	}

	client := storage.NewClient(storage.ClientOptions{
		UploadURL:  cfg.ImageKitUploadURL,
		APIURL:     cfg.ImageKitAPIURL,
		PrivateKey: cfg.ImageKitPrivateKey,
		Timeout:    cfg.StorageTimeout,
	})
	var fallback *storage.FileStore
	if cfg.IsDevelopment() {
		fallback = fs
	}
	return storage.NewImageKitStorage(client, cfg.ImageKitEndpoint, fallback, cfg.IsDevelopment(), logger), nil
}
