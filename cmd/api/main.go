package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/eventbroker"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/eventbroker/nats"
	chirouter "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi"
	actorhandler "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/actor"
	assethandler "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/asset"
	authhandler "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/auth"
	moviehandler "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/movie"
	studiohandler "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/handlers/http/chi/v1/studio"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/repository/postgres"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/storage/localdisk"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/storage/minio"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/adapters/thumbnail/ffmpeg"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/config"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/port"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/service/asset"
	authservice "github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/service/auth"
	"github.com/Dinh-Huu-Phuc/moviesAPIMVC/internal/core/service/catalog"

	_ "github.com/lib/pq"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	store, err := initStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to init storage", "error", err)
		os.Exit(1)
	}

	//events
	events, err := initEvents(ctx, cfg.Events, logger)
	if err != nil {
		logger.Error("failed to init event publisher", "error", err)
		os.Exit(1)
	}

	thumbnailer := ffmpeg.NewExtractor(cfg.Thumbnail, logger)
	unitOfWork := postgres.NewUnitOfWork(db)

	assetService := asset.NewAssetService(unitOfWork, store, thumbnailer, events, cfg.Upload, logger)
	catalogService := catalog.NewCatalogService(unitOfWork, cfg.Upload, logger)
	authService := authservice.NewAuthService(unitOfWork, cfg.Auth, logger)

	//http
	assetHandler := assethandler.NewAssetHandlerV1(assetService, cfg.Server.PublicBaseURL, logger)
	movieHandler := moviehandler.NewMovieHandlerV1(catalogService, logger)
	actorHandler := actorhandler.NewActorHandlerV1(catalogService, logger)
	studioHandler := studiohandler.NewStudioHandlerV1(catalogService, logger)
	authHandler := authhandler.NewAuthHandlerV1(authService, logger)

	router := chirouter.NewRouter(logger, chirouter.RouterDeps{
		AssetHandler:  assetHandler,
		MovieHandler:  movieHandler,
		ActorHandler:  actorHandler,
		StudioHandler: studioHandler,
		AuthHandler:   authHandler,
		Verifier:      authService,
		AuthEnabled:   cfg.Auth.Enabled,
		MaxBodySize:   cfg.Upload.MaxFileSize,
		Env:           cfg.Env.Env,
	})
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	if closer, ok := events.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close event publisher", "error", err)
		}
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (port.BlobStore, error) {
	switch cfg.Storage.Driver {
	case "local":
		return localdisk.NewStore(cfg.Storage.Directory, logger)
	case "s3":
		return minio.NewAdapter(ctx, cfg.Minio, logger)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func initEvents(ctx context.Context, cfg config.EventsConfig, logger *slog.Logger) (port.EventPublisher, error) {
	if !cfg.Enabled {
		logger.Info("event publishing disabled")
		return eventbroker.NewNoopPublisher(), nil
	}
	return nats.NewPublisher(ctx, cfg, logger)
}
