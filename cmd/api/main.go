package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/badgeforge/issuer-api/internal/api"
	"github.com/badgeforge/issuer-api/internal/core/service"
	"github.com/badgeforge/issuer-api/internal/infrastructure/config"
	mongodb "github.com/badgeforge/issuer-api/internal/infrastructure/db/mongo"
	redisdb "github.com/badgeforge/issuer-api/internal/infrastructure/db/redis"
	"github.com/badgeforge/issuer-api/internal/infrastructure/queue"
	"github.com/badgeforge/issuer-api/internal/infrastructure/storage"
	"github.com/badgeforge/issuer-api/pkg/logger"
)

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Infrastructure ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	ensureIndexes(ctx, db, log)

	images, err := storage.NewFileImageStore(cfg.ImageDir)
	if err != nil {
		log.Fatal().Err(err).Msg("image store init failed")
	}

	// --- Audit pipeline ---
	eventService := service.NewEventService(
		mongodb.NewEventRepository(db),
		redisdb.NewDedupChecker(rdb),
		log,
	)
	dispatcher := queue.NewDispatcher(0, eventService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.RouterDeps{
		DB:         db,
		Redis:      rdb,
		Images:     images,
		Cache:      redisdb.NewBadgeClassCache(rdb),
		Dispatcher: dispatcher,
		JWTSecret:  cfg.JWTSecret,
		PublicURL:  cfg.PublicURL,
		Logger:     log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting badge issuer API")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	cancel() // stops dispatcher workers
	log.Info().Msg("stopped")
}

// ensureIndexes creates the collection indexes at startup. Failures are
// logged but not fatal: the API can serve without them, just slower.
func ensureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	type indexed interface {
		EnsureIndexes(ctx context.Context) error
	}
	repos := map[string]indexed{
		"issuers":       mongodb.NewIssuerRepository(db),
		"badge_classes": mongodb.NewBadgeClassRepository(db),
		"assertions":    mongodb.NewAssertionRepository(db),
		"auth_users":    mongodb.NewAuthRepository(db),
	}
	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}
}
