package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/AnshRaj112/courtmatch-backend/internal/config"
	"github.com/AnshRaj112/courtmatch-backend/internal/database"
	clog "github.com/AnshRaj112/courtmatch-backend/internal/log"
	"github.com/AnshRaj112/courtmatch-backend/internal/routes"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		clog.Init("development", "info")
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	clog.Init(cfg.Environment, cfg.LogLevel)
	if envErr != nil {
		log.Debug().Msg("no .env file found")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.Open(ctx, database.Options{
		Driver:      cfg.DatabaseDriver,
		Path:        cfg.DatabasePath,
		PostgresURI: cfg.PostgresURI,
	})
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DatabaseDriver).Msg("failed to open database")
	}
	defer store.Close()

	var rdb *redis.Client
	if cfg.RedisURI != "" {
		rdb, err = database.ConnectRedis(ctx, cfg.RedisURI)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer rdb.Close()
	}

	router, cleanup := routes.SetupRouter(routes.Dependencies{
		Config: cfg,
		Store:  store,
		Redis:  rdb,
	})
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.Environment).
			Str("static_dir", cfg.StaticDir).
			Msg("courtmatch backend listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
