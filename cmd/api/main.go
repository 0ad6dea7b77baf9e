// Command api runs the clinic management HTTP server.
//
// @title        Clinic Management API
// @version      1.0
// @description  REST backend for patients, consultations, medics and users.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	_ "github.com/clinicadelvalle/clinic-api/docs"
	"github.com/clinicadelvalle/clinic-api/internal/api"
	"github.com/clinicadelvalle/clinic-api/internal/infrastructure/config"
	"github.com/clinicadelvalle/clinic-api/internal/infrastructure/db/mysql"
	redisdb "github.com/clinicadelvalle/clinic-api/internal/infrastructure/db/redis"
	"github.com/clinicadelvalle/clinic-api/pkg/logger"
)

func main() {
	// A missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fallback := logger.Init(logger.Options{})
		fallback.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := mysql.Connect(ctx, mysql.Config{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	rdb, err := redisdb.MaybeConnect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		// The cache is optional; run without it rather than refusing to start.
		log.Warn().Err(err).Msg("redis unavailable, cache disabled")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	e := api.NewRouter(db, rdb, cfg.AllowedOrigins, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
