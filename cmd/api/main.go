package main

import (
	"context"
	"log"

	_ "github.com/linity/todo-api/docs" // swagger spec, generated by swag
	"github.com/linity/todo-api/internal/api"
	"github.com/linity/todo-api/internal/infrastructure/config"
	"github.com/linity/todo-api/internal/infrastructure/db/postgres"
	"github.com/linity/todo-api/pkg/logger"
)

// @title        Todo API
// @version      1.0
// @description  Multi-user task-list service with bearer-token authentication.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx := context.Background()

	// JWT_SECRET and DATABASE_URL are required; refuse to start without them.
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := postgres.Open(ctx, postgres.Config{
		URL:      cfg.Database.URL,
		MaxConns: cfg.Database.MaxConns,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer db.Close()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logg.Fatal().Err(err).Msg("failed to ensure database schema")
	}

	e := api.NewRouter(db, cfg, logg)

	logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting todo api")
	if err := e.Start(":" + cfg.Port); err != nil {
		logg.Fatal().Err(err).Msg("server stopped")
	}
}
