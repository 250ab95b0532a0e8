// Package main is the entry point for the Jokeboard web server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"jokeboard/src/app/server"
	"jokeboard/src/core/ports"
	"jokeboard/src/infra/config"
	"jokeboard/src/infra/db"
	"jokeboard/src/infra/logger"
	"jokeboard/src/infra/repo"
	"jokeboard/src/infra/session"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration from .env and environment variables
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
		"db_driver", cfg.Database.Driver,
	)

	ctx := context.Background()

	var store ports.Store
	switch cfg.Database.Driver {
	case config.DriverMemory:
		log.Warn("using in-memory store; data is lost on exit")
		store = repo.NewMemoryRepository()
	default:
		pg, err := db.New(ctx, cfg.Database, logger.WithComponent(log, "db"))
		if err != nil {
			return err
		}
		defer pg.Close()

		if cfg.Database.AutoMigrate {
			if err := db.Migrate(ctx, pg, logger.WithComponent(log, "migrate")); err != nil {
				return err
			}
		}
		store = repo.NewPostgresRepository(pg, logger.WithComponent(log, "repo"))
	}

	tokens := session.NewJWTTokens(cfg.Session.Secret, cfg.Session.MaxAge)

	srv, err := server.New(cfg, log, store, tokens)
	if err != nil {
		return err
	}

	// Run blocks until shutdown signal is received
	return srv.Run()
}
