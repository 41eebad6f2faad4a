// Package main is the entry point for the oblog API server.
// It initializes all dependencies and starts the HTTP server.
package main

import (
	"context"
	"log"
	"os"

	"oblog/src/app/server"
	"oblog/src/core/ports"
	"oblog/src/infra/config"
	"oblog/src/infra/db"
	"oblog/src/infra/logger"
	"oblog/src/infra/repo"
)

func main() {
	if err := run(); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Log)
	log.Info("starting application",
		"env", cfg.Env,
		"port", cfg.Server.Port,
		"log_level", cfg.Log.Level,
	)

	pg, err := db.New(context.Background(), cfg.Database, log)
	if err != nil {
		return err
	}
	defer pg.Close()

	repoLog := logger.WithComponent(log, "repo")
	categories := repo.NewCategoryRepository(pg.Pool, repoLog)
	posts := repo.NewPostRepository(pg.Pool, categories, repoLog)

	srv, err := server.New(cfg, log, server.Deps{
		Categories: categories,
		Posts:      posts,
		Checkers:   map[string]ports.HealthChecker{"database": pg},
	})
	if err != nil {
		return err
	}

	// Run blocks until shutdown signal is received
	return srv.Run()
}
