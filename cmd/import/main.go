// Command import replaces the blog data set with the content of
// data/categories.json and data/posts.json.
//
// Every flag can also be set through the environment variable of the same
// name in upper case (CATEGORIES, POSTS). The database is
// configured with the same APP_* variables as the API server.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/namsral/flag"

	"oblog/src/app/importer"
	"oblog/src/infra/config"
	"oblog/src/infra/db"
	"oblog/src/infra/logger"
	"oblog/src/infra/repo"
)

var (
	flCategories = flag.String("categories", "data/categories.json", "path to the categories JSON file (CATEGORIES)")
	flPosts      = flag.String("posts", "data/posts.json", "path to the posts JSON file (POSTS)")
)

func main() {
	if err := run(); err != nil {
		log.Printf("import failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load first so flags can fall back on variables from .env.
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flag.Parse()

	lg := logger.WithComponent(logger.New(cfg.Log), "import")

	data, err := importer.LoadDataSet(*flCategories, *flPosts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pg, err := db.New(ctx, cfg.Database, lg)
	if err != nil {
		return err
	}
	defer pg.Close()

	categoryRepo := repo.NewCategoryRepository(pg.Pool, lg)
	postRepo := repo.NewPostRepository(pg.Pool, categoryRepo, lg)
	reset := func(ctx context.Context) error { return repo.Truncate(ctx, pg.Pool) }

	_, err = importer.New(reset, categoryRepo, postRepo, lg).Run(ctx, data)
	return err
}
