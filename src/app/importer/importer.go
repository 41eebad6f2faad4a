// Package importer loads the seed data set (categories, then posts) into an
// empty database through the repositories.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"oblog/src/core/domain"
	"oblog/src/core/ports"
	"oblog/src/infra/logger"
)

// CategoryRecord is one entry of categories.json.
type CategoryRecord struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

// PostRecord is one entry of posts.json. Category holds the label of the
// category the post belongs to.
type PostRecord struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Excerpt  string `json:"excerpt"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// Result counts the rows written by a run.
type Result struct {
	Categories int
	Posts      int
}

// Importer replaces the stored data set.
type Importer struct {
	reset      func(context.Context) error
	categories ports.CategoryRepository
	posts      ports.PostRepository
	log        *slog.Logger
}

// New builds an Importer. reset empties the tables and restarts their id
// sequences before loading.
func New(reset func(context.Context) error, categories ports.CategoryRepository, posts ports.PostRepository, log *slog.Logger) *Importer {
	return &Importer{
		reset:      reset,
		categories: categories,
		posts:      posts,
		log:        log,
	}
}

// Run empties the tables, inserts every category, resolves each post's
// category label and inserts the posts. The first failure aborts the run.
//
// Rows are inserted one at a time in file order, so after the reset the
// n-th record of each file gets id n.
func (im *Importer) Run(ctx context.Context, data DataSet) (Result, error) {
	if err := im.reset(ctx); err != nil {
		return Result{}, err
	}
	logger.Debug(im.log, "tables truncated")

	ids := make(map[string]int64, len(data.Categories))
	for _, rec := range data.Categories {
		logger.Debug(im.log, "processing category", "label", rec.Label)
		category, err := im.categories.Insert(ctx, domain.CategoryInput{Label: rec.Label, Route: rec.Route})
		if err != nil {
			return Result{}, fmt.Errorf("category %q: %w", rec.Label, err)
		}
		ids[category.Label] = category.ID
	}

	// Resolve every label before the first post insert so an unknown
	// category leaves no post behind.
	inputs := make([]domain.PostInput, 0, len(data.Posts))
	for _, p := range data.Posts {
		categoryID, ok := ids[p.Category]
		if !ok {
			return Result{}, fmt.Errorf("post %q: unknown category %q", p.Slug, p.Category)
		}
		inputs = append(inputs, domain.PostInput{
			Slug:       p.Slug,
			Title:      p.Title,
			Excerpt:    p.Excerpt,
			Content:    p.Content,
			CategoryID: categoryID,
		})
	}

	for _, in := range inputs {
		logger.Debug(im.log, "processing post", "slug", in.Slug)
		if _, err := im.posts.Insert(ctx, in); err != nil {
			return Result{}, fmt.Errorf("post %q: %w", in.Slug, err)
		}
	}

	res := Result{Categories: len(ids), Posts: len(inputs)}
	logger.Info(im.log, "import finished", "categories", res.Categories, "posts", res.Posts)
	return res, nil
}

// DataSet is the content of both seed files.
type DataSet struct {
	Categories []CategoryRecord
	Posts      []PostRecord
}

// LoadDataSet reads the categories and posts files in parallel.
func LoadDataSet(categoriesPath, postsPath string) (DataSet, error) {
	var (
		data DataSet
		g    errgroup.Group
	)
	g.Go(func() error {
		records, err := LoadCategories(categoriesPath)
		data.Categories = records
		return err
	})
	g.Go(func() error {
		records, err := LoadPosts(postsPath)
		data.Posts = records
		return err
	})
	if err := g.Wait(); err != nil {
		return DataSet{}, err
	}
	return data, nil
}

// LoadCategories reads a categories.json file.
func LoadCategories(path string) ([]CategoryRecord, error) {
	var records []CategoryRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadPosts reads a posts.json file.
func LoadPosts(path string) ([]PostRecord, error) {
	var records []PostRecord
	if err := readJSON(path, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
