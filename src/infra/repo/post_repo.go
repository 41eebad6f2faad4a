package repo

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"oblog/src/core/domain"
	"oblog/src/core/ports"
	"oblog/src/infra/logger"
)

const (
	postTable   = "post"
	postColumns = `id, slug, title, excerpt, content, category_id`
)

var _ ports.PostRepository = (*PostRepository)(nil)

// PostRepository implements ports.PostRepository using pgx.
type PostRepository struct {
	db         DBTX
	categories ports.CategoryRepository
	log        *slog.Logger
}

// NewPostRepository constructs a post repository. categories is used to
// verify that a category exists before listing its posts.
func NewPostRepository(db DBTX, categories ports.CategoryRepository, log *slog.Logger) *PostRepository {
	return &PostRepository{
		db:         db,
		categories: categories,
		log:        log,
	}
}

func scanPost(row scanner) (*domain.Post, error) {
	var p domain.Post
	if err := row.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.CategoryID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) queryPosts(ctx context.Context, q string, args ...any) ([]domain.Post, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := make([]domain.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *p)
	}
	return posts, rows.Err()
}

func (r *PostRepository) FindAll(ctx context.Context) ([]domain.Post, error) {
	return r.queryPosts(ctx, `SELECT `+postColumns+` FROM post`)
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM post WHERE id = $1`
	p, err := scanPost(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) Insert(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	const q = `
		INSERT INTO post (slug, title, excerpt, content, category_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns
	p, err := scanPost(r.db.QueryRow(ctx, q, in.Slug, in.Title, in.Excerpt, in.Content, in.CategoryID))
	if err != nil {
		return nil, translateWriteError(err, "post")
	}
	return p, nil
}

func (r *PostRepository) Update(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	if patch.IsEmpty() {
		return nil, errEmptyPatch()
	}

	q, args := updateStatement(postTable, postColumns, patch.Fields(), id)
	p, err := scanPost(r.db.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateWriteError(err, "post")
	}
	return p, nil
}

func (r *PostRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM post WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *PostRepository) FindConflict(ctx context.Context, patch domain.PostPatch, excludeID *int64) (*domain.Conflict[domain.Post], error) {
	candidates := uniqueCandidates(patch.Fields(), "slug", "title")
	if len(candidates) == 0 {
		return nil, nil
	}

	q, args := conflictStatement(postTable, postColumns, candidates, excludeID)
	p, err := scanPost(r.db.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	fields := matchedFields(candidates, map[string]any{"slug": p.Slug, "title": p.Title})
	logger.Debug(r.log, "post conflict found", "id", p.ID, "fields", fields)
	return &domain.Conflict[domain.Post]{Entity: *p, Fields: fields}, nil
}

func (r *PostRepository) FindByCategoryID(ctx context.Context, categoryID int64) ([]domain.Post, error) {
	category, err := r.categories.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewReferenceError("category")
	}

	return r.queryPosts(ctx, `SELECT `+postColumns+` FROM post WHERE category_id = $1`, categoryID)
}
