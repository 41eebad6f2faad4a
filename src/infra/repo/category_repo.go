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
	categoryTable   = "category"
	categoryColumns = `id, label, route`
)

var _ ports.CategoryRepository = (*CategoryRepository)(nil)

// CategoryRepository implements ports.CategoryRepository using pgx.
type CategoryRepository struct {
	db  DBTX
	log *slog.Logger
}

// NewCategoryRepository constructs a category repository on top of db.
func NewCategoryRepository(db DBTX, log *slog.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:  db,
		log: log,
	}
}

func scanCategory(row scanner) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Label, &c.Route); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx, `SELECT `+categoryColumns+` FROM category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM category WHERE id = $1`
	c, err := scanCategory(r.db.QueryRow(ctx, q, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) Insert(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	const q = `
		INSERT INTO category (label, route)
		VALUES ($1, $2)
		RETURNING ` + categoryColumns
	c, err := scanCategory(r.db.QueryRow(ctx, q, in.Label, in.Route))
	if err != nil {
		return nil, translateWriteError(err, "category")
	}
	return c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error) {
	if patch.IsEmpty() {
		return nil, errEmptyPatch()
	}

	q, args := updateStatement(categoryTable, categoryColumns, patch.Fields(), id)
	c, err := scanCategory(r.db.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, translateWriteError(err, "category")
	}
	return c, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.Exec(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() > 0, nil
}

func (r *CategoryRepository) FindConflict(ctx context.Context, patch domain.CategoryPatch, excludeID *int64) (*domain.Conflict[domain.Category], error) {
	candidates := uniqueCandidates(patch.Fields(), "label", "route")
	if len(candidates) == 0 {
		return nil, nil
	}

	q, args := conflictStatement(categoryTable, categoryColumns, candidates, excludeID)
	c, err := scanCategory(r.db.QueryRow(ctx, q, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	fields := matchedFields(candidates, map[string]any{"label": c.Label, "route": c.Route})
	logger.Debug(r.log, "category conflict found", "id", c.ID, "fields", fields)
	return &domain.Conflict[domain.Category]{Entity: *c, Fields: fields}, nil
}
