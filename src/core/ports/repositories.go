// Package ports defines interfaces (ports) that connect core domain to infrastructure.
// These interfaces follow the ports and adapters (hexagonal) architecture pattern.
//
// Ports are defined here in the core layer, while implementations (adapters)
// live in src/infra/repo. This ensures the core has no dependency on infrastructure.
package ports

import (
	"context"

	"oblog/src/core/domain"
)

// CategoryRepository persists categories.
//
// Read-one methods return (nil, nil) when the row does not exist.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	Insert(ctx context.Context, in domain.CategoryInput) (*domain.Category, error)
	// Update touches only the columns supplied in patch. It returns nil when
	// no category has that id.
	Update(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// FindConflict looks up label and route among the supplied fields and
	// returns the first other category sharing one of them. excludeID, when
	// set, is never reported.
	FindConflict(ctx context.Context, patch domain.CategoryPatch, excludeID *int64) (*domain.Conflict[domain.Category], error)
}

// PostRepository persists posts.
type PostRepository interface {
	FindAll(ctx context.Context) ([]domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	Insert(ctx context.Context, in domain.PostInput) (*domain.Post, error)
	Update(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error)
	Delete(ctx context.Context, id int64) (bool, error)
	// FindConflict looks up slug and title among the supplied fields.
	FindConflict(ctx context.Context, patch domain.PostPatch, excludeID *int64) (*domain.Conflict[domain.Post], error)
	// FindByCategoryID lists the posts of a category. It fails with a
	// reference-not-found domain error when the category does not exist.
	FindByCategoryID(ctx context.Context, categoryID int64) ([]domain.Post, error)
}
