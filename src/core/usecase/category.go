package usecase

import (
	"context"
	"log/slog"

	"oblog/src/core/domain"
	"oblog/src/core/ports"
)

// CategoryService handles category flows.
type CategoryService struct {
	repo ports.CategoryRepository
	log  *slog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, log *slog.Logger) *CategoryService {
	return &CategoryService{repo: repo, log: log}
}

func (s *CategoryService) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.FindAll(ctx)
}

func (s *CategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewNotFoundError("category")
	}
	return category, nil
}

// Create inserts a category after checking that neither its label nor its
// route is taken.
func (s *CategoryService) Create(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	if err := (domain.Category{Label: in.Label, Route: in.Route}).Validate(); err != nil {
		return nil, err
	}

	conflict, err := s.repo.FindConflict(ctx, domain.PatchFromCategoryInput(in), nil)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		field := conflict.Field()
		return nil, domain.NewValidationError(field, "Category already exists with this "+field)
	}

	category, err := s.repo.Insert(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("category created", "category_id", category.ID, "route", category.Route)
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error) {
	if patch.IsEmpty() {
		return nil, domain.NewValidationError("", "at least one field must be provided")
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch.Apply(*current).Validate(); err != nil {
		return nil, err
	}

	if patch.Label != nil || patch.Route != nil {
		conflict, err := s.repo.FindConflict(ctx, patch, &id)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			field := conflict.Field()
			return nil, domain.NewValidationError(field, "Other category already exists with this "+field)
		}
	}

	category, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	// Deleted between the read and the write.
	if category == nil {
		return nil, domain.NewNotFoundError("category")
	}
	return category, nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError("category")
	}
	s.log.Info("category deleted", "category_id", id)
	return nil
}
