package usecase

import (
	"context"
	"log/slog"

	"oblog/src/core/domain"
	"oblog/src/core/ports"
)

// PostService handles post flows.
type PostService struct {
	repo ports.PostRepository
	log  *slog.Logger
}

func NewPostService(repo ports.PostRepository, log *slog.Logger) *PostService {
	return &PostService{repo: repo, log: log}
}

func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.repo.FindAll(ctx)
}

// ListByCategory returns the posts of one category. A missing category is
// reported as a reference-not-found error, not an empty list.
func (s *PostService) ListByCategory(ctx context.Context, categoryID int64) ([]domain.Post, error) {
	return s.repo.FindByCategoryID(ctx, categoryID)
}

func (s *PostService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.NewNotFoundError("post")
	}
	return post, nil
}

func (s *PostService) Create(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	candidate := domain.Post{
		Slug:       in.Slug,
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		CategoryID: in.CategoryID,
	}
	if err := candidate.Validate(); err != nil {
		return nil, err
	}

	conflict, err := s.repo.FindConflict(ctx, domain.PatchFromPostInput(in), nil)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		field := conflict.Field()
		return nil, domain.NewValidationError(field, "Post already exists with this "+field)
	}

	post, err := s.repo.Insert(ctx, in)
	if err != nil {
		return nil, err
	}
	s.log.Info("post created", "post_id", post.ID, "slug", post.Slug, "category_id", post.CategoryID)
	return post, nil
}

func (s *PostService) Update(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
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

	if patch.Slug != nil || patch.Title != nil {
		conflict, err := s.repo.FindConflict(ctx, patch, &id)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			field := conflict.Field()
			return nil, domain.NewValidationError(field, "Other post already exists with this "+field)
		}
	}

	post, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.NewNotFoundError("post")
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NewNotFoundError("post")
	}
	s.log.Info("post deleted", "post_id", id)
	return nil
}
