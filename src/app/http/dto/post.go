package dto

import "oblog/src/core/domain"

// CreatePostRequest is the payload for POST /api/posts.
type CreatePostRequest struct {
	Slug       string `json:"slug" binding:"required,slug,max=255"`
	Title      string `json:"title" binding:"required,max=255"`
	Excerpt    string `json:"excerpt" binding:"required"`
	Content    string `json:"content" binding:"required"`
	CategoryID int64  `json:"category_id" binding:"required,gt=0"`
}

func (r *CreatePostRequest) ToInput() domain.PostInput {
	return domain.PostInput{
		Slug:       r.Slug,
		Title:      r.Title,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		CategoryID: r.CategoryID,
	}
}

// UpdatePostRequest is the payload for PATCH /api/posts/:id.
type UpdatePostRequest struct {
	Slug       *string `json:"slug" binding:"omitempty,slug,max=255"`
	Title      *string `json:"title" binding:"omitempty,min=1,max=255"`
	Excerpt    *string `json:"excerpt" binding:"omitempty,min=1"`
	Content    *string `json:"content" binding:"omitempty,min=1"`
	CategoryID *int64  `json:"category_id" binding:"omitempty,gt=0"`
}

func (r *UpdatePostRequest) ToPatch() domain.PostPatch {
	return domain.PostPatch{
		Slug:       r.Slug,
		Title:      r.Title,
		Excerpt:    r.Excerpt,
		Content:    r.Content,
		CategoryID: r.CategoryID,
	}
}
