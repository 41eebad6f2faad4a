package dto

import "oblog/src/core/domain"

// CreateCategoryRequest is the payload for POST /api/categories.
type CreateCategoryRequest struct {
	Label string `json:"label" binding:"required,max=255"`
	Route string `json:"route" binding:"required,route,max=255"`
}

func (r *CreateCategoryRequest) ToInput() domain.CategoryInput {
	return domain.CategoryInput{Label: r.Label, Route: r.Route}
}

// UpdateCategoryRequest is the payload for PATCH /api/categories/:id.
type UpdateCategoryRequest struct {
	Label *string `json:"label" binding:"omitempty,min=1,max=255"`
	Route *string `json:"route" binding:"omitempty,route,max=255"`
}

func (r *UpdateCategoryRequest) ToPatch() domain.CategoryPatch {
	return domain.CategoryPatch{Label: r.Label, Route: r.Route}
}
