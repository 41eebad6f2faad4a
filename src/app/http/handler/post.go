package handler

import (
	"github.com/gin-gonic/gin"

	"oblog/src/app/http/dto"
	"oblog/src/app/http/response"
	"oblog/src/app/middleware"
	"oblog/src/core/usecase"
)

// PostHandler handles /api/posts endpoints.
type PostHandler struct {
	postService *usecase.PostService
}

func NewPostHandler(postService *usecase.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List handles GET /api/posts.
func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, posts)
}

// ListByCategory handles GET /api/posts/category/:id. An unknown category
// is a 404, a category without posts an empty list.
func (h *PostHandler) ListByCategory(c *gin.Context) {
	categoryID, ok := pathID(c)
	if !ok {
		return
	}

	posts, err := h.postService.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, posts)
}

// Get handles GET /api/posts/:id.
func (h *PostHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, post)
}

// Create handles POST /api/posts.
func (h *PostHandler) Create(c *gin.Context) {
	var req dto.CreatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.Created(c, post)
}

// Update handles PATCH /api/posts/:id.
func (h *PostHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UpdatePostRequest
	if !bindJSON(c, &req) {
		return
	}

	post, err := h.postService.Update(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.OK(c, post)
}

// Delete handles DELETE /api/posts/:id.
func (h *PostHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), id); err != nil {
		response.FromDomainError(c, err, middleware.GetRequestID(c))
		return
	}
	response.NoContent(c)
}
