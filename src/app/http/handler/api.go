package handler

import (
	"github.com/gin-gonic/gin"

	"oblog/src/app/http/response"
)

// APIIndex describes the API root.
type APIIndex struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Resources map[string]string `json:"resources"`
}

// APIHandler serves the API root.
type APIHandler struct {
	index APIIndex
}

func NewAPIHandler(name, version string) *APIHandler {
	return &APIHandler{index: APIIndex{
		Name:    name,
		Version: version,
		Resources: map[string]string{
			"categories": "/api/categories",
			"posts":      "/api/posts",
		},
	}}
}

// Index answers any method on /api.
func (h *APIHandler) Index(c *gin.Context) {
	response.OK(c, h.index)
}
