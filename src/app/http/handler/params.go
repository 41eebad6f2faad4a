package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"oblog/src/app/http/dto"
	"oblog/src/app/http/response"
	"oblog/src/app/middleware"
)

// pathID parses the :id path parameter. On failure it writes a 400 and
// returns false.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ValidationError(c, "id", "must be a positive integer", middleware.GetRequestID(c))
		return 0, false
	}
	return id, true
}

// bindJSON decodes and validates the request body into req. On failure it
// writes a 400 naming the offending field and returns false.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		field, message := dto.BindingError(err)
		if field == "" {
			response.BadRequest(c, message, middleware.GetRequestID(c))
		} else {
			response.ValidationError(c, field, message, middleware.GetRequestID(c))
		}
		return false
	}
	return true
}
