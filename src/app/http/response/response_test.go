package response

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"oblog/src/core/domain"
)

func TestFromDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", domain.NewNotFoundError("category"), http.StatusNotFound, "NOT_FOUND"},
		{"missing reference", domain.NewReferenceError("category"), http.StatusNotFound, "NOT_FOUND"},
		{"validation", domain.NewValidationError("slug", "is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"conflict", domain.NewConflictError("post already exists"), http.StatusConflict, "CONFLICT"},
		{"unknown", errors.New("conn reset"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromDomainError(c, tt.err, "req-1")

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"`+tt.code+`"`)
			assert.Contains(t, w.Body.String(), `"request_id":"req-1"`)
			assert.NotContains(t, w.Body.String(), "conn reset")
		})
	}
}

func TestValidationErrorCarriesField(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	FromDomainError(c, domain.NewValidationError("route", "cannot be empty"), "")

	assert.JSONEq(t, `{"error":{"code":"VALIDATION_ERROR","message":"cannot be empty","field":"route"}}`, w.Body.String())
}

func TestInternalErrorKeepsCause(t *testing.T) {
	boom := errors.New("conn reset")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromDomainError(c, boom, "req-1")

	assert.Len(t, c.Errors, 1)
	assert.ErrorIs(t, c.Errors.Last().Err, boom)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	FromDomainError(c, domain.NewNotFoundError("post"), "req-1")

	assert.Empty(t, c.Errors)
}
