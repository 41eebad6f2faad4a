package dto

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutePattern(t *testing.T) {
	valid := []string{"/", "/go", "/web-dev", "/a_b/c-1"}
	invalid := []string{"", "go", "/Go", "/with space", "/café"}

	for _, s := range valid {
		assert.True(t, routePattern.MatchString(s), s)
	}
	for _, s := range invalid {
		assert.False(t, routePattern.MatchString(s), s)
	}
}

func TestSlugPattern(t *testing.T) {
	valid := []string{"hello", "hello-world", "go-1-23"}
	invalid := []string{"", "-hello", "hello-", "hello--world", "Hello", "hello_world"}

	for _, s := range valid {
		assert.True(t, slugPattern.MatchString(s), s)
	}
	for _, s := range invalid {
		assert.False(t, slugPattern.MatchString(s), s)
	}
}

func TestBindingError(t *testing.T) {
	require.NoError(t, RegisterValidators())

	t.Run("custom tag reports json field", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&CreateCategoryRequest{Label: "Go", Route: "go"})
		field, msg := BindingError(err)
		assert.Equal(t, "route", field)
		assert.Contains(t, msg, "must start with /")
	})

	t.Run("required", func(t *testing.T) {
		err := binding.Validator.ValidateStruct(&CreatePostRequest{Slug: "a", Title: "A", Excerpt: "e", Content: "c"})
		field, msg := BindingError(err)
		assert.Equal(t, "category_id", field)
		assert.Equal(t, "is required", msg)
	})

	t.Run("patch field present but empty", func(t *testing.T) {
		empty := ""
		err := binding.Validator.ValidateStruct(&UpdatePostRequest{Title: &empty})
		field, _ := BindingError(err)
		assert.Equal(t, "title", field)
	})

	t.Run("omitted patch fields pass", func(t *testing.T) {
		assert.NoError(t, binding.Validator.ValidateStruct(&UpdateCategoryRequest{}))
	})

	t.Run("malformed body", func(t *testing.T) {
		field, msg := BindingError(errors.New("unexpected EOF"))
		assert.Empty(t, field)
		assert.Equal(t, "invalid payload", msg)
	})
}

func TestUpdatePostRequest_ToPatch(t *testing.T) {
	slug := "new-slug"
	patch := (&UpdatePostRequest{Slug: &slug}).ToPatch()

	require.Len(t, patch.Fields(), 1)
	assert.Equal(t, "slug", patch.Fields()[0].Name)
}
