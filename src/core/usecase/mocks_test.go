package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"oblog/src/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]domain.Category)
	return categories, args.Error(1)
}

func (m *mockCategoryRepo) FindByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *mockCategoryRepo) Insert(ctx context.Context, in domain.CategoryInput) (*domain.Category, error) {
	args := m.Called(ctx, in)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *mockCategoryRepo) Update(ctx context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error) {
	args := m.Called(ctx, id, patch)
	category, _ := args.Get(0).(*domain.Category)
	return category, args.Error(1)
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockCategoryRepo) FindConflict(ctx context.Context, patch domain.CategoryPatch, excludeID *int64) (*domain.Conflict[domain.Category], error) {
	args := m.Called(ctx, patch, excludeID)
	conflict, _ := args.Get(0).(*domain.Conflict[domain.Category])
	return conflict, args.Error(1)
}

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) FindAll(ctx context.Context) ([]domain.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]domain.Post)
	return posts, args.Error(1)
}

func (m *mockPostRepo) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*domain.Post)
	return post, args.Error(1)
}

func (m *mockPostRepo) Insert(ctx context.Context, in domain.PostInput) (*domain.Post, error) {
	args := m.Called(ctx, in)
	post, _ := args.Get(0).(*domain.Post)
	return post, args.Error(1)
}

func (m *mockPostRepo) Update(ctx context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	args := m.Called(ctx, id, patch)
	post, _ := args.Get(0).(*domain.Post)
	return post, args.Error(1)
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPostRepo) FindConflict(ctx context.Context, patch domain.PostPatch, excludeID *int64) (*domain.Conflict[domain.Post], error) {
	args := m.Called(ctx, patch, excludeID)
	conflict, _ := args.Get(0).(*domain.Conflict[domain.Post])
	return conflict, args.Error(1)
}

func (m *mockPostRepo) FindByCategoryID(ctx context.Context, categoryID int64) ([]domain.Post, error) {
	args := m.Called(ctx, categoryID)
	posts, _ := args.Get(0).([]domain.Post)
	return posts, args.Error(1)
}

type stubChecker struct {
	err error
}

func (s stubChecker) Health(context.Context) error { return s.err }

var errDB = errors.New("connection refused")
