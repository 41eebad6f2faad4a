package server

import (
	"context"
	"errors"
	"sort"
	"sync"

	"oblog/src/core/domain"
)

// memStore backs both fake repositories so posts can see categories.
type memStore struct {
	mu         sync.Mutex
	categories map[int64]domain.Category
	posts      map[int64]domain.Post
	nextID     int64
}

func newMemStore() *memStore {
	return &memStore{
		categories: map[int64]domain.Category{},
		posts:      map[int64]domain.Post{},
	}
}

type memCategories struct{ s *memStore }

func (r memCategories) FindAll(context.Context) ([]domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Category, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memCategories) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r memCategories) Insert(_ context.Context, in domain.CategoryInput) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextID++
	c := domain.Category{ID: r.s.nextID, Label: in.Label, Route: in.Route}
	r.s.categories[c.ID] = c
	return &c, nil
}

func (r memCategories) Update(_ context.Context, id int64, patch domain.CategoryPatch) (*domain.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	c = patch.Apply(c)
	r.s.categories[id] = c
	return &c, nil
}

func (r memCategories) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.categories[id]
	delete(r.s.categories, id)
	return ok, nil
}

func (r memCategories) FindConflict(_ context.Context, patch domain.CategoryPatch, excludeID *int64) (*domain.Conflict[domain.Category], error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range r.s.categories {
		if excludeID != nil && c.ID == *excludeID {
			continue
		}
		var fields []string
		if patch.Label != nil && *patch.Label == c.Label {
			fields = append(fields, "label")
		}
		if patch.Route != nil && *patch.Route == c.Route {
			fields = append(fields, "route")
		}
		if len(fields) > 0 {
			return &domain.Conflict[domain.Category]{Entity: c, Fields: fields}, nil
		}
	}
	return nil, nil
}

type memPosts struct{ s *memStore }

func (r memPosts) FindAll(context.Context) ([]domain.Post, error) {
	return r.filter(func(domain.Post) bool { return true }), nil
}

func (r memPosts) filter(keep func(domain.Post) bool) []domain.Post {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]domain.Post, 0)
	for _, p := range r.s.posts {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r memPosts) FindByID(_ context.Context, id int64) (*domain.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r memPosts) Insert(_ context.Context, in domain.PostInput) (*domain.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[in.CategoryID]; !ok {
		return nil, domain.NewValidationError("category_id", "category does not exist")
	}
	r.s.nextID++
	p := domain.Post{
		ID:         r.s.nextID,
		Slug:       in.Slug,
		Title:      in.Title,
		Excerpt:    in.Excerpt,
		Content:    in.Content,
		CategoryID: in.CategoryID,
	}
	r.s.posts[p.ID] = p
	return &p, nil
}

func (r memPosts) Update(_ context.Context, id int64, patch domain.PostPatch) (*domain.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.posts[id]
	if !ok {
		return nil, nil
	}
	p = patch.Apply(p)
	r.s.posts[id] = p
	return &p, nil
}

func (r memPosts) Delete(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.posts[id]
	delete(r.s.posts, id)
	return ok, nil
}

func (r memPosts) FindConflict(_ context.Context, patch domain.PostPatch, excludeID *int64) (*domain.Conflict[domain.Post], error) {
	for _, p := range r.filter(func(p domain.Post) bool { return excludeID == nil || p.ID != *excludeID }) {
		var fields []string
		if patch.Slug != nil && *patch.Slug == p.Slug {
			fields = append(fields, "slug")
		}
		if patch.Title != nil && *patch.Title == p.Title {
			fields = append(fields, "title")
		}
		if len(fields) > 0 {
			return &domain.Conflict[domain.Post]{Entity: p, Fields: fields}, nil
		}
	}
	return nil, nil
}

func (r memPosts) FindByCategoryID(ctx context.Context, categoryID int64) ([]domain.Post, error) {
	category, err := memCategories(r).FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.NewReferenceError("category")
	}
	return r.filter(func(p domain.Post) bool { return p.CategoryID == categoryID }), nil
}

type downChecker struct{}

func (downChecker) Health(context.Context) error { return errors.New("connection refused") }
