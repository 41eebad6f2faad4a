package domain

// Category groups posts under a displayable label and a URL route.
type Category struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
	Route string `json:"route"`
}

// Post is a blog article attached to exactly one category.
type Post struct {
	ID         int64  `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Excerpt    string `json:"excerpt"`
	Content    string `json:"content"`
	CategoryID int64  `json:"category_id"`
}

// CategoryInput holds every field needed to insert a category.
type CategoryInput struct {
	Label string
	Route string
}

// PostInput holds every field needed to insert a post.
type PostInput struct {
	Slug       string
	Title      string
	Excerpt    string
	Content    string
	CategoryID int64
}

// Field is a supplied column/value pair of a patch.
type Field struct {
	Name  string
	Value any
}

// CategoryPatch is a partial category update. A nil field is left untouched.
type CategoryPatch struct {
	Label *string
	Route *string
}

// Fields returns the supplied fields in column order.
func (p CategoryPatch) Fields() []Field {
	var fields []Field
	if p.Label != nil {
		fields = append(fields, Field{Name: "label", Value: *p.Label})
	}
	if p.Route != nil {
		fields = append(fields, Field{Name: "route", Value: *p.Route})
	}
	return fields
}

// IsEmpty reports whether no field was supplied.
func (p CategoryPatch) IsEmpty() bool {
	return p.Label == nil && p.Route == nil
}

// Apply merges the patch into c and returns the result.
func (p CategoryPatch) Apply(c Category) Category {
	if p.Label != nil {
		c.Label = *p.Label
	}
	if p.Route != nil {
		c.Route = *p.Route
	}
	return c
}

// PatchFromCategoryInput turns a full input into a patch with every field set.
func PatchFromCategoryInput(in CategoryInput) CategoryPatch {
	return CategoryPatch{Label: &in.Label, Route: &in.Route}
}

// PostPatch is a partial post update. A nil field is left untouched.
type PostPatch struct {
	Slug       *string
	Title      *string
	Excerpt    *string
	Content    *string
	CategoryID *int64
}

// Fields returns the supplied fields in column order.
func (p PostPatch) Fields() []Field {
	var fields []Field
	if p.Slug != nil {
		fields = append(fields, Field{Name: "slug", Value: *p.Slug})
	}
	if p.Title != nil {
		fields = append(fields, Field{Name: "title", Value: *p.Title})
	}
	if p.Excerpt != nil {
		fields = append(fields, Field{Name: "excerpt", Value: *p.Excerpt})
	}
	if p.Content != nil {
		fields = append(fields, Field{Name: "content", Value: *p.Content})
	}
	if p.CategoryID != nil {
		fields = append(fields, Field{Name: "category_id", Value: *p.CategoryID})
	}
	return fields
}

// IsEmpty reports whether no field was supplied.
func (p PostPatch) IsEmpty() bool {
	return p.Slug == nil && p.Title == nil && p.Excerpt == nil &&
		p.Content == nil && p.CategoryID == nil
}

// Apply merges the patch into post and returns the result.
func (p PostPatch) Apply(post Post) Post {
	if p.Slug != nil {
		post.Slug = *p.Slug
	}
	if p.Title != nil {
		post.Title = *p.Title
	}
	if p.Excerpt != nil {
		post.Excerpt = *p.Excerpt
	}
	if p.Content != nil {
		post.Content = *p.Content
	}
	if p.CategoryID != nil {
		post.CategoryID = *p.CategoryID
	}
	return post
}

// PatchFromPostInput turns a full input into a patch with every field set.
func PatchFromPostInput(in PostInput) PostPatch {
	return PostPatch{
		Slug:       &in.Slug,
		Title:      &in.Title,
		Excerpt:    &in.Excerpt,
		Content:    &in.Content,
		CategoryID: &in.CategoryID,
	}
}

// Conflict is the result of a uniqueness check: an existing entity that
// shares at least one unique value with the checked input.
type Conflict[T any] struct {
	Entity T
	// Fields lists the unique fields whose stored value equals the input.
	Fields []string
}

// Field returns the first conflicting field, or "" when none matched.
func (c *Conflict[T]) Field() string {
	if c == nil || len(c.Fields) == 0 {
		return ""
	}
	return c.Fields[0]
}

// Validate checks the invariants a stored category must satisfy.
func (c Category) Validate() error {
	if c.Label == "" {
		return NewValidationError("label", "cannot be empty")
	}
	if c.Route == "" {
		return NewValidationError("route", "cannot be empty")
	}
	return nil
}

// Validate checks the invariants a stored post must satisfy.
func (p Post) Validate() error {
	switch {
	case p.Slug == "":
		return NewValidationError("slug", "cannot be empty")
	case p.Title == "":
		return NewValidationError("title", "cannot be empty")
	case p.CategoryID <= 0:
		return NewValidationError("category_id", "must be a positive id")
	}
	return nil
}
