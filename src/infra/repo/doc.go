// Package repo contains PostgreSQL implementations of repository interfaces.
//
// This package implements the ports defined in src/core/ports.
// Each repository is responsible for a specific domain aggregate.
//
// Naming convention:
//   - Files: <entity>_repo.go (e.g., category_repo.go, post_repo.go)
//   - Types: <Entity>Repository (e.g., CategoryRepository, PostRepository)
//
// All repositories receive the query executor (DBTX) via constructor
// injection. Statements are always parameterized; dynamic column lists are
// built only from the field names of domain patches.
//
//	categories := repo.NewCategoryRepository(pg.Pool, log)
//	posts := repo.NewPostRepository(pg.Pool, categories, log)
package repo
