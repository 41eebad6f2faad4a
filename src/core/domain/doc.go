// Package domain contains the core domain model of the blog API.
//
// This package defines:
//   - Entities: Category and Post
//   - Inputs and patches: full insert payloads and partial updates with an
//     explicit Apply merge
//   - Conflict: the result of a uniqueness check
//   - Domain errors: not found, missing reference, invalid input, conflict
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//
// Example:
//
//	label := "Technology"
//	patch := domain.CategoryPatch{Label: &label}
//	merged := patch.Apply(stored)
//	if err := merged.Validate(); err != nil {
//	    return err
//	}
package domain
