// Package dto contains Data Transfer Objects for HTTP requests.
//
// Create requests carry every field and `binding` rules; update requests use
// pointer fields so an omitted field is left untouched:
//
//	var req dto.UpdatePostRequest
//	if err := c.ShouldBindJSON(&req); err != nil { ... }
//	post, err := posts.Update(ctx, id, req.ToPatch())
//
// The custom `route` and `slug` tags are registered on gin's validator by
// RegisterValidators, called once while building the router.
package dto
