// Package registry provides the use cases of the author/magazine/article registry.
// It constructs and registers entities, applies validated mutations while keeping
// the back-reference indexes consistent, and answers the derived queries
// (topic areas, contributors, top publisher, ...).
package registry

import (
	"fmt"

	"magazine-registry/internal/domain/entity"
)

// Sentinel errors for registry lookups. Each wraps entity.ErrNotFound.
var (
	// ErrAuthorNotFound indicates that no author with the requested ID is registered.
	ErrAuthorNotFound = fmt.Errorf("author: %w", entity.ErrNotFound)

	// ErrMagazineNotFound indicates that no magazine with the requested ID is registered.
	ErrMagazineNotFound = fmt.Errorf("magazine: %w", entity.ErrNotFound)

	// ErrArticleNotFound indicates that no article with the requested ID is registered.
	ErrArticleNotFound = fmt.Errorf("article: %w", entity.ErrNotFound)
)
