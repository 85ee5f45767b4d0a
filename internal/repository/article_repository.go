package repository

import (
	"context"

	"github.com/google/uuid"

	"magazine-registry/internal/domain/entity"
)

// ArticleRepository is the article registry together with the
// author→articles and magazine→articles back-reference indexes.
type ArticleRepository interface {
	// Get returns (nil, nil) if the article is not registered.
	Get(ctx context.Context, id uuid.UUID) (*entity.Article, error)
	// List returns every registered article in construction order.
	List(ctx context.Context) ([]*entity.Article, error)
	// ListByAuthor returns the articles currently indexed under the author,
	// in the order they were attached.
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*entity.Article, error)
	// ListByMagazine returns the articles currently indexed under the magazine,
	// in the order they were attached.
	ListByMagazine(ctx context.Context, magazineID uuid.UUID) ([]*entity.Article, error)
	CountByMagazine(ctx context.Context, magazineID uuid.UUID) (int, error)
	Count(ctx context.Context) (int, error)
	// Create registers the article and attaches it to its author's and
	// magazine's back-reference lists in one step.
	Create(ctx context.Context, article *entity.Article) error
	// Update re-indexes an article whose author or magazine was reassigned.
	Update(ctx context.Context, article *entity.Article) error
}
