// Package repository declares the storage ports used by the registry use cases.
package repository

import (
	"context"

	"github.com/google/uuid"

	"magazine-registry/internal/domain/entity"
)

type AuthorRepository interface {
	// Get returns (nil, nil) if the author is not registered.
	Get(ctx context.Context, id uuid.UUID) (*entity.Author, error)
	List(ctx context.Context) ([]*entity.Author, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, author *entity.Author) error
}
