package repository

import (
	"context"

	"github.com/google/uuid"

	"magazine-registry/internal/domain/entity"
)

type MagazineRepository interface {
	// Get returns (nil, nil) if the magazine is not registered.
	Get(ctx context.Context, id uuid.UUID) (*entity.Magazine, error)
	// List returns every registered magazine in construction order.
	List(ctx context.Context) ([]*entity.Magazine, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, magazine *entity.Magazine) error
	Update(ctx context.Context, magazine *entity.Magazine) error
}
