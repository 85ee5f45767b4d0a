package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"magazine-registry/internal/domain/entity"
	"magazine-registry/internal/repository"
)

type MagazineRepo struct {
	magazines []*entity.Magazine
	byID      map[uuid.UUID]*entity.Magazine
}

func NewMagazineRepo() repository.MagazineRepository {
	return &MagazineRepo{byID: make(map[uuid.UUID]*entity.Magazine)}
}

func (repo *MagazineRepo) Get(_ context.Context, id uuid.UUID) (*entity.Magazine, error) {
	return repo.byID[id], nil
}

func (repo *MagazineRepo) List(_ context.Context) ([]*entity.Magazine, error) {
	return slices.Clone(repo.magazines), nil
}

func (repo *MagazineRepo) Count(_ context.Context) (int, error) {
	return len(repo.magazines), nil
}

func (repo *MagazineRepo) Create(_ context.Context, magazine *entity.Magazine) error {
	if _, ok := repo.byID[magazine.ID()]; ok {
		return ErrAlreadyRegistered
	}
	repo.magazines = append(repo.magazines, magazine)
	repo.byID[magazine.ID()] = magazine
	return nil
}

// Update is a registration check only: the repository stores pointers, so
// name and category changes are already visible to every reader.
func (repo *MagazineRepo) Update(_ context.Context, magazine *entity.Magazine) error {
	if _, ok := repo.byID[magazine.ID()]; !ok {
		return entity.ErrNotFound
	}
	return nil
}
