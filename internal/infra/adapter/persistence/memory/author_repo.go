// Package memory implements the repository ports in process memory.
//
// The repositories keep entities in construction order and are never pruned.
// They are not safe for concurrent use.
package memory

import (
	"context"
	"errors"
	"slices"

	"github.com/google/uuid"

	"magazine-registry/internal/domain/entity"
	"magazine-registry/internal/repository"
)

// ErrAlreadyRegistered is returned by Create when an entity with the same ID exists.
var ErrAlreadyRegistered = errors.New("entity already registered")

type AuthorRepo struct {
	authors []*entity.Author
	byID    map[uuid.UUID]*entity.Author
}

func NewAuthorRepo() repository.AuthorRepository {
	return &AuthorRepo{byID: make(map[uuid.UUID]*entity.Author)}
}

func (repo *AuthorRepo) Get(_ context.Context, id uuid.UUID) (*entity.Author, error) {
	return repo.byID[id], nil
}

func (repo *AuthorRepo) List(_ context.Context) ([]*entity.Author, error) {
	return slices.Clone(repo.authors), nil
}

func (repo *AuthorRepo) Count(_ context.Context) (int, error) {
	return len(repo.authors), nil
}

func (repo *AuthorRepo) Create(_ context.Context, author *entity.Author) error {
	if _, ok := repo.byID[author.ID()]; ok {
		return ErrAlreadyRegistered
	}
	repo.authors = append(repo.authors, author)
	repo.byID[author.ID()] = author
	return nil
}
