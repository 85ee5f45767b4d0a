// Package entity defines the core domain entities and validation logic for the registry.
// It contains the three entity kinds, Author, Magazine and Article, along with
// their validation rules and domain-specific errors.
//
// Entities are constructed only through their New* functions, which validate
// every attribute. Immutable attributes are exposed through getters; mutable
// ones through setters that re-run the construction rules.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Author represents a writer of articles.
// The name is fixed at construction.
type Author struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
}

// NewAuthor creates an Author.
// Returns a ValidationError if name is empty.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateRequired("name", name); err != nil {
		return nil, err
	}
	return &Author{
		id:        uuid.New(),
		name:      name,
		createdAt: time.Now(),
	}, nil
}

// ID returns the author's identifier.
func (a *Author) ID() uuid.UUID { return a.id }

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// CreatedAt returns the construction time.
func (a *Author) CreatedAt() time.Time { return a.createdAt }

func (a *Author) String() string { return a.name }
