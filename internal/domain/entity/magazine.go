package entity

import (
	"time"

	"github.com/google/uuid"
)

// Magazine represents a publication that articles appear in.
// Name and category may change after construction; every article holding
// the magazine observes the new values.
type Magazine struct {
	id        uuid.UUID
	name      string
	category  string
	createdAt time.Time
}

// NewMagazine creates a Magazine.
// Returns a ValidationError unless name has 2 to 16 characters and category is non-empty.
func NewMagazine(name, category string) (*Magazine, error) {
	if err := validateMagazineName(name); err != nil {
		return nil, err
	}
	if err := ValidateRequired("category", category); err != nil {
		return nil, err
	}
	return &Magazine{
		id:        uuid.New(),
		name:      name,
		category:  category,
		createdAt: time.Now(),
	}, nil
}

// ID returns the magazine's identifier.
func (m *Magazine) ID() uuid.UUID { return m.id }

// Name returns the magazine's current name.
func (m *Magazine) Name() string { return m.name }

// Category returns the magazine's current category.
func (m *Magazine) Category() string { return m.category }

// CreatedAt returns the construction time.
func (m *Magazine) CreatedAt() time.Time { return m.createdAt }

// SetName replaces the name in place.
// The previous name is kept if the new one fails validation.
func (m *Magazine) SetName(name string) error {
	if err := validateMagazineName(name); err != nil {
		return err
	}
	m.name = name
	return nil
}

// SetCategory replaces the category in place.
// The previous category is kept if the new one is empty.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateRequired("category", category); err != nil {
		return err
	}
	m.category = category
	return nil
}

func (m *Magazine) String() string { return m.name }

func validateMagazineName(name string) error {
	return ValidateLength("name", name, MagazineNameMinLength, MagazineNameMaxLength)
}
