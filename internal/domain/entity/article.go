package entity

import (
	"time"

	"github.com/google/uuid"
)

// Article represents a piece written by one Author and published in one Magazine.
// The title is fixed at construction; author and magazine may be reassigned.
type Article struct {
	id        uuid.UUID
	title     string
	author    *Author
	magazine  *Magazine
	createdAt time.Time
}

// NewArticle creates an Article linking author and magazine.
// Returns a ValidationError if author or magazine is nil, or if the title
// does not have 5 to 50 characters.
//
// NewArticle does not register the article anywhere; the registry service
// takes care of the back-references.
func NewArticle(author *Author, magazine *Magazine, title string) (*Article, error) {
	if err := validateAuthorRef(author); err != nil {
		return nil, err
	}
	if err := validateMagazineRef(magazine); err != nil {
		return nil, err
	}
	if err := ValidateLength("title", title, ArticleTitleMinLength, ArticleTitleMaxLength); err != nil {
		return nil, err
	}
	return &Article{
		id:        uuid.New(),
		title:     title,
		author:    author,
		magazine:  magazine,
		createdAt: time.Now(),
	}, nil
}

// ID returns the article's identifier.
func (a *Article) ID() uuid.UUID { return a.id }

// Title returns the article's title.
func (a *Article) Title() string { return a.title }

// Author returns the article's current author.
func (a *Article) Author() *Author { return a.author }

// Magazine returns the magazine the article is currently published in.
func (a *Article) Magazine() *Magazine { return a.magazine }

// CreatedAt returns the construction time.
func (a *Article) CreatedAt() time.Time { return a.createdAt }

// SetAuthor replaces the article's author.
// Registries holding the article re-index it on their next read.
func (a *Article) SetAuthor(author *Author) error {
	if err := validateAuthorRef(author); err != nil {
		return err
	}
	a.author = author
	return nil
}

// SetMagazine replaces the article's magazine.
func (a *Article) SetMagazine(magazine *Magazine) error {
	if err := validateMagazineRef(magazine); err != nil {
		return err
	}
	a.magazine = magazine
	return nil
}

func (a *Article) String() string { return a.title }

func validateAuthorRef(author *Author) error {
	if author == nil {
		return &ValidationError{Field: "author", Message: "must be an Author"}
	}
	return nil
}

func validateMagazineRef(magazine *Magazine) error {
	if magazine == nil {
		return &ValidationError{Field: "magazine", Message: "must be a Magazine"}
	}
	return nil
}
