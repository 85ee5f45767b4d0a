package entity

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, field, ve.Field)
}

func TestNewAuthor(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple name", "Carry Bradshaw", false},
		{"single character", "X", false},
		{"unicode name", "村上春樹", false},
		{"empty name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			author, err := NewAuthor(tt.input)

			if tt.wantErr {
				requireValidationError(t, err, "name")
				assert.Nil(t, author)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, author.Name())
			assert.Equal(t, tt.input, author.String())
			assert.NotEqual(t, uuid.Nil, author.ID())
			assert.False(t, author.CreatedAt().IsZero())
		})
	}
}

func TestNewAuthor_UniqueIDs(t *testing.T) {
	a1, err := NewAuthor("Same Name")
	require.NoError(t, err)
	a2, err := NewAuthor("Same Name")
	require.NoError(t, err)

	assert.NotEqual(t, a1.ID(), a2.ID())
}

func TestNewMagazine(t *testing.T) {
	tests := []struct {
		name      string
		magName   string
		category  string
		wantField string
	}{
		{"valid", "Vogue", "Fashion", ""},
		{"name length 2", "AD", "Architecture", ""},
		{"name length 16", strings.Repeat("m", 16), "Misc", ""},
		{"name length 1", "V", "Fashion", "name"},
		{"name length 17", strings.Repeat("m", 17), "Misc", "name"},
		{"empty name", "", "Fashion", "name"},
		{"empty category", "Vogue", "", "category"},
		{"multibyte name counts characters", "日本", "Culture", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			magazine, err := NewMagazine(tt.magName, tt.category)

			if tt.wantField != "" {
				requireValidationError(t, err, tt.wantField)
				assert.Nil(t, magazine)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.magName, magazine.Name())
			assert.Equal(t, tt.category, magazine.Category())
			assert.NotEqual(t, uuid.Nil, magazine.ID())
		})
	}
}

func TestMagazine_SetName(t *testing.T) {
	magazine, err := NewMagazine("Vogue", "Fashion")
	require.NoError(t, err)

	require.NoError(t, magazine.SetName("New Yorker"))
	assert.Equal(t, "New Yorker", magazine.Name())

	requireValidationError(t, magazine.SetName("N"), "name")
	requireValidationError(t, magazine.SetName(strings.Repeat("n", 17)), "name")

	// Failed mutations keep the previous value
	assert.Equal(t, "New Yorker", magazine.Name())
}

func TestMagazine_SetCategory(t *testing.T) {
	magazine, err := NewMagazine("Vogue", "Fashion")
	require.NoError(t, err)

	require.NoError(t, magazine.SetCategory("Culture"))
	assert.Equal(t, "Culture", magazine.Category())

	requireValidationError(t, magazine.SetCategory(""), "category")
	assert.Equal(t, "Culture", magazine.Category())
}

func TestNewArticle(t *testing.T) {
	author, err := NewAuthor("Carry Bradshaw")
	require.NoError(t, err)
	magazine, err := NewMagazine("Vogue", "Fashion")
	require.NoError(t, err)

	tests := []struct {
		name      string
		author    *Author
		magazine  *Magazine
		title     string
		wantField string
	}{
		{"valid", author, magazine, "How to wear a tutu with style", ""},
		{"title length 5", author, magazine, strings.Repeat("t", 5), ""},
		{"title length 50", author, magazine, strings.Repeat("t", 50), ""},
		{"title length 4", author, magazine, strings.Repeat("t", 4), "title"},
		{"title length 51", author, magazine, strings.Repeat("t", 51), "title"},
		{"nil author", nil, magazine, "How to wear a tutu with style", "author"},
		{"nil magazine", author, nil, "How to wear a tutu with style", "magazine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article, err := NewArticle(tt.author, tt.magazine, tt.title)

			if tt.wantField != "" {
				requireValidationError(t, err, tt.wantField)
				assert.Nil(t, article)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.title, article.Title())
			assert.Same(t, tt.author, article.Author())
			assert.Same(t, tt.magazine, article.Magazine())
			assert.NotEqual(t, uuid.Nil, article.ID())
		})
	}
}

func TestArticle_ObservesMagazineMutation(t *testing.T) {
	author, _ := NewAuthor("Carry Bradshaw")
	magazine, _ := NewMagazine("Vogue", "Fashion")
	article, err := NewArticle(author, magazine, "How to wear a tutu with style")
	require.NoError(t, err)

	require.NoError(t, magazine.SetName("Vanity Fair"))
	require.NoError(t, magazine.SetCategory("Culture"))

	assert.Equal(t, "Vanity Fair", article.Magazine().Name())
	assert.Equal(t, "Culture", article.Magazine().Category())
}

func TestArticle_Reassign(t *testing.T) {
	author, _ := NewAuthor("Carry Bradshaw")
	other, _ := NewAuthor("Nathaniel Hawthorne")
	magazine, _ := NewMagazine("Vogue", "Fashion")
	otherMag, _ := NewMagazine("AD", "Architecture")
	article, err := NewArticle(author, magazine, "How to wear a tutu with style")
	require.NoError(t, err)

	require.NoError(t, article.SetAuthor(other))
	assert.Same(t, other, article.Author())

	require.NoError(t, article.SetMagazine(otherMag))
	assert.Same(t, otherMag, article.Magazine())

	requireValidationError(t, article.SetAuthor(nil), "author")
	requireValidationError(t, article.SetMagazine(nil), "magazine")
	assert.Same(t, other, article.Author())
	assert.Same(t, otherMag, article.Magazine())
}
