package registry_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magazine-registry/internal/domain/entity"
	"magazine-registry/internal/observability/metrics"
	regUC "magazine-registry/internal/usecase/registry"
)

/* ───────── helpers ───────── */

// TestMain silences the default logger so services built without one stay quiet.
func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

type fixture struct {
	t   *testing.T
	ctx context.Context
	svc *regUC.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	svc := regUC.NewInMemory()
	svc.Logger = slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	return &fixture{t: t, ctx: context.Background(), svc: svc}
}

func (f *fixture) author(name string) *entity.Author {
	f.t.Helper()
	a, err := f.svc.CreateAuthor(f.ctx, name)
	require.NoError(f.t, err)
	return a
}

func (f *fixture) magazine(name, category string) *entity.Magazine {
	f.t.Helper()
	m, err := f.svc.CreateMagazine(f.ctx, name, category)
	require.NoError(f.t, err)
	return m
}

func (f *fixture) article(a *entity.Author, m *entity.Magazine, title string) *entity.Article {
	f.t.Helper()
	art, err := f.svc.CreateArticle(f.ctx, a, m, title)
	require.NoError(f.t, err)
	return art
}

func assertValidationError(t *testing.T, err error, field string) {
	t.Helper()
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrValidationFailed)
	var ve *entity.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, field, ve.Field)
}

/* ───────── construction ───────── */

func TestService_CreateArticle_RegistersEverywhere(t *testing.T) {
	f := newFixture(t)
	author := f.author("Carry Bradshaw")
	magazine := f.magazine("Vogue", "Fashion")

	art := f.article(author, magazine, "How to wear a tutu with style")

	all, err := f.svc.Articles(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Article{art}, all)

	byAuthor, err := f.svc.AuthorArticles(f.ctx, author)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Article{art}, byAuthor)

	byMagazine, ok, err := f.svc.MagazineArticles(f.ctx, magazine)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []*entity.Article{art}, byMagazine)
}

func TestService_CreateArticle_TitleBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"length 4", 4, true},
		{"length 5", 5, false},
		{"length 50", 50, false},
		{"length 51", 51, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			author := f.author("Carry Bradshaw")
			magazine := f.magazine("Vogue", "Fashion")

			art, err := f.svc.CreateArticle(f.ctx, author, magazine, strings.Repeat("t", tt.length))

			if tt.wantErr {
				assertValidationError(t, err, "title")
				assert.Nil(t, art)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.length, len(art.Title()))
		})
	}
}

func TestService_CreateMagazine_NameBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"length 1", 1, true},
		{"length 2", 2, false},
		{"length 16", 16, false},
		{"length 17", 17, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			m, err := f.svc.CreateMagazine(f.ctx, strings.Repeat("m", tt.length), "Fashion")

			magazines, listErr := f.svc.Magazines(f.ctx)
			require.NoError(t, listErr)
			if tt.wantErr {
				assertValidationError(t, err, "name")
				assert.Nil(t, m)
				assert.Empty(t, magazines, "rejected magazine must not be registered")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []*entity.Magazine{m}, magazines)
		})
	}
}

func TestService_CreateMagazine_EmptyCategory(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateMagazine(f.ctx, "Vogue", "")

	assertValidationError(t, err, "category")
}

func TestService_CreateAuthor(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateAuthor(f.ctx, "")
	assertValidationError(t, err, "name")

	a := f.author("Carry Bradshaw")
	got, err := f.svc.GetAuthor(f.ctx, a.ID())
	require.NoError(t, err)
	assert.Same(t, a, got)

	authors, err := f.svc.Authors(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Author{a}, authors)
}

func TestService_CreateArticle_RejectsBadReferences(t *testing.T) {
	f := newFixture(t)
	author := f.author("Carry Bradshaw")
	magazine := f.magazine("Vogue", "Fashion")

	stranger, err := entity.NewAuthor("Unregistered")
	require.NoError(t, err)
	foreignMag := quietService()
	otherMag, err := foreignMag.CreateMagazine(f.ctx, "AD", "Architecture")
	require.NoError(t, err)

	tests := []struct {
		name     string
		author   *entity.Author
		magazine *entity.Magazine
		field    string
	}{
		{"nil author", nil, magazine, "author"},
		{"nil magazine", author, nil, "magazine"},
		{"author from nowhere", stranger, magazine, "author"},
		{"magazine from another registry", author, otherMag, "magazine"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			art, err := f.svc.CreateArticle(f.ctx, tt.author, tt.magazine, "How to wear a tutu with style")
			assertValidationError(t, err, tt.field)
			assert.Nil(t, art)
		})
	}

	// No partial registration happened
	all, err := f.svc.Articles(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	byAuthor, err := f.svc.AuthorArticles(f.ctx, author)
	require.NoError(t, err)
	assert.Empty(t, byAuthor)
	_, ok, err := f.svc.MagazineArticles(f.ctx, magazine)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestService_AddArticle(t *testing.T) {
	f := newFixture(t)
	author := f.author("Carry Bradshaw")
	magazine := f.magazine("Vogue", "Fashion")

	art, err := f.svc.AddArticle(f.ctx, author, magazine, "How to wear a tutu with style")
	require.NoError(t, err)

	assert.Same(t, author, art.Author())
	assert.Same(t, magazine, art.Magazine())
	byAuthor, _ := f.svc.AuthorArticles(f.ctx, author)
	assert.Equal(t, []*entity.Article{art}, byAuthor)
}

func TestService_GetNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.GetAuthor(f.ctx, uuid.New())
	assert.ErrorIs(t, err, regUC.ErrAuthorNotFound)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	_, err = f.svc.GetMagazine(f.ctx, uuid.New())
	assert.ErrorIs(t, err, regUC.ErrMagazineNotFound)

	_, err = f.svc.GetArticle(f.ctx, uuid.New())
	assert.ErrorIs(t, err, regUC.ErrArticleNotFound)
}

/* ───────── mutation ───────── */

func TestService_RenameMagazine(t *testing.T) {
	f := newFixture(t)
	author := f.author("Carry Bradshaw")
	magazine := f.magazine("Vogue", "Fashion")
	art := f.article(author, magazine, "How to wear a tutu with style")

	require.NoError(t, f.svc.RenameMagazine(f.ctx, magazine, "Vanity Fair"))
	assert.Equal(t, "Vanity Fair", art.Magazine().Name())

	assertValidationError(t, f.svc.RenameMagazine(f.ctx, magazine, "V"), "name")
	assertValidationError(t, f.svc.RenameMagazine(f.ctx, magazine, strings.Repeat("v", 17)), "name")
	assert.Equal(t, "Vanity Fair", magazine.Name())

	unregistered, _ := entity.NewMagazine("AD", "Architecture")
	assertValidationError(t, f.svc.RenameMagazine(f.ctx, unregistered, "Dwell"), "magazine")
}

func TestService_RecategorizeMagazine(t *testing.T) {
	f := newFixture(t)
	author := f.author("Carry Bradshaw")
	magazine := f.magazine("Vogue", "Fashion")
	f.article(author, magazine, "How to wear a tutu with style")

	require.NoError(t, f.svc.RecategorizeMagazine(f.ctx, magazine, "Culture"))

	areas, ok, err := f.svc.TopicAreas(f.ctx, author)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"Culture"}, areas)

	assertValidationError(t, f.svc.RecategorizeMagazine(f.ctx, magazine, ""), "category")
	assert.Equal(t, "Culture", magazine.Category())
}

func TestService_ReassignAuthor_MovesBackReferences(t *testing.T) {
	f := newFixture(t)
	carry := f.author("Carry Bradshaw")
	nathaniel := f.author("Nathaniel Hawthorne")
	vogue := f.magazine("Vogue", "Fashion")
	art := f.article(carry, vogue, "How to wear a tutu with style")

	require.NoError(t, f.svc.ReassignAuthor(f.ctx, art, nathaniel))

	assert.Same(t, nathaniel, art.Author())
	carryArts, _ := f.svc.AuthorArticles(f.ctx, carry)
	assert.Empty(t, carryArts)
	nathanielArts, _ := f.svc.AuthorArticles(f.ctx, nathaniel)
	assert.Equal(t, []*entity.Article{art}, nathanielArts)

	contributors, ok, err := f.svc.Contributors(f.ctx, vogue)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []*entity.Author{nathaniel}, contributors)
}

func TestService_ReassignMagazine_MovesBackReferences(t *testing.T) {
	f := newFixture(t)
	carry := f.author("Carry Bradshaw")
	vogue := f.magazine("Vogue", "Fashion")
	ad := f.magazine("AD", "Architecture")
	art := f.article(carry, vogue, "How to wear a tutu with style")

	require.NoError(t, f.svc.ReassignMagazine(f.ctx, art, ad))

	_, ok, err := f.svc.MagazineArticles(f.ctx, vogue)
	require.NoError(t, err)
	assert.False(t, ok, "old magazine lost its only article")

	titles, ok, err := f.svc.ArticleTitles(f.ctx, ad)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"How to wear a tutu with style"}, titles)

	magazines, err := f.svc.AuthorMagazines(f.ctx, carry)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Magazine{ad}, magazines)
}

func TestService_SettersOnArticleKeepListsInStep(t *testing.T) {
	f := newFixture(t)
	carry := f.author("Carry Bradshaw")
	nathaniel := f.author("Nathaniel Hawthorne")
	vogue := f.magazine("Vogue", "Fashion")
	ad := f.magazine("AD", "Architecture")
	art := f.article(carry, vogue, "How to wear a tutu with style")
	kept := f.article(carry, vogue, "Dating life in NYC")

	require.NoError(t, art.SetAuthor(nathaniel))
	require.NoError(t, art.SetMagazine(ad))

	carryArts, err := f.svc.AuthorArticles(f.ctx, carry)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Article{kept}, carryArts)
	nathanielArts, err := f.svc.AuthorArticles(f.ctx, nathaniel)
	require.NoError(t, err)
	assert.Equal(t, []*entity.Article{art}, nathanielArts)

	vogueArts, ok, err := f.svc.MagazineArticles(f.ctx, vogue)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []*entity.Article{kept}, vogueArts)
	adArts, ok, err := f.svc.MagazineArticles(f.ctx, ad)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []*entity.Article{art}, adArts)

	contributors, ok, err := f.svc.Contributors(f.ctx, ad)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []*entity.Author{nathaniel}, contributors)
}

func TestService_Reassign_RejectsBadReferences(t *testing.T) {
	f := newFixture(t)
	carry := f.author("Carry Bradshaw")
	vogue := f.magazine("Vogue", "Fashion")
	art := f.article(carry, vogue, "How to wear a tutu with style")
	stranger, _ := entity.NewAuthor("Stranger")
	otherMag, _ := entity.NewMagazine("AD", "Architecture")
	unregistered, _ := entity.NewArticle(carry, vogue, "Not in the registry")

	assertValidationError(t, f.svc.ReassignAuthor(f.ctx, art, nil), "author")
	assertValidationError(t, f.svc.ReassignAuthor(f.ctx, art, stranger), "author")
	assertValidationError(t, f.svc.ReassignMagazine(f.ctx, art, nil), "magazine")
	assertValidationError(t, f.svc.ReassignMagazine(f.ctx, art, otherMag), "magazine")
	assertValidationError(t, f.svc.ReassignAuthor(f.ctx, unregistered, carry), "article")
	assertValidationError(t, f.svc.ReassignMagazine(f.ctx, nil, vogue), "article")

	assert.Same(t, carry, art.Author())
	assert.Same(t, vogue, art.Magazine())
}

/* ───────── observability ───────── */

func TestService_LogsAndCountsValidationFailures(t *testing.T) {
	var buf bytes.Buffer
	svc := regUC.NewInMemory()
	svc.Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	counter := metrics.ValidationFailuresTotal.WithLabelValues("magazine", "name")
	before := testutil.ToFloat64(counter)

	_, err := svc.CreateMagazine(context.Background(), "V", "Fashion")

	require.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Contains(t, buf.String(), `"msg":"validation failed"`)
	assert.Contains(t, buf.String(), `"field":"name"`)
}

func TestService_LogsMutations(t *testing.T) {
	var buf bytes.Buffer
	svc := regUC.NewInMemory()
	svc.Logger = slog.New(slog.NewJSONHandler(&buf, nil))
	counter := metrics.MutationsTotal.WithLabelValues("create_author")
	before := testutil.ToFloat64(counter)

	_, err := svc.CreateAuthor(context.Background(), "Carry Bradshaw")

	require.NoError(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
	assert.Contains(t, buf.String(), `"msg":"create_author"`)
	assert.Contains(t, buf.String(), `"name":"Carry Bradshaw"`)
}

func TestService_NonValidationErrorsPassThrough(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("boom")
	f.svc.AuthorRepo = failingAuthorRepo{err: boom}

	_, err := f.svc.CreateAuthor(f.ctx, "Carry Bradshaw")

	assert.ErrorIs(t, err, boom)
	assert.False(t, entity.IsValidationError(err))
}

type failingAuthorRepo struct{ err error }

func (r failingAuthorRepo) Get(context.Context, uuid.UUID) (*entity.Author, error) { return nil, r.err }
func (r failingAuthorRepo) List(context.Context) ([]*entity.Author, error)         { return nil, r.err }
func (r failingAuthorRepo) Count(context.Context) (int, error)                     { return 0, r.err }
func (r failingAuthorRepo) Create(context.Context, *entity.Author) error           { return r.err }
