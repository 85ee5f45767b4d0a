package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"magazine-registry/internal/domain/entity"
	"magazine-registry/internal/infra/adapter/persistence/memory"
	"magazine-registry/internal/observability/logging"
	"magazine-registry/internal/observability/metrics"
	"magazine-registry/internal/observability/tracing"
	"magazine-registry/internal/repository"
)

// Service provides registry use cases.
// It validates input, keeps the article registry and the back-reference
// indexes in step, and delegates storage to the repositories.
//
// A Service is meant for a single caller; it is not safe for concurrent use.
type Service struct {
	AuthorRepo   repository.AuthorRepository
	MagazineRepo repository.MagazineRepository
	ArticleRepo  repository.ArticleRepository

	// Logger is used when set; otherwise the logger from the context is used.
	Logger *slog.Logger
}

// NewInMemory returns a Service backed by fresh in-memory repositories.
// Each call yields an independent registry.
func NewInMemory() *Service {
	return &Service{
		AuthorRepo:   memory.NewAuthorRepo(),
		MagazineRepo: memory.NewMagazineRepo(),
		ArticleRepo:  memory.NewArticleRepo(),
	}
}

// CreateAuthor constructs an author and registers it.
// Returns a ValidationError if name is empty.
func (s *Service) CreateAuthor(ctx context.Context, name string) (author *entity.Author, err error) {
	ctx, span := tracing.StartSpan(ctx, "registry.CreateAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	author, err = entity.NewAuthor(name)
	if err != nil {
		return nil, s.rejected(ctx, "author", err)
	}
	if err := s.AuthorRepo.Create(ctx, author); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}

	s.mutated(ctx, "create_author", slog.String("author_id", author.ID().String()), slog.String("name", name))
	return author, nil
}

// CreateMagazine constructs a magazine and registers it.
// Returns a ValidationError unless name has 2 to 16 characters and category is non-empty.
func (s *Service) CreateMagazine(ctx context.Context, name, category string) (magazine *entity.Magazine, err error) {
	ctx, span := tracing.StartSpan(ctx, "registry.CreateMagazine")
	defer func() { tracing.EndSpan(span, err) }()

	magazine, err = entity.NewMagazine(name, category)
	if err != nil {
		return nil, s.rejected(ctx, "magazine", err)
	}
	if err := s.MagazineRepo.Create(ctx, magazine); err != nil {
		return nil, fmt.Errorf("create magazine: %w", err)
	}

	s.mutated(ctx, "create_magazine",
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("name", name),
		slog.String("category", category))
	return magazine, nil
}

// CreateArticle constructs an article and registers it with the global
// article registry, the author's articles and the magazine's articles.
//
// Returns a ValidationError if author or magazine is nil or not registered
// with this Service, or if the title does not have 5 to 50 characters.
// Nothing is registered when an error is returned.
func (s *Service) CreateArticle(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title string) (article *entity.Article, err error) {
	ctx, span := tracing.StartSpan(ctx, "registry.CreateArticle", attribute.String("article.title", title))
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.requireAuthor(ctx, author); err != nil {
		return nil, s.rejected(ctx, "article", err)
	}
	if err := s.requireMagazine(ctx, magazine); err != nil {
		return nil, s.rejected(ctx, "article", err)
	}

	article, err = entity.NewArticle(author, magazine, title)
	if err != nil {
		return nil, s.rejected(ctx, "article", err)
	}
	if err := s.ArticleRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}

	s.mutated(ctx, "create_article",
		slog.String("article_id", article.ID().String()),
		slog.String("author_id", author.ID().String()),
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("title", title))
	return article, nil
}

// AddArticle creates an article written by author. It is equivalent to
// CreateArticle(ctx, author, magazine, title).
func (s *Service) AddArticle(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error) {
	return s.CreateArticle(ctx, author, magazine, title)
}

// RenameMagazine validates and replaces the magazine's name.
func (s *Service) RenameMagazine(ctx context.Context, magazine *entity.Magazine, name string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "registry.RenameMagazine", attribute.String("magazine.name", name))
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.requireMagazine(ctx, magazine); err != nil {
		return s.rejected(ctx, "magazine", err)
	}
	old := magazine.Name()
	if err := magazine.SetName(name); err != nil {
		return s.rejected(ctx, "magazine", err)
	}
	if err := s.MagazineRepo.Update(ctx, magazine); err != nil {
		return fmt.Errorf("update magazine: %w", err)
	}

	s.mutated(ctx, "rename_magazine",
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("from", old),
		slog.String("to", name))
	return nil
}

// RecategorizeMagazine validates and replaces the magazine's category.
func (s *Service) RecategorizeMagazine(ctx context.Context, magazine *entity.Magazine, category string) (err error) {
	ctx, span := tracing.StartSpan(ctx, "registry.RecategorizeMagazine", attribute.String("magazine.category", category))
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.requireMagazine(ctx, magazine); err != nil {
		return s.rejected(ctx, "magazine", err)
	}
	old := magazine.Category()
	if err := magazine.SetCategory(category); err != nil {
		return s.rejected(ctx, "magazine", err)
	}
	if err := s.MagazineRepo.Update(ctx, magazine); err != nil {
		return fmt.Errorf("update magazine: %w", err)
	}

	s.mutated(ctx, "recategorize_magazine",
		slog.String("magazine_id", magazine.ID().String()),
		slog.String("from", old),
		slog.String("to", category))
	return nil
}

// ReassignAuthor points the article at a different registered author and
// moves it from the old author's articles to the new author's.
func (s *Service) ReassignAuthor(ctx context.Context, article *entity.Article, author *entity.Author) (err error) {
	ctx, span := tracing.StartSpan(ctx, "registry.ReassignAuthor")
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.requireArticle(ctx, article); err != nil {
		return s.rejected(ctx, "article", err)
	}
	if err := s.requireAuthor(ctx, author); err != nil {
		return s.rejected(ctx, "article", err)
	}
	old := article.Author()
	if err := article.SetAuthor(author); err != nil {
		return s.rejected(ctx, "article", err)
	}
	if err := s.ArticleRepo.Update(ctx, article); err != nil {
		// keep the article and the index in agreement
		_ = article.SetAuthor(old)
		return fmt.Errorf("update article: %w", err)
	}

	s.mutated(ctx, "reassign_author",
		slog.String("article_id", article.ID().String()),
		slog.String("from", old.ID().String()),
		slog.String("to", author.ID().String()))
	return nil
}

// ReassignMagazine moves the article to a different registered magazine and
// updates both magazines' articles.
func (s *Service) ReassignMagazine(ctx context.Context, article *entity.Article, magazine *entity.Magazine) (err error) {
	ctx, span := tracing.StartSpan(ctx, "registry.ReassignMagazine")
	defer func() { tracing.EndSpan(span, err) }()

	if err := s.requireArticle(ctx, article); err != nil {
		return s.rejected(ctx, "article", err)
	}
	if err := s.requireMagazine(ctx, magazine); err != nil {
		return s.rejected(ctx, "article", err)
	}
	old := article.Magazine()
	if err := article.SetMagazine(magazine); err != nil {
		return s.rejected(ctx, "article", err)
	}
	if err := s.ArticleRepo.Update(ctx, article); err != nil {
		_ = article.SetMagazine(old)
		return fmt.Errorf("update article: %w", err)
	}

	s.mutated(ctx, "reassign_magazine",
		slog.String("article_id", article.ID().String()),
		slog.String("from", old.ID().String()),
		slog.String("to", magazine.ID().String()))
	return nil
}

func (s *Service) requireAuthor(ctx context.Context, author *entity.Author) error {
	if author == nil {
		return &entity.ValidationError{Field: "author", Message: "must be an Author"}
	}
	got, err := s.AuthorRepo.Get(ctx, author.ID())
	if err != nil {
		return fmt.Errorf("get author: %w", err)
	}
	if got != author {
		return &entity.ValidationError{Field: "author", Message: "must be registered in this registry"}
	}
	return nil
}

func (s *Service) requireMagazine(ctx context.Context, magazine *entity.Magazine) error {
	if magazine == nil {
		return &entity.ValidationError{Field: "magazine", Message: "must be a Magazine"}
	}
	got, err := s.MagazineRepo.Get(ctx, magazine.ID())
	if err != nil {
		return fmt.Errorf("get magazine: %w", err)
	}
	if got != magazine {
		return &entity.ValidationError{Field: "magazine", Message: "must be registered in this registry"}
	}
	return nil
}

func (s *Service) requireArticle(ctx context.Context, article *entity.Article) error {
	if article == nil {
		return &entity.ValidationError{Field: "article", Message: "must be an Article"}
	}
	got, err := s.ArticleRepo.Get(ctx, article.ID())
	if err != nil {
		return fmt.Errorf("get article: %w", err)
	}
	if got != article {
		return &entity.ValidationError{Field: "article", Message: "must be registered in this registry"}
	}
	return nil
}

func (s *Service) logger(ctx context.Context) *slog.Logger {
	logger := s.Logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	return logging.WithOperationID(ctx, logger)
}

// rejected logs and counts a validation failure and returns err unchanged.
// Errors that are not validation errors pass through untouched.
func (s *Service) rejected(ctx context.Context, kind string, err error) error {
	var ve *entity.ValidationError
	if !errors.As(err, &ve) {
		return err
	}
	metrics.RecordValidationFailure(kind, ve.Field)
	s.logger(ctx).Warn("validation failed",
		slog.String("entity", kind),
		slog.String("field", ve.Field),
		slog.String("reason", ve.Message))
	return err
}

func (s *Service) mutated(ctx context.Context, operation string, attrs ...any) {
	metrics.RecordMutation(operation)
	s.refreshSizeMetrics(ctx)
	s.logger(ctx).Info(operation, attrs...)
}

func (s *Service) refreshSizeMetrics(ctx context.Context) {
	authors, err := s.AuthorRepo.Count(ctx)
	if err != nil {
		return
	}
	magazines, err := s.MagazineRepo.Count(ctx)
	if err != nil {
		return
	}
	articles, err := s.ArticleRepo.Count(ctx)
	if err != nil {
		return
	}
	metrics.UpdateRegistrySize(authors, magazines, articles)
}
