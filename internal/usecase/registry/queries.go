package registry

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"magazine-registry/internal/domain/entity"
)

// contributorThreshold is the number of articles an author must exceed in a
// magazine to count as a contributing author.
const contributorThreshold = 2

// Several queries distinguish "no data" from an empty result. They return
// ok == false when the underlying article set is empty; ok == true with a
// nil or empty slice never happens for them.

// Authors returns every registered author in construction order.
func (s *Service) Authors(ctx context.Context) ([]*entity.Author, error) {
	authors, err := s.AuthorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// Magazines returns every registered magazine in construction order.
func (s *Service) Magazines(ctx context.Context) ([]*entity.Magazine, error) {
	magazines, err := s.MagazineRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return magazines, nil
}

// Articles returns every registered article in construction order.
func (s *Service) Articles(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.ArticleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// GetAuthor returns the registered author with the given ID.
// Returns ErrAuthorNotFound if there is none.
func (s *Service) GetAuthor(ctx context.Context, id uuid.UUID) (*entity.Author, error) {
	author, err := s.AuthorRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if author == nil {
		return nil, ErrAuthorNotFound
	}
	return author, nil
}

// GetMagazine returns the registered magazine with the given ID.
// Returns ErrMagazineNotFound if there is none.
func (s *Service) GetMagazine(ctx context.Context, id uuid.UUID) (*entity.Magazine, error) {
	magazine, err := s.MagazineRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if magazine == nil {
		return nil, ErrMagazineNotFound
	}
	return magazine, nil
}

// GetArticle returns the registered article with the given ID.
// Returns ErrArticleNotFound if there is none.
func (s *Service) GetArticle(ctx context.Context, id uuid.UUID) (*entity.Article, error) {
	article, err := s.ArticleRepo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

// AuthorArticles returns the author's articles in insertion order.
// The result is empty, never absent, for an author without articles.
func (s *Service) AuthorArticles(ctx context.Context, author *entity.Author) ([]*entity.Article, error) {
	if author == nil {
		return nil, &entity.ValidationError{Field: "author", Message: "must be an Author"}
	}
	articles, err := s.ArticleRepo.ListByAuthor(ctx, author.ID())
	if err != nil {
		return nil, fmt.Errorf("list articles by author: %w", err)
	}
	if articles == nil {
		articles = []*entity.Article{}
	}
	return articles, nil
}

// AuthorMagazines returns the distinct magazines the author has written for,
// in order of first appearance.
func (s *Service) AuthorMagazines(ctx context.Context, author *entity.Author) ([]*entity.Magazine, error) {
	articles, err := s.AuthorArticles(ctx, author)
	if err != nil {
		return nil, err
	}
	return uniqueBy(mapArticles(articles, (*entity.Article).Magazine), (*entity.Magazine).ID), nil
}

// TopicAreas returns the distinct categories of the magazines the author has
// written for. ok is false if the author has no articles.
func (s *Service) TopicAreas(ctx context.Context, author *entity.Author) (categories []string, ok bool, err error) {
	articles, err := s.AuthorArticles(ctx, author)
	if err != nil {
		return nil, false, err
	}
	if len(articles) == 0 {
		return nil, false, nil
	}
	categories = mapArticles(articles, func(a *entity.Article) string { return a.Magazine().Category() })
	return uniqueBy(categories, func(c string) string { return c }), true, nil
}

// MagazineArticles returns the magazine's articles in insertion order.
// ok is false if the magazine has no articles.
func (s *Service) MagazineArticles(ctx context.Context, magazine *entity.Magazine) (articles []*entity.Article, ok bool, err error) {
	if magazine == nil {
		return nil, false, &entity.ValidationError{Field: "magazine", Message: "must be a Magazine"}
	}
	articles, err = s.ArticleRepo.ListByMagazine(ctx, magazine.ID())
	if err != nil {
		return nil, false, fmt.Errorf("list articles by magazine: %w", err)
	}
	if len(articles) == 0 {
		return nil, false, nil
	}
	return articles, true, nil
}

// Contributors returns the distinct authors who wrote for the magazine, in
// order of first appearance. ok is false if the magazine has no articles.
func (s *Service) Contributors(ctx context.Context, magazine *entity.Magazine) (authors []*entity.Author, ok bool, err error) {
	articles, ok, err := s.MagazineArticles(ctx, magazine)
	if err != nil || !ok {
		return nil, false, err
	}
	return uniqueBy(mapArticles(articles, (*entity.Article).Author), (*entity.Author).ID), true, nil
}

// ArticleTitles returns the titles of the magazine's articles in insertion
// order. ok is false if the magazine has no articles.
func (s *Service) ArticleTitles(ctx context.Context, magazine *entity.Magazine) (titles []string, ok bool, err error) {
	articles, ok, err := s.MagazineArticles(ctx, magazine)
	if err != nil || !ok {
		return nil, false, err
	}
	return mapArticles(articles, (*entity.Article).Title), true, nil
}

// ContributingAuthors returns the authors with more than two articles in the
// magazine, in order of first appearance. ok is false if no author qualifies,
// including when the magazine has no articles at all.
func (s *Service) ContributingAuthors(ctx context.Context, magazine *entity.Magazine) (authors []*entity.Author, ok bool, err error) {
	articles, ok, err := s.MagazineArticles(ctx, magazine)
	if err != nil || !ok {
		return nil, false, err
	}

	counts := make(map[uuid.UUID]int)
	for _, a := range articles {
		counts[a.Author().ID()]++
	}
	for _, author := range uniqueBy(mapArticles(articles, (*entity.Article).Author), (*entity.Author).ID) {
		if counts[author.ID()] > contributorThreshold {
			authors = append(authors, author)
		}
	}
	if len(authors) == 0 {
		return nil, false, nil
	}
	return authors, true, nil
}

// TopPublisher returns the registered magazine with the most articles.
// Ties go to the magazine constructed first. ok is false if no magazine
// has been registered.
func (s *Service) TopPublisher(ctx context.Context) (top *entity.Magazine, ok bool, err error) {
	magazines, err := s.MagazineRepo.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("list magazines: %w", err)
	}

	best := -1
	for _, m := range magazines {
		n, err := s.ArticleRepo.CountByMagazine(ctx, m.ID())
		if err != nil {
			return nil, false, fmt.Errorf("count articles by magazine: %w", err)
		}
		// strict comparison keeps the earliest magazine on ties
		if n > best {
			top, best = m, n
		}
	}
	return top, top != nil, nil
}

func mapArticles[T any](articles []*entity.Article, fn func(*entity.Article) T) []T {
	out := make([]T, 0, len(articles))
	for _, a := range articles {
		out = append(out, fn(a))
	}
	return out
}

// uniqueBy keeps the first item for each key, preserving order.
func uniqueBy[T any, K comparable](items []T, key func(T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}
