package memory

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"magazine-registry/internal/domain/entity"
	"magazine-registry/internal/repository"
)

// ArticleRepo holds the article registry and the back-reference indexes.
// The indexes are lookups keyed by author and magazine ID; they do not own
// the entities they point at.
type ArticleRepo struct {
	articles   []*entity.Article
	byID       map[uuid.UUID]*entity.Article
	byAuthor   map[uuid.UUID][]*entity.Article
	byMagazine map[uuid.UUID][]*entity.Article

	// where each article is currently indexed, so Update can detach it
	authorOf   map[uuid.UUID]uuid.UUID
	magazineOf map[uuid.UUID]uuid.UUID
}

func NewArticleRepo() repository.ArticleRepository {
	return &ArticleRepo{
		byID:       make(map[uuid.UUID]*entity.Article),
		byAuthor:   make(map[uuid.UUID][]*entity.Article),
		byMagazine: make(map[uuid.UUID][]*entity.Article),
		authorOf:   make(map[uuid.UUID]uuid.UUID),
		magazineOf: make(map[uuid.UUID]uuid.UUID),
	}
}

func (repo *ArticleRepo) Get(_ context.Context, id uuid.UUID) (*entity.Article, error) {
	return repo.byID[id], nil
}

func (repo *ArticleRepo) List(_ context.Context) ([]*entity.Article, error) {
	return slices.Clone(repo.articles), nil
}

func (repo *ArticleRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]*entity.Article, error) {
	repo.reindex()
	return slices.Clone(repo.byAuthor[authorID]), nil
}

func (repo *ArticleRepo) ListByMagazine(_ context.Context, magazineID uuid.UUID) ([]*entity.Article, error) {
	repo.reindex()
	return slices.Clone(repo.byMagazine[magazineID]), nil
}

func (repo *ArticleRepo) CountByMagazine(_ context.Context, magazineID uuid.UUID) (int, error) {
	repo.reindex()
	return len(repo.byMagazine[magazineID]), nil
}

func (repo *ArticleRepo) Count(_ context.Context) (int, error) {
	return len(repo.articles), nil
}

func (repo *ArticleRepo) Create(_ context.Context, article *entity.Article) error {
	id := article.ID()
	if _, ok := repo.byID[id]; ok {
		return ErrAlreadyRegistered
	}

	authorID := article.Author().ID()
	magazineID := article.Magazine().ID()

	repo.articles = append(repo.articles, article)
	repo.byID[id] = article
	repo.byAuthor[authorID] = append(repo.byAuthor[authorID], article)
	repo.byMagazine[magazineID] = append(repo.byMagazine[magazineID], article)
	repo.authorOf[id] = authorID
	repo.magazineOf[id] = magazineID
	return nil
}

// Update re-indexes the article under its current author and magazine.
// Returns entity.ErrNotFound if the article was never created here.
func (repo *ArticleRepo) Update(_ context.Context, article *entity.Article) error {
	if _, ok := repo.byID[article.ID()]; !ok {
		return entity.ErrNotFound
	}
	repo.reindex()
	return nil
}

// reindex moves every article whose author or magazine changed since it was
// last indexed to the end of its new author's or magazine's list. Articles
// are visited in construction order, so the lists stay in step with the
// articles even when a reference was changed on the entity directly.
func (repo *ArticleRepo) reindex() {
	for _, article := range repo.articles {
		id := article.ID()
		if newID, oldID := article.Author().ID(), repo.authorOf[id]; newID != oldID {
			repo.byAuthor[oldID] = detach(repo.byAuthor[oldID], id)
			repo.byAuthor[newID] = append(repo.byAuthor[newID], article)
			repo.authorOf[id] = newID
		}
		if newID, oldID := article.Magazine().ID(), repo.magazineOf[id]; newID != oldID {
			repo.byMagazine[oldID] = detach(repo.byMagazine[oldID], id)
			repo.byMagazine[newID] = append(repo.byMagazine[newID], article)
			repo.magazineOf[id] = newID
		}
	}
}

func detach(list []*entity.Article, id uuid.UUID) []*entity.Article {
	return slices.DeleteFunc(list, func(a *entity.Article) bool { return a.ID() == id })
}
