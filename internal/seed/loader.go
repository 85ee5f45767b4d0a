package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agnivade/levenshtein"

	"magazine-registry/internal/domain/entity"
	"magazine-registry/internal/observability/logging"
)

// Registry is the subset of the registry service the loader needs.
type Registry interface {
	CreateAuthor(ctx context.Context, name string) (*entity.Author, error)
	CreateMagazine(ctx context.Context, name, category string) (*entity.Magazine, error)
	CreateArticle(ctx context.Context, author *entity.Author, magazine *entity.Magazine, title string) (*entity.Article, error)
}

// Result holds the entities created from a dataset, indexed by their keys.
type Result struct {
	Authors   map[string]*entity.Author
	Magazines map[string]*entity.Magazine
	Articles  []*entity.Article
}

// maxSuggestionDistance bounds the edit distance of "did you mean" hints.
const maxSuggestionDistance = 3

// Load creates every entity of ds in reg, in file order: authors first, then
// magazines, then articles.
//
// Keys are checked before anything is created, so a dataset with a missing,
// duplicate or unknown key leaves reg untouched. Entity validation errors
// stop the load at the failing entry; entries before it stay registered.
// All returned validation problems are *entity.ValidationError values whose
// Field names the offending entry, e.g. "articles[2].author".
func Load(ctx context.Context, reg Registry, ds *DatasetYAML) (*Result, error) {
	if err := checkKeys(ds); err != nil {
		return nil, err
	}

	res := &Result{
		Authors:   make(map[string]*entity.Author, len(ds.Authors)),
		Magazines: make(map[string]*entity.Magazine, len(ds.Magazines)),
		Articles:  make([]*entity.Article, 0, len(ds.Articles)),
	}

	for i, a := range ds.Authors {
		author, err := reg.CreateAuthor(ctx, a.Name)
		if err != nil {
			return nil, entryError("authors", i, err)
		}
		res.Authors[a.Key] = author
	}
	for i, m := range ds.Magazines {
		magazine, err := reg.CreateMagazine(ctx, m.Name, m.Category)
		if err != nil {
			return nil, entryError("magazines", i, err)
		}
		res.Magazines[m.Key] = magazine
	}
	for i, a := range ds.Articles {
		article, err := reg.CreateArticle(ctx, res.Authors[a.Author], res.Magazines[a.Magazine], a.Title)
		if err != nil {
			return nil, entryError("articles", i, err)
		}
		res.Articles = append(res.Articles, article)
	}

	logging.FromContext(ctx).Info("seed loaded",
		slog.Int("authors", len(res.Authors)),
		slog.Int("magazines", len(res.Magazines)),
		slog.Int("articles", len(res.Articles)))
	return res, nil
}

// LoadFile reads the dataset at path and loads it into reg.
func LoadFile(ctx context.Context, reg Registry, path string) (*Result, error) {
	ds, err := ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	res, err := Load(ctx, reg, ds)
	if err != nil {
		return nil, fmt.Errorf("load seed %s: %w", path, err)
	}
	return res, nil
}

func checkKeys(ds *DatasetYAML) error {
	authorKeys := make([]string, 0, len(ds.Authors))
	seen := make(map[string]bool, len(ds.Authors))
	for i, a := range ds.Authors {
		if err := checkKey(seen, "authors", i, a.Key); err != nil {
			return err
		}
		authorKeys = append(authorKeys, a.Key)
	}

	magazineKeys := make([]string, 0, len(ds.Magazines))
	seen = make(map[string]bool, len(ds.Magazines))
	for i, m := range ds.Magazines {
		if err := checkKey(seen, "magazines", i, m.Key); err != nil {
			return err
		}
		magazineKeys = append(magazineKeys, m.Key)
	}

	for i, a := range ds.Articles {
		if err := checkRef(authorKeys, "articles", i, "author", a.Author); err != nil {
			return err
		}
		if err := checkRef(magazineKeys, "articles", i, "magazine", a.Magazine); err != nil {
			return err
		}
	}
	return nil
}

func checkKey(seen map[string]bool, section string, i int, key string) error {
	field := fmt.Sprintf("%s[%d].key", section, i)
	if key == "" {
		return &entity.ValidationError{Field: field, Message: "must be a non-empty string"}
	}
	if seen[key] {
		return &entity.ValidationError{Field: field, Message: fmt.Sprintf("duplicate key %q", key)}
	}
	seen[key] = true
	return nil
}

func checkRef(keys []string, section string, i int, kind, ref string) error {
	for _, k := range keys {
		if k == ref {
			return nil
		}
	}
	msg := fmt.Sprintf("unknown %s key %q", kind, ref)
	if hint, ok := suggest(keys, ref); ok {
		msg += fmt.Sprintf(", did you mean %q?", hint)
	}
	return &entity.ValidationError{Field: fmt.Sprintf("%s[%d].%s", section, i, kind), Message: msg}
}

// suggest returns the key closest to ref, if any is within maxSuggestionDistance.
// Ties go to the key listed first.
func suggest(keys []string, ref string) (string, bool) {
	best, bestDist := "", maxSuggestionDistance+1
	for _, k := range keys {
		if d := levenshtein.ComputeDistance(k, ref); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != ""
}

// entryError prefixes the field of a validation error with the dataset
// entry it came from. Other errors are wrapped.
func entryError(section string, i int, err error) error {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return &entity.ValidationError{
			Field:   fmt.Sprintf("%s[%d].%s", section, i, ve.Field),
			Message: ve.Message,
		}
	}
	return fmt.Errorf("create %s[%d]: %w", section, i, err)
}
