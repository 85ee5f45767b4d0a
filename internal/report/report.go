// Package report renders the registry and its derived queries as plain text.
package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"magazine-registry/internal/domain/entity"
)

// Queries is the subset of the registry service a report reads from.
type Queries interface {
	Authors(ctx context.Context) ([]*entity.Author, error)
	Magazines(ctx context.Context) ([]*entity.Magazine, error)
	Articles(ctx context.Context) ([]*entity.Article, error)
	AuthorArticles(ctx context.Context, author *entity.Author) ([]*entity.Article, error)
	AuthorMagazines(ctx context.Context, author *entity.Author) ([]*entity.Magazine, error)
	TopicAreas(ctx context.Context, author *entity.Author) ([]string, bool, error)
	MagazineArticles(ctx context.Context, magazine *entity.Magazine) ([]*entity.Article, bool, error)
	Contributors(ctx context.Context, magazine *entity.Magazine) ([]*entity.Author, bool, error)
	ContributingAuthors(ctx context.Context, magazine *entity.Magazine) ([]*entity.Author, bool, error)
	TopPublisher(ctx context.Context) (*entity.Magazine, bool, error)
}

// Options controls report layout.
type Options struct {
	// TitleWidth truncates titles in the article table to this many terminal
	// columns. Zero disables truncation.
	TitleWidth int
}

// none is printed for absent query results.
const none = "(none)"

const ellipsis = "…"

// Write renders the full report: the article table, one section per author,
// one per magazine and the top publisher.
func Write(ctx context.Context, w io.Writer, q Queries, opts Options) error {
	b := &builder{w: w}

	if err := writeArticles(ctx, b, q, opts); err != nil {
		return err
	}
	if err := writeAuthors(ctx, b, q); err != nil {
		return err
	}
	if err := writeMagazines(ctx, b, q); err != nil {
		return err
	}
	if err := WriteTopPublisher(ctx, b, q); err != nil {
		return err
	}
	return b.err
}

// WriteTopPublisher renders a single line naming the top publisher.
func WriteTopPublisher(ctx context.Context, w io.Writer, q Queries) error {
	top, ok, err := q.TopPublisher(ctx)
	if err != nil {
		return fmt.Errorf("top publisher: %w", err)
	}
	if !ok {
		_, err = fmt.Fprintf(w, "Top publisher: %s\n", none)
		return err
	}
	articles, _, err := q.MagazineArticles(ctx, top)
	if err != nil {
		return fmt.Errorf("magazine articles: %w", err)
	}
	_, err = fmt.Fprintf(w, "Top publisher: %s (%s, %d articles)\n", top.Name(), top.Category(), len(articles))
	return err
}

func writeArticles(ctx context.Context, b *builder, q Queries, opts Options) error {
	articles, err := q.Articles(ctx)
	if err != nil {
		return fmt.Errorf("list articles: %w", err)
	}

	rows := [][]string{{"TITLE", "AUTHOR", "MAGAZINE"}}
	for _, a := range articles {
		title := a.Title()
		if opts.TitleWidth > 0 {
			title = runewidth.Truncate(title, opts.TitleWidth, ellipsis)
		}
		rows = append(rows, []string{title, a.Author().Name(), a.Magazine().Name()})
	}

	b.linef("Articles (%d)", len(articles))
	b.table(rows, "  ")
	b.line("")
	return nil
}

func writeAuthors(ctx context.Context, b *builder, q Queries) error {
	authors, err := q.Authors(ctx)
	if err != nil {
		return fmt.Errorf("list authors: %w", err)
	}

	b.linef("Authors (%d)", len(authors))
	for _, author := range authors {
		articles, err := q.AuthorArticles(ctx, author)
		if err != nil {
			return fmt.Errorf("author articles: %w", err)
		}
		magazines, err := q.AuthorMagazines(ctx, author)
		if err != nil {
			return fmt.Errorf("author magazines: %w", err)
		}
		areas, ok, err := q.TopicAreas(ctx, author)
		if err != nil {
			return fmt.Errorf("topic areas: %w", err)
		}

		b.linef("  %s", author.Name())
		b.linef("    articles:    %d", len(articles))
		b.linef("    magazines:   %s", joinOrNone(names(magazines, (*entity.Magazine).Name), true))
		b.linef("    topic areas: %s", joinOrNone(areas, ok))
	}
	b.line("")
	return nil
}

func writeMagazines(ctx context.Context, b *builder, q Queries) error {
	magazines, err := q.Magazines(ctx)
	if err != nil {
		return fmt.Errorf("list magazines: %w", err)
	}

	b.linef("Magazines (%d)", len(magazines))
	for _, m := range magazines {
		articles, ok, err := q.MagazineArticles(ctx, m)
		if err != nil {
			return fmt.Errorf("magazine articles: %w", err)
		}
		contributors, cok, err := q.Contributors(ctx, m)
		if err != nil {
			return fmt.Errorf("contributors: %w", err)
		}
		contributing, pok, err := q.ContributingAuthors(ctx, m)
		if err != nil {
			return fmt.Errorf("contributing authors: %w", err)
		}

		b.linef("  %s [%s]", m.Name(), m.Category())
		if !ok {
			b.linef("    titles:               %s", none)
		} else {
			b.line("    titles:")
			for _, a := range articles {
				b.linef("      - %s", a.Title())
			}
		}
		b.linef("    contributors:         %s", joinOrNone(names(contributors, (*entity.Author).Name), cok))
		b.linef("    contributing authors: %s", joinOrNone(names(contributing, (*entity.Author).Name), pok))
	}
	b.line("")
	return nil
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, name(item))
	}
	return out
}

func joinOrNone(items []string, ok bool) string {
	if !ok || len(items) == 0 {
		return none
	}
	return strings.Join(items, ", ")
}

// builder writes lines and remembers the first write error.
type builder struct {
	w   io.Writer
	err error
}

func (b *builder) Write(p []byte) (int, error) {
	if b.err != nil {
		return 0, b.err
	}
	n, err := b.w.Write(p)
	b.err = err
	return n, err
}

func (b *builder) line(s string) {
	_, _ = io.WriteString(b, s+"\n")
}

func (b *builder) linef(format string, args ...any) {
	b.line(fmt.Sprintf(format, args...))
}

// table pads every column but the last to its widest cell, measured in
// terminal columns so wide characters line up.
func (b *builder) table(rows [][]string, sep string) {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}
	for _, row := range rows {
		var sb strings.Builder
		sb.WriteString("  ")
		for i, cell := range row {
			if i == len(row)-1 {
				sb.WriteString(cell)
				break
			}
			sb.WriteString(runewidth.FillRight(cell, widths[i]))
			sb.WriteString(sep)
		}
		b.line(sb.String())
	}
}
