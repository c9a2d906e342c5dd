// Package pipeline implements the in-memory filter pipeline run over the
// article table for each research query.
package pipeline

import (
	"strings"

	"golang.org/x/text/cases"

	"logix-research/internal/domain/model"
)

// Predicate reports whether an article should be kept.
type Predicate func(model.Article) bool

// Table is an ordered, immutable set of articles.
type Table struct {
	rows []model.Article
}

// FromList builds a table from rows. The rows are copied so later changes to
// the input do not leak into the table.
func FromList(rows []model.Article) Table {
	copied := make([]model.Article, len(rows))
	copy(copied, rows)
	return Table{rows: copied}
}

// Filter returns a new table with the rows accepted by keep, in table order.
func (t Table) Filter(keep Predicate) Table {
	kept := make([]model.Article, 0, len(t.rows))
	for _, row := range t.rows {
		if keep(row) {
			kept = append(kept, row)
		}
	}
	return Table{rows: kept}
}

// Collect materializes the table rows.
func (t Table) Collect() []model.Article {
	out := make([]model.Article, len(t.rows))
	copy(out, t.rows)
	return out
}

// HeadlineContains matches articles whose headline contains term, ignoring case.
// An empty term matches every article.
func HeadlineContains(term string) Predicate {
	folder := cases.Fold()
	needle := folder.String(term)
	return func(a model.Article) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(folder.String(a.Headline), needle)
	}
}
