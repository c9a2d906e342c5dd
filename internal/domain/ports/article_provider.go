package ports

import (
	"context"

	"logix-research/internal/domain/model"
)

// ArticleProvider supplies the article table the research pipeline filters.
type ArticleProvider interface {
	Articles(ctx context.Context) ([]model.Article, error)
}
