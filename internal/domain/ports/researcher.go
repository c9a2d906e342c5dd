package ports

import (
	"context"

	"logix-research/internal/domain/model"
)

// Researcher answers a text query with the matching articles.
type Researcher interface {
	Run(ctx context.Context, query string) ([]model.Article, error)
}
