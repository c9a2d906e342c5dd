package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"logix-research/internal/domain/model"
	"logix-research/internal/domain/ports"
	"logix-research/internal/pipeline"
)

// ErrPipeline is returned when the article table cannot be loaded or filtered.
var ErrPipeline = errors.New("research pipeline failed")

// Research runs text queries through the article filter pipeline.
type Research struct {
	articles ports.ArticleProvider
	logger   ports.Logger

	queries atomic.Int64
	matches atomic.Int64
}

// Stats is a snapshot of the queries served since start.
type Stats struct {
	Queries int64
	Matches int64
}

var _ ports.Researcher = (*Research)(nil)

// NewResearch constructs a Research use case.
func NewResearch(articles ports.ArticleProvider, logger ports.Logger) *Research {
	return &Research{
		articles: articles,
		logger:   logger,
	}
}

type pipelineOutcome struct {
	rows []model.Article
	err  error
}

// Run filters the article table by query on a worker goroutine and waits
// for it, or for ctx to end.
func (r *Research) Run(ctx context.Context, query string) ([]model.Article, error) {
	r.logger.Info(ctx, "received query", "query", query)
	start := time.Now()

	done := make(chan pipelineOutcome, 1)
	go func() {
		rows, err := r.runPipeline(ctx, query)
		done <- pipelineOutcome{rows: rows, err: err}
	}()

	var outcome pipelineOutcome
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case outcome = <-done:
	}
	if outcome.err != nil {
		r.logger.Error(ctx, "pipeline failed", "query", query, "error", outcome.err)
		return nil, outcome.err
	}

	r.queries.Add(1)
	r.matches.Add(int64(len(outcome.rows)))
	r.logger.Info(ctx, "pipeline ran",
		"query", query,
		"results", len(outcome.rows),
		"duration", time.Since(start),
	)
	return outcome.rows, nil
}

// Stats returns counters accumulated by successful runs.
func (r *Research) Stats() Stats {
	return Stats{
		Queries: r.queries.Load(),
		Matches: r.matches.Load(),
	}
}

func (r *Research) runPipeline(ctx context.Context, query string) ([]model.Article, error) {
	rows, err := r.articles.Articles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load articles: %w", ErrPipeline, err)
	}
	table := pipeline.FromList(rows)
	return table.Filter(pipeline.HeadlineContains(query)).Collect(), nil
}
