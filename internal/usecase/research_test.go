package usecase

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"logix-research/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type staticProvider struct {
	rows []model.Article
	err  error
}

func (p staticProvider) Articles(ctx context.Context) ([]model.Article, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.rows, nil
}

type blockingProvider struct {
	release chan struct{}
}

func (p blockingProvider) Articles(ctx context.Context) ([]model.Article, error) {
	<-p.release
	return nil, nil
}

func feed() staticProvider {
	return staticProvider{rows: []model.Article{
		{ID: 1, Headline: "Pathway raises $5M for real-time data processing", Source: "TechCrunch"},
		{ID: 2, Headline: "The future of AI is real-time, says Pathway CEO", Source: "VentureBeat"},
		{ID: 3, Headline: "How to build a real-time search engine with Python", Source: "Blogpost"},
	}}
}

func TestRunMatchesCaseInsensitively(t *testing.T) {
	r := NewResearch(feed(), nopLogger{})

	upper, err := r.Run(context.Background(), "PATHWAY")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	lower, err := r.Run(context.Background(), "pathway")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(upper) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(upper))
	}
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("case variants differ: %v vs %v", upper, lower)
	}
}

func TestRunEmptyQueryReturnsAll(t *testing.T) {
	r := NewResearch(feed(), nopLogger{})
	got, err := r.Run(context.Background(), "")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reflect.DeepEqual(got, feed().rows) {
		t.Errorf("expected every record in feed order, got %v", got)
	}
}

func TestRunNoMatch(t *testing.T) {
	r := NewResearch(feed(), nopLogger{})
	got, err := r.Run(context.Background(), "blockchain")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestRunProviderError(t *testing.T) {
	boom := errors.New("feed offline")
	r := NewResearch(staticProvider{err: boom}, nopLogger{})

	_, err := r.Run(context.Background(), "pathway")
	if !errors.Is(err, ErrPipeline) {
		t.Errorf("expected ErrPipeline, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
	if got := r.Stats().Queries; got != 0 {
		t.Errorf("failed runs should not be counted, got %d", got)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	provider := blockingProvider{release: make(chan struct{})}
	defer close(provider.release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewResearch(provider, nopLogger{})
	if _, err := r.Run(ctx, "pathway"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestConcurrentRunsAreIndependent(t *testing.T) {
	r := NewResearch(feed(), nopLogger{})
	queries := map[string]int{"pathway": 2, "python": 1, "": 3, "nothing": 0}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for q, want := range queries {
			wg.Add(1)
			go func(q string, want int) {
				defer wg.Done()
				got, err := r.Run(context.Background(), q)
				if err != nil {
					t.Errorf("run %q: %v", q, err)
					return
				}
				if len(got) != want {
					t.Errorf("run %q: expected %d matches, got %d", q, want, len(got))
				}
			}(q, want)
		}
	}
	wg.Wait()

	stats := r.Stats()
	if stats.Queries != 80 {
		t.Errorf("expected 80 queries, got %d", stats.Queries)
	}
	if stats.Matches != 20*6 {
		t.Errorf("expected %d matches, got %d", 20*6, stats.Matches)
	}
}
