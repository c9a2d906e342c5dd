package articles

import (
	"context"

	"logix-research/internal/domain/model"
	"logix-research/internal/domain/ports"
)

// mockLiveData stands in for a live news feed.
var mockLiveData = []model.Article{
	{ID: 1, Headline: "Pathway raises $5M for real-time data processing", Source: "TechCrunch"},
	{ID: 2, Headline: "The future of AI is real-time, says Pathway CEO", Source: "VentureBeat"},
	{ID: 3, Headline: "How to build a real-time search engine with Python", Source: "Blogpost"},
}

// MockFeed serves the fixed mock news table.
type MockFeed struct{}

var _ ports.ArticleProvider = (*MockFeed)(nil)

// NewMockFeed constructs the mock feed provider.
func NewMockFeed() *MockFeed {
	return &MockFeed{}
}

// Articles returns a fresh copy of the mock table in feed order.
func (m *MockFeed) Articles(ctx context.Context) ([]model.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]model.Article, len(mockLiveData))
	copy(out, mockLiveData)
	return out, nil
}
