package articles

import (
	"context"
	"errors"
	"testing"
)

func TestMockFeedOrder(t *testing.T) {
	got, err := NewMockFeed().Articles(context.Background())
	if err != nil {
		t.Fatalf("articles: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 articles, got %d", len(got))
	}
	for i, a := range got {
		if a.ID != i+1 {
			t.Errorf("position %d: expected id %d, got %d", i, i+1, a.ID)
		}
	}
	if got[0].Source != "TechCrunch" {
		t.Errorf("unexpected first source %q", got[0].Source)
	}
}

func TestMockFeedReturnsCopy(t *testing.T) {
	feed := NewMockFeed()
	first, _ := feed.Articles(context.Background())
	first[0].Headline = "changed"

	second, _ := feed.Articles(context.Background())
	if second[0].Headline == "changed" {
		t.Error("mutating returned rows should not change the feed")
	}
}

func TestMockFeedCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMockFeed().Articles(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
