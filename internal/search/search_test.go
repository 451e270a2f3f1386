package search

import (
	"context"
	"testing"

	"github.com/Xunop/e-verse/internal/provider"
	"github.com/pkg/errors"
)

type fakeSource struct {
	res      *provider.RawSearchResponse
	err      error
	calls    int
	lastPage int
}

func (f *fakeSource) Search(ctx context.Context, tr, query string, page int) (*provider.RawSearchResponse, error) {
	f.calls++
	f.lastPage = page
	return f.res, f.err
}

func TestSearchMapsHits(t *testing.T) {
	src := &fakeSource{res: &provider.RawSearchResponse{
		Results: []provider.RawSearchHit{
			{Book: 43, Chapter: 3, Verse: 16, Text: "For God so <mark>loved</mark> the world"},
			{Book: 99, Chapter: 1, Verse: 1, Text: "unknown book"},
		},
		Total:        2,
		ExactMatches: 1,
	}}
	g := NewGateway(src, provider.NewMonitor(true))

	res := g.Search(context.Background(), "loved", "KJV", 0)
	if src.lastPage != 1 {
		t.Errorf("page should be clamped to 1, got %d", src.lastPage)
	}
	if res.Total != 2 || res.ExactMatches != 1 || len(res.Results) != 2 {
		t.Fatalf("res = %+v", res)
	}
	hit := res.Results[0]
	if hit.BookID != "JHN" || hit.Reference != "John 3:16" || hit.Text != "For God so loved the world" {
		t.Errorf("hit = %+v", hit)
	}
	if res.Results[1].BookID != "GEN" {
		t.Errorf("unknown provider book should map to the first book, got %s", res.Results[1].BookID)
	}
}

func TestSearchBlankOrOffline(t *testing.T) {
	src := &fakeSource{res: &provider.RawSearchResponse{}}
	g := NewGateway(src, provider.NewMonitor(true))
	if res := g.Search(context.Background(), "   ", "KJV", 1); len(res.Results) != 0 || res.Total != 0 {
		t.Fatalf("blank query = %+v", res)
	}

	offline := NewGateway(src, provider.NewMonitor(false))
	if _, err := offline.Find(context.Background(), "light", "KJV", 1); !errors.Is(err, provider.ErrOffline) {
		t.Fatalf("expected ErrOffline, got %v", err)
	}
	if src.calls != 0 {
		t.Fatalf("no request expected, got %d", src.calls)
	}
}

func TestSearchFailureIsEmpty(t *testing.T) {
	g := NewGateway(&fakeSource{err: errors.New("boom")}, provider.NewMonitor(true))
	res := g.Search(context.Background(), "light", "KJV", 2)
	if res.Results == nil || len(res.Results) != 0 || res.Total != 0 {
		t.Fatalf("res = %+v", res)
	}
}
