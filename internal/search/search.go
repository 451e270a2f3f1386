package search // import "github.com/Xunop/e-verse/internal/search"

import (
	"context"
	"fmt"
	"strings"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/provider"
	"github.com/Xunop/e-verse/internal/util"
	"go.uber.org/zap"
)

// Source runs a full text search on the remote provider.
type Source interface {
	Search(ctx context.Context, translationID, query string, page int) (*provider.RawSearchResponse, error)
}

type Gateway struct {
	source Source
	net    provider.Connectivity
}

func NewGateway(source Source, net provider.Connectivity) *Gateway {
	return &Gateway{source: source, net: net}
}

func empty() model.SearchResult {
	return model.SearchResult{Results: []model.SearchHit{}}
}

// Search never fails; any problem yields an empty result.
func (g *Gateway) Search(ctx context.Context, query, translationID string, page int) model.SearchResult {
	res, err := g.Find(ctx, query, translationID, page)
	if err != nil {
		log.Debug("Search failed", zap.String("query", query), zap.String("translation", translationID), zap.Error(err))
		return empty()
	}
	return res
}

// Find is Search with the failure reported. A blank query is not a failure.
func (g *Gateway) Find(ctx context.Context, query, translationID string, page int) (model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return empty(), nil
	}
	if !g.net.Online() {
		return empty(), provider.ErrOffline
	}
	if page < 1 {
		page = 1
	}

	raw, err := g.source.Search(ctx, translationID, query, page)
	if err != nil {
		return empty(), err
	}

	hits := make([]model.SearchHit, 0, len(raw.Results))
	for _, r := range raw.Results {
		book := catalog.FindByProviderID(r.Book)
		hits = append(hits, model.SearchHit{
			BookID:    book.ID,
			BookName:  book.Name,
			Chapter:   r.Chapter,
			Verse:     r.Verse,
			Text:      util.StripTags(r.Text),
			Reference: fmt.Sprintf("%s %d:%d", book.Name, r.Chapter, r.Verse),
		})
	}
	return model.SearchResult{
		Results:      hits,
		Total:        raw.Total,
		ExactMatches: raw.ExactMatches,
	}, nil
}
