package resolver // import "github.com/Xunop/e-verse/internal/resolver"

import (
	"context"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/provider"
	"github.com/Xunop/e-verse/internal/util"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Source int

const (
	SourceNone Source = iota
	SourceMemory
	SourceOffline
	SourceNetwork
)

func (s Source) String() string {
	switch s {
	case SourceMemory:
		return "memory"
	case SourceOffline:
		return "offline"
	case SourceNetwork:
		return "network"
	default:
		return "none"
	}
}

// Result is the outcome of resolving one chapter of one translation. Err is
// set when nothing could be produced; an empty Verses with a nil Err is a
// chapter the provider really returned empty.
type Result struct {
	Verses []model.Verse
	Source Source
	Err    error
}

// TextSource fetches raw chapter text from the remote provider.
type TextSource interface {
	FetchChapter(ctx context.Context, translationID string, providerBookID, chapter int) ([]provider.RawVerse, error)
}

// OfflineChapters is the downloaded chapter store.
type OfflineChapters interface {
	Load(key model.ChapterKey) ([]model.Verse, bool)
}

type Resolver struct {
	source  TextSource
	offline OfflineChapters
	net     provider.Connectivity
	cache   chapterCache
}

func New(source TextSource, offline OfflineChapters, net provider.Connectivity) *Resolver {
	return &Resolver{source: source, offline: offline, net: net}
}

// Resolve returns one chapter of one translation, trying the memory cache,
// then downloaded chapters, then the network when online.
func (r *Resolver) Resolve(ctx context.Context, key model.ChapterKey) Result {
	if verses, ok := r.cache.get(key); ok {
		return Result{Verses: verses, Source: SourceMemory}
	}

	if verses, ok := r.offline.Load(key); ok {
		r.cache.put(key, verses)
		return Result{Verses: verses, Source: SourceOffline}
	}

	if !r.net.Online() {
		return Result{Source: SourceNone, Err: provider.ErrOffline}
	}

	raw, err := r.source.FetchChapter(ctx, key.TranslationID, catalog.ProviderIDOf(key.BookID), key.Chapter)
	if err != nil {
		return Result{Source: SourceNone, Err: err}
	}

	verses := make([]model.Verse, 0, len(raw))
	for _, v := range raw {
		verses = append(verses, model.Verse{
			Chapter:     key.Chapter,
			VerseNumber: v.Verse,
			Text:        util.CleanText(v.Text),
		})
	}
	r.cache.put(key, verses)
	return Result{Verses: verses, Source: SourceNetwork}
}

// LoadChapter returns the chapter in every requested translation merged by
// verse number. It never fails: a translation that cannot be resolved simply
// contributes nothing.
func (r *Resolver) LoadChapter(ctx context.Context, bookID string, chapter int, translationIDs []string) []model.Verse {
	switch len(translationIDs) {
	case 0:
		return []model.Verse{}
	case 1:
		id := translationIDs[0]
		res := r.Resolve(ctx, model.ChapterKey{TranslationID: id, BookID: bookID, Chapter: chapter})
		if res.Err != nil {
			log.Debug("Chapter unavailable",
				zap.String("translation", id),
				zap.String("book", bookID),
				zap.Int("chapter", chapter),
				zap.Error(res.Err))
		}
		return single(id, res.Verses)
	}

	results := make([]Result, len(translationIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range translationIDs {
		i, id := i, id
		g.Go(func() error {
			results[i] = r.Resolve(gctx, model.ChapterKey{TranslationID: id, BookID: bookID, Chapter: chapter})
			return nil
		})
	}
	_ = g.Wait()

	perTranslation := make([][]model.Verse, len(results))
	for i, res := range results {
		if res.Err != nil {
			log.Debug("Chapter unavailable",
				zap.String("translation", translationIDs[i]),
				zap.String("book", bookID),
				zap.Int("chapter", chapter),
				zap.Error(res.Err))
		}
		perTranslation[i] = res.Verses
	}
	return Merge(chapter, translationIDs, perTranslation)
}

// Invalidate drops one chapter from the memory cache.
func (r *Resolver) Invalidate(key model.ChapterKey) {
	r.cache.delete(key)
}

// InvalidateBook drops every cached chapter of one book in one translation.
func (r *Resolver) InvalidateBook(translationID, bookID string) {
	r.cache.deletePrefix(translationID + "_" + bookID + "_")
}

func (r *Resolver) Purge() {
	r.cache.purge()
}

func single(id string, verses []model.Verse) []model.Verse {
	out := make([]model.Verse, 0, len(verses))
	for _, v := range verses {
		out = append(out, model.Verse{
			Chapter:      v.Chapter,
			VerseNumber:  v.VerseNumber,
			Text:         v.Text,
			Translations: map[string]string{id: v.Text},
		})
	}
	return out
}
