package store

import (
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Bookmarks persists the bookmark list and the single reading progress record.
type Bookmarks struct {
	kv  KV
	mu  sync.Mutex
	now func() time.Time
}

func NewBookmarks(kv KV) *Bookmarks {
	return &Bookmarks{kv: kv, now: time.Now}
}

// List returns the stored bookmarks in insertion order, or an empty list when
// nothing decodable is stored.
func (b *Bookmarks) List() []model.Bookmark {
	list, ok := GetJSON[[]model.Bookmark](b.kv, model.KeyBookmarks)
	if !ok || list == nil {
		return []model.Bookmark{}
	}
	return list
}

// Add appends bm, filling in a fresh id and creation time when missing.
func (b *Bookmarks) Add(bm model.Bookmark) (model.Bookmark, error) {
	if bm.ID == "" {
		bm.ID = util.NewBookmarkID()
	}
	if bm.CreatedAt.IsZero() {
		bm.CreatedAt = b.now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	list := append(b.List(), bm)
	if err := SetJSON(b.kv, model.KeyBookmarks, list); err != nil {
		return bm, errors.Wrap(err, "failed to save bookmarks")
	}
	return bm, nil
}

// Remove drops every bookmark with the given id. Unknown ids are not an error.
func (b *Bookmarks) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.List()
	kept := list[:0]
	for _, bm := range list {
		if bm.ID != id {
			kept = append(kept, bm)
		}
	}
	return SetJSON(b.kv, model.KeyBookmarks, kept)
}

func (b *Bookmarks) IsBookmarked(bookID string, chapter, verse int) bool {
	for _, bm := range b.List() {
		if bm.Matches(bookID, chapter, verse) {
			return true
		}
	}
	return false
}

func (b *Bookmarks) SaveProgress(p model.ReadingProgress) error {
	if p.LastReadAt.IsZero() {
		p.LastReadAt = b.now()
	}
	return SetJSON(b.kv, model.KeyReadingProgress, p)
}

func (b *Bookmarks) LoadProgress() (model.ReadingProgress, bool) {
	return GetJSON[model.ReadingProgress](b.kv, model.KeyReadingProgress)
}

// Export writes every bookmark to w as json or yaml.
func (b *Bookmarks) Export(w io.Writer, format string) error {
	list := b.List()
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return errors.Wrap(err, "failed to encode bookmarks")
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(list), "failed to encode bookmarks")
	default:
		return errors.Errorf("unsupported format %q", format)
	}
}

// Import appends the bookmarks read from r whose id is not stored yet and
// reports how many were added.
func (b *Bookmarks) Import(r io.Reader, format string) (int, error) {
	var incoming []model.Bookmark
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&incoming); err != nil && !errors.Is(err, io.EOF) {
			return 0, errors.Wrap(err, "failed to decode bookmarks")
		}
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&incoming); err != nil && !errors.Is(err, io.EOF) {
			return 0, errors.Wrap(err, "failed to decode bookmarks")
		}
	default:
		return 0, errors.Errorf("unsupported format %q", format)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.List()
	known := make(map[string]bool, len(list))
	for _, bm := range list {
		known[bm.ID] = true
	}
	added := 0
	for _, bm := range incoming {
		if bm.ID == "" {
			bm.ID = util.NewBookmarkID()
		}
		if known[bm.ID] {
			continue
		}
		if bm.CreatedAt.IsZero() {
			bm.CreatedAt = b.now()
		}
		known[bm.ID] = true
		list = append(list, bm)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if err := SetJSON(b.kv, model.KeyBookmarks, list); err != nil {
		return 0, errors.Wrap(err, "failed to save bookmarks")
	}
	return added, nil
}
