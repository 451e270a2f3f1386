package store

import (
	"sort"
	"sync"

	"github.com/Xunop/e-verse/internal/model"
	"github.com/pkg/errors"
)

// ChapterStore keeps downloaded chapters: a membership set persisted under
// downloaded_chapters and one verse array blob per chapter. A chapter counts
// as downloaded only when both are present.
type ChapterStore struct {
	kv         KV
	mu         sync.Mutex
	downloaded map[string]struct{}
}

func NewChapterStore(kv KV) *ChapterStore {
	c := &ChapterStore{kv: kv, downloaded: map[string]struct{}{}}
	keys, _ := GetJSON[[]string](kv, model.KeyDownloadedChapters)
	for _, k := range keys {
		c.downloaded[k] = struct{}{}
	}
	return c
}

func (c *ChapterStore) isMarked(key model.ChapterKey) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.downloaded[key.String()]
	return ok
}

func (c *ChapterStore) IsDownloaded(key model.ChapterKey) bool {
	if !c.isMarked(key) {
		return false
	}
	_, ok := c.kv.Get(key.BlobKey())
	return ok
}

// Load returns the downloaded verses of key. It reports false when the
// chapter is not marked or its payload is missing or unreadable.
func (c *ChapterStore) Load(key model.ChapterKey) ([]model.Verse, bool) {
	if !c.isMarked(key) {
		return nil, false
	}
	return GetJSON[[]model.Verse](c.kv, key.BlobKey())
}

// Save writes the payload before the marker, so a marker never points at
// nothing after a partial failure.
func (c *ChapterStore) Save(key model.ChapterKey, verses []model.Verse) error {
	if err := SetJSON(c.kv, key.BlobKey(), verses); err != nil {
		return errors.Wrapf(err, "failed to save chapter %s", key)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.downloaded[key.String()] = struct{}{}
	return c.persistLocked()
}

func (c *ChapterStore) Remove(key model.ChapterKey) error {
	c.mu.Lock()
	delete(c.downloaded, key.String())
	err := c.persistLocked()
	c.mu.Unlock()
	if err != nil {
		return err
	}
	return c.kv.Remove(key.BlobKey())
}

// Keys lists the marked chapter keys in sorted order.
func (c *ChapterStore) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sortedLocked()
}

func (c *ChapterStore) sortedLocked() []string {
	keys := make([]string, 0, len(c.downloaded))
	for k := range c.downloaded {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *ChapterStore) persistLocked() error {
	return SetJSON(c.kv, model.KeyDownloadedChapters, c.sortedLocked())
}
