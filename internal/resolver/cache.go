package resolver

import (
	"strings"
	"sync"

	"github.com/Xunop/e-verse/internal/model"
)

// chapterCache is the process lifetime chapter cache. Stored slices are never
// handed out for mutation.
type chapterCache struct {
	entries sync.Map // map[string][]model.Verse
}

func (c *chapterCache) get(key model.ChapterKey) ([]model.Verse, bool) {
	v, ok := c.entries.Load(key.String())
	if !ok {
		return nil, false
	}
	return v.([]model.Verse), true
}

func (c *chapterCache) put(key model.ChapterKey, verses []model.Verse) {
	c.entries.Store(key.String(), verses)
}

func (c *chapterCache) delete(key model.ChapterKey) {
	c.entries.Delete(key.String())
}

func (c *chapterCache) deletePrefix(prefix string) {
	c.entries.Range(func(k, _ interface{}) bool {
		if strings.HasPrefix(k.(string), prefix) {
			c.entries.Delete(k)
		}
		return true
	})
}

func (c *chapterCache) purge() {
	c.entries.Range(func(k, _ interface{}) bool {
		c.entries.Delete(k)
		return true
	})
}
