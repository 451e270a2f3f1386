package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenUUID() string {
	return uuid.New().String()
}

// NewBookmarkID returns an id that sorts by creation time and stays unique
// when several bookmarks are created within the same millisecond.
func NewBookmarkID() string {
	suffix := strings.ReplaceAll(GenUUID(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

// HasPrefixes returns true if the string s has any of the given prefixes.
func HasPrefixes(src string, prefixes ...string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(src, prefix) {
			return true
		}
	}
	return false
}

// TranslationIDMatcher accepts provider translation abbreviations such as KJV or NR1994.
var TranslationIDMatcher = regexp.MustCompile(`^[A-Za-z0-9_+\-]{1,24}$`)
