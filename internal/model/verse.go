package model

import "fmt"

// Verse is one verse of a chapter. Translations maps translation id to the
// cleaned text of this verse in that translation; Text holds the primary
// translation's text.
type Verse struct {
	Chapter      int               `json:"chapter"`
	VerseNumber  int               `json:"verse"`
	Text         string            `json:"text"`
	Translations map[string]string `json:"translations,omitempty"`
}

// ChapterKey identifies one chapter of one translation.
type ChapterKey struct {
	TranslationID string
	BookID        string
	Chapter       int
}

func (k ChapterKey) String() string {
	return fmt.Sprintf("%s_%s_%d", k.TranslationID, k.BookID, k.Chapter)
}

// BlobKey is the persistent store key of the downloaded chapter payload.
func (k ChapterKey) BlobKey() string {
	return "chapter_" + k.String()
}
