package model

import "time"

type Bookmark struct {
	ID        string    `json:"id" yaml:"id"`
	BookID    string    `json:"book_id" yaml:"book_id"`
	BookName  string    `json:"book_name" yaml:"book_name"`
	Chapter   int       `json:"chapter" yaml:"chapter"`
	Verse     int       `json:"verse" yaml:"verse"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	Note      string    `json:"note,omitempty" yaml:"note,omitempty"`
	VerseText string    `json:"verse_text,omitempty" yaml:"verse_text,omitempty"`
}

// Matches reports whether the bookmark points at the given location.
func (b Bookmark) Matches(bookID string, chapter, verse int) bool {
	return b.BookID == bookID && b.Chapter == chapter && b.Verse == verse
}

type ReadingProgress struct {
	BookID        string    `json:"book_id"`
	BookName      string    `json:"book_name"`
	Chapter       int       `json:"chapter"`
	TranslationID string    `json:"translation_id"`
	LastReadAt    time.Time `json:"last_read_at"`
	FontSize      float64   `json:"font_size"`
}
