package model

type BookmarkCreateRequest struct {
	BookID    string `json:"book_id"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	Note      string `json:"note"`
	VerseText string `json:"verse_text"`
}

type ProgressUpdateRequest struct {
	BookID        string  `json:"book_id"`
	Chapter       int     `json:"chapter"`
	TranslationID string  `json:"translation_id"`
	FontSize      float64 `json:"font_size"`
}
