package model

type SearchHit struct {
	BookID    string `json:"book_id"`
	BookName  string `json:"book_name"`
	Chapter   int    `json:"chapter"`
	Verse     int    `json:"verse"`
	Text      string `json:"text"`
	Reference string `json:"reference"`
}

type SearchResult struct {
	Results      []SearchHit `json:"results"`
	Total        int         `json:"total"`
	ExactMatches int         `json:"exact_matches"`
}
