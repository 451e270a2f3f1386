package model

// Definition is one lexicon entry returned by a dictionary lookup.
type Definition struct {
	Topic           string  `json:"topic"`
	Definition      string  `json:"definition"`
	Lexeme          string  `json:"lexeme"`
	Transliteration string  `json:"transliteration"`
	Pronunciation   string  `json:"pronunciation"`
	ShortDefinition string  `json:"short_definition"`
	Weight          float64 `json:"weight"`
}
