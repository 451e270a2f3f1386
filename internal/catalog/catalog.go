package catalog // import "github.com/Xunop/e-verse/internal/catalog"

import (
	"github.com/Xunop/e-verse/internal/model"
	"github.com/pkg/errors"
)

var ErrUnknownBook = errors.New("unknown book")

// Books is the canon in reading order. ProviderID equals the 1-based position.
var Books = []model.Book{
	{ID: "GEN", Name: "Genesis", Abbreviation: "Gen", TotalChapters: 50, ProviderID: 1},
	{ID: "EXO", Name: "Exodus", Abbreviation: "Exod", TotalChapters: 40, ProviderID: 2},
	{ID: "LEV", Name: "Leviticus", Abbreviation: "Lev", TotalChapters: 27, ProviderID: 3},
	{ID: "NUM", Name: "Numbers", Abbreviation: "Num", TotalChapters: 36, ProviderID: 4},
	{ID: "DEU", Name: "Deuteronomy", Abbreviation: "Deut", TotalChapters: 34, ProviderID: 5},
	{ID: "JOS", Name: "Joshua", Abbreviation: "Josh", TotalChapters: 24, ProviderID: 6},
	{ID: "JDG", Name: "Judges", Abbreviation: "Judg", TotalChapters: 21, ProviderID: 7},
	{ID: "RUT", Name: "Ruth", Abbreviation: "Ruth", TotalChapters: 4, ProviderID: 8},
	{ID: "1SA", Name: "1 Samuel", Abbreviation: "1 Sam", TotalChapters: 31, ProviderID: 9},
	{ID: "2SA", Name: "2 Samuel", Abbreviation: "2 Sam", TotalChapters: 24, ProviderID: 10},
	{ID: "1KI", Name: "1 Kings", Abbreviation: "1 Kgs", TotalChapters: 22, ProviderID: 11},
	{ID: "2KI", Name: "2 Kings", Abbreviation: "2 Kgs", TotalChapters: 25, ProviderID: 12},
	{ID: "1CH", Name: "1 Chronicles", Abbreviation: "1 Chr", TotalChapters: 29, ProviderID: 13},
	{ID: "2CH", Name: "2 Chronicles", Abbreviation: "2 Chr", TotalChapters: 36, ProviderID: 14},
	{ID: "EZR", Name: "Ezra", Abbreviation: "Ezra", TotalChapters: 10, ProviderID: 15},
	{ID: "NEH", Name: "Nehemiah", Abbreviation: "Neh", TotalChapters: 13, ProviderID: 16},
	{ID: "EST", Name: "Esther", Abbreviation: "Est", TotalChapters: 10, ProviderID: 17},
	{ID: "JOB", Name: "Job", Abbreviation: "Job", TotalChapters: 42, ProviderID: 18},
	{ID: "PSA", Name: "Psalms", Abbreviation: "Ps", TotalChapters: 150, ProviderID: 19},
	{ID: "PRO", Name: "Proverbs", Abbreviation: "Prov", TotalChapters: 31, ProviderID: 20},
	{ID: "ECC", Name: "Ecclesiastes", Abbreviation: "Eccl", TotalChapters: 12, ProviderID: 21},
	{ID: "SNG", Name: "Song of Solomon", Abbreviation: "Song", TotalChapters: 8, ProviderID: 22},
	{ID: "ISA", Name: "Isaiah", Abbreviation: "Isa", TotalChapters: 66, ProviderID: 23},
	{ID: "JER", Name: "Jeremiah", Abbreviation: "Jer", TotalChapters: 52, ProviderID: 24},
	{ID: "LAM", Name: "Lamentations", Abbreviation: "Lam", TotalChapters: 5, ProviderID: 25},
	{ID: "EZK", Name: "Ezekiel", Abbreviation: "Ezek", TotalChapters: 48, ProviderID: 26},
	{ID: "DAN", Name: "Daniel", Abbreviation: "Dan", TotalChapters: 12, ProviderID: 27},
	{ID: "HOS", Name: "Hosea", Abbreviation: "Hos", TotalChapters: 14, ProviderID: 28},
	{ID: "JOL", Name: "Joel", Abbreviation: "Joel", TotalChapters: 3, ProviderID: 29},
	{ID: "AMO", Name: "Amos", Abbreviation: "Amos", TotalChapters: 9, ProviderID: 30},
	{ID: "OBA", Name: "Obadiah", Abbreviation: "Obad", TotalChapters: 1, ProviderID: 31},
	{ID: "JON", Name: "Jonah", Abbreviation: "Jonah", TotalChapters: 4, ProviderID: 32},
	{ID: "MIC", Name: "Micah", Abbreviation: "Mic", TotalChapters: 7, ProviderID: 33},
	{ID: "NAM", Name: "Nahum", Abbreviation: "Nah", TotalChapters: 3, ProviderID: 34},
	{ID: "HAB", Name: "Habakkuk", Abbreviation: "Hab", TotalChapters: 3, ProviderID: 35},
	{ID: "ZEP", Name: "Zephaniah", Abbreviation: "Zeph", TotalChapters: 3, ProviderID: 36},
	{ID: "HAG", Name: "Haggai", Abbreviation: "Hag", TotalChapters: 2, ProviderID: 37},
	{ID: "ZEC", Name: "Zechariah", Abbreviation: "Zech", TotalChapters: 14, ProviderID: 38},
	{ID: "MAL", Name: "Malachi", Abbreviation: "Mal", TotalChapters: 4, ProviderID: 39},
	{ID: "MAT", Name: "Matthew", Abbreviation: "Matt", TotalChapters: 28, ProviderID: 40},
	{ID: "MRK", Name: "Mark", Abbreviation: "Mark", TotalChapters: 16, ProviderID: 41},
	{ID: "LUK", Name: "Luke", Abbreviation: "Luke", TotalChapters: 24, ProviderID: 42},
	{ID: "JHN", Name: "John", Abbreviation: "John", TotalChapters: 21, ProviderID: 43},
	{ID: "ACT", Name: "Acts", Abbreviation: "Acts", TotalChapters: 28, ProviderID: 44},
	{ID: "ROM", Name: "Romans", Abbreviation: "Rom", TotalChapters: 16, ProviderID: 45},
	{ID: "1CO", Name: "1 Corinthians", Abbreviation: "1 Cor", TotalChapters: 16, ProviderID: 46},
	{ID: "2CO", Name: "2 Corinthians", Abbreviation: "2 Cor", TotalChapters: 13, ProviderID: 47},
	{ID: "GAL", Name: "Galatians", Abbreviation: "Gal", TotalChapters: 6, ProviderID: 48},
	{ID: "EPH", Name: "Ephesians", Abbreviation: "Eph", TotalChapters: 6, ProviderID: 49},
	{ID: "PHP", Name: "Philippians", Abbreviation: "Phil", TotalChapters: 4, ProviderID: 50},
	{ID: "COL", Name: "Colossians", Abbreviation: "Col", TotalChapters: 4, ProviderID: 51},
	{ID: "1TH", Name: "1 Thessalonians", Abbreviation: "1 Thess", TotalChapters: 5, ProviderID: 52},
	{ID: "2TH", Name: "2 Thessalonians", Abbreviation: "2 Thess", TotalChapters: 3, ProviderID: 53},
	{ID: "1TI", Name: "1 Timothy", Abbreviation: "1 Tim", TotalChapters: 6, ProviderID: 54},
	{ID: "2TI", Name: "2 Timothy", Abbreviation: "2 Tim", TotalChapters: 4, ProviderID: 55},
	{ID: "TIT", Name: "Titus", Abbreviation: "Titus", TotalChapters: 3, ProviderID: 56},
	{ID: "PHM", Name: "Philemon", Abbreviation: "Phlm", TotalChapters: 1, ProviderID: 57},
	{ID: "HEB", Name: "Hebrews", Abbreviation: "Heb", TotalChapters: 13, ProviderID: 58},
	{ID: "JAS", Name: "James", Abbreviation: "Jas", TotalChapters: 5, ProviderID: 59},
	{ID: "1PE", Name: "1 Peter", Abbreviation: "1 Pet", TotalChapters: 5, ProviderID: 60},
	{ID: "2PE", Name: "2 Peter", Abbreviation: "2 Pet", TotalChapters: 3, ProviderID: 61},
	{ID: "1JN", Name: "1 John", Abbreviation: "1 John", TotalChapters: 5, ProviderID: 62},
	{ID: "2JN", Name: "2 John", Abbreviation: "2 John", TotalChapters: 1, ProviderID: 63},
	{ID: "3JN", Name: "3 John", Abbreviation: "3 John", TotalChapters: 1, ProviderID: 64},
	{ID: "JUD", Name: "Jude", Abbreviation: "Jude", TotalChapters: 1, ProviderID: 65},
	{ID: "REV", Name: "Revelation", Abbreviation: "Rev", TotalChapters: 22, ProviderID: 66},
}

// DefaultBookIndex points at John, where a fresh reader opens.
const DefaultBookIndex = 42

// IndexOf returns the position of the book with the given id.
func IndexOf(id string) (int, bool) {
	for i := range Books {
		if Books[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// Lookup is FindByID for callers that must tell an unknown id apart.
func Lookup(id string) (model.Book, error) {
	i, ok := IndexOf(id)
	if !ok {
		return model.Book{}, errors.Wrapf(ErrUnknownBook, "book %q", id)
	}
	return Books[i], nil
}

// FindByID never fails: an unknown id yields the first book.
func FindByID(id string) model.Book {
	i, _ := IndexOf(id)
	return Books[i]
}

// ProviderIDOf returns the provider book number, 1 for an unknown id.
func ProviderIDOf(id string) int {
	if i, ok := IndexOf(id); ok {
		return Books[i].ProviderID
	}
	return 1
}

// FindByProviderID never fails: an unknown number yields the first book.
func FindByProviderID(n int) model.Book {
	for i := range Books {
		if Books[i].ProviderID == n {
			return Books[i]
		}
	}
	return Books[0]
}

// ValidChapter reports whether chapter exists in the book.
func ValidChapter(b model.Book, chapter int) bool {
	return chapter >= 1 && chapter <= b.TotalChapters
}
