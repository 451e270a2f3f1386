package model

import "testing"

func TestTranslationFromCatalog(t *testing.T) {
	tests := []struct {
		name  string
		entry CatalogEntry
		id    string
		title string
	}{
		{"short name", CatalogEntry{ShortName: "YLT", FullName: "Young's Literal Translation"}, "YLT", "Young's Literal Translation"},
		{"abbreviation", CatalogEntry{Abbreviation: "WEB", Name: "World English Bible"}, "WEB", "World English Bible"},
		{"abbrev and title", CatalogEntry{Abbrev: "BBE", Title: "Basic English"}, "BBE", "Basic English"},
		{"id only", CatalogEntry{ID: "KJV"}, "KJV", "Unknown"},
		{"degenerate", CatalogEntry{}, "", "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := TranslationFromCatalog(tt.entry, "English")
			if tr.ID != tt.id || tr.Abbreviation != tt.id {
				t.Errorf("id = %q/%q, want %q", tr.ID, tr.Abbreviation, tt.id)
			}
			if tr.Name != tt.title {
				t.Errorf("name = %q, want %q", tr.Name, tt.title)
			}
			if tr.Language != "English" {
				t.Errorf("language = %q", tr.Language)
			}
			if tr.Usable() != (tt.id != "") {
				t.Errorf("usable = %v", tr.Usable())
			}
		})
	}
}

func TestChapterKey(t *testing.T) {
	k := ChapterKey{TranslationID: "KJV", BookID: "JHN", Chapter: 3}
	if k.String() != "KJV_JHN_3" {
		t.Errorf("String() = %s", k.String())
	}
	if k.BlobKey() != "chapter_KJV_JHN_3" {
		t.Errorf("BlobKey() = %s", k.BlobKey())
	}
}

func TestClampFontSize(t *testing.T) {
	for in, want := range map[float64]float64{4: 12, 12: 12, 18.5: 18.5, 32: 32, 40: 32} {
		if got := ClampFontSize(in); got != want {
			t.Errorf("ClampFontSize(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestDefaultTranslations(t *testing.T) {
	if len(DefaultTranslations) != 15 {
		t.Fatalf("expected 15 bundled translations, got %d", len(DefaultTranslations))
	}
	if DefaultTranslations[0].ID != DefaultTranslationID || !DefaultTranslations[0].IsDefault {
		t.Errorf("first bundled translation should be the default")
	}
}
