package model

// Translation is a version of the text offered by the remote provider.
type Translation struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Language     string `json:"language"`
	IsDefault    bool   `json:"is_default,omitempty"`
}

// Usable reports whether the translation can be requested at all.
func (t Translation) Usable() bool {
	return t.ID != ""
}

const DefaultTranslationID = "KJV"

// DefaultTranslations is the bundled list used until the remote catalog has
// been fetched once.
var DefaultTranslations = []Translation{
	{ID: "KJV", Name: "King James Version", Abbreviation: "KJV", Language: "English", IsDefault: true},
	{ID: "YLT", Name: "Young's Literal Translation", Abbreviation: "YLT", Language: "English"},
	{ID: "WEB", Name: "World English Bible", Abbreviation: "WEB", Language: "English"},
	{ID: "NKJV", Name: "New King James Version", Abbreviation: "NKJV", Language: "English"},
	{ID: "ESV", Name: "English Standard Version", Abbreviation: "ESV", Language: "English"},
	{ID: "NIV", Name: "New International Version", Abbreviation: "NIV", Language: "English"},
	{ID: "NLT", Name: "New Living Translation", Abbreviation: "NLT", Language: "English"},
	{ID: "NRSV", Name: "New Revised Standard Version", Abbreviation: "NRSV", Language: "English"},
	{ID: "NASB", Name: "New American Standard Bible", Abbreviation: "NASB", Language: "English"},
	{ID: "CSB", Name: "Christian Standard Bible", Abbreviation: "CSB", Language: "English"},
	{ID: "MEV", Name: "Modern English Version", Abbreviation: "MEV", Language: "English"},
	{ID: "GTB", Name: "GOD'S WORD Translation", Abbreviation: "GW", Language: "English"},
	{ID: "DRA", Name: "Douay-Rheims", Abbreviation: "DRA", Language: "English"},
	{ID: "BBE", Name: "Bible in Basic English", Abbreviation: "BBE", Language: "English"},
	{ID: "AKJV", Name: "American King James Version", Abbreviation: "AKJV", Language: "English"},
}

// CatalogEntry is one translation as listed by the remote catalog. Field names
// vary between catalog versions, so every known spelling is accepted.
type CatalogEntry struct {
	ShortName    string `json:"short_name"`
	Abbreviation string `json:"abbreviation"`
	Abbrev       string `json:"abbrev"`
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
	Title        string `json:"title"`
}

func TranslationFromCatalog(e CatalogEntry, language string) Translation {
	id := firstNonEmpty(e.ShortName, e.Abbreviation, e.Abbrev, e.ID)
	name := firstNonEmpty(e.FullName, e.Name, e.Title)
	if name == "" {
		name = "Unknown"
	}
	return Translation{
		ID:           id,
		Name:         name,
		Abbreviation: id,
		Language:     language,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
