package util

import (
	"regexp"
	"strings"
)

var (
	tagRegexp        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegexp = regexp.MustCompile(`\s+`)

	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&apos;", "'",
		"&mdash;", "—",
		"&ndash;", "–",
		"&hellip;", "…",
		"&lsquo;", "‘",
		"&rsquo;", "’",
		"&ldquo;", "“",
		"&rdquo;", "”",
	)
)

// StripTags removes markup tags and nothing else.
func StripTags(raw string) string {
	return tagRegexp.ReplaceAllString(raw, "")
}

// CleanText turns provider markup into plain verse text. It runs until the
// text stops changing, so an entity that decodes into markup is handled too
// and CleanText(CleanText(s)) == CleanText(s).
func CleanText(raw string) string {
	s := raw
	for {
		next := cleanOnce(s)
		if next == s {
			return s
		}
		s = next
	}
}

// cleanOnce never grows its input, which bounds the loop in CleanText.
func cleanOnce(s string) string {
	s = StripTags(s)
	s = entityReplacer.Replace(s)
	s = whitespaceRegexp.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
