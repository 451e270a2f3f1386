package resolver

import "github.com/Xunop/e-verse/internal/model"

// Merge aligns per-translation verse lists by verse number. perTranslation[i]
// belongs to ids[i]; ids[0] is the primary translation. The output covers
// verse numbers 1 through the highest number any translation returned, leaving
// out numbers no translation has, and each record maps exactly the
// translations that have that verse.
func Merge(chapter int, ids []string, perTranslation [][]model.Verse) []model.Verse {
	byNumber := make([]map[int]string, len(ids))
	maxVerse := 0
	for i := range ids {
		byNumber[i] = map[int]string{}
		if i >= len(perTranslation) {
			continue
		}
		for _, v := range perTranslation[i] {
			byNumber[i][v.VerseNumber] = v.Text
			if v.VerseNumber > maxVerse {
				maxVerse = v.VerseNumber
			}
		}
	}

	merged := make([]model.Verse, 0, maxVerse)
	for n := 1; n <= maxVerse; n++ {
		texts := map[string]string{}
		for i, id := range ids {
			if text, ok := byNumber[i][n]; ok {
				texts[id] = text
			}
		}
		if len(texts) == 0 {
			continue
		}
		merged = append(merged, model.Verse{
			Chapter:      chapter,
			VerseNumber:  n,
			Text:         texts[ids[0]],
			Translations: texts,
		})
	}
	return merged
}
