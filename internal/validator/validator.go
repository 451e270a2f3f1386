package validator // import "github.com/Xunop/e-verse/internal/validator"

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/util"
)

const maxNoteLength = 2000

func ValidateChapter(bookID string, chapter int) error {
	book, err := catalog.Lookup(bookID)
	if err != nil {
		return err
	}
	if !catalog.ValidChapter(book, chapter) {
		return errors.Errorf("chapter %d is out of range for %s", chapter, book.Name)
	}
	return nil
}

func ValidateTranslationID(id string) error {
	if id == "" {
		return errors.New("translation is empty")
	}
	if !util.TranslationIDMatcher.MatchString(id) {
		return errors.Errorf("translation %q is invalid", id)
	}
	return nil
}

func ValidateTranslationIDs(ids []string) error {
	for _, id := range ids {
		if err := ValidateTranslationID(id); err != nil {
			return err
		}
	}
	return nil
}

func ValidateBookmarkCreateRequest(req *model.BookmarkCreateRequest) error {
	if req == nil {
		return errors.New("bookmark is nil")
	}
	if err := ValidateChapter(req.BookID, req.Chapter); err != nil {
		return err
	}
	if req.Verse < 0 {
		return errors.New("verse is invalid")
	}
	if len(req.Note) > maxNoteLength {
		return errors.New("note is too long")
	}
	return nil
}

func ValidateProgressUpdateRequest(req *model.ProgressUpdateRequest) error {
	if req == nil {
		return errors.New("progress is nil")
	}
	if err := ValidateChapter(req.BookID, req.Chapter); err != nil {
		return err
	}
	if req.TranslationID != "" {
		if err := ValidateTranslationID(req.TranslationID); err != nil {
			return err
		}
	}
	if req.FontSize < 0 {
		return errors.New("font size is invalid")
	}
	return nil
}

func ValidateSearchQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return errors.New("query is empty")
	}
	return nil
}
