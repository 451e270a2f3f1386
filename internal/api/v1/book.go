package v1

import (
	"net/http"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/http/request"
	"github.com/Xunop/e-verse/internal/http/response"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/validator"
	"github.com/pkg/errors"
)

type chapterResponse struct {
	Book         model.Book    `json:"book"`
	Chapter      int           `json:"chapter"`
	Translations []string      `json:"translations"`
	Verses       []model.Verse `json:"verses"`
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, catalog.Books)
}

// getChapter resolves a chapter in one or more translations. Translations that
// cannot be resolved are left out of the merged verses.
func (h *Handler) getChapter(w http.ResponseWriter, r *http.Request) {
	bookID := request.RouteStringParam(r, "book")
	chapter := request.RouteIntParam(r, "chapter")
	if err := validator.ValidateChapter(bookID, chapter); err != nil {
		if errors.Is(err, catalog.ErrUnknownBook) {
			response.NotFound(w, r)
			return
		}
		response.BadRequest(w, r, err)
		return
	}

	ids := request.QueryListParam(r, "translations")
	if len(ids) == 0 {
		ids = []string{model.DefaultTranslationID}
	}
	if err := validator.ValidateTranslationIDs(ids); err != nil {
		response.BadRequest(w, r, err)
		return
	}

	book := catalog.FindByID(bookID)
	verses := h.Resolver.LoadChapter(r.Context(), book.ID, chapter, ids)
	response.OK(w, r, chapterResponse{
		Book:         book,
		Chapter:      chapter,
		Translations: ids,
		Verses:       verses,
	})
}
