package v1

import (
	"encoding/json"
	"net/http"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/http/request"
	"github.com/Xunop/e-verse/internal/http/response"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/validator"
	"go.uber.org/zap"
)

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, h.Bookmarks.List())
}

func (h *Handler) addBookmark(w http.ResponseWriter, r *http.Request) {
	var req model.BookmarkCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	if err := validator.ValidateBookmarkCreateRequest(&req); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	if req.Verse == 0 {
		req.Verse = 1
	}

	book := catalog.FindByID(req.BookID)
	bm, err := h.Bookmarks.Add(model.Bookmark{
		BookID:    book.ID,
		BookName:  book.Name,
		Chapter:   req.Chapter,
		Verse:     req.Verse,
		Note:      req.Note,
		VerseText: req.VerseText,
	})
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	log.Debug("Bookmark added", zap.String("id", bm.ID), zap.String("book", bm.BookID))
	response.Created(w, r, bm)
}

func (h *Handler) removeBookmark(w http.ResponseWriter, r *http.Request) {
	if err := h.Bookmarks.Remove(request.RouteStringParam(r, "id")); err != nil {
		response.ServerError(w, r, err)
		return
	}
	response.NoContent(w, r)
}

func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Bookmarks.LoadProgress()
	if !ok {
		response.NotFound(w, r)
		return
	}
	response.OK(w, r, p)
}

func (h *Handler) saveProgress(w http.ResponseWriter, r *http.Request) {
	var req model.ProgressUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	if err := validator.ValidateProgressUpdateRequest(&req); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	if req.TranslationID == "" {
		req.TranslationID = model.DefaultTranslationID
	}
	if req.FontSize == 0 {
		req.FontSize = model.DefaultFontSize
	}

	book := catalog.FindByID(req.BookID)
	p := model.ReadingProgress{
		BookID:        book.ID,
		BookName:      book.Name,
		Chapter:       req.Chapter,
		TranslationID: req.TranslationID,
		FontSize:      model.ClampFontSize(req.FontSize),
	}
	if err := h.Bookmarks.SaveProgress(p); err != nil {
		response.ServerError(w, r, err)
		return
	}
	p, _ = h.Bookmarks.LoadProgress()
	response.OK(w, r, p)
}
