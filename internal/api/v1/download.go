package v1

import (
	"net/http"

	"github.com/Xunop/e-verse/internal/catalog"
	"github.com/Xunop/e-verse/internal/http/request"
	"github.com/Xunop/e-verse/internal/http/response"
	"github.com/Xunop/e-verse/internal/validator"
)

type downloadStatus struct {
	TranslationID string `json:"translation_id"`
	BookID        string `json:"book_id"`
	Downloaded    bool   `json:"downloaded"`
}

func (h *Handler) listDownloads(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, h.Downloads.Downloaded())
}

// downloadParams reads and checks the translation and book of the route.
func downloadParams(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	translation := request.RouteStringParam(r, "translation")
	if err := validator.ValidateTranslationID(translation); err != nil {
		response.BadRequest(w, r, err)
		return "", "", false
	}
	book, err := catalog.Lookup(request.RouteStringParam(r, "book"))
	if err != nil {
		response.NotFound(w, r)
		return "", "", false
	}
	return translation, book.ID, true
}

func (h *Handler) getDownload(w http.ResponseWriter, r *http.Request) {
	translation, bookID, ok := downloadParams(w, r)
	if !ok {
		return
	}
	response.OK(w, r, downloadStatus{
		TranslationID: translation,
		BookID:        bookID,
		Downloaded:    h.Downloads.IsBookDownloaded(bookID, translation),
	})
}

// downloadBook blocks until every chapter was attempted and answers with the report.
func (h *Handler) downloadBook(w http.ResponseWriter, r *http.Request) {
	translation, bookID, ok := downloadParams(w, r)
	if !ok {
		return
	}
	report, err := h.Downloads.DownloadBook(r.Context(), translation, bookID)
	if err != nil {
		response.ServerError(w, r, err)
		return
	}
	response.OK(w, r, report)
}

func (h *Handler) removeDownload(w http.ResponseWriter, r *http.Request) {
	translation, bookID, ok := downloadParams(w, r)
	if !ok {
		return
	}
	if err := h.Downloads.RemoveDownloadedBook(bookID, translation); err != nil {
		response.ServerError(w, r, err)
		return
	}
	response.NoContent(w, r)
}
