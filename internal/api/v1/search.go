package v1

import (
	"net/http"

	"github.com/Xunop/e-verse/internal/http/request"
	"github.com/Xunop/e-verse/internal/http/response"
	"github.com/Xunop/e-verse/internal/model"
	"github.com/Xunop/e-verse/internal/validator"
)

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if err := validator.ValidateSearchQuery(query); err != nil {
		response.BadRequest(w, r, err)
		return
	}
	translation := r.URL.Query().Get("translation")
	if translation == "" {
		translation = model.DefaultTranslationID
	}
	if err := validator.ValidateTranslationID(translation); err != nil {
		response.BadRequest(w, r, err)
		return
	}

	result, err := h.Search.Find(r.Context(), query, translation, request.QueryIntParam(r, "page", 1))
	if err != nil {
		response.ServiceUnavailable(w, r, err)
		return
	}
	response.OK(w, r, result)
}

func (h *Handler) define(w http.ResponseWriter, r *http.Request) {
	term := request.RouteStringParam(r, "term")
	response.OK(w, r, h.Dictionary.Lookup(r.Context(), term, r.URL.Query().Get("dict")))
}
