package v1

import (
	"net/http"

	"github.com/Xunop/e-verse/internal/http/response"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/model"
	"go.uber.org/zap"
)

type translationsResponse struct {
	State        string              `json:"state"`
	Translations []model.Translation `json:"translations"`
}

func (h *Handler) listTranslations(w http.ResponseWriter, r *http.Request) {
	response.OK(w, r, translationsResponse{
		State:        h.Registry.State().String(),
		Translations: h.Registry.List(),
	})
}

func (h *Handler) refreshTranslations(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Registry.Refresh(r.Context()); err != nil {
		log.Warn("Translation refresh failed", zap.Error(err))
		response.ServiceUnavailable(w, r, err)
		return
	}
	response.OK(w, r, translationsResponse{
		State:        h.Registry.State().String(),
		Translations: h.Registry.List(),
	})
}
