package v1

import (
	"net/http"

	"github.com/Xunop/e-verse/internal/dictionary"
	"github.com/Xunop/e-verse/internal/registry"
	"github.com/Xunop/e-verse/internal/resolver"
	"github.com/Xunop/e-verse/internal/search"
	"github.com/Xunop/e-verse/internal/store"
	"github.com/Xunop/e-verse/internal/worker"
	"github.com/gorilla/mux"
)

// Services are the reading components exposed over HTTP.
type Services struct {
	Resolver   *resolver.Resolver
	Registry   *registry.Registry
	Search     *search.Gateway
	Bookmarks  *store.Bookmarks
	Downloads  *worker.Manager
	Dictionary *dictionary.Service
}

type Handler struct {
	Services
}

// NewHandler is a constructor for the v1.Handler
func NewHandler(services Services) *Handler {
	return &Handler{Services: services}
}

func Server(router *mux.Router, handler *Handler) {
	sr := router.PathPrefix("/api/v1").Subrouter()
	sr.Use(HandleCORS)
	sr.Use(LoggingRequest)
	sr.Methods(http.MethodOptions)

	sr.HandleFunc("/books", handler.listBooks).Methods(http.MethodGet)
	sr.HandleFunc("/translations", handler.listTranslations).Methods(http.MethodGet)
	sr.HandleFunc("/translations/refresh", handler.refreshTranslations).Methods(http.MethodPost)
	sr.HandleFunc("/chapters/{book}/{chapter:[0-9]+}", handler.getChapter).Methods(http.MethodGet)
	sr.HandleFunc("/search", handler.search).Methods(http.MethodGet)
	sr.HandleFunc("/bookmarks", handler.listBookmarks).Methods(http.MethodGet)
	sr.HandleFunc("/bookmarks", handler.addBookmark).Methods(http.MethodPost)
	sr.HandleFunc("/bookmarks/{id}", handler.removeBookmark).Methods(http.MethodDelete)
	sr.HandleFunc("/progress", handler.getProgress).Methods(http.MethodGet)
	sr.HandleFunc("/progress", handler.saveProgress).Methods(http.MethodPut)
	sr.HandleFunc("/downloads", handler.listDownloads).Methods(http.MethodGet)
	sr.HandleFunc("/downloads/{translation}/{book}", handler.getDownload).Methods(http.MethodGet)
	sr.HandleFunc("/downloads/{translation}/{book}", handler.downloadBook).Methods(http.MethodPost)
	sr.HandleFunc("/downloads/{translation}/{book}", handler.removeDownload).Methods(http.MethodDelete)
	sr.HandleFunc("/dictionary/{term}", handler.define).Methods(http.MethodGet)
}
