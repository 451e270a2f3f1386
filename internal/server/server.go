package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	v1 "github.com/Xunop/e-verse/internal/api/v1"
	"github.com/Xunop/e-verse/internal/config"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/version"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// Pinger reports whether the persistent store is reachable.
type Pinger interface {
	Ping() error
}

// StartServer starts the HTTP server
func StartServer(ctx context.Context, db Pinger, services v1.Services) (*http.Server, error) {
	addr := config.Opts.Host
	port := config.Opts.Port
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", addr, port),
		Handler:           setupHandler(db, services),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	startHTTPServer(server, errCh)
	select {
	case err := <-errCh:
		return nil, err
	case <-time.After(100 * time.Millisecond):
	}

	return server, nil
}

func startHTTPServer(server *http.Server, errCh chan<- error) {
	go func() {
		log.Info("Starting HTTP server", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("HTTP server error", zap.Error(err))
			errCh <- err
		}
	}()
}

func setupHandler(db Pinger, services v1.Services) http.Handler {
	router := mux.NewRouter()

	// Setup the API routes
	v1.Server(router, v1.NewHandler(services))

	router.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			if err := db.Ping(); err != nil {
				log.Error("Healthcheck failed", zap.Error(err))
				http.Error(w, "Database Connection Error", http.StatusInternalServerError)
				return
			}
		}

		w.Write([]byte("OK"))
	}).Name("healthcheck")

	router.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(version.GetCurrentVersion()))
	}).Name("version")

	return router
}
