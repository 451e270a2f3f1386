package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/Xunop/e-verse/internal/http/request"
	"github.com/Xunop/e-verse/internal/log"
	"github.com/Xunop/e-verse/internal/util"
	"go.uber.org/zap"
)

func HandleCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Max-Age", "7200")
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func LoggingRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := request.FindClientIP(r)
		requestID := util.GenUUID()
		ctx := context.WithValue(r.Context(), request.ClientIPContextKey, clientIP)
		ctx = context.WithValue(ctx, request.RequestIDContextKey, requestID)

		t1 := time.Now()
		defer func() {
			log.Debug("Incoming request",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("proto", r.Proto),
				zap.String("client_ip", clientIP),
				zap.Duration("duration", time.Since(t1)))
		}()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
