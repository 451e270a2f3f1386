package response // import "github.com/Xunop/e-verse/internal/http/response"

import (
	"net/http"
)

// Builder generates HTTP responses.
type Builder struct {
	w          http.ResponseWriter
	r          *http.Request
	statusCode int
	headers    map[string]string
	body       []byte
}

// WithStatus uses the given status code to build the response.
func (b *Builder) WithStatus(statusCode int) {
	b.statusCode = statusCode
}

// WithHeader adds the given HTTP header to the response.
func (b *Builder) WithHeader(key, value string) {
	b.headers[key] = value
}

// WithBody uses the given body to build the response.
func (b *Builder) WithBody(body []byte) {
	b.body = body
}

// Write generates the HTTP response.
func (b *Builder) Write() {
	for key, value := range b.headers {
		b.w.Header().Set(key, value)
	}
	b.w.WriteHeader(b.statusCode)
	if len(b.body) > 0 {
		b.w.Write(b.body)
	}
}

// New creates a new response builder.
func New(w http.ResponseWriter, r *http.Request) *Builder {
	return &Builder{
		w:          w,
		r:          r,
		statusCode: http.StatusOK,
		headers: map[string]string{
			"X-Content-Type-Options": "nosniff",
			"X-Frame-Options":        "DENY",
		},
	}
}
