package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOKWritesJSON(t *testing.T) {
	r, _ := http.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	OK(w, r, map[string]int{"chapter": 3})

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != contentTypeHeader {
		t.Errorf("content type = %q", ct)
	}
	var body map[string]int
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body["chapter"] != 3 {
		t.Errorf("body = %v, %v", body, err)
	}
}

func TestErrorResponses(t *testing.T) {
	cases := []struct {
		name   string
		write  func(w http.ResponseWriter, r *http.Request)
		status int
	}{
		{"bad request", func(w http.ResponseWriter, r *http.Request) { BadRequest(w, r, errors.New("bad")) }, http.StatusBadRequest},
		{"not found", NotFound, http.StatusNotFound},
		{"server error", func(w http.ResponseWriter, r *http.Request) { ServerError(w, r, errors.New("boom")) }, http.StatusInternalServerError},
		{"unavailable", func(w http.ResponseWriter, r *http.Request) { ServiceUnavailable(w, r, errors.New("offline")) }, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := http.NewRequest("GET", "/", nil)
			w := httptest.NewRecorder()
			tc.write(w, r)
			if w.Code != tc.status {
				t.Errorf("status = %d, want %d", w.Code, tc.status)
			}
			var body struct {
				ErrorMessage string `json:"error_message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body.ErrorMessage == "" {
				t.Errorf("error body = %q", w.Body.String())
			}
		})
	}
}

func TestNoContent(t *testing.T) {
	r, _ := http.NewRequest("DELETE", "/", nil)
	w := httptest.NewRecorder()
	NoContent(w, r)
	if w.Code != http.StatusNoContent || w.Body.Len() != 0 {
		t.Errorf("status = %d body = %q", w.Code, w.Body.String())
	}
}
