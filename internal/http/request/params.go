package request // import "github.com/Xunop/e-verse/internal/http/request"

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// RouteIntParam returns an URL route parameter as int.
func RouteIntParam(r *http.Request, param string) int {
	vars := mux.Vars(r)
	value, err := strconv.Atoi(vars[param])
	if err != nil {
		return 0
	}

	if value < 0 {
		return 0
	}

	return value
}

// RouteStringParam returns a URL route parameter as string.
func RouteStringParam(r *http.Request, param string) string {
	return mux.Vars(r)[param]
}

// QueryIntParam returns a query string parameter as int, or fallback when absent or invalid.
func QueryIntParam(r *http.Request, param string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(param))
	if err != nil {
		return fallback
	}
	return value
}

// QueryListParam splits a comma separated query parameter, dropping blanks.
func QueryListParam(r *http.Request, param string) []string {
	list := []string{}
	for _, v := range strings.Split(r.URL.Query().Get(param), ",") {
		if v = strings.TrimSpace(v); v != "" {
			list = append(list, v)
		}
	}
	return list
}
