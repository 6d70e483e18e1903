package mw

import (
	"net/http"
	"slices"
)

type Middleware = func(http.Handler) http.Handler

// Chain composes middleware. The first one is the outermost.
func Chain(chain ...Middleware) Middleware {
	return func(handler http.Handler) http.Handler {
		out := handler
		for _, mw := range slices.Backward(chain) {
			out = mw(out)
		}
		return out
	}
}

// NoStore prevents caching of responses,
// such as redirects carrying a logout id.
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		w.Header().Set("Pragma", "no-cache")
		next.ServeHTTP(w, r)
	})
}

// DenyFraming prevents pages from being embedded in frames.
func DenyFraming(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}
