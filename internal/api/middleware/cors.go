package middleware

import "net/http"

const (
	allowOrigin  = "*"
	allowHeaders = "authorization, x-client-info, apikey, content-type"
	allowMethods = "GET, POST, OPTIONS"
)

// CORS adds the browser headers to every response and answers preflight requests
// with an empty 200 before any business logic runs.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", allowOrigin)
		h.Set("Access-Control-Allow-Headers", allowHeaders)
		h.Set("Access-Control-Allow-Methods", allowMethods)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
