package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
)

// DefaultBodyLimit максимальный размер тела запроса
const DefaultBodyLimit = 64 << 10

// BodyLimit ограничивает размер тела запроса
func BodyLimit(limitBytes int64) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limitBytes)
			next.ServeHTTP(w, r)
		})
	}
}
