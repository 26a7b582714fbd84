package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/catalog-admin/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger пишет метод, путь, статус и длительность каждого запроса.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			log.Infof("http request: method=%s path=%s status=%d duration=%s request_id=%s",
				r.Method,
				r.URL.Path,
				ww.Status(),
				time.Since(start),
				middleware.GetReqID(r.Context()),
			)
		})
	}
}
