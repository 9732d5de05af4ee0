package http

import (
	"net/http"
	"time"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/utils"
)

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		event := logger.FromRequest(r).Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size)

		// the session middleware runs inside this one, so the user is read
		// from the request it stored back
		if user, ok := utils.GetUserFromContext(lw.ctx()); ok {
			event = event.Str("user_id", user.ID)
		}

		event.Send()
	})
}
