package http

import (
	"errors"
	"net/http"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/service"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/models"
)

// withSession resolves the session cookie into the calling user.
//
// A live session puts the user and the session id into the request context
// (see [utils.WithUser], [utils.WithSessionID]). Missing, unknown and
// expired sessions leave the request anonymous. A session whose user was
// deleted rejects the request with 404 {"error":"User not found"}.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.cookie.name)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromContext(ctx)

		user, err := h.services.AuthService.ResolveSession(ctx, cookie.Value)
		switch {
		case err == nil:
			ctx = utils.WithSessionID(utils.WithUser(ctx, user), cookie.Value)
			rememberContext(w, ctx)
		case errors.Is(err, store.ErrSessionNotFound):
			log.Debug().Msg("unknown or expired session, continuing anonymously")
		case errors.Is(err, service.ErrStaleSession):
			utils.WriteJSON(w, models.ErrorResponse{Error: "User not found"}, http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("error resolving session")
			utils.WriteJSON(w, models.ErrorResponse{Error: internalErrorMessage}, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireUser rejects anonymous requests with 401.
func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.GetUserFromContext(r.Context()); !ok {
			writeError(w, r, service.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// requireAdmin rejects anonymous requests with 401 and non-admins with 403.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := utils.GetUserFromContext(r.Context())
		switch {
		case !ok:
			writeError(w, r, service.ErrUnauthenticated)
		case !user.Role.IsAdmin():
			writeError(w, r, service.ErrForbidden)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// currentUser returns the user attached by withSession. Handlers behind
// requireUser may rely on it being present.
func currentUser(r *http.Request) models.User {
	user, _ := utils.GetUserFromContext(r.Context())
	return user
}
