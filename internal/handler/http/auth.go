package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/service"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/internal/validators"
	"github.com/DATCH7/real-estate/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeStatusError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, req)
	if err != nil {
		if errors.Is(err, validators.ErrMissingFields) {
			utils.WriteJSON(w, models.StatusResponse{Success: false, Message: "All fields are required."}, http.StatusBadRequest)
			return
		}
		writeStatusError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.ID).Msg("user registered")
	utils.WriteJSON(w, models.StatusResponse{Success: true, Message: "User registered successfully!"}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeStatusError(w, r, service.ErrInvalidDataProvided)
		return
	}

	session, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		if errors.Is(err, validators.ErrMissingFields) {
			utils.WriteJSON(w, models.StatusResponse{Success: false, Message: "Email and password are required."}, http.StatusBadRequest)
			return
		}
		writeStatusError(w, r, err)
		return
	}

	h.setSessionCookie(w, session)

	log.Debug().Str("user_id", session.UserID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{
		Success: true,
		Message: "Login successful!",
		User:    session.User,
	}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := utils.GetSessionIDFromContext(r.Context())

	if err := h.services.AuthService.Logout(r.Context(), sessionID); err != nil {
		logger.FromRequest(r).Err(err).Msg("error destroying session")
		utils.WriteJSON(w, models.StatusResponse{Success: false, Message: "Failed to log out."}, http.StatusInternalServerError)
		return
	}

	h.clearSessionCookie(w)
	utils.WriteJSON(w, models.StatusResponse{Success: true, Message: "Logged out successfully."}, http.StatusOK)
}

func (h *Handler) checkAuth(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		utils.WriteJSON(w, models.CheckAuthResponse{IsAuthenticated: false}, http.StatusUnauthorized)
		return
	}

	profile := user.Profile()
	utils.WriteJSON(w, models.CheckAuthResponse{IsAuthenticated: true, User: &profile}, http.StatusOK)
}

func (h *Handler) getUserData(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, currentUser(r), http.StatusOK)
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, session models.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    session.ID,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(session.ExpiresAt.Sub(session.CreatedAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
