package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/service"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) changeRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	var req models.ChangeRoleRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	user, err := h.services.UserService.ChangeRole(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Str("role", string(user.Role)).Msg("user role changed")
	utils.WriteJSON(w, models.UserResponse{Message: "User role updated successfully", User: user}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	if err := h.services.UserService.DeleteUser(r.Context(), userID); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("user_id", userID).Msg("user deleted")
	utils.WriteJSON(w, models.MessageResponse{Message: "User deleted successfully"}, http.StatusOK)
}
