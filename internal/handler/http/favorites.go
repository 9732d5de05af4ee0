package http

import (
	"net/http"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/service"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/models"
)

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.FavoriteRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.FavoriteService.AddFavorite(r.Context(), currentUser(r).ID, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Property added to favorites successfully."}, http.StatusCreated)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	var req models.FavoriteRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	if err := h.services.FavoriteService.RemoveFavorite(r.Context(), currentUser(r).ID, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Property removed from favorites successfully."}, http.StatusOK)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.services.FavoriteService.ListFavorites(r.Context(), currentUser(r).ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, favorites, http.StatusOK)
}
