package http

import (
	"net/http"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/service"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/models"
)

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.MessageRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, service.ErrInvalidDataProvided)
		return
	}

	message, err := h.services.MessageService.SendMessage(r.Context(), currentUser(r).ID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, message, http.StatusCreated)
}

func (h *Handler) listMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.MessageService.ListMessages(r.Context(), currentUser(r).ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, messages, http.StatusOK)
}
