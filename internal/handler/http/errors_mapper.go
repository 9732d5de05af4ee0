package http

import (
	"errors"
	"net/http"

	"github.com/DATCH7/real-estate/internal/logger"
	"github.com/DATCH7/real-estate/internal/service"
	"github.com/DATCH7/real-estate/internal/store"
	"github.com/DATCH7/real-estate/internal/utils"
	"github.com/DATCH7/real-estate/internal/validators"
	"github.com/DATCH7/real-estate/models"
)

const internalErrorMessage = "Internal server error"

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order; the first target matched with
// errors.Is decides the response. Anything unmatched is a 500.
var errorStatusMap = []errorMapping{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "Invalid JSON was passed"},
	{ErrUploadTooLarge, http.StatusRequestEntityTooLarge, "Uploaded files are too large"},
	{ErrInvalidForm, http.StatusBadRequest, "Invalid form data"},
	{ErrReadingUpload, http.StatusBadRequest, "Could not read uploaded file"},
	{validators.ErrMissingFields, http.StatusBadRequest, ""},
	{validators.ErrInvalidCategory, http.StatusBadRequest, "Category must be either 'sell' or 'rent'"},
	{models.ErrInvalidRole, http.StatusBadRequest, "Invalid role"},
	{service.ErrInvalidPhoto, http.StatusBadRequest, "Only image files are allowed"},
	{store.ErrInvalidPhotoName, http.StatusBadRequest, "Invalid photo name"},
	{service.ErrOwnListing, http.StatusBadRequest, "You cannot send a message about your own listing"},

	{service.ErrUnauthenticated, http.StatusUnauthorized, "User not authenticated"},
	{service.ErrWrongCredentials, http.StatusUnauthorized, "Invalid email or password."},
	{service.ErrForbidden, http.StatusForbidden, "Admin access required"},
	{service.ErrAlreadyLoggedIn, http.StatusForbidden, "User already logged in."},

	{store.ErrEmailAlreadyExists, http.StatusBadRequest, "User already exists."},
	{store.ErrFavoriteAlreadyExists, http.StatusBadRequest, "Property is already in favorites."},

	{service.ErrStaleSession, http.StatusNotFound, "User not found"},
	{store.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{store.ErrPropertyNotFound, http.StatusNotFound, "Property not found"},
	{store.ErrFavoriteNotFound, http.StatusNotFound, "Favorite not found."},
	{ErrRouteNotFound, http.StatusNotFound, "Not found"},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, internalErrorMessage},
	{store.ErrExecutingQuery, http.StatusInternalServerError, internalErrorMessage},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, internalErrorMessage},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, internalErrorMessage},
	{store.ErrScanningRow, http.StatusInternalServerError, internalErrorMessage},
	{store.ErrScanningRows, http.StatusInternalServerError, internalErrorMessage},
}

func lookupError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, err.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, internalErrorMessage
}

func statusFromError(err error) int {
	status, _ := lookupError(err)
	return status
}

func messageFromError(err error) string {
	_, message := lookupError(err)
	return message
}

// writeError logs err and answers with a {message} body, or a
// {message, fields} body for missing form fields. 5xx responses never
// carry the underlying error text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := lookupError(err)

	var mfErr *validators.MissingFieldsError
	if errors.As(err, &mfErr) {
		message = mfErr.Error()
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if mfErr != nil {
		utils.WriteJSON(w, models.FieldsErrorResponse{Message: message, Fields: mfErr.Fields}, status)
		return
	}
	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

// writeStatusError is writeError for the account endpoints, which answer
// with the {success, message} envelope.
func writeStatusError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := lookupError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
		message = "Server error. Please try again later."
	}

	utils.WriteJSON(w, models.StatusResponse{Success: false, Message: message}, status)
}
