package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiError covers every error body the API writes: {message}, {error} and
// {success, message}.
type apiError struct {
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Fields  []string `json:"fields"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := errorBody(resp.Body())

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusRequestEntityTooLarge:
		return fmt.Errorf("%w: %s", ErrPayloadTooLarge, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// errorBody extracts the human readable message of an error response,
// falling back to the raw body.
func errorBody(raw []byte) string {
	var e apiError
	if err := json.Unmarshal(raw, &e); err == nil {
		msg := e.Message
		if msg == "" {
			msg = e.Error
		}
		if msg != "" {
			if len(e.Fields) > 0 {
				msg += " (" + strings.Join(e.Fields, ", ") + ")"
			}
			return msg
		}
	}

	return strings.TrimSpace(string(raw))
}
