package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/DATCH7/real-estate/models"
)

// Field names as they appear in request bodies and forms.
const (
	FieldFirstName   = "first_name"
	FieldLastName    = "last_name"
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldPhone       = "phone"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldSurface     = "surface"
	FieldRooms       = "rooms"
	FieldType        = "type"
	FieldAddress     = "address"
	FieldCategory    = "category"
	FieldPropertyID  = "propertyId"
	FieldContent     = "content"
	FieldRole        = "role"
)

var (
	signupFields   = []string{FieldFirstName, FieldLastName, FieldEmail, FieldPassword, FieldPhone}
	loginFields    = []string{FieldEmail, FieldPassword}
	propertyFields = []string{FieldTitle, FieldDescription, FieldPrice, FieldSurface, FieldRooms, FieldType, FieldAddress, FieldCategory}
	messageFields  = []string{FieldPropertyID, FieldContent}
)

// RequestValidator validates the request models of the HTTP API.
//
// Supported types (value or pointer):
//   - models.SignupRequest
//   - models.LoginRequest
//   - models.PropertyDraft
//   - models.FavoriteRequest
//   - models.MessageRequest
//   - models.ChangeRoleRequest
type RequestValidator struct {
}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignupRequest:
		return v.validateSignup(value, fields...)
	case *models.SignupRequest:
		return v.validateSignup(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.PropertyDraft:
		return v.validatePropertyDraft(value, fields...)
	case *models.PropertyDraft:
		return v.validatePropertyDraft(*value, fields...)

	case models.FavoriteRequest:
		return requireFields(favoriteValues(value), []string{FieldPropertyID}, fields)
	case *models.FavoriteRequest:
		return requireFields(favoriteValues(*value), []string{FieldPropertyID}, fields)

	case models.MessageRequest:
		return requireFields(messageValues(value), messageFields, fields)
	case *models.MessageRequest:
		return requireFields(messageValues(*value), messageFields, fields)

	case models.ChangeRoleRequest:
		return v.validateChangeRole(value, fields...)
	case *models.ChangeRoleRequest:
		return v.validateChangeRole(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateSignup(req models.SignupRequest, fields ...string) error {
	values := map[string]string{
		FieldFirstName: req.FirstName,
		FieldLastName:  req.LastName,
		FieldEmail:     req.Email,
		FieldPassword:  req.Password,
		FieldPhone:     req.Phone,
	}

	return requireFields(values, signupFields, fields)
}

func (v *RequestValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	values := map[string]string{
		FieldEmail:    req.Email,
		FieldPassword: req.Password,
	}

	return requireFields(values, loginFields, fields)
}

// validatePropertyDraft reports every missing required field first; the
// category value is checked only once all fields are present.
func (v *RequestValidator) validatePropertyDraft(draft models.PropertyDraft, fields ...string) error {
	values := map[string]string{
		FieldTitle:       draft.Title,
		FieldDescription: draft.Description,
		FieldPrice:       draft.Price,
		FieldSurface:     draft.Surface,
		FieldRooms:       draft.Rooms,
		FieldType:        draft.Type,
		FieldAddress:     draft.Address,
		FieldCategory:    draft.Category,
	}

	if err := requireFields(values, propertyFields, fields); err != nil {
		return err
	}

	if len(fields) == 0 || slices.Contains(fields, FieldCategory) {
		if _, err := models.ParseCategory(strings.TrimSpace(draft.Category)); err != nil {
			return ErrInvalidCategory
		}
	}

	return nil
}

func (v *RequestValidator) validateChangeRole(req models.ChangeRoleRequest, fields ...string) error {
	if err := requireFields(map[string]string{FieldRole: req.Role}, []string{FieldRole}, fields); err != nil {
		return err
	}

	if _, err := models.ParseRole(req.Role); err != nil {
		return err
	}

	return nil
}

func favoriteValues(req models.FavoriteRequest) map[string]string {
	return map[string]string{FieldPropertyID: req.PropertyID}
}

func messageValues(req models.MessageRequest) map[string]string {
	return map[string]string{
		FieldPropertyID: req.PropertyID,
		FieldContent:    req.Content,
	}
}

// requireFields checks that each of the selected fields has a non-blank
// value. When selected is empty every field in defaults is checked.
func requireFields(values map[string]string, defaults, selected []string) error {
	if len(selected) == 0 {
		selected = defaults
	}

	var missing []string
	for _, f := range selected {
		value, known := values[f]
		if !known {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
		if strings.TrimSpace(value) == "" {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Fields: missing}
	}

	return nil
}
