package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingFields is matched by every *MissingFieldsError.
	ErrMissingFields = errors.New("missing required fields")
	// ErrInvalidCategory is returned when a listing category is neither
	// "sell" nor "rent".
	ErrInvalidCategory = errors.New("category must be either 'sell' or 'rent'")
)

// MissingFieldsError lists the required fields that were empty, in the
// order they were checked.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Missing required fields: " + strings.Join(e.Fields, ", ")
}

// Is makes errors.Is(err, ErrMissingFields) report true.
func (e *MissingFieldsError) Is(target error) bool {
	return target == ErrMissingFields
}

// MissingFields extracts the field list from err, or returns nil when err
// is not a *MissingFieldsError.
func MissingFields(err error) []string {
	var mfErr *MissingFieldsError
	if errors.As(err, &mfErr) {
		return mfErr.Fields
	}

	return nil
}
