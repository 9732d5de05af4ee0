package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// stringList stores a []string as a JSON array (JSONB in postgres, TEXT in
// sqlite). A NULL column scans to an empty list.
type stringList []string

func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}

	return string(b), nil
}

func (l *stringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = stringList{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for string list", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("error decoding string list: %w", err)
	}
	if out == nil {
		out = []string{}
	}

	*l = out
	return nil
}
