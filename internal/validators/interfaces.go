// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming request models before they reach the
// service layer's business rules.
//
// A Validator accepts any supported model and an optional list of field
// names; when fields are given only those are checked. Missing required
// fields are reported together in a *MissingFieldsError so callers can name
// every one of them.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
