// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport itself, before any service is
// called.
var (
	// ErrRouteNotFound answers unknown paths and unsupported methods.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidForm is returned when a publish request is neither a valid
	// multipart form nor a url-encoded form.
	ErrInvalidForm = errors.New("invalid form data")

	// ErrUploadTooLarge is returned when a publish request exceeds the
	// configured upload size.
	ErrUploadTooLarge = errors.New("upload too large")

	// ErrReadingUpload is returned when an uploaded file part cannot be read.
	ErrReadingUpload = errors.New("error reading uploaded file")
)
