// Package http implements the REST transport of the real-estate API.
//
// It wires the chi router, the session and capability middleware, and the
// request handlers for accounts, listings, favorites, messages and user
// administration. Every handler delegates to the service layer and maps
// service and store sentinel errors to HTTP statuses in one place
// (see statusFromError).
package http
