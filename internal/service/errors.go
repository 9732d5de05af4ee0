package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a request is malformed in a way
	// the validators do not name more precisely.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated is returned when an operation needs a logged-in user
	// and the request carries none.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrWrongCredentials covers both an unknown email and a wrong password.
	ErrWrongCredentials = errors.New("invalid email or password")

	// ErrForbidden is returned when an authenticated user lacks the admin role.
	ErrForbidden = errors.New("access denied")

	// ErrAlreadyLoggedIn is returned by login when the request already
	// carries a live session.
	ErrAlreadyLoggedIn = errors.New("user already logged in")

	// ErrStaleSession is returned when a live session points at a user that
	// no longer exists.
	ErrStaleSession = errors.New("session user not found")

	// ErrInvalidPhoto is returned when an uploaded file is not a decodable image.
	ErrInvalidPhoto = errors.New("uploaded file is not a supported image")

	// ErrOwnListing is returned when a user messages the agent of their own
	// listing.
	ErrOwnListing = errors.New("cannot message your own listing")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
