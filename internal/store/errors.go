package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user is created with an email
	// that is already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrPropertyNotFound is returned when no listing matches the given id,
	// including a favorite or message that references a missing listing.
	ErrPropertyNotFound = errors.New("property not found")

	// ErrFavoriteAlreadyExists is returned when the (user, property) pair is
	// already a favorite.
	ErrFavoriteAlreadyExists = errors.New("favorite already exists")

	// ErrFavoriteNotFound is returned when removing a favorite that does not
	// exist.
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrSessionNotFound is returned for unknown or expired sessions.
	ErrSessionNotFound = errors.New("session not found")

	// ErrUnsupportedDriver is returned when the configured SQL driver is not
	// one of "postgres" or "sqlite".
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrInvalidPhotoName is returned for photo names that are empty or
	// contain path separators.
	ErrInvalidPhotoName = errors.New("invalid photo filename")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")
)
