package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when the users_username_key unique
	// index rejects an insert.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when the users_email_key unique index
	// rejects an insert.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrBookNotFound is returned when a book id does not resolve, or does
	// not belong to the given owner on delete.
	ErrBookNotFound = errors.New("book was not found")

	// ErrRatingOutOfRange is returned when the books_rating_check constraint
	// rejects an insert.
	ErrRatingOutOfRange = errors.New("rating is out of range")

	// ErrOwnerNotFound is returned when a book references a user that does
	// not exist (foreign key violation).
	ErrOwnerNotFound = errors.New("book owner was not found")

	// ErrInvalidImage is returned by ImageStorage.Upload for values that are
	// neither a base64 data URI nor an http(s) URL.
	ErrInvalidImage = errors.New("invalid image")

	// ErrImageUploadDisabled is returned for data URI images when no bucket
	// is configured.
	ErrImageUploadDisabled = errors.New("image uploads are disabled")

	// ErrLocalSessionNotFound is returned by the client session repository
	// when nobody is logged in.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
