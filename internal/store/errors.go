package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists in the database.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match exactly one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoteAlreadyExists is returned when a note is inserted under an id
	// that is already taken.
	ErrNoteAlreadyExists = errors.New("note already exists")

	// ErrNoteNotFound is returned when a query or update targets a note
	// (identified by note_id and user_id) that does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNotebookAlreadyExists is returned when a notebook id is reused.
	ErrNotebookAlreadyExists = errors.New("notebook already exists")

	// ErrNothingUpdated is returned when an UPDATE completes without error
	// but affects zero rows.
	ErrNothingUpdated = errors.New("nothing was updated")

	// ErrSessionNotFound is returned by the session store when no session
	// pointer has been persisted.
	ErrSessionNotFound = errors.New("session not found")

	// ErrStorageBusy wraps driver errors that may succeed if retried
	// (SQLITE_BUSY, SQLITE_LOCKED).
	ErrStorageBusy = errors.New("storage is busy")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
