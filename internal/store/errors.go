package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntryNotFound is returned when no entry with the given id exists for
	// the account.
	ErrEntryNotFound = errors.New("vault entry was not found")

	// ErrEntryAlreadyExists is returned when an insert collides with an
	// existing id.
	ErrEntryAlreadyExists = errors.New("vault entry already exists")

	// ErrVaultSecretNotFound is returned when the account has not configured
	// a vault secret yet.
	ErrVaultSecretNotFound = errors.New("vault secret was not found")

	// ErrUnsupportedDSN is returned when the DSN scheme selects no backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
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
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
