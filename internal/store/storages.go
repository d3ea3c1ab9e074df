package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/config"
	"github.com/Chandhru-27/Primer-The-Digital-Handbook/internal/logger"
)

// Backend names returned by [ParseDSN].
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
)

// Storages groups the repositories the services depend on.
type Storages struct {
	VaultEntryRepository  VaultEntryRepository
	VaultSecretRepository VaultSecretRepository

	// Backend is one of the Backend* constants.
	Backend string

	db *DB
}

// NewStorages selects a backend from cfg.DB.DSN, connects, applies
// migrations and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, source, err := ParseDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	if backend == BackendMemory {
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		return &Storages{
			VaultEntryRepository:  NewMemoryVaultEntryRepository(),
			VaultSecretRepository: NewMemoryVaultSecretRepository(),
			Backend:               backend,
		}, nil
	}

	var db *DB
	switch backend {
	case BackendPostgres:
		db, err = NewConnectPostgres(ctx, source, log)
	case BackendSQLite:
		db, err = NewConnectSQLite(ctx, source, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Str("backend", backend).Msg("failed to apply migrations")
		_ = db.Close()
		return nil, err
	}

	return NewSQLStorages(db, log), nil
}

// NewSQLStorages builds the repositories on an already connected and
// migrated db.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		VaultEntryRepository:  NewVaultEntryRepository(db, log),
		VaultSecretRepository: NewVaultSecretRepository(db, log),
		Backend:               db.Dialect(),
		db:                    db,
	}
}

// Close releases the database pool, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// ParseDSN maps a DSN to a backend and the source string its driver
// expects.
//
//	""                      → memory
//	memory://               → memory
//	postgres://, postgresql:// → postgres (DSN unchanged)
//	sqlite://<path>         → sqlite (<path>)
//	file:<path>             → sqlite (DSN unchanged)
func ParseDSN(dsn string) (backend, source string, err error) {
	switch {
	case dsn == "", strings.HasPrefix(dsn, "memory://"):
		return BackendMemory, "", nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		path := strings.TrimPrefix(dsn, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("%w: sqlite dsn without path", ErrUnsupportedDSN)
		}
		return BackendSQLite, path, nil
	case strings.HasPrefix(dsn, "file:"):
		return BackendSQLite, dsn, nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, schemeOf(dsn))
	}
}

func schemeOf(dsn string) string {
	if scheme, _, ok := strings.Cut(dsn, "://"); ok {
		return scheme
	}
	return "no scheme"
}
