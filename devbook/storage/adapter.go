// Package storage provides pluggable snapshot backends for a contact
// book dump. A snapshot is the store's canonical JSON object mapping
// decimal record ids to field-dict arrays; adapters persist and recall
// that object without interpreting field contents.
package storage

import "context"

type Backend string

const (
	BackendFile     Backend = "file"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
)

// Adapter abstracts backend-specific snapshot persistence.
type Adapter interface {
	Backend() Backend

	// Ref identifies the snapshot location: a path for file and
	// sqlite, a DSN for postgres.
	Ref() string

	// Load recalls the most recent snapshot. A backend with no
	// snapshot yet returns an empty dump ("{}") and no error.
	Load(ctx context.Context) ([]byte, error)

	// Save persists dump, replacing any previous snapshot.
	Save(ctx context.Context, dump []byte) error

	Close() error
}
