package sqlite

import (
	"database/sql"
	"fmt"
)

// txStore is a transaction-scoped Store. Migrations and nested transactions
// are rejected; everything else runs against the wrapped *sql.Tx.
type txStore struct {
	Store
	tx *sql.Tx
}

func (t *txStore) ApplyMigrations() error {
	return fmt.Errorf("migrations cannot run inside a transaction")
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }
