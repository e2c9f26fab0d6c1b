package collection

import (
	"database/sql"
	_ "embed"

	_ "modernc.org/sqlite"

	"ankigen/internal/apkgerr"
	"ankigen/internal/idgen"
)

//go:embed schema.sql
var schemaSQL string

//go:embed col.sql
var colSQL string

// RowPopulator is implemented by decks: given the snapshot transaction, the
// build timestamp, and the shared identifier generator, it inserts its own
// rows. Populators run sequentially in list order and draw identifiers in
// that order.
type RowPopulator interface {
	PopulateRows(tx *sql.Tx, timestamp float64, ids *idgen.Generator) error
}

// Write installs the schema and the default collection row on tx, then lets
// each populator insert its rows using identifiers seeded from timestamp.
// The transaction stays open; the caller commits or rolls back.
func Write(tx *sql.Tx, timestamp float64, populators []RowPopulator) error {
	if _, err := tx.Exec(schemaSQL); err != nil {
		return apkgerr.Wrap(apkgerr.ErrDatabase, "apply schema", err)
	}
	if _, err := tx.Exec(colSQL); err != nil {
		return apkgerr.Wrap(apkgerr.ErrDatabase, "insert default collection row", err)
	}
	ids := idgen.New(timestamp)
	for _, populator := range populators {
		if err := populator.PopulateRows(tx, timestamp, ids); err != nil {
			return err
		}
	}
	return nil
}

// WriteSnapshot opens a fresh store at path, runs Write inside a single
// transaction, and commits. On any error the transaction rolls back and
// nothing is visible in the file. The store is fully closed before
// WriteSnapshot returns so the file bytes are final.
func WriteSnapshot(path string, timestamp float64, populators []RowPopulator) (err error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrDatabase, "open snapshot store", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = apkgerr.Wrap(apkgerr.ErrDatabase, "close snapshot store", cerr)
		}
	}()

	tx, err := db.Begin()
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrDatabase, "begin snapshot transaction", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := Write(tx, timestamp, populators); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return apkgerr.Wrap(apkgerr.ErrDatabase, "commit snapshot transaction", err)
	}
	return nil
}
