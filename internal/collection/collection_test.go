package collection

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"ankigen/internal/apkgerr"
	"ankigen/internal/idgen"
)

type recordingPopulator struct {
	drawn []int64
	fail  error
}

func (p *recordingPopulator) PopulateRows(tx *sql.Tx, timestamp float64, ids *idgen.Generator) error {
	if p.fail != nil {
		return p.fail
	}
	for i := 0; i < 3; i++ {
		id := ids.Next()
		p.drawn = append(p.drawn, id)
		if _, err := tx.Exec(
			`INSERT INTO notes (id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
             VALUES (?, ?, 1, ?, -1, '', 'front', 'front', 0, 0, '')`,
			id, id, int64(timestamp),
		); err != nil {
			return err
		}
	}
	return nil
}

func openStore(t *testing.T, path string) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestWriteSnapshotInstallsSchemaAndRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.anki2")
	const timestamp = 1700000000.0

	first := &recordingPopulator{}
	second := &recordingPopulator{}
	if err := WriteSnapshot(path, timestamp, []RowPopulator{first, second}); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	db := openStore(t, path)

	var colRows int
	if err := db.QueryRow("SELECT COUNT(*) FROM col").Scan(&colRows); err != nil {
		t.Fatalf("count col rows: %v", err)
	}
	if colRows != 1 {
		t.Fatalf("col has %d rows, want 1", colRows)
	}

	var noteRows int
	if err := db.QueryRow("SELECT COUNT(*) FROM notes").Scan(&noteRows); err != nil {
		t.Fatalf("count note rows: %v", err)
	}
	if noteRows != 6 {
		t.Fatalf("notes has %d rows, want 6", noteRows)
	}

	for _, table := range []string{"cards", "revlog", "graves"} {
		var n int
		if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
			t.Fatalf("table %s missing: %v", table, err)
		}
	}
}

func TestWriteSharesOneGeneratorAcrossPopulators(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.anki2")
	const timestamp = 1700000000.25

	first := &recordingPopulator{}
	second := &recordingPopulator{}
	if err := WriteSnapshot(path, timestamp, []RowPopulator{first, second}); err != nil {
		t.Fatalf("WriteSnapshot: %v", err)
	}

	drawn := append(append([]int64{}, first.drawn...), second.drawn...)
	want := int64(timestamp * 1000)
	for i, id := range drawn {
		if id != want+int64(i) {
			t.Fatalf("draw %d = %d, want %d", i, id, want+int64(i))
		}
	}
}

func TestWriteSnapshotRollsBackOnPopulatorError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "collection.anki2")
	boom := errors.New("populate failed")

	err := WriteSnapshot(path, 1700000000, []RowPopulator{&recordingPopulator{fail: boom}})
	if !errors.Is(err, boom) {
		t.Fatalf("WriteSnapshot error = %v, want %v", err, boom)
	}

	// Schema and col row ran in the same transaction, so nothing survives.
	db := openStore(t, path)
	var tables int
	if err := db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'",
	).Scan(&tables); err != nil {
		t.Fatalf("inspect sqlite_master: %v", err)
	}
	if tables != 0 {
		t.Fatalf("store has %d tables after rollback, want 0", tables)
	}
}

func TestWriteSnapshotBadPath(t *testing.T) {
	err := WriteSnapshot(filepath.Join(t.TempDir(), "missing", "collection.anki2"), 1700000000, nil)
	if !errors.Is(err, apkgerr.ErrDatabase) {
		t.Fatalf("error = %v, want database kind", err)
	}
}
