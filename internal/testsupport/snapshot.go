package testsupport

import (
	"archive/zip"
	"bytes"
	"database/sql"
	"io"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"
)

// ExtractMember pulls one named member out of archive bytes.
func ExtractMember(t testing.TB, archiveBytes []byte, name string) []byte {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(archiveBytes), int64(len(archiveBytes)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	for _, member := range zr.File {
		if member.Name != name {
			continue
		}
		rc, err := member.Open()
		if err != nil {
			t.Fatalf("open member %s: %v", name, err)
		}
		defer rc.Close()
		payload, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read member %s: %v", name, err)
		}
		return payload
	}
	t.Fatalf("member %s not found in archive", name)
	return nil
}

// MemberNames lists archive member names in stored order.
func MemberNames(t testing.TB, archiveBytes []byte) []string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(archiveBytes), int64(len(archiveBytes)))
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	names := make([]string, 0, len(zr.File))
	for _, member := range zr.File {
		names = append(names, member.Name)
	}
	return names
}

// OpenSnapshot writes snapshot bytes to a scratch file, opens them as a
// SQLite store, and registers cleanup.
func OpenSnapshot(t testing.TB, snapshot []byte) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "collection.anki2")
	if err := os.WriteFile(path, snapshot, 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// CountRows counts rows in one table of an opened snapshot.
func CountRows(t testing.TB, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count rows in %s: %v", table, err)
	}
	return n
}
