// Package collection writes the embedded relational snapshot that becomes the
// collection.anki2 archive member.
//
// The fixed schema and the singleton default collection row are embedded SQL;
// deck-owned rows are contributed by RowPopulator implementations. Everything
// runs inside one transaction so the snapshot file is either complete and
// self-consistent or untouched. SQLite access goes through database/sql with
// the modernc.org/sqlite driver.
package collection
