package ankigen

import (
	"database/sql"

	"ankigen/internal/apkgerr"
)

// insertCard writes one new-state card row. Scheduling columns are zeroed and
// usn is -1, which the consumer treats as "never synced, never studied".
func insertCard(tx *sql.Tx, id, noteID, deckID int64, ord int, timestamp float64) error {
	_, err := tx.Exec(
		`INSERT INTO cards (
            id, nid, did, ord, mod, usn, type, queue, due,
            ivl, factor, reps, lapses, left, odue, odid, flags, data
        ) VALUES (?, ?, ?, ?, ?, -1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, '')`,
		id,
		noteID,
		deckID,
		ord,
		int64(timestamp),
	)
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrDatabase, "insert card row", err)
	}
	return nil
}
