package ankigen

import (
	"crypto/sha1"
	"database/sql"
	"encoding/hex"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"ankigen/internal/apkgerr"
	"ankigen/internal/idgen"
)

// fieldSeparator joins field values in the notes.flds column.
const fieldSeparator = "\x1f"

// Note is one unit of flashcard content: field values bound to a model. The
// model decides how many cards the note yields.
type Note struct {
	model  *Model
	fields []string
	tags   []string
	guid   string
}

// NewNote binds field values to a model. The value count must match the
// model's field count.
func NewNote(model *Model, fields []string) (*Note, error) {
	if model == nil {
		return nil, fmt.Errorf("note requires a model")
	}
	if len(fields) != len(model.Fields) {
		return nil, fmt.Errorf("note for model %q has %d field values, model defines %d",
			model.Name, len(fields), len(model.Fields))
	}
	return &Note{model: model, fields: fields}, nil
}

// SetTags replaces the note's tags.
func (n *Note) SetTags(tags ...string) *Note {
	n.tags = tags
	return n
}

// SetGUID pins the note's GUID instead of deriving it from the field values.
// Pin it when field content may change but the note identity must survive
// re-import.
func (n *Note) SetGUID(guid string) *Note {
	n.guid = guid
	return n
}

// GUID returns the pinned GUID, or the content-derived one.
func (n *Note) GUID() string {
	if n.guid != "" {
		return n.guid
	}
	return guidFor(n.fields)
}

// Model returns the model the note is bound to.
func (n *Note) Model() *Model {
	return n.model
}

func (n *Note) sortField() string {
	idx := n.model.SortField
	if idx < 0 || idx >= len(n.fields) {
		idx = 0
	}
	return n.fields[idx]
}

var htmlTag = regexp.MustCompile(`<[^>]+>`)

// fieldChecksum is the consumer's duplicate-detection checksum: the first
// eight hex digits of sha1 over the HTML-stripped sort field, as an integer.
func (n *Note) fieldChecksum() int64 {
	stripped := htmlTag.ReplaceAllString(n.sortField(), "")
	sum := sha1.Sum([]byte(stripped))
	value, err := strconv.ParseInt(hex.EncodeToString(sum[:])[:8], 16, 64)
	if err != nil {
		return 0
	}
	return value
}

func (n *Note) formatTags() string {
	if len(n.tags) == 0 {
		return ""
	}
	return " " + strings.Join(n.tags, " ") + " "
}

// writeRows inserts the note row and its card rows, drawing the note id first
// and then one id per card, in ordinal order.
func (n *Note) writeRows(tx *sql.Tx, deckID int64, timestamp float64, ids *idgen.Generator) error {
	noteID := ids.Next()
	_, err := tx.Exec(
		`INSERT INTO notes (id, guid, mid, mod, usn, tags, flds, sfld, csum, flags, data)
         VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		noteID,
		n.GUID(),
		n.model.ID,
		int64(timestamp),
		-1,
		n.formatTags(),
		strings.Join(n.fields, fieldSeparator),
		n.sortField(),
		n.fieldChecksum(),
		0,
		"",
	)
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrDatabase, "insert note row", err)
	}

	for _, ord := range n.model.cardOrdinals(n.fields) {
		if err := insertCard(tx, ids.Next(), noteID, deckID, ord, timestamp); err != nil {
			return err
		}
	}
	return nil
}
