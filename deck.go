package ankigen

import (
	"database/sql"
	"encoding/json"
	"strconv"

	"ankigen/internal/apkgerr"
	"ankigen/internal/idgen"
)

// Deck is an ordered set of notes under one name. The ID must be stable
// across builds; the consumer uses it to merge re-imported decks.
type Deck struct {
	ID          int64
	Name        string
	Description string
	notes       []*Note
}

// NewDeck builds an empty deck.
func NewDeck(id int64, name, description string) *Deck {
	return &Deck{ID: id, Name: name, Description: description}
}

// AddNote appends a note. Notes are written in insertion order.
func (d *Deck) AddNote(n *Note) {
	d.notes = append(d.notes, n)
}

// Notes returns the deck's notes in insertion order.
func (d *Deck) Notes() []*Note {
	return d.notes
}

// PopulateRows merges the deck and its models into the collection row, then
// inserts note and card rows. It draws identifiers strictly in note order,
// note id before that note's card ids. Population only reads deck state, so
// a deck can take part in repeated builds.
func (d *Deck) PopulateRows(tx *sql.Tx, timestamp float64, ids *idgen.Generator) error {
	if err := d.mergeIntoCollection(tx, timestamp); err != nil {
		return err
	}
	for _, note := range d.notes {
		if err := note.writeRows(tx, d.ID, timestamp, ids); err != nil {
			return err
		}
	}
	return nil
}

// mergeIntoCollection rewrites the col row's decks and models JSON with this
// deck and every model its notes use.
func (d *Deck) mergeIntoCollection(tx *sql.Tx, timestamp float64) error {
	var decksJSON, modelsJSON []byte
	if err := tx.QueryRow("SELECT decks, models FROM col WHERE id = 1").
		Scan(&decksJSON, &modelsJSON); err != nil {
		return apkgerr.Wrap(apkgerr.ErrDatabase, "read collection row", err)
	}

	var decks map[string]json.RawMessage
	if err := json.Unmarshal(decksJSON, &decks); err != nil {
		return apkgerr.Wrap(apkgerr.ErrEncoding, "decode collection decks", err)
	}
	var models map[string]json.RawMessage
	if err := json.Unmarshal(modelsJSON, &models); err != nil {
		return apkgerr.Wrap(apkgerr.ErrEncoding, "decode collection models", err)
	}

	deckPayload, err := json.Marshal(d.colJSON(timestamp))
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrEncoding, "serialize deck", err)
	}
	decks[strconv.FormatInt(d.ID, 10)] = deckPayload

	for _, note := range d.notes {
		model := note.Model()
		key := strconv.FormatInt(model.ID, 10)
		if _, ok := models[key]; ok {
			continue
		}
		modelPayload, err := json.Marshal(model.colJSON(timestamp))
		if err != nil {
			return apkgerr.Wrap(apkgerr.ErrEncoding, "serialize model "+strconv.Quote(model.Name), err)
		}
		models[key] = modelPayload
	}

	mergedDecks, err := json.Marshal(decks)
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrEncoding, "serialize collection decks", err)
	}
	mergedModels, err := json.Marshal(models)
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrEncoding, "serialize collection models", err)
	}
	if _, err := tx.Exec("UPDATE col SET decks = ?, models = ? WHERE id = 1",
		mergedDecks, mergedModels); err != nil {
		return apkgerr.Wrap(apkgerr.ErrDatabase, "update collection row", err)
	}
	return nil
}

func (d *Deck) colJSON(timestamp float64) map[string]any {
	return map[string]any{
		"id":               d.ID,
		"name":             d.Name,
		"desc":             d.Description,
		"mod":              int64(timestamp),
		"usn":              -1,
		"collapsed":        false,
		"browserCollapsed": false,
		"dyn":              0,
		"conf":             1,
		"extendNew":        0,
		"extendRev":        50,
		"newToday":         []int{0, 0},
		"revToday":         []int{0, 0},
		"lrnToday":         []int{0, 0},
		"timeToday":        []int{0, 0},
	}
}
