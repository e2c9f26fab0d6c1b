// Package ankigen builds portable flashcard packages: a zip archive holding
// an embedded SQLite snapshot of decks, notes, and cards plus any referenced
// media, importable by the Anki desktop application.
//
// Build a model, fill a deck with notes, and write:
//
//	model := ankigen.BasicModel()
//	note, err := ankigen.NewNote(model, []string{"Capital of France?", "Paris"})
//	if err != nil {
//		// field count did not match the model
//	}
//
//	deck := ankigen.NewDeck(1234, "Geography", "Capitals practice")
//	deck.AddNote(note)
//
//	pkg, err := ankigen.NewPackage([]*ankigen.Deck{deck}, []string{"img.png"})
//	if err != nil {
//		// invalid media path
//	}
//	if err := pkg.WriteToFile("geography.apkg"); err != nil {
//		// classify with errors.Is against ankigen.ErrIO, ErrDatabase, ...
//	}
//
// Writes are synchronous and all-or-nothing: on any error the output must not
// be treated as a valid package. Pin the timestamp with WriteTimestamp for
// reproducible builds.
package ankigen
