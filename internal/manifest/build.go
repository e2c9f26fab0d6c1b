package manifest

import (
	"fmt"
	"strings"

	"ankigen"
)

// Build turns a validated manifest into a Package ready to write.
func Build(m *Manifest) (*ankigen.Package, error) {
	models := map[string]*ankigen.Model{
		ModelBasic:         ankigen.BasicModel(),
		ModelBasicReversed: ankigen.BasicAndReversedModel(),
		ModelCloze:         ankigen.ClozeModel(),
	}
	for _, spec := range m.Models {
		models[spec.Name] = buildModel(spec)
	}

	decks := make([]*ankigen.Deck, 0, len(m.Decks))
	for _, deckSpec := range m.Decks {
		deck := ankigen.NewDeck(deckSpec.ID, deckSpec.Name, deckSpec.Description)
		for j, noteSpec := range deckSpec.Notes {
			name := strings.TrimSpace(noteSpec.Model)
			if name == "" {
				name = ModelBasic
			}
			note, err := ankigen.NewNote(models[name], noteSpec.Fields)
			if err != nil {
				return nil, fmt.Errorf("deck %q note %d: %w", deckSpec.Name, j, err)
			}
			if len(noteSpec.Tags) > 0 {
				note.SetTags(noteSpec.Tags...)
			}
			if noteSpec.GUID != "" {
				note.SetGUID(noteSpec.GUID)
			}
			deck.AddNote(note)
		}
		decks = append(decks, deck)
	}

	return ankigen.NewPackage(decks, m.Media)
}

func buildModel(spec ModelSpec) *ankigen.Model {
	fields := make([]ankigen.Field, len(spec.Fields))
	for i, name := range spec.Fields {
		fields[i] = ankigen.Field{Name: name}
	}
	templates := make([]ankigen.Template, len(spec.Templates))
	for i, tmpl := range spec.Templates {
		templates[i] = ankigen.Template{Name: tmpl.Name, QFmt: tmpl.Front, AFmt: tmpl.Back}
	}

	var model *ankigen.Model
	if spec.Cloze {
		model = ankigen.NewClozeModel(spec.ID, spec.Name, fields, templates[0])
	} else {
		model = ankigen.NewModel(spec.ID, spec.Name, fields, templates)
	}
	if spec.CSS != "" {
		model.CSS = spec.CSS
	}
	model.SortField = spec.SortField
	return model
}
