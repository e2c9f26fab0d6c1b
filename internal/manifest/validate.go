package manifest

import (
	"fmt"
	"strings"
)

// Built-in model names a note may reference.
const (
	ModelBasic         = "basic"
	ModelBasicReversed = "basic-reversed"
	ModelCloze         = "cloze"
)

// Validate checks structural soundness before any build work starts: ids and
// names present, model references resolvable, field counts matching.
func (m *Manifest) Validate() error {
	if strings.TrimSpace(m.Output) == "" {
		return fmt.Errorf("manifest: output path is required")
	}
	if len(m.Decks) == 0 && len(m.Media) == 0 {
		return fmt.Errorf("manifest: at least one deck or media file is required")
	}

	fieldCounts := map[string]int{
		ModelBasic:         2,
		ModelBasicReversed: 2,
		ModelCloze:         2,
	}
	for i, spec := range m.Models {
		if spec.ID == 0 {
			return fmt.Errorf("manifest: model %d: id is required", i)
		}
		name := strings.TrimSpace(spec.Name)
		if name == "" {
			return fmt.Errorf("manifest: model %d: name is required", i)
		}
		if _, exists := fieldCounts[name]; exists {
			return fmt.Errorf("manifest: model %q defined twice or shadows a built-in", name)
		}
		if len(spec.Fields) == 0 {
			return fmt.Errorf("manifest: model %q: at least one field is required", name)
		}
		if len(spec.Templates) == 0 {
			return fmt.Errorf("manifest: model %q: at least one template is required", name)
		}
		if spec.Cloze && len(spec.Templates) != 1 {
			return fmt.Errorf("manifest: cloze model %q must define exactly one template", name)
		}
		if spec.SortField < 0 || spec.SortField >= len(spec.Fields) {
			return fmt.Errorf("manifest: model %q: sort_field %d out of range", name, spec.SortField)
		}
		fieldCounts[name] = len(spec.Fields)
	}

	deckIDs := map[int64]string{}
	for i, deck := range m.Decks {
		if deck.ID == 0 {
			return fmt.Errorf("manifest: deck %d: id is required", i)
		}
		if strings.TrimSpace(deck.Name) == "" {
			return fmt.Errorf("manifest: deck %d: name is required", i)
		}
		if prior, dup := deckIDs[deck.ID]; dup {
			return fmt.Errorf("manifest: decks %q and %q share id %d", prior, deck.Name, deck.ID)
		}
		deckIDs[deck.ID] = deck.Name

		for j, note := range deck.Notes {
			model := strings.TrimSpace(note.Model)
			if model == "" {
				model = ModelBasic
			}
			want, known := fieldCounts[model]
			if !known {
				return fmt.Errorf("manifest: deck %q note %d references unknown model %q", deck.Name, j, note.Model)
			}
			if len(note.Fields) != want {
				return fmt.Errorf("manifest: deck %q note %d has %d field values, model %q defines %d",
					deck.Name, j, len(note.Fields), model, want)
			}
		}
	}
	return nil
}
