package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_manifest.toml
var sampleManifest string

// Manifest is the TOML description of one package build.
type Manifest struct {
	Output string      `toml:"output"`
	Media  []string    `toml:"media"`
	Models []ModelSpec `toml:"model"`
	Decks  []DeckSpec  `toml:"deck"`
}

// ModelSpec defines a custom note model. Notes may also reference the
// built-in models by name: basic, basic-reversed, cloze.
type ModelSpec struct {
	ID        int64          `toml:"id"`
	Name      string         `toml:"name"`
	Cloze     bool           `toml:"cloze"`
	Fields    []string       `toml:"fields"`
	Templates []TemplateSpec `toml:"template"`
	CSS       string         `toml:"css"`
	SortField int            `toml:"sort_field"`
}

// TemplateSpec defines one card template of a custom model.
type TemplateSpec struct {
	Name  string `toml:"name"`
	Front string `toml:"front"`
	Back  string `toml:"back"`
}

// DeckSpec defines one deck and its notes.
type DeckSpec struct {
	ID          int64      `toml:"id"`
	Name        string     `toml:"name"`
	Description string     `toml:"description"`
	Notes       []NoteSpec `toml:"note"`
}

// NoteSpec defines one note: a model reference plus its field values.
type NoteSpec struct {
	Model  string   `toml:"model"`
	Fields []string `toml:"fields"`
	Tags   []string `toml:"tags"`
	GUID   string   `toml:"guid"`
}

// Load reads and validates a manifest file.
func Load(path string) (*Manifest, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := toml.Unmarshal(payload, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Sample returns the embedded sample manifest, used by `ankigen init`.
func Sample() string {
	return sampleManifest
}
