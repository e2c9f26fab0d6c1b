package ankigen

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ModelType selects how cards are derived from a note's fields.
type ModelType int

const (
	// FrontBack models produce one card per template.
	FrontBack ModelType = 0
	// Cloze models produce one card per distinct {{cN::...}} ordinal found in
	// the note's fields.
	Cloze ModelType = 1
)

// Field describes one note field of a model. Zero values for Font and Size
// fall back to the consumer's defaults (Arial 20).
type Field struct {
	Name   string
	Font   string
	Size   int
	Sticky bool
	RTL    bool
}

// Template describes one card template: the question and answer formats plus
// their optional browser variants.
type Template struct {
	Name  string
	QFmt  string
	AFmt  string
	BQFmt string
	BAFmt string
}

const (
	defaultLatexPre = "\\documentclass[12pt]{article}\n\\special{papersize=3in,5in}\n" +
		"\\usepackage[utf8]{inputenc}\n\\usepackage{amssymb,amsmath}\n" +
		"\\pagestyle{empty}\n\\setlength{\\parindent}{0in}\n\\begin{document}\n"
	defaultLatexPost = "\\end{document}"
	defaultCSS       = ".card {\n font-family: arial;\n font-size: 20px;\n" +
		" text-align: center;\n color: black;\n background-color: white;\n}\n"
)

// Model defines the shape shared by a set of notes: its fields, card
// templates, and styling. The ID must be stable across builds so the consumer
// can recognize the model when packages are re-imported.
type Model struct {
	ID        int64
	Name      string
	Fields    []Field
	Templates []Template
	CSS       string
	Type      ModelType
	LatexPre  string
	LatexPost string
	// SortField is the index of the field used for sorting and checksums.
	SortField int
}

// NewModel builds a front/back model with the default styling.
func NewModel(id int64, name string, fields []Field, templates []Template) *Model {
	return &Model{
		ID:        id,
		Name:      name,
		Fields:    fields,
		Templates: templates,
		CSS:       defaultCSS,
		Type:      FrontBack,
		LatexPre:  defaultLatexPre,
		LatexPost: defaultLatexPost,
	}
}

// NewClozeModel builds a cloze model; cloze models carry exactly one template.
func NewClozeModel(id int64, name string, fields []Field, template Template) *Model {
	m := NewModel(id, name, fields, []Template{template})
	m.Type = Cloze
	return m
}

// colJSON renders the model in the collection-row representation the consumer
// stores under col.models.
func (m *Model) colJSON(timestamp float64) map[string]any {
	flds := make([]map[string]any, len(m.Fields))
	for i, field := range m.Fields {
		font := field.Font
		if font == "" {
			font = "Arial"
		}
		size := field.Size
		if size == 0 {
			size = 20
		}
		flds[i] = map[string]any{
			"name":   field.Name,
			"ord":    i,
			"font":   font,
			"size":   size,
			"sticky": field.Sticky,
			"rtl":    field.RTL,
			"media":  []any{},
		}
	}

	tmpls := make([]map[string]any, len(m.Templates))
	for i, tmpl := range m.Templates {
		tmpls[i] = map[string]any{
			"name":  tmpl.Name,
			"ord":   i,
			"qfmt":  tmpl.QFmt,
			"afmt":  tmpl.AFmt,
			"bqfmt": tmpl.BQFmt,
			"bafmt": tmpl.BAFmt,
			"did":   nil,
		}
	}

	out := map[string]any{
		"id":        m.ID,
		"name":      m.Name,
		"type":      int(m.Type),
		"mod":       int64(timestamp),
		"usn":       -1,
		"sortf":     m.SortField,
		"did":       1,
		"flds":      flds,
		"tmpls":     tmpls,
		"css":       m.CSS,
		"latexPre":  m.LatexPre,
		"latexPost": m.LatexPost,
		"latexsvg":  false,
		"tags":      []any{},
		"vers":      []any{},
	}
	if m.Type == FrontBack {
		out["req"] = m.requirements()
	}
	return out
}

var templateDirective = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// requirements mirrors the consumer's per-template field requirements: a
// template is satisfiable when any field referenced by its question format is
// non-empty.
func (m *Model) requirements() []any {
	ordByField := make(map[string]int, len(m.Fields))
	for i, field := range m.Fields {
		ordByField[field.Name] = i
	}

	req := make([]any, 0, len(m.Templates))
	for ord, tmpl := range m.Templates {
		seen := make(map[int]bool)
		for _, match := range templateDirective.FindAllStringSubmatch(tmpl.QFmt, -1) {
			directive := strings.TrimSpace(match[1])
			if directive == "" || strings.ContainsAny(directive[:1], "#/^") {
				continue
			}
			// Strip filters such as cloze: or text:.
			if idx := strings.LastIndex(directive, ":"); idx >= 0 {
				directive = directive[idx+1:]
			}
			if fieldOrd, ok := ordByField[strings.TrimSpace(directive)]; ok {
				seen[fieldOrd] = true
			}
		}
		ords := make([]any, 0, len(seen))
		for fieldOrd := range seen {
			ords = append(ords, fieldOrd)
		}
		sort.Slice(ords, func(i, j int) bool { return ords[i].(int) < ords[j].(int) })
		if len(ords) == 0 {
			req = append(req, []any{ord, "none", []any{}})
			continue
		}
		req = append(req, []any{ord, "any", ords})
	}
	return req
}

var clozeOrdinal = regexp.MustCompile(`\{\{c(\d+)::`)

// cardOrdinals reports which card ordinals a note with the given field values
// produces under this model.
func (m *Model) cardOrdinals(fields []string) []int {
	if m.Type == FrontBack {
		ords := make([]int, len(m.Templates))
		for i := range m.Templates {
			ords[i] = i
		}
		return ords
	}

	seen := make(map[int]bool)
	for _, value := range fields {
		for _, match := range clozeOrdinal.FindAllStringSubmatch(value, -1) {
			if n, err := strconv.Atoi(match[1]); err == nil && n > 0 {
				seen[n-1] = true
			}
		}
	}
	if len(seen) == 0 {
		// A cloze note without deletions still yields its first card.
		return []int{0}
	}
	ords := make([]int, 0, len(seen))
	for ord := range seen {
		ords = append(ords, ord)
	}
	sort.Ints(ords)
	return ords
}
