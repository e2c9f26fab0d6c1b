package ankigen

// Stable identifiers for the built-in models. They never change so that
// packages built at different times merge cleanly in the consumer.
const (
	basicModelID            = 1559383000
	basicAndReversedModelID = 1485830179
	clozeModelID            = 1550428389
)

// BasicModel returns a front/back model with Front and Answer fields and a
// single card.
func BasicModel() *Model {
	return NewModel(
		basicModelID,
		"Basic (ankigen)",
		[]Field{{Name: "Front"}, {Name: "Back"}},
		[]Template{{
			Name: "Card 1",
			QFmt: "{{Front}}",
			AFmt: "{{FrontSide}}\n\n<hr id=\"answer\">\n\n{{Back}}",
		}},
	)
}

// BasicAndReversedModel returns a two-card model: front-to-back and
// back-to-front.
func BasicAndReversedModel() *Model {
	return NewModel(
		basicAndReversedModelID,
		"Basic (and reversed card) (ankigen)",
		[]Field{{Name: "Front"}, {Name: "Back"}},
		[]Template{
			{
				Name: "Card 1",
				QFmt: "{{Front}}",
				AFmt: "{{FrontSide}}\n\n<hr id=\"answer\">\n\n{{Back}}",
			},
			{
				Name: "Card 2",
				QFmt: "{{Back}}",
				AFmt: "{{FrontSide}}\n\n<hr id=\"answer\">\n\n{{Front}}",
			},
		},
	)
}

// ClozeModel returns the cloze-deletion model; one card per distinct cloze
// ordinal in the Text field.
func ClozeModel() *Model {
	m := NewClozeModel(
		clozeModelID,
		"Cloze (ankigen)",
		[]Field{{Name: "Text"}, {Name: "Back Extra"}},
		Template{
			Name: "Cloze",
			QFmt: "{{cloze:Text}}",
			AFmt: "{{cloze:Text}}<br>\n{{Back Extra}}",
		},
	)
	m.CSS = defaultCSS + "\n.cloze {\n font-weight: bold;\n color: blue;\n}\n"
	return m
}
