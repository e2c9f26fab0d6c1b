package ankigen

import (
	"reflect"
	"testing"
)

func TestCardOrdinalsFrontBack(t *testing.T) {
	if got := BasicModel().cardOrdinals([]string{"q", "a"}); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("BasicModel ordinals = %v, want [0]", got)
	}
	if got := BasicAndReversedModel().cardOrdinals([]string{"q", "a"}); !reflect.DeepEqual(got, []int{0, 1}) {
		t.Errorf("BasicAndReversedModel ordinals = %v, want [0 1]", got)
	}
}

func TestCardOrdinalsCloze(t *testing.T) {
	model := ClozeModel()
	cases := []struct {
		name   string
		fields []string
		want   []int
	}{
		{"single deletion", []string{"{{c1::Paris}} is in France", ""}, []int{0}},
		{"two deletions", []string{"{{c1::Paris}} is in {{c2::France}}", ""}, []int{0, 1}},
		{"repeated ordinal", []string{"{{c1::a}} and {{c1::b}}", ""}, []int{0}},
		{"gap in ordinals", []string{"{{c3::x}}", ""}, []int{2}},
		{"no deletions", []string{"plain text", ""}, []int{0}},
		{"deletion in second field", []string{"text", "{{c2::extra}}"}, []int{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := model.cardOrdinals(tc.fields); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ordinals = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRequirements(t *testing.T) {
	model := NewModel(1, "m",
		[]Field{{Name: "Question"}, {Name: "Answer"}, {Name: "Unused"}},
		[]Template{
			{Name: "Card 1", QFmt: "{{Question}}", AFmt: "{{Answer}}"},
			{Name: "Card 2", QFmt: "{{#Answer}}{{Answer}}{{/Answer}}", AFmt: "{{Question}}"},
			{Name: "Card 3", QFmt: "static text", AFmt: "{{Question}}"},
		},
	)
	req := model.requirements()
	if len(req) != 3 {
		t.Fatalf("req has %d entries, want 3", len(req))
	}

	first := req[0].([]any)
	if first[1] != "any" || !reflect.DeepEqual(first[2], []any{0}) {
		t.Errorf("req[0] = %v", first)
	}
	second := req[1].([]any)
	if second[1] != "any" || !reflect.DeepEqual(second[2], []any{1}) {
		t.Errorf("req[1] = %v", second)
	}
	third := req[2].([]any)
	if third[1] != "none" {
		t.Errorf("req[2] = %v", third)
	}
}

func TestColJSONShape(t *testing.T) {
	payload := BasicModel().colJSON(1700000000)
	if payload["id"] != int64(basicModelID) {
		t.Errorf("id = %v", payload["id"])
	}
	if payload["type"] != 0 {
		t.Errorf("type = %v, want 0", payload["type"])
	}
	if payload["mod"] != int64(1700000000) {
		t.Errorf("mod = %v", payload["mod"])
	}
	flds := payload["flds"].([]map[string]any)
	if len(flds) != 2 || flds[0]["name"] != "Front" || flds[0]["font"] != "Arial" || flds[0]["size"] != 20 {
		t.Errorf("flds = %v", flds)
	}
	if _, ok := payload["req"]; !ok {
		t.Error("front/back model JSON lacks req")
	}

	cloze := ClozeModel().colJSON(1700000000)
	if cloze["type"] != 1 {
		t.Errorf("cloze type = %v, want 1", cloze["type"])
	}
	if _, ok := cloze["req"]; ok {
		t.Error("cloze model JSON carries req")
	}
}
