package ankigen

import "testing"

func TestNewNoteFieldCountMismatch(t *testing.T) {
	if _, err := NewNote(BasicModel(), []string{"only front"}); err == nil {
		t.Fatal("NewNote accepted a field count that does not match the model")
	}
}

func TestGUIDIsContentDerived(t *testing.T) {
	first, err := NewNote(BasicModel(), []string{"Front", "Back"})
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	second, err := NewNote(BasicModel(), []string{"Front", "Back"})
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	if first.GUID() != second.GUID() {
		t.Error("identical fields produced different GUIDs")
	}

	other, err := NewNote(BasicModel(), []string{"Front", "Different"})
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	if first.GUID() == other.GUID() {
		t.Error("different fields produced the same GUID")
	}
	if first.GUID() == "" {
		t.Error("GUID is empty")
	}
}

func TestGUIDPinned(t *testing.T) {
	note, err := NewNote(BasicModel(), []string{"Front", "Back"})
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	note.SetGUID("pinned-guid")
	if got := note.GUID(); got != "pinned-guid" {
		t.Fatalf("GUID = %q, want pinned-guid", got)
	}
}

func TestFieldChecksumStripsHTML(t *testing.T) {
	plain, err := NewNote(BasicModel(), []string{"Paris", "x"})
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	tagged, err := NewNote(BasicModel(), []string{"<b>Paris</b>", "x"})
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	if plain.fieldChecksum() != tagged.fieldChecksum() {
		t.Error("checksum changed when the sort field only gained HTML markup")
	}
	if plain.fieldChecksum() == 0 {
		t.Error("checksum is zero for a non-empty sort field")
	}
}

func TestFormatTags(t *testing.T) {
	note, err := NewNote(BasicModel(), []string{"Front", "Back"})
	if err != nil {
		t.Fatalf("NewNote: %v", err)
	}
	if got := note.formatTags(); got != "" {
		t.Errorf("formatTags with no tags = %q, want empty", got)
	}
	note.SetTags("geo", "capitals")
	if got := note.formatTags(); got != " geo capitals " {
		t.Errorf("formatTags = %q, want %q", got, " geo capitals ")
	}
}
