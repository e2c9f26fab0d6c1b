package media

import (
	"errors"
	"testing"

	"ankigen/internal/apkgerr"
)

func TestBuildManifestSlots(t *testing.T) {
	manifest, err := BuildManifest([]string{"img.png", "sounds/clip.mp3", "other/img.png"})
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}
	want := Manifest{
		"0": "img.png",
		"1": "clip.mp3",
		"2": "img.png",
	}
	if len(manifest) != len(want) {
		t.Fatalf("manifest has %d entries, want %d", len(manifest), len(want))
	}
	for key, name := range want {
		if manifest[key] != name {
			t.Errorf("manifest[%q] = %q, want %q", key, manifest[key], name)
		}
	}
}

func TestBuildManifestEmpty(t *testing.T) {
	manifest, err := BuildManifest(nil)
	if err != nil {
		t.Fatalf("BuildManifest: %v", err)
	}
	if len(manifest) != 0 {
		t.Fatalf("manifest has %d entries, want 0", len(manifest))
	}
}

func TestBaseNameNormalizesNFC(t *testing.T) {
	// "e" followed by combining acute accent normalizes to a single rune.
	got, err := BaseName("media/é.png")
	if err != nil {
		t.Fatalf("BaseName: %v", err)
	}
	if got != "é.png" {
		t.Fatalf("BaseName = %q, want %q", got, "é.png")
	}
}

func TestBaseNameRejectsInvalidUTF8(t *testing.T) {
	_, err := BaseName("media/img\xff.png")
	if !errors.Is(err, apkgerr.ErrEncoding) {
		t.Fatalf("error = %v, want encoding kind", err)
	}
}

func TestValidatePath(t *testing.T) {
	cases := []struct {
		name string
		path string
		kind error
	}{
		{"plain file", "img.png", nil},
		{"nested file", "assets/audio/clip.mp3", nil},
		{"empty", "", apkgerr.ErrPathFormat},
		{"nul byte", "img\x00.png", apkgerr.ErrPathFormat},
		{"dot", ".", apkgerr.ErrPathFormat},
		{"dotdot", "..", apkgerr.ErrPathFormat},
		{"root", "/", apkgerr.ErrPathFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePath(tc.path)
			if tc.kind == nil {
				if err != nil {
					t.Fatalf("ValidatePath(%q) = %v, want nil", tc.path, err)
				}
				return
			}
			if !errors.Is(err, tc.kind) {
				t.Fatalf("ValidatePath(%q) = %v, want kind %v", tc.path, err, tc.kind)
			}
		})
	}
}
