package media

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"ankigen/internal/apkgerr"
)

// Manifest maps a slot's decimal string key to the media file's base name.
// Slots are assigned in input order; two slots may legally share a base name
// because the archive addresses payloads by slot, not by name.
type Manifest map[string]string

// ValidatePath rejects strings that cannot serve as media file paths before
// any I/O happens: empty strings, NUL bytes, and paths with no usable base
// name (directory roots, "." and "..").
func ValidatePath(path string) error {
	if path == "" {
		return apkgerr.Wrap(apkgerr.ErrPathFormat, "empty media path", nil)
	}
	if strings.ContainsRune(path, 0) {
		return apkgerr.Wrap(apkgerr.ErrPathFormat, "media path contains NUL byte: "+strconv.Quote(path), nil)
	}
	_, err := BaseName(path)
	return err
}

// BaseName extracts the archive-facing name for a media path: the final path
// element, NFC-normalized. The directory part is discarded; the consumer only
// ever sees base names.
func BaseName(path string) (string, error) {
	base := filepath.Base(path)
	switch base {
	case ".", "..", "/":
		return "", apkgerr.Wrap(apkgerr.ErrPathFormat, "media path has no base name: "+strconv.Quote(path), nil)
	}
	if !utf8.ValidString(base) {
		return "", apkgerr.Wrap(apkgerr.ErrEncoding, "media base name is not valid UTF-8: "+strconv.Quote(base), nil)
	}
	return norm.NFC.String(base), nil
}

// BuildManifest assigns each path its slot and resolves its base name. Keys
// are exactly "0".."N-1" for N paths.
func BuildManifest(paths []string) (Manifest, error) {
	manifest := make(Manifest, len(paths))
	for slot, path := range paths {
		base, err := BaseName(path)
		if err != nil {
			return nil, err
		}
		manifest[strconv.Itoa(slot)] = base
	}
	return manifest, nil
}
