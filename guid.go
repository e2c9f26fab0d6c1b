package ankigen

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
)

// base91Table is the alphabet the consumer uses for note GUIDs.
var base91Table = []byte(
	"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"0123456789" +
		"!#$%&()*+,-./:;<=>?@[]^_`{|}~",
)

// guidFor derives a stable GUID from field values: sha256 over the joined
// fields, first eight bytes, rendered in the consumer's base91 alphabet.
// Content-derived GUIDs keep pinned-timestamp builds reproducible and let the
// consumer deduplicate re-imported notes.
func guidFor(values []string) string {
	sum := sha256.Sum256([]byte(strings.Join(values, "__")))
	n := binary.BigEndian.Uint64(sum[:8])

	base := uint64(len(base91Table))
	buf := make([]byte, 0, 11)
	for n > 0 {
		buf = append(buf, base91Table[n%base])
		n /= base
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}
