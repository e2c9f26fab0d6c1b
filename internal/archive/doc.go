// Package archive packs the relational snapshot, the media manifest, and the
// raw media payloads into the zip container the consuming application
// expects: collection.anki2 first, then media, then one member per slot named
// by its decimal index. Member timestamps are zeroed so pinned-timestamp
// builds reproduce byte for byte.
package archive
