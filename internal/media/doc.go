// Package media builds the slot-to-name manifest that accompanies media
// payloads inside a package archive.
//
// Each input path gets a zero-based slot in list order. The manifest keys are
// the slots' decimal strings and the values are NFC-normalized base names;
// the archive stores payloads under the slot names, so duplicate base names
// across slots are fine.
package media
