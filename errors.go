package ankigen

import "ankigen/internal/apkgerr"

// Error kinds surfaced by package builds. Match with errors.Is; the
// underlying cause stays reachable through the wrap chain.
var (
	// ErrPathFormat reports a media path string that cannot serve as a file
	// path. Raised at construction, before any I/O.
	ErrPathFormat = apkgerr.ErrPathFormat
	// ErrIO reports a failed file operation: creating output, reading the
	// snapshot, or reading a media file.
	ErrIO = apkgerr.ErrIO
	// ErrDatabase reports a failure in the embedded relational store.
	ErrDatabase = apkgerr.ErrDatabase
	// ErrArchive reports a failure writing or finalizing the archive.
	ErrArchive = apkgerr.ErrArchive
	// ErrEncoding reports a serialization failure or a media base name that
	// is not representable as text.
	ErrEncoding = apkgerr.ErrEncoding
)
