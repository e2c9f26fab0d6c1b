package apkgerr

import (
	"errors"
	"fmt"
)

// Sentinel kinds for every failure a package build can surface. Callers
// classify with errors.Is; the underlying cause stays reachable through the
// wrap chain.
var (
	ErrPathFormat = errors.New("path format error")
	ErrIO         = errors.New("io error")
	ErrDatabase   = errors.New("database error")
	ErrArchive    = errors.New("archive error")
	ErrEncoding   = errors.New("encoding error")
)

// Wrap tags err with the given kind and an operation detail. A nil err
// produces a kind-tagged error carrying only the detail.
func Wrap(kind error, detail string, err error) error {
	if kind == nil {
		kind = ErrIO
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", kind, detail, err)
	}
	return fmt.Errorf("%w: %s", kind, detail)
}

// Kind reports which sentinel err carries, or nil when it carries none.
func Kind(err error) error {
	for _, kind := range []error{ErrPathFormat, ErrIO, ErrDatabase, ErrArchive, ErrEncoding} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
