package ankigen

import (
	"io"
	"os"
	"time"

	"ankigen/internal/apkgerr"
	"ankigen/internal/archive"
	"ankigen/internal/collection"
	"ankigen/internal/media"
)

// Package assembles decks and media files into one portable archive. Media
// slots are assigned in list order.
//
// A Package may be reused for several sequential writes; each write produces
// an independent snapshot (with a fresh timestamp unless one is pinned).
// Concurrent writes on the same Package are not supported; callers must
// serialize them.
type Package struct {
	decks      []*Deck
	mediaFiles []string
}

// NewPackage validates the media paths and builds a package. It fails with a
// path-format error before any I/O if a path string cannot serve as a file
// path; whether the files exist is only checked at write time.
func NewPackage(decks []*Deck, mediaFiles []string) (*Package, error) {
	for _, path := range mediaFiles {
		if err := media.ValidatePath(path); err != nil {
			return nil, err
		}
	}
	return &Package{decks: decks, mediaFiles: mediaFiles}, nil
}

// Write writes the package to w using the current wall-clock timestamp.
func (p *Package) Write(w io.Writer) error {
	return p.write(w, currentTimestamp())
}

// WriteTimestamp writes the package to w using the given timestamp (seconds
// since the Unix epoch). Identical input and timestamp produce an identical
// snapshot, so pinning the timestamp gives reproducible builds.
func (p *Package) WriteTimestamp(w io.Writer, timestamp float64) error {
	return p.write(w, timestamp)
}

// WriteToFile creates or truncates path and writes the package to it using
// the current wall-clock timestamp.
func (p *Package) WriteToFile(path string) error {
	return p.writeFile(path, currentTimestamp())
}

// WriteToFileTimestamp creates or truncates path and writes the package to it
// using the given timestamp.
func (p *Package) WriteToFileTimestamp(path string, timestamp float64) error {
	return p.writeFile(path, timestamp)
}

func (p *Package) writeFile(path string, timestamp float64) error {
	f, err := os.Create(path)
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrIO, "create package file", err)
	}
	if err := p.write(f, timestamp); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return apkgerr.Wrap(apkgerr.ErrIO, "close package file", err)
	}
	return nil
}

// write is the whole pipeline: scratch snapshot file, transactional store
// write, then archive assembly into w. The scratch file is removed on every
// exit path.
func (p *Package) write(w io.Writer, timestamp float64) error {
	scratch, err := os.CreateTemp("", "ankigen-*.anki2")
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrIO, "create scratch snapshot file", err)
	}
	scratchPath := scratch.Name()
	defer os.Remove(scratchPath)
	if err := scratch.Close(); err != nil {
		return apkgerr.Wrap(apkgerr.ErrIO, "close scratch snapshot file", err)
	}

	populators := make([]collection.RowPopulator, len(p.decks))
	for i, deck := range p.decks {
		populators[i] = deck
	}
	if err := collection.WriteSnapshot(scratchPath, timestamp, populators); err != nil {
		return err
	}

	snapshot, err := os.ReadFile(scratchPath)
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrIO, "read snapshot bytes", err)
	}
	return archive.Write(w, snapshot, p.mediaFiles)
}

// currentTimestamp is the wall clock in fractional seconds. time.Now cannot
// fail, so the documented zero fallback is unreachable on this platform.
func currentTimestamp() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
