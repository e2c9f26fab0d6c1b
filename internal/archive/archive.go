package archive

import (
	"archive/zip"
	"encoding/json"
	"io"
	"os"
	"strconv"

	"ankigen/internal/apkgerr"
	"ankigen/internal/media"
)

// Fixed member names the consuming application looks for.
const (
	CollectionMember = "collection.anki2"
	ManifestMember   = "media"
)

// Write assembles the final archive: the relational snapshot, then the media
// manifest, then one member per media payload named by its decimal slot, in
// ascending slot order. The archive is only valid once the trailer has been
// written; any error aborts before that happens.
func Write(w io.Writer, snapshot []byte, mediaPaths []string) error {
	manifest, err := media.BuildManifest(mediaPaths)
	if err != nil {
		return err
	}
	manifestJSON, err := json.Marshal(manifest)
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrEncoding, "serialize media manifest", err)
	}

	zw := zip.NewWriter(w)
	if err := writeMember(zw, CollectionMember, snapshot); err != nil {
		return err
	}
	if err := writeMember(zw, ManifestMember, manifestJSON); err != nil {
		return err
	}
	for slot, path := range mediaPaths {
		payload, err := os.ReadFile(path)
		if err != nil {
			return apkgerr.Wrap(apkgerr.ErrIO, "read media file "+strconv.Quote(path), err)
		}
		if err := writeMember(zw, strconv.Itoa(slot), payload); err != nil {
			return err
		}
	}
	if err := zw.Close(); err != nil {
		return apkgerr.Wrap(apkgerr.ErrArchive, "finalize archive", err)
	}
	return nil
}

func writeMember(zw *zip.Writer, name string, payload []byte) error {
	// The zero Modified time pins every header to the zip epoch so builds
	// with a pinned timestamp are byte-identical.
	member, err := zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: zip.Deflate,
	})
	if err != nil {
		return apkgerr.Wrap(apkgerr.ErrArchive, "create member "+strconv.Quote(name), err)
	}
	if _, err := member.Write(payload); err != nil {
		return apkgerr.Wrap(apkgerr.ErrArchive, "write member "+strconv.Quote(name), err)
	}
	return nil
}
