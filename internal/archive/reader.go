package archive

import (
	"archive/zip"
	"encoding/json"
	"io"
	"strconv"

	"ankigen/internal/apkgerr"
	"ankigen/internal/media"
)

// MemberInfo describes one archive member.
type MemberInfo struct {
	Name string
	Size uint64
}

// Summary is the inspectable shape of a finished archive.
type Summary struct {
	Members  []MemberInfo
	Manifest media.Manifest
}

// ReadSummary opens a finished archive and reports its members plus the
// decoded media manifest. It fails on archives that are structurally invalid
// or missing either mandated member.
func ReadSummary(path string) (*Summary, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, apkgerr.Wrap(apkgerr.ErrArchive, "open archive "+strconv.Quote(path), err)
	}
	defer zr.Close()

	summary := &Summary{}
	var sawCollection bool
	for _, member := range zr.File {
		summary.Members = append(summary.Members, MemberInfo{
			Name: member.Name,
			Size: member.UncompressedSize64,
		})
		switch member.Name {
		case CollectionMember:
			sawCollection = true
		case ManifestMember:
			manifest, err := decodeManifest(member)
			if err != nil {
				return nil, err
			}
			summary.Manifest = manifest
		}
	}
	if !sawCollection {
		return nil, apkgerr.Wrap(apkgerr.ErrArchive, "archive has no "+CollectionMember+" member", nil)
	}
	if summary.Manifest == nil {
		return nil, apkgerr.Wrap(apkgerr.ErrArchive, "archive has no "+ManifestMember+" member", nil)
	}
	return summary, nil
}

func decodeManifest(member *zip.File) (media.Manifest, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, apkgerr.Wrap(apkgerr.ErrArchive, "open manifest member", err)
	}
	defer rc.Close()

	payload, err := io.ReadAll(rc)
	if err != nil {
		return nil, apkgerr.Wrap(apkgerr.ErrArchive, "read manifest member", err)
	}
	var manifest media.Manifest
	if err := json.Unmarshal(payload, &manifest); err != nil {
		return nil, apkgerr.Wrap(apkgerr.ErrEncoding, "decode media manifest", err)
	}
	if manifest == nil {
		manifest = media.Manifest{}
	}
	return manifest, nil
}
