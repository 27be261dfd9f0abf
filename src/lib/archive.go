package lib

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
)

// DocumentsArchive is a zip bundle of a booking's uploaded documents, held in
// memory until a caller attaches it or writes it to disk.
type DocumentsArchive struct {
	Filename string
	Data     []byte
	Count    int

	// Path is set once the archive has been written to disk.
	Path string
}

// BuildDocumentsArchive bundles every candidate file that exists into a zip
// named {idNumber}_documents.zip, each entry under its original base name.
// Missing files are skipped. Zero existing files yields (nil, nil), not an
// error; an I/O failure is returned so the caller can proceed unattached.
func BuildDocumentsArchive(idNumber string, candidates []string) (*DocumentsArchive, error) {
	existing := make([]string, 0, len(candidates))
	for _, p := range candidates {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err != nil {
			if !os.IsNotExist(err) {
				log.Printf("Could not stat %s: %s\n", p, err.Error())
			}
			continue
		}
		existing = append(existing, p)
	}
	if len(existing) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, p := range existing {
		f, err := os.Open(p)
		if err != nil {
			zw.Close()
			return nil, fmt.Errorf("error opening %s: %s", p, err.Error())
		}
		w, err := zw.Create(path.Base(filepath.ToSlash(p)))
		if err != nil {
			f.Close()
			zw.Close()
			return nil, err
		}
		if _, err := io.Copy(w, f); err != nil {
			f.Close()
			zw.Close()
			return nil, err
		}
		f.Close()
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return &DocumentsArchive{
		Filename: fmt.Sprintf("%s_documents.zip", idNumber),
		Data:     buf.Bytes(),
		Count:    len(existing),
	}, nil
}

// WriteToPath persists the archive under dir and returns the full path.
func (a *DocumentsArchive) WriteToPath(dir string) (string, error) {
	p := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(p, a.Data, 0644); err != nil {
		return "", err
	}
	a.Path = p
	return p, nil
}

// AsAttachment references the on-disk copy when one exists so the transport
// can stream it, falling back to the in-memory bytes.
func (a *DocumentsArchive) AsAttachment() Attachment {
	if a.Path != "" {
		return Attachment{Filename: a.Filename, Path: a.Path}
	}
	return Attachment{Filename: a.Filename, Bytes: a.Data}
}
