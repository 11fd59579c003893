package archive

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
)

var ErrEmptyArchive = errors.New("archive contains no entries")

// FirstEntry returns the contents and name of the first entry listed in a zip
// (or kmz) archive. The entry is selected by position only, never by name.
func FirstEntry(archive []byte) ([]byte, string, error) {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, "", fmt.Errorf("failed to open archive: %w", err)
	}

	if len(r.File) == 0 {
		return nil, "", ErrEmptyArchive
	}

	entry := r.File[0]

	rc, err := entry.Open()
	if err != nil {
		return nil, entry.Name, fmt.Errorf("failed to open archive entry %s: %w", entry.Name, err)
	}
	defer rc.Close()

	contents, err := io.ReadAll(rc)
	if err != nil {
		return nil, entry.Name, fmt.Errorf("failed to read archive entry %s: %w", entry.Name, err)
	}

	return contents, entry.Name, nil
}
