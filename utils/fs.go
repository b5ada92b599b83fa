package utils

import (
	"encoding/json"
	"path/filepath"

	"golang.org/x/xerrors"

	"github.com/spf13/afero"
)

type Fs struct {
	AppFs afero.Fs
}

func NewFs(appFs afero.Fs) Fs {
	return Fs{AppFs: appFs}
}

// WriteJSON writes data as 2-space-indented JSON to dir/fileName,
// creating dir as needed.
func (fs Fs) WriteJSON(dir, fileName string, data interface{}) error {
	if err := fs.AppFs.MkdirAll(dir, 0755); err != nil {
		return xerrors.Errorf("mkdir error: %w", err)
	}

	f, err := fs.AppFs.Create(filepath.Join(dir, fileName))
	if err != nil {
		return xerrors.Errorf("unable to open a file: %w", err)
	}
	defer f.Close()

	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return xerrors.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err = f.Write(b); err != nil {
		return xerrors.Errorf("failed to save a file: %w", err)
	}
	return nil
}
