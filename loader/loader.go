package loader

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	pb "github.com/cheggaaa/pb/v3"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/therealcoolnerd/omni-packages/types"
)

const (
	defaultPackagesDir = "packages"
	jsonExt            = ".json"
)

type option func(*Scanner)

func WithDir(dir string) option {
	return func(s *Scanner) { s.dir = dir }
}

func WithAppFs(appFs afero.Fs) option {
	return func(s *Scanner) { s.appFs = appFs }
}

// Scanner discovers and loads package metadata files under a directory.
type Scanner struct {
	dir   string
	appFs afero.Fs
}

func NewScanner(opts ...option) *Scanner {
	s := &Scanner{
		dir:   defaultPackagesDir,
		appFs: afero.NewOsFs(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Files returns every *.json file under the package directory in traversal
// order. A directory access error aborts the scan.
func (s *Scanner) Files() ([]string, error) {
	var files []string
	err := afero.Walk(s.appFs, s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && filepath.Ext(path) == jsonExt {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to walk %s: %w", s.dir, err)
	}
	return files, nil
}

// Load parses every discovered file into a package record. Files that
// cannot be read or parsed are logged and skipped, never aborting the scan.
func (s *Scanner) Load() ([]types.Package, error) {
	files, err := s.Files()
	if err != nil {
		return nil, err
	}

	log.Printf("Loading package metadata from %s", s.dir)
	bar := pb.StartNew(len(files))
	pkgs := make([]types.Package, 0, len(files))
	for _, file := range files {
		bar.Increment()

		data, err := afero.ReadFile(s.appFs, file)
		if err != nil {
			log.Printf("Error loading %s: %v", file, err)
			continue
		}

		var pkg types.Package
		if err := json.Unmarshal(data, &pkg); err != nil {
			log.Printf("Error loading %s: %v", file, err)
			continue
		}
		pkgs = append(pkgs, pkg)
	}
	bar.Finish()

	return pkgs, nil
}
