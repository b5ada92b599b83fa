package api

import (
	"log"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/therealcoolnerd/omni-packages/loader"
	"github.com/therealcoolnerd/omni-packages/utils"
)

const (
	apiVersion = "1.0"

	defaultPackagesDir = "packages"
	defaultAPIDir      = "api/v1/packages"

	popularFile       = "popular.json"
	crossPlatformFile = "cross-platform.json"
	securityFile      = "security.json"
	categoriesFile    = "categories.json"
	allFile           = "all.json"
)

type option func(*Generator)

func WithPackagesDir(dir string) option {
	return func(g *Generator) { g.packagesDir = dir }
}

func WithAPIDir(dir string) option {
	return func(g *Generator) { g.apiDir = dir }
}

func WithAppFs(appFs afero.Fs) option {
	return func(g *Generator) { g.appFs = appFs }
}

// WithClock fixes the timestamp embedded in generated documents.
func WithClock(clock func() time.Time) option {
	return func(g *Generator) { g.clock = clock }
}

// Generator regenerates every derived API document from the package
// metadata directory.
type Generator struct {
	packagesDir string
	apiDir      string
	appFs       afero.Fs
	clock       func() time.Time
}

func NewGenerator(opts ...option) *Generator {
	g := &Generator{
		packagesDir: defaultPackagesDir,
		apiDir:      defaultAPIDir,
		appFs:       afero.NewOsFs(),
		clock:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Update loads every package record once and rewrites the five API
// documents. A view with no matching records is still written.
func (g *Generator) Update() error {
	scanner := loader.NewScanner(loader.WithDir(g.packagesDir), loader.WithAppFs(g.appFs))
	pkgs, err := scanner.Load()
	if err != nil {
		return xerrors.Errorf("failed to load packages: %w", err)
	}
	log.Printf("Loaded %d packages", len(pkgs))

	lastUpdated := g.clock().UTC().Format(time.RFC3339)

	log.Println("Generating API endpoints")
	endpoints := []struct {
		fileName string
		data     interface{}
	}{
		{popularFile, buildPopularIndex(pkgs, lastUpdated)},
		{crossPlatformFile, buildCrossPlatformIndex(pkgs, lastUpdated)},
		{securityFile, buildSecurityIndex(pkgs, lastUpdated)},
		{categoriesFile, buildCategoriesIndex(pkgs, lastUpdated)},
		{allFile, buildPackageIndex(pkgs, lastUpdated)},
	}

	fs := utils.NewFs(g.appFs)
	for _, endpoint := range endpoints {
		if err := fs.WriteJSON(g.apiDir, endpoint.fileName, endpoint.data); err != nil {
			return xerrors.Errorf("failed to write %s: %w", endpoint.fileName, err)
		}
		log.Printf("Generated %s", endpoint.fileName)
	}

	log.Println("API generation complete")
	return nil
}
