package main

import (
	"flag"
	"log"

	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/therealcoolnerd/omni-packages/api"
	"github.com/therealcoolnerd/omni-packages/config"
	"github.com/therealcoolnerd/omni-packages/validate"
)

var (
	target      = flag.String("target", "", "batch target (validate, generate)")
	packagesDir = flag.String("packages-dir", "", "package metadata directory (overrides config)")
	apiDir      = flag.String("api-dir", "", "API output directory (overrides config)")
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.Parse()

	c, err := config.Load(afero.NewOsFs())
	if err != nil {
		return xerrors.Errorf("config error: %w", err)
	}
	if *packagesDir != "" {
		c.PackagesDir = *packagesDir
	}
	if *apiDir != "" {
		c.APIDir = *apiDir
	}

	switch *target {
	case "validate":
		v, err := validate.NewValidator(validate.WithDir(c.PackagesDir))
		if err != nil {
			return xerrors.Errorf("failed to initialize validator: %w", err)
		}
		if err := v.Run(); err != nil {
			return xerrors.Errorf("error in package validation: %w", err)
		}
	case "generate":
		g := api.NewGenerator(api.WithPackagesDir(c.PackagesDir), api.WithAPIDir(c.APIDir))
		if err := g.Update(); err != nil {
			return xerrors.Errorf("error in API generation: %w", err)
		}
	default:
		return xerrors.New("unknown target")
	}

	return nil
}
