package config

import (
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"

	"github.com/therealcoolnerd/omni-packages/utils"
)

const (
	configFile = ".omni-packages.yaml"

	defaultPackagesDir = "packages"
	defaultAPIDir      = "api/v1/packages"
)

// Config holds the two directory paths both batch jobs operate on.
type Config struct {
	PackagesDir string `yaml:"packages_dir"`
	APIDir      string `yaml:"api_dir"`
}

// Load resolves the configuration: built-in defaults, overridden by
// .omni-packages.yaml when present, overridden by environment variables.
func Load(appFs afero.Fs) (Config, error) {
	c := Config{
		PackagesDir: defaultPackagesDir,
		APIDir:      defaultAPIDir,
	}

	ok, err := afero.Exists(appFs, configFile)
	if err != nil {
		return Config{}, xerrors.Errorf("failed to stat %s: %w", configFile, err)
	}
	if ok {
		data, err := afero.ReadFile(appFs, configFile)
		if err != nil {
			return Config{}, xerrors.Errorf("failed to read %s: %w", configFile, err)
		}
		var file Config
		if err := yaml.Unmarshal(data, &file); err != nil {
			return Config{}, xerrors.Errorf("failed to parse %s: %w", configFile, err)
		}
		if file.PackagesDir != "" {
			c.PackagesDir = file.PackagesDir
		}
		if file.APIDir != "" {
			c.APIDir = file.APIDir
		}
	}

	c.PackagesDir = utils.LookupEnv("OMNI_PACKAGES_DIR", c.PackagesDir)
	c.APIDir = utils.LookupEnv("OMNI_API_DIR", c.APIDir)
	return c, nil
}
