package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"

	"github.com/therealcoolnerd/omni-packages/loader"
)

const (
	defaultPackagesDir = "packages"
	minManagers        = 2
)

type option func(*Validator)

func WithDir(dir string) option {
	return func(v *Validator) { v.dir = dir }
}

func WithAppFs(appFs afero.Fs) option {
	return func(v *Validator) { v.appFs = appFs }
}

// Validator checks every package metadata file against the package schema
// and the cross-field rules.
type Validator struct {
	dir    string
	appFs  afero.Fs
	schema *jsonschema.Schema
}

func NewValidator(opts ...option) (*Validator, error) {
	schema, err := jsonschema.CompileString("package.schema.json", packageSchema)
	if err != nil {
		return nil, xerrors.Errorf("failed to compile package schema: %w", err)
	}

	v := &Validator{
		dir:    defaultPackagesDir,
		appFs:  afero.NewOsFs(),
		schema: schema,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v, nil
}

// ValidateFile returns the list of validation errors for one file, in check
// order. An empty list means the file is valid.
func (v *Validator) ValidateFile(filePath string) []string {
	data, err := afero.ReadFile(v.appFs, filePath)
	if err != nil {
		return []string{fmt.Sprintf("Error reading file: %v", err)}
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return []string{fmt.Sprintf("Invalid JSON: %v", err)}
	}

	var errs []string
	if err := v.schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			for _, leaf := range leafCauses(ve) {
				loc := leaf.InstanceLocation
				if loc == "" {
					loc = "/"
				}
				errs = append(errs, fmt.Sprintf("Schema validation error: %s: %s", loc, leaf.Message))
			}
		} else {
			errs = append(errs, fmt.Sprintf("Schema validation error: %v", err))
		}
	}

	obj, _ := doc.(map[string]interface{})

	// The filename stem must equal the declared package name.
	if name, ok := obj["name"].(string); ok {
		if base := filepath.Base(filePath); base != name+".json" {
			errs = append(errs, fmt.Sprintf("Filename %s doesn't match package name %s", base, name))
		}
	}

	if cp, ok := obj["cross_platform"].(map[string]interface{}); ok {
		var total int
		for _, managers := range cp {
			if mm, ok := managers.(map[string]interface{}); ok {
				total += len(mm)
			}
		}
		if total < minManagers {
			errs = append(errs, "Package should support at least 2 package managers")
		}
	}

	return errs
}

// Run validates every discovered file, prints a per-file pass/fail line and
// a summary, and returns an error iff any file had validation errors.
func (v *Validator) Run() error {
	scanner := loader.NewScanner(loader.WithDir(v.dir), loader.WithAppFs(v.appFs))
	files, err := scanner.Files()
	if err != nil {
		return xerrors.Errorf("failed to scan %s: %w", v.dir, err)
	}

	log.Printf("Validating package metadata in %s", v.dir)

	var totalFiles, totalErrors int
	for _, file := range files {
		totalFiles++
		errs := v.ValidateFile(file)
		if len(errs) == 0 {
			color.Green("PASS %s", file)
			continue
		}

		totalErrors += len(errs)
		color.Red("FAIL %s", file)
		for _, e := range errs {
			fmt.Printf("     - %s\n", e)
		}
	}

	fmt.Printf("\nFiles processed: %d\nErrors found: %d\n", totalFiles, totalErrors)

	if totalErrors > 0 {
		return xerrors.Errorf("%d validation errors found", totalErrors)
	}
	log.Println("All package metadata is valid")
	return nil
}

func leafCauses(err *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(err.Causes) == 0 {
		return []*jsonschema.ValidationError{err}
	}
	var leaves []*jsonschema.ValidationError
	for _, cause := range err.Causes {
		leaves = append(leaves, leafCauses(cause)...)
	}
	return leaves
}
