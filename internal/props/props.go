// Package props loads project properties from command-line assignments,
// buildmeta.hcl and gradle.properties, and layers them by precedence.
package props

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/buildmeta/internal/resolve"
	"github.com/rs/zerolog/log"
)

const (
	// HCLFileName is the property file looked up in the project directory.
	HCLFileName = "buildmeta.hcl"
	// GradleFileName is the Gradle property file looked up in the project directory.
	GradleFileName = "gradle.properties"
)

var ErrMalformedProperty = errors.New("malformed property assignment")

// ParseAssignments parses Gradle-style "name=value" assignments as given
// to -P. The value may be empty or contain further '=' characters.
func ParseAssignments(assignments []string) (resolve.MapProperties, error) {
	m := make(resolve.MapProperties, len(assignments))
	for _, a := range assignments {
		name, value, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q (want name=value)", ErrMalformedProperty, a)
		}
		m[name] = value
	}
	return m, nil
}

// Layered consults each source in order and returns the first present
// value. A source that fails to read is skipped; the error is only
// returned if no later source has the property.
type Layered []resolve.Properties

// Property implements resolve.Properties.
func (l Layered) Property(name string) (resolve.Value, error) {
	var errs []error
	for _, src := range l {
		if src == nil {
			continue
		}
		v, err := src.Property(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if v.Present() {
			return v, nil
		}
	}
	return resolve.None(), errors.Join(errs...)
}

// failed is a source that could not be loaded. Every lookup reports the
// load error so the resolver treats its properties as absent.
type failed struct {
	path string
	err  error
}

func (f failed) Property(string) (resolve.Value, error) {
	return resolve.None(), fmt.Errorf("reading %s: %w", f.path, f.err)
}

// Options selects the property sources for a project.
type Options struct {
	ProjectDir string
	// Assignments are -P name=value pairs; they take precedence over files.
	Assignments []string
	// HCLFile overrides <ProjectDir>/buildmeta.hcl when set.
	HCLFile string
}

// Load builds the layered property source for a project: -P assignments,
// then the HCL file, then gradle.properties. Missing files are skipped.
// Malformed assignments and a missing explicit HCL file are errors;
// unreadable files become sources whose lookups fail.
func Load(opts Options) (Layered, error) {
	assigned, err := ParseAssignments(opts.Assignments)
	if err != nil {
		return nil, err
	}

	hclPath := opts.HCLFile
	if hclPath == "" {
		hclPath = filepath.Join(opts.ProjectDir, HCLFileName)
	} else if _, err := os.Stat(hclPath); err != nil {
		return nil, fmt.Errorf("properties file: %w", err)
	}
	gradlePath := filepath.Join(opts.ProjectDir, GradleFileName)

	layers := Layered{assigned}
	layers = append(layers, fileSource(hclPath, LoadHCLFile))
	layers = append(layers, fileSource(gradlePath, LoadGradleFile))
	return layers, nil
}

func fileSource(path string, load func(string) (resolve.MapProperties, error)) resolve.Properties {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Debug().Str("path", path).Msg("property file not found, skipping")
			return nil
		}
		return failed{path: path, err: err}
	}

	m, err := load(path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("ignoring unreadable property file")
		return failed{path: path, err: err}
	}
	log.Debug().Str("path", path).Int("count", len(m)).Msg("loaded property file")
	return m
}
