package registry

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-loom/loom/pkg/errors"
)

// supportedSchemaMajor is the manifest schema major version this build of
// Loom understands.
const supportedSchemaMajor = "v1"

// Manifest is the optional loom.yaml capability manifest. It lets a
// component pack ship its controllable-property declarations as data instead
// of init() calls:
//
//	schema: v1.0.0
//	elements:
//	  - tag: color-picker
//	    capabilities:
//	      - property: value
//	        events: [input]
type Manifest struct {
	Schema   string          `yaml:"schema"`
	Elements []ManifestEntry `yaml:"elements"`
}

// ManifestEntry declares the capabilities of one custom element tag.
type ManifestEntry struct {
	Tag          string               `yaml:"tag"`
	Capabilities []ManifestCapability `yaml:"capabilities"`
}

// ManifestCapability is the YAML form of a Capability.
type ManifestCapability struct {
	Property string   `yaml:"property"`
	Events   []string `yaml:"events"`
}

// ParseManifest decodes and validates manifest bytes. path is used only for
// error reporting.
func ParseManifest(path string, data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &errors.ManifestError{Path: path, Err: fmt.Errorf("failed to parse manifest: %w", err)}
	}
	if err := m.validate(path); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadManifest reads, decodes and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ManifestError{Path: path, Err: err}
	}
	return ParseManifest(path, data)
}

func (m *Manifest) validate(path string) error {
	schema := strings.TrimSpace(m.Schema)
	if schema == "" {
		return &errors.ManifestError{Path: path, Err: fmt.Errorf("missing schema version")}
	}
	if !semver.IsValid(schema) {
		return &errors.ManifestError{Path: path, Err: fmt.Errorf("schema %q is not a valid semantic version", schema)}
	}
	if semver.Major(schema) != supportedSchemaMajor {
		return &errors.ManifestError{Path: path, Err: fmt.Errorf("schema %s is not supported (want major %s)", schema, supportedSchemaMajor)}
	}
	seen := make(map[string]struct{})
	for _, entry := range m.Elements {
		tag := strings.ToLower(strings.TrimSpace(entry.Tag))
		if tag == "" {
			return &errors.ManifestError{Path: path, Err: fmt.Errorf("entry with empty tag")}
		}
		if _, dup := seen[tag]; dup {
			return &errors.ManifestError{Path: path, Tag: tag, Err: fmt.Errorf("duplicate entry")}
		}
		seen[tag] = struct{}{}
		if len(entry.Capabilities) == 0 {
			return &errors.ManifestError{Path: path, Tag: tag, Err: fmt.Errorf("no capabilities declared")}
		}
		props := make(map[string]struct{})
		for _, mc := range entry.Capabilities {
			cap := Capability{Property: mc.Property, Events: mc.Events}
			if err := cap.validate(tag); err != nil {
				return &errors.ManifestError{Path: path, Tag: tag, Err: err}
			}
			if _, dup := props[mc.Property]; dup {
				return &errors.ManifestError{Path: path, Tag: tag, Err: fmt.Errorf("duplicate capability for property %q", mc.Property)}
			}
			props[mc.Property] = struct{}{}
		}
	}
	return nil
}

// Apply replaces the registry contents with the manifest's declarations.
// The swap is atomic: lookups see either the old or the new set, never a
// partial mix.
func (r *Registry) Apply(m *Manifest) {
	caps := make(map[string][]Capability, len(m.Elements))
	for _, entry := range m.Elements {
		tag := strings.ToLower(strings.TrimSpace(entry.Tag))
		for _, mc := range entry.Capabilities {
			caps[tag] = append(caps[tag], Capability{Property: mc.Property, Events: mc.Events})
		}
	}
	r.replaceAll(caps)
}

// LoadFile loads a manifest file into the registry, replacing its contents.
func (r *Registry) LoadFile(path string) error {
	m, err := LoadManifest(path)
	if err != nil {
		return err
	}
	r.Apply(m)
	return nil
}
