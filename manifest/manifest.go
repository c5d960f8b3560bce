// Package manifest defines the plugin manifest embedded into standalone
// plugin modules as a "manifest" custom section.
package manifest

import (
	"os"

	"github.com/coreos/go-semver/semver"
	json "github.com/goccy/go-json"

	"github.com/wippyai/wasmstamp/errors"
)

// Manifest describes a plugin's identity and requirements. The loader
// on the platform side reads the same structure back out of the wasm
// custom section.
type Manifest struct {
	// Name is the plugin's unique identifier.
	Name string `json:"name"`

	// Version is the plugin version (semver).
	Version string `json:"version"`

	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Homepage    string `json:"homepage,omitempty"`
	License     string `json:"license,omitempty"`

	// MinPlatformVersion is the minimum host version required, if any.
	MinPlatformVersion string `json:"min_platform_version,omitempty"`

	Dependencies []Dependency `json:"dependencies,omitempty"`
	Permissions  []string     `json:"permissions,omitempty"`

	// WasmEntry names the exported entry function for wasm plugins.
	WasmEntry string `json:"wasm_entry,omitempty"`

	// Config carries free-form plugin configuration, passed through
	// untouched.
	Config json.RawMessage `json:"config,omitempty"`
}

// Dependency is a version requirement on another plugin.
type Dependency struct {
	Name     string `json:"name"`
	Version  string `json:"version"`
	Optional bool   `json:"optional,omitempty"`
}

// Decode parses a manifest from JSON bytes.
func Decode(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "parse manifest")
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.IO(errors.PhaseLoad, "read manifest", err)
	}
	return Decode(data)
}

// Encode renders the manifest as indented JSON.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "encode manifest")
	}
	return data, nil
}

// Validate checks the fields the platform rejects a plugin on: a
// well-formed name, semver version fields, and complete dependency
// entries. Everything else is permitted.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return errors.InvalidData(errors.PhaseLoad, []string{"name"}, "plugin name is required")
	}
	if !validName(m.Name) {
		return errors.InvalidData(errors.PhaseLoad, []string{"name"},
			"plugin name must contain only alphanumeric characters, hyphens, and underscores")
	}

	if m.Version == "" {
		return errors.InvalidData(errors.PhaseLoad, []string{"version"}, "plugin version is required")
	}
	if _, err := semver.NewVersion(m.Version); err != nil {
		return errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Path("version").
			Cause(err).
			Detail("invalid plugin version %q", m.Version).
			Build()
	}

	if m.MinPlatformVersion != "" {
		if _, err := semver.NewVersion(m.MinPlatformVersion); err != nil {
			return errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Path("min_platform_version").
				Cause(err).
				Detail("invalid version %q", m.MinPlatformVersion).
				Build()
		}
	}

	for i, dep := range m.Dependencies {
		if dep.Name == "" {
			return errors.InvalidData(errors.PhaseLoad, []string{"dependencies"}, "dependency name is required")
		}
		if dep.Version == "" {
			return errors.InvalidData(errors.PhaseLoad, []string{"dependencies", dep.Name}, "dependency version is required")
		}
		if _, err := semver.NewVersion(dep.Version); err != nil {
			return errors.New(errors.PhaseLoad, errors.KindInvalidData).
				Path("dependencies", dep.Name).
				Cause(err).
				Detail("invalid dependency version %q (entry %d)", dep.Version, i).
				Build()
		}
	}

	return nil
}

func validName(name string) bool {
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '_':
		default:
			return false
		}
	}
	return len(name) > 0
}
