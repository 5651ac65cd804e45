// Package config loads .readage.yml files.
package config

import (
	"fmt"
	"strings"

	"github.com/jeduden/readage/internal/readability"
	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	Algorithms  Selection `yaml:"algorithms,omitempty"`
	MaxAge      float64   `yaml:"max-age,omitempty"`
	Markdown    *bool     `yaml:"markdown,omitempty"`
	FrontMatter *bool     `yaml:"front-matter,omitempty"`
	Files       []string  `yaml:"files,omitempty"`
	Ignore      []string  `yaml:"ignore,omitempty"`

	// NoFollowSymlinks lists glob patterns of symlinks skipped when
	// walking directories and expanding globs.
	NoFollowSymlinks []string `yaml:"no-follow-symlinks,omitempty"`

	Overrides []Override `yaml:"overrides,omitempty"`
}

// Override applies an algorithm selection to files matching glob patterns.
type Override struct {
	Files      []string  `yaml:"files"`
	Algorithms Selection `yaml:"algorithms,omitempty"`
}

// Selection is a YAML union naming the algorithms to run. Set is false
// when the key was absent.
type Selection struct {
	Set   bool
	Names []string
}

// Select returns a Selection of the given names.
func Select(names ...string) Selection {
	return Selection{Set: true, Names: names}
}

// UnmarshalYAML implements custom YAML unmarshalling for Selection.
// It handles three forms:
//   - all / ari       -> Names=[all] / [ari]
//   - [ari, fk]       -> Names=[ari fk]
//   - {ari: true, fk: false} -> Names=[ari]
func (s *Selection) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var name string
		if err := value.Decode(&name); err != nil {
			return fmt.Errorf("invalid algorithm selection: %w", err)
		}
		s.Set = true
		s.Names = []string{name}
		return nil
	case yaml.SequenceNode:
		var names []string
		if err := value.Decode(&names); err != nil {
			return fmt.Errorf("invalid algorithm selection: %w", err)
		}
		s.Set = true
		s.Names = names
		return nil
	case yaml.MappingNode:
		names := []string{}
		for i := 0; i+1 < len(value.Content); i += 2 {
			var enabled bool
			if err := value.Content[i+1].Decode(&enabled); err != nil {
				return fmt.Errorf("algorithm %q: must be a bool: %w", value.Content[i].Value, err)
			}
			if enabled {
				names = append(names, value.Content[i].Value)
			}
		}
		s.Set = true
		s.Names = names
		return nil
	}

	return fmt.Errorf("algorithms must be a name, a list or a mapping, got %v", value.Kind)
}

// MarshalYAML writes the selection as a list of names.
func (s Selection) MarshalYAML() (any, error) {
	if !s.Set {
		return nil, nil
	}
	return s.Names, nil
}

// IsZero lets omitempty drop an unset selection.
func (s Selection) IsZero() bool {
	return !s.Set
}

// Resolve maps the selection to algorithms. An unset selection means
// every algorithm; a selection that names nothing is an error.
func (s Selection) Resolve() ([]readability.Algorithm, error) {
	if !s.Set {
		return readability.All(), nil
	}
	if len(s.Names) == 0 {
		return nil, readability.ErrEmptySelection
	}
	return readability.Resolve(s.Names)
}

// String renders the selection as a comma-separated list.
func (s Selection) String() string {
	if !s.Set {
		return "all"
	}
	return strings.Join(s.Names, ",")
}
