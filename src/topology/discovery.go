package topology

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// TOMLSource loads a topology from a TOML file with [[node]] and [[link]]
// tables.
type TOMLSource struct {
	Path string
}

func (s *TOMLSource) Discover() (*Spec, error) {
	var spec Spec
	if _, err := toml.DecodeFile(s.Path, &spec); err != nil {
		return nil, fmt.Errorf("failed to decode topology file: %w", err)
	}
	return &spec, nil
}

// YAMLSource loads a topology from a YAML file with nodes: and links:
// sequences.
type YAMLSource struct {
	Path string
}

func (s *YAMLSource) Discover() (*Spec, error) {
	yamlBytes, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("error reading topology file: %w", err)
	}

	var spec Spec
	if err = yaml.Unmarshal(yamlBytes, &spec); err != nil {
		return nil, fmt.Errorf("error deserialising topology file: %w", err)
	}
	return &spec, nil
}

// FromFile picks a source by file extension. TOML is the default when the
// extension is unrecognized.
func FromFile(path string) Source {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return &YAMLSource{Path: path}
	default:
		return &TOMLSource{Path: path}
	}
}
