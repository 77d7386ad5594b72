package topology

import (
	"fmt"

	logs "github.com/danmuck/smplog"

	"github.com/danmuck/floodnet/src/api/nodes"
)

// All topology sources should implement this interface
type Source interface {
	Discover() (*Spec, error) // load a declarative topology description
}

// NodeSpec declares a single node. Names address nodes within the file and
// must be unique there; ids are carried onto the nodes unchecked, duplicates
// included.
type NodeSpec struct {
	Name string `toml:"name" yaml:"name"`
	ID   int    `toml:"id" yaml:"id"`
	Role string `toml:"role" yaml:"role"`
}

// LinkSpec declares one symmetric edge between two declared node names.
type LinkSpec struct {
	A string `toml:"a" yaml:"a"`
	B string `toml:"b" yaml:"b"`
}

// Spec is the declarative form of a network topology.
type Spec struct {
	Nodes []NodeSpec `toml:"node" yaml:"nodes"`
	Links []LinkSpec `toml:"link" yaml:"links"`
}

// Validate checks the declaration without building anything.
func (s *Spec) Validate() error {
	if len(s.Nodes) == 0 {
		return fmt.Errorf("topology declares no nodes")
	}

	seen := make(map[string]bool, len(s.Nodes))
	for i, n := range s.Nodes {
		if n.Name == "" {
			return fmt.Errorf("node %d: missing name", i)
		}
		if seen[n.Name] {
			return fmt.Errorf("node %d: duplicate name %q", i, n.Name)
		}
		seen[n.Name] = true

		if _, err := nodes.ParseRole(n.Role); err != nil {
			return fmt.Errorf("node %q: %w", n.Name, err)
		}
	}

	for i, l := range s.Links {
		if !seen[l.A] {
			return fmt.Errorf("link %d: unknown node %q", i, l.A)
		}
		if !seen[l.B] {
			return fmt.Errorf("link %d: unknown node %q", i, l.B)
		}
	}
	return nil
}

// Build validates the spec and constructs the peer graph, returning a
// registry keyed by declared name. Links connect in declaration order, so
// peer-list order follows the file.
func (s *Spec) Build() (*nodes.Registry, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	registry := nodes.NewRegistry()
	for _, n := range s.Nodes {
		role, _ := nodes.ParseRole(n.Role) // validated above
		if err := registry.Insert(n.Name, nodes.New(n.ID, role)); err != nil {
			return nil, fmt.Errorf("node %q: %w", n.Name, err)
		}
	}

	for _, l := range s.Links {
		a, _ := registry.Lookup(l.A)
		b, _ := registry.Lookup(l.B)
		a.Connect(b)
	}

	logs.Debugf("Build(): %d nodes, %d links", len(s.Nodes), len(s.Links))
	return registry, nil
}

// FirstSender returns the name of the first declared sender-role node,
// the default broadcast origin for the CLI.
func (s *Spec) FirstSender() (string, bool) {
	for _, n := range s.Nodes {
		if nodes.Role(n.Role) == nodes.Sender {
			return n.Name, true
		}
	}
	return "", false
}
