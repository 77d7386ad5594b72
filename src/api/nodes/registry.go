package nodes

import (
	"errors"
	"sync"
)

// Registry is a name-keyed directory of nodes, used by topology loaders and
// the CLI to address nodes. Names are unique; ids are not, so lookup by id
// returns every match.
type Registry struct {
	mu    sync.Mutex
	order []string
	nodes map[string]*Node
}

func NewRegistry() *Registry {
	return &Registry{
		nodes: make(map[string]*Node),
	}
}

func (r *Registry) Insert(name string, node *Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.nodes[name]; exists {
		return errors.New("node already exists")
	}

	r.order = append(r.order, name)
	r.nodes[name] = node
	return nil
}

func (r *Registry) Lookup(name string) (*Node, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	node, exists := r.nodes[name]
	if !exists {
		return nil, errors.New("node not found")
	}
	return node, nil
}

// LookupID returns all registered nodes carrying id, in insertion order.
func (r *Registry) LookupID(id int) []*Node {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*Node
	for _, name := range r.order {
		if r.nodes[name].ID() == id {
			out = append(out, r.nodes[name])
		}
	}
	return out
}

// Names returns registered names in insertion order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.nodes)
}
