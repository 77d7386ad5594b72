// gen_topology emits canned topology files for floodnet runs.
//
// Usage:
//
//	go run cmd/gen_topology/main.go -shape chain -n 5 -out chain.toml
//
// Shapes: chain (sender chain ending in a receiver), star (sender hub with
// receiver leaves), ring (senders only, a closed cycle), mesh (fully
// connected senders plus one receiver).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/floodnet/cmd/internal/logcfg"
	"github.com/danmuck/floodnet/src/api/nodes"
	"github.com/danmuck/floodnet/src/topology"
	logs "github.com/danmuck/smplog"
)

func main() {
	logs.Configure(logcfg.Load())

	shape := flag.String("shape", "chain", "topology shape: chain, star, ring, mesh")
	n := flag.Int("n", 4, "number of nodes")
	out := flag.String("out", "", "output path (TOML)")
	flag.Parse()

	if *out == "" || *n < 2 {
		flag.Usage()
		os.Exit(1)
	}

	spec, err := generate(*shape, *n)
	if err != nil {
		logs.Fatalf(err, "failed to generate topology")
	}

	f, err := os.Create(*out)
	if err != nil {
		logs.Fatalf(err, "failed to create %s", *out)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	encoder.Indent = "  "
	if err := encoder.Encode(spec); err != nil {
		logs.Fatalf(err, "failed to encode topology")
	}

	logs.Printf("wrote %s topology: %d node(s), %d link(s) -> %s\n",
		*shape, len(spec.Nodes), len(spec.Links), *out)
}

func generate(shape string, n int) (*topology.Spec, error) {
	spec := &topology.Spec{}

	name := func(i int) string { return fmt.Sprintf("n%d", i+1) }
	add := func(i int, role nodes.Role) {
		spec.Nodes = append(spec.Nodes, topology.NodeSpec{
			Name: name(i),
			ID:   i + 1,
			Role: string(role),
		})
	}
	link := func(a, b int) {
		spec.Links = append(spec.Links, topology.LinkSpec{A: name(a), B: name(b)})
	}

	switch shape {
	case "chain":
		for i := 0; i < n-1; i++ {
			add(i, nodes.Sender)
		}
		add(n-1, nodes.Receiver)
		for i := 0; i < n-1; i++ {
			link(i, i+1)
		}

	case "star":
		add(0, nodes.Sender)
		for i := 1; i < n; i++ {
			add(i, nodes.Receiver)
			link(0, i)
		}

	case "ring":
		for i := 0; i < n; i++ {
			add(i, nodes.Sender)
		}
		for i := 0; i < n; i++ {
			link(i, (i+1)%n)
		}

	case "mesh":
		for i := 0; i < n-1; i++ {
			add(i, nodes.Sender)
		}
		add(n-1, nodes.Receiver)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(i, j)
			}
		}

	default:
		return nil, fmt.Errorf("unknown shape %q", shape)
	}

	return spec, nil
}
