package main

import (
	"errors"
	"flag"
	"os"

	"github.com/danmuck/floodnet/cmd/internal/logcfg"
	"github.com/danmuck/floodnet/src/api"
	"github.com/danmuck/floodnet/src/api/capture"
	"github.com/danmuck/floodnet/src/topology"
	logs "github.com/danmuck/smplog"
)

func main() {
	logs.Configure(logcfg.Load())

	topologyPath := flag.String("topology", "", "topology file (.toml, .yaml)")
	from := flag.String("from", "", "origin node name (default: first declared sender)")
	message := flag.String("message", "hello", "message to broadcast")
	capturePath := flag.String("capture", "", "write the delivery trace to this file")
	maxHops := flag.Int("max-hops", 0, "hop ceiling for the flood, 0 for unlimited")
	flag.Parse()

	if *topologyPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	spec, err := topology.FromFile(*topologyPath).Discover()
	if err != nil {
		logs.Fatalf(err, "failed to load topology %s", *topologyPath)
	}

	registry, err := spec.Build()
	if err != nil {
		logs.Fatalf(err, "failed to build topology")
	}
	var directory api.Directory = registry
	logs.Infof("topology ready: %d node(s), %d link(s)", directory.Size(), len(spec.Links))

	origin := *from
	if origin == "" {
		name, ok := spec.FirstSender()
		if !ok {
			logs.Fatalf(errors.New("no sender-role node declared"), "cannot pick a broadcast origin")
		}
		origin = name
	}

	node, err := directory.Lookup(origin)
	if err != nil {
		logs.Fatalf(err, "unknown origin %q", origin)
	}

	logs.Titlef("--[ floodnet | origin %s ]--\n", origin)
	trace := node.BroadcastWithLimit(*message, *maxHops)
	logs.Printf("broadcast done: %s, %d delivery(s)\n", node, len(trace.Deliveries))

	if *capturePath == "" {
		return
	}
	f, err := os.Create(*capturePath)
	if err != nil {
		logs.Fatalf(err, "failed to create capture file %s", *capturePath)
	}
	defer f.Close()
	if err := capture.WriteTrace(f, trace); err != nil {
		logs.Fatalf(err, "failed to write capture")
	}
	logs.Infof("trace captured to %s", *capturePath)
}
