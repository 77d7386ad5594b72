package api

import (
	"github.com/danmuck/floodnet/src/api/nodes"
)

// Generic peer interface
// This interface is the base behavior of a peer in the network
// Role-specific behavior (encrypt, initiate, generate) extends this
type Peer interface {
	ID() int                               // externally supplied id, not unique
	Role() nodes.Role                      // current role of the peer
	Peers() []*nodes.Node                  // connected peers in connection order
	Connect(other *nodes.Node)             // symmetric idempotent link
	SetRole(role nodes.Role) error         // fails for word generators
	Broadcast(message string) *nodes.Trace // flood to all reachable peers
}

// Broadcaster interface for nodes that originate messages
type Broadcaster interface {
	Peer
	InitiateMessage(message string) // prepare and originate a message
}

// Directory interface for addressing nodes by name or id
type Directory interface {
	Insert(name string, node *nodes.Node) error // register under a unique name
	Lookup(name string) (*nodes.Node, error)    // lookup node by its name
	LookupID(id int) []*nodes.Node              // every node carrying id
	Names() []string                            // registered names in order
	Size() int                                  // number of registered nodes
}

var (
	_ Broadcaster = (*nodes.Node)(nil)
	_ Directory   = (*nodes.Registry)(nil)
)
