package nodes

import (
	logs "github.com/danmuck/smplog"
)

// Delivery records one receiver acknowledgment during a broadcast.
type Delivery struct {
	ReceiverID int
	SenderID   int // immediate forwarding hop, not the originator
	Message    string
	Hop        int // distance from the origin, first peers are hop 1
}

// Trace is the ordered delivery record of a single broadcast.
type Trace struct {
	Origin     int
	Message    string
	Deliveries []Delivery
}

// Broadcast floods message from n to every reachable peer.
//
// The flood runs a FIFO worklist with a visited set keyed by node identity,
// so each non-receiver node is expanded at most once and cyclic topologies
// terminate instead of recursing without bound. Receivers are terminal: the
// message is handed to ReceiveMessage with the forwarding hop as sender and
// the branch stops there. Each receiver is delivered to at most once, by the
// first hop to reach it in traversal order. Peers are scanned in connection
// order, single goroutine, no locking.
func (n *Node) Broadcast(message string) *Trace {
	return n.BroadcastWithLimit(message, 0)
}

// BroadcastWithLimit is Broadcast with a hop ceiling; nodes at or beyond
// maxHops from the origin are not expanded, so deliveries occur up to hop
// maxHops. maxHops of 0 means unlimited.
func (n *Node) BroadcastWithLimit(message string, maxHops int) *Trace {
	logs.Debugf("Broadcast(origin=%d, maxHops=%d)", n.id, maxHops)
	trace := &Trace{
		Origin:  n.id,
		Message: message,
	}

	type step struct {
		node *Node
		hop  int
	}
	visited := map[*Node]bool{n: true}
	delivered := map[*Node]bool{}
	queue := []step{{node: n, hop: 0}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if maxHops > 0 && cur.hop >= maxHops {
			continue
		}

		for _, peer := range cur.node.peers {
			switch {
			case peer.role == Receiver:
				if delivered[peer] {
					continue
				}
				delivered[peer] = true
				peer.ReceiveMessage(message, cur.node)
				trace.Deliveries = append(trace.Deliveries, Delivery{
					ReceiverID: peer.id,
					SenderID:   cur.node.id,
					Message:    message,
					Hop:        cur.hop + 1,
				})

			case peer == cur.node:
				// self-edge, nothing to forward

			case visited[peer]:
				// already expanded or queued on another branch

			default:
				visited[peer] = true
				queue = append(queue, step{node: peer, hop: cur.hop + 1})
			}
		}
	}

	logs.Debugf("Broadcast(origin=%d): %d deliveries", n.id, len(trace.Deliveries))
	return trace
}
