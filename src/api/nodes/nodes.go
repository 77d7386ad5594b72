package nodes

import (
	"errors"
	"fmt"
	"io"
	"os"

	logs "github.com/danmuck/smplog"
)

// ErrRoleLocked is returned when reassigning the role of a word generator.
// Word-generator identity is permanent once assigned.
var ErrRoleLocked = errors.New("word_generator role cannot be changed")

// Node is a peer in the simulated network.
//
// The id is externally supplied and NOT required to be unique; two distinct
// Node values sharing an id are distinct peers everywhere identity matters.
// Peer links are symmetric and ordered by connection time. There is no
// disconnect; a Node lives as long as whoever built it keeps a reference.
type Node struct {
	id     int
	role   Role
	peers  []*Node
	notice io.Writer // receiver acknowledgment sink, stdout unless overridden
}

// New returns a Node with the given id and role, acknowledging to stdout.
func New(id int, role Role) *Node {
	return &Node{
		id:     id,
		role:   role,
		notice: os.Stdout,
	}
}

// role-specific constructors

func NewEncrypter(id int) *Node { return New(id, Encrypter) }

func NewSender(id int) *Node { return New(id, Sender) }

func NewReceiver(id int) *Node { return New(id, Receiver) }

// NewWordGenerator builds a node whose role is fixed for its lifetime.
func NewWordGenerator(id int) *Node { return New(id, WordGenerator) }

func (n *Node) ID() int {
	return n.id
}

func (n *Node) Role() Role {
	return n.role
}

// Peers returns the connected peers in connection order.
func (n *Node) Peers() []*Node {
	out := make([]*Node, len(n.peers))
	copy(out, n.peers)
	return out
}

// SetNoticeWriter redirects receiver acknowledgments, mainly for tests.
func (n *Node) SetNoticeWriter(w io.Writer) {
	n.notice = w
}

// Connect establishes a two-way link with other. The link is deduplicated by
// node identity, never by id value, and a repeat call is a no-op. Connecting
// a node to itself is not rejected; the resulting self-edge is skipped during
// dispatch.
func (n *Node) Connect(other *Node) {
	if other == nil || n.hasPeer(other) {
		return
	}
	n.peers = append(n.peers, other)
	other.Connect(n) // reciprocal side, terminates on the hasPeer check
}

func (n *Node) hasPeer(other *Node) bool {
	for _, p := range n.peers {
		if p == other {
			return true
		}
	}
	return false
}

// SetRole assigns a new role unconditionally, except that a word generator
// keeps its role forever and the call fails without mutating anything.
func (n *Node) SetRole(role Role) error {
	if n.role == WordGenerator {
		return ErrRoleLocked
	}
	n.role = role
	return nil
}

// ReceiveMessage is the terminal handler for receiver-role nodes. sender is
// the immediate forwarding hop, not the broadcast originator.
func (n *Node) ReceiveMessage(message string, sender *Node) {
	logs.Debugf("ReceiveMessage(%d <- %d)", n.id, sender.id)
	fmt.Fprintf(n.notice, "Receiver id=%d received a message from sender id=%d: %s\n", n.id, sender.id, message)
}

// EncryptMessage is a declared extension point for encrypter nodes.
// Encryption itself is out of scope here; implementations plug in above this
// model.
func (n *Node) EncryptMessage(message string) string {
	return ""
}

// InitiateMessage is a declared extension point for sender nodes.
func (n *Node) InitiateMessage(message string) {
}

// GenerateWord is a declared extension point for word-generator nodes.
func (n *Node) GenerateWord() string {
	return ""
}

func (n *Node) String() string {
	return fmt.Sprintf("Node id=%d, Role=%s", n.id, n.role)
}
