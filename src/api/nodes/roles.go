package nodes

import "fmt"

type Role string

// Closed set of node roles in the network
const (
	Encrypter     Role = "encrypter"
	Sender        Role = "sender"
	Receiver      Role = "receiver"
	WordGenerator Role = "word_generator"
)

// ParseRole maps a config-file role string onto the closed Role set
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case Encrypter, Sender, Receiver, WordGenerator:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

func (r Role) Valid() bool {
	switch r {
	case Encrypter, Sender, Receiver, WordGenerator:
		return true
	}
	return false
}
