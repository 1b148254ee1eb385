package boxmeta

import (
	"fmt"
	"strings"
)

// Separator splits the namespace from the box name in a qualified name.
const Separator = "/"

// Identity is the two-part name of a box, e.g. "acme/box1".
type Identity struct {
	Namespace string
	BoxName   string
}

// ParseIdentity splits a qualified name on the separator. Exactly one
// separator must be present and both halves must be non-empty.
func ParseIdentity(qualified string) (Identity, error) {
	parts := strings.Split(qualified, Separator)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Identity{}, fmt.Errorf("%w: box name %q must have the form namespace%sname",
			ErrConfig, qualified, Separator)
	}
	return Identity{Namespace: parts[0], BoxName: parts[1]}, nil
}

// Qualified reassembles the full name.
func (id Identity) Qualified() string {
	return id.Namespace + Separator + id.BoxName
}

// Sanitized returns the qualified name with every separator replaced by an
// underscore, suitable for use in a filename.
func (id Identity) Sanitized() string {
	return strings.ReplaceAll(id.Qualified(), Separator, "_")
}
