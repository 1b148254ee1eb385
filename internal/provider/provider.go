package provider

import (
	"fmt"
	"strings"
)

// Provider is the interface every virtualization backend must implement.
type Provider interface {
	// Name is a unique ID, e.g. "virtualbox".
	Name() string

	// Extension is the artifact filename extension including the dot.
	Extension() string

	// ChecksumType names the digest algorithm recorded in the index for
	// artifacts exported by this provider.
	ChecksumType() string

	// ExportCommand returns the external command line that exports the VM
	// named boxName into outputPath.
	ExportCommand(boxName string, outputPath string) string
}

var (
	providers = make(map[string]Provider)
)

// Register makes a Provider available under its Name().
func Register(p Provider) {
	providers[p.Name()] = p
}

// Get returns the Provider by name.
func Get(name string) (Provider, bool) {
	p, ok := providers[name]
	return p, ok
}

// Names lists the registered provider names, for error messages.
func Names() string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	return strings.Join(names, ", ")
}

// MustGet returns the Provider by name or an error naming the alternatives.
func MustGet(name string) (Provider, error) {
	p, ok := Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown provider %q (registered: %s)", name, Names())
	}
	return p, nil
}
