package boxmeta

import (
	"encoding/json"
	"fmt"

	"github.com/open-edge-platform/vm-box-publisher/internal/utils/validate"
)

// indexSchema is the wire contract for metadata.json. Anything the remote
// serves that fails this shape is treated as corruption, not coerced.
const indexSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["name", "versions"],
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "versions": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["version", "providers"],
        "properties": {
          "version": {"type": "string", "minLength": 1},
          "providers": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name", "url", "checksum", "checksum_type"],
              "properties": {
                "name": {"type": "string"},
                "url": {"type": "string"},
                "checksum": {"type": "string"},
                "checksum_type": {"type": "string"}
              }
            }
          }
        }
      }
    }
  }
}`

// Provider describes one downloadable artifact of a version: which
// virtualization backend it targets, where to get it, and how to verify it.
type Provider struct {
	Name         string `json:"name"`
	URL          string `json:"url"`
	Checksum     string `json:"checksum"`
	ChecksumType string `json:"checksum_type"`
}

// Version is one published release of a box. The wire shape allows multiple
// providers per version even though a single run only ever appends one.
type Version struct {
	Version   string     `json:"version"`
	Providers []Provider `json:"providers"`
}

// Index is the metadata.json document enumerating every published version of
// a box. Versions are append-only across runs: existing entries are never
// mutated, removed, or reordered.
type Index struct {
	Name     string    `json:"name"`
	Versions []Version `json:"versions"`
}

// NewIndex constructs an empty index for a box that has never been published.
func NewIndex(qualifiedName string) *Index {
	return &Index{Name: qualifiedName, Versions: []Version{}}
}

// ParseIndex validates raw bytes against the metadata schema and unmarshals
// them. Any schema or JSON failure is ErrCorrupt.
func ParseIndex(data []byte) (*Index, error) {
	if err := validate.ValidateAgainstSchema("metadata.schema.json", []byte(indexSchema), data, ""); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if idx.Versions == nil {
		idx.Versions = []Version{}
	}
	return &idx, nil
}

// Append adds one new version entry holding a single provider descriptor.
// Existing entries are untouched and keep their order.
func (idx *Index) Append(version string, provider Provider) {
	idx.Versions = append(idx.Versions, Version{
		Version:   version,
		Providers: []Provider{provider},
	})
}

// HasVersion reports whether a version string is already listed.
func (idx *Index) HasVersion(version string) bool {
	for _, v := range idx.Versions {
		if v.Version == version {
			return true
		}
	}
	return false
}

// Marshal serializes the index as pretty-printed JSON with a trailing
// newline, the form written to metadata.json.
func (idx *Index) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing index: %w", err)
	}
	return append(data, '\n'), nil
}
