package validate

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidateAgainstSchema checks data (a JSON document) against the given JSON
// schema. name is the resource name the schema compiles under; ref may point
// at a sub-schema inside it, or be empty for the root.
func ValidateAgainstSchema(name string, schema []byte, data []byte, ref string) error {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, bytes.NewReader(schema)); err != nil {
		return fmt.Errorf("adding schema resource %s: %w", name, err)
	}

	target := name
	if ref != "" {
		target = name + ref
	}
	sch, err := compiler.Compile(target)
	if err != nil {
		return fmt.Errorf("compiling schema %s: %w", target, err)
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing document: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
