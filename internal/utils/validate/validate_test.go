package validate

import (
	"strings"
	"testing"
)

var basicSchema = []byte(`{
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"version": {"type": "string"}
	},
	"required": ["name"]
}`)

func TestValidateAgainstSchemaAccepts(t *testing.T) {
	err := ValidateAgainstSchema("test.schema.json", basicSchema,
		[]byte(`{"name": "test", "version": "1.0"}`), "")
	if err != nil {
		t.Fatalf("Expected valid document, got: %v", err)
	}
}

func TestValidateAgainstSchemaRejectsMissingRequired(t *testing.T) {
	err := ValidateAgainstSchema("test.schema.json", basicSchema,
		[]byte(`{"version": "1.0"}`), "")
	if err == nil {
		t.Fatal("Expected error for missing required field, got none")
	}
	if !strings.Contains(err.Error(), "schema validation") {
		t.Errorf("Expected a schema validation error, got: %v", err)
	}
}

func TestValidateAgainstSchemaRejectsInvalidJSON(t *testing.T) {
	err := ValidateAgainstSchema("test.schema.json", basicSchema,
		[]byte(`invalid json`), "")
	if err == nil {
		t.Fatal("Expected error for invalid JSON, got none")
	}
}
