package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/open-edge-platform/vm-box-publisher/internal/boxmeta"
	"github.com/open-edge-platform/vm-box-publisher/internal/utils/validate"
)

// configSchema bounds what a config file may contain. Validation happens on
// the JSON form of the YAML document.
const configSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "logging": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "level": {"type": "string", "enum": ["debug", "info", "warn", "error"]}
      }
    },
    "http_timeout_seconds": {"type": "integer", "minimum": 1},
    "verify_artifact": {"type": "boolean"},
    "provider": {"type": "string"},
    "export_command": {"type": "string"}
  }
}`

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// GlobalConfig is the optional YAML configuration of the publisher. Every
// field has a default; a run with no config file at all is fully supported.
type GlobalConfig struct {
	Logging            LoggingConfig `yaml:"logging" json:"logging"`
	HTTPTimeoutSeconds int           `yaml:"http_timeout_seconds" json:"http_timeout_seconds"`
	VerifyArtifact     bool          `yaml:"verify_artifact" json:"verify_artifact"`
	Provider           string        `yaml:"provider" json:"provider"`
	ExportCommand      string        `yaml:"export_command" json:"export_command"`
}

// DefaultConfig returns the built-in settings used when no config file is
// given.
func DefaultConfig() *GlobalConfig {
	return &GlobalConfig{
		Logging:            LoggingConfig{Level: "info"},
		HTTPTimeoutSeconds: 60,
		VerifyArtifact:     true,
		Provider:           "virtualbox",
	}
}

// Load reads and validates the YAML config at path, layered over the
// defaults. An empty path returns the defaults untouched; a path that
// cannot be read is a configuration error, not a silent fallback.
func Load(path string) (*GlobalConfig, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading config %q: %v", boxmeta.ErrConfig, path, err)
	}

	jsonDoc, err := sigsyaml.YAMLToJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: config %q is not valid YAML: %v", boxmeta.ErrConfig, path, err)
	}
	if err := validate.ValidateAgainstSchema("config.schema.json", []byte(configSchema), jsonDoc, ""); err != nil {
		return nil, fmt.Errorf("%w: config %q: %v", boxmeta.ErrConfig, path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("%w: config %q: %v", boxmeta.ErrConfig, path, err)
	}
	return cfg, nil
}
