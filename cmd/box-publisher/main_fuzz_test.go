package main

import (
	"testing"
)

// FuzzCreateRootCommand tests root command creation with various global flag values
func FuzzCreateRootCommand(f *testing.F) {
	// Seed with various flag combinations
	f.Add("", "")
	f.Add("/tmp/config.yml", "info")
	f.Add("invalid/path", "debug")
	f.Add("/dev/null", "invalid-level")
	f.Add("very-long-config-path-that-might-cause-issues", "error")
	f.Add("", "trace")

	f.Fuzz(func(t *testing.T, configPath string, logLevelValue string) {
		originalConfigFile := configFile
		originalLogLevel := logLevel

		defer func() {
			configFile = originalConfigFile
			logLevel = originalLogLevel
		}()

		configFile = configPath
		logLevel = logLevelValue

		// Command construction must not crash regardless of global state
		cmd := createRootCommand()
		if cmd == nil {
			t.Fatal("createRootCommand returned nil")
		}
		if cmd.Use == "" {
			t.Error("Command Use field is empty")
		}
		if cmd.Short == "" {
			t.Error("Command Short description is empty")
		}
		if cmd.Flags().Lookup("name") == nil {
			t.Error("Publish flags were not attached")
		}
	})
}
