package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/misectl/misectl/src/internal/config"
	"gopkg.in/yaml.v3"
)

// stdout receives command results; status messages go through ui to stderr
var stdout io.Writer = os.Stdout

// currentOutput returns the configured output format
func currentOutput() string {
	if settings == nil || settings.Output == "" {
		return config.OutputTable
	}
	return settings.Output
}

// render writes value as JSON or YAML when requested, otherwise calls table
func render(value interface{}, table func()) error {
	switch currentOutput() {
	case config.OutputJSON:
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case config.OutputYAML:
		encoder := yaml.NewEncoder(stdout)
		encoder.SetIndent(2)
		if err := encoder.Encode(value); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	default:
		table()
		return nil
	}
}

// structured reports whether output is machine readable
func structured() bool {
	return currentOutput() != config.OutputTable
}

func printTable(rendered string) {
	fmt.Fprintln(stdout, rendered)
}
