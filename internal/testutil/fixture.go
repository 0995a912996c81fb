package testutil

import (
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

// Scenario is one parse case from a YAML fixture file.
type Scenario struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	// Blocks lists the expected block summaries (see Summary). When
	// SyntaxOnly is set, layout blocks are left out.
	Blocks     []string `yaml:"blocks"`
	SyntaxOnly bool     `yaml:"syntax_only"`
	// Error names the expected failure: unexpected, premature,
	// unsupported or linkage. Empty means the parse succeeds.
	Error string `yaml:"error"`
	// State is the state named by a premature end.
	State string `yaml:"state"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// LoadScenarios loads a YAML scenario file.
func LoadScenarios(t testing.TB, path string) []Scenario {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read scenarios %s: %v", path, err)
	}
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		t.Fatalf("failed to parse scenarios %s: %v", path, err)
	}
	if len(f.Scenarios) == 0 {
		t.Fatalf("no scenarios in %s", path)
	}
	return f.Scenarios
}
