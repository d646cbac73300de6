package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type overlayFile struct {
	Tests []Entry `yaml:"tests"`
}

// LoadOverlay reads extra catalog entries from a YAML file:
//
//	tests:
//	  - id: LP-A
//	    synonyms: ["lipoprotein(a)", "lp(a)"]
//	    range: {low: 0, high: 30, unit: mg/dL}
//
// Entries whose id already exists replace the built-in entry.
func LoadOverlay(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog overlay: %w", err)
	}
	var f overlayFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog overlay: %w", err)
	}
	return f.Tests, nil
}
