package amplicon

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Pipeline defaults, overridable per run from a YAML file.
const (
	// MCPMaxLineCount caps the windows accumulated by FetchMCP.
	MCPMaxLineCount = 300_000

	// DefaultConsThreshold is the minimum cumulative proportion of reads the
	// selected base set must explain at each consensus position.
	DefaultConsThreshold = 0.80

	MinOverlap                  = 0.95
	MinSeqCount                 = 5000
	MaxErrorProportion          = 0.01
	MaxInternalPrimerProportion = 0.2
)

type Thresholds struct {
	MCPMaxLineCount             int     `yaml:"mcpMaxLineCount"`
	ConsThreshold               float64 `yaml:"consThreshold"`
	MinOverlap                  float64 `yaml:"minOverlap"`
	MinSeqCount                 int     `yaml:"minSeqCount"`
	MaxErrorProportion          float64 `yaml:"maxErrorProportion"`
	MaxInternalPrimerProportion float64 `yaml:"maxInternalPrimerProportion"`
}

func DefaultThresholds() *Thresholds {
	return &Thresholds{
		MCPMaxLineCount:             MCPMaxLineCount,
		ConsThreshold:               DefaultConsThreshold,
		MinOverlap:                  MinOverlap,
		MinSeqCount:                 MinSeqCount,
		MaxErrorProportion:          MaxErrorProportion,
		MaxInternalPrimerProportion: MaxInternalPrimerProportion,
	}
}

// LoadThresholds reads a YAML override file on top of the defaults.
func LoadThresholds(path string) (*Thresholds, error) {
	t := DefaultThresholds()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load thresholds: %w", err)
	}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("load thresholds: %w", err)
	}
	return t, nil
}
