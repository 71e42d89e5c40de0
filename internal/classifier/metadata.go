package classifier

import (
	"encoding/json"
	"fmt"
	"os"
)

// FeatureInfo describes one input feature in the metadata document.
type FeatureInfo struct {
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Range       []float64 `json:"range"`
	Description string    `json:"description"`
}

// ModelInfo is the metadata document the export toolchain writes next
// to the artifact. Loading it is best-effort; the service degrades to
// "no size shown" when it is missing or malformed.
type ModelInfo struct {
	Model       string        `json:"model"`
	Version     string        `json:"version"`
	Features    []FeatureInfo `json:"features"`
	Accuracy    float64       `json:"accuracy"`
	ModelSizeKB float64       `json:"model_size_kb"`
	TreeDepth   int           `json:"tree_depth"`
	TreeLeaves  int           `json:"tree_leaves"`
}

// LoadInfo reads the metadata document from disk.
func LoadInfo(path string) (*ModelInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model info %q: %w", path, err)
	}
	var info ModelInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, fmt.Errorf("parse model info %q: %w", path, err)
	}
	return &info, nil
}
