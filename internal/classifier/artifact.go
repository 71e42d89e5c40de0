package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// The artifact is the decision tree the training toolchain exports:
// a flat node array where split nodes carry {feature, threshold, left,
// right} and leaves carry {feature:-1, label}. Evaluation follows
// input[feature] <= threshold to the left child, else right.

const leafFeature = -1

type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
	Label     int64   `json:"label,omitempty"`
}

type artifact struct {
	Model     string     `json:"model"`
	NFeatures int        `json:"n_features"`
	Nodes     []treeNode `json:"nodes"`
}

// TreeSession evaluates the exported tree. Read-only after Load, safe
// for concurrent use.
type TreeSession struct {
	nodes []treeNode
}

// Load reads and validates a tree artifact from disk.
func Load(path string) (*TreeSession, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %q: %w", path, err)
	}
	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("parse model artifact %q: %w", path, err)
	}
	if a.NFeatures != NumFeatures {
		return nil, fmt.Errorf("model artifact expects %d features, this build provides %d", a.NFeatures, NumFeatures)
	}
	if len(a.Nodes) == 0 {
		return nil, fmt.Errorf("model artifact %q has no nodes", path)
	}
	for i, n := range a.Nodes {
		if n.Feature == leafFeature {
			continue
		}
		if n.Feature < 0 || n.Feature >= NumFeatures {
			return nil, fmt.Errorf("node %d references unknown feature %d", i, n.Feature)
		}
		if n.Left <= 0 || n.Left >= len(a.Nodes) || n.Right <= 0 || n.Right >= len(a.Nodes) {
			return nil, fmt.Errorf("node %d has child index out of range", i)
		}
	}
	return &TreeSession{nodes: a.Nodes}, nil
}

// Run walks the tree for one input vector and returns the leaf label.
func (s *TreeSession) Run(ctx context.Context, input []float32) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if len(input) != NumFeatures {
		return 0, fmt.Errorf("input has %d values, model expects %d", len(input), NumFeatures)
	}
	idx := 0
	// A valid tree terminates in at most len(nodes) steps; the bound
	// guards against a cyclic artifact.
	for steps := 0; steps <= len(s.nodes); steps++ {
		n := s.nodes[idx]
		if n.Feature == leafFeature {
			return n.Label, nil
		}
		if float64(input[n.Feature]) <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, fmt.Errorf("model artifact contains a cycle at node %d", idx)
}
