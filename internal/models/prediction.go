package models

import "time"

// Label is the occupancy class the model emits.
type Label string

const (
	LabelEmpty    Label = "EMPTY"
	LabelOccupied Label = "OCCUPIED"
)

// LabelFromClass maps the model's raw class index to a Label.
func LabelFromClass(class int64) (Label, bool) {
	switch class {
	case 0:
		return LabelEmpty, true
	case 1:
		return LabelOccupied, true
	default:
		return "", false
	}
}

// PredictionResult is the outcome of a single inference call.
type PredictionResult struct {
	Label     Label   `json:"label"`
	LatencyMs float64 `json:"latency_ms"`
}

// Snapshot is the latest full pipeline output shown to clients.
// Estimate and Projection are nil when the room was predicted OCCUPIED.
type Snapshot struct {
	Reading    SensorReading     `json:"reading"`
	Label      Label             `json:"label"`
	LatencyMs  float64           `json:"latency_ms"`
	Estimate   *SavingsEstimate  `json:"estimate,omitempty"`
	Projection *CampusProjection `json:"projection,omitempty"`
	Source     string            `json:"source"` // "manual" | "preset:<name>" | "demo:<name>"
	At         time.Time         `json:"at"`
}

// PredictionRecord is one persisted row of the prediction log.
type PredictionRecord struct {
	ID         string           `json:"id"`
	OccurredAt time.Time        `json:"occurred_at"`
	Source     string           `json:"source"`
	Label      Label            `json:"label"`
	LatencyMs  float64          `json:"latency_ms"`
	Reading    SensorReading    `json:"reading"`
	Estimate   *SavingsEstimate `json:"estimate,omitempty"`
}

// RunningMetrics accumulates over the life of the process.
type RunningMetrics struct {
	PredictionCount int64   `json:"prediction_count"`
	TotalLatencyMs  float64 `json:"total_latency_ms"`
	AvgLatencyMs    float64 `json:"avg_latency_ms"` // 0 when no predictions yet
}
