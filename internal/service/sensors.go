package service

import (
	"sync"

	"edgenudge/internal/models"
)

// SensorState is the backing store for the "current" sensor widgets.
// Presets and manual updates both write here; predictions without an
// explicit reading consume it. No validation beyond shape: out-of-range
// values pass through unchanged.
type SensorState struct {
	mu      sync.RWMutex
	current models.SensorReading
}

// defaultReading is a neutral mid-day starting point before any input
// arrives.
var defaultReading = models.SensorReading{
	Hour:         12,
	DayOfWeek:    2,
	AmbientLight: 300,
	Temperature:  22.0,
}

func NewSensorState() *SensorState {
	return &SensorState{current: defaultReading}
}

func (s *SensorState) Get() models.SensorReading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *SensorState) Set(r models.SensorReading) {
	s.mu.Lock()
	s.current = r
	s.mu.Unlock()
}
