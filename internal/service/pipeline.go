package service

import (
	"context"
	"sync"
	"time"

	"edgenudge/internal/logger"
	"edgenudge/internal/models"
	"edgenudge/internal/repository"
)

// PipelineService chains sensors -> inference -> estimator and
// publishes the latest snapshot for the API and the WebSocket stream.
// Concurrent runs (manual predict racing the demo carousel) are not
// serialized; the published snapshot is last-write-wins.
type PipelineService struct {
	sensors   Sensors
	inference Inference
	energy    Energy
	records   repository.PredictionRepo
	log       *logger.Logger

	mu     sync.RWMutex
	latest models.Snapshot
	has    bool
}

func NewPipelineService(sensors Sensors, inference Inference, energy Energy, records repository.PredictionRepo, log *logger.Logger) *PipelineService {
	return &PipelineService{
		sensors:   sensors,
		inference: inference,
		energy:    energy,
		records:   records,
		log:       log,
	}
}

// Run applies the reading to the sensor state, then runs the full
// predict -> estimate -> publish chain. On inference failure the
// pipeline aborts: nothing is published or recorded.
func (s *PipelineService) Run(ctx context.Context, r models.SensorReading, source string) (models.Snapshot, error) {
	s.sensors.Set(r)
	return s.run(ctx, r, source)
}

// RunCurrent runs the pipeline against whatever the sensor state holds.
func (s *PipelineService) RunCurrent(ctx context.Context, source string) (models.Snapshot, error) {
	return s.run(ctx, s.sensors.Get(), source)
}

func (s *PipelineService) run(ctx context.Context, r models.SensorReading, source string) (models.Snapshot, error) {
	result, err := s.inference.Predict(ctx, r)
	if err != nil {
		return models.Snapshot{}, err
	}

	snap := models.Snapshot{
		Reading:   r,
		Label:     result.Label,
		LatencyMs: result.LatencyMs,
		Source:    source,
		At:        time.Now().UTC(),
	}

	// The estimator is only ever invoked for empty rooms.
	if result.Label == models.LabelEmpty {
		est := s.energy.Estimate(r)
		proj := s.energy.Project(est)
		snap.Estimate = &est
		snap.Projection = &proj
	}

	s.publish(snap)

	// Best-effort audit row; a failed write never fails the prediction.
	if err := s.records.Append(ctx, models.PredictionRecord{
		OccurredAt: snap.At,
		Source:     source,
		Label:      snap.Label,
		LatencyMs:  snap.LatencyMs,
		Reading:    r,
		Estimate:   snap.Estimate,
	}); err != nil && s.log != nil {
		s.log.Warnw("prediction_log_write_failed", "err", err, "source", source)
	}

	return snap, nil
}

func (s *PipelineService) publish(snap models.Snapshot) {
	s.mu.Lock()
	s.latest = snap
	s.has = true
	s.mu.Unlock()
}

// Latest returns the most recently published snapshot, if any.
func (s *PipelineService) Latest() (models.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.has
}
