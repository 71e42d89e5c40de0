package service

import (
	"context"
	"fmt"
	"time"

	"edgenudge/internal/classifier"
	"edgenudge/internal/models"
)

// InferenceService packages a reading into the classifier's fixed
// input contract, invokes the session, and maps the raw class to a
// label. Successful calls feed the running metrics; failures do not.
type InferenceService struct {
	session classifier.Session
	metrics Metrics
}

// NewInferenceService wires the loaded session. session may be nil
// when the model failed to load; Predict then reports ErrModelNotLoaded.
func NewInferenceService(session classifier.Session, metrics Metrics) *InferenceService {
	return &InferenceService{session: session, metrics: metrics}
}

// Ready reports whether the model artifact is loaded.
func (s *InferenceService) Ready() bool {
	return s.session != nil
}

// Predict runs one inference. The engine failure is wrapped, not
// retried.
func (s *InferenceService) Predict(ctx context.Context, r models.SensorReading) (models.PredictionResult, error) {
	if s.session == nil {
		return models.PredictionResult{}, classifier.ErrModelNotLoaded
	}

	input := classifier.Vector(r)

	start := time.Now()
	class, err := s.session.Run(ctx, input)
	latencyMs := float64(time.Since(start).Nanoseconds()) / 1e6
	if err != nil {
		return models.PredictionResult{}, &classifier.InferenceError{Err: err}
	}

	label, ok := models.LabelFromClass(class)
	if !ok {
		return models.PredictionResult{}, &classifier.InferenceError{Err: fmt.Errorf("unknown class %d", class)}
	}

	s.metrics.Record(latencyMs, label)

	return models.PredictionResult{Label: label, LatencyMs: latencyMs}, nil
}
