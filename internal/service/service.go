package service

import (
	"context"
	"time"

	"edgenudge/internal/classifier"
	"edgenudge/internal/logger"
	"edgenudge/internal/models"
	"edgenudge/internal/repository"

	"github.com/prometheus/client_golang/prometheus"
)

// Sensors holds the current sensor reading, decoupled from HTTP.
type Sensors interface {
	Get() models.SensorReading
	Set(r models.SensorReading)
}

// Inference adapts readings to the classifier's input contract and
// maps the raw class back to a label.
type Inference interface {
	Predict(ctx context.Context, r models.SensorReading) (models.PredictionResult, error)
	Ready() bool
}

// Energy computes the deterministic savings estimate and the
// campus-wide extrapolation. Pure functions of their inputs.
type Energy interface {
	Estimate(r models.SensorReading) models.SavingsEstimate
	Project(e models.SavingsEstimate) models.CampusProjection
}

// Pipeline runs a reading through predict -> estimate -> publish.
type Pipeline interface {
	Run(ctx context.Context, r models.SensorReading, source string) (models.Snapshot, error)
	RunCurrent(ctx context.Context, source string) (models.Snapshot, error)
	Latest() (models.Snapshot, bool)
}

// Demo is the scripted preset carousel.
type Demo interface {
	Start() error
	Stop()
	Status() DemoStatus
}

// Metrics accumulates per-session prediction counters.
type Metrics interface {
	Record(latencyMs float64, label models.Label)
	Stats() models.RunningMetrics
}

// History exposes the persisted prediction log with filtering.
type History interface {
	List(ctx context.Context, f HistoryFilter) ([]models.PredictionRecord, error)
}

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Service aggregates all sub-services behind one handle for the HTTP layer.
type Service struct {
	Sensors
	Inference
	Energy
	Pipeline
	Demo
	Metrics
	History
	Authorization
}

// Config carries the policy values that the original hard-coded.
type Config struct {
	Estimator EstimatorConfig
	Campus    CampusConfig
	Demo      DemoConfig
	Auth      AuthConfig
}

// DemoConfig times the preset carousel.
type DemoConfig struct {
	Interval    time.Duration // time between preset transitions
	SettleDelay time.Duration // reading propagation delay before predicting
}

// DefaultConfig returns the fixed policy values of the shipped demo.
func DefaultConfig() Config {
	return Config{
		Estimator: DefaultEstimatorConfig(),
		Campus:    DefaultCampusConfig(),
		Demo: DemoConfig{
			Interval:    7 * time.Second,
			SettleDelay: 500 * time.Millisecond,
		},
		Auth: AuthConfig{
			TokenTTL: time.Hour,
		},
	}
}

// NewService wires repositories, the classifier session, and config
// into concrete services. A nil session leaves inference not ready;
// every predict call then fails with ErrModelNotLoaded.
func NewService(repos *repository.Repository, session classifier.Session, cfg Config, reg prometheus.Registerer, log *logger.Logger) *Service {
	sensors := NewSensorState()
	metrics := NewMetricsService(reg)
	inference := NewInferenceService(session, metrics)
	energy := NewEnergyService(cfg.Estimator, cfg.Campus)
	pipeline := NewPipelineService(sensors, inference, energy, repos.Predictions, log)

	return &Service{
		Sensors:       sensors,
		Inference:     inference,
		Energy:        energy,
		Pipeline:      pipeline,
		Demo:          NewDemoService(sensors, pipeline, cfg.Demo, log),
		Metrics:       metrics,
		History:       NewHistoryService(repos.Predictions),
		Authorization: NewAuthService(repos.Operators, cfg.Auth),
	}
}
