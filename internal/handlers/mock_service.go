package handlers

import (
	"context"

	"edgenudge/internal/models"
	"edgenudge/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

type mockSensors struct {
	reading  models.SensorReading
	setCalls int
}

func (m *mockSensors) Get() models.SensorReading { return m.reading }
func (m *mockSensors) Set(r models.SensorReading) {
	m.setCalls++
	m.reading = r
}

type mockInference struct {
	ready bool
}

func (m *mockInference) Predict(ctx context.Context, r models.SensorReading) (models.PredictionResult, error) {
	return models.PredictionResult{}, nil
}
func (m *mockInference) Ready() bool { return m.ready }

type mockPipeline struct {
	snap models.Snapshot
	err  error

	latest    models.Snapshot
	hasLatest bool

	runCalls        int
	runCurrentCalls int
	lastReading     models.SensorReading
	lastSource      string
}

func (m *mockPipeline) Run(ctx context.Context, r models.SensorReading, source string) (models.Snapshot, error) {
	m.runCalls++
	m.lastReading = r
	m.lastSource = source
	return m.snap, m.err
}
func (m *mockPipeline) RunCurrent(ctx context.Context, source string) (models.Snapshot, error) {
	m.runCurrentCalls++
	m.lastSource = source
	return m.snap, m.err
}
func (m *mockPipeline) Latest() (models.Snapshot, bool) { return m.latest, m.hasLatest }

type mockDemo struct {
	startErr    error
	status      service.DemoStatus
	startCalled int
	stopCalled  int
}

func (m *mockDemo) Start() error {
	m.startCalled++
	return m.startErr
}
func (m *mockDemo) Stop() { m.stopCalled++ }
func (m *mockDemo) Status() service.DemoStatus {
	return m.status
}

type mockMetrics struct {
	stats models.RunningMetrics
}

func (m *mockMetrics) Record(latencyMs float64, label models.Label) {}
func (m *mockMetrics) Stats() models.RunningMetrics                 { return m.stats }

type mockHistory struct {
	resp       []models.PredictionRecord
	err        error
	lastFilter service.HistoryFilter
}

func (m *mockHistory) List(ctx context.Context, f service.HistoryFilter) ([]models.PredictionRecord, error) {
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// authedService wraps the usual mocks with an auth that accepts any token.
func authedService() (*service.Service, *mockPipeline, *mockSensors) {
	pipe := &mockPipeline{}
	sensors := &mockSensors{}
	return &service.Service{
		Authorization: &mockAuth{parseID: 7},
		Sensors:       sensors,
		Inference:     &mockInference{ready: true},
		Pipeline:      pipe,
		Metrics:       &mockMetrics{},
	}, pipe, sensors
}
