package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edgenudge/internal/classifier"
	"edgenudge/internal/models"

	"github.com/gin-gonic/gin"
)

// doRequest serves one request with an optional bearer token and JSON body.
func doRequest(r *gin.Engine, method, target, token string, body io.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func dateUTC(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPredict_RequiresAuth(t *testing.T) {
	s, _, _ := authedService()
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/api/v1/predict", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", w.Code)
	}
}

func TestPredict_NoBodyUsesCurrentSensors(t *testing.T) {
	s, pipe, _ := authedService()
	pipe.snap = models.Snapshot{Label: models.LabelOccupied, LatencyMs: 1.4, Source: "manual"}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/api/v1/predict", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if pipe.runCurrentCalls != 1 || pipe.runCalls != 0 {
		t.Fatalf("runCurrent/run calls = %d/%d, want 1/0", pipe.runCurrentCalls, pipe.runCalls)
	}
	if pipe.lastSource != "manual" {
		t.Fatalf("source = %q, want manual", pipe.lastSource)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if snap.Label != models.LabelOccupied {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestPredict_ExplicitReading(t *testing.T) {
	s, pipe, _ := authedService()
	pipe.snap = models.Snapshot{Label: models.LabelEmpty}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"reading":{"hour":2,"day_of_week":1,"ambient_light":15,"pir_motion":false,"phone_presence":false,"temperature":20}}`)
	w := doRequest(r, http.MethodPost, "/api/v1/predict", "valid", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if pipe.runCalls != 1 || pipe.runCurrentCalls != 0 {
		t.Fatalf("run/runCurrent calls = %d/%d, want 1/0", pipe.runCalls, pipe.runCurrentCalls)
	}
	want := models.SensorReading{Hour: 2, DayOfWeek: 1, AmbientLight: 15, Temperature: 20}
	if pipe.lastReading != want {
		t.Fatalf("reading passed = %+v, want %+v", pipe.lastReading, want)
	}
}

// A chunked request reports ContentLength -1; the body must still be read.
func TestPredict_ChunkedBodyIsRead(t *testing.T) {
	s, pipe, _ := authedService()
	pipe.snap = models.Snapshot{Label: models.LabelEmpty}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"reading":{"hour":2,"day_of_week":1,"ambient_light":15,"temperature":20}}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer valid")
	req.ContentLength = -1
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if pipe.runCalls != 1 || pipe.runCurrentCalls != 0 {
		t.Fatalf("run/runCurrent calls = %d/%d, want 1/0", pipe.runCalls, pipe.runCurrentCalls)
	}
	if pipe.lastReading.Hour != 2 || pipe.lastReading.AmbientLight != 15 {
		t.Fatalf("reading not bound from chunked body: %+v", pipe.lastReading)
	}
}

func TestPredict_MalformedBody(t *testing.T) {
	s, _, _ := authedService()
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/api/v1/predict", "valid", bytes.NewBufferString(`{not json`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestPredict_ErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"model_not_loaded", classifier.ErrModelNotLoaded, http.StatusServiceUnavailable},
		{"inference_failed", &classifier.InferenceError{Err: errors.New("boom")}, http.StatusBadGateway},
		{"other", errors.New("weird"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, pipe, _ := authedService()
			pipe.err = tc.err
			r := newTestRouter(s)

			w := doRequest(r, http.MethodPost, "/api/v1/predict", "valid", nil)
			if w.Code != tc.want {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
		})
	}
}

func TestSnapshot_NotFoundBeforeFirstPrediction(t *testing.T) {
	s, _, _ := authedService()
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/v1/snapshot", "valid", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestSnapshot_ReturnsLatest(t *testing.T) {
	s, pipe, _ := authedService()
	pipe.latest = models.Snapshot{Label: models.LabelEmpty, Source: "demo:empty"}
	pipe.hasLatest = true
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/v1/snapshot", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	var snap models.Snapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if snap.Label != models.LabelEmpty || snap.Source != "demo:empty" {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestHealth_NoAuthNeeded(t *testing.T) {
	s, _, _ := authedService()
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var resp struct {
		Status     string `json:"status"`
		ModelReady bool   `json:"model_ready"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Status != statusOK || !resp.ModelReady {
		t.Fatalf("unexpected health: %+v", resp)
	}
}
