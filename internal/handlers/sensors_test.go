package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"edgenudge/internal/models"
)

func TestSensors_GetAndPut(t *testing.T) {
	s, _, sensors := authedService()
	sensors.reading = models.SensorReading{Hour: 12, DayOfWeek: 2, AmbientLight: 300, Temperature: 22}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/v1/sensors", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get status=%d", w.Code)
	}
	var got models.SensorReading
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != sensors.reading {
		t.Fatalf("reading = %+v, want %+v", got, sensors.reading)
	}

	body := bytes.NewBufferString(`{"hour":20,"day_of_week":3,"ambient_light":600,"pir_motion":true,"phone_presence":true,"temperature":23.5}`)
	w = doRequest(r, http.MethodPut, "/api/v1/sensors", "valid", body)
	if w.Code != http.StatusOK {
		t.Fatalf("put status=%d, body=%s", w.Code, w.Body.String())
	}
	want := models.SensorReading{Hour: 20, DayOfWeek: 3, AmbientLight: 600, PIRMotion: true, PhonePresence: true, Temperature: 23.5}
	if sensors.setCalls != 1 || sensors.reading != want {
		t.Fatalf("state after put: calls=%d reading=%+v", sensors.setCalls, sensors.reading)
	}
}

func TestSensors_PutOutOfRangePassesThrough(t *testing.T) {
	s, _, sensors := authedService()
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"hour":30,"day_of_week":9,"ambient_light":-5,"temperature":99}`)
	w := doRequest(r, http.MethodPut, "/api/v1/sensors", "valid", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if sensors.reading.Hour != 30 || sensors.reading.AmbientLight != -5 {
		t.Fatalf("values should not be clamped: %+v", sensors.reading)
	}
}

func TestSensors_PutMalformedBody(t *testing.T) {
	s, _, sensors := authedService()
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPut, "/api/v1/sensors", "valid", bytes.NewBufferString(`{"hour":"noon"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if sensors.setCalls != 0 {
		t.Fatalf("state must not change on bad input")
	}
}

func TestPresets_List(t *testing.T) {
	s, _, _ := authedService()
	r := newTestRouter(s)

	w := doRequest(r, http.MethodGet, "/api/v1/presets", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	var resp struct {
		Count   int             `json:"count"`
		Presets []models.Preset `json:"presets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Count != 4 || len(resp.Presets) != 4 {
		t.Fatalf("expected 4 presets, got %+v", resp)
	}
	if resp.Presets[0].Name != "empty" || resp.Presets[3].Name != "weekend" {
		t.Fatalf("preset order wrong: %+v", resp.Presets)
	}
}

func TestPresets_ApplyRunsPipeline(t *testing.T) {
	s, pipe, _ := authedService()
	pipe.snap = models.Snapshot{Label: models.LabelOccupied, Source: "preset:morning"}
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/api/v1/presets/morning", "valid", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if pipe.runCalls != 1 {
		t.Fatalf("run calls = %d, want 1", pipe.runCalls)
	}
	if pipe.lastSource != "preset:morning" {
		t.Fatalf("source = %q", pipe.lastSource)
	}
	if pipe.lastReading != models.Presets[1].Reading {
		t.Fatalf("reading = %+v, want morning preset", pipe.lastReading)
	}
}

func TestPresets_ApplyUnknownName(t *testing.T) {
	s, pipe, _ := authedService()
	r := newTestRouter(s)

	w := doRequest(r, http.MethodPost, "/api/v1/presets/lunchtime", "valid", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if pipe.runCalls != 0 {
		t.Fatalf("pipeline must not run for unknown preset")
	}
}
