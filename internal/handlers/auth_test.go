package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"edgenudge/internal/service"
)

func TestSignUp(t *testing.T) {
	auth := &mockAuth{signUpID: 42}
	r := newTestRouter(&service.Service{Authorization: auth})

	body := bytes.NewBufferString(`{"username":"alice","password":"s3cret"}`)
	w := doRequest(r, http.MethodPost, "/auth/sign-up", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastSignUpUsername != "alice" || auth.lastSignUpPassword != "s3cret" {
		t.Fatalf("credentials not passed: %q/%q", auth.lastSignUpUsername, auth.lastSignUpPassword)
	}

	var resp struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.ID != 42 {
		t.Fatalf("id = %d, want 42", resp.ID)
	}
}

func TestSignUp_MissingFields(t *testing.T) {
	auth := &mockAuth{}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := doRequest(r, http.MethodPost, "/auth/sign-up", "", bytes.NewBufferString(`{"username":"alice"}`))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if auth.lastSignUpUsername != "" {
		t.Fatalf("service should not be called on bad input")
	}
}

func TestSignUp_ServiceError(t *testing.T) {
	auth := &mockAuth{signUpErr: errors.New("username taken")}
	r := newTestRouter(&service.Service{Authorization: auth})

	body := bytes.NewBufferString(`{"username":"alice","password":"s3cret"}`)
	w := doRequest(r, http.MethodPost, "/auth/sign-up", "", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestSignIn(t *testing.T) {
	auth := &mockAuth{genTokenToken: "jwt-token"}
	r := newTestRouter(&service.Service{Authorization: auth})

	body := bytes.NewBufferString(`{"username":"alice","password":"s3cret"}`)
	w := doRequest(r, http.MethodPost, "/auth/sign-in", "", body)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
	if auth.lastGenUsername != "alice" || auth.lastGenPassword != "s3cret" {
		t.Fatalf("credentials not passed: %q/%q", auth.lastGenUsername, auth.lastGenPassword)
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token != "jwt-token" {
		t.Fatalf("token = %q", resp.Token)
	}
}

func TestSignIn_BadCredentials(t *testing.T) {
	auth := &mockAuth{genTokenErr: service.ErrInvalidPassword}
	r := newTestRouter(&service.Service{Authorization: auth})

	body := bytes.NewBufferString(`{"username":"alice","password":"wrong"}`)
	w := doRequest(r, http.MethodPost, "/auth/sign-in", "", body)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
