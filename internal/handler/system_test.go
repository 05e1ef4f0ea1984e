package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"teamdir/internal/config"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error {
	return p.err
}

func testConfig() *config.Config {
	return &config.Config{
		AppName:     "teamdir",
		AppVersion:  "1.0.0",
		Environment: "test",
		Debug:       true,
	}
}

func TestRootStatus(t *testing.T) {
	h := NewSystemHandler(testConfig(), stubPinger{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.Root(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body StatusResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Message != "Hello World" || body.Status != "running" {
		t.Errorf("unexpected status payload: %+v", body)
	}
	if body.Version != "1.0.0" {
		t.Errorf("expected version 1.0.0, got %q", body.Version)
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
	}{
		{name: "store reachable", pingErr: nil, wantCode: http.StatusOK, wantStatus: "healthy"},
		{name: "store down", pingErr: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable, wantStatus: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewSystemHandler(testConfig(), stubPinger{err: tt.pingErr}, testLogger())

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			h.Health(rec, req)

			if rec.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, rec.Code)
			}

			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body["status"] != tt.wantStatus {
				t.Errorf("expected status %q, got %q", tt.wantStatus, body["status"])
			}
		})
	}
}

func TestInfo(t *testing.T) {
	h := NewSystemHandler(testConfig(), stubPinger{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/info", nil)
	rec := httptest.NewRecorder()
	h.Info(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["app_name"] != "teamdir" || body["environment"] != "test" {
		t.Errorf("unexpected info payload: %+v", body)
	}
	if body["debug"] != true {
		t.Errorf("expected debug true, got %v", body["debug"])
	}
}
