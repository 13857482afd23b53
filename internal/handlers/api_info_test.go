package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Payback159/x0go/models"
	"github.com/labstack/echo/v4"
)

func TestGetInfo(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantSettings bool
	}{
		{
			name:         "v1 info without settings",
			path:         "/v1/info",
			wantSettings: false,
		},
		{
			name:         "v2 info with settings",
			path:         "/v2/info",
			wantSettings: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			e, _ := newTestEcho(t, nil)
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()

			// Act
			e.ServeHTTP(rec, req)

			// Assert
			if rec.Code != http.StatusOK {
				t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
			}

			var info models.Info
			if err := json.Unmarshal(rec.Body.Bytes(), &info); err != nil {
				t.Fatalf("Response is not valid info JSON: %v", err)
			}
			if info.Version != "development" {
				t.Errorf("Expected version development, got %s", info.Version)
			}
			if (info.Settings != nil) != tt.wantSettings {
				t.Errorf("Expected settings present = %v, got %+v", tt.wantSettings, info.Settings)
			}
		})
	}
}

func TestGetInfoHandler(t *testing.T) {
	container, err := NewContainer(nil)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v2/info", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	if err := container.GetInfo(2)(ctx); err != nil {
		t.Errorf("GetInfo returned error: %v", err)
	}
	if rec.Body.Len() == 0 {
		t.Errorf("Expected non-empty response body")
	}
}
