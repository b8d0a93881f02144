package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"spendlog/internal/config"
	"spendlog/internal/store"
)

func TestSetupRouter(t *testing.T) {
	// Use relative paths for tests running in cmd/server
	templateDir := "../../web/templates"
	if _, err := os.Stat(templateDir); os.IsNotExist(err) {
		t.Skip("Template directory not found, skipping router test")
	}

	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		SessionSecret: "test-secret",
		TemplateDir:   templateDir,
	}
	router := setupRouter(store.NewMemory(), cfg)

	tests := []struct {
		name         string
		method       string
		path         string
		wantStatus   int
		wantLocation string
	}{
		{
			name:         "Root redirects to login",
			method:       http.MethodGet,
			path:         "/",
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:       "Login page renders",
			method:     http.MethodGet,
			path:       "/login",
			wantStatus: http.StatusOK,
		},
		{
			name:         "Home requires auth",
			method:       http.MethodGet,
			path:         "/home",
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:       "Unknown route renders error page",
			method:     http.MethodGet,
			path:       "/nope",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code,
				"%s %s returned unexpected status", tt.method, tt.path)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
		})
	}
}
