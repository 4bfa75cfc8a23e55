// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/api"
	"github.com/taibuivan/kahasolusi/internal/company"
	"github.com/taibuivan/kahasolusi/internal/cta"
	"github.com/taibuivan/kahasolusi/internal/feedback"
	"github.com/taibuivan/kahasolusi/internal/media"
	"github.com/taibuivan/kahasolusi/internal/platform/config"
	"github.com/taibuivan/kahasolusi/internal/platform/logging"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
	"github.com/taibuivan/kahasolusi/internal/portfolio"
	"github.com/taibuivan/kahasolusi/internal/reference"
	"github.com/taibuivan/kahasolusi/internal/settings"
	"github.com/taibuivan/kahasolusi/internal/team"
)

type stubVerifier struct{}

func (stubVerifier) VerifyToken(token string) (*sec.AuthClaims, error) {
	if token == "viewer-token" {
		return &sec.AuthClaims{UserID: "viewer-1", Role: string(sec.RoleViewer)}, nil
	}
	return nil, errors.New("bad token")
}

// newServer wires every handler over nil repositories; the tests below
// only reach middleware and health endpoints.
func newServer(t *testing.T, databaseErr error) http.Handler {
	t.Helper()

	logger := logging.Discard()
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func(context.Context) error { return databaseErr },
	}, logger)

	handlers := api.Handlers{
		Liveness:     liveness,
		Readiness:    readiness,
		Portfolio:    portfolio.NewHandler(portfolio.NewService(nil)),
		Categories:   reference.NewHandler(reference.NewService(reference.KindCategory, nil)),
		Technologies: reference.NewHandler(reference.NewService(reference.KindTechnology, nil)),
		Clients:      reference.NewHandler(reference.NewService(reference.KindClient, nil)),
		Company:      company.NewHandler(company.NewService(nil)),
		Team:         team.NewHandler(team.NewService(nil)),
		Feedback:     feedback.NewHandler(feedback.NewService(nil)),
		Media:        media.NewHandler(media.NewService(nil)),
		CTA:          cta.NewHandler(cta.NewService(nil)),
		Settings:     settings.NewHandler(settings.NewService(nil)),
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := &config.Config{ServerPort: "0", Environment: "production", AllowedOrigins: []string{"https://kahasolusi.com"}}
	return api.NewServer(ctx, cfg, logger, stubVerifier{}, handlers).Handler()
}

func serve(handler http.Handler, method, target, token string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, nil)
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

/*
TestServer_Health reports liveness and database readiness.
*/
func TestServer_Health(t *testing.T) {
	recorder := serve(newServer(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))

	recorder = serve(newServer(t, nil), http.MethodGet, "/ready", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = serve(newServer(t, errors.New("connection refused")), http.MethodGet, "/ready", "")
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var envelope struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Equal(t, "degraded", envelope.Data.Status)
}

/*
TestServer_AuthChain rejects bad tokens and enforces roles on mounted routes.
*/
func TestServer_AuthChain(t *testing.T) {
	server := newServer(t, nil)

	tests := []struct {
		name   string
		method string
		target string
		token  string
		want   int
	}{
		{"anonymous_write", http.MethodPost, "/api/v1/portfolio", "", http.StatusUnauthorized},
		{"invalid_token", http.MethodGet, "/api/v1/portfolio/all", "forged", http.StatusUnauthorized},
		{"viewer_write", http.MethodDelete, "/api/v1/categories/1", "viewer-token", http.StatusForbidden},
		{"viewer_purge", http.MethodDelete, "/api/v1/portfolio/1/purge?confirm=1", "viewer-token", http.StatusForbidden},
		{"unknown_route", http.MethodGet, "/api/v1/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := serve(server, tt.method, tt.target, tt.token)
			assert.Equal(t, tt.want, recorder.Code)
		})
	}
}
