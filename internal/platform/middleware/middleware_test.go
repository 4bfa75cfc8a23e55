// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/platform/config"
	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/logging"
	"github.com/taibuivan/kahasolusi/internal/platform/middleware"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
	"github.com/taibuivan/kahasolusi/pkg/uuidv7"
)

type stubVerifier struct {
	claims *sec.AuthClaims
	err    error
}

func (stub stubVerifier) VerifyToken(string) (*sec.AuthClaims, error) {
	return stub.claims, stub.err
}

var okHandler = http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
	writer.WriteHeader(http.StatusOK)
})

/*
TestRequestID_GeneratesAndPropagates keeps a client id and generates one when absent.
*/
func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		seen = ctxutil.GetRequestID(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, 7, uuidv7.Version(seen))
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "client-supplied")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "client-supplied", seen)
}

/*
TestCORS_OriginPolicy only reflects allowed origins and short-circuits preflight.
*/
func TestCORS_OriginPolicy(t *testing.T) {
	cfg := &config.Config{Environment: "production", AllowedOrigins: []string{"https://kahasolusi.com"}}
	handler := middleware.CORS(cfg)(okHandler)

	allowed := httptest.NewRequest(http.MethodGet, "/", nil)
	allowed.Header.Set("Origin", "https://kahasolusi.com")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, allowed)
	assert.Equal(t, "https://kahasolusi.com", recorder.Header().Get("Access-Control-Allow-Origin"))

	denied := httptest.NewRequest(http.MethodGet, "/", nil)
	denied.Header.Set("Origin", "https://evil.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, denied)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/", nil)
	preflight.Header.Set("Origin", "https://kahasolusi.com")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, preflight)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

/*
TestRateLimit_Burst rejects requests beyond the burst for one IP.
*/
func TestRateLimit_Burst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := middleware.RateLimit(ctx, middleware.RateLimitOptions{RequestsPerSecond: 0.001, Burst: 2})(okHandler)

	codes := make([]int, 0, 3)
	for range 3 {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.RemoteAddr = "10.0.0.1:5000"
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		codes = append(codes, recorder.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, other)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestPanicRecovery_Returns500 converts a handler panic into a JSON 500.
*/
func TestPanicRecovery_Returns500(t *testing.T) {
	handler := middleware.PanicRecovery(logging.Discard())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INTERNAL_SERVER_ERROR")
}

/*
TestAuthenticate_RequireRole covers anonymous, invalid, insufficient and sufficient callers.
*/
func TestAuthenticate_RequireRole(t *testing.T) {
	editor := &sec.AuthClaims{UserID: "3", Role: string(sec.RoleEditor)}
	viewer := &sec.AuthClaims{UserID: "4", Role: string(sec.RoleViewer)}

	tests := []struct {
		name     string
		header   string
		verifier stubVerifier
		status   int
	}{
		{"anonymous", "", stubVerifier{}, http.StatusUnauthorized},
		{"bad_scheme", "Basic abc", stubVerifier{}, http.StatusUnauthorized},
		{"rejected", "Bearer token", stubVerifier{err: errors.New("expired")}, http.StatusUnauthorized},
		{"viewer", "Bearer token", stubVerifier{claims: viewer}, http.StatusForbidden},
		{"editor", "Bearer token", stubVerifier{claims: editor}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Authenticate(tt.verifier)(middleware.RequireRole(sec.RoleEditor)(okHandler))

			request := httptest.NewRequest(http.MethodPost, "/api/v1/portfolio", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

/*
TestAuthenticate_AnonymousPassThrough lets public traffic through without claims.
*/
func TestAuthenticate_AnonymousPassThrough(t *testing.T) {
	var claims *sec.AuthClaims
	handler := middleware.Authenticate(stubVerifier{})(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
		claims = ctxutil.GetAuthUser(request.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/v1/portfolio", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, claims)
}
