// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package testutil holds helpers shared by handler tests.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/kahasolusi/internal/platform/ctxutil"
	"github.com/taibuivan/kahasolusi/internal/platform/logging"
	"github.com/taibuivan/kahasolusi/internal/platform/sec"
)

// NewRequest builds a request with an optional JSON body and, when role is
// non-empty, authenticated claims for userID.
func NewRequest(method, target, body string, role sec.UserRole, userID string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, target, reader)
	ctx := ctxutil.WithLogger(request.Context(), logging.Discard())

	if role != "" {
		ctx = ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: userID, Role: string(role)})
	}

	return request.WithContext(ctx)
}

// Serve runs the request through handler and returns the recorder.
func Serve(handler http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder
}

// DecodeData unmarshals the "data" member of a success envelope into target.
func DecodeData(t *testing.T, recorder *httptest.ResponseRecorder, target any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

// ErrorCode returns the "code" member of an error envelope.
func ErrorCode(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope.Code
}
