// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxkey defines the typed keys under which middleware stores
// per-request values (correlation id, logger, verified token claims).
package ctxkey

// key is unexported so values set here can only be read through this package's keys.
type key string

const (
	// KeyRequestID holds the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyUser holds the verified [sec.AuthClaims] of the caller.
	KeyUser key = "user"

	// KeyLogger holds the request-scoped [*log/slog.Logger].
	KeyLogger key = "logger"
)
