// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 generates time-ordered UUIDv7 strings for request correlation ids.
package uuidv7

import "github.com/google/uuid"

// New returns a UUIDv7 string. If the time-ordered generator fails it falls
// back to a random v4 value, so callers always receive an id.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Version reports the UUID version of s, or 0 when s is not a UUID.
func Version(s string) int {
	id, err := uuid.Parse(s)
	if err != nil {
		return 0
	}
	return int(id.Version())
}
