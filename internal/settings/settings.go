// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package settings manages the key/value site settings (site title, maintenance
// mode, contact email). Keys and their value types are seeded by migration;
// editors change values only.
package settings

import (
	"context"
	"time"
)

// Value types a setting can declare.
const (
	TypeText    = "text"
	TypeBoolean = "boolean"
	TypeNumber  = "number"
	TypeEmail   = "email"
	TypeURL     = "url"
)

// Field names used in URLs and validation details.
const (
	FieldKey   = "key"
	FieldValue = "value"
)

const maxValueLength = 10000

// Setting is one stored key/value pair.
type Setting struct {
	Key         string    `json:"key"`
	Value       string    `json:"value"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by"`
}

// Payload carries the new value of a single setting.
type Payload struct {
	Value string `json:"value"`
}

// Repository defines the data access contract for settings.
type Repository interface {
	// List returns every setting ordered by key.
	List(context context.Context) ([]*Setting, error)

	// Find returns one setting, or apperr.NotFound for an unknown key.
	Find(context context.Context, key string) (*Setting, error)

	// UpdateValue overwrites the value of an existing key and stamps the actor.
	UpdateValue(context context.Context, key, value, actor string) (*Setting, error)
}
