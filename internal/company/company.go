// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package company manages the singleton company profile shown on the public site.
package company

import (
	"context"
	"time"
)

// Profile is the single company profile row.
type Profile struct {
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	LogoURL     string    `json:"logo_url"`
	Vision      string    `json:"vision"`
	Mission     string    `json:"mission"`
	Description string    `json:"description"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	LinkedInURL string    `json:"linkedin_url"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	UpdatedAt   time.Time `json:"updated_at"`
	UpdatedBy   string    `json:"updated_by"`
}

// Payload carries the full profile on save.
type Payload struct {
	Name        string   `json:"name" validate:"notblank,max=255"`
	Address     string   `json:"address"`
	LogoURL     string   `json:"logo_url" validate:"httpurl,max=2048"`
	Vision      string   `json:"vision"`
	Mission     string   `json:"mission"`
	Description string   `json:"description"`
	Phone       string   `json:"phone" validate:"max=64"`
	Email       string   `json:"email" validate:"omitempty,email,max=255"`
	LinkedInURL string   `json:"linkedin_url" validate:"httpurl,max=2048"`
	Latitude    *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude   *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
}

// Repository defines the data access contract for the profile.
type Repository interface {
	// Get returns the stored profile, or apperr.NotFound before the first save.
	Get(context context.Context) (*Profile, error)

	// Save inserts or overwrites the profile.
	Save(context context.Context, payload *Payload, actor string) (*Profile, error)
}
