// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cta manages the contact calls-to-action shown on the public site
// (WhatsApp, email, phone and similar channels).
package cta

import (
	"context"
	"time"
)

// Action is one contact channel.
type Action struct {
	ID          int64     `json:"id"`
	CTAType     string    `json:"cta_type"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Contact     string    `json:"contact"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Payload carries the writable fields. Active defaults to true.
type Payload struct {
	CTAType     string `json:"cta_type" validate:"notblank,max=64"`
	Title       string `json:"title" validate:"notblank,max=255"`
	URL         string `json:"url" validate:"notblank,uri,max=2048"`
	Contact     string `json:"contact" validate:"notblank,max=255"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
	SortOrder   int    `json:"sort_order"`
}

// Repository defines the data access contract for contact actions.
type Repository interface {
	// List returns actions by sort order, then id.
	List(context context.Context, includeInactive bool) ([]*Action, error)
	FindByID(context context.Context, id int64) (*Action, error)
	Create(context context.Context, payload *Payload) (*Action, error)
	Update(context context.Context, id int64, payload *Payload) (*Action, error)
	Delete(context context.Context, id int64) error
}

const FieldIncludeInactive = "include_inactive"
