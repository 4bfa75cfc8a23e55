// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package media manages the multimedia gallery: images, videos, documents and embeds.
package media

import (
	"context"
	"time"
)

// # Media Types

const (
	TypeImage    = "image"
	TypeVideo    = "video"
	TypeDocument = "document"
	TypeEmbed    = "embed"
)

// Item is one gallery entry.
type Item struct {
	ID           int64     `json:"id"`
	MediaType    string    `json:"media_type"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	MediaURL     string    `json:"media_url"`
	EmbedCode    string    `json:"embed_code"`
	ThumbnailURL string    `json:"thumbnail_url"`
	Active       bool      `json:"active"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Payload carries the writable fields. Active defaults to true.
type Payload struct {
	MediaType    string `json:"media_type" validate:"required,oneof=image video document embed"`
	Title        string `json:"title" validate:"notblank,max=255"`
	Description  string `json:"description"`
	MediaURL     string `json:"media_url" validate:"httpurl,max=2048"`
	EmbedCode    string `json:"embed_code" validate:"max=10000"`
	ThumbnailURL string `json:"thumbnail_url" validate:"httpurl,max=2048"`
	Active       *bool  `json:"active"`
	SortOrder    int    `json:"sort_order"`
}

// Filter narrows listings.
type Filter struct {
	MediaType       string
	IncludeInactive bool
}

// Repository defines the data access contract for media items.
type Repository interface {
	// List returns items by sort order, newest first within equal sort orders.
	List(context context.Context, filter Filter) ([]*Item, error)
	FindByID(context context.Context, id int64) (*Item, error)
	Create(context context.Context, payload *Payload) (*Item, error)
	Update(context context.Context, id int64, payload *Payload) (*Item, error)
	ToggleActive(context context.Context, id int64) (*Item, error)
	Delete(context context.Context, id int64) error
}

const (
	FieldMediaType       = "media_type"
	FieldMediaURL        = "media_url"
	FieldEmbedCode       = "embed_code"
	FieldType            = "type"
	FieldIncludeInactive = "include_inactive"
)
