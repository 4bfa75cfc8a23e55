// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference manages the master data that portfolios link to.

Categories, technologies and clients share one shape and one set of rules,
so a single implementation serves all three, parameterised by [Kind].

# Core Responsibility

  - Taxonomy: named, slugged, sortable records that can be deactivated.
  - Usage: every record reports how many portfolios link to it.
  - Deletion: physical; junction rows cascade.
*/
package reference

import (
	"time"

	"github.com/taibuivan/kahasolusi/internal/platform/database/schema"
)

// # Kinds

// Kind selects which reference table a repository or handler serves.
type Kind string

const (
	KindCategory   Kind = "category"
	KindTechnology Kind = "technology"
	KindClient     Kind = "client"
)

// Label is the resource name used in error messages.
func (kind Kind) Label() string {
	switch kind {
	case KindTechnology:
		return "Technology"
	case KindClient:
		return "Client"
	default:
		return "Category"
	}
}

// tables returns the reference table and the portfolio junction pointing at it.
func (kind Kind) tables() (schema.ReferenceTable, schema.JunctionTable) {
	switch kind {
	case KindTechnology:
		return schema.Technology, schema.PortfolioTechnology
	case KindClient:
		return schema.Client, schema.PortfolioClient
	default:
		return schema.Category, schema.PortfolioCategory
	}
}

// # Domain Entities

// Reference is a category, technology or client.
type Reference struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	LogoURL        string    `json:"logo_url"`
	Active         bool      `json:"active"`
	SortOrder      int       `json:"sort_order"`
	PortfolioCount int       `json:"portfolio_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// InUse reports whether any portfolio links to the record.
func (reference *Reference) InUse() bool {
	return reference.PortfolioCount > 0
}

// Payload carries the writable fields. Active defaults to true on create and
// is left unchanged on update when omitted.
type Payload struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
	Active      *bool  `json:"active"`
	SortOrder   int    `json:"sort_order"`
}

// # Field Identifiers

const (
	FieldName            = "name"
	FieldSlug            = "slug"
	FieldLogoURL         = "logo_url"
	FieldIncludeInactive = "include_inactive"
)
