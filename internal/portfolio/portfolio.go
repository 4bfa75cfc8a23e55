// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package portfolio manages the showcased project records of the company profile.

A [Portfolio] is an aggregate: the scalar row plus its category, technology
and client links. The links are only ever written as whole sets, inside the
same transaction as the scalar row.

# Lifecycle

  - Create: active, not featured unless requested.
  - Update: full replace of scalars and of all three link sets.
  - SoftDelete / Restore: flip the active flag; the row stays addressable.
  - HardDelete: removes the row, links cascade. Admin purge only.
*/
package portfolio

import "time"

// # Domain Entities

// Portfolio represents one case-study project.
type Portfolio struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	CaseStudy        string    `json:"case_study"`
	ProblemStatement string    `json:"problem_statement"`
	Results          []string  `json:"results"`
	ImageURL         string    `json:"image_url"`
	ProjectURL       string    `json:"project_url"`
	VideoURL         string    `json:"video_url"`
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"`
	Featured         bool      `json:"featured"`
	Active           bool      `json:"active"`
	Region           string    `json:"region"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
	CreatedBy        string    `json:"created_by"`
	UpdatedBy        string    `json:"updated_by"`

	// Enrichment: distinct linked names, alphabetical.
	CategoryNames   []string `json:"category_names"`
	TechnologyNames []string `json:"technology_names"`
	ClientNames     []string `json:"client_names"`

	// Full linked records, populated by single-record lookups only.
	Categories   []Related `json:"categories,omitempty"`
	Technologies []Related `json:"technologies,omitempty"`
	Clients      []Related `json:"clients,omitempty"`

	// Status is "Active" or "Deleted", populated by management listings only.
	Status string `json:"status,omitempty"`
}

// Related is the summary of a linked category, technology or client.
type Related struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	LogoURL   string `json:"logo_url"`
	SortOrder int    `json:"sort_order"`
}

// Payload carries every writable field of a portfolio. Update is a full
// replace, so omitted scalars are cleared and omitted link lists empty the set.
type Payload struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	CaseStudy        string   `json:"case_study"`
	ProblemStatement string   `json:"problem_statement"`
	Results          []string `json:"results"`
	ImageURL         string   `json:"image_url"`
	ProjectURL       string   `json:"project_url"`
	VideoURL         string   `json:"video_url"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Featured         bool     `json:"featured"`
	Region           string   `json:"region"`

	Categories   []int64 `json:"categories"`
	Technologies []int64 `json:"technologies"`
	Clients      []int64 `json:"clients"`
}

// RegionGroup is one bucket of the by-region aggregation.
type RegionGroup struct {
	Region string   `json:"region"`
	Count  int      `json:"count"`
	Names  []string `json:"names"`
}

// # Search Params

// Filter narrows public listings.
type Filter struct {
	CategorySlug string // matches when any linked active category has this slug
	FeaturedOnly bool
	Limit        int // 0 means no limit
}

// # Status Labels

const (
	StatusActive  = "Active"
	StatusDeleted = "Deleted"
)

// # Field Identifiers

// Field names used in validation details and query parameters.
const (
	FieldName         = "name"
	FieldDescription  = "description"
	FieldImageURL     = "image_url"
	FieldProjectURL   = "project_url"
	FieldVideoURL     = "video_url"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldRegion       = "region"
	FieldResults      = "results"
	FieldCategories   = "categories"
	FieldTechnologies = "technologies"
	FieldClients      = "clients"
	FieldLimit        = "limit"
	FieldConfirm      = "confirm"
	FieldCategory     = "category"
	FieldFeatured     = "featured"
)
