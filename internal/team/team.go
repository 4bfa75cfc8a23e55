// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package team manages the human-resources showcase: the people behind the
portfolio, their skills, certifications and specialisations.
*/
package team

import (
	"context"
	"time"
)

// Member is one person on the team page.
type Member struct {
	ID              int64     `json:"id"`
	FullName        string    `json:"full_name"`
	Position        string    `json:"position"`
	Bio             string    `json:"bio"`
	PhotoURL        string    `json:"photo_url"`
	Skills          []string  `json:"skills"`
	Certifications  []string  `json:"certifications"`
	Specializations []string  `json:"specializations"`
	YearsExperience int       `json:"years_experience"`
	LinkedInURL     string    `json:"linkedin_url"`
	GithubURL       string    `json:"github_url"`
	Active          bool      `json:"active"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Payload carries the writable member fields. Active defaults to true.
type Payload struct {
	FullName        string   `json:"full_name" validate:"notblank,max=255"`
	Position        string   `json:"position" validate:"max=255"`
	Bio             string   `json:"bio"`
	PhotoURL        string   `json:"photo_url" validate:"httpurl,max=2048"`
	Skills          []string `json:"skills" validate:"dive,max=100"`
	Certifications  []string `json:"certifications" validate:"dive,max=255"`
	Specializations []string `json:"specializations" validate:"dive,max=100"`
	YearsExperience int      `json:"years_experience" validate:"gte=0,lte=80"`
	LinkedInURL     string   `json:"linkedin_url" validate:"httpurl,max=2048"`
	GithubURL       string   `json:"github_url" validate:"httpurl,max=2048"`
	Active          *bool    `json:"active"`
	SortOrder       int      `json:"sort_order"`
}

// Repository defines the data access contract for team members.
type Repository interface {
	// List returns members by sort order, then name.
	List(context context.Context, includeInactive bool) ([]*Member, error)
	FindByID(context context.Context, id int64) (*Member, error)
	Create(context context.Context, payload *Payload) (int64, error)
	Update(context context.Context, id int64, payload *Payload) error
	Delete(context context.Context, id int64) error
}

const FieldIncludeInactive = "include_inactive"
