// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// ReferenceTable represents the shape shared by 'category', 'technology' and 'client'
type ReferenceTable struct {
	Table       string
	ID          string
	Name        string
	Slug        string
	Description string
	LogoURL     string
	Active      string
	SortOrder   string
	CreatedAt   string
	UpdatedAt   string
}

func newReferenceTable(table string) ReferenceTable {
	return ReferenceTable{
		Table:       table,
		ID:          "id",
		Name:        "name",
		Slug:        "slug",
		Description: "description",
		LogoURL:     "logo_url",
		Active:      "active",
		SortOrder:   "sort_order",
		CreatedAt:   "created_at",
		UpdatedAt:   "updated_at",
	}
}

// Category is the schema definition for category
var Category = newReferenceTable("category")

// Technology is the schema definition for technology
var Technology = newReferenceTable("technology")

// Client is the schema definition for client
var Client = newReferenceTable("client")

func (t ReferenceTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Description, t.LogoURL, t.Active, t.SortOrder, t.CreatedAt, t.UpdatedAt}
}
