// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds table and column descriptors used to build SQL.
package schema

// PortfolioTable represents the 'portfolio' table
type PortfolioTable struct {
	Table            string
	ID               string
	Name             string
	Description      string
	CaseStudy        string
	ProblemStatement string
	ResultsJSON      string
	ImageURL         string
	ProjectURL       string
	VideoURL         string
	StartDate        string
	EndDate          string
	Featured         string
	Active           string
	Region           string
	CreatedAt        string
	UpdatedAt        string
	CreatedBy        string
	UpdatedBy        string
}

// Portfolio is the schema definition for portfolio
var Portfolio = PortfolioTable{
	Table:            "portfolio",
	ID:               "id",
	Name:             "name",
	Description:      "description",
	CaseStudy:        "case_study",
	ProblemStatement: "problem_statement",
	ResultsJSON:      "results_json",
	ImageURL:         "image_url",
	ProjectURL:       "project_url",
	VideoURL:         "video_url",
	StartDate:        "start_date",
	EndDate:          "end_date",
	Featured:         "featured",
	Active:           "active",
	Region:           "region",
	CreatedAt:        "created_at",
	UpdatedAt:        "updated_at",
	CreatedBy:        "created_by",
	UpdatedBy:        "updated_by",
}

// Writable returns the scalar columns written by create and update, in bind order.
func (t PortfolioTable) Writable() []string {
	return []string{
		t.Name, t.Description, t.CaseStudy, t.ProblemStatement, t.ResultsJSON,
		t.ImageURL, t.ProjectURL, t.VideoURL, t.StartDate, t.EndDate,
		t.Featured, t.Region,
	}
}

// JunctionTable describes a portfolio many-to-many link table.
type JunctionTable struct {
	Table       string
	PortfolioID string
	RefID       string

	// Ref is the parent table the RefID column points at.
	Ref ReferenceTable
}

// PortfolioCategory is the schema definition for portfolio_category
var PortfolioCategory = JunctionTable{
	Table:       "portfolio_category",
	PortfolioID: "portfolio_id",
	RefID:       "category_id",
	Ref:         Category,
}

// PortfolioTechnology is the schema definition for portfolio_technology
var PortfolioTechnology = JunctionTable{
	Table:       "portfolio_technology",
	PortfolioID: "portfolio_id",
	RefID:       "tech_id",
	Ref:         Technology,
}

// PortfolioClient is the schema definition for portfolio_client
var PortfolioClient = JunctionTable{
	Table:       "portfolio_client",
	PortfolioID: "portfolio_id",
	RefID:       "client_id",
	Ref:         Client,
}
