// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package feedback collects visitor testimonials from the public site.

Anyone may submit; editors moderate. Only entries flagged as displayed are
shown publicly, and then without the visitor's email or network details.
*/
package feedback

import (
	"context"
	"time"

	"github.com/taibuivan/kahasolusi/pkg/pagination"
)

// Entry is one stored submission.
type Entry struct {
	ID           int64     `json:"id"`
	VisitorName  string    `json:"visitor_name"`
	VisitorEmail string    `json:"visitor_email"`
	Message      string    `json:"message"`
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	IsDisplayed  bool      `json:"is_displayed"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
}

// Testimonial is the public projection of a displayed entry.
type Testimonial struct {
	ID          int64     `json:"id"`
	VisitorName string    `json:"visitor_name"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}

// Submission is the public form body.
type Submission struct {
	VisitorName  string `json:"visitor_name" validate:"notblank,max=255"`
	VisitorEmail string `json:"visitor_email" validate:"required,email,max=255"`
	Message      string `json:"message" validate:"notblank,max=5000"`
}

// Origin records where a submission came from.
type Origin struct {
	IPAddress string
	UserAgent string
}

// FlagsPatch updates moderation flags. Nil fields are left unchanged.
type FlagsPatch struct {
	IsDisplayed *bool `json:"is_displayed"`
	IsRead      *bool `json:"is_read"`
}

// Filter narrows the management listing.
type Filter struct {
	pagination.Params
	UnreadOnly bool
}

// Repository defines the data access contract for feedback.
type Repository interface {
	Create(context context.Context, submission *Submission, origin Origin) (*Entry, error)

	// ListDisplayed returns the newest displayed entries, at most limit.
	ListDisplayed(context context.Context, limit int) ([]*Testimonial, error)

	/*
		List returns one page of entries, newest first.

		Returns:
		  - []*Entry: The page
		  - int: Total entries matching the filter
		  - error: Database failures
	*/
	List(context context.Context, filter Filter) ([]*Entry, int, error)

	FindByID(context context.Context, id int64) (*Entry, error)
	UpdateFlags(context context.Context, id int64, patch FlagsPatch) (*Entry, error)
	Delete(context context.Context, id int64) error
}

const (
	FieldFlags  = "flags"
	FieldLimit  = "limit"
	FieldUnread = "unread"
)

// maxUserAgentLength caps the stored user agent.
const maxUserAgentLength = 512
