// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import "context"

// # Reference Data Access

// Repository defines the data access contract for one reference [Kind].
type Repository interface {

	/*
		List retrieves records ordered by sort order, then name.

		Parameters:
		  - context: context.Context
		  - includeInactive: bool

		Returns:
		  - []*Reference: Records with their portfolio counts
		  - error: Database retrieval failures
	*/
	List(context context.Context, includeInactive bool) ([]*Reference, error)

	// FindByID retrieves a record by primary key, active or not.
	FindByID(context context.Context, id int64) (*Reference, error)

	// FindBySlug retrieves a record by its URL slug, active or not.
	FindBySlug(context context.Context, slug string) (*Reference, error)

	// Create inserts a record and returns it as stored.
	Create(context context.Context, payload *Payload) (*Reference, error)

	// Update replaces the writable fields of a record and returns it as stored.
	Update(context context.Context, id int64, payload *Payload) (*Reference, error)

	// ToggleActive flips the active flag and returns the record.
	ToggleActive(context context.Context, id int64) (*Reference, error)

	// Delete removes a record; portfolio links cascade.
	Delete(context context.Context, id int64) error
}
