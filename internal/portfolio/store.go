// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package portfolio

import "context"

// # Portfolio Data Access

// Repository defines the data access contract for the portfolio aggregate.
// It is the only writer of the portfolio junction tables.
type Repository interface {

	// ## Reads

	/*
		ListActive retrieves active portfolios, newest first.

		Parameters:
		  - context: context.Context
		  - filter: Filter (Category slug, featured-only, limit)

		Returns:
		  - []*Portfolio: Rows enriched with distinct linked names
		  - error: Database retrieval failures
	*/
	ListActive(context context.Context, filter Filter) ([]*Portfolio, error)

	/*
		ListAll retrieves every portfolio regardless of the active flag.

		Returns:
		  - []*Portfolio: Rows enriched with linked names and a Status label
		  - error: Database retrieval failures
	*/
	ListAll(context context.Context) ([]*Portfolio, error)

	/*
		FindByID retrieves one active portfolio with full linked records.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *Portfolio: The hydrated aggregate
		  - error: apperr.NotFound when no active row matches
	*/
	FindByID(context context.Context, id int64) (*Portfolio, error)

	/*
		CountByRegion groups active portfolios by their exact region label.

		Returns:
		  - []*RegionGroup: Count desc, then region asc
		  - error: Database retrieval failures
	*/
	CountByRegion(context context.Context) ([]*RegionGroup, error)

	// ## Writes

	/*
		Create inserts the scalar row and its link sets in one transaction.

		Parameters:
		  - context: context.Context
		  - payload: *Payload (Validated, link ids unique)
		  - actor: string (Recorded in created_by and updated_by)

		Returns:
		  - int64: The new identifier
		  - error: Validation for unknown link ids, otherwise persistence errors
	*/
	Create(context context.Context, payload *Payload, actor string) (int64, error)

	/*
		Update replaces the scalars and all three link sets of an active row.

		Returns:
		  - error: apperr.NotFound, validation or persistence errors
	*/
	Update(context context.Context, id int64, payload *Payload, actor string) error

	// SoftDelete marks an active portfolio inactive.
	SoftDelete(context context.Context, id int64) error

	// Restore marks a portfolio active again. Restoring an active row is a no-op.
	Restore(context context.Context, id int64) error

	// HardDelete removes the row permanently; junction rows cascade.
	HardDelete(context context.Context, id int64) error
}
