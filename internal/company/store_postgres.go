// Copyright (c) 2026 Kahasolusi. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package company

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/kahasolusi/internal/platform/database/schema"
	"github.com/taibuivan/kahasolusi/internal/platform/dberr"
	"github.com/taibuivan/kahasolusi/internal/platform/postgres"
)

// profileID is the fixed key of the singleton row.
const profileID = 1

// PostgresRepository implements [Repository].
type PostgresRepository struct {
	db postgres.DB
}

// NewPostgresRepository returns a repository bound to a ready database handle.
func NewPostgresRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func profileColumns() []string {
	table := schema.CompanyProfile
	return []string{
		table.Name, table.Address, table.LogoURL, table.Vision, table.Mission, table.Description,
		table.Phone, table.Email, table.LinkedInURL, table.Latitude, table.Longitude,
		table.UpdatedAt, table.UpdatedBy,
	}
}

func scanDestinations(profile *Profile) []any {
	return []any{
		&profile.Name, &profile.Address, &profile.LogoURL, &profile.Vision, &profile.Mission, &profile.Description,
		&profile.Phone, &profile.Email, &profile.LinkedInURL, &profile.Latitude, &profile.Longitude,
		&profile.UpdatedAt, &profile.UpdatedBy,
	}
}

// Get retrieves the profile row.
func (repository *PostgresRepository) Get(context context.Context) (*Profile, error) {
	table := schema.CompanyProfile
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		strings.Join(profileColumns(), ", "), table.Table, table.ID,
	)

	profile := &Profile{}
	if err := repository.db.QueryRow(context, query, profileID).Scan(scanDestinations(profile)...); err != nil {
		return nil, dberr.WrapNotFound(err, "Company profile", "get company profile")
	}

	return profile, nil
}

/*
Save upserts the singleton row.

Description: INSERT ... ON CONFLICT (id) DO UPDATE, so the first save creates
the row and every later save overwrites it.
*/
func (repository *PostgresRepository) Save(context context.Context, payload *Payload, actor string) (*Profile, error) {
	table := schema.CompanyProfile
	writable := []string{
		table.Name, table.Address, table.LogoURL, table.Vision, table.Mission, table.Description,
		table.Phone, table.Email, table.LinkedInURL, table.Latitude, table.Longitude, table.UpdatedBy,
	}

	placeholders := make([]string, len(writable))
	assignments := make([]string, len(writable))
	for index, column := range writable {
		placeholders[index] = fmt.Sprintf("$%d", index+2)
		assignments[index] = fmt.Sprintf("%s = EXCLUDED.%s", column, column)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, %s)
		ON CONFLICT (%s) DO UPDATE SET %s, %s = NOW()
		RETURNING %s`,
		table.Table, table.ID, strings.Join(writable, ", "),
		strings.Join(placeholders, ", "),
		table.ID, strings.Join(assignments, ", "), table.UpdatedAt,
		strings.Join(profileColumns(), ", "),
	)

	profile := &Profile{}
	err := repository.db.QueryRow(context, query, profileID,
		payload.Name, payload.Address, payload.LogoURL, payload.Vision, payload.Mission, payload.Description,
		payload.Phone, payload.Email, payload.LinkedInURL, payload.Latitude, payload.Longitude, actor,
	).Scan(scanDestinations(profile)...)
	if err != nil {
		return nil, dberr.Wrap(err, "save company profile")
	}

	return profile, nil
}
