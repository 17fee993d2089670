package postgres

import (
	"context"
	"database/sql"

	"certviewer/internal/model"
	"certviewer/internal/repository"
)

// IntroductionPostgres is a PostgreSQL implementation of repository.IntroductionRepository.
// It uses parameterized queries and contains no business logic.
type IntroductionPostgres struct {
	db *sql.DB
}

// NewIntroductionPostgres creates a new IntroductionPostgres repository.
func NewIntroductionPostgres(db *sql.DB) *IntroductionPostgres {
	return &IntroductionPostgres{db: db}
}

var _ repository.IntroductionRepository = (*IntroductionPostgres)(nil)

// Create inserts an introduction row and returns the stored record.
func (r *IntroductionPostgres) Create(ctx context.Context, in *model.Introduction) (*model.Introduction, error) {
	const q = `
		INSERT INTO introductions (id, recipient_key, email, first_name, last_name,
			street_address, city, state, zipcode, country, comments, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, recipient_key, email, first_name, last_name,
			street_address, city, state, zipcode, country, comments, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		in.ID,
		in.RecipientKey,
		in.Email,
		in.FirstName,
		in.LastName,
		in.StreetAddress,
		in.City,
		in.State,
		in.ZipCode,
		in.Country,
		in.Comments,
		in.CreatedAt,
	)
	var out model.Introduction
	if err := row.Scan(
		&out.ID,
		&out.RecipientKey,
		&out.Email,
		&out.FirstName,
		&out.LastName,
		&out.StreetAddress,
		&out.City,
		&out.State,
		&out.ZipCode,
		&out.Country,
		&out.Comments,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}
