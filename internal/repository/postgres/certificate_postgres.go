package postgres

import (
	"context"
	"database/sql"

	"certviewer/internal/model"
	"certviewer/internal/repository"
)

// CertificatePostgres is a PostgreSQL implementation of repository.CertificateRepository.
type CertificatePostgres struct {
	db *sql.DB
}

// NewCertificatePostgres creates a new CertificatePostgres repository.
func NewCertificatePostgres(db *sql.DB) *CertificatePostgres {
	return &CertificatePostgres{db: db}
}

var _ repository.CertificateRepository = (*CertificatePostgres)(nil)

// FindByID fetches a single certificate by its ID.
func (r *CertificatePostgres) FindByID(ctx context.Context, id string) (*model.Certificate, error) {
	const q = `
		SELECT id, recipient_name, recipient_email, title, subtitle, description,
		       issuer_name, issued_on, document_key, content_hash, transaction_id, revoked
		FROM certificates
		WHERE id = $1
	`
	row := r.db.QueryRowContext(ctx, q, id)
	var c model.Certificate
	if err := row.Scan(
		&c.ID,
		&c.RecipientName,
		&c.RecipientEmail,
		&c.Title,
		&c.Subtitle,
		&c.Description,
		&c.IssuerName,
		&c.IssuedOn,
		&c.DocumentKey,
		&c.ContentHash,
		&c.TransactionID,
		&c.Revoked,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
