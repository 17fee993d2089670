package repository

import (
	"context"

	"certviewer/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., postgres) inside this directory.

// CertificateRepository reads the certificate index. It is read-only: issuance happens elsewhere.
type CertificateRepository interface {
	// FindByID returns a certificate record by its identifier.
	// Returns sql.ErrNoRows when no record exists.
	FindByID(ctx context.Context, id string) (*model.Certificate, error)
}

// IntroductionRepository persists introduction records.
type IntroductionRepository interface {
	// Create inserts a new introduction and returns the stored row.
	Create(ctx context.Context, intro *model.Introduction) (*model.Introduction, error)
}
