package model

import "time"

// Certificate is the indexed record of an issued certificate.
// The signed document itself lives in object storage under DocumentKey.
type Certificate struct {
	ID             string    `json:"id"`
	RecipientName  string    `json:"recipient_name"`
	RecipientEmail string    `json:"recipient_email"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle"`
	Description    string    `json:"description"`
	IssuerName     string    `json:"issuer_name"`
	IssuedOn       time.Time `json:"issued_on"`
	DocumentKey    string    `json:"document_key"`
	ContentHash    string    `json:"content_hash"`
	TransactionID  string    `json:"transaction_id"`
	Revoked        bool      `json:"revoked"`
}

// Award is the renderable view of a certificate, consumed by the award template.
type Award struct {
	CertificateID string
	Name          string
	Title         string
	Subtitle      string
	Description   string
	Organization  string
	IssuedOn      string
	TransactionID string
	Revoked       bool
}
