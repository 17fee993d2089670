package model

// Verification statuses.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"

	StatusVerified = "verified"
)

// VerificationStep is one check performed by the verifier.
type VerificationStep struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// VerificationResult reports whether a certificate is authentic.
// Status is StatusVerified when every step passed, StatusFailed otherwise.
type VerificationResult struct {
	CertificateID string             `json:"certificate_id"`
	Status        string             `json:"status"`
	Steps         []VerificationStep `json:"steps"`
}
