package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"certviewer/internal/model"
	"certviewer/internal/repository"
	"certviewer/internal/storage"
)

// Verification step names, in the order they run.
const (
	StepLocateRecord  = "Locating certificate record"
	StepFetchDocument = "Fetching certificate document"
	StepCompareHash   = "Comparing content hash"
	StepRevocation    = "Checking revocation status"
)

// Verifier determines whether a certificate is authentic.
type Verifier interface {
	// Verify runs every check for the certificate. Failed checks are reported in the result;
	// an error is returned only when the certificate cannot be examined at all.
	Verify(ctx context.Context, id string) (*model.VerificationResult, error)
}

type verifier struct {
	certs *certificateService
	store storage.Storage
}

// NewVerifier constructs a Verifier that checks stored documents against the certificate index.
func NewVerifier(repo repository.CertificateRepository, store storage.Storage) Verifier {
	return &verifier{certs: &certificateService{repo: repo}, store: store}
}

func (v *verifier) Verify(ctx context.Context, id string) (*model.VerificationResult, error) {
	cert, err := v.certs.find(ctx, "verify", id)
	if err != nil {
		return nil, err
	}

	steps := []model.VerificationStep{{Name: StepLocateRecord, Status: model.StatusPassed}}

	doc, err := readDocument(ctx, v.store, cert.DocumentKey)
	switch {
	case errors.Is(err, storage.ErrObjectNotFound):
		steps = append(steps,
			model.VerificationStep{Name: StepFetchDocument, Status: model.StatusFailed, Detail: "document is missing from the store"},
			model.VerificationStep{Name: StepCompareHash, Status: model.StatusSkipped},
		)
	case err != nil:
		return nil, err
	default:
		steps = append(steps, model.VerificationStep{Name: StepFetchDocument, Status: model.StatusPassed})
		sum := sha256.Sum256(doc)
		digest := hex.EncodeToString(sum[:])
		if strings.EqualFold(digest, cert.ContentHash) {
			steps = append(steps, model.VerificationStep{Name: StepCompareHash, Status: model.StatusPassed})
		} else {
			steps = append(steps, model.VerificationStep{
				Name:   StepCompareHash,
				Status: model.StatusFailed,
				Detail: "document digest " + digest + " does not match recorded " + cert.ContentHash,
			})
		}
	}

	if cert.Revoked {
		steps = append(steps, model.VerificationStep{Name: StepRevocation, Status: model.StatusFailed, Detail: "certificate has been revoked"})
	} else {
		steps = append(steps, model.VerificationStep{Name: StepRevocation, Status: model.StatusPassed})
	}

	status := model.StatusVerified
	for _, s := range steps {
		if s.Status != model.StatusPassed {
			status = model.StatusFailed
			break
		}
	}
	return &model.VerificationResult{CertificateID: cert.ID, Status: status, Steps: steps}, nil
}
