package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"certviewer/internal/model"
	repoMocks "certviewer/internal/repository/mocks"
	"certviewer/internal/storage"
	storeMocks "certviewer/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func digest(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

func stepStatuses(res *model.VerificationResult) []string {
	out := make([]string, 0, len(res.Steps))
	for _, s := range res.Steps {
		out = append(out, s.Status)
	}
	return out
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	doc := `{"signature":"abc"}`

	tests := []struct {
		name       string
		cert       func() *model.Certificate
		setupStore func(mStore *storeMocks.MockStorage)
		wantStatus string
		wantSteps  []string
	}{
		{
			name: "verified",
			cert: func() *model.Certificate {
				c := testCertificate()
				c.ContentHash = digest(doc)
				return c
			},
			setupStore: func(mStore *storeMocks.MockStorage) {
				mStore.On("Get", ctx, mock.Anything).Return(body(doc), storage.ObjectInfo{}, nil)
			},
			wantStatus: model.StatusVerified,
			wantSteps:  []string{model.StatusPassed, model.StatusPassed, model.StatusPassed, model.StatusPassed},
		},
		{
			name: "hash comparison is case insensitive",
			cert: func() *model.Certificate {
				c := testCertificate()
				c.ContentHash = fmt.Sprintf("%X", sha256.Sum256([]byte(doc)))
				return c
			},
			setupStore: func(mStore *storeMocks.MockStorage) {
				mStore.On("Get", ctx, mock.Anything).Return(body(doc), storage.ObjectInfo{}, nil)
			},
			wantStatus: model.StatusVerified,
			wantSteps:  []string{model.StatusPassed, model.StatusPassed, model.StatusPassed, model.StatusPassed},
		},
		{
			name: "tampered document",
			cert: func() *model.Certificate {
				c := testCertificate()
				c.ContentHash = digest(`{"signature":"original"}`)
				return c
			},
			setupStore: func(mStore *storeMocks.MockStorage) {
				mStore.On("Get", ctx, mock.Anything).Return(body(doc), storage.ObjectInfo{}, nil)
			},
			wantStatus: model.StatusFailed,
			wantSteps:  []string{model.StatusPassed, model.StatusPassed, model.StatusFailed, model.StatusPassed},
		},
		{
			name: "revoked",
			cert: func() *model.Certificate {
				c := testCertificate()
				c.ContentHash = digest(doc)
				c.Revoked = true
				return c
			},
			setupStore: func(mStore *storeMocks.MockStorage) {
				mStore.On("Get", ctx, mock.Anything).Return(body(doc), storage.ObjectInfo{}, nil)
			},
			wantStatus: model.StatusFailed,
			wantSteps:  []string{model.StatusPassed, model.StatusPassed, model.StatusPassed, model.StatusFailed},
		},
		{
			name: "document missing",
			cert: testCertificate,
			setupStore: func(mStore *storeMocks.MockStorage) {
				mStore.On("Get", ctx, mock.Anything).
					Return(nil, storage.ObjectInfo{}, fmt.Errorf("key: %w", storage.ErrObjectNotFound))
			},
			wantStatus: model.StatusFailed,
			wantSteps:  []string{model.StatusPassed, model.StatusFailed, model.StatusSkipped, model.StatusPassed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockCertificateRepository)
			mStore := new(storeMocks.MockStorage)
			mRepo.On("FindByID", ctx, testCertID).Return(tt.cert(), nil)
			tt.setupStore(mStore)

			res, err := NewVerifier(mRepo, mStore).Verify(ctx, testCertID)

			assert.NoError(t, err)
			if assert.NotNil(t, res) {
				assert.Equal(t, testCertID, res.CertificateID)
				assert.Equal(t, tt.wantStatus, res.Status)
				assert.Equal(t, tt.wantSteps, stepStatuses(res))
				assert.Equal(t, StepLocateRecord, res.Steps[0].Name)
				assert.Equal(t, StepRevocation, res.Steps[len(res.Steps)-1].Name)
			}
			mRepo.AssertExpectations(t)
			mStore.AssertExpectations(t)
		})
	}
}

func TestVerifier_VerifyErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown certificate is a service error", func(t *testing.T) {
		mRepo := new(repoMocks.MockCertificateRepository)
		mRepo.On("FindByID", ctx, testCertID).Return(nil, sql.ErrNoRows)

		res, err := NewVerifier(mRepo, nil).Verify(ctx, testCertID)

		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrCertificateNotFound)
		assert.Equal(t, "verify "+testCertID+": certificate not found", err.Error())
	})

	t.Run("storage fault propagates", func(t *testing.T) {
		mRepo := new(repoMocks.MockCertificateRepository)
		mStore := new(storeMocks.MockStorage)
		mRepo.On("FindByID", ctx, testCertID).Return(testCertificate(), nil)
		mStore.On("Get", ctx, mock.Anything).Return(nil, storage.ObjectInfo{}, errors.New("timeout"))

		res, err := NewVerifier(mRepo, mStore).Verify(ctx, testCertID)

		assert.Nil(t, res)
		assert.ErrorContains(t, err, "timeout")
		var se *Error
		assert.False(t, errors.As(err, &se))
	})
}
