package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	cacheMocks "certviewer/internal/cache/mocks"
	"certviewer/internal/model"
	repoMocks "certviewer/internal/repository/mocks"
	"certviewer/internal/storage"
	storeMocks "certviewer/internal/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testCertID = "56aa3b4b-6ab9-4f0e-9f3e-7a5e3a5d0a11"

func testCertificate() *model.Certificate {
	return &model.Certificate{
		ID:            testCertID,
		RecipientName: "Ada Lovelace",
		Title:         "Certificate of Learning",
		Subtitle:      "Analytical Engines",
		IssuerName:    "Example Institute",
		IssuedOn:      time.Date(2016, 5, 4, 13, 0, 0, 0, time.UTC),
		DocumentKey:   "certificates/" + testCertID + ".json",
		TransactionID: "f00d",
	}
}

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

func TestCertificateService_Award(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		id         string
		setupMocks func(mRepo *repoMocks.MockCertificateRepository)
		wantErr    error
		wantSvcErr bool
		check      func(t *testing.T, a *model.Award)
	}{
		{
			name: "happy path",
			id:   testCertID,
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository) {
				mRepo.On("FindByID", ctx, testCertID).Return(testCertificate(), nil)
			},
			check: func(t *testing.T, a *model.Award) {
				assert.Equal(t, testCertID, a.CertificateID)
				assert.Equal(t, "Ada Lovelace", a.Name)
				assert.Equal(t, "Example Institute", a.Organization)
				assert.Equal(t, "2016-05-04", a.IssuedOn)
				assert.Equal(t, "f00d", a.TransactionID)
			},
		},
		{
			name:       "validation - empty id",
			id:         "",
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository) {},
			wantErr:    ErrIDRequired,
			wantSvcErr: true,
		},
		{
			name: "not found - mapping sql.ErrNoRows",
			id:   testCertID,
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository) {
				mRepo.On("FindByID", ctx, testCertID).Return(nil, sql.ErrNoRows)
			},
			wantErr:    ErrCertificateNotFound,
			wantSvcErr: true,
		},
		{
			name: "repository error is not a service error",
			id:   testCertID,
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository) {
				mRepo.On("FindByID", ctx, testCertID).Return(nil, errors.New("db fail"))
			},
			wantErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockCertificateRepository)
			svc := NewCertificateService(mRepo, nil, nil, time.Minute, nil)
			tt.setupMocks(mRepo)

			award, err := svc.Award(ctx, tt.id)

			if tt.wantErr != nil {
				assert.Nil(t, award)
				assert.ErrorContains(t, err, tt.wantErr.Error())
				var se *Error
				assert.Equal(t, tt.wantSvcErr, errors.As(err, &se))
				if tt.wantSvcErr {
					assert.ErrorIs(t, err, tt.wantErr)
				}
			} else {
				assert.NoError(t, err)
				tt.check(t, award)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestCertificateService_AwardJSON(t *testing.T) {
	ctx := context.Background()
	doc := `{"recipient":{"name":"Ada Lovelace"},"signature":"abc"}`
	cacheKey := "certificate:" + testCertID

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockCertificateRepository, mStore *storeMocks.MockStorage, mCache *cacheMocks.MockCache)
		want       string
		wantErr    error
		wantErrMsg string
	}{
		{
			name: "cache hit skips the stores",
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository, mStore *storeMocks.MockStorage, mCache *cacheMocks.MockCache) {
				mCache.On("Get", ctx, cacheKey).Return([]byte(doc), true, nil)
			},
			want: doc,
		},
		{
			name: "cache miss reads storage and fills cache",
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository, mStore *storeMocks.MockStorage, mCache *cacheMocks.MockCache) {
				mCache.On("Get", ctx, cacheKey).Return(nil, false, nil)
				mRepo.On("FindByID", ctx, testCertID).Return(testCertificate(), nil)
				mStore.On("Get", ctx, "certificates/"+testCertID+".json").Return(body(doc), storage.ObjectInfo{}, nil)
				mCache.On("Set", ctx, cacheKey, []byte(doc), time.Minute).Return(nil)
			},
			want: doc,
		},
		{
			name: "cache failures are tolerated",
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository, mStore *storeMocks.MockStorage, mCache *cacheMocks.MockCache) {
				mCache.On("Get", ctx, cacheKey).Return(nil, false, errors.New("redis down"))
				mRepo.On("FindByID", ctx, testCertID).Return(testCertificate(), nil)
				mStore.On("Get", ctx, mock.Anything).Return(body(doc), storage.ObjectInfo{}, nil)
				mCache.On("Set", ctx, cacheKey, mock.Anything, time.Minute).Return(errors.New("redis down"))
			},
			want: doc,
		},
		{
			name: "certificate not found",
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository, mStore *storeMocks.MockStorage, mCache *cacheMocks.MockCache) {
				mCache.On("Get", ctx, cacheKey).Return(nil, false, nil)
				mRepo.On("FindByID", ctx, testCertID).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrCertificateNotFound,
		},
		{
			name: "document missing",
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository, mStore *storeMocks.MockStorage, mCache *cacheMocks.MockCache) {
				mCache.On("Get", ctx, cacheKey).Return(nil, false, nil)
				mRepo.On("FindByID", ctx, testCertID).Return(testCertificate(), nil)
				mStore.On("Get", ctx, mock.Anything).
					Return(nil, storage.ObjectInfo{}, fmt.Errorf("key: %w", storage.ErrObjectNotFound))
			},
			wantErr: ErrDocumentNotFound,
		},
		{
			name: "document is not json",
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository, mStore *storeMocks.MockStorage, mCache *cacheMocks.MockCache) {
				mCache.On("Get", ctx, cacheKey).Return(nil, false, nil)
				mRepo.On("FindByID", ctx, testCertID).Return(testCertificate(), nil)
				mStore.On("Get", ctx, mock.Anything).Return(body("<xml/>"), storage.ObjectInfo{}, nil)
			},
			wantErr: ErrInvalidDocument,
		},
		{
			name: "storage error",
			setupMocks: func(mRepo *repoMocks.MockCertificateRepository, mStore *storeMocks.MockStorage, mCache *cacheMocks.MockCache) {
				mCache.On("Get", ctx, cacheKey).Return(nil, false, nil)
				mRepo.On("FindByID", ctx, testCertID).Return(testCertificate(), nil)
				mStore.On("Get", ctx, mock.Anything).Return(nil, storage.ObjectInfo{}, errors.New("connection refused"))
			},
			wantErrMsg: "get document: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockCertificateRepository)
			mStore := new(storeMocks.MockStorage)
			mCache := new(cacheMocks.MockCache)
			svc := NewCertificateService(mRepo, mStore, mCache, time.Minute, nil)
			tt.setupMocks(mRepo, mStore, mCache)

			got, err := svc.AwardJSON(ctx, testCertID)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
				var se *Error
				assert.False(t, errors.As(err, &se))
			default:
				assert.NoError(t, err)
				assert.JSONEq(t, tt.want, string(got))
				assert.True(t, json.Valid(got))
			}
			mRepo.AssertExpectations(t)
			mStore.AssertExpectations(t)
			mCache.AssertExpectations(t)
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Op: "award", ID: testCertID, Err: ErrCertificateNotFound}
	assert.Equal(t, "award "+testCertID+": certificate not found", err.Error())

	err = &Error{Op: "insert introduction", Err: ErrInvalidIntroduction}
	assert.Equal(t, "insert introduction: invalid introduction", err.Error())
	assert.ErrorIs(t, err, ErrInvalidIntroduction)
}
