package mocks

import (
	"context"
	"encoding/json"

	"certviewer/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCertificateService struct {
	mock.Mock
}

func (m *MockCertificateService) Award(ctx context.Context, id string) (*model.Award, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Award), args.Error(1)
}

func (m *MockCertificateService) AwardJSON(ctx context.Context, id string) (json.RawMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

type MockIntroductionService struct {
	mock.Mock
}

func (m *MockIntroductionService) Insert(ctx context.Context, in *model.Introduction) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

type MockVerifier struct {
	mock.Mock
}

func (m *MockVerifier) Verify(ctx context.Context, id string) (*model.VerificationResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.VerificationResult), args.Error(1)
}
