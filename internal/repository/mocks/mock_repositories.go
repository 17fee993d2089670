package mocks

import (
	"context"

	"certviewer/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockCertificateRepository struct {
	mock.Mock
}

func (m *MockCertificateRepository) FindByID(ctx context.Context, id string) (*model.Certificate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Certificate), args.Error(1)
}

type MockIntroductionRepository struct {
	mock.Mock
}

func (m *MockIntroductionRepository) Create(ctx context.Context, in *model.Introduction) (*model.Introduction, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Introduction), args.Error(1)
}
