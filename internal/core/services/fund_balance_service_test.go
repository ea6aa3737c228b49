package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ngofin/ledgersync/internal/apperrors"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockFundSourceRepository is a mock implementation of FundSourceRepositoryFacade.
type MockFundSourceRepository struct {
	mock.Mock
}

func (m *MockFundSourceRepository) FindFundSourceByID(ctx context.Context, fundSourceID string) (*domain.FundSource, error) {
	args := m.Called(ctx, fundSourceID)
	fund, _ := args.Get(0).(*domain.FundSource)
	return fund, args.Error(1)
}

func (m *MockFundSourceRepository) ListFundSources(ctx context.Context, limit int) ([]domain.FundSource, error) {
	args := m.Called(ctx, limit)
	funds, _ := args.Get(0).([]domain.FundSource)
	return funds, args.Error(1)
}

func (m *MockFundSourceRepository) ApplyAmountDelta(ctx context.Context, fundSourceID string, delta decimal.Decimal) (*domain.FundSource, error) {
	args := m.Called(ctx, fundSourceID, delta)
	fund, _ := args.Get(0).(*domain.FundSource)
	return fund, args.Error(1)
}

type FundBalanceServiceTestSuite struct {
	suite.Suite
	mockRepo *MockFundSourceRepository
	service  portssvc.FundBalanceSvc
	ctx      context.Context
}

func (s *FundBalanceServiceTestSuite) SetupTest() {
	s.mockRepo = new(MockFundSourceRepository)
	s.service = services.NewFundBalanceService(s.mockRepo)
	s.ctx = context.Background()
}

func TestFundBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FundBalanceServiceTestSuite))
}

func (s *FundBalanceServiceTestSuite) TestApplyDelta_Success() {
	delta := decimal.RequireFromString("-500")
	updated := &domain.FundSource{
		FundSourceID:   "F1",
		Amount:         decimal.RequireFromString("9500"),
		OriginalAmount: decimal.RequireFromString("10000"),
		Status:         domain.FundPartiallyUsed,
	}
	s.mockRepo.On("ApplyAmountDelta", s.ctx, "F1", delta).Return(updated, nil).Once()

	fund, err := s.service.ApplyDelta(s.ctx, "F1", delta)

	s.Require().NoError(err)
	s.Equal(updated, fund)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *FundBalanceServiceTestSuite) TestApplyDelta_MissingID() {
	fund, err := s.service.ApplyDelta(s.ctx, "", decimal.RequireFromString("-1"))

	s.ErrorIs(err, apperrors.ErrInvalidEvent)
	s.Nil(fund)
	s.mockRepo.AssertNotCalled(s.T(), "ApplyAmountDelta", mock.Anything, mock.Anything, mock.Anything)
}

func (s *FundBalanceServiceTestSuite) TestApplyDelta_FundGone() {
	delta := decimal.RequireFromString("-500")
	s.mockRepo.On("ApplyAmountDelta", s.ctx, "F404", delta).Return(nil, apperrors.ErrNotFound).Once()

	fund, err := s.service.ApplyDelta(s.ctx, "F404", delta)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(fund)
	s.mockRepo.AssertExpectations(s.T())
}

func (s *FundBalanceServiceTestSuite) TestApplyDelta_StoreError() {
	delta := decimal.RequireFromString("-500")
	storeErr := errors.New("connection reset")
	s.mockRepo.On("ApplyAmountDelta", s.ctx, "F1", delta).Return(nil, storeErr).Once()

	fund, err := s.service.ApplyDelta(s.ctx, "F1", delta)

	s.ErrorIs(err, storeErr)
	s.Nil(fund)
	s.mockRepo.AssertExpectations(s.T())
}
