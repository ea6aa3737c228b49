package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ngofin/ledgersync/internal/apperrors"
	"github.com/ngofin/ledgersync/internal/core/domain"
	portssvc "github.com/ngofin/ledgersync/internal/core/ports/services"
	"github.com/ngofin/ledgersync/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockCategoryRepository is a mock implementation of CategoryReader.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.BudgetCategory, error) {
	args := m.Called(ctx, categoryID)
	category, _ := args.Get(0).(*domain.BudgetCategory)
	return category, args.Error(1)
}

// MockJournalWriter is a mock implementation of JournalWriter.
type MockJournalWriter struct {
	mock.Mock
}

func (m *MockJournalWriter) SaveEntries(ctx context.Context, entries []domain.JournalEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// MockFundBalanceSvc is a mock implementation of FundBalanceSvc.
type MockFundBalanceSvc struct {
	mock.Mock
}

func (m *MockFundBalanceSvc) ApplyDelta(ctx context.Context, fundSourceID string, delta decimal.Decimal) (*domain.FundSource, error) {
	args := m.Called(ctx, fundSourceID, delta)
	fund, _ := args.Get(0).(*domain.FundSource)
	return fund, args.Error(1)
}

type SynchronizerServiceTestSuite struct {
	suite.Suite
	mockCategories  *MockCategoryRepository
	mockJournal     *MockJournalWriter
	mockFundBalance *MockFundBalanceSvc
	service         portssvc.SynchronizerSvc
	ctx             context.Context
}

func (s *SynchronizerServiceTestSuite) SetupTest() {
	s.mockCategories = new(MockCategoryRepository)
	s.mockJournal = new(MockJournalWriter)
	s.mockFundBalance = new(MockFundBalanceSvc)
	// The real builder runs underneath so persisted rows carry the actual
	// account coding.
	s.service = services.NewSynchronizerService(
		services.NewEntryBuilder(),
		s.mockFundBalance,
		s.mockCategories,
		s.mockJournal,
	)
	s.ctx = context.Background()
}

func TestSynchronizerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SynchronizerServiceTestSuite))
}

func (s *SynchronizerServiceTestSuite) approvedEvent() domain.LedgerEvent {
	return domain.LedgerEvent{
		EventID: "evt-1",
		Kind:    domain.EventExpenseApproved,
		Expense: &domain.Expense{
			ExpenseID:   "E1",
			Title:       "Field supplies",
			Amount:      decimal.RequireFromString("500"),
			CategoryID:  "C1",
			ExpenseDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Status:      domain.ExpenseApproved,
		},
	}
}

func (s *SynchronizerServiceTestSuite) TestHandleEvent_ExpenseApproved() {
	s.mockCategories.On("FindCategoryByID", mock.Anything, "C1").
		Return(&domain.BudgetCategory{CategoryID: "C1", Name: "Program Supplies"}, nil).Once()

	var saved []domain.JournalEntry
	s.mockJournal.On("SaveEntries", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.JournalEntry)
		}).
		Return(nil).Once()

	err := s.service.HandleEvent(s.ctx, s.approvedEvent())

	s.Require().NoError(err)
	s.Require().Len(saved, 2)
	s.Equal("EXP-E1", saved[0].TransactionID)
	s.Equal("Program Supplies Expenses", saved[0].AccountName)
	s.mockFundBalance.AssertNotCalled(s.T(), "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
	s.mockCategories.AssertExpectations(s.T())
	s.mockJournal.AssertExpectations(s.T())
}

func (s *SynchronizerServiceTestSuite) TestHandleEvent_CategoryLookupMissUsesFallback() {
	s.mockCategories.On("FindCategoryByID", mock.Anything, "C1").
		Return(nil, apperrors.ErrNotFound).Once()

	var saved []domain.JournalEntry
	s.mockJournal.On("SaveEntries", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.JournalEntry)
		}).
		Return(nil).Once()

	err := s.service.HandleEvent(s.ctx, s.approvedEvent())

	s.Require().NoError(err)
	s.Require().Len(saved, 2)
	s.Equal("General Expenses", saved[0].AccountName)
}

func (s *SynchronizerServiceTestSuite) TestHandleEvent_ExpensePaidWithFundSource() {
	fundID := "F1"
	event := domain.LedgerEvent{
		EventID: "evt-2",
		Kind:    domain.EventExpensePaid,
		Expense: &domain.Expense{
			ExpenseID:    "E1",
			Amount:       decimal.RequireFromString("500"),
			FundSourceID: &fundID,
			Status:       domain.ExpensePaid,
		},
	}

	s.mockJournal.On("SaveEntries", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockFundBalance.On("ApplyDelta", mock.Anything, "F1", decimal.RequireFromString("-500")).
		Return(&domain.FundSource{FundSourceID: "F1", Status: domain.FundPartiallyUsed}, nil).Once()

	err := s.service.HandleEvent(s.ctx, event)

	s.Require().NoError(err)
	s.mockCategories.AssertNotCalled(s.T(), "FindCategoryByID", mock.Anything, mock.Anything)
	s.mockJournal.AssertExpectations(s.T())
	s.mockFundBalance.AssertExpectations(s.T())
}

func (s *SynchronizerServiceTestSuite) TestHandleEvent_ExpensePaidWithoutFundSource() {
	event := domain.LedgerEvent{
		EventID: "evt-3",
		Kind:    domain.EventExpensePaid,
		Expense: &domain.Expense{
			ExpenseID: "E2",
			Amount:    decimal.RequireFromString("120"),
			Status:    domain.ExpensePaid,
		},
	}

	s.mockJournal.On("SaveEntries", mock.Anything, mock.Anything).Return(nil).Once()

	err := s.service.HandleEvent(s.ctx, event)

	s.Require().NoError(err)
	s.mockFundBalance.AssertNotCalled(s.T(), "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SynchronizerServiceTestSuite) TestHandleEvent_InvalidEventSkipsWrites() {
	event := s.approvedEvent()
	event.Expense.Amount = decimal.Zero

	s.mockCategories.On("FindCategoryByID", mock.Anything, "C1").
		Return(&domain.BudgetCategory{CategoryID: "C1", Name: "Program Supplies"}, nil).Once()

	err := s.service.HandleEvent(s.ctx, event)

	s.ErrorIs(err, apperrors.ErrInvalidEvent)
	s.mockJournal.AssertNotCalled(s.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (s *SynchronizerServiceTestSuite) TestHandleEvent_SaveFailureStopsBeforeBalanceUpdate() {
	fundID := "F1"
	event := domain.LedgerEvent{
		EventID: "evt-4",
		Kind:    domain.EventExpensePaid,
		Expense: &domain.Expense{
			ExpenseID:    "E1",
			Amount:       decimal.RequireFromString("500"),
			FundSourceID: &fundID,
			Status:       domain.ExpensePaid,
		},
	}

	storeErr := errors.New("write failed")
	s.mockJournal.On("SaveEntries", mock.Anything, mock.Anything).Return(storeErr).Once()

	err := s.service.HandleEvent(s.ctx, event)

	s.ErrorIs(err, storeErr)
	s.mockFundBalance.AssertNotCalled(s.T(), "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
}

func (s *SynchronizerServiceTestSuite) TestHandleEvent_BalanceUpdateFailureSurfaces() {
	fundID := "F404"
	event := domain.LedgerEvent{
		EventID: "evt-5",
		Kind:    domain.EventExpensePaid,
		Expense: &domain.Expense{
			ExpenseID:    "E1",
			Amount:       decimal.RequireFromString("500"),
			FundSourceID: &fundID,
			Status:       domain.ExpensePaid,
		},
	}

	s.mockJournal.On("SaveEntries", mock.Anything, mock.Anything).Return(nil).Once()
	s.mockFundBalance.On("ApplyDelta", mock.Anything, "F404", decimal.RequireFromString("-500")).
		Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.HandleEvent(s.ctx, event)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SynchronizerServiceTestSuite) TestHandleEvent_FundReceived() {
	event := domain.LedgerEvent{
		EventID: "evt-6",
		Kind:    domain.EventFundReceived,
		FundSource: &domain.FundSource{
			FundSourceID: "F2",
			Name:         "Emergency Relief Grant",
			Amount:       decimal.RequireFromString("10000"),
			IsRestricted: true,
			ReceivedDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		},
	}

	var saved []domain.JournalEntry
	s.mockJournal.On("SaveEntries", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]domain.JournalEntry)
		}).
		Return(nil).Once()

	err := s.service.HandleEvent(s.ctx, event)

	s.Require().NoError(err)
	s.Require().Len(saved, 2)
	s.Equal("FUND-F2", saved[0].TransactionID)
	s.Equal("1010", saved[0].AccountCode)
	// Receipts never adjust balances; the row arrives with its full amount.
	s.mockFundBalance.AssertNotCalled(s.T(), "ApplyDelta", mock.Anything, mock.Anything, mock.Anything)
	s.mockCategories.AssertNotCalled(s.T(), "FindCategoryByID", mock.Anything, mock.Anything)
}
