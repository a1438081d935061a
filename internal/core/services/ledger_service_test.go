package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/SscSPs/savings_tracker/internal/core/services"
	"github.com/SscSPs/savings_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockLedgerRepository
	publisher *recordingPublisher
	service   portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.publisher = &recordingPublisher{}
	suite.service = services.NewLedgerService(suite.mockRepo,
		services.WithEventPublisher(suite.publisher),
		services.WithClock(fixedClock))
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_Success() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		Kind:     "inflow",
		Amount:   decimal.NewFromInt(100000),
		Category: "  Gaji ",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.Kind == domain.Inflow &&
			t.Amount.Equal(decimal.NewFromInt(100000)) &&
			t.Category == "Gaji" &&
			t.OccurredAt.Equal(fixedNow)
	})).Return(int64(11), nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(int64(11), txn.TransactionID)
	suite.Equal([]domain.EventType{domain.EventTransactionRecorded}, suite.publisher.types())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_ExplicitDate() {
	ctx := context.Background()
	req := dto.RecordTransactionRequest{
		Kind:       "outflow",
		Amount:     decimal.NewFromInt(30000),
		OccurredAt: "2025-02-01",
	}

	suite.mockRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(t domain.Transaction) bool {
		return t.OccurredAt.Equal(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	})).Return(int64(1), nil).Once()

	_, err := suite.service.RecordTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_ValidationPersistsNothing() {
	ctx := context.Background()
	cases := []dto.RecordTransactionRequest{
		{Kind: "inflow", Amount: decimal.Zero},
		{Kind: "outflow", Amount: decimal.NewFromInt(-5)},
		{Kind: "transfer", Amount: decimal.NewFromInt(10)},
		{Kind: "inflow", Amount: decimal.NewFromInt(10), OccurredAt: "not-a-date"},
	}

	for _, req := range cases {
		txn, err := suite.service.RecordTransaction(ctx, req)
		suite.Nil(txn)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
	suite.Empty(suite.publisher.types())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(int64(0), assert.AnError).Once()

	txn, err := suite.service.RecordTransaction(ctx, dto.RecordTransactionRequest{Kind: "inflow", Amount: decimal.NewFromInt(1)})

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, assert.AnError)
	suite.Empty(suite.publisher.types())
}

func (suite *LedgerServiceTestSuite) TestRecordTransaction_PublishFailureIsIgnored() {
	ctx := context.Background()
	suite.publisher.err = assert.AnError
	suite.mockRepo.On("SaveTransaction", ctx, mock.Anything).Return(int64(5), nil).Once()

	txn, err := suite.service.RecordTransaction(ctx, dto.RecordTransactionRequest{Kind: "inflow", Amount: decimal.NewFromInt(1)})

	suite.Require().NoError(err)
	suite.Equal(int64(5), txn.TransactionID)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_EndDateInclusive() {
	ctx := context.Background()
	expected := domain.TransactionFilter{
		Kind: domain.Outflow,
		From: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.mockRepo.On("ListTransactions", ctx, expected).Return([]domain.Transaction{{TransactionID: 1}}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{
		Kind: "outflow", StartDate: "2025-01-01", EndDate: "2025-01-31",
	})

	suite.Require().NoError(err)
	suite.Len(txns, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListTransactions_StartAfterEnd() {
	txns, err := suite.service.ListTransactions(context.Background(), dto.ListTransactionsParams{
		StartDate: "2025-02-01", EndDate: "2025-01-01",
	})

	suite.Nil(txns)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactions", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestListTransactions_Empty() {
	ctx := context.Background()
	var none []domain.Transaction
	suite.mockRepo.On("ListTransactions", ctx, domain.TransactionFilter{}).Return(none, nil).Once()

	txns, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
