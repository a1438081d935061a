package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/savings_tracker/internal/apperrors"
	"github.com/SscSPs/savings_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/savings_tracker/internal/core/ports/services"
	"github.com/SscSPs/savings_tracker/internal/core/services"
	"github.com/SscSPs/savings_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockScheduleRepository
	publisher *recordingPublisher
	service   portssvc.ScheduleSvcFacade
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockScheduleRepository)
	suite.publisher = &recordingPublisher{}
	suite.service = services.NewScheduleService(suite.mockRepo,
		services.WithEventPublisher(suite.publisher),
		services.WithClock(fixedClock))
}

func (suite *ScheduleServiceTestSuite) TestCreateSchedule_Success() {
	ctx := context.Background()
	req := dto.CreateScheduleRequest{
		Kind:      "outflow",
		Amount:    decimal.NewFromInt(50000),
		Frequency: "monthly",
		NextDate:  "2025-04-01",
	}
	suite.mockRepo.On("SaveSchedule", ctx, mock.MatchedBy(func(e domain.ScheduleEntry) bool {
		return e.IsActive && e.Frequency == domain.Monthly && e.Kind == domain.Outflow
	})).Return(int64(8), nil).Once()

	entry, err := suite.service.CreateSchedule(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(8), entry.ScheduleID)
	suite.True(entry.IsActive)
	suite.Equal([]domain.EventType{domain.EventScheduleCreated}, suite.publisher.types())
}

func (suite *ScheduleServiceTestSuite) TestCreateSchedule_UnknownFrequency() {
	_, err := suite.service.CreateSchedule(context.Background(), dto.CreateScheduleRequest{
		Kind: "outflow", Amount: decimal.NewFromInt(1), Frequency: "hourly", NextDate: "2025-04-01",
	})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSchedule", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestSetActive_NilFlips() {
	ctx := context.Background()
	suite.mockRepo.On("ToggleScheduleActive", ctx, int64(3), fixedNow).
		Return(&domain.ScheduleEntry{ScheduleID: 3, IsActive: false}, nil).Once()

	entry, err := suite.service.SetActive(ctx, 3, dto.ToggleScheduleRequest{})

	suite.Require().NoError(err)
	suite.False(entry.IsActive)
	suite.mockRepo.AssertNotCalled(suite.T(), "SetScheduleActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.Equal([]domain.EventType{domain.EventScheduleToggled}, suite.publisher.types())
}

func (suite *ScheduleServiceTestSuite) TestSetActive_ExplicitValue() {
	ctx := context.Background()
	active := true
	suite.mockRepo.On("SetScheduleActive", ctx, int64(3), true, fixedNow).
		Return(&domain.ScheduleEntry{ScheduleID: 3, IsActive: true}, nil).Once()

	entry, err := suite.service.SetActive(ctx, 3, dto.ToggleScheduleRequest{IsActive: &active})

	suite.Require().NoError(err)
	suite.True(entry.IsActive)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestSetActive_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("ToggleScheduleActive", ctx, int64(404), fixedNow).Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.SetActive(ctx, 404, dto.ToggleScheduleRequest{})

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Empty(suite.publisher.types())
}

func (suite *ScheduleServiceTestSuite) TestListSchedules_ActiveFilter() {
	ctx := context.Background()
	active := true
	suite.mockRepo.On("ListSchedules", ctx, &active).Return([]domain.ScheduleEntry{{ScheduleID: 1, IsActive: true}}, nil).Once()

	entries, err := suite.service.ListSchedules(ctx, dto.ListSchedulesParams{Active: &active})

	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func TestScheduleService(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
