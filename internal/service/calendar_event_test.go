package service_test

import (
	"testing"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/mocks"
	"maintenance-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CalendarEventServiceTestSuite defines the test suite for CalendarEventService
type CalendarEventServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockEvents    *mocks.MockCalendarEventRepositoryInterface
	mockOrders    *mocks.MockServiceOrderRepositoryInterface
	mockMachinery *mocks.MockMachineryRepositoryInterface
	eventService  *service.CalendarEventService

	companyID uuid.UUID
	actor     *service.Actor
	start     time.Time
}

// SetupTest sets up the test suite
func (suite *CalendarEventServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEvents = mocks.NewMockCalendarEventRepositoryInterface(suite.ctrl)
	suite.mockOrders = mocks.NewMockServiceOrderRepositoryInterface(suite.ctrl)
	suite.mockMachinery = mocks.NewMockMachineryRepositoryInterface(suite.ctrl)
	suite.eventService = service.NewCalendarEventService(suite.mockEvents, suite.mockOrders, suite.mockMachinery, validator.New())

	suite.companyID = uuid.New()
	suite.actor = &service.Actor{UserID: uuid.New(), Role: models.RoleCommon, CompanyID: &suite.companyID}
	suite.start = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
}

// TearDownTest cleans up after each test
func (suite *CalendarEventServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CalendarEventServiceTestSuite) TestCreateDefaultsTypeAndOwner() {
	suite.mockEvents.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(event *models.CalendarEvent) error {
			suite.Equal(suite.companyID, event.CompanyID)
			return nil
		})

	resp, err := suite.eventService.Create(suite.actor, &service.CalendarEventRequest{
		Title: "Walkthrough",
		Start: suite.start,
		End:   suite.start.Add(time.Hour),
	})

	suite.Require().NoError(err)
	suite.Equal(models.EventTypeOther, resp.Type)
	suite.Require().NotNil(resp.CreatedByID)
	suite.Equal(suite.actor.UserID, *resp.CreatedByID)
}

func (suite *CalendarEventServiceTestSuite) TestCreateRejectsEndBeforeStart() {
	resp, err := suite.eventService.Create(suite.actor, &service.CalendarEventRequest{
		Title: "Backwards",
		Start: suite.start,
		End:   suite.start.Add(-time.Minute),
	})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

func (suite *CalendarEventServiceTestSuite) TestCreateRejectsUnknownType() {
	resp, err := suite.eventService.Create(suite.actor, &service.CalendarEventRequest{
		Title: "Party",
		Type:  "party",
		Start: suite.start,
		End:   suite.start.Add(time.Hour),
	})

	suite.Nil(resp)
	suite.Error(err)
}

func (suite *CalendarEventServiceTestSuite) TestCreateRejectsMachineryFromAnotherCompany() {
	machineID := uuid.New()
	suite.mockMachinery.EXPECT().GetByID(machineID).Return(&models.Machinery{BaseModel: models.BaseModel{ID: machineID}, CompanyID: uuid.New()}, nil)

	resp, err := suite.eventService.Create(suite.actor, &service.CalendarEventRequest{
		Title:       "Inspection",
		Type:        string(models.EventTypeMaintenance),
		Start:       suite.start,
		End:         suite.start.Add(time.Hour),
		MachineryID: &machineID,
	})

	suite.Nil(resp)
	suite.Require().Error(err)
	suite.Contains(err.Error(), "machinery not found in company")
}

func (suite *CalendarEventServiceTestSuite) TestRangeQueriesOwnCompany() {
	to := suite.start.Add(7 * 24 * time.Hour)
	suite.mockEvents.EXPECT().
		ListRange(suite.companyID, suite.start, to).
		Return([]models.CalendarEvent{{Title: "A", Start: suite.start, End: suite.start.Add(time.Hour)}}, nil)

	resp, err := suite.eventService.Range(suite.actor, nil, suite.start, to)

	suite.Require().NoError(err)
	suite.Len(resp.Events, 1)
}

func (suite *CalendarEventServiceTestSuite) TestRangeValidation() {
	_, err := suite.eventService.Range(suite.actor, nil, suite.start, suite.start)
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)

	_, err = suite.eventService.Range(suite.actor, nil, suite.start, suite.start.Add(400*24*time.Hour))
	suite.Error(err)

	_, err = suite.eventService.Range(suite.actor, nil, time.Time{}, suite.start)
	suite.Error(err)
}

func (suite *CalendarEventServiceTestSuite) TestRangeRejectsOtherCompany() {
	other := uuid.New()

	_, err := suite.eventService.Range(suite.actor, &other, suite.start, suite.start.Add(time.Hour))

	suite.ErrorIs(err, apperrors.ErrCrossCompanyAccess)
}

func (suite *CalendarEventServiceTestSuite) TestGetHidesOtherCompanyEvents() {
	id := uuid.New()
	suite.mockEvents.EXPECT().GetByID(id).Return(&models.CalendarEvent{BaseModel: models.BaseModel{ID: id}, CompanyID: uuid.New()}, nil)

	resp, err := suite.eventService.GetByID(suite.actor, id)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrCalendarEventNotFound)
}

func (suite *CalendarEventServiceTestSuite) TestUpdateMovesEvent() {
	id := uuid.New()
	suite.mockEvents.EXPECT().GetByID(id).Return(&models.CalendarEvent{
		BaseModel: models.BaseModel{ID: id},
		CompanyID: suite.companyID,
		Title:     "Old",
		Type:      models.EventTypeMeeting,
	}, nil)
	suite.mockEvents.EXPECT().Update(gomock.Any()).Return(nil)

	later := suite.start.Add(48 * time.Hour)
	resp, err := suite.eventService.Update(suite.actor, id, &service.CalendarEventRequest{
		Title: "Moved",
		Type:  string(models.EventTypeMeeting),
		Start: later,
		End:   later.Add(time.Hour),
	})

	suite.Require().NoError(err)
	suite.Equal("Moved", resp.Title)
	suite.Equal(models.EventTypeMeeting, resp.Type)
}

func (suite *CalendarEventServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockEvents.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.eventService.Delete(suite.actor, id), apperrors.ErrCalendarEventNotFound)
}

// TestCalendarEventServiceTestSuite runs the test suite
func TestCalendarEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CalendarEventServiceTestSuite))
}
