package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/mocks"
	"maintenance-hub-backend/internal/repository"
	"maintenance-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ServiceOrderServiceTestSuite defines the test suite for ServiceOrderService
type ServiceOrderServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTxr       *mocks.MockTransactorInterface
	mockOrders    *mocks.MockServiceOrderRepositoryInterface
	mockMachinery *mocks.MockMachineryRepositoryInterface
	mockProfiles  *mocks.MockProfileRepositoryInterface
	mockTasks     *mocks.MockTaskRepositoryInterface
	mockEvents    *mocks.MockCalendarEventRepositoryInterface
	orderService  *service.ServiceOrderService

	companyID uuid.UUID
	actor     *service.Actor
	restore   func()
	now       time.Time
}

// SetupTest sets up the test suite
func (suite *ServiceOrderServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTxr = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.mockOrders = mocks.NewMockServiceOrderRepositoryInterface(suite.ctrl)
	suite.mockMachinery = mocks.NewMockMachineryRepositoryInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockTasks = mocks.NewMockTaskRepositoryInterface(suite.ctrl)
	suite.mockEvents = mocks.NewMockCalendarEventRepositoryInterface(suite.ctrl)

	suite.orderService = service.NewServiceOrderService(suite.mockTxr, suite.mockOrders, suite.mockMachinery, suite.mockProfiles, validator.New())

	suite.companyID = uuid.New()
	suite.actor = &service.Actor{UserID: uuid.New(), Role: models.RoleCommon, CompanyID: &suite.companyID}
	suite.now = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	suite.restore = service.SetClock(suite.now)
}

// TearDownTest cleans up after each test
func (suite *ServiceOrderServiceTestSuite) TearDownTest() {
	suite.restore()
	suite.ctrl.Finish()
}

func (suite *ServiceOrderServiceTestSuite) runTransactions() {
	repos := &repository.Repositories{ServiceOrders: suite.mockOrders, Tasks: suite.mockTasks, Events: suite.mockEvents}
	suite.mockTxr.EXPECT().
		Transaction(gomock.Any()).
		DoAndReturn(func(fn func(*repository.Repositories) error) error {
			return fn(repos)
		})
}

func (suite *ServiceOrderServiceTestSuite) order(status models.ServiceOrderStatus) *models.ServiceOrder {
	return &models.ServiceOrder{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		OrderNumber: "SO-000007",
		Title:       "Replace belt",
		Type:        models.MaintenanceTypeCorrective,
		Priority:    models.PriorityHigh,
		Status:      status,
	}
}

func (suite *ServiceOrderServiceTestSuite) TestCreateScheduledOrderWritesTaskAndEvent() {
	start := time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)
	machineID := uuid.New()
	req := &service.CreateServiceOrderRequest{
		Title:          "Replace belt",
		Type:           "corrective",
		Priority:       "high",
		MachineryID:    &machineID,
		ScheduledStart: &start,
		EstimatedCost:  250,
	}

	suite.mockMachinery.EXPECT().GetByID(machineID).Return(&models.Machinery{BaseModel: models.BaseModel{ID: machineID}, CompanyID: suite.companyID}, nil)
	suite.runTransactions()
	suite.mockOrders.EXPECT().NextSequence(suite.companyID).Return(7, nil)
	suite.mockOrders.EXPECT().Create(gomock.Any()).DoAndReturn(func(o *models.ServiceOrder) error {
		assert.Equal(suite.T(), "SO-000007", o.OrderNumber)
		assert.Equal(suite.T(), models.ServiceOrderStatusPending, o.Status)
		assert.Equal(suite.T(), suite.actor.UserID, *o.RequestedByID)
		return nil
	})
	suite.mockTasks.EXPECT().Create(gomock.Any()).DoAndReturn(func(t *models.Task) error {
		assert.Equal(suite.T(), models.TaskStatusTodo, t.Status)
		assert.Equal(suite.T(), models.PriorityHigh, t.Priority)
		assert.Equal(suite.T(), "SO-000007 Replace belt", t.Title)
		assert.Equal(suite.T(), start, *t.DueDate)
		assert.NotNil(suite.T(), t.ServiceOrderID)
		return nil
	})
	suite.mockEvents.EXPECT().Create(gomock.Any()).DoAndReturn(func(e *models.CalendarEvent) error {
		assert.Equal(suite.T(), models.EventTypeServiceOrder, e.Type)
		assert.Equal(suite.T(), start, e.Start)
		assert.Equal(suite.T(), start.Add(time.Hour), e.End)
		return nil
	})

	resp, err := suite.orderService.Create(context.Background(), suite.actor, req)

	suite.Require().NoError(err)
	suite.Equal("SO-000007", resp.OrderNumber)
	suite.NotNil(resp.TaskID)
	suite.NotNil(resp.EventID)
	suite.Equal(models.PriorityHigh, resp.Priority)
}

func (suite *ServiceOrderServiceTestSuite) TestCreateUnscheduledOrderSkipsEvent() {
	req := &service.CreateServiceOrderRequest{Title: "Inspect press", Type: "inspection"}

	suite.runTransactions()
	suite.mockOrders.EXPECT().NextSequence(suite.companyID).Return(1, nil)
	suite.mockOrders.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockTasks.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.orderService.Create(context.Background(), suite.actor, req)

	suite.Require().NoError(err)
	suite.Equal("SO-000001", resp.OrderNumber)
	suite.Equal(models.PriorityMedium, resp.Priority)
	suite.NotNil(resp.TaskID)
	suite.Nil(resp.EventID)
}

func (suite *ServiceOrderServiceTestSuite) TestCreateFailsWhenTaskInsertFails() {
	req := &service.CreateServiceOrderRequest{Title: "Inspect press", Type: "inspection"}

	suite.runTransactions()
	suite.mockOrders.EXPECT().NextSequence(suite.companyID).Return(1, nil)
	suite.mockOrders.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockTasks.EXPECT().Create(gomock.Any()).Return(errors.New("boom"))

	resp, err := suite.orderService.Create(context.Background(), suite.actor, req)

	suite.Nil(resp)
	suite.ErrorContains(err, "failed to create service order task")
}

func (suite *ServiceOrderServiceTestSuite) TestCreateRejectsInvertedWindow() {
	start := time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	req := &service.CreateServiceOrderRequest{Title: "x", Type: "corrective", ScheduledStart: &start, ScheduledEnd: &end}

	resp, err := suite.orderService.Create(context.Background(), suite.actor, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

func (suite *ServiceOrderServiceTestSuite) TestCreateRejectsForeignMachinery() {
	machineID := uuid.New()
	req := &service.CreateServiceOrderRequest{Title: "x", Type: "corrective", MachineryID: &machineID}

	suite.mockMachinery.EXPECT().GetByID(machineID).Return(&models.Machinery{CompanyID: uuid.New()}, nil)

	resp, err := suite.orderService.Create(context.Background(), suite.actor, req)

	suite.Nil(resp)
	var validationErr *apperrors.ValidationError
	suite.True(errors.As(err, &validationErr))
	suite.Equal("machinery_id", validationErr.Field)
}

func (suite *ServiceOrderServiceTestSuite) TestCreateRejectsInvalidType() {
	resp, err := suite.orderService.Create(context.Background(), suite.actor, &service.CreateServiceOrderRequest{Title: "x", Type: "magic"})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ServiceOrderServiceTestSuite) TestUpdateStatusToCompletedStampsCompletion() {
	order := suite.order(models.ServiceOrderStatusInProgress)

	suite.mockOrders.EXPECT().GetByID(order.ID).Return(order, nil)
	suite.mockOrders.EXPECT().UpdateStatus(order.ID, models.ServiceOrderStatusCompleted, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, _ models.ServiceOrderStatus, completedAt *time.Time) error {
			assert.Equal(suite.T(), suite.now, *completedAt)
			return nil
		})

	resp, err := suite.orderService.UpdateStatus(suite.actor, order.ID, &service.StatusMoveRequest{Status: "completed"})

	suite.Require().NoError(err)
	suite.Equal(models.ServiceOrderStatusCompleted, resp.Status)
	suite.NotNil(resp.CompletedAt)
}

func (suite *ServiceOrderServiceTestSuite) TestUpdateStatusLeavingCompletedClearsCompletion() {
	order := suite.order(models.ServiceOrderStatusCompleted)
	done := suite.now.Add(-48 * time.Hour)
	order.CompletedAt = &done

	suite.mockOrders.EXPECT().GetByID(order.ID).Return(order, nil)
	suite.mockOrders.EXPECT().UpdateStatus(order.ID, models.ServiceOrderStatusPending, nil).Return(nil)

	resp, err := suite.orderService.UpdateStatus(suite.actor, order.ID, &service.StatusMoveRequest{Status: "pending"})

	suite.Require().NoError(err)
	suite.Nil(resp.CompletedAt)
}

func (suite *ServiceOrderServiceTestSuite) TestUpdateStatusInvalid() {
	resp, err := suite.orderService.UpdateStatus(suite.actor, uuid.New(), &service.StatusMoveRequest{Status: "paused"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func (suite *ServiceOrderServiceTestSuite) TestGetByIDOtherCompanyIsNotFound() {
	order := suite.order(models.ServiceOrderStatusPending)
	order.CompanyID = uuid.New()

	suite.mockOrders.EXPECT().GetByID(order.ID).Return(order, nil)

	resp, err := suite.orderService.GetByID(suite.actor, order.ID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrServiceOrderNotFound)
}

func (suite *ServiceOrderServiceTestSuite) TestGetByIDMissing() {
	id := uuid.New()
	suite.mockOrders.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.orderService.GetByID(suite.actor, id)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrServiceOrderNotFound)
}

func (suite *ServiceOrderServiceTestSuite) TestDeleteRemovesCompanions() {
	order := suite.order(models.ServiceOrderStatusPending)

	suite.mockOrders.EXPECT().GetByID(order.ID).Return(order, nil)
	suite.runTransactions()
	gomock.InOrder(
		suite.mockTasks.EXPECT().DeleteByServiceOrderID(order.ID).Return(nil),
		suite.mockEvents.EXPECT().DeleteByServiceOrderID(order.ID).Return(nil),
		suite.mockOrders.EXPECT().Delete(order.ID).Return(nil),
	)

	suite.NoError(suite.orderService.Delete(context.Background(), suite.actor, order.ID))
}

func (suite *ServiceOrderServiceTestSuite) TestListValidatesFilters() {
	resp, err := suite.orderService.List(suite.actor, &service.ServiceOrderQuery{Priority: "urgent"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidPriority)
}

func (suite *ServiceOrderServiceTestSuite) TestListPassesFilter() {
	suite.mockOrders.EXPECT().
		List(repository.ServiceOrderFilter{CompanyID: suite.companyID, Status: models.ServiceOrderStatusPending}, 10, 10).
		Return([]models.ServiceOrder{*suite.order(models.ServiceOrderStatusPending)}, int64(11), nil)

	resp, err := suite.orderService.List(suite.actor, &service.ServiceOrderQuery{Status: "pending", Page: 2, PageSize: 10})

	suite.Require().NoError(err)
	suite.Len(resp.ServiceOrders, 1)
	suite.Equal(int64(11), resp.Total)
	suite.Equal(2, resp.Page)
}

// TestServiceOrderServiceTestSuite runs the test suite
func TestServiceOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceOrderServiceTestSuite))
}
