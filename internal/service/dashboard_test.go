package service_test

import (
	"errors"
	"testing"
	"time"

	"maintenance-hub-backend/internal/database/models"
	"maintenance-hub-backend/internal/mocks"
	"maintenance-hub-backend/internal/repository"
	"maintenance-hub-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardServiceTestSuite defines the test suite for DashboardService
type DashboardServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockMachinery    *mocks.MockMachineryRepositoryInterface
	mockOrders       *mocks.MockServiceOrderRepositoryInterface
	mockSchedules    *mocks.MockMaintenanceScheduleRepositoryInterface
	mockHistory      *mocks.MockMaintenanceRecordRepositoryInterface
	mockParts        *mocks.MockPartRepositoryInterface
	mockTasks        *mocks.MockTaskRepositoryInterface
	dashboardService *service.DashboardService

	companyID uuid.UUID
	actor     *service.Actor
	now       time.Time
	restore   func()
}

// SetupTest sets up the test suite
func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMachinery = mocks.NewMockMachineryRepositoryInterface(suite.ctrl)
	suite.mockOrders = mocks.NewMockServiceOrderRepositoryInterface(suite.ctrl)
	suite.mockSchedules = mocks.NewMockMaintenanceScheduleRepositoryInterface(suite.ctrl)
	suite.mockHistory = mocks.NewMockMaintenanceRecordRepositoryInterface(suite.ctrl)
	suite.mockParts = mocks.NewMockPartRepositoryInterface(suite.ctrl)
	suite.mockTasks = mocks.NewMockTaskRepositoryInterface(suite.ctrl)

	suite.dashboardService = service.NewDashboardService(&repository.Repositories{
		Machinery:     suite.mockMachinery,
		ServiceOrders: suite.mockOrders,
		Schedules:     suite.mockSchedules,
		History:       suite.mockHistory,
		Parts:         suite.mockParts,
		Tasks:         suite.mockTasks,
	})

	suite.companyID = uuid.New()
	suite.actor = &service.Actor{UserID: uuid.New(), Role: models.RoleVisitor, CompanyID: &suite.companyID}
	suite.now = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
	suite.restore = service.SetClock(suite.now)
}

// TearDownTest cleans up after each test
func (suite *DashboardServiceTestSuite) TearDownTest() {
	suite.restore()
	suite.ctrl.Finish()
}

func (suite *DashboardServiceTestSuite) TestSummary() {
	suite.mockMachinery.EXPECT().CountByStatus(suite.companyID).Return(map[models.MachineryStatus]int64{
		models.MachineryStatusOperational: 5,
		models.MachineryStatusBroken:      1,
	}, nil)
	suite.mockOrders.EXPECT().CountByStatus(suite.companyID).Return(map[models.ServiceOrderStatus]int64{
		models.ServiceOrderStatusPending: 3,
	}, nil)
	suite.mockOrders.EXPECT().
		CountOpenByPriority(suite.companyID, []models.Priority{models.PriorityHigh, models.PriorityCritical}).
		Return(int64(2), nil)
	suite.mockSchedules.EXPECT().CountOverdue(suite.companyID, suite.now).Return(int64(4), nil)
	suite.mockParts.EXPECT().CountLowStock(suite.companyID).Return(int64(1), nil)
	suite.mockTasks.EXPECT().CountByStatus(suite.companyID).Return(map[models.TaskStatus]int64{
		models.TaskStatusDone: 8,
	}, nil)
	suite.mockHistory.EXPECT().ListAll(gomock.Any()).DoAndReturn(func(f repository.HistoryFilter) ([]models.MaintenanceRecord, error) {
		suite.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *f.From)
		suite.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *f.To)
		return []models.MaintenanceRecord{
			{PerformedAt: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC), Cost: 200},
			{PerformedAt: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC), Cost: 150},
			{PerformedAt: time.Date(2025, 5, 18, 0, 0, 0, 0, time.UTC), Cost: 100},
		}, nil
	})

	resp, err := suite.dashboardService.Summary(suite.actor, nil)

	suite.Require().NoError(err)
	suite.Equal(int64(6), resp.TotalMachinery)
	suite.Equal(int64(0), resp.MachineryByStatus[models.MachineryStatusMaintenance])
	suite.Len(resp.MachineryByStatus, 4)
	suite.Len(resp.ServiceOrdersByStatus, 4)
	suite.Len(resp.TasksByStatus, 4)
	suite.Equal(int64(2), resp.OpenHighPriorityOrders)
	suite.Equal(int64(4), resp.OverdueSchedules)
	suite.Equal(int64(1), resp.LowStockParts)
	suite.Equal(250.0, resp.CurrentMonthCost)
	suite.Equal(200.0, resp.PreviousMonthCost)
	suite.Equal(25.0, resp.CostVariationPct)
	suite.Equal("2025-05-20T10:00:00Z", resp.GeneratedAt)
}

func (suite *DashboardServiceTestSuite) TestSummaryPropagatesErrors() {
	suite.mockMachinery.EXPECT().CountByStatus(suite.companyID).Return(nil, errors.New("db down"))

	resp, err := suite.dashboardService.Summary(suite.actor, nil)

	suite.Nil(resp)
	suite.ErrorContains(err, "failed to count machinery")
}

// TestDashboardServiceTestSuite runs the test suite
func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
