package handlers

import (
	"net/http"
	"testing"
	"time"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/mocks"
	"maintenance-hub-backend/internal/service"
	"maintenance-hub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HistoryHandlerTestSuite defines the test suite for HistoryHandler
type HistoryHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockHistoryService *mocks.MockHistoryServiceInterface
	handler            *HistoryHandler
	httpSuite          *testutils.HTTPTestSuite
	actor              *service.Actor
}

// SetupTest sets up the test suite
func (suite *HistoryHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockHistoryService = mocks.NewMockHistoryServiceInterface(suite.ctrl)
	suite.handler = NewHistoryHandler(suite.mockHistoryService)
	suite.actor = newActor(models.RoleCommon)

	suite.httpSuite = testutils.SetupHTTPTest()
	history := suite.httpSuite.Router.Group("/api/v1/history", withActor(suite.actor))
	{
		history.POST("", suite.handler.CreateRecord)
		history.GET("", suite.handler.ListRecords)
		history.GET("/monthly", suite.handler.Monthly)
		history.GET("/costs", suite.handler.CostSummary)
		history.GET("/export", suite.handler.Export)
		history.GET("/:id", suite.handler.GetRecord)
		history.PUT("/:id", suite.handler.UpdateRecord)
		history.DELETE("/:id", suite.handler.DeleteRecord)
	}
}

// TearDownTest cleans up after each test
func (suite *HistoryHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HistoryHandlerTestSuite) TestCreateRecord() {
	recordID := uuid.New()
	machineryID := uuid.New()
	suite.mockHistoryService.EXPECT().
		Create(suite.actor, gomock.Any()).
		DoAndReturn(func(_ *service.Actor, req *service.CreateRecordRequest) (*service.MaintenanceRecordResponse, error) {
			suite.Equal(machineryID, req.MachineryID)
			suite.Equal("inspection", req.Type)
			return &service.MaintenanceRecordResponse{ID: recordID, MachineryID: machineryID, Type: models.MaintenanceTypeInspection}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/history", map[string]interface{}{
		"machinery_id": machineryID.String(),
		"type":         "inspection",
		"cost":         80,
	})

	var response service.MaintenanceRecordResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(recordID, response.ID)
}

func (suite *HistoryHandlerTestSuite) TestCreateRecordNegativeCost() {
	suite.mockHistoryService.EXPECT().
		Create(suite.actor, gomock.Any()).
		Return(nil, apperrors.NewValidationError("cost", "must be zero or greater"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/history", map[string]interface{}{
		"machinery_id": uuid.New().String(),
		"type":         "corrective",
		"cost":         -1,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "cost")
}

func (suite *HistoryHandlerTestSuite) TestListRecordsDateRange() {
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 23, 59, 0, 0, time.UTC)
	suite.mockHistoryService.EXPECT().
		List(suite.actor, gomock.Any()).
		DoAndReturn(func(_ *service.Actor, q *service.HistoryQuery) (*service.HistoryListResponse, error) {
			suite.True(from.Equal(*q.From))
			suite.True(to.Equal(*q.To))
			suite.Nil(q.MachineryID)
			return &service.HistoryListResponse{Page: q.Page, PageSize: q.PageSize}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/history?from=2026-01-01&to=2026-03-31T23:59:00Z", nil)

	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, nil)
}

func (suite *HistoryHandlerTestSuite) TestListRecordsInvalidDate() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/history?from=01/02/2026", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid from")
}

func (suite *HistoryHandlerTestSuite) TestMonthlyDefaults() {
	suite.mockHistoryService.EXPECT().
		Monthly(suite.actor, nil, nil, 12).
		Return(&service.MonthlyHistoryResponse{Months: make([]service.MonthlyBucket, 12)}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/history/monthly", nil)

	var response service.MonthlyHistoryResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response.Months, 12)
}

func (suite *HistoryHandlerTestSuite) TestMonthlyForMachine() {
	machineryID := uuid.New()
	suite.mockHistoryService.EXPECT().
		Monthly(suite.actor, nil, &machineryID, 6).
		Return(&service.MonthlyHistoryResponse{Months: make([]service.MonthlyBucket, 6)}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/history/monthly?months=6&machinery_id="+machineryID.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *HistoryHandlerTestSuite) TestCostSummary() {
	suite.mockHistoryService.EXPECT().
		CostSummary(suite.actor, gomock.Any()).
		Return(&service.CostSummary{Count: 4, TotalCost: 1000, AverageCost: 250}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/history/costs", nil)

	var response service.CostSummary
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(250.0, response.AverageCost)
}

func (suite *HistoryHandlerTestSuite) TestExport() {
	suite.mockHistoryService.EXPECT().
		Export(suite.actor, gomock.Any()).
		Return([]byte("PK\x03\x04workbook"), nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/history/export?from=2026-01-01", nil)

	suite.Equal(http.StatusOK, recorder.Code)
	suite.Equal(xlsxContentType, recorder.Header().Get("Content-Type"))
	suite.Contains(recorder.Header().Get("Content-Disposition"), `attachment; filename="maintenance-history-`)
	suite.Equal("PK\x03\x04workbook", recorder.Body.String())
}

func (suite *HistoryHandlerTestSuite) TestExportForbidden() {
	suite.mockHistoryService.EXPECT().Export(suite.actor, gomock.Any()).Return(nil, apperrors.ErrNoCompanyAssigned)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/history/export", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "not assigned to any company")
}

func (suite *HistoryHandlerTestSuite) TestUpdateRecordNotFound() {
	recordID := uuid.New()
	suite.mockHistoryService.EXPECT().
		Update(suite.actor, recordID, gomock.Any()).
		Return(nil, apperrors.ErrMaintenanceRecordNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/history/"+recordID.String(), map[string]interface{}{
		"performed_at": "2026-02-10T10:00:00Z",
		"type":         "preventive",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "maintenance record not found")
}

func (suite *HistoryHandlerTestSuite) TestDeleteRecord() {
	recordID := uuid.New()
	suite.mockHistoryService.EXPECT().Delete(suite.actor, recordID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/history/"+recordID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestHistoryHandlerTestSuite runs the test suite
func TestHistoryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}
