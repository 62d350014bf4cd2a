package handlers

import (
	"context"
	"net/http"
	"testing"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/mocks"
	"maintenance-hub-backend/internal/service"
	"maintenance-hub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BugReportHandlerTestSuite defines the test suite for BugReportHandler
type BugReportHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockBugService *mocks.MockBugReportServiceInterface
	handler        *BugReportHandler
	httpSuite      *testutils.HTTPTestSuite
	actor          *service.Actor
}

// SetupTest sets up the test suite
func (suite *BugReportHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBugService = mocks.NewMockBugReportServiceInterface(suite.ctrl)
	suite.handler = NewBugReportHandler(suite.mockBugService)
	suite.actor = newActor(models.RoleVisitor)

	suite.httpSuite = testutils.SetupHTTPTest()
	bugs := suite.httpSuite.Router.Group("/api/v1/bug-reports", withActor(suite.actor))
	{
		bugs.POST("", suite.handler.CreateBugReport)
		bugs.GET("", suite.handler.ListBugReports)
		bugs.GET("/mine", suite.handler.ListOwnBugReports)
		bugs.GET("/:id", suite.handler.GetBugReport)
		bugs.GET("/:id/screenshot", suite.handler.GetScreenshotURL)
		bugs.PATCH("/:id/status", suite.handler.UpdateBugStatus)
		bugs.DELETE("/:id", suite.handler.DeleteBugReport)
	}
}

// TearDownTest cleans up after each test
func (suite *BugReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BugReportHandlerTestSuite) TestCreateBugReportJSON() {
	reportID := uuid.New()
	suite.mockBugService.EXPECT().
		Create(gomock.Any(), suite.actor, gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, _ *service.Actor, req *service.CreateBugReportRequest, _ *service.Upload) (*service.BugReportResponse, error) {
			suite.Equal("Save button does nothing", req.Title)
			return &service.BugReportResponse{ID: reportID, Title: req.Title, Status: models.BugStatusOpen}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/bug-reports", map[string]string{
		"title":       "Save button does nothing",
		"description": "Clicking save on the machinery form has no effect",
		"page_url":    "/machinery/new",
	})

	var response service.BugReportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(models.BugStatusOpen, response.Status)
	suite.False(response.HasScreenshot)
}

func (suite *BugReportHandlerTestSuite) TestCreateBugReportWithScreenshot() {
	suite.mockBugService.EXPECT().
		Create(gomock.Any(), suite.actor, gomock.Any(), gomock.Not(gomock.Nil())).
		DoAndReturn(func(_ context.Context, _ *service.Actor, req *service.CreateBugReportRequest, shot *service.Upload) (*service.BugReportResponse, error) {
			suite.Equal("Chart is empty", req.Title)
			suite.Equal("high", req.Severity)
			suite.Equal("chart.png", shot.FileName)
			suite.Equal("image/png", shot.ContentType)
			return &service.BugReportResponse{ID: uuid.New(), HasScreenshot: true}, nil
		})

	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/bug-reports",
		map[string]string{
			"title":       "Chart is empty",
			"description": "Monthly chart renders no bars",
			"severity":    "high",
		},
		&testutils.MultipartFile{Field: "screenshot", FileName: "chart.png", ContentType: "image/png", Content: []byte("png")},
	)

	var response service.BugReportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.True(response.HasScreenshot)
}

func (suite *BugReportHandlerTestSuite) TestCreateBugReportMultipartWithoutScreenshot() {
	suite.mockBugService.EXPECT().
		Create(gomock.Any(), suite.actor, gomock.Any(), nil).
		Return(&service.BugReportResponse{ID: uuid.New()}, nil)

	recorder := suite.httpSuite.MakeMultipartRequest(http.MethodPost, "/api/v1/bug-reports",
		map[string]string{"title": "Typo", "description": "Dashbaord"}, nil)

	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *BugReportHandlerTestSuite) TestListOwnBugReports() {
	suite.mockBugService.EXPECT().
		ListOwn(suite.actor, "open", 1, 20).
		Return(&service.BugReportListResponse{Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/bug-reports/mine?status=open", nil)

	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, nil)
}

func (suite *BugReportHandlerTestSuite) TestListAllForbidden() {
	suite.mockBugService.EXPECT().ListAll(suite.actor, "", 1, 20).Return(nil, apperrors.ErrForbidden)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/bug-reports", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "insufficient permissions")
}

func (suite *BugReportHandlerTestSuite) TestUpdateBugStatus() {
	reportID := uuid.New()
	suite.mockBugService.EXPECT().
		UpdateStatus(gomock.Any(), suite.actor, reportID, &service.BugStatusRequest{Status: "resolved"}).
		Return(&service.BugReportResponse{ID: reportID, Status: models.BugStatusResolved}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/bug-reports/"+reportID.String()+"/status", map[string]string{"status": "resolved"})

	var response service.BugReportResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.BugStatusResolved, response.Status)
}

func (suite *BugReportHandlerTestSuite) TestGetScreenshotURLMissing() {
	reportID := uuid.New()
	suite.mockBugService.EXPECT().
		ScreenshotURL(gomock.Any(), suite.actor, reportID).
		Return(nil, apperrors.ErrPhotoNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/bug-reports/"+reportID.String()+"/screenshot", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "not found")
}

func (suite *BugReportHandlerTestSuite) TestGetBugReport() {
	reportID := uuid.New()
	suite.mockBugService.EXPECT().
		GetByID(suite.actor, reportID).
		Return(&service.BugReportResponse{ID: reportID}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/bug-reports/"+reportID.String(), nil)

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *BugReportHandlerTestSuite) TestDeleteBugReport() {
	reportID := uuid.New()
	suite.mockBugService.EXPECT().Delete(gomock.Any(), suite.actor, reportID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/bug-reports/"+reportID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestBugReportHandlerTestSuite runs the test suite
func TestBugReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BugReportHandlerTestSuite))
}
