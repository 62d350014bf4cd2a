package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/mocks"
	"maintenance-hub-backend/internal/repository"
	"maintenance-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BugReportServiceTestSuite defines the test suite for BugReportService
type BugReportServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockBugReportRepositoryInterface
	mockStore        *mocks.MockObjectStorage
	bugReportService *service.BugReportService

	reporter   *service.Actor
	superAdmin *service.Actor
}

// SetupTest sets up the test suite
func (suite *BugReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockBugReportRepositoryInterface(suite.ctrl)
	suite.mockStore = mocks.NewMockObjectStorage(suite.ctrl)
	suite.bugReportService = service.NewBugReportService(suite.mockRepo, suite.mockStore, validator.New())

	companyID := uuid.New()
	suite.reporter = &service.Actor{UserID: uuid.New(), Role: models.RoleCommon, CompanyID: &companyID}
	suite.superAdmin = &service.Actor{UserID: uuid.New(), Role: models.RoleSuperAdmin}
}

// TearDownTest cleans up after each test
func (suite *BugReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BugReportServiceTestSuite) TestCreateWithScreenshot() {
	suite.mockStore.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(3), "image/jpeg").Return(nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.bugReportService.Create(context.Background(), suite.reporter,
		&service.CreateBugReportRequest{Title: "Calendar freezes", Description: "Dragging an event hangs the page"},
		&service.Upload{Reader: strings.NewReader("jpg"), Size: 3, FileName: "shot.jpg", ContentType: "image/jpeg"},
	)

	suite.Require().NoError(err)
	suite.Equal(models.BugStatusOpen, resp.Status)
	suite.Equal(models.PriorityMedium, resp.Severity)
	suite.True(resp.HasScreenshot)
}

func (suite *BugReportServiceTestSuite) TestCreateRemovesOrphanScreenshot() {
	suite.mockStore.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), int64(3), "image/png").Return(nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed"))
	suite.mockStore.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.bugReportService.Create(context.Background(), suite.reporter,
		&service.CreateBugReportRequest{Title: "Broken", Description: "Broken"},
		&service.Upload{Reader: strings.NewReader("png"), Size: 3, FileName: "shot.png", ContentType: "image/png"},
	)

	suite.Nil(resp)
	suite.ErrorContains(err, "failed to create bug report")
}

func (suite *BugReportServiceTestSuite) TestListAllRequiresSuperAdmin() {
	resp, err := suite.bugReportService.ListAll(suite.reporter, "", 1, 20)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BugReportServiceTestSuite) TestListOwnFiltersByReporter() {
	reporter := suite.reporter.UserID
	suite.mockRepo.EXPECT().
		List(repository.BugReportFilter{ReporterID: &reporter, Status: models.BugStatusOpen}, 20, 0).
		Return(nil, int64(0), nil)

	resp, err := suite.bugReportService.ListOwn(suite.reporter, "open", 1, 20)

	suite.Require().NoError(err)
	suite.Empty(resp.BugReports)
}

func (suite *BugReportServiceTestSuite) TestGetByIDOfOtherReporterIsNotFound() {
	report := &models.BugReport{BaseModel: models.BaseModel{ID: uuid.New()}, ReporterID: uuid.New()}
	suite.mockRepo.EXPECT().GetByID(report.ID).Return(report, nil)

	resp, err := suite.bugReportService.GetByID(suite.reporter, report.ID)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrBugReportNotFound)
}

func (suite *BugReportServiceTestSuite) TestUpdateStatus() {
	report := &models.BugReport{BaseModel: models.BaseModel{ID: uuid.New()}, ReporterID: uuid.New(), Status: models.BugStatusOpen}
	suite.mockRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	suite.mockRepo.EXPECT().UpdateStatus(report.ID, models.BugStatusResolved).Return(nil)

	resp, err := suite.bugReportService.UpdateStatus(context.Background(), suite.superAdmin, report.ID, &service.BugStatusRequest{Status: "resolved"})

	suite.Require().NoError(err)
	suite.Equal(models.BugStatusResolved, resp.Status)
}

func (suite *BugReportServiceTestSuite) TestUpdateStatusRequiresSuperAdmin() {
	resp, err := suite.bugReportService.UpdateStatus(context.Background(), suite.reporter, uuid.New(), &service.BugStatusRequest{Status: "closed"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// TestBugReportServiceTestSuite runs the test suite
func TestBugReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BugReportServiceTestSuite))
}
