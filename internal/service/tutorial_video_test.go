package service_test

import (
	"testing"

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

// TutorialVideoServiceTestSuite defines the test suite for TutorialVideoService
type TutorialVideoServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockTutorialVideoRepositoryInterface
	videoService *service.TutorialVideoService

	visitor    *service.Actor
	superAdmin *service.Actor
}

// SetupTest sets up the test suite
func (suite *TutorialVideoServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockTutorialVideoRepositoryInterface(suite.ctrl)
	suite.videoService = service.NewTutorialVideoService(suite.mockRepo, validator.New())

	suite.visitor = &service.Actor{UserID: uuid.New(), Role: models.RoleVisitor}
	suite.superAdmin = &service.Actor{UserID: uuid.New(), Role: models.RoleSuperAdmin}
}

// TearDownTest cleans up after each test
func (suite *TutorialVideoServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TutorialVideoServiceTestSuite) TestListHidesDraftsFromNonSuperAdmins() {
	suite.mockRepo.EXPECT().List(true, "safety").Return([]models.TutorialVideo{{Title: "Lockout"}}, nil)

	videos, err := suite.videoService.List(suite.visitor, "safety")

	suite.Require().NoError(err)
	suite.Len(videos, 1)
}

func (suite *TutorialVideoServiceTestSuite) TestListIncludesDraftsForSuperAdmins() {
	suite.mockRepo.EXPECT().List(false, "").Return([]models.TutorialVideo{{Title: "A"}, {Title: "Draft"}}, nil)

	videos, err := suite.videoService.List(suite.superAdmin, "")

	suite.Require().NoError(err)
	suite.Len(videos, 2)
}

func (suite *TutorialVideoServiceTestSuite) TestGetDraftAsVisitor() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.TutorialVideo{BaseModel: models.BaseModel{ID: id}, Published: false}, nil)

	resp, err := suite.videoService.GetByID(suite.visitor, id)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrTutorialVideoNotFound)
}

func (suite *TutorialVideoServiceTestSuite) TestGetDraftAsSuperAdmin() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.TutorialVideo{BaseModel: models.BaseModel{ID: id}, Title: "Draft"}, nil)

	resp, err := suite.videoService.GetByID(suite.superAdmin, id)

	suite.Require().NoError(err)
	suite.Equal("Draft", resp.Title)
}

func (suite *TutorialVideoServiceTestSuite) TestCreatePublishesByDefault() {
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.videoService.Create(&service.TutorialVideoRequest{
		Title:    "Getting started",
		VideoURL: "https://videos.example.com/start.mp4",
	})

	suite.Require().NoError(err)
	suite.True(resp.Published)
}

func (suite *TutorialVideoServiceTestSuite) TestCreateRejectsInvalidURL() {
	resp, err := suite.videoService.Create(&service.TutorialVideoRequest{Title: "Broken", VideoURL: "not a url"})

	suite.Nil(resp)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *TutorialVideoServiceTestSuite) TestUpdateKeepsPublishedWhenOmitted() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.TutorialVideo{BaseModel: models.BaseModel{ID: id}, Published: true}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.videoService.Update(id, &service.TutorialVideoRequest{
		Title:     "Renamed",
		VideoURL:  "https://videos.example.com/start.mp4",
		SortOrder: 3,
	})

	suite.Require().NoError(err)
	suite.True(resp.Published)
	suite.Equal(3, resp.SortOrder)
}

func (suite *TutorialVideoServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	suite.ErrorIs(suite.videoService.Delete(id), apperrors.ErrTutorialVideoNotFound)
}

// TestTutorialVideoServiceTestSuite runs the test suite
func TestTutorialVideoServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TutorialVideoServiceTestSuite))
}
