package handlers

import (
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

// TutorialHandlerTestSuite defines the test suite for TutorialHandler
type TutorialHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockTutorialService *mocks.MockTutorialVideoServiceInterface
	handler             *TutorialHandler
	httpSuite           *testutils.HTTPTestSuite
	actor               *service.Actor
}

// SetupTest sets up the test suite
func (suite *TutorialHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTutorialService = mocks.NewMockTutorialVideoServiceInterface(suite.ctrl)
	suite.handler = NewTutorialHandler(suite.mockTutorialService)
	suite.actor = newActor(models.RoleSuperAdmin)

	suite.httpSuite = testutils.SetupHTTPTest()
	tutorials := suite.httpSuite.Router.Group("/api/v1/tutorials", withActor(suite.actor))
	{
		tutorials.GET("", suite.handler.ListVideos)
		tutorials.GET("/:id", suite.handler.GetVideo)
		tutorials.POST("", suite.handler.CreateVideo)
		tutorials.PUT("/:id", suite.handler.UpdateVideo)
		tutorials.DELETE("/:id", suite.handler.DeleteVideo)
	}
}

// TearDownTest cleans up after each test
func (suite *TutorialHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TutorialHandlerTestSuite) TestListVideosByCategory() {
	suite.mockTutorialService.EXPECT().
		List(suite.actor, "getting-started").
		Return([]service.TutorialVideoResponse{{Title: "Welcome"}, {Title: "Your first machine"}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tutorials?category=getting-started", nil)

	var response []service.TutorialVideoResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response, 2)
}

func (suite *TutorialHandlerTestSuite) TestGetVideoNotFound() {
	videoID := uuid.New()
	suite.mockTutorialService.EXPECT().GetByID(suite.actor, videoID).Return(nil, apperrors.ErrTutorialVideoNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/tutorials/"+videoID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "tutorial video not found")
}

func (suite *TutorialHandlerTestSuite) TestCreateVideo() {
	suite.mockTutorialService.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.TutorialVideoRequest) (*service.TutorialVideoResponse, error) {
			suite.Equal("https://videos.example.com/intro.mp4", req.VideoURL)
			return &service.TutorialVideoResponse{ID: uuid.New(), Title: req.Title}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/tutorials", map[string]interface{}{
		"title":     "Intro",
		"video_url": "https://videos.example.com/intro.mp4",
	})

	suite.Equal(http.StatusCreated, recorder.Code)
}

func (suite *TutorialHandlerTestSuite) TestUpdateVideo() {
	videoID := uuid.New()
	suite.mockTutorialService.EXPECT().
		Update(videoID, gomock.Any()).
		Return(&service.TutorialVideoResponse{ID: videoID, Title: "Intro v2"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/tutorials/"+videoID.String(), map[string]interface{}{
		"title":     "Intro v2",
		"video_url": "https://videos.example.com/intro2.mp4",
	})

	var response service.TutorialVideoResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Intro v2", response.Title)
}

func (suite *TutorialHandlerTestSuite) TestDeleteVideo() {
	videoID := uuid.New()
	suite.mockTutorialService.EXPECT().Delete(videoID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/tutorials/"+videoID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

// TestTutorialHandlerTestSuite runs the test suite
func TestTutorialHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TutorialHandlerTestSuite))
}
