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

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
	actor           *service.Actor
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)
	suite.handler = NewUserHandler(suite.mockUserService)
	suite.actor = newActor(models.RoleAdmin)

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1", withActor(suite.actor))
	users := v1.Group("/users")
	{
		users.GET("", suite.handler.ListUsers)
		users.GET("/lookup", suite.handler.LookupEmail)
		users.POST("/invite", suite.handler.InviteUser)
		users.POST("/attach", suite.handler.AttachUser)
		users.GET("/:id", suite.handler.GetUser)
		users.PUT("/:id", suite.handler.UpdateUser)
		users.PUT("/:id/role", suite.handler.UpdateUserRole)
		users.POST("/:id/welcome-email", suite.handler.SendWelcomeEmail)
		users.DELETE("/:id", suite.handler.DeleteUser)
	}
	v1.GET("/me", suite.handler.GetMe)
	v1.PUT("/me", suite.handler.UpdateMe)
	v1.PUT("/me/password", suite.handler.ChangePassword)
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserHandlerTestSuite) TestListUsers() {
	suite.mockUserService.EXPECT().
		List(suite.actor, nil, 1, 20).
		Return(&service.UserListResponse{Users: []service.UserResponse{{Email: "a@acme.test"}}, Total: 1, Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users", nil)

	var response service.UserListResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Len(response.Users, 1)
}

func (suite *UserHandlerTestSuite) TestListUsersOtherCompany() {
	other := uuid.New()
	suite.mockUserService.EXPECT().
		List(suite.actor, &other, 1, 20).
		Return(nil, apperrors.ErrCrossCompanyAccess)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users?company_id="+other.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "another company")
}

func (suite *UserHandlerTestSuite) TestListUsersInvalidCompanyID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users?company_id=nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid company_id")
}

func (suite *UserHandlerTestSuite) TestInviteUser() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		Invite(gomock.Any(), suite.actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *service.Actor, req *service.InviteUserRequest) (*service.InviteUserResponse, error) {
			suite.Equal("new@acme.test", req.Email)
			suite.Equal("common", req.Role)
			return &service.InviteUserResponse{
				User:              service.UserResponse{ID: userID, Email: req.Email, Role: models.RoleCommon},
				EmailSent:         false,
				TemporaryPassword: "tmp-secret",
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users/invite", map[string]interface{}{
		"email":     "new@acme.test",
		"full_name": "New Tech",
		"role":      "common",
	})

	var response service.InviteUserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(userID, response.User.ID)
	suite.False(response.EmailSent)
	suite.Equal("tmp-secret", response.TemporaryPassword)
}

func (suite *UserHandlerTestSuite) TestInviteUserForbiddenRole() {
	suite.mockUserService.EXPECT().
		Invite(gomock.Any(), suite.actor, gomock.Any()).
		Return(nil, apperrors.ErrForbidden)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users/invite", map[string]interface{}{
		"email":     "boss@acme.test",
		"full_name": "Boss",
		"role":      "super_admin",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "insufficient permissions")
}

func (suite *UserHandlerTestSuite) TestInviteUserDuplicate() {
	suite.mockUserService.EXPECT().
		Invite(gomock.Any(), suite.actor, gomock.Any()).
		Return(nil, apperrors.ErrUserExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users/invite", map[string]interface{}{
		"email":     "dup@acme.test",
		"full_name": "Dup",
		"role":      "common",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *UserHandlerTestSuite) TestAttachUser() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		Attach(gomock.Any(), suite.actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *service.Actor, req *service.AttachUserRequest) (*service.UserResponse, error) {
			suite.Equal("visitor@acme.test", req.Email)
			suite.Equal("common", req.Role)
			return &service.UserResponse{ID: userID, Email: req.Email, Role: models.RoleCommon, CompanyID: suite.actor.CompanyID}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users/attach", map[string]interface{}{
		"email": "visitor@acme.test",
		"role":  "common",
	})

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(userID, response.ID)
	suite.Equal(suite.actor.CompanyID, response.CompanyID)
}

func (suite *UserHandlerTestSuite) TestAttachUserAlreadyInCompany() {
	suite.mockUserService.EXPECT().
		Attach(gomock.Any(), suite.actor, gomock.Any()).
		Return(nil, apperrors.ErrUserHasCompany)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users/attach", map[string]interface{}{
		"email": "taken@acme.test",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists in a company")
}

func (suite *UserHandlerTestSuite) TestDeleteSelf() {
	suite.mockUserService.EXPECT().
		Delete(gomock.Any(), suite.actor, suite.actor.UserID).
		Return(apperrors.ErrCannotDeleteSelf)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/users/"+suite.actor.UserID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusForbidden, "cannot delete themselves")
}

func (suite *UserHandlerTestSuite) TestDeleteUser() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().Delete(gomock.Any(), suite.actor, userID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/users/"+userID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestLookupEmail() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		LookupEmail(suite.actor, "known@acme.test").
		Return(&service.EmailLookupResponse{Exists: true, UserID: &userID}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/lookup?email=known@acme.test", nil)

	var response service.EmailLookupResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.True(response.Exists)
	suite.Equal(userID, *response.UserID)
}

func (suite *UserHandlerTestSuite) TestLookupEmailMissing() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/users/lookup", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "email")
}

func (suite *UserHandlerTestSuite) TestUpdateUserRole() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		UpdateRole(gomock.Any(), suite.actor, userID, &service.UpdateRoleRequest{Role: "admin"}).
		Return(&service.UserResponse{ID: userID, Role: models.RoleAdmin}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/users/"+userID.String()+"/role", map[string]string{"role": "admin"})

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.RoleAdmin, response.Role)
}

func (suite *UserHandlerTestSuite) TestSendWelcomeEmailWithoutBody() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		SendWelcomeEmail(gomock.Any(), suite.actor, userID, &service.WelcomeEmailRequest{}).
		Return(&service.WelcomeEmailResponse{EmailSent: true}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users/"+userID.String()+"/welcome-email", nil)

	var response service.WelcomeEmailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.True(response.EmailSent)
}

func (suite *UserHandlerTestSuite) TestSendWelcomeEmailWithReset() {
	userID := uuid.New()
	suite.mockUserService.EXPECT().
		SendWelcomeEmail(gomock.Any(), suite.actor, userID, &service.WelcomeEmailRequest{ResetPassword: true}).
		Return(&service.WelcomeEmailResponse{EmailSent: true}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/users/"+userID.String()+"/welcome-email", map[string]bool{"reset_password": true})

	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestGetMe() {
	suite.mockUserService.EXPECT().
		GetMe(suite.actor).
		Return(&service.UserResponse{ID: suite.actor.UserID, Email: suite.actor.Email}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/me", nil)

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(suite.actor.Email, response.Email)
}

func (suite *UserHandlerTestSuite) TestUpdateMe() {
	suite.mockUserService.EXPECT().
		UpdateMe(suite.actor, gomock.Any()).
		Return(&service.UserResponse{ID: suite.actor.UserID, FullName: "Renamed"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/me", map[string]string{"full_name": "Renamed"})

	var response service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Renamed", response.FullName)
}

func (suite *UserHandlerTestSuite) TestChangePasswordWrongCurrent() {
	suite.mockUserService.EXPECT().
		ChangePassword(suite.actor, gomock.Any()).
		Return(apperrors.NewValidationError("current_password", "current password is incorrect"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/me/password", map[string]string{
		"current_password": "wrong",
		"new_password":     "new-password-1",
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "current password is incorrect")
}

func (suite *UserHandlerTestSuite) TestChangePassword() {
	suite.mockUserService.EXPECT().ChangePassword(suite.actor, gomock.Any()).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/me/password", map[string]string{
		"current_password": "old-password",
		"new_password":     "new-password-1",
	})

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *UserHandlerTestSuite) TestMissingActor() {
	router := testutils.SetupHTTPTest()
	router.Router.GET("/api/v1/me", suite.handler.GetMe)

	recorder := router.MakeRequest(http.MethodGet, "/api/v1/me", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "Authentication required")
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
