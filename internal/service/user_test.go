package service_test

import (
	"context"
	"errors"
	"testing"

	"maintenance-hub-backend/internal/database/models"
	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/mocks"
	"maintenance-hub-backend/internal/notify"
	"maintenance-hub-backend/internal/repository"
	"maintenance-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// UserServiceTestSuite defines the test suite for UserService
type UserServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTxr       *mocks.MockTransactorInterface
	mockProfiles  *mocks.MockProfileRepositoryInterface
	mockRoles     *mocks.MockUserRoleRepositoryInterface
	mockCompanies *mocks.MockCompanyRepositoryInterface
	mockMailer    *mocks.MockMailer
	userService   *service.UserService

	companyID uuid.UUID
	admin     *service.Actor
}

// SetupTest sets up the test suite
func (suite *UserServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTxr = mocks.NewMockTransactorInterface(suite.ctrl)
	suite.mockProfiles = mocks.NewMockProfileRepositoryInterface(suite.ctrl)
	suite.mockRoles = mocks.NewMockUserRoleRepositoryInterface(suite.ctrl)
	suite.mockCompanies = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.mockMailer = mocks.NewMockMailer(suite.ctrl)

	suite.userService = service.NewUserService(
		suite.mockTxr,
		suite.mockProfiles,
		suite.mockRoles,
		suite.mockCompanies,
		suite.mockMailer,
		validator.New(),
		"https://hub.example.com/",
	)

	suite.companyID = uuid.New()
	suite.admin = &service.Actor{UserID: uuid.New(), Email: "admin@acme.com", Role: models.RoleAdmin, CompanyID: &suite.companyID}
}

// TearDownTest cleans up after each test
func (suite *UserServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// runTransactions makes the transactor call through to the mocked repositories
func (suite *UserServiceTestSuite) runTransactions() {
	repos := &repository.Repositories{Profiles: suite.mockProfiles, UserRoles: suite.mockRoles}
	suite.mockTxr.EXPECT().
		Transaction(gomock.Any()).
		DoAndReturn(func(fn func(*repository.Repositories) error) error {
			return fn(repos)
		})
}

func (suite *UserServiceTestSuite) profile(role models.Role, companyID *uuid.UUID) *models.Profile {
	id := uuid.New()
	return &models.Profile{
		BaseModel: models.BaseModel{ID: id},
		CompanyID: companyID,
		Email:     "user-" + id.String()[:8] + "@acme.com",
		FullName:  "Some User",
		IsActive:  true,
		Role:      &models.UserRole{UserID: id, Role: role},
	}
}

func (suite *UserServiceTestSuite) TestInviteSendsWelcomeEmail() {
	req := &service.InviteUserRequest{Email: "New.Tech@Acme.com", FullName: "New Tech", Role: "common"}

	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: suite.companyID}, Name: "Acme"}, nil)
	suite.mockProfiles.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
	suite.runTransactions()
	suite.mockProfiles.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Profile) error {
		assert.Equal(suite.T(), "new.tech@acme.com", p.Email)
		assert.NotEmpty(suite.T(), p.PasswordHash)
		assert.True(suite.T(), p.IsActive)
		return nil
	})
	suite.mockRoles.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.UserRole) error {
		assert.Equal(suite.T(), models.RoleCommon, r.Role)
		return nil
	})
	suite.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, msg *notify.Message) error {
		assert.Equal(suite.T(), "new.tech@acme.com", msg.To)
		assert.Contains(suite.T(), msg.Text, "https://hub.example.com/login")
		return nil
	})

	resp, err := suite.userService.Invite(context.Background(), suite.admin, req)

	suite.NoError(err)
	suite.True(resp.EmailSent)
	suite.Empty(resp.TemporaryPassword)
	suite.Equal(models.RoleCommon, resp.User.Role)
	suite.Equal(&suite.companyID, resp.User.CompanyID)
}

func (suite *UserServiceTestSuite) TestInviteReturnsPasswordWhenEmailFails() {
	req := &service.InviteUserRequest{Email: "tech@acme.com", FullName: "Tech", Role: "visitor"}

	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: suite.companyID}, Name: "Acme"}, nil)
	suite.mockProfiles.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
	suite.runTransactions()
	suite.mockProfiles.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockRoles.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(notify.ErrDisabled)

	resp, err := suite.userService.Invite(context.Background(), suite.admin, req)

	suite.NoError(err)
	suite.False(resp.EmailSent)
	suite.Len(resp.TemporaryPassword, 16)
}

func (suite *UserServiceTestSuite) TestInviteDuplicateEmail() {
	req := &service.InviteUserRequest{Email: "tech@acme.com", FullName: "Tech", Role: "common"}

	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: suite.companyID}}, nil)
	suite.mockProfiles.EXPECT().GetByEmail(req.Email).Return(suite.profile(models.RoleCommon, &suite.companyID), nil)

	resp, err := suite.userService.Invite(context.Background(), suite.admin, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserExists)
}

func (suite *UserServiceTestSuite) TestInviteSuperAdminRequiresSuperAdmin() {
	req := &service.InviteUserRequest{Email: "root@acme.com", FullName: "Root", Role: "super_admin"}

	resp, err := suite.userService.Invite(context.Background(), suite.admin, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestInviteIntoOtherCompanyIsRejected() {
	other := uuid.New()
	req := &service.InviteUserRequest{Email: "x@other.com", FullName: "X", Role: "common", CompanyID: &other}

	resp, err := suite.userService.Invite(context.Background(), suite.admin, req)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrCrossCompanyAccess)
}

func (suite *UserServiceTestSuite) TestInviteRollsBackOnRoleFailure() {
	req := &service.InviteUserRequest{Email: "tech@acme.com", FullName: "Tech", Role: "common"}

	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: suite.companyID}}, nil)
	suite.mockProfiles.EXPECT().GetByEmail(req.Email).Return(nil, gorm.ErrRecordNotFound)
	suite.runTransactions()
	suite.mockProfiles.EXPECT().Create(gomock.Any()).Return(nil)
	suite.mockRoles.EXPECT().Create(gomock.Any()).Return(errors.New("insert failed"))

	resp, err := suite.userService.Invite(context.Background(), suite.admin, req)

	suite.Nil(resp)
	suite.ErrorContains(err, "failed to create role")
}

func (suite *UserServiceTestSuite) TestDeleteSelfIsRejected() {
	err := suite.userService.Delete(context.Background(), suite.admin, suite.admin.UserID)
	suite.ErrorIs(err, apperrors.ErrCannotDeleteSelf)
}

func (suite *UserServiceTestSuite) TestDeleteRemovesRoleAndProfile() {
	target := suite.profile(models.RoleCommon, &suite.companyID)

	suite.mockProfiles.EXPECT().GetByID(target.ID).Return(target, nil)
	suite.runTransactions()
	gomock.InOrder(
		suite.mockRoles.EXPECT().DeleteByUserID(target.ID).Return(nil),
		suite.mockProfiles.EXPECT().Delete(target.ID).Return(nil),
	)

	err := suite.userService.Delete(context.Background(), suite.admin, target.ID)
	suite.NoError(err)
}

func (suite *UserServiceTestSuite) TestDeleteUserOfOtherCompanyIsNotFound() {
	other := uuid.New()
	target := suite.profile(models.RoleCommon, &other)

	suite.mockProfiles.EXPECT().GetByID(target.ID).Return(target, nil)

	err := suite.userService.Delete(context.Background(), suite.admin, target.ID)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

func (suite *UserServiceTestSuite) TestAdminCannotDeleteSuperAdmin() {
	target := suite.profile(models.RoleSuperAdmin, &suite.companyID)

	suite.mockProfiles.EXPECT().GetByID(target.ID).Return(target, nil)

	err := suite.userService.Delete(context.Background(), suite.admin, target.ID)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *UserServiceTestSuite) TestUpdateRole() {
	target := suite.profile(models.RoleVisitor, &suite.companyID)

	suite.mockProfiles.EXPECT().GetByID(target.ID).Return(target, nil)
	suite.mockRoles.EXPECT().SetRole(target.ID, models.RoleAdmin).Return(nil)

	resp, err := suite.userService.UpdateRole(context.Background(), suite.admin, target.ID, &service.UpdateRoleRequest{Role: "admin"})

	suite.NoError(err)
	suite.Equal(models.RoleAdmin, resp.Role)
}

func (suite *UserServiceTestSuite) TestUpdateOwnRoleIsRejected() {
	resp, err := suite.userService.UpdateRole(context.Background(), suite.admin, suite.admin.UserID, &service.UpdateRoleRequest{Role: "super_admin"})

	suite.Nil(resp)
	var authErr *apperrors.AuthorizationError
	suite.True(errors.As(err, &authErr))
}

func (suite *UserServiceTestSuite) TestUpdateRoleInvalidRole() {
	resp, err := suite.userService.UpdateRole(context.Background(), suite.admin, uuid.New(), &service.UpdateRoleRequest{Role: "owner"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidRole)
}

func (suite *UserServiceTestSuite) TestUpdateCannotDeactivateSelf() {
	me := suite.profile(models.RoleAdmin, &suite.companyID)
	suite.admin.UserID = me.ID
	inactive := false

	suite.mockProfiles.EXPECT().GetByID(me.ID).Return(me, nil)

	resp, err := suite.userService.Update(suite.admin, me.ID, &service.UpdateUserRequest{FullName: "Me", IsActive: &inactive})

	suite.Nil(resp)
	var validationErr *apperrors.ValidationError
	suite.True(errors.As(err, &validationErr))
	suite.Equal("is_active", validationErr.Field)
}

func (suite *UserServiceTestSuite) TestLookupEmailHidesForeignUserID() {
	other := uuid.New()
	foreign := suite.profile(models.RoleCommon, &other)

	suite.mockProfiles.EXPECT().GetByEmail(foreign.Email).Return(foreign, nil)

	resp, err := suite.userService.LookupEmail(suite.admin, foreign.Email)

	suite.NoError(err)
	suite.True(resp.Exists)
	suite.Nil(resp.UserID)
}

func (suite *UserServiceTestSuite) TestLookupEmailUnknown() {
	suite.mockProfiles.EXPECT().GetByEmail("nobody@acme.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.LookupEmail(suite.admin, "nobody@acme.com")

	suite.NoError(err)
	suite.False(resp.Exists)
}

func (suite *UserServiceTestSuite) TestLookupEmailInvalid() {
	resp, err := suite.userService.LookupEmail(suite.admin, "not-an-email")

	suite.Nil(resp)
	suite.Error(err)
}

func (suite *UserServiceTestSuite) TestSendWelcomeEmailWithReset() {
	target := suite.profile(models.RoleCommon, &suite.companyID)
	oldHash := "old-hash"
	target.PasswordHash = oldHash

	suite.mockProfiles.EXPECT().GetByID(target.ID).Return(target, nil)
	suite.mockProfiles.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Profile) error {
		assert.NotEqual(suite.T(), oldHash, p.PasswordHash)
		return nil
	})
	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{Name: "Acme"}, nil)
	suite.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil)

	resp, err := suite.userService.SendWelcomeEmail(context.Background(), suite.admin, target.ID, &service.WelcomeEmailRequest{ResetPassword: true})

	suite.NoError(err)
	suite.True(resp.EmailSent)
	suite.Empty(resp.TemporaryPassword)
}

func (suite *UserServiceTestSuite) TestChangePassword() {
	hash, err := service.HashPassword("old-password")
	suite.Require().NoError(err)
	me := suite.profile(models.RoleCommon, &suite.companyID)
	me.PasswordHash = hash
	actor := &service.Actor{UserID: me.ID, Role: models.RoleCommon, CompanyID: &suite.companyID}

	suite.mockProfiles.EXPECT().GetByID(me.ID).Return(me, nil)
	suite.mockProfiles.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Profile) error {
		assert.True(suite.T(), service.CheckPassword(p.PasswordHash, "new-password"))
		return nil
	})

	err = suite.userService.ChangePassword(actor, &service.ChangePasswordRequest{CurrentPassword: "old-password", NewPassword: "new-password"})
	suite.NoError(err)
}

func (suite *UserServiceTestSuite) TestChangePasswordWrongCurrent() {
	hash, err := service.HashPassword("old-password")
	suite.Require().NoError(err)
	me := suite.profile(models.RoleCommon, &suite.companyID)
	me.PasswordHash = hash
	actor := &service.Actor{UserID: me.ID, Role: models.RoleCommon, CompanyID: &suite.companyID}

	suite.mockProfiles.EXPECT().GetByID(me.ID).Return(me, nil)

	err = suite.userService.ChangePassword(actor, &service.ChangePasswordRequest{CurrentPassword: "guess", NewPassword: "new-password"})

	var validationErr *apperrors.ValidationError
	suite.True(errors.As(err, &validationErr))
	suite.Equal("current_password", validationErr.Field)
}

func (suite *UserServiceTestSuite) TestListScopesToOwnCompany() {
	users := []models.Profile{*suite.profile(models.RoleCommon, &suite.companyID)}
	suite.mockProfiles.EXPECT().GetByCompanyID(suite.companyID, 20, 0).Return(users, int64(1), nil)

	resp, err := suite.userService.List(suite.admin, nil, 0, 0)

	suite.NoError(err)
	suite.Len(resp.Users, 1)
	suite.Equal(int64(1), resp.Total)
	suite.Equal(1, resp.Page)
	suite.Equal(20, resp.PageSize)
}

func (suite *UserServiceTestSuite) TestAttachJoinsUserWithoutCompany() {
	visitor := suite.profile(models.RoleVisitor, nil)
	req := &service.AttachUserRequest{Email: visitor.Email, Role: "admin"}

	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: suite.companyID}, Name: "Acme"}, nil)
	suite.mockProfiles.EXPECT().GetByEmail(visitor.Email).Return(visitor, nil)
	suite.runTransactions()
	suite.mockProfiles.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *models.Profile) error {
		assert.Equal(suite.T(), suite.companyID, *p.CompanyID)
		return nil
	})
	suite.mockRoles.EXPECT().SetRole(visitor.ID, models.RoleAdmin).Return(nil)

	resp, err := suite.userService.Attach(context.Background(), suite.admin, req)

	suite.Require().NoError(err)
	suite.Equal(&suite.companyID, resp.CompanyID)
	suite.Equal(models.RoleAdmin, resp.Role)
}

func (suite *UserServiceTestSuite) TestAttachDefaultsToCommonAndCreatesMissingRole() {
	visitor := suite.profile(models.RoleVisitor, nil)
	visitor.Role = nil

	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: suite.companyID}}, nil)
	suite.mockProfiles.EXPECT().GetByEmail(visitor.Email).Return(visitor, nil)
	suite.runTransactions()
	suite.mockProfiles.EXPECT().Update(gomock.Any()).Return(nil)
	suite.mockRoles.EXPECT().SetRole(visitor.ID, models.RoleCommon).Return(gorm.ErrRecordNotFound)
	suite.mockRoles.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.UserRole) error {
		assert.Equal(suite.T(), models.RoleCommon, r.Role)
		return nil
	})

	resp, err := suite.userService.Attach(context.Background(), suite.admin, &service.AttachUserRequest{Email: visitor.Email})

	suite.Require().NoError(err)
	suite.Equal(models.RoleCommon, resp.Role)
}

func (suite *UserServiceTestSuite) TestAttachRejectsUserInAnotherCompany() {
	other := uuid.New()
	member := suite.profile(models.RoleCommon, &other)

	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: suite.companyID}}, nil)
	suite.mockProfiles.EXPECT().GetByEmail(member.Email).Return(member, nil)

	resp, err := suite.userService.Attach(context.Background(), suite.admin, &service.AttachUserRequest{Email: member.Email})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserHasCompany)
}

func (suite *UserServiceTestSuite) TestAttachRejectsSuperAdminRole() {
	resp, err := suite.userService.Attach(context.Background(), suite.admin, &service.AttachUserRequest{Email: "x@acme.com", Role: "super_admin"})

	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *UserServiceTestSuite) TestAttachUnknownEmail() {
	suite.mockCompanies.EXPECT().GetByID(suite.companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: suite.companyID}}, nil)
	suite.mockProfiles.EXPECT().GetByEmail("ghost@acme.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userService.Attach(context.Background(), suite.admin, &service.AttachUserRequest{Email: "ghost@acme.com"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUserNotFound)
}

// TestUserServiceTestSuite runs the test suite
func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
