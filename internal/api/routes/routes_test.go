package routes

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"maintenance-hub-backend/internal/auth"
	"maintenance-hub-backend/internal/config"
	"maintenance-hub-backend/internal/database/models"
	"maintenance-hub-backend/internal/service"
	"maintenance-hub-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type RoutesTestSuite struct {
	suite.Suite
	db        *gorm.DB
	httpSuite *testutils.HTTPTestSuite
}

func (suite *RoutesTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.db = testutils.NewTestDB(suite.T())

	router, err := SetupRoutes(suite.db, &config.Config{
		Environment:     "test",
		JWTSecret:       "routes-test-secret",
		JWTTTLMinutes:   15,
		RefreshTTLHours: 1,
		RateLimitPerSec: 100,
		RateLimitBurst:  100,
		CacheTTLSeconds: 60,
	}, Dependencies{})
	suite.Require().NoError(err)

	suite.httpSuite = &testutils.HTTPTestSuite{Router: router}
}

func (suite *RoutesTestSuite) login(email, password string) string {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})

	var tokens auth.AuthTokenResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &tokens)
	suite.Require().NotEmpty(tokens.AccessToken)
	return tokens.AccessToken
}

func (suite *RoutesTestSuite) get(url, token string) int {
	return suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, url, nil, map[string]string{
		"Authorization": "Bearer " + token,
	}).Code
}

func (suite *RoutesTestSuite) registerVisitor() (string, *models.Profile) {
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/auth/register", map[string]string{
		"email":    "visitor@example.com",
		"password": "correct-horse",
		"fullName": "Vera Visitor",
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	var profile models.Profile
	suite.Require().NoError(suite.db.Where("email = ?", "visitor@example.com").First(&profile).Error)
	return suite.login("visitor@example.com", "correct-horse"), &profile
}

func (suite *RoutesTestSuite) TestHealthLive() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/health/live", nil)
	suite.Equal(http.StatusOK, recorder.Code)
}

func (suite *RoutesTestSuite) TestUnauthenticatedRequestRejected() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/me", nil)
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func (suite *RoutesTestSuite) TestVisitorWithoutCompany() {
	token, _ := suite.registerVisitor()

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	var me service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &me)
	suite.Equal(models.RoleVisitor, me.Role)
	suite.Nil(me.CompanyID)

	suite.Equal(http.StatusForbidden, suite.get("/api/v1/machinery", token))
	suite.Equal(http.StatusForbidden, suite.get("/api/v1/companies", token))
	suite.Equal(http.StatusOK, suite.get("/api/v1/bug-reports/mine", token))
}

func (suite *RoutesTestSuite) TestRoleChangeAppliesToExistingToken() {
	token, profile := suite.registerVisitor()

	company := testutils.NewCompanyFactory().Create()
	suite.Require().NoError(suite.db.Create(company).Error)
	suite.Require().NoError(suite.db.Model(profile).Update("company_id", company.ID).Error)
	suite.Require().NoError(suite.db.Model(&models.UserRole{}).
		Where("user_id = ?", profile.ID).
		Update("role", models.RoleAdmin).Error)

	suite.Equal(http.StatusOK, suite.get("/api/v1/machinery", token))
	suite.Equal(http.StatusOK, suite.get("/api/v1/dashboard", token))
	suite.Equal(http.StatusForbidden, suite.get("/api/v1/companies", token))
}

func (suite *RoutesTestSuite) TestTutorialListIsCached() {
	token, _ := suite.registerVisitor()
	headers := map[string]string{"Authorization": "Bearer " + token}

	first := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/tutorials", nil, headers)
	suite.Equal(http.StatusOK, first.Code)
	suite.Empty(first.Header().Get("X-Cache"))

	second := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/tutorials", nil, headers)
	suite.Equal(http.StatusOK, second.Code)
	suite.Equal("HIT", second.Header().Get("X-Cache"))
}

func (suite *RoutesTestSuite) TestVisitorCannotManageTutorials() {
	token, _ := suite.registerVisitor()

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/tutorials", map[string]string{
		"title":     "Intro",
		"video_url": "https://videos.example.com/intro.mp4",
	}, map[string]string{"Authorization": "Bearer " + token})

	suite.Equal(http.StatusForbidden, recorder.Code)
}

// member creates an active user with the role in the company and logs them in
func (suite *RoutesTestSuite) member(role models.Role, companyID uuid.UUID) string {
	factory := testutils.NewProfileFactory()
	profile := factory.WithCompany(companyID)
	hash, err := service.HashPassword("correct-horse")
	suite.Require().NoError(err)
	profile.PasswordHash = hash
	suite.Require().NoError(suite.db.Create(profile).Error)
	suite.Require().NoError(suite.db.Create(factory.Role(profile.ID, role)).Error)
	return suite.login(profile.Email, "correct-horse")
}

func (suite *RoutesTestSuite) TestRoleAllowLists() {
	company := testutils.NewCompanyFactory().Create()
	suite.Require().NoError(suite.db.Create(company).Error)

	tokens := map[models.Role]string{}
	for _, role := range []models.Role{models.RoleVisitor, models.RoleCommon, models.RoleAdmin, models.RoleSuperAdmin} {
		tokens[role] = suite.member(role, company.ID)
	}

	everyone := []models.Role{models.RoleVisitor, models.RoleCommon, models.RoleAdmin, models.RoleSuperAdmin}
	staff := []models.Role{models.RoleCommon, models.RoleAdmin, models.RoleSuperAdmin}
	admins := []models.Role{models.RoleAdmin, models.RoleSuperAdmin}
	root := []models.Role{models.RoleSuperAdmin}

	id := uuid.New().String()
	tests := []struct {
		method string
		path   string
		roles  []models.Role
	}{
		{http.MethodGet, "/api/v1/machinery", everyone},
		{http.MethodGet, "/api/v1/dashboard", everyone},
		{http.MethodPost, "/api/v1/bug-reports", everyone},

		{http.MethodPost, "/api/v1/service-orders", staff},
		{http.MethodPut, "/api/v1/service-orders/" + id, staff},
		{http.MethodPatch, "/api/v1/service-orders/" + id + "/status", staff},
		{http.MethodPost, "/api/v1/schedules/" + id + "/complete", staff},
		{http.MethodPost, "/api/v1/history", staff},
		{http.MethodPut, "/api/v1/history/" + id, staff},
		{http.MethodPost, "/api/v1/parts/" + id + "/stock", staff},
		{http.MethodPost, "/api/v1/tasks", staff},
		{http.MethodPatch, "/api/v1/tasks/" + id + "/status", staff},
		{http.MethodPost, "/api/v1/calendar/events", staff},
		{http.MethodPut, "/api/v1/calendar/events/" + id, staff},

		{http.MethodGet, "/api/v1/users/lookup?email=x@acme.test", admins},
		{http.MethodPost, "/api/v1/users/invite", admins},
		{http.MethodPost, "/api/v1/users/attach", admins},
		{http.MethodPut, "/api/v1/users/" + id + "/role", admins},
		{http.MethodDelete, "/api/v1/users/" + id, admins},
		{http.MethodPost, "/api/v1/machinery", admins},
		{http.MethodPut, "/api/v1/machinery/" + id, admins},
		{http.MethodDelete, "/api/v1/machinery/" + id, admins},
		{http.MethodDelete, "/api/v1/service-orders/" + id, admins},
		{http.MethodPost, "/api/v1/schedules", admins},
		{http.MethodDelete, "/api/v1/schedules/" + id, admins},
		{http.MethodDelete, "/api/v1/history/" + id, admins},
		{http.MethodPost, "/api/v1/parts", admins},
		{http.MethodDelete, "/api/v1/parts/" + id, admins},
		{http.MethodDelete, "/api/v1/tasks/" + id, admins},
		{http.MethodDelete, "/api/v1/calendar/events/" + id, admins},

		{http.MethodGet, "/api/v1/companies", root},
		{http.MethodPost, "/api/v1/companies", root},
		{http.MethodDelete, "/api/v1/companies/" + id, root},
		{http.MethodGet, "/api/v1/bug-reports", root},
		{http.MethodPatch, "/api/v1/bug-reports/" + id + "/status", root},
		{http.MethodPost, "/api/v1/tutorials", root},
		{http.MethodDelete, "/api/v1/tutorials/" + id, root},
	}

	for _, tt := range tests {
		for role, token := range tokens {
			suite.Run(fmt.Sprintf("%s %s as %s", tt.method, tt.path, role), func() {
				recorder := suite.httpSuite.MakeRequestWithHeaders(tt.method, tt.path, nil, map[string]string{
					"Authorization": "Bearer " + token,
				})

				denied := recorder.Code == http.StatusForbidden &&
					strings.Contains(recorder.Body.String(), "Role not allowed")
				allowed := false
				for _, r := range tt.roles {
					allowed = allowed || r == role
				}
				suite.NotEqual(http.StatusUnauthorized, recorder.Code)
				suite.Equal(!allowed, denied, "status %d body %s", recorder.Code, recorder.Body.String())
			})
		}
	}
}

func (suite *RoutesTestSuite) TestAdminAttachesRegisteredVisitor() {
	company := testutils.NewCompanyFactory().Create()
	suite.Require().NoError(suite.db.Create(company).Error)
	adminToken := suite.member(models.RoleAdmin, company.ID)
	visitorToken, profile := suite.registerVisitor()

	suite.Equal(http.StatusForbidden, suite.get("/api/v1/machinery", visitorToken))

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/users/attach", map[string]string{
		"email": "Visitor@Example.com",
	}, map[string]string{"Authorization": "Bearer " + adminToken})
	var attached service.UserResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &attached)
	suite.Equal(profile.ID, attached.ID)
	suite.Equal(models.RoleCommon, attached.Role)
	suite.Require().NotNil(attached.CompanyID)
	suite.Equal(company.ID, *attached.CompanyID)

	suite.Equal(http.StatusOK, suite.get("/api/v1/machinery", visitorToken))

	again := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/users/attach", map[string]string{
		"email": "visitor@example.com",
	}, map[string]string{"Authorization": "Bearer " + adminToken})
	suite.Equal(http.StatusConflict, again.Code)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}

func TestAuthRoutesAreRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := SetupRoutes(testutils.NewTestDB(t), &config.Config{
		JWTSecret:       "routes-test-secret",
		JWTTTLMinutes:   15,
		RateLimitPerSec: 0.001,
		RateLimitBurst:  2,
		CacheTTLSeconds: 60,
	}, Dependencies{})
	if err != nil {
		t.Fatal(err)
	}
	httpSuite := &testutils.HTTPTestSuite{Router: router}

	body := map[string]string{"email": "nobody@example.com", "password": "whatever1"}
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		codes = append(codes, httpSuite.MakeRequest(http.MethodPost, "/api/auth/login", body).Code)
	}

	if codes[0] != http.StatusUnauthorized || codes[1] != http.StatusUnauthorized || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence %v", codes)
	}
}
