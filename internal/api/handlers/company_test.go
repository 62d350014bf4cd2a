package handlers

import (
	"fmt"
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

// CompanyHandlerTestSuite defines the test suite for CompanyHandler
type CompanyHandlerTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockCompanyService *mocks.MockCompanyServiceInterface
	handler            *CompanyHandler
	httpSuite          *testutils.HTTPTestSuite
	actor              *service.Actor
}

// SetupTest sets up the test suite
func (suite *CompanyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCompanyService = mocks.NewMockCompanyServiceInterface(suite.ctrl)
	suite.handler = NewCompanyHandler(suite.mockCompanyService)
	suite.actor = newActor(models.RoleSuperAdmin)

	suite.httpSuite = testutils.SetupHTTPTest()
	v1 := suite.httpSuite.Router.Group("/api/v1", withActor(suite.actor))
	companies := v1.Group("/companies")
	{
		companies.POST("", suite.handler.CreateCompany)
		companies.GET("", suite.handler.ListCompanies)
		companies.GET("/mine", suite.handler.GetOwnCompany)
		companies.GET("/:id", suite.handler.GetCompany)
		companies.PUT("/:id", suite.handler.UpdateCompany)
		companies.DELETE("/:id", suite.handler.DeleteCompany)
	}
}

// TearDownTest cleans up after each test
func (suite *CompanyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyHandlerTestSuite) TestCreateCompany() {
	companyID := uuid.New()
	suite.mockCompanyService.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(req *service.CreateCompanyRequest) (*service.CompanyResponse, error) {
			suite.Equal("Acme Mining", req.Name)
			return &service.CompanyResponse{ID: companyID, Name: req.Name}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/companies", map[string]interface{}{
		"name":   "Acme Mining",
		"tax_id": "12.345.678/0001-90",
	})

	var response service.CompanyResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(companyID, response.ID)
}

func (suite *CompanyHandlerTestSuite) TestCreateCompanyConflict() {
	suite.mockCompanyService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrCompanyExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/companies", map[string]interface{}{"name": "Acme"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "company already exists")
}

func (suite *CompanyHandlerTestSuite) TestCreateCompanyInvalidBody() {
	recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/companies", "{not json")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid request body")
}

func (suite *CompanyHandlerTestSuite) TestCreateCompanyValidationError() {
	suite.mockCompanyService.EXPECT().
		Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "name is required"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/companies", map[string]interface{}{})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "name is required")
}

func (suite *CompanyHandlerTestSuite) TestGetCompany() {
	companyID := uuid.New()
	suite.mockCompanyService.EXPECT().
		GetByID(companyID).
		Return(&service.CompanyResponse{ID: companyID, Name: "Acme"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/companies/"+companyID.String(), nil)

	var response service.CompanyResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Acme", response.Name)
}

func (suite *CompanyHandlerTestSuite) TestGetCompanyNotFound() {
	companyID := uuid.New()
	suite.mockCompanyService.EXPECT().GetByID(companyID).Return(nil, apperrors.ErrCompanyNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/companies/"+companyID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "company not found")
}

func (suite *CompanyHandlerTestSuite) TestGetCompanyInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/companies/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid company ID")
}

func (suite *CompanyHandlerTestSuite) TestGetOwnCompany() {
	suite.mockCompanyService.EXPECT().
		GetOwn(suite.actor).
		Return(&service.CompanyResponse{ID: *suite.actor.CompanyID, Name: "Own"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/companies/mine", nil)

	var response service.CompanyResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(*suite.actor.CompanyID, response.ID)
}

func (suite *CompanyHandlerTestSuite) TestListCompaniesPagination() {
	suite.mockCompanyService.EXPECT().
		GetAll(2, 50).
		Return(&service.CompanyListResponse{Page: 2, PageSize: 50}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/companies?page=2&page_size=50", nil)

	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, nil)
}

func (suite *CompanyHandlerTestSuite) TestListCompaniesOutOfRangeFallsBack() {
	suite.mockCompanyService.EXPECT().
		GetAll(1, 20).
		Return(&service.CompanyListResponse{Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/companies?page=-3&page_size=1000", nil)

	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, nil)
}

func (suite *CompanyHandlerTestSuite) TestUpdateCompany() {
	companyID := uuid.New()
	suite.mockCompanyService.EXPECT().
		Update(companyID, gomock.Any()).
		Return(&service.CompanyResponse{ID: companyID, Name: "Renamed"}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/companies/"+companyID.String(), map[string]interface{}{"name": "Renamed"})

	var response service.CompanyResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal("Renamed", response.Name)
}

func (suite *CompanyHandlerTestSuite) TestDeleteCompany() {
	companyID := uuid.New()
	suite.mockCompanyService.EXPECT().Delete(companyID).Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/companies/"+companyID.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *CompanyHandlerTestSuite) TestDeleteCompanyInternalError() {
	companyID := uuid.New()
	suite.mockCompanyService.EXPECT().Delete(companyID).Return(fmt.Errorf("failed to delete company: %w", fmt.Errorf("connection reset")))

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/companies/"+companyID.String(), nil)

	var response ErrorResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusInternalServerError, &response)
	suite.Equal("Internal server error", response.Error)
	suite.Contains(response.Details, "connection reset")
}

// TestCompanyHandlerTestSuite runs the test suite
func TestCompanyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyHandlerTestSuite))
}
