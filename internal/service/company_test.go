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

// CompanyServiceTestSuite defines the test suite for CompanyService
type CompanyServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockCompanyRepositoryInterface
	companyService *service.CompanyService
}

// SetupTest sets up the test suite
func (suite *CompanyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	suite.companyService = service.NewCompanyService(suite.mockRepo, validator.New())
}

// TearDownTest cleans up after each test
func (suite *CompanyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CompanyServiceTestSuite) TestCreateDefaultsToActive() {
	suite.mockRepo.EXPECT().GetByName("Acme Mining").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(company *models.Company) error {
			company.ID = uuid.New()
			return nil
		})

	resp, err := suite.companyService.Create(&service.CreateCompanyRequest{Name: "Acme Mining", Email: "ops@acme.example.com"})

	suite.Require().NoError(err)
	suite.NotEqual(uuid.Nil, resp.ID)
	suite.True(resp.IsActive)
}

func (suite *CompanyServiceTestSuite) TestCreateDuplicateName() {
	suite.mockRepo.EXPECT().GetByName("Acme Mining").Return(&models.Company{Name: "Acme Mining"}, nil)

	resp, err := suite.companyService.Create(&service.CreateCompanyRequest{Name: "Acme Mining"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrCompanyExists)
}

func (suite *CompanyServiceTestSuite) TestCreateRejectsInvalidEmail() {
	resp, err := suite.companyService.Create(&service.CreateCompanyRequest{Name: "Acme", Email: "not-an-email"})

	suite.Nil(resp)
	suite.Error(err)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *CompanyServiceTestSuite) TestGetOwnWithoutCompany() {
	actor := &service.Actor{UserID: uuid.New(), Role: models.RoleVisitor}

	resp, err := suite.companyService.GetOwn(actor)

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNoCompanyAssigned)
}

func (suite *CompanyServiceTestSuite) TestGetOwn() {
	companyID := uuid.New()
	actor := &service.Actor{UserID: uuid.New(), Role: models.RoleCommon, CompanyID: &companyID}
	suite.mockRepo.EXPECT().GetByID(companyID).Return(&models.Company{BaseModel: models.BaseModel{ID: companyID}, Name: "Acme"}, nil)

	resp, err := suite.companyService.GetOwn(actor)

	suite.Require().NoError(err)
	suite.Equal("Acme", resp.Name)
}

func (suite *CompanyServiceTestSuite) TestGetAllPaginates() {
	suite.mockRepo.EXPECT().
		GetAll(20, 20).
		Return([]models.Company{{Name: "A"}, {Name: "B"}}, int64(22), nil)

	resp, err := suite.companyService.GetAll(2, 20)

	suite.Require().NoError(err)
	suite.Len(resp.Companies, 2)
	suite.Equal(int64(22), resp.Total)
	suite.Equal(2, resp.Page)
}

func (suite *CompanyServiceTestSuite) TestUpdateRenameConflict() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Company{BaseModel: models.BaseModel{ID: id}, Name: "Old"}, nil)
	suite.mockRepo.EXPECT().GetByName("Taken").Return(&models.Company{Name: "Taken"}, nil)

	resp, err := suite.companyService.Update(id, &service.UpdateCompanyRequest{Name: "Taken"})

	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrCompanyExists)
}

func (suite *CompanyServiceTestSuite) TestUpdateDeactivates() {
	id := uuid.New()
	inactive := false
	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Company{BaseModel: models.BaseModel{ID: id}, Name: "Acme", IsActive: true}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.companyService.Update(id, &service.UpdateCompanyRequest{Name: "Acme", IsActive: &inactive})

	suite.Require().NoError(err)
	suite.False(resp.IsActive)
}

func (suite *CompanyServiceTestSuite) TestDeleteNotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.companyService.Delete(id)

	suite.ErrorIs(err, apperrors.ErrCompanyNotFound)
}

// TestCompanyServiceTestSuite runs the test suite
func TestCompanyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CompanyServiceTestSuite))
}
