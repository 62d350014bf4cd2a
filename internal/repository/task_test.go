package repository

import (
	"testing"
	"time"

	"maintenance-hub-backend/internal/database/models"
	"maintenance-hub-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TaskRepositoryTestSuite tests tasks and calendar events
type TaskRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repos         *Repositories
	factories     *testutils.FactorySet
	company       *models.Company
}

// SetupSuite runs before all tests in the suite
func (suite *TaskRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repos = NewRepositories(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TaskRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TaskRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.company = suite.factories.Company.Create()
	suite.Require().NoError(suite.repos.Companies.Create(suite.company))
}

// TestStatusMoveAnyToAny tests that every column is reachable from every other
func (suite *TaskRepositoryTestSuite) TestStatusMoveAnyToAny() {
	task := suite.factories.Task.WithStatus(suite.company.ID, models.TaskStatusDone)
	suite.NoError(suite.repos.Tasks.Create(task))

	for _, status := range []models.TaskStatus{models.TaskStatusTodo, models.TaskStatusReview, models.TaskStatusInProgress, models.TaskStatusDone} {
		suite.NoError(suite.repos.Tasks.UpdateStatus(task.ID, status))
		found, err := suite.repos.Tasks.GetByID(task.ID)
		suite.NoError(err)
		suite.Equal(status, found.Status)
	}

	suite.Equal(gorm.ErrRecordNotFound, suite.repos.Tasks.UpdateStatus(uuid.New(), models.TaskStatusTodo))
}

// TestCountByStatus tests grouping tasks per column
func (suite *TaskRepositoryTestSuite) TestCountByStatus() {
	suite.NoError(suite.repos.Tasks.Create(suite.factories.Task.WithStatus(suite.company.ID, models.TaskStatusTodo)))
	suite.NoError(suite.repos.Tasks.Create(suite.factories.Task.WithStatus(suite.company.ID, models.TaskStatusTodo)))
	suite.NoError(suite.repos.Tasks.Create(suite.factories.Task.WithStatus(suite.company.ID, models.TaskStatusReview)))

	counts, err := suite.repos.Tasks.CountByStatus(suite.company.ID)
	suite.NoError(err)
	suite.Equal(int64(2), counts[models.TaskStatusTodo])
	suite.Equal(int64(1), counts[models.TaskStatusReview])

	todo, total, err := suite.repos.Tasks.List(TaskFilter{CompanyID: suite.company.ID, Status: models.TaskStatusTodo}, 20, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(todo, 2)
}

// TestEventRange tests overlap queries on the calendar
func (suite *TaskRepositoryTestSuite) TestEventRange() {
	day := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	inside := suite.factories.CalendarEvent.At(suite.company.ID, day.Add(9*time.Hour), day.Add(10*time.Hour))
	spanning := suite.factories.CalendarEvent.At(suite.company.ID, day.Add(-2*time.Hour), day.Add(2*time.Hour))
	outside := suite.factories.CalendarEvent.At(suite.company.ID, day.AddDate(0, 0, 2), day.AddDate(0, 0, 2).Add(time.Hour))
	for _, e := range []*models.CalendarEvent{inside, spanning, outside} {
		suite.NoError(suite.repos.Events.Create(e))
	}

	events, err := suite.repos.Events.ListRange(suite.company.ID, day, day.AddDate(0, 0, 1))
	suite.NoError(err)
	suite.Require().Len(events, 2)
	suite.Equal(spanning.ID, events[0].ID)
	suite.Equal(inside.ID, events[1].ID)
}

// TestTaskRepositoryTestSuite runs the test suite
func TestTaskRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TaskRepositoryTestSuite))
}
