package testutils

import (
	"maintenance-hub-backend/internal/config"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ------------------------------
// Base suite types
// ------------------------------
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// tables lists every table in child-to-parent order
var tables = []string{
	"bug_reports",
	"calendar_events",
	"tasks",
	"maintenance_history",
	"maintenance_schedules",
	"service_orders",
	"service_order_counters",
	"parts_inventory",
	"machinery",
	"user_roles",
	"profiles",
	"companies",
	"tutorial_videos",
}

// ------------------------------
// Suite lifecycle hooks
// ------------------------------

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// TeardownTestSuite is per *suite* (not process). We only clean DB here.
func (s *BaseTestSuite) TeardownTestSuite() { s.CleanTestDB() }

// CleanTestDB empties known tables if they exist. Safe even if schema changes.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	m := s.DB.Migrator()
	for _, t := range tables {
		if m.HasTable(t) {
			s.DB.Exec(`DELETE FROM "` + t + `"`)
		}
	}
}
