package repository

import "gorm.io/gorm"

// Repositories groups every repository bound to the same database handle
type Repositories struct {
	Companies     CompanyRepositoryInterface
	Profiles      ProfileRepositoryInterface
	UserRoles     UserRoleRepositoryInterface
	Machinery     MachineryRepositoryInterface
	ServiceOrders ServiceOrderRepositoryInterface
	Schedules     MaintenanceScheduleRepositoryInterface
	History       MaintenanceRecordRepositoryInterface
	Parts         PartRepositoryInterface
	Tasks         TaskRepositoryInterface
	Events        CalendarEventRepositoryInterface
	BugReports    BugReportRepositoryInterface
	Tutorials     TutorialVideoRepositoryInterface
}

// NewRepositories creates all repositories on db
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Companies:     NewCompanyRepository(db),
		Profiles:      NewProfileRepository(db),
		UserRoles:     NewUserRoleRepository(db),
		Machinery:     NewMachineryRepository(db),
		ServiceOrders: NewServiceOrderRepository(db),
		Schedules:     NewMaintenanceScheduleRepository(db),
		History:       NewMaintenanceRecordRepository(db),
		Parts:         NewPartRepository(db),
		Tasks:         NewTaskRepository(db),
		Events:        NewCalendarEventRepository(db),
		BugReports:    NewBugReportRepository(db),
		Tutorials:     NewTutorialVideoRepository(db),
	}
}

// Transactor opens database transactions for multi-step writes
type Transactor struct {
	db *gorm.DB
}

// NewTransactor creates a new transactor
func NewTransactor(db *gorm.DB) *Transactor {
	return &Transactor{db: db}
}

// Transaction commits when fn returns nil and rolls back otherwise
func (t *Transactor) Transaction(fn func(repos *Repositories) error) error {
	return t.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
