package testutils

import (
	"time"

	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

func shortID() string {
	return uuid.NewString()[:8]
}

// CompanyFactory provides methods to create test Company data
type CompanyFactory struct{}

// NewCompanyFactory creates a new CompanyFactory
func NewCompanyFactory() *CompanyFactory {
	return &CompanyFactory{}
}

// Create creates a test Company with default values
func (f *CompanyFactory) Create() *models.Company {
	return &models.Company{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Name:     "Acme Industrial " + shortID(),
		TaxID:    "12.345.678/0001-90",
		Email:    "contact@acme.test",
		Phone:    "+55 11 5555-0100",
		Address:  "1 Factory Road",
		IsActive: true,
	}
}

// WithName sets a custom name for the company
func (f *CompanyFactory) WithName(name string) *models.Company {
	company := f.Create()
	company.Name = name
	return company
}

// ProfileFactory provides methods to create test Profile data
type ProfileFactory struct{}

// NewProfileFactory creates a new ProfileFactory
func NewProfileFactory() *ProfileFactory {
	return &ProfileFactory{}
}

// Create creates a test Profile with default values and no company
func (f *ProfileFactory) Create() *models.Profile {
	id := shortID()
	return &models.Profile{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Email:        "tech." + id + "@acme.test",
		FullName:     "Jane Technician",
		Phone:        "+55 11 5555-0101",
		JobTitle:     "Maintenance Technician",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuuJQ2m1lX4Yq7J7a2yWvL4cX3kO5iYx5e",
		IsActive:     true,
	}
}

// WithCompany assigns the profile to a company
func (f *ProfileFactory) WithCompany(companyID uuid.UUID) *models.Profile {
	profile := f.Create()
	profile.CompanyID = &companyID
	return profile
}

// WithEmail sets a custom email for the profile
func (f *ProfileFactory) WithEmail(email string) *models.Profile {
	profile := f.Create()
	profile.Email = email
	return profile
}

// Role builds a role row for a profile
func (f *ProfileFactory) Role(userID uuid.UUID, role models.Role) *models.UserRole {
	return &models.UserRole{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    userID,
		Role:      role,
	}
}

// MachineryFactory provides methods to create test Machinery data
type MachineryFactory struct{}

// NewMachineryFactory creates a new MachineryFactory
func NewMachineryFactory() *MachineryFactory {
	return &MachineryFactory{}
}

// Create creates a test Machinery with default values
func (f *MachineryFactory) Create() *models.Machinery {
	acquired := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)
	return &models.Machinery{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		CompanyID:       uuid.New(),
		Name:            "Hydraulic Press",
		Model:           "HP-200",
		Manufacturer:    "Pressworks",
		SerialNumber:    "SN-" + shortID(),
		Category:        "presses",
		Location:        "Hall A",
		Status:          models.MachineryStatusOperational,
		AcquisitionDate: &acquired,
		AcquisitionCost: 125000,
		HourMeter:       3400,
	}
}

// WithCompany sets the owning company
func (f *MachineryFactory) WithCompany(companyID uuid.UUID) *models.Machinery {
	m := f.Create()
	m.CompanyID = companyID
	return m
}

// WithStatus sets a custom status
func (f *MachineryFactory) WithStatus(companyID uuid.UUID, status models.MachineryStatus) *models.Machinery {
	m := f.WithCompany(companyID)
	m.Status = status
	return m
}

// ServiceOrderFactory provides methods to create test ServiceOrder data
type ServiceOrderFactory struct{}

// NewServiceOrderFactory creates a new ServiceOrderFactory
func NewServiceOrderFactory() *ServiceOrderFactory {
	return &ServiceOrderFactory{}
}

// Create creates a test ServiceOrder with default values
func (f *ServiceOrderFactory) Create() *models.ServiceOrder {
	return &models.ServiceOrder{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		CompanyID:     uuid.New(),
		OrderSeq:      1,
		OrderNumber:   "SO-000001",
		Title:         "Replace hydraulic seal",
		Description:   "Oil leaking from the main cylinder",
		Type:          models.MaintenanceTypeCorrective,
		Priority:      models.PriorityHigh,
		Status:        models.ServiceOrderStatusPending,
		EstimatedCost: 850,
	}
}

// WithCompany sets the owning company and sequence
func (f *ServiceOrderFactory) WithCompany(companyID uuid.UUID, seq int) *models.ServiceOrder {
	o := f.Create()
	o.CompanyID = companyID
	o.OrderSeq = seq
	o.OrderNumber = models.FormatOrderNumber(seq)
	return o
}

// MaintenanceScheduleFactory provides methods to create test MaintenanceSchedule data
type MaintenanceScheduleFactory struct{}

// NewMaintenanceScheduleFactory creates a new MaintenanceScheduleFactory
func NewMaintenanceScheduleFactory() *MaintenanceScheduleFactory {
	return &MaintenanceScheduleFactory{}
}

// Create creates a test MaintenanceSchedule due in a week
func (f *MaintenanceScheduleFactory) Create() *models.MaintenanceSchedule {
	return &models.MaintenanceSchedule{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		CompanyID:   uuid.New(),
		MachineryID: uuid.New(),
		Title:       "Lubrication",
		Frequency:   models.FrequencyMonthly,
		NextDueDate: time.Now().UTC().AddDate(0, 0, 7),
		IsActive:    true,
	}
}

// WithMachinery binds the schedule to a machine
func (f *MaintenanceScheduleFactory) WithMachinery(companyID, machineryID uuid.UUID, due time.Time) *models.MaintenanceSchedule {
	s := f.Create()
	s.CompanyID = companyID
	s.MachineryID = machineryID
	s.NextDueDate = due
	return s
}

// MaintenanceRecordFactory provides methods to create test MaintenanceRecord data
type MaintenanceRecordFactory struct{}

// NewMaintenanceRecordFactory creates a new MaintenanceRecordFactory
func NewMaintenanceRecordFactory() *MaintenanceRecordFactory {
	return &MaintenanceRecordFactory{}
}

// Create creates a test MaintenanceRecord with default values
func (f *MaintenanceRecordFactory) Create() *models.MaintenanceRecord {
	return &models.MaintenanceRecord{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		CompanyID:     uuid.New(),
		MachineryID:   uuid.New(),
		PerformedAt:   time.Now().UTC(),
		Type:          models.MaintenanceTypePreventive,
		Description:   "Routine lubrication",
		Cost:          200,
		DowntimeHours: 1.5,
	}
}

// WithMachinery binds the record to a machine with a date and cost
func (f *MaintenanceRecordFactory) WithMachinery(companyID, machineryID uuid.UUID, performedAt time.Time, cost float64) *models.MaintenanceRecord {
	r := f.Create()
	r.CompanyID = companyID
	r.MachineryID = machineryID
	r.PerformedAt = performedAt
	r.Cost = cost
	return r
}

// PartFactory provides methods to create test Part data
type PartFactory struct{}

// NewPartFactory creates a new PartFactory
func NewPartFactory() *PartFactory {
	return &PartFactory{}
}

// Create creates a test Part with default values
func (f *PartFactory) Create() *models.Part {
	return &models.Part{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		CompanyID:         uuid.New(),
		PartNumber:        "PN-" + shortID(),
		Name:              "Hydraulic seal kit",
		Category:          "seals",
		Quantity:          12,
		MinimumQuantity:   4,
		UnitPrice:         45.5,
		PreviousUnitPrice: 40,
		Supplier:          "Seal Supply Co",
		Location:          "Shelf B2",
	}
}

// WithStock sets the company and stock levels
func (f *PartFactory) WithStock(companyID uuid.UUID, quantity, minimum int) *models.Part {
	p := f.Create()
	p.CompanyID = companyID
	p.Quantity = quantity
	p.MinimumQuantity = minimum
	return p
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task with default values
func (f *TaskFactory) Create() *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		CompanyID: uuid.New(),
		Title:     "Inspect conveyor belt",
		Status:    models.TaskStatusTodo,
		Priority:  models.PriorityMedium,
	}
}

// WithStatus sets the company and kanban column
func (f *TaskFactory) WithStatus(companyID uuid.UUID, status models.TaskStatus) *models.Task {
	t := f.Create()
	t.CompanyID = companyID
	t.Status = status
	return t
}

// CalendarEventFactory provides methods to create test CalendarEvent data
type CalendarEventFactory struct{}

// NewCalendarEventFactory creates a new CalendarEventFactory
func NewCalendarEventFactory() *CalendarEventFactory {
	return &CalendarEventFactory{}
}

// Create creates a test CalendarEvent lasting one hour
func (f *CalendarEventFactory) Create() *models.CalendarEvent {
	start := time.Now().UTC().Truncate(time.Hour)
	return &models.CalendarEvent{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		CompanyID: uuid.New(),
		Title:     "Weekly maintenance meeting",
		Start:     start,
		End:       start.Add(time.Hour),
		Type:      models.EventTypeMeeting,
	}
}

// At sets the company and window of the event
func (f *CalendarEventFactory) At(companyID uuid.UUID, start, end time.Time) *models.CalendarEvent {
	e := f.Create()
	e.CompanyID = companyID
	e.Start = start
	e.End = end
	return e
}

// BugReportFactory provides methods to create test BugReport data
type BugReportFactory struct{}

// NewBugReportFactory creates a new BugReportFactory
func NewBugReportFactory() *BugReportFactory {
	return &BugReportFactory{}
}

// Create creates a test BugReport with default values
func (f *BugReportFactory) Create() *models.BugReport {
	return &models.BugReport{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		ReporterID:  uuid.New(),
		Title:       "Calendar does not load",
		Description: "Spinner never stops on the calendar page",
		Severity:    models.PriorityMedium,
		Status:      models.BugStatusOpen,
		PageURL:     "/calendar",
	}
}

// WithReporter sets the reporting user
func (f *BugReportFactory) WithReporter(reporterID uuid.UUID) *models.BugReport {
	b := f.Create()
	b.ReporterID = reporterID
	return b
}

// TutorialVideoFactory provides methods to create test TutorialVideo data
type TutorialVideoFactory struct{}

// NewTutorialVideoFactory creates a new TutorialVideoFactory
func NewTutorialVideoFactory() *TutorialVideoFactory {
	return &TutorialVideoFactory{}
}

// Create creates a published test TutorialVideo
func (f *TutorialVideoFactory) Create() *models.TutorialVideo {
	return &models.TutorialVideo{
		BaseModel: models.BaseModel{
			ID: uuid.New(),
		},
		Title:     "Creating a service order",
		VideoURL:  "https://videos.example.com/service-orders.mp4",
		Category:  "service-orders",
		SortOrder: 1,
		Published: true,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Company             *CompanyFactory
	Profile             *ProfileFactory
	Machinery           *MachineryFactory
	ServiceOrder        *ServiceOrderFactory
	MaintenanceSchedule *MaintenanceScheduleFactory
	MaintenanceRecord   *MaintenanceRecordFactory
	Part                *PartFactory
	Task                *TaskFactory
	CalendarEvent       *CalendarEventFactory
	BugReport           *BugReportFactory
	TutorialVideo       *TutorialVideoFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Company:             NewCompanyFactory(),
		Profile:             NewProfileFactory(),
		Machinery:           NewMachineryFactory(),
		ServiceOrder:        NewServiceOrderFactory(),
		MaintenanceSchedule: NewMaintenanceScheduleFactory(),
		MaintenanceRecord:   NewMaintenanceRecordFactory(),
		Part:                NewPartFactory(),
		Task:                NewTaskFactory(),
		CalendarEvent:       NewCalendarEventFactory(),
		BugReport:           NewBugReportFactory(),
		TutorialVideo:       NewTutorialVideoFactory(),
	}
}
