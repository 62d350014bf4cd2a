package models

import "time"

// Role gates routes and data visibility
type Role string

const (
	RoleVisitor    Role = "visitor"
	RoleCommon     Role = "common"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super_admin"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleVisitor, RoleCommon, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// MachineryStatus is the operational state of a machine
type MachineryStatus string

const (
	MachineryStatusOperational MachineryStatus = "operational"
	MachineryStatusMaintenance MachineryStatus = "maintenance"
	MachineryStatusBroken      MachineryStatus = "broken"
	MachineryStatusInactive    MachineryStatus = "inactive"
)

// MachineryStatuses lists every machinery status in display order
var MachineryStatuses = []MachineryStatus{
	MachineryStatusOperational,
	MachineryStatusMaintenance,
	MachineryStatusBroken,
	MachineryStatusInactive,
}

// IsValid checks if the MachineryStatus is valid
func (s MachineryStatus) IsValid() bool {
	switch s {
	case MachineryStatusOperational, MachineryStatusMaintenance, MachineryStatusBroken, MachineryStatusInactive:
		return true
	}
	return false
}

// MaintenanceType classifies service orders and history entries
type MaintenanceType string

const (
	MaintenanceTypePreventive MaintenanceType = "preventive"
	MaintenanceTypeCorrective MaintenanceType = "corrective"
	MaintenanceTypePredictive MaintenanceType = "predictive"
	MaintenanceTypeInspection MaintenanceType = "inspection"
)

// IsValid checks if the MaintenanceType is valid
func (t MaintenanceType) IsValid() bool {
	switch t {
	case MaintenanceTypePreventive, MaintenanceTypeCorrective, MaintenanceTypePredictive, MaintenanceTypeInspection:
		return true
	}
	return false
}

// Priority is shared by service orders and tasks
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ServiceOrderStatus is the kanban column of a service order
type ServiceOrderStatus string

const (
	ServiceOrderStatusPending    ServiceOrderStatus = "pending"
	ServiceOrderStatusInProgress ServiceOrderStatus = "in_progress"
	ServiceOrderStatusCompleted  ServiceOrderStatus = "completed"
	ServiceOrderStatusCancelled  ServiceOrderStatus = "cancelled"
)

// ServiceOrderStatuses lists every service order status in board order
var ServiceOrderStatuses = []ServiceOrderStatus{
	ServiceOrderStatusPending,
	ServiceOrderStatusInProgress,
	ServiceOrderStatusCompleted,
	ServiceOrderStatusCancelled,
}

// IsValid checks if the ServiceOrderStatus is valid
func (s ServiceOrderStatus) IsValid() bool {
	switch s {
	case ServiceOrderStatusPending, ServiceOrderStatusInProgress, ServiceOrderStatusCompleted, ServiceOrderStatusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether work on the order is still outstanding
func (s ServiceOrderStatus) IsOpen() bool {
	return s == ServiceOrderStatusPending || s == ServiceOrderStatusInProgress
}

// Frequency is the recurrence of a maintenance schedule
type Frequency string

const (
	FrequencyDaily      Frequency = "daily"
	FrequencyWeekly     Frequency = "weekly"
	FrequencyMonthly    Frequency = "monthly"
	FrequencyQuarterly  Frequency = "quarterly"
	FrequencySemiannual Frequency = "semiannual"
	FrequencyAnnual     Frequency = "annual"
)

// IsValid checks if the Frequency is valid
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly, FrequencySemiannual, FrequencyAnnual:
		return true
	}
	return false
}

// Next returns the due date one recurrence step after from
func (f Frequency) Next(from time.Time) time.Time {
	switch f {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case FrequencyMonthly:
		return addMonths(from, 1)
	case FrequencyQuarterly:
		return addMonths(from, 3)
	case FrequencySemiannual:
		return addMonths(from, 6)
	case FrequencyAnnual:
		return addMonths(from, 12)
	}
	return from
}

// addMonths steps n calendar months, clamping the day to the target month's last day
func addMonths(from time.Time, n int) time.Time {
	year, month, day := from.Date()
	first := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, from.Location())
	last := first.AddDate(0, 1, -1).Day()
	return time.Date(first.Year(), first.Month(), min(day, last),
		from.Hour(), from.Minute(), from.Second(), from.Nanosecond(), from.Location())
}

// TaskStatus is the kanban column of a task
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

// TaskStatuses lists the kanban columns in board order
var TaskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusReview,
	TaskStatusDone,
}

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusReview, TaskStatusDone:
		return true
	}
	return false
}

// EventType classifies calendar events
type EventType string

const (
	EventTypeMaintenance  EventType = "maintenance"
	EventTypeServiceOrder EventType = "service_order"
	EventTypeMeeting      EventType = "meeting"
	EventTypeOther        EventType = "other"
)

// IsValid checks if the EventType is valid
func (t EventType) IsValid() bool {
	switch t {
	case EventTypeMaintenance, EventTypeServiceOrder, EventTypeMeeting, EventTypeOther:
		return true
	}
	return false
}

// BugStatus is the triage state of a bug report
type BugStatus string

const (
	BugStatusOpen       BugStatus = "open"
	BugStatusInProgress BugStatus = "in_progress"
	BugStatusResolved   BugStatus = "resolved"
	BugStatusClosed     BugStatus = "closed"
)

// IsValid checks if the BugStatus is valid
func (s BugStatus) IsValid() bool {
	switch s {
	case BugStatusOpen, BugStatusInProgress, BugStatusResolved, BugStatusClosed:
		return true
	}
	return false
}
