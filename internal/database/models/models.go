package models

// All returns every persisted model in migration order
func All() []interface{} {
	return []interface{}{
		&Company{},
		&Profile{},
		&UserRole{},
		&Machinery{},
		&ServiceOrder{},
		&ServiceOrderCounter{},
		&MaintenanceSchedule{},
		&MaintenanceRecord{},
		&Part{},
		&Task{},
		&CalendarEvent{},
		&BugReport{},
		&TutorialVideo{},
	}
}
