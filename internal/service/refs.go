package service

import (
	"errors"
	"fmt"

	apperrors "maintenance-hub-backend/internal/errors"
	"maintenance-hub-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// checkMachineryRef verifies that an optional machine reference points into the company
func checkMachineryRef(repo repository.MachineryRepositoryInterface, companyID uuid.UUID, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	machine, err := repo.GetByID(*id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("machinery_id", "machinery not found in company")
		}
		return fmt.Errorf("failed to get machinery: %w", err)
	}
	if machine.CompanyID != companyID {
		return apperrors.NewValidationError("machinery_id", "machinery not found in company")
	}
	return nil
}

// checkAssigneeRef verifies that an optional user reference is a member of the company
func checkAssigneeRef(repo repository.ProfileRepositoryInterface, companyID uuid.UUID, id *uuid.UUID) error {
	return checkMemberRef(repo, companyID, id, "assignee_id", "assignee")
}

func checkMemberRef(repo repository.ProfileRepositoryInterface, companyID uuid.UUID, id *uuid.UUID, field, label string) error {
	if id == nil {
		return nil
	}
	notFound := apperrors.NewValidationError(field, label+" not found in company")
	profile, err := repo.GetByID(*id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound
		}
		return fmt.Errorf("failed to get %s: %w", label, err)
	}
	if profile.CompanyID == nil || *profile.CompanyID != companyID {
		return notFound
	}
	return nil
}

// checkServiceOrderRef verifies that an optional service order reference points into the company
func checkServiceOrderRef(repo repository.ServiceOrderRepositoryInterface, companyID uuid.UUID, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	order, err := repo.GetByID(*id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("service_order_id", "service order not found in company")
		}
		return fmt.Errorf("failed to get service order: %w", err)
	}
	if order.CompanyID != companyID {
		return apperrors.NewValidationError("service_order_id", "service order not found in company")
	}
	return nil
}

// checkScheduleRef verifies that an optional schedule reference belongs to the machine
// and the company
func checkScheduleRef(repo repository.MaintenanceScheduleRepositoryInterface, companyID, machineryID uuid.UUID, id *uuid.UUID) error {
	if id == nil {
		return nil
	}
	schedule, err := repo.GetByID(*id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewValidationError("schedule_id", "schedule not found in company")
		}
		return fmt.Errorf("failed to get schedule: %w", err)
	}
	if schedule.CompanyID != companyID {
		return apperrors.NewValidationError("schedule_id", "schedule not found in company")
	}
	if schedule.MachineryID != machineryID {
		return apperrors.NewValidationError("schedule_id", "schedule belongs to another machine")
	}
	return nil
}
