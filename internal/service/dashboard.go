package service

import (
	"fmt"

	"maintenance-hub-backend/internal/database/models"
	"maintenance-hub-backend/internal/repository"

	"github.com/google/uuid"
)

// DashboardService computes the overview widgets of a company
type DashboardService struct {
	machinery repository.MachineryRepositoryInterface
	orders    repository.ServiceOrderRepositoryInterface
	schedules repository.MaintenanceScheduleRepositoryInterface
	history   repository.MaintenanceRecordRepositoryInterface
	parts     repository.PartRepositoryInterface
	tasks     repository.TaskRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(repos *repository.Repositories) *DashboardService {
	return &DashboardService{
		machinery: repos.Machinery,
		orders:    repos.ServiceOrders,
		schedules: repos.Schedules,
		history:   repos.History,
		parts:     repos.Parts,
		tasks:     repos.Tasks,
	}
}

// DashboardResponse is the overview of one company
type DashboardResponse struct {
	CompanyID              uuid.UUID                           `json:"company_id"`
	TotalMachinery         int64                               `json:"total_machinery"`
	MachineryByStatus      map[models.MachineryStatus]int64    `json:"machinery_by_status"`
	ServiceOrdersByStatus  map[models.ServiceOrderStatus]int64 `json:"service_orders_by_status"`
	OpenHighPriorityOrders int64                               `json:"open_high_priority_orders"`
	OverdueSchedules       int64                               `json:"overdue_schedules"`
	LowStockParts          int64                               `json:"low_stock_parts"`
	TasksByStatus          map[models.TaskStatus]int64         `json:"tasks_by_status"`
	CurrentMonthCost       float64                             `json:"current_month_cost"`
	PreviousMonthCost      float64                             `json:"previous_month_cost"`
	CostVariationPct       float64                             `json:"cost_variation_pct"`
	GeneratedAt            string                              `json:"generated_at"`
}

// Summary computes the dashboard of a company
func (s *DashboardService) Summary(actor *Actor, companyID *uuid.UUID) (*DashboardResponse, error) {
	scope, err := actor.CompanyScope(companyID)
	if err != nil {
		return nil, err
	}
	now := nowFunc()
	resp := &DashboardResponse{
		CompanyID:             scope,
		MachineryByStatus:     make(map[models.MachineryStatus]int64),
		ServiceOrdersByStatus: make(map[models.ServiceOrderStatus]int64),
		TasksByStatus:         make(map[models.TaskStatus]int64),
		GeneratedAt:           formatTime(now),
	}

	machines, err := s.machinery.CountByStatus(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to count machinery: %w", err)
	}
	for _, status := range models.MachineryStatuses {
		resp.MachineryByStatus[status] = machines[status]
		resp.TotalMachinery += machines[status]
	}

	orders, err := s.orders.CountByStatus(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to count service orders: %w", err)
	}
	for _, status := range models.ServiceOrderStatuses {
		resp.ServiceOrdersByStatus[status] = orders[status]
	}

	resp.OpenHighPriorityOrders, err = s.orders.CountOpenByPriority(scope, []models.Priority{models.PriorityHigh, models.PriorityCritical})
	if err != nil {
		return nil, fmt.Errorf("failed to count urgent service orders: %w", err)
	}

	resp.OverdueSchedules, err = s.schedules.CountOverdue(scope, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count overdue schedules: %w", err)
	}

	resp.LowStockParts, err = s.parts.CountLowStock(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to count low stock parts: %w", err)
	}

	tasks, err := s.tasks.CountByStatus(scope)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}
	for _, status := range models.TaskStatuses {
		resp.TasksByStatus[status] = tasks[status]
	}

	current := monthStart(now)
	previous := current.AddDate(0, -1, 0)
	next := current.AddDate(0, 1, 0)
	records, err := s.history.ListAll(repository.HistoryFilter{CompanyID: scope, From: &previous, To: &next})
	if err != nil {
		return nil, fmt.Errorf("failed to load maintenance costs: %w", err)
	}
	resp.CurrentMonthCost = SumCostBetween(records, current, next)
	resp.PreviousMonthCost = SumCostBetween(records, previous, current)
	resp.CostVariationPct = PercentVariation(resp.CurrentMonthCost, resp.PreviousMonthCost)

	return resp, nil
}
