package service

import (
	"time"

	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

// Aggregations run in one pass over rows that were already loaded. Rows with
// missing optional data still count; they simply add nothing to sums they lack.

// Price directions reported by the price ticker
const (
	DirectionUp   = "up"
	DirectionDown = "down"
	DirectionFlat = "flat"
)

// MonthlyBucket is the maintenance activity of one calendar month
type MonthlyBucket struct {
	Month     string  `json:"month"`
	Count     int     `json:"count"`
	TotalCost float64 `json:"total_cost"`
}

// TypeCost is the share of one maintenance type in a cost summary
type TypeCost struct {
	Count     int     `json:"count"`
	TotalCost float64 `json:"total_cost"`
}

// CostSummary totals maintenance costs
type CostSummary struct {
	Count       int                                 `json:"count"`
	TotalCost   float64                             `json:"total_cost"`
	AverageCost float64                             `json:"average_cost"`
	Downtime    float64                             `json:"downtime_hours"`
	ByType      map[models.MaintenanceType]TypeCost `json:"by_type"`
}

// PriceTick is the price movement of one part
type PriceTick struct {
	PartID            uuid.UUID `json:"part_id"`
	PartNumber        string    `json:"part_number"`
	Name              string    `json:"name"`
	UnitPrice         float64   `json:"unit_price"`
	PreviousUnitPrice float64   `json:"previous_unit_price"`
	VariationPct      float64   `json:"variation_pct"`
	Direction         string    `json:"direction"`
}

// monthStart truncates t to the first instant of its month in UTC
func monthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyBuckets groups records into the last n calendar months ending with
// the month of now, oldest first. Months without records are kept with zero values.
func MonthlyBuckets(records []models.MaintenanceRecord, now time.Time, n int) []MonthlyBucket {
	if n <= 0 {
		return []MonthlyBucket{}
	}
	first := monthStart(now).AddDate(0, -(n - 1), 0)

	buckets := make([]MonthlyBucket, n)
	index := make(map[string]int, n)
	for i := 0; i < n; i++ {
		key := first.AddDate(0, i, 0).Format("2006-01")
		buckets[i].Month = key
		index[key] = i
	}

	for _, r := range records {
		i, ok := index[r.PerformedAt.UTC().Format("2006-01")]
		if !ok {
			continue
		}
		buckets[i].Count++
		buckets[i].TotalCost += r.Cost
	}
	for i := range buckets {
		buckets[i].TotalCost = round2(buckets[i].TotalCost)
	}
	return buckets
}

// SummarizeCosts totals the cost of records overall and per maintenance type
func SummarizeCosts(records []models.MaintenanceRecord) *CostSummary {
	summary := &CostSummary{ByType: make(map[models.MaintenanceType]TypeCost)}
	for _, r := range records {
		summary.Count++
		summary.TotalCost += r.Cost
		summary.Downtime += r.DowntimeHours

		entry := summary.ByType[r.Type]
		entry.Count++
		entry.TotalCost += r.Cost
		summary.ByType[r.Type] = entry
	}

	if summary.Count > 0 {
		summary.AverageCost = round2(summary.TotalCost / float64(summary.Count))
	}
	summary.TotalCost = round2(summary.TotalCost)
	summary.Downtime = round2(summary.Downtime)
	for k, v := range summary.ByType {
		v.TotalCost = round2(v.TotalCost)
		summary.ByType[k] = v
	}
	return summary
}

// SumCostBetween adds the cost of records performed in [from, to)
func SumCostBetween(records []models.MaintenanceRecord, from, to time.Time) float64 {
	var total float64
	for _, r := range records {
		if !r.PerformedAt.Before(from) && r.PerformedAt.Before(to) {
			total += r.Cost
		}
	}
	return round2(total)
}

// PercentVariation is the change from previous to current in percent. It is 0
// when there is no previous value to compare with.
func PercentVariation(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return round2((current - previous) / previous * 100)
}

// PriceTicker reports the last price move of each part
func PriceTicker(parts []models.Part) []PriceTick {
	ticks := make([]PriceTick, 0, len(parts))
	for i := range parts {
		p := &parts[i]
		variation := PercentVariation(p.UnitPrice, p.PreviousUnitPrice)
		direction := DirectionFlat
		switch {
		case p.PreviousUnitPrice == 0:
		case p.UnitPrice > p.PreviousUnitPrice:
			direction = DirectionUp
		case p.UnitPrice < p.PreviousUnitPrice:
			direction = DirectionDown
		}
		ticks = append(ticks, PriceTick{
			PartID:            p.ID,
			PartNumber:        p.PartNumber,
			Name:              p.Name,
			UnitPrice:         p.UnitPrice,
			PreviousUnitPrice: p.PreviousUnitPrice,
			VariationPct:      variation,
			Direction:         direction,
		})
	}
	return ticks
}

// GroupTasks places tasks into the four kanban columns in board order
func GroupTasks(tasks []models.Task) []BoardColumn {
	columns := make([]BoardColumn, len(models.TaskStatuses))
	index := make(map[models.TaskStatus]int, len(models.TaskStatuses))
	for i, status := range models.TaskStatuses {
		columns[i] = BoardColumn{Status: status, Tasks: []TaskResponse{}}
		index[status] = i
	}
	for i := range tasks {
		col, ok := index[tasks[i].Status]
		if !ok {
			continue
		}
		columns[col].Tasks = append(columns[col].Tasks, *toTaskResponse(&tasks[i]))
		columns[col].Count++
	}
	return columns
}
