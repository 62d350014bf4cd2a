package export

import (
	"bytes"
	"testing"
	"time"

	"maintenance-hub-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestHistoryWorkbook(t *testing.T) {
	records := []models.MaintenanceRecord{
		{
			MachineryID: uuid.New(),
			Machinery:   &models.Machinery{Name: "Lathe"},
			PerformedAt: time.Date(2026, time.March, 4, 9, 30, 0, 0, time.UTC),
			Type:        models.MaintenanceTypePreventive,
			Description: "Oil change",
			Cost:        120.5,
		},
		{
			MachineryID: uuid.New(),
			PerformedAt: time.Date(2026, time.March, 9, 14, 0, 0, 0, time.UTC),
			Type:        models.MaintenanceTypeCorrective,
			Cost:        79.5,
		},
	}

	data, err := HistoryWorkbook(records)
	require.NoError(t, err)

	f := open(t, data)
	assert.Equal(t, []string{"Maintenance History"}, f.GetSheetList())

	rows, err := f.GetRows("Maintenance History")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, historyHeaders, rows[0])
	assert.Equal(t, "2026-03-04 09:30", rows[1][0])
	assert.Equal(t, "Lathe", rows[1][1])
	assert.Equal(t, records[1].MachineryID.String(), rows[2][1])
	assert.Equal(t, "Total", rows[3][0])
	assert.Equal(t, "200", rows[3][4])
}

func TestHistoryWorkbookEmpty(t *testing.T) {
	data, err := HistoryWorkbook(nil)
	require.NoError(t, err)

	rows, err := open(t, data).GetRows("Maintenance History")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestPartsWorkbook(t *testing.T) {
	parts := []models.Part{
		{PartNumber: "BRG-1", Name: "Bearing", Quantity: 2, MinimumQuantity: 5, UnitPrice: 10},
		{PartNumber: "FLT-9", Name: "Filter", Quantity: 40, MinimumQuantity: 5, UnitPrice: 2.5},
	}

	data, err := PartsWorkbook(parts)
	require.NoError(t, err)

	rows, err := open(t, data).GetRows("Parts Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "BRG-1", rows[1][0])
	assert.Equal(t, "20", rows[1][7])
	assert.Equal(t, "yes", rows[1][10])
	assert.Equal(t, "100", rows[2][7])
	assert.Equal(t, "no", rows[2][10])
}
