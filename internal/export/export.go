package export

import (
	"bytes"
	"fmt"

	"maintenance-hub-backend/internal/database/models"

	"github.com/xuri/excelize/v2"
)

// ContentType is the MIME type of generated workbooks
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var historyHeaders = []string{"Performed At", "Machinery", "Type", "Description", "Cost", "Downtime Hours"}

var partsHeaders = []string{"Part Number", "Name", "Category", "Quantity", "Minimum", "Unit Price", "Previous Price", "Stock Value", "Supplier", "Location", "Low Stock"}

// HistoryWorkbook renders maintenance history records as an xlsx file
func HistoryWorkbook(records []models.MaintenanceRecord) ([]byte, error) {
	rows := make([][]interface{}, 0, len(records))
	var total float64
	for _, r := range records {
		machine := r.MachineryID.String()
		if r.Machinery != nil {
			machine = r.Machinery.Name
		}
		rows = append(rows, []interface{}{
			r.PerformedAt.UTC().Format("2006-01-02 15:04"),
			machine,
			string(r.Type),
			r.Description,
			r.Cost,
			r.DowntimeHours,
		})
		total += r.Cost
	}
	if len(records) > 0 {
		rows = append(rows, []interface{}{"Total", "", "", "", total, ""})
	}
	return workbook("Maintenance History", historyHeaders, []float64{18, 28, 14, 48, 12, 16}, rows)
}

// PartsWorkbook renders the parts inventory as an xlsx file
func PartsWorkbook(parts []models.Part) ([]byte, error) {
	rows := make([][]interface{}, 0, len(parts))
	for i := range parts {
		p := &parts[i]
		low := "no"
		if p.IsLowStock() {
			low = "yes"
		}
		rows = append(rows, []interface{}{
			p.PartNumber,
			p.Name,
			p.Category,
			p.Quantity,
			p.MinimumQuantity,
			p.UnitPrice,
			p.PreviousUnitPrice,
			float64(p.Quantity) * p.UnitPrice,
			p.Supplier,
			p.Location,
			low,
		})
	}
	return workbook("Parts Inventory", partsHeaders, []float64{16, 30, 16, 10, 10, 12, 14, 14, 24, 18, 10}, rows)
}

func workbook(sheetName string, headers []string, widths []float64, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range headers {
		if err := setCellValue(f, sheetName, col+1, 1, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header: %w", err)
		}
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeader, headerStyle); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to style header: %w", err)
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	for r, row := range rows {
		for c, value := range row {
			if err := setCellValue(f, sheetName, c+1, r+2, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell value at row %d, col %d: %w", r+2, c+1, err)
			}
		}
	}

	if err := f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setCellValue(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
