package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// OrdersReportRow is one order summarized for the consolidated Excel report.
type OrdersReportRow struct {
	ID        string
	Customer  string
	Store     string
	Status    string
	Total     float64
	CreatedAt string
}

// GenerateOrdersReport creates an Excel workbook listing the given orders and
// returns the file contents as a byte slice.
func GenerateOrdersReport(rows []OrdersReportRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Ordenes"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F"}
	lastCol := columns[len(columns)-1]

	widths := []float64{18, 32, 24, 16, 14, 20}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	// Column header style: bold, white text, red background, centered.
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "#FFFFFF",
			Size:  11,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#EC2E2C"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	bodyStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create body style: %w", err)
	}

	totalLabelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create total label style: %w", err)
	}

	totalValueStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create total value style: %w", err)
	}

	headers := []string{"ID", "Cliente", "Tienda", "Estado", "Total", "Fecha"}
	for i, h := range headers {
		f.SetCellValue(sheetName, columns[i]+"1", h)
	}
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	row := 2
	var grandTotal float64
	for _, r := range rows {
		rowStr := fmt.Sprintf("%d", row)

		f.SetCellValue(sheetName, "A"+rowStr, sanitizeExcelCell(r.ID))
		f.SetCellValue(sheetName, "B"+rowStr, sanitizeExcelCell(r.Customer))
		f.SetCellValue(sheetName, "C"+rowStr, sanitizeExcelCell(r.Store))
		f.SetCellValue(sheetName, "D"+rowStr, sanitizeExcelCell(r.Status))
		f.SetCellValue(sheetName, "E"+rowStr, r.Total)
		f.SetCellValue(sheetName, "F"+rowStr, r.CreatedAt)
		f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, bodyStyle)

		grandTotal += r.Total
		row++
	}

	row++
	totalRow := fmt.Sprintf("%d", row)
	f.SetCellValue(sheetName, "D"+totalRow, "Total General:")
	f.SetCellStyle(sheetName, "D"+totalRow, "D"+totalRow, totalLabelStyle)
	f.SetCellValue(sheetName, "E"+totalRow, grandTotal)
	f.SetCellStyle(sheetName, "E"+totalRow, "E"+totalRow, totalValueStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
