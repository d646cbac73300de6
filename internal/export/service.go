package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danielokoye/bloodlens/internal/report"
)

// Service produces XLSX bytes for canonical result tables.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ResultsXLSX returns an XLSX workbook (as bytes) with one sheet holding the
// canonical table. Header titles follow the canonical column order.
func (s *Service) ResultsXLSX(rows []report.TestResult) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Blood Tests"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	// Drop the default sheet so the workbook opens on ours.
	if sheet != "Sheet1" {
		_ = f.DeleteSheet("Sheet1")
	}

	headers := report.DedupeColumns(report.Columns())
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	rowIdx := 2
	for _, r := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, rowIdx)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.Test)
		write(2, r.Value)
		write(3, r.Units)
		write(4, r.ReferenceRange)
		write(5, string(r.Status))
		write(6, r.Source)
		rowIdx++
	}

	_ = f.SetColWidth(sheet, "A", "A", 30) // test name
	_ = f.SetColWidth(sheet, "B", "B", 10) // value
	_ = f.SetColWidth(sheet, "C", "C", 14) // units
	_ = f.SetColWidth(sheet, "D", "D", 18) // reference range
	_ = f.SetColWidth(sheet, "E", "E", 10) // status
	_ = f.SetColWidth(sheet, "F", "F", 32) // source strategy

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
