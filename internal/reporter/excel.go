package reporter

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"CryptoLive/internal/model"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// SheetName is the single worksheet in every report.
const SheetName = "Live Crypto Data"

// ExcelReporter writes the market table to an .xlsx workbook, replacing any
// existing file at Path.
type ExcelReporter struct {
	Path string
	log  *zap.Logger
	mu   sync.Mutex
}

// NewExcelReporter creates a reporter for path. The file is not touched
// until the first Write.
func NewExcelReporter(path string, log *zap.Logger) *ExcelReporter {
	return &ExcelReporter{Path: path, log: log.Named("reporter")}
}

func (r *ExcelReporter) Write(table model.SnapshotTable) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return "", fmt.Errorf("rename sheet: %w", err)
	}

	if err := setRow(f, 1, toCells(Header)); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i, a := range table {
		if err := setRow(f, i+2, Row(a)); err != nil {
			return "", fmt.Errorf("write row %d (%s): %w", i+1, a.Symbol, err)
		}
	}

	if err := r.format(f, len(table)); err != nil {
		r.log.Warn("format spreadsheet", zap.Error(err))
	}

	if dir := filepath.Dir(r.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := f.SaveAs(r.Path); err != nil {
		return "", fmt.Errorf("save %s: %w", r.Path, err)
	}

	r.log.Info("spreadsheet updated", zap.String("path", r.Path), zap.Int("rows", len(table)))
	return r.Path, nil
}

// format applies cosmetic styling; failures here never block a report.
func (r *ExcelReporter) format(f *excelize.File, rows int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "A", "A", 24); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "B", "B", 10); err != nil {
		return err
	}
	if err := f.SetColWidth(SheetName, "C", "F", 22); err != nil {
		return err
	}
	if rows == 0 {
		return nil
	}
	last, err := excelize.CoordinatesToCellName(len(Header), rows+1)
	if err != nil {
		return err
	}
	return f.AutoFilter(SheetName, "A1:"+last, nil)
}

func (r *ExcelReporter) Close() error { return nil }

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(SheetName, cell, &values)
}

func toCells(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
