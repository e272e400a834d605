package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/printshop/pkg/application/dto"
)

const (
	summarySheet   = "summary"
	materialsSheet = "raw_materials"
)

// generateXLSXOutput saves the report as a workbook in the output directory
func generateXLSXOutput(report *dto.SizingReport, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for XLSX format")
	}
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "sizing_report.xlsx")
	if err := WriteXLSX(report, filename); err != nil {
		return err
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 XLSX report saved to: %s\n", filename)
	}
	return nil
}

// WriteXLSX writes the report to filename with a summary sheet and a raw
// materials sheet
func WriteXLSX(report *dto.SizingReport, filename string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(materialsSheet); err != nil {
		return fmt.Errorf("failed to add raw materials sheet: %w", err)
	}

	summary := [][]interface{}{
		{"component_id", report.ComponentID},
		{"family", report.Family},
		{"size_uom", string(report.TargetUOM)},
		{"width_value", optionalValue(report.Final.Width)},
		{"length_value", optionalValue(report.Final.Length)},
		{},
		{"source", "min_width", "max_width", "min_length", "max_length", "uom"},
	}
	if b := report.ItemBounds; b != nil {
		summary = append(summary, []interface{}{"material", b.Width.Min, b.Width.Max, b.Length.Min, b.Length.Max, string(b.UOM)})
	}
	if b := report.MachineBounds; b != nil {
		summary = append(summary, []interface{}{b.MachineID, b.Width.Min, b.Width.Max, b.Length.Min, b.Length.Max, string(b.UOM)})
	}
	summary = append(summary, []interface{}{}, []interface{}{"attribute", "min", "max"})
	for _, a := range report.Attributes {
		summary = append(summary, []interface{}{string(a.Attribute), optionalValue(a.Min), optionalValue(a.Max)})
	}
	if err := writeSheet(f, summarySheet, summary); err != nil {
		return err
	}

	materials := [][]interface{}{{"option_id", "label", "width_value", "length_value", "size_uom"}}
	for _, m := range report.RawMaterials {
		materials = append(materials, []interface{}{string(m.OptionID), m.Label, m.Width, m.Length, string(m.UOM)})
	}
	if err := writeSheet(f, materialsSheet, materials); err != nil {
		return err
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save XLSX report %s: %w", filename, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to address %s row %d: %w", sheet, i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

func optionalValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
