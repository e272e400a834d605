// Package xlsx loads sizing reference data from Excel workbooks kept by the
// estimating desk. A workbook carries a "materials" sheet and a "machines"
// sheet using the same columns as the CSV files.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/vsinha/printshop/pkg/domain/entities"
	csvloader "github.com/vsinha/printshop/pkg/infrastructure/repositories/csv"
)

const (
	MaterialsSheet = "materials"
	MachinesSheet  = "machines"
)

// Loader handles loading sizing reference data from XLSX workbooks
type Loader struct{}

// NewLoader creates a new XLSX loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadMaterialOptions loads material options from the materials sheet
func (l *Loader) LoadMaterialOptions(filename string) ([]*entities.MaterialOption, error) {
	rows, err := readSheet(filename, MaterialsSheet, len(csvloader.MaterialHeader))
	if err != nil {
		return nil, err
	}
	return csvloader.ParseMaterialOptions(rows, "materials sheet")
}

// LoadMachineOptions loads machine options from the machines sheet
func (l *Loader) LoadMachineOptions(filename string) ([]*entities.MachineOption, error) {
	rows, err := readSheet(filename, MachinesSheet, len(csvloader.MachineHeader))
	if err != nil {
		return nil, err
	}
	return csvloader.ParseMachineOptions(rows, "machines sheet")
}

// WriteWorkbook writes reference data in the layout the loader reads
func WriteWorkbook(filename string, materials []*entities.MaterialOption, machines []*entities.MachineOption) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), MaterialsSheet); err != nil {
		return fmt.Errorf("failed to name materials sheet: %w", err)
	}
	if _, err := f.NewSheet(MachinesSheet); err != nil {
		return fmt.Errorf("failed to add machines sheet: %w", err)
	}

	materialRows := [][]interface{}{headerRow(csvloader.MaterialHeader)}
	for _, m := range materials {
		materialRows = append(materialRows, []interface{}{
			string(m.ID),
			m.Label,
			cellValue(m.Properties.WidthValue),
			cellValue(m.Properties.LengthValue),
			string(m.Properties.SizeUOM),
		})
	}
	if err := writeRows(f, MaterialsSheet, materialRows); err != nil {
		return err
	}

	machineRows := [][]interface{}{headerRow(csvloader.MachineHeader)}
	for _, o := range machines {
		m := o.Machine
		if m == nil {
			return fmt.Errorf("machine option %s has no machine", o.ID)
		}
		machineRows = append(machineRows, []interface{}{
			string(o.ID),
			o.Label,
			m.Type.String(),
			string(m.UOM),
			cellValue(m.MinPrintableWidth),
			cellValue(m.MaxPrintableWidth),
			cellValue(m.MinSheetWidth),
			cellValue(m.MaxSheetWidth),
			cellValue(m.MinSheetLength),
			cellValue(m.MaxSheetLength),
			cellValue(m.MinSheetBreakpointLength),
			cellValue(m.MaxSheetBreakpointLength),
		})
	}
	if err := writeRows(f, MachinesSheet, machineRows); err != nil {
		return err
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", filename, err)
	}
	return nil
}

func readSheet(filename, sheet string, columns int) ([][]string, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filename, err)
	}
	defer func() { _ = f.Close() }()

	if index, err := f.GetSheetIndex(sheet); err != nil || index < 0 {
		return nil, fmt.Errorf("workbook %s has no %s sheet", filename, sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", sheet, err)
	}

	// GetRows drops trailing empty cells; empty cells are unset values here
	var out [][]string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		for len(row) < columns {
			row = append(row, "")
		}
		out = append(out, row)
	}
	return out, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
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

func headerRow(columns []string) []interface{} {
	row := make([]interface{}, len(columns))
	for i, c := range columns {
		row[i] = c
	}
	return row
}

func cellValue(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
