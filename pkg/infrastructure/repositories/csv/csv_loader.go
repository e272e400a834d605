package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vsinha/printshop/pkg/domain/entities"
)

// MaterialHeader is the column layout of material option sheets
var MaterialHeader = []string{"id", "label", "width_value", "length_value", "size_uom"}

// MachineHeader is the column layout of machine option sheets
var MachineHeader = []string{
	"id", "label", "type", "uom",
	"min_printable_width", "max_printable_width",
	"min_sheet_width", "max_sheet_width",
	"min_sheet_length", "max_sheet_length",
	"min_sheet_breakpoint_length", "max_sheet_breakpoint_length",
}

// Loader handles loading sizing reference data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadMaterialOptions loads material options from a CSV file
func (l *Loader) LoadMaterialOptions(filename string) ([]*entities.MaterialOption, error) {
	records, err := readRecords(filename, "material options")
	if err != nil {
		return nil, err
	}
	return ParseMaterialOptions(records, "material options CSV")
}

// LoadMachineOptions loads machine options from a CSV file
func (l *Loader) LoadMachineOptions(filename string) ([]*entities.MachineOption, error) {
	records, err := readRecords(filename, "machine options")
	if err != nil {
		return nil, err
	}
	return ParseMachineOptions(records, "machine options CSV")
}

func readRecords(filename, kind string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}
	return records, nil
}

// ParseMaterialOptions converts header-led rows into material options.
// source names the rows in error messages. Empty dimension cells are left unset.
func ParseMaterialOptions(records [][]string, source string) ([]*entities.MaterialOption, error) {
	if err := checkRecords(records, MaterialHeader, source); err != nil {
		return nil, err
	}

	var options []*entities.MaterialOption
	for i, record := range records[1:] {
		if len(record) != len(MaterialHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d", source, i+2, len(MaterialHeader), len(record))
		}

		option, err := parseMaterialOption(record)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", source, i+2, err)
		}
		options = append(options, option)
	}

	return options, nil
}

// ParseMachineOptions converts header-led rows into machine options.
// Each row defines one machine and the option offering it.
func ParseMachineOptions(records [][]string, source string) ([]*entities.MachineOption, error) {
	if err := checkRecords(records, MachineHeader, source); err != nil {
		return nil, err
	}

	var options []*entities.MachineOption
	for i, record := range records[1:] {
		if len(record) != len(MachineHeader) {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d", source, i+2, len(MachineHeader), len(record))
		}

		option, err := parseMachineOption(record)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", source, i+2, err)
		}
		options = append(options, option)
	}

	return options, nil
}

// Helper functions for parsing records

func checkRecords(records [][]string, expected []string, source string) error {
	if len(records) < 2 {
		return fmt.Errorf("%s must have header and at least one data row", source)
	}
	if !validateHeader(records[0], expected) {
		return fmt.Errorf("%s header mismatch. Expected: %v, Got: %v", source, expected, records[0])
	}
	return nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseMaterialOption(record []string) (*entities.MaterialOption, error) {
	width, err := parseOptionalFloat("width_value", record[2])
	if err != nil {
		return nil, err
	}
	length, err := parseOptionalFloat("length_value", record[3])
	if err != nil {
		return nil, err
	}

	return entities.NewMaterialOption(
		entities.MaterialOptionID(strings.TrimSpace(record[0])),
		strings.TrimSpace(record[1]),
		entities.MaterialProperties{
			WidthValue:  width,
			LengthValue: length,
			SizeUOM:     entities.Unit(strings.TrimSpace(record[4])),
		},
	)
}

func parseMachineOption(record []string) (*entities.MachineOption, error) {
	id := strings.TrimSpace(record[0])
	label := strings.TrimSpace(record[1])

	machineType, err := entities.ParseMachineType(record[2])
	if err != nil {
		return nil, err
	}

	machine, err := entities.NewMachine(strings.ToLower(id), label, machineType, entities.Unit(strings.TrimSpace(record[3])))
	if err != nil {
		return nil, err
	}

	bounds := []**float64{
		&machine.MinPrintableWidth, &machine.MaxPrintableWidth,
		&machine.MinSheetWidth, &machine.MaxSheetWidth,
		&machine.MinSheetLength, &machine.MaxSheetLength,
		&machine.MinSheetBreakpointLength, &machine.MaxSheetBreakpointLength,
	}
	for i, field := range bounds {
		value, err := parseOptionalFloat(MachineHeader[i+4], record[i+4])
		if err != nil {
			return nil, err
		}
		*field = value
	}

	return &entities.MachineOption{
		ID:      entities.MachineOptionID(id),
		Label:   label,
		Machine: machine,
	}, nil
}

func parseOptionalFloat(column, s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", column, s)
	}
	if v < 0 {
		return nil, fmt.Errorf("invalid %s: %s (cannot be negative)", column, s)
	}
	return &v, nil
}
