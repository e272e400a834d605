package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vsinha/printshop/pkg/application/dto"
	"github.com/vsinha/printshop/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	// Writer receives stdout output; os.Stdout when nil
	Writer io.Writer
}

func (c Config) writer() io.Writer {
	if c.Writer == nil {
		return os.Stdout
	}
	return c.Writer
}

// Generate renders the sizing report in the configured format
func Generate(report *dto.SizingReport, config Config) error {
	switch config.Format {
	case "text", "":
		return generateTextOutput(report, config)
	case "json":
		return generateJSONOutput(report, config)
	case "csv":
		return generateCSVOutput(report, config)
	case "xlsx":
		return generateXLSXOutput(report, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateTextOutput creates human-readable text output
func generateTextOutput(report *dto.SizingReport, config Config) error {
	w := config.writer()

	fmt.Fprintf(w, "📐 Sizing Report: %s (%s)\n", report.ComponentID, report.Family)
	fmt.Fprintf(w, "==============================\n\n")

	fmt.Fprintf(w, "Unit of Measure: %s\n", orDash(string(report.TargetUOM)))
	fmt.Fprintf(w, "Final Size: %s x %s\n", formatOptional(report.Final.Width), formatOptional(report.Final.Length))
	fmt.Fprintf(w, "Evaluated In: %v\n\n", report.EvaluatedIn)

	if len(report.RawMaterials) > 0 {
		fmt.Fprintf(w, "📄 Raw Materials:\n")
		fmt.Fprintf(w, "%-20s %-28s %-10s %-10s %-6s\n", "Option", "Label", "Width", "Length", "UOM")
		fmt.Fprintf(w, "%-20s %-28s %-10s %-10s %-6s\n",
			"--------------------", "----------------------------", "----------", "----------", "------")
		for _, m := range report.RawMaterials {
			fmt.Fprintf(w, "%-20s %-28s %-10s %-10s %-6s\n",
				m.OptionID, m.Label, formatFloat(m.Width), formatFloat(m.Length), m.UOM)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "📏 Bounds:\n")
	fmt.Fprintf(w, "%-10s %-21s %-21s %-6s\n", "Source", "Width", "Length", "UOM")
	fmt.Fprintf(w, "%-10s %-21s %-21s %-6s\n", "----------", "---------------------", "---------------------", "------")
	if report.ItemBounds != nil {
		b := report.ItemBounds
		fmt.Fprintf(w, "%-10s %-21s %-21s %-6s\n", "material", formatRange(b.Width), formatRange(b.Length), b.UOM)
	} else {
		fmt.Fprintf(w, "%-10s %-21s %-21s %-6s\n", "material", "-", "-", "-")
	}
	if report.MachineBounds != nil {
		b := report.MachineBounds
		fmt.Fprintf(w, "%-10s %-21s %-21s %-6s\n", b.MachineID, formatRange(b.Width), formatRange(b.Length), b.UOM)
	} else {
		fmt.Fprintf(w, "%-10s %-21s %-21s %-6s\n", "machine", "-", "-", "-")
	}
	fmt.Fprintln(w)

	if len(report.Attributes) > 0 {
		fmt.Fprintf(w, "✏️  Editable Attributes:\n")
		fmt.Fprintf(w, "%-14s %-12s %-12s\n", "Attribute", "Min", "Max")
		fmt.Fprintf(w, "%-14s %-12s %-12s\n", "--------------", "------------", "------------")
		for _, a := range report.Attributes {
			fmt.Fprintf(w, "%-14s %-12s %-12s\n", a.Attribute, formatOptional(a.Min), formatOptional(a.Max))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// generateJSONOutput creates JSON output
func generateJSONOutput(report *dto.SizingReport, config Config) error {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Fprintln(config.writer(), string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "sizing_report.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 JSON report saved to: %s\n", filename)
	}
	return nil
}

// generateCSVOutput writes the raw materials and attribute bounds as CSV files
func generateCSVOutput(report *dto.SizingReport, config Config) error {
	if config.OutputDir == "" {
		return fmt.Errorf("output directory required for CSV format")
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	materialsFile := filepath.Join(config.OutputDir, "raw_materials.csv")
	if err := writeMaterialsCSV(report.RawMaterials, materialsFile); err != nil {
		return fmt.Errorf("failed to write raw materials CSV: %w", err)
	}

	attributesFile := filepath.Join(config.OutputDir, "attribute_bounds.csv")
	if err := writeAttributesCSV(report.Attributes, report.TargetUOM, attributesFile); err != nil {
		return fmt.Errorf("failed to write attribute bounds CSV: %w", err)
	}

	if config.Verbose {
		fmt.Fprintf(config.writer(), "💾 CSV report saved to:\n")
		fmt.Fprintf(config.writer(), "  Raw Materials: %s\n", materialsFile)
		fmt.Fprintf(config.writer(), "  Attribute Bounds: %s\n", attributesFile)
	}
	return nil
}

func writeMaterialsCSV(materials []entities.RawMaterialDimension, filename string) error {
	records := [][]string{{"option_id", "label", "width_value", "length_value", "size_uom"}}
	for _, m := range materials {
		records = append(records, []string{
			string(m.OptionID), m.Label, formatFloat(m.Width), formatFloat(m.Length), string(m.UOM),
		})
	}
	return writeCSV(records, filename)
}

func writeAttributesCSV(attributes []dto.AttributeBounds, uom entities.Unit, filename string) error {
	records := [][]string{{"attribute", "min", "max", "size_uom"}}
	for _, a := range attributes {
		records = append(records, []string{
			string(a.Attribute), optionalCell(a.Min), optionalCell(a.Max), string(uom),
		})
	}
	return writeCSV(records, filename)
}

func writeCSV(records [][]string, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(records); err != nil {
		return err
	}
	return file.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptional(v *float64) string {
	if v == nil {
		return "-"
	}
	return formatFloat(*v)
}

func optionalCell(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatRange(r entities.Range) string {
	return formatFloat(r.Min) + " - " + formatFloat(r.Max)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
