package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsinha/printshop/pkg/application/dto"
	"github.com/vsinha/printshop/pkg/application/services"
	"github.com/vsinha/printshop/pkg/domain/entities"
	"github.com/vsinha/printshop/pkg/domain/services/refcheck"
	"github.com/vsinha/printshop/pkg/domain/services/sizing"
	"github.com/vsinha/printshop/pkg/infrastructure/events"
	"github.com/vsinha/printshop/pkg/infrastructure/logging"
	"github.com/vsinha/printshop/pkg/infrastructure/metrics"
	"github.com/vsinha/printshop/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/printshop/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/printshop/pkg/infrastructure/repositories/xlsx"
	"github.com/vsinha/printshop/pkg/infrastructure/repositories/yamlfile"
	"github.com/vsinha/printshop/pkg/interfaces/cli/output"
)

// Config holds configuration for the sizing command
type Config struct {
	MaterialsFile string
	MachinesFile  string
	ComponentFile string
	Family        string
	TargetUOM     string
	OutputDir     string
	Format        string
	ReportFile    string
	MetricsFile   string
	WriteBack     bool
	Verbose       bool
	Help          bool

	// Stdout receives report and progress output; os.Stdout when nil
	Stdout io.Writer
	Logger *slog.Logger
}

// SizeCommand loads reference data and a product component, applies an
// optional unit change and reports the resulting sizing bounds
type SizeCommand struct {
	config Config
	out    io.Writer
	log    *slog.Logger
}

// NewSizeCommand creates a new sizing command with the given configuration
func NewSizeCommand(config Config) *SizeCommand {
	out := config.Stdout
	if out == nil {
		out = os.Stdout
	}
	log := config.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &SizeCommand{config: config, out: out, log: log}
}

// Execute runs the sizing command
func (c *SizeCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if c.config.Verbose {
		c.printHeader()
		fmt.Fprintln(c.out, "📂 Loading reference data...")
	}

	materials, err := loadMaterials(c.config.MaterialsFile)
	if err != nil {
		return fmt.Errorf("error loading material options: %w", err)
	}
	machines, err := loadMachines(c.config.MachinesFile)
	if err != nil {
		return fmt.Errorf("error loading machine options: %w", err)
	}
	component, err := yamlfile.LoadComponent(c.config.ComponentFile)
	if err != nil {
		return fmt.Errorf("error loading component: %w", err)
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Data loaded successfully:\n")
		fmt.Fprintf(c.out, "  Material Options: %d\n", len(materials))
		fmt.Fprintf(c.out, "  Machine Options: %d\n", len(machines))
		fmt.Fprintf(c.out, "  Material Templates: %d\n", len(component.MaterialTemplates))
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "🔍 Validating reference data...")
	}

	validation := refcheck.ValidateMaterialOptions(materials)
	validation.Merge(refcheck.ValidateMachineOptions(machines))
	validation.Merge(refcheck.ValidateTemplateReferences(component.MaterialTemplates, materials))
	if !validation.Valid() {
		return fmt.Errorf("reference data validation failed: %s", strings.Join(validation.Errors, "; "))
	}
	for _, warning := range validation.Warnings {
		c.log.Warn("reference data warning", "warning", warning)
		if c.config.Verbose {
			fmt.Fprintf(c.out, "⚠️  %s\n", warning)
		}
	}
	if c.config.Verbose && len(validation.Warnings) == 0 {
		fmt.Fprintln(c.out, "✅ Reference data validation passed")
	}

	materialRepo := memory.NewMaterialOptionRepository(len(materials))
	if err := materialRepo.LoadMaterialOptions(materials); err != nil {
		return fmt.Errorf("failed to load material options into repository: %w", err)
	}
	machineRepo := memory.NewMachineOptionRepository(len(machines))
	if err := machineRepo.LoadMachineOptions(machines); err != nil {
		return fmt.Errorf("failed to load machine options into repository: %w", err)
	}

	collector := metrics.New()
	eventStore := events.NewInMemoryEventStore()
	if c.config.Verbose {
		_ = eventStore.Subscribe(progressEventTypes, &progressHandler{out: c.out})
	}
	service := services.NewSizingService(materialRepo, machineRepo, eventStore, collector, c.log)

	family := sizing.Family(c.config.Family)
	if family == "" {
		family = sizing.FamilyPaper
	}

	var report *dto.SizingReport
	target := entities.Unit(c.config.TargetUOM).Canonical()
	if target != "" && target != component.SizeUOM.Canonical() {
		if c.config.Verbose {
			fmt.Fprintf(c.out, "🔄 Changing unit of measure from %s to %s...\n", orNone(component.SizeUOM), target)
		}
		report, err = service.ChangeUnit(ctx, family, component, target)
	} else {
		report, err = service.Evaluate(ctx, family, component)
	}
	if err != nil {
		return fmt.Errorf("error sizing component %s: %w", component.ID, err)
	}

	if c.config.Verbose {
		fmt.Fprintf(c.out, "✅ Sizing completed in %v\n\n", report.EvaluatedIn)
	}

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		Writer:    c.out,
	}
	if err := output.Generate(report, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.ReportFile != "" {
		if err := output.WriteXLSX(report, c.config.ReportFile); err != nil {
			return fmt.Errorf("error writing report: %w", err)
		}
		if c.config.Verbose {
			fmt.Fprintf(c.out, "💾 XLSX report saved to: %s\n", c.config.ReportFile)
		}
	}

	if c.config.WriteBack {
		if err := yamlfile.SaveComponent(c.config.ComponentFile, component); err != nil {
			return fmt.Errorf("error saving component: %w", err)
		}
		if c.config.Verbose {
			fmt.Fprintf(c.out, "💾 Component saved to: %s\n", c.config.ComponentFile)
		}
	}

	if c.config.MetricsFile != "" {
		if err := collector.WriteTextfile(c.config.MetricsFile); err != nil {
			return fmt.Errorf("error writing metrics: %w", err)
		}
	}

	if c.config.Verbose {
		recorded, err := eventStore.ReadEvents(component.ID, 1)
		if err != nil {
			c.log.Warn("failed to read sizing events", "component", component.ID, "err", err)
		}
		fmt.Fprintf(c.out, "🏁 Sizing complete (%d events recorded)\n", len(recorded))
	}

	return nil
}

// validateInputs validates the command configuration
func (c *SizeCommand) validateInputs() error {
	if c.config.ComponentFile == "" {
		return fmt.Errorf("must specify a -component file")
	}
	if c.config.MaterialsFile == "" || c.config.MachinesFile == "" {
		return fmt.Errorf("must specify -materials and -machines reference files")
	}

	files := map[string]string{
		"Materials": c.config.MaterialsFile,
		"Machines":  c.config.MachinesFile,
		"Component": c.config.ComponentFile,
	}
	for name, path := range files {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("%s file not found: %s", name, path)
		}
	}

	if c.config.TargetUOM != "" && !entities.Unit(c.config.TargetUOM).Valid() {
		return fmt.Errorf("%w: %q", entities.ErrUnknownUnit, c.config.TargetUOM)
	}
	return nil
}

func loadMaterials(path string) ([]*entities.MaterialOption, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csv.NewLoader().LoadMaterialOptions(path)
	case ".xlsx":
		return xlsx.NewLoader().LoadMaterialOptions(path)
	case ".yaml", ".yml":
		materials, _, err := yamlfile.LoadReference(path)
		return materials, err
	default:
		return nil, fmt.Errorf("unsupported reference file type: %s", path)
	}
}

func loadMachines(path string) ([]*entities.MachineOption, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return csv.NewLoader().LoadMachineOptions(path)
	case ".xlsx":
		return xlsx.NewLoader().LoadMachineOptions(path)
	case ".yaml", ".yml":
		_, machines, err := yamlfile.LoadReference(path)
		return machines, err
	default:
		return nil, fmt.Errorf("unsupported reference file type: %s", path)
	}
}

func orNone(u entities.Unit) string {
	if u == "" {
		return "(none)"
	}
	return string(u)
}

// printHeader prints the command header information
func (c *SizeCommand) printHeader() {
	fmt.Fprintf(c.out, "🚀 Material Sizing CLI\n")
	fmt.Fprintf(c.out, "Input files:\n")
	fmt.Fprintf(c.out, "  Materials: %s\n", c.config.MaterialsFile)
	fmt.Fprintf(c.out, "  Machines: %s\n", c.config.MachinesFile)
	fmt.Fprintf(c.out, "  Component: %s\n", c.config.ComponentFile)
	fmt.Fprintf(c.out, "Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Fprintf(c.out, "Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Fprintln(c.out)
}

// showHelp displays the help message
func (c *SizeCommand) showHelp() {
	fmt.Fprintf(c.out, `Material Sizing CLI - sheet size bounds for print shop product components

USAGE:
    sizing -materials <file> -machines <file> -component <file> [-uom <unit>]

OPTIONS:
    -config <file>      Path to YAML config file (optional)
    -materials <file>   Material options (.csv, .xlsx or .yaml)
    -machines <file>    Machine options (.csv, .xlsx or .yaml)
    -component <file>   Product component YAML file
    -family <name>      Material family (default: paper)
    -uom <unit>         Change the component to this unit of measure before sizing
    -write              Save the converted component back to its file
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, csv, xlsx (default: text)
    -report <file>      Also write an XLSX report to this file
    -metrics <file>     Write Prometheus textfile metrics to this file
    -verbose            Enable verbose output
    -help               Show this help message

UNITS:
    distance: mm, cm, m, inch (in), ft, yd

CSV FILE FORMATS:

materials.csv:
    id,label,width_value,length_value,size_uom
    BOND20_8.5x11,Bond 20 8.5x11,8.5,11,inch

machines.csv:
    id,label,type,uom,min_printable_width,max_printable_width,min_sheet_width,max_sheet_width,min_sheet_length,max_sheet_length,min_sheet_breakpoint_length,max_sheet_breakpoint_length
    GTO52,Heidelberg GTO 52,press,inch,4,14,3,14.4,6,20,,

XLSX workbooks use the same columns on sheets named "materials" and "machines".

component.yaml:
    id: FLYER-COVER
    width_value: 10
    length_value: 12
    size_uom: inch
    machine_option: GTO52
    materials: [BOND20_8.5x11, C2S80_25x38]

EXAMPLES:
    # Show bounds in the component's current unit
    sizing -materials data/materials.csv -machines data/machines.csv -component data/flyer.yaml

    # Switch a component to centimetres and save it
    sizing -materials data/reference.xlsx -machines data/reference.xlsx -component data/flyer.yaml -uom cm -write

    # JSON output with metrics for the node exporter
    sizing -config sizing.yaml -format json -metrics /var/lib/node_exporter/sizing.prom
`)
}
