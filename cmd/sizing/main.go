package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/vsinha/printshop/pkg/infrastructure/config"
	"github.com/vsinha/printshop/pkg/infrastructure/logging"
	"github.com/vsinha/printshop/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags; empty values fall back to the config file and SIZING_* env
	var (
		configFile    = flag.String("config", "", "Path to YAML config file (optional)")
		materialsFile = flag.String("materials", "", "Material options file (.csv, .xlsx, .yaml)")
		machinesFile  = flag.String("machines", "", "Machine options file (.csv, .xlsx, .yaml)")
		componentFile = flag.String("component", "", "Product component YAML file")
		family        = flag.String("family", "", "Material family (default: paper)")
		targetUOM     = flag.String("uom", "", "Change the component to this unit of measure")
		writeBack     = flag.Bool("write", false, "Save the converted component back to its file")
		outputDir     = flag.String("output", "", "Output directory for results (optional)")
		format        = flag.String("format", "", "Output format: text, json, csv, xlsx")
		reportFile    = flag.String("report", "", "Also write an XLSX report to this file")
		metricsFile   = flag.String("metrics", "", "Write Prometheus textfile metrics to this file")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.App.Env, cfg.Log.Level)

	commandConfig := commands.Config{
		MaterialsFile: firstNonEmpty(*materialsFile, cfg.Data.Materials),
		MachinesFile:  firstNonEmpty(*machinesFile, cfg.Data.Machines),
		ComponentFile: firstNonEmpty(*componentFile, cfg.Data.Component),
		Family:        firstNonEmpty(*family, cfg.Sizing.Family),
		TargetUOM:     firstNonEmpty(*targetUOM, cfg.Sizing.TargetUOM),
		OutputDir:     *outputDir,
		Format:        firstNonEmpty(*format, cfg.Output.Format),
		ReportFile:    firstNonEmpty(*reportFile, cfg.Output.Report),
		MetricsFile:   firstNonEmpty(*metricsFile, cfg.Metrics.File),
		WriteBack:     *writeBack,
		Verbose:       *verbose,
		Help:          *help,
		Logger:        logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := commands.NewSizeCommand(commandConfig)
	if err := cmd.Execute(ctx); err != nil {
		logger.Error("sizing failed", "err", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
