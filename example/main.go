package main

import (
	"context"
	"fmt"

	"github.com/vsinha/printshop/pkg/application/dto"
	"github.com/vsinha/printshop/pkg/application/services"
	"github.com/vsinha/printshop/pkg/domain/entities"
	"github.com/vsinha/printshop/pkg/domain/services/sizing"
	"github.com/vsinha/printshop/pkg/infrastructure/events"
	"github.com/vsinha/printshop/pkg/infrastructure/metrics"
	"github.com/vsinha/printshop/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repositories
	materialRepo := memory.NewMaterialOptionRepository(3)
	machineRepo := memory.NewMachineOptionRepository(1)

	// Set up a small sheet catalog and one offset press
	setupCatalog(materialRepo, machineRepo)

	// A flyer printed on the GTO, entered in inches
	flyer := &entities.ProductComponent{
		ID:              "FLYER_A5",
		WidthValue:      entities.Float(5.5),
		LengthValue:     entities.Float(8.5),
		SizeUOM:         entities.Inch,
		MachineOptionID: "GTO52",
		MaterialTemplates: []entities.MaterialTemplate{
			{ID: "flyer-1", MaterialOptionID: "BOND_LETTER"},
			{ID: "flyer-2", MaterialOptionID: "BOND_LEGAL"},
			{ID: "flyer-3", MaterialOptionID: "C2S_PARENT"},
		},
	}

	store := events.NewInMemoryEventStore()
	service := services.NewSizingService(materialRepo, machineRepo, store, metrics.New(), nil)

	fmt.Println("📐 Sizing flyer on the GTO 52...")
	report, err := service.Evaluate(ctx, sizing.FamilyPaper, flyer)
	if err != nil {
		fmt.Printf("❌ Sizing failed: %v\n", err)
		return
	}
	printReport(report.Attributes, report.TargetUOM)

	// The customer works in centimetres
	fmt.Println("🔄 Switching the flyer to centimetres...")
	report, err = service.ChangeUnit(ctx, sizing.FamilyPaper, flyer, entities.Centimeter)
	if err != nil {
		fmt.Printf("❌ Unit change failed: %v\n", err)
		return
	}
	fmt.Printf("  Entered size is now %s x %s\n",
		entities.Quantity{Value: *flyer.WidthValue, Unit: flyer.SizeUOM},
		entities.Quantity{Value: *flyer.LengthValue, Unit: flyer.SizeUOM})
	printReport(report.Attributes, report.TargetUOM)

	// Strategies can also be used directly without the service
	strategy, ok := sizing.New(sizing.FamilyPaper, flyer, sizing.Meta{Materials: materialRepo, Machines: machineRepo})
	if !ok {
		fmt.Println("❌ No paper strategy registered")
		return
	}
	bounds, err := strategy.MinMaxItemDimensions(entities.Millimeter)
	if err != nil {
		fmt.Printf("❌ Material bounds failed: %v\n", err)
		return
	}
	fmt.Printf("📄 Candidate sheets span %g-%g x %g-%g %s\n",
		bounds.Width.Min, bounds.Width.Max, bounds.Length.Min, bounds.Length.Max, bounds.UOM)

	recorded, _ := store.ReadEvents(flyer.ID, 1)
	fmt.Printf("✅ Sizing complete! %d events recorded\n", len(recorded))
}

func printReport(attributes []dto.AttributeBounds, uom entities.Unit) {
	for _, a := range attributes {
		fmt.Printf("  %-12s min %-8s max %-8s %s\n", a.Attribute, format(a.Min), format(a.Max), uom)
	}
	fmt.Println()
}

func format(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

func setupCatalog(materialRepo *memory.MaterialOptionRepository, machineRepo *memory.MachineOptionRepository) {
	sheets := []struct {
		id            entities.MaterialOptionID
		label         string
		width, length float64
	}{
		{"BOND_LETTER", "Bond 20 8.5x11", 8.5, 11},
		{"BOND_LEGAL", "Bond 20 8.5x13", 8.5, 13},
		{"C2S_PARENT", "C2S 80 25x38", 25, 38},
	}
	for _, s := range sheets {
		option, err := entities.NewMaterialOption(s.id, s.label, entities.MaterialProperties{
			WidthValue:  entities.Float(s.width),
			LengthValue: entities.Float(s.length),
			SizeUOM:     entities.Inch,
		})
		if err != nil {
			panic(err)
		}
		if err := materialRepo.SaveMaterialOption(option); err != nil {
			panic(err)
		}
	}

	machine, err := entities.NewMachine("gto52", "Heidelberg GTO 52", entities.SheetFedPress, entities.Inch)
	if err != nil {
		panic(err)
	}
	machine.MinPrintableWidth = entities.Float(4)
	machine.MaxPrintableWidth = entities.Float(14)
	machine.MinSheetLength = entities.Float(6)
	machine.MaxSheetLength = entities.Float(20)

	if err := machineRepo.SaveMachineOption(&entities.MachineOption{
		ID:      "GTO52",
		Label:   "Heidelberg GTO 52",
		Machine: machine,
	}); err != nil {
		panic(err)
	}
}
