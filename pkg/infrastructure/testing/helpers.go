package testing

import (
	"github.com/vsinha/printshop/pkg/domain/entities"
	"github.com/vsinha/printshop/pkg/infrastructure/repositories/memory"
)

// Material option ids in the paper catalog
const (
	OptionBond20Short  entities.MaterialOptionID = "BOND20_8.5x11"
	OptionBond20Legal  entities.MaterialOptionID = "BOND20_8.5x13"
	OptionC2S80Parent  entities.MaterialOptionID = "C2S80_25x38"
	OptionNewsprintCM  entities.MaterialOptionID = "NEWS48_60x90CM"
	OptionUnsizedBoard entities.MaterialOptionID = "BOARD_UNSIZED"
)

// Machine option ids in the paper catalog
const (
	MachineGTO52   entities.MachineOptionID = "GTO52"
	MachineSM74    entities.MachineOptionID = "SM74"
	MachineRoll    entities.MachineOptionID = "ROLL_FLEXO"
	MachineNoLimit entities.MachineOptionID = "CUTTER"
)

// BuildPaperTestData builds the paper catalog used across sizing tests.
// OptionUnsizedBoard is deliberately missing its size properties.
func BuildPaperTestData() (*memory.MaterialOptionRepository, *memory.MachineOptionRepository) {
	materialRepo := memory.NewMaterialOptionRepository(5)
	machineRepo := memory.NewMachineOptionRepository(4)

	options := []*entities.MaterialOption{
		paperOption(OptionBond20Short, "Bond 20 8.5x11", 8.5, 11, entities.Inch),
		paperOption(OptionBond20Legal, "Bond 20 8.5x13", 8.5, 13, entities.Inch),
		paperOption(OptionC2S80Parent, "C2S 80 25x38", 25, 38, entities.Inch),
		paperOption(OptionNewsprintCM, "Newsprint 48gsm 60x90cm", 60, 90, entities.Centimeter),
		{
			ID:    OptionUnsizedBoard,
			Label: "Board (unsized)",
		},
	}
	if err := materialRepo.LoadMaterialOptions(options); err != nil {
		panic(err)
	}

	machines := []*entities.MachineOption{
		{
			ID:    MachineGTO52,
			Label: "Heidelberg GTO 52",
			Machine: &entities.Machine{
				ID:                "gto52",
				Name:              "Heidelberg GTO 52",
				Type:              entities.SheetFedPress,
				UOM:               entities.Inch,
				MinPrintableWidth: entities.Float(4),
				MaxPrintableWidth: entities.Float(14),
				MinSheetWidth:     entities.Float(3),
				MaxSheetWidth:     entities.Float(14.4),
				MinSheetLength:    entities.Float(6),
				MaxSheetLength:    entities.Float(20),
			},
		},
		{
			ID:    MachineSM74,
			Label: "Heidelberg SM 74",
			Machine: &entities.Machine{
				ID:             "sm74",
				Name:           "Heidelberg SM 74",
				Type:           entities.SheetFedPress,
				UOM:            entities.Millimeter,
				MinSheetWidth:  entities.Float(210),
				MaxSheetWidth:  entities.Float(520),
				MinSheetLength: entities.Float(280),
				MaxSheetLength: entities.Float(740),
			},
		},
		{
			ID:    MachineRoll,
			Label: "Roll-fed flexo",
			Machine: &entities.Machine{
				ID:                       "flexo",
				Name:                     "Roll-fed flexo",
				Type:                     entities.RollFedPress,
				UOM:                      entities.Inch,
				MinPrintableWidth:        entities.Float(2),
				MaxPrintableWidth:        entities.Float(18),
				MinSheetLength:           entities.Float(0),
				MaxSheetLength:           entities.Float(0),
				MinSheetBreakpointLength: entities.Float(5),
				MaxSheetBreakpointLength: entities.Float(24),
			},
		},
		{
			ID:    MachineNoLimit,
			Label: "Guillotine cutter",
			Machine: &entities.Machine{
				ID:   "cutter",
				Name: "Guillotine cutter",
				Type: entities.OtherMachine,
				UOM:  entities.Inch,
			},
		},
	}
	if err := machineRepo.LoadMachineOptions(machines); err != nil {
		panic(err)
	}

	return materialRepo, machineRepo
}

// Templates builds material templates referencing the given options in order
func Templates(ids ...entities.MaterialOptionID) []entities.MaterialTemplate {
	templates := make([]entities.MaterialTemplate, 0, len(ids))
	for i, id := range ids {
		templates = append(templates, entities.MaterialTemplate{
			ID:               string(id) + "#" + string(rune('a'+i)),
			MaterialOptionID: id,
		})
	}
	return templates
}

func paperOption(id entities.MaterialOptionID, label string, width, length float64, uom entities.Unit) *entities.MaterialOption {
	return &entities.MaterialOption{
		ID:    id,
		Label: label,
		Properties: entities.MaterialProperties{
			WidthValue:  entities.Float(width),
			LengthValue: entities.Float(length),
			SizeUOM:     uom,
		},
	}
}
