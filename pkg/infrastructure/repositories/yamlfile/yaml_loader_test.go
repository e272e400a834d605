package yamlfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vsinha/printshop/pkg/domain/entities"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadComponent(t *testing.T) {
	path := writeFile(t, "component.yaml", `
id: FLYER-COVER
width_value: 10
length_value: 12
size_uom: inch
machine_option: GTO52
materials:
  - BOND20_8.5x11
  - id: cover-stock
    material_option: C2S80_25x38
`)

	component, err := LoadComponent(path)
	if err != nil {
		t.Fatalf("LoadComponent failed: %v", err)
	}

	expected := &entities.ProductComponent{
		ID:              "FLYER-COVER",
		WidthValue:      entities.Float(10),
		LengthValue:     entities.Float(12),
		SizeUOM:         entities.Inch,
		MachineOptionID: "GTO52",
		MaterialTemplates: []entities.MaterialTemplate{
			{ID: "FLYER-COVER/1", MaterialOptionID: "BOND20_8.5x11"},
			{ID: "cover-stock", MaterialOptionID: "C2S80_25x38"},
		},
	}
	if diff := cmp.Diff(expected, component); diff != "" {
		t.Errorf("Component mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadComponent_Unsized(t *testing.T) {
	path := writeFile(t, "component.yaml", "id: NOTEPAD\nmaterials: [BOND20_8.5x11]\n")

	component, err := LoadComponent(path)
	if err != nil {
		t.Fatalf("LoadComponent failed: %v", err)
	}
	if component.WidthValue != nil || component.LengthValue != nil || component.SizeUOM != "" {
		t.Errorf("Expected no dimensions, got %+v", component)
	}
}

func TestLoadComponent_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errPart string
	}{
		{"empty", "", "is empty"},
		{"missing id", "width_value: 10\n", "id cannot be empty"},
		{"unknown field", "id: A\nwidth: 10\n", "field width not found"},
		{"unknown unit", "id: A\nsize_uom: furlong\n", "unknown unit of measure"},
		{"template without option", "id: A\nmaterials:\n  - id: t1\n", "has no material_option"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadComponent(writeFile(t, "component.yaml", tc.content))
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("Expected error containing %q, got %v", tc.errPart, err)
			}
		})
	}
}

func TestSaveComponent_RoundTrip(t *testing.T) {
	component := &entities.ProductComponent{
		ID:              "FLYER-COVER",
		WidthValue:      entities.Float(25.4),
		LengthValue:     entities.Float(30.48),
		SizeUOM:         entities.Centimeter,
		MachineOptionID: "GTO52",
		MaterialTemplates: []entities.MaterialTemplate{
			{ID: "t1", MaterialOptionID: "BOND20_8.5x11"},
		},
	}

	path := filepath.Join(t.TempDir(), "component.yaml")
	if err := SaveComponent(path, component); err != nil {
		t.Fatalf("SaveComponent failed: %v", err)
	}

	loaded, err := LoadComponent(path)
	if err != nil {
		t.Fatalf("LoadComponent failed: %v", err)
	}
	if diff := cmp.Diff(component, loaded); diff != "" {
		t.Errorf("Component mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReference(t *testing.T) {
	path := writeFile(t, "reference.yaml", `
materials:
  - id: SRA3
    label: SRA3 sheet
    width_value: 320
    length_value: 450
    size_uom: mm
  - id: BOARD
    label: Board (unsized)
machines:
  - id: FLEXO
    label: Roll-fed flexo
    type: roll_press
    uom: in
    min_printable_width: 2
    max_printable_width: 18
    min_sheet_breakpoint_length: 5
    max_sheet_breakpoint_length: 24
`)

	materials, machines, err := LoadReference(path)
	if err != nil {
		t.Fatalf("LoadReference failed: %v", err)
	}

	expectedMaterials := []*entities.MaterialOption{
		{
			ID:    "SRA3",
			Label: "SRA3 sheet",
			Properties: entities.MaterialProperties{
				WidthValue:  entities.Float(320),
				LengthValue: entities.Float(450),
				SizeUOM:     entities.Millimeter,
			},
		},
		{ID: "BOARD", Label: "Board (unsized)"},
	}
	if diff := cmp.Diff(expectedMaterials, materials); diff != "" {
		t.Errorf("Materials mismatch (-want +got):\n%s", diff)
	}

	expectedMachines := []*entities.MachineOption{
		{
			ID:    "FLEXO",
			Label: "Roll-fed flexo",
			Machine: &entities.Machine{
				ID:                       "flexo",
				Name:                     "Roll-fed flexo",
				Type:                     entities.RollFedPress,
				UOM:                      entities.Inch,
				MinPrintableWidth:        entities.Float(2),
				MaxPrintableWidth:        entities.Float(18),
				MinSheetBreakpointLength: entities.Float(5),
				MaxSheetBreakpointLength: entities.Float(24),
			},
		},
	}
	if diff := cmp.Diff(expectedMachines, machines); diff != "" {
		t.Errorf("Machines mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadReference_InvalidEntries(t *testing.T) {
	path := writeFile(t, "reference.yaml", "materials:\n  - id: A\n    label: A\n    size_uom: furlong\n")
	_, _, err := LoadReference(path)
	if !errors.Is(err, entities.ErrUnknownUnit) {
		t.Errorf("Expected ErrUnknownUnit, got %v", err)
	}

	path = writeFile(t, "reference.yaml", "machines:\n  - id: M\n    label: M\n    uom: sheet\n")
	_, _, err = LoadReference(path)
	if err == nil || !strings.Contains(err.Error(), "machine 1: machine unit of measure must be a distance unit") {
		t.Errorf("Expected distance unit error, got %v", err)
	}
}
