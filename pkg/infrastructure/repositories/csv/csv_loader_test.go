package csv

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

func TestLoader_LoadMaterialOptions(t *testing.T) {
	path := writeFile(t, "materials.csv", `id,label,width_value,length_value,size_uom
BOND20_8.5x11,Bond 20 8.5x11,8.5,11,inch
NEWS48,Newsprint 48gsm,60,90,cm
BOARD,Board (unsized),,,
`)

	options, err := NewLoader().LoadMaterialOptions(path)
	if err != nil {
		t.Fatalf("LoadMaterialOptions failed: %v", err)
	}

	expected := []*entities.MaterialOption{
		{
			ID:    "BOND20_8.5x11",
			Label: "Bond 20 8.5x11",
			Properties: entities.MaterialProperties{
				WidthValue:  entities.Float(8.5),
				LengthValue: entities.Float(11),
				SizeUOM:     entities.Inch,
			},
		},
		{
			ID:    "NEWS48",
			Label: "Newsprint 48gsm",
			Properties: entities.MaterialProperties{
				WidthValue:  entities.Float(60),
				LengthValue: entities.Float(90),
				SizeUOM:     entities.Centimeter,
			},
		},
		{ID: "BOARD", Label: "Board (unsized)"},
	}
	if diff := cmp.Diff(expected, options); diff != "" {
		t.Errorf("Material options mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_LoadMachineOptions(t *testing.T) {
	path := writeFile(t, "machines.csv", `id,label,type,uom,min_printable_width,max_printable_width,min_sheet_width,max_sheet_width,min_sheet_length,max_sheet_length,min_sheet_breakpoint_length,max_sheet_breakpoint_length
GTO52,Heidelberg GTO 52,press,inch,4,14,3,14.4,6,20,,
FLEXO,Roll-fed flexo,roll_press,in,2,18,,,0,0,5,24
`)

	options, err := NewLoader().LoadMachineOptions(path)
	if err != nil {
		t.Fatalf("LoadMachineOptions failed: %v", err)
	}
	if len(options) != 2 {
		t.Fatalf("Expected 2 machine options, got %d", len(options))
	}

	gto := options[0]
	if gto.ID != "GTO52" || gto.Label != "Heidelberg GTO 52" {
		t.Errorf("Expected GTO52 option, got %s %q", gto.ID, gto.Label)
	}
	expectedGTO := &entities.Machine{
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
	}
	if diff := cmp.Diff(expectedGTO, gto.Machine); diff != "" {
		t.Errorf("Machine mismatch (-want +got):\n%s", diff)
	}

	flexo := options[1].Machine
	if flexo.Type != entities.RollFedPress {
		t.Errorf("Expected roll_press, got %s", flexo.Type)
	}
	if flexo.UOM != entities.Inch {
		t.Errorf("Expected alias in to be stored as inch, got %s", flexo.UOM)
	}
	if flexo.MaxSheetLength == nil || *flexo.MaxSheetLength != 0 {
		t.Errorf("Expected explicit zero sheet length to be kept, got %v", flexo.MaxSheetLength)
	}
	if flexo.MaxSheetBreakpointLength == nil || *flexo.MaxSheetBreakpointLength != 24 {
		t.Errorf("Expected breakpoint length 24, got %v", flexo.MaxSheetBreakpointLength)
	}
}

func TestLoader_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		machines bool
		errPart  string
	}{
		{"header only", "id,label,width_value,length_value,size_uom\n", false, "at least one data row"},
		{"wrong header", "id,name,width,length,uom\nA,B,1,2,cm\n", false, "header mismatch"},
		{"bad number", "id,label,width_value,length_value,size_uom\nA,B,wide,2,cm\n", false, "row 2: invalid width_value: wide"},
		{"negative number", "id,label,width_value,length_value,size_uom\nA,B,1,-2,cm\n", false, "cannot be negative"},
		{"missing label", "id,label,width_value,length_value,size_uom\nA,,1,2,cm\n", false, "label cannot be empty"},
		{
			"area unit machine",
			"id,label,type,uom,min_printable_width,max_printable_width,min_sheet_width,max_sheet_width,min_sheet_length,max_sheet_length,min_sheet_breakpoint_length,max_sheet_breakpoint_length\nM,Press,press,sq_m,,,,,,,,\n",
			true,
			"must be a distance unit",
		},
		{
			"unknown machine type",
			"id,label,type,uom,min_printable_width,max_printable_width,min_sheet_width,max_sheet_width,min_sheet_length,max_sheet_length,min_sheet_breakpoint_length,max_sheet_breakpoint_length\nM,Press,laser,mm,,,,,,,,\n",
			true,
			"unknown machine type",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, "data.csv", tc.content)

			var err error
			if tc.machines {
				_, err = NewLoader().LoadMachineOptions(path)
			} else {
				_, err = NewLoader().LoadMaterialOptions(path)
			}
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.errPart) {
				t.Errorf("Expected error containing %q, got %v", tc.errPart, err)
			}
		})
	}
}

func TestLoader_UnknownUnit(t *testing.T) {
	path := writeFile(t, "materials.csv", "id,label,width_value,length_value,size_uom\nA,B,1,2,furlong\n")
	_, err := NewLoader().LoadMaterialOptions(path)
	if !errors.Is(err, entities.ErrUnknownUnit) {
		t.Errorf("Expected ErrUnknownUnit, got %v", err)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadMaterialOptions(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist, got %v", err)
	}
}
