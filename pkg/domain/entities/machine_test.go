package entities

import "testing"

func TestNewMachine_Validation(t *testing.T) {
	machine, err := NewMachine("gto52", "Heidelberg GTO 52", SheetFedPress, "in")
	if err != nil {
		t.Fatalf("Expected valid machine creation to succeed: %v", err)
	}
	if machine.UOM != Inch {
		t.Errorf("Expected unit inch, got %s", machine.UOM)
	}

	testCases := []struct {
		name        string
		id          string
		machineName string
		uom         Unit
		expectError string
	}{
		{"empty id", "", "name", Inch, "machine id cannot be empty"},
		{"empty name", "id", "", Inch, "machine name cannot be empty"},
		{"area unit", "id", "name", SquareInch, `machine unit of measure must be a distance unit, got "sq_inch"`},
		{"unknown unit", "id", "name", "cubit", `machine unit of measure must be a distance unit, got "cubit"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewMachine(tc.id, tc.machineName, OtherMachine, tc.uom)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestParseMachineType(t *testing.T) {
	testCases := []struct {
		input    string
		expected MachineType
	}{
		{"press", SheetFedPress},
		{"PRESS", SheetFedPress},
		{"roll_press", RollFedPress},
		{"", OtherMachine},
		{"others", OtherMachine},
	}
	for _, tc := range testCases {
		got, err := ParseMachineType(tc.input)
		if err != nil {
			t.Fatalf("Unexpected error for %q: %v", tc.input, err)
		}
		if got != tc.expected {
			t.Errorf("ParseMachineType(%q): expected %s, got %s", tc.input, tc.expected, got)
		}
	}

	if _, err := ParseMachineType("laser"); err == nil {
		t.Error("Expected error for unknown machine type")
	}
}
