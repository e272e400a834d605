package entities

import (
	"fmt"
	"strings"
)

// MachineOptionID identifies a machine option offered for a product family
type MachineOptionID string

// MachineType represents the machine subtype
type MachineType int

const (
	OtherMachine MachineType = iota
	SheetFedPress
	RollFedPress
)

// String method for MachineType enum
func (t MachineType) String() string {
	switch t {
	case OtherMachine:
		return "others"
	case SheetFedPress:
		return "press"
	case RollFedPress:
		return "roll_press"
	default:
		return "unknown"
	}
}

// ParseMachineType parses the machine type code used in reference data
func ParseMachineType(s string) (MachineType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "others", "other":
		return OtherMachine, nil
	case "press", "sheet_press":
		return SheetFedPress, nil
	case "roll_press", "roll":
		return RollFedPress, nil
	default:
		return OtherMachine, fmt.Errorf("unknown machine type: %s", s)
	}
}

// Machine describes the physical sheet-handling limits of a production machine.
// Sheet-fed and roll-fed presses populate different fields for the same limit,
// so every bound is optional.
type Machine struct {
	ID   string
	Name string
	Type MachineType
	UOM  Unit

	MinPrintableWidth *float64
	MaxPrintableWidth *float64
	MinSheetWidth     *float64
	MaxSheetWidth     *float64

	MinSheetLength           *float64
	MaxSheetLength           *float64
	MinSheetBreakpointLength *float64
	MaxSheetBreakpointLength *float64
}

// NewMachine creates a validated Machine
func NewMachine(id, name string, machineType MachineType, uom Unit) (*Machine, error) {
	if id == "" {
		return nil, fmt.Errorf("machine id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("machine name cannot be empty")
	}
	if m, ok := MeasureOf(uom); !ok || m != Distance {
		return nil, fmt.Errorf("machine unit of measure must be a distance unit, got %q", uom)
	}

	return &Machine{
		ID:   id,
		Name: name,
		Type: machineType,
		UOM:  uom.Canonical(),
	}, nil
}

// MachineOption represents a machine selectable for a product family
type MachineOption struct {
	ID      MachineOptionID
	Label   string
	Machine *Machine
}
