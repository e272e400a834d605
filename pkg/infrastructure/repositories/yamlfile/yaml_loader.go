// Package yamlfile reads and writes product components and sizing reference
// data as YAML documents.
package yamlfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vsinha/printshop/pkg/domain/entities"
)

type componentDocument struct {
	ID            string             `yaml:"id"`
	WidthValue    *float64           `yaml:"width_value,omitempty"`
	LengthValue   *float64           `yaml:"length_value,omitempty"`
	SizeUOM       string             `yaml:"size_uom,omitempty"`
	MachineOption string             `yaml:"machine_option,omitempty"`
	Materials     []templateDocument `yaml:"materials,omitempty"`
}

// templateDocument accepts either a bare option id or a mapping with an
// explicit template id
type templateDocument struct {
	ID             string `yaml:"id,omitempty"`
	MaterialOption string `yaml:"material_option"`
}

func (t *templateDocument) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		t.MaterialOption = node.Value
		return nil
	}
	type plain templateDocument
	return node.Decode((*plain)(t))
}

type referenceDocument struct {
	Materials []materialDocument `yaml:"materials"`
	Machines  []machineDocument  `yaml:"machines"`
}

type materialDocument struct {
	ID          string   `yaml:"id"`
	Label       string   `yaml:"label"`
	WidthValue  *float64 `yaml:"width_value,omitempty"`
	LengthValue *float64 `yaml:"length_value,omitempty"`
	SizeUOM     string   `yaml:"size_uom,omitempty"`
}

type machineDocument struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
	// Machine id defaults to the option id
	MachineID string `yaml:"machine_id,omitempty"`
	Type      string `yaml:"type,omitempty"`
	UOM       string `yaml:"uom"`

	MinPrintableWidth        *float64 `yaml:"min_printable_width,omitempty"`
	MaxPrintableWidth        *float64 `yaml:"max_printable_width,omitempty"`
	MinSheetWidth            *float64 `yaml:"min_sheet_width,omitempty"`
	MaxSheetWidth            *float64 `yaml:"max_sheet_width,omitempty"`
	MinSheetLength           *float64 `yaml:"min_sheet_length,omitempty"`
	MaxSheetLength           *float64 `yaml:"max_sheet_length,omitempty"`
	MinSheetBreakpointLength *float64 `yaml:"min_sheet_breakpoint_length,omitempty"`
	MaxSheetBreakpointLength *float64 `yaml:"max_sheet_breakpoint_length,omitempty"`
}

// LoadComponent reads a product component document
func LoadComponent(filename string) (*entities.ProductComponent, error) {
	var doc componentDocument
	if err := decodeFile(filename, &doc); err != nil {
		return nil, err
	}

	if strings.TrimSpace(doc.ID) == "" {
		return nil, fmt.Errorf("component %s: id cannot be empty", filename)
	}
	if doc.SizeUOM != "" && !entities.Unit(doc.SizeUOM).Valid() {
		return nil, fmt.Errorf("component %s: %w: %q", doc.ID, entities.ErrUnknownUnit, doc.SizeUOM)
	}

	component := &entities.ProductComponent{
		ID:              doc.ID,
		WidthValue:      doc.WidthValue,
		LengthValue:     doc.LengthValue,
		SizeUOM:         entities.Unit(doc.SizeUOM),
		MachineOptionID: entities.MachineOptionID(doc.MachineOption),
	}
	for i, t := range doc.Materials {
		if t.MaterialOption == "" {
			return nil, fmt.Errorf("component %s: material %d has no material_option", doc.ID, i+1)
		}
		id := t.ID
		if id == "" {
			id = fmt.Sprintf("%s/%d", doc.ID, i+1)
		}
		component.MaterialTemplates = append(component.MaterialTemplates, entities.MaterialTemplate{
			ID:               id,
			MaterialOptionID: entities.MaterialOptionID(t.MaterialOption),
		})
	}

	return component, nil
}

// SaveComponent writes component back in the document layout LoadComponent reads
func SaveComponent(filename string, component *entities.ProductComponent) error {
	doc := componentDocument{
		ID:            component.ID,
		WidthValue:    component.WidthValue,
		LengthValue:   component.LengthValue,
		SizeUOM:       string(component.SizeUOM),
		MachineOption: string(component.MachineOptionID),
	}
	for _, t := range component.MaterialTemplates {
		doc.Materials = append(doc.Materials, templateDocument{ID: t.ID, MaterialOption: string(t.MaterialOptionID)})
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode component %s: %w", component.ID, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to encode component %s: %w", component.ID, err)
	}

	if err := os.WriteFile(filename, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write component file %s: %w", filename, err)
	}
	return nil
}

// LoadReference reads material and machine options from one document
func LoadReference(filename string) ([]*entities.MaterialOption, []*entities.MachineOption, error) {
	var doc referenceDocument
	if err := decodeFile(filename, &doc); err != nil {
		return nil, nil, err
	}

	materials := make([]*entities.MaterialOption, 0, len(doc.Materials))
	for i, m := range doc.Materials {
		option, err := entities.NewMaterialOption(entities.MaterialOptionID(m.ID), m.Label, entities.MaterialProperties{
			WidthValue:  m.WidthValue,
			LengthValue: m.LengthValue,
			SizeUOM:     entities.Unit(m.SizeUOM),
		})
		if err != nil {
			return nil, nil, fmt.Errorf("material %d: %w", i+1, err)
		}
		materials = append(materials, option)
	}

	machines := make([]*entities.MachineOption, 0, len(doc.Machines))
	for i, m := range doc.Machines {
		option, err := m.toOption()
		if err != nil {
			return nil, nil, fmt.Errorf("machine %d: %w", i+1, err)
		}
		machines = append(machines, option)
	}

	return materials, machines, nil
}

func (m machineDocument) toOption() (*entities.MachineOption, error) {
	if m.ID == "" {
		return nil, fmt.Errorf("machine option id cannot be empty")
	}
	machineType, err := entities.ParseMachineType(m.Type)
	if err != nil {
		return nil, err
	}

	machineID := m.MachineID
	if machineID == "" {
		machineID = strings.ToLower(m.ID)
	}
	machine, err := entities.NewMachine(machineID, m.Label, machineType, entities.Unit(m.UOM))
	if err != nil {
		return nil, err
	}
	machine.MinPrintableWidth = m.MinPrintableWidth
	machine.MaxPrintableWidth = m.MaxPrintableWidth
	machine.MinSheetWidth = m.MinSheetWidth
	machine.MaxSheetWidth = m.MaxSheetWidth
	machine.MinSheetLength = m.MinSheetLength
	machine.MaxSheetLength = m.MaxSheetLength
	machine.MinSheetBreakpointLength = m.MinSheetBreakpointLength
	machine.MaxSheetBreakpointLength = m.MaxSheetBreakpointLength

	return &entities.MachineOption{
		ID:      entities.MachineOptionID(m.ID),
		Label:   m.Label,
		Machine: machine,
	}, nil
}

func decodeFile(filename string, out interface{}) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%s is empty", filename)
		}
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return nil
}
