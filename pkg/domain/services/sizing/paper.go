package sizing

import (
	"errors"
	"fmt"

	"github.com/vsinha/printshop/pkg/domain/entities"
	"github.com/vsinha/printshop/pkg/domain/repositories"
)

// paperStrategy sizes components made from flat paper sheets
type paperStrategy struct {
	*base
}

var _ Strategy = (*paperStrategy)(nil)

func newPaperStrategy(data *entities.ProductComponent, meta Meta) *paperStrategy {
	p := &paperStrategy{base: &base{family: FamilyPaper, data: data, meta: meta}}
	p.rawDimension = p.rawMaterialDimension
	return p
}

func (p *paperStrategy) rawMaterialDimension(template entities.MaterialTemplate) (entities.RawMaterialDimension, error) {
	id := template.MaterialOptionID
	if p.meta.Materials == nil {
		return entities.RawMaterialDimension{}, fmt.Errorf("%w: %s", ErrUnknownMaterialOption, id)
	}

	option, err := p.meta.Materials.GetMaterialOption(id)
	if errors.Is(err, repositories.ErrNotFound) {
		return entities.RawMaterialDimension{}, fmt.Errorf("%w: %s", ErrUnknownMaterialOption, id)
	}
	if err != nil {
		return entities.RawMaterialDimension{}, fmt.Errorf("failed to resolve material option %s: %w", id, err)
	}

	props := option.Properties
	if props.WidthValue == nil || props.LengthValue == nil || props.SizeUOM == "" {
		return entities.RawMaterialDimension{}, fmt.Errorf("%w: paper option %s requires width, length and size unit", ErrMissingValue, id)
	}

	return entities.RawMaterialDimension{
		OptionID: option.ID,
		Label:    option.Label,
		Width:    *props.WidthValue,
		Length:   *props.LengthValue,
		UOM:      props.SizeUOM,
	}, nil
}

// FinalMaterialDimensions reports the dimensions entered on the component
func (p *paperStrategy) FinalMaterialDimensions() (entities.FinalDimensions, error) {
	return entities.FinalDimensions{
		Width:  p.data.WidthValue,
		Length: p.data.LengthValue,
		UOM:    p.data.SizeUOM,
	}, nil
}

// MinMaxItemDimensions reduces the candidate sheets to width and length
// ranges. Without a target unit the first candidate's unit is used.
// No candidates yields nil bounds.
func (p *paperStrategy) MinMaxItemDimensions(targetUOM entities.Unit) (*entities.DimensionBounds, error) {
	dimensions, err := p.RawMaterialDimensions()
	if err != nil {
		return nil, err
	}
	if len(dimensions) == 0 {
		return nil, nil
	}

	uom := targetUOM
	if uom == "" {
		uom = dimensions[0].UOM
	}

	widths := make([]float64, 0, len(dimensions))
	lengths := make([]float64, 0, len(dimensions))
	for _, d := range dimensions {
		width, err := entities.Convert(d.Width, d.UOM, uom)
		if err != nil {
			return nil, fmt.Errorf("paper option %s width: %w", d.OptionID, err)
		}
		length, err := entities.Convert(d.Length, d.UOM, uom)
		if err != nil {
			return nil, fmt.Errorf("paper option %s length: %w", d.OptionID, err)
		}
		widths = append(widths, width)
		lengths = append(lengths, length)
	}

	widthRange, _ := entities.RangeOf(widths)
	lengthRange, _ := entities.RangeOf(lengths)
	return &entities.DimensionBounds{
		Width:  widthRange,
		Length: lengthRange,
		UOM:    uom,
	}, nil
}

// MinMaxMachineDimensions resolves the selected machine's sheet limits.
// Printable bounds win over sheet bounds, and roll-fed breakpoint lengths
// stand in when no sheet length is set.
func (p *paperStrategy) MinMaxMachineDimensions(targetUOM entities.Unit) (*entities.MachineBounds, error) {
	machine, err := p.Machine()
	if err != nil || machine == nil {
		return nil, err
	}

	bounds := []struct {
		name  string
		value *float64
	}{
		{"min width", firstPopulated(machine.MinPrintableWidth, machine.MinSheetWidth)},
		{"max width", firstPopulated(machine.MaxPrintableWidth, machine.MaxSheetWidth)},
		{"min length", firstPopulated(machine.MinSheetLength, machine.MinSheetBreakpointLength)},
		{"max length", firstPopulated(machine.MaxSheetLength, machine.MaxSheetBreakpointLength)},
	}

	uom := machine.UOM
	if targetUOM != "" {
		uom = targetUOM
	}

	values := make([]float64, len(bounds))
	for i, b := range bounds {
		if b.value == nil {
			if targetUOM == "" {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: machine %s has no %s", ErrMissingValue, machine.ID, b.name)
		}
		v, err := entities.Convert(*b.value, machine.UOM, uom)
		if err != nil {
			return nil, fmt.Errorf("machine %s %s: %w", machine.ID, b.name, err)
		}
		values[i] = v
	}

	return &entities.MachineBounds{
		MachineID: machine.ID,
		DimensionBounds: entities.DimensionBounds{
			Width:  entities.Range{Min: values[0], Max: values[1]},
			Length: entities.Range{Min: values[2], Max: values[3]},
			UOM:    uom,
		},
	}, nil
}

// AttributeMinValue is one inch in the target unit for width and length
func (p *paperStrategy) AttributeMinValue(attr entities.Attribute) (*float64, error) {
	target := p.TargetUOM()
	if !attr.IsDimension() || target == "" {
		return nil, nil
	}

	minimum, err := entities.Convert(1, entities.Inch, target)
	if err != nil {
		return nil, fmt.Errorf("minimum %s: %w", attr, err)
	}
	return entities.Float(entities.Round(minimum, DimensionPlaces)), nil
}

// AttributeMaxValue is the tighter of the largest candidate sheet and the
// machine limit for width and length
func (p *paperStrategy) AttributeMaxValue(attr entities.Attribute) (*float64, error) {
	if !attr.IsDimension() {
		return nil, nil
	}

	item, err := p.MinMaxItemDimensions(p.TargetUOM())
	if err != nil || item == nil {
		return nil, err
	}
	machine, err := p.MinMaxMachineDimensions(item.UOM)
	if err != nil {
		return nil, err
	}

	maximum := item.Width.Max
	if attr == entities.AttrLength {
		maximum = item.Length.Max
	}
	if machine != nil {
		limit := machine.Width.Max
		if attr == entities.AttrLength {
			limit = machine.Length.Max
		}
		if limit < maximum {
			maximum = limit
		}
	}
	return entities.Float(entities.Round(maximum, DimensionPlaces)), nil
}

// ApplyAttributeRules re-expresses width and length in the new unit when
// size_uom changes, writing the rounded values and the unit into data.
// Missing dimensions are pre-filled from the machine's maximum bounds.
func (p *paperStrategy) ApplyAttributeRules(attr entities.Attribute, value string, data *entities.ProductComponent) error {
	if attr != entities.AttrSizeUOM {
		return nil
	}
	if data == nil {
		return fmt.Errorf("%w: product component", ErrMissingValue)
	}

	toBe := entities.Unit(value).Canonical()
	asIs := data.SizeUOM.Canonical()
	if asIs == "" {
		asIs = toBe
	}

	width, length := data.WidthValue, data.LengthValue
	if !isSet(width) || !isSet(length) {
		machine, err := p.MinMaxMachineDimensions(asIs)
		if err != nil {
			return err
		}
		if machine == nil {
			return fmt.Errorf("%w: no dimensions entered and no machine bounds to fall back on", ErrMissingValue)
		}
		width = firstPopulated(width, entities.Float(machine.Width.Max))
		length = firstPopulated(length, entities.Float(machine.Length.Max))
	}

	convertedWidth, err := entities.Convert(*width, asIs, toBe)
	if err != nil {
		return fmt.Errorf("width: %w", err)
	}
	convertedLength, err := entities.Convert(*length, asIs, toBe)
	if err != nil {
		return fmt.Errorf("length: %w", err)
	}

	data.WidthValue = entities.Float(entities.Round(convertedWidth, DimensionPlaces))
	data.LengthValue = entities.Float(entities.Round(convertedLength, DimensionPlaces))
	data.SizeUOM = toBe
	return nil
}
