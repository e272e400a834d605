package sizing

import (
	"errors"
	"fmt"

	"github.com/vsinha/printshop/pkg/domain/entities"
	"github.com/vsinha/printshop/pkg/domain/repositories"
)

// base holds the sizing context shared by every family. Families embed it
// and override the capability methods they support; the defaults here fail
// with ErrNotImplemented.
type base struct {
	family Family
	data   *entities.ProductComponent
	meta   Meta

	// rawDimension extracts the sheet size of one template's material option
	rawDimension func(template entities.MaterialTemplate) (entities.RawMaterialDimension, error)
}

func (b *base) Family() Family {
	return b.family
}

// TargetUOM is the unit the component is currently displayed in
func (b *base) TargetUOM() entities.Unit {
	return b.data.SizeUOM
}

// Machine resolves the component's selected machine option.
// No selection, or a selection missing from the reference data, yields nil.
func (b *base) Machine() (*entities.Machine, error) {
	if b.data.MachineOptionID == "" || b.meta.Machines == nil {
		return nil, nil
	}
	option, err := b.meta.Machines.GetMachineOption(b.data.MachineOptionID)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve machine option %s: %w", b.data.MachineOptionID, err)
	}
	return option.Machine, nil
}

// RawMaterialDimensions returns one dimension per distinct material option
// referenced by the component's templates, in first-seen order.
func (b *base) RawMaterialDimensions() ([]entities.RawMaterialDimension, error) {
	if b.rawDimension == nil {
		return nil, notImplemented(b.family, "RawMaterialDimensions")
	}

	seen := make(map[entities.MaterialOptionID]bool, len(b.data.MaterialTemplates))
	var dimensions []entities.RawMaterialDimension
	for _, template := range b.data.MaterialTemplates {
		if seen[template.MaterialOptionID] {
			continue
		}
		seen[template.MaterialOptionID] = true

		dimension, err := b.rawDimension(template)
		if err != nil {
			return nil, err
		}
		dimensions = append(dimensions, dimension)
	}
	return dimensions, nil
}

func (b *base) MinMaxItemDimensions(entities.Unit) (*entities.DimensionBounds, error) {
	return nil, notImplemented(b.family, "MinMaxItemDimensions")
}

func (b *base) MinMaxMachineDimensions(entities.Unit) (*entities.MachineBounds, error) {
	return nil, notImplemented(b.family, "MinMaxMachineDimensions")
}

func (b *base) FinalMaterialDimensions() (entities.FinalDimensions, error) {
	return entities.FinalDimensions{}, notImplemented(b.family, "FinalMaterialDimensions")
}

func (b *base) AttributeMinValue(entities.Attribute) (*float64, error) {
	return nil, notImplemented(b.family, "AttributeMinValue")
}

func (b *base) AttributeMaxValue(entities.Attribute) (*float64, error) {
	return nil, notImplemented(b.family, "AttributeMaxValue")
}

func (b *base) ApplyAttributeRules(entities.Attribute, string, *entities.ProductComponent) error {
	return notImplemented(b.family, "ApplyAttributeRules")
}

func notImplemented(family Family, method string) error {
	return fmt.Errorf("%w: %s strategy does not support %s", ErrNotImplemented, family, method)
}

// firstPopulated returns the first value that is set and non-zero.
// Reference data stores unused machine bounds as zero, so a chain holding
// only zeros yields its last zero, and nil only when nothing is set.
func firstPopulated(values ...*float64) *float64 {
	var zero *float64
	for _, v := range values {
		if v == nil {
			continue
		}
		if *v != 0 {
			return v
		}
		zero = v
	}
	return zero
}

func isSet(v *float64) bool {
	return v != nil && *v != 0
}
