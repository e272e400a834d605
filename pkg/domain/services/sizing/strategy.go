// Package sizing computes allowable material and machine dimension bounds
// for a product component and re-derives its dimensions when the unit of
// measure changes.
//
// A Strategy is created per editing session with New and queried on
// demand. Nothing is cached: every call reads the current ProductComponent
// and reference repositories, so callers must re-query after mutating the
// component.
package sizing

import (
	"errors"
	"sort"

	"github.com/vsinha/printshop/pkg/domain/entities"
	"github.com/vsinha/printshop/pkg/domain/repositories"
)

var (
	// ErrNotImplemented means a material family lacks a capability it was asked for
	ErrNotImplemented = errors.New("implementation required")
	// ErrMissingValue means a numeric value required for a conversion is absent
	ErrMissingValue = errors.New("missing value")
	// ErrUnknownMaterialOption means a template references an option not in the reference data
	ErrUnknownMaterialOption = errors.New("unknown material option")
)

// Family is a material family tag such as "paper"
type Family string

const (
	FamilyPaper Family = "paper"
)

// DimensionPlaces is the number of decimal places attribute values are rounded to
const DimensionPlaces = 4

// Meta is the reference data a strategy resolves templates and machines against
type Meta struct {
	Materials repositories.MaterialOptionRepository
	Machines  repositories.MachineOptionRepository
}

// DimensionBounds aggregates candidate materials and machine limits
type DimensionBounds interface {
	RawMaterialDimensions() ([]entities.RawMaterialDimension, error)
	MinMaxItemDimensions(targetUOM entities.Unit) (*entities.DimensionBounds, error)
	MinMaxMachineDimensions(targetUOM entities.Unit) (*entities.MachineBounds, error)
	FinalMaterialDimensions() (entities.FinalDimensions, error)
}

// AttributeBounds resolves the allowed range of an editable attribute
type AttributeBounds interface {
	AttributeMinValue(attr entities.Attribute) (*float64, error)
	AttributeMaxValue(attr entities.Attribute) (*float64, error)
}

// RuleApplication re-derives dependent fields after an attribute edit.
// Implementations write into data in place.
type RuleApplication interface {
	ApplyAttributeRules(attr entities.Attribute, value string, data *entities.ProductComponent) error
}

// Strategy is the full sizing capability set of one material family
type Strategy interface {
	DimensionBounds
	AttributeBounds
	RuleApplication

	Family() Family
	Machine() (*entities.Machine, error)
	TargetUOM() entities.Unit
}

type constructor func(data *entities.ProductComponent, meta Meta) Strategy

var families = map[Family]constructor{
	FamilyPaper: func(data *entities.ProductComponent, meta Meta) Strategy {
		return newPaperStrategy(data, meta)
	},
}

// New returns the strategy for a material family.
// ok is false when the family has no implementation.
func New(family Family, data *entities.ProductComponent, meta Meta) (Strategy, bool) {
	create, ok := families[family]
	if !ok || data == nil {
		return nil, false
	}
	return create(data, meta), true
}

// Families lists the material families with a strategy
func Families() []Family {
	list := make([]Family, 0, len(families))
	for f := range families {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	return list
}
