package entities

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnknownUnit is returned when a unit code is not in the unit table
	ErrUnknownUnit = errors.New("unknown unit of measure")
	// ErrIncompatibleUnits is returned when converting between different measures
	ErrIncompatibleUnits = errors.New("incompatible units of measure")
)

// Unit is a unit of measure code such as "inch" or "cm"
type Unit string

// Measure groups units that can be converted into each other
type Measure int

const (
	Distance Measure = iota
	Area
	QuantityMeasure
	Volume
	Time
)

// String method for Measure enum
func (m Measure) String() string {
	switch m {
	case Distance:
		return "Distance"
	case Area:
		return "Area"
	case QuantityMeasure:
		return "Quantity"
	case Volume:
		return "Volume"
	case Time:
		return "Time"
	default:
		return "Unknown"
	}
}

// Distance units
const (
	Millimeter Unit = "mm"
	Centimeter Unit = "cm"
	Meter      Unit = "m"
	Inch       Unit = "inch"
	Foot       Unit = "ft"
	Yard       Unit = "yd"
)

// Area units
const (
	SquareMillimeter Unit = "sq_mm"
	SquareCentimeter Unit = "sq_cm"
	SquareMeter      Unit = "sq_m"
	SquareInch       Unit = "sq_inch"
	SquareFoot       Unit = "sq_ft"
)

// Quantity units
const (
	Piece   Unit = "pc"
	Sheet   Unit = "sheet"
	Set     Unit = "set"
	Layout  Unit = "layout"
	Pad     Unit = "pad"
	Box     Unit = "box"
	Booklet Unit = "booklet"
	Ream    Unit = "ream"
)

// Volume units
const (
	Milliliter    Unit = "ml"
	Centiliter    Unit = "cl"
	Liter         Unit = "l"
	ImperialOunce Unit = "imperial_oz"
)

// Time units, used for machine speeds
const (
	Second Unit = "sec"
	Minute Unit = "min"
	Hour   Unit = "hr"
	Day    Unit = "day"
)

type unitInfo struct {
	measure Measure
	// factor converts one of this unit into the measure's standard unit
	factor decimal.Decimal
}

var unitTable = map[Unit]unitInfo{
	Millimeter: {Distance, decimal.RequireFromString("0.001")},
	Centimeter: {Distance, decimal.RequireFromString("0.01")},
	Meter:      {Distance, decimal.NewFromInt(1)},
	Inch:       {Distance, decimal.RequireFromString("0.0254")},
	Foot:       {Distance, decimal.RequireFromString("0.3048")},
	Yard:       {Distance, decimal.RequireFromString("0.9144")},

	SquareMillimeter: {Area, decimal.RequireFromString("0.000001")},
	SquareCentimeter: {Area, decimal.RequireFromString("0.0001")},
	SquareMeter:      {Area, decimal.NewFromInt(1)},
	SquareInch:       {Area, decimal.RequireFromString("0.00064516")},
	SquareFoot:       {Area, decimal.RequireFromString("0.09290304")},

	Piece:   {QuantityMeasure, decimal.NewFromInt(1)},
	Sheet:   {QuantityMeasure, decimal.NewFromInt(1)},
	Set:     {QuantityMeasure, decimal.NewFromInt(1)},
	Layout:  {QuantityMeasure, decimal.NewFromInt(1)},
	Pad:     {QuantityMeasure, decimal.NewFromInt(1)},
	Box:     {QuantityMeasure, decimal.NewFromInt(1)},
	Booklet: {QuantityMeasure, decimal.NewFromInt(1)},
	Ream:    {QuantityMeasure, decimal.NewFromInt(1)},

	Milliliter:    {Volume, decimal.RequireFromString("0.001")},
	Centiliter:    {Volume, decimal.RequireFromString("0.01")},
	Liter:         {Volume, decimal.NewFromInt(1)},
	ImperialOunce: {Volume, decimal.RequireFromString("0.0284130625")},

	Second: {Time, decimal.NewFromInt(1)},
	Minute: {Time, decimal.NewFromInt(60)},
	Hour:   {Time, decimal.NewFromInt(3600)},
	Day:    {Time, decimal.NewFromInt(86400)},
}

var unitAliases = map[Unit]Unit{
	"in":     Inch,
	"inches": Inch,
	"feet":   Foot,
	"sqm":    SquareMeter,
	"sqft":   SquareFoot,
}

// Canonical resolves aliases such as "in" to their table unit
func (u Unit) Canonical() Unit {
	if alias, ok := unitAliases[u]; ok {
		return alias
	}
	return u
}

// Valid reports whether the unit is known
func (u Unit) Valid() bool {
	_, ok := unitTable[u.Canonical()]
	return ok
}

// MeasureOf returns the measure a unit belongs to
func MeasureOf(u Unit) (Measure, bool) {
	info, ok := unitTable[u.Canonical()]
	if !ok {
		return 0, false
	}
	return info.measure, true
}

// UnitsOf returns the units of a measure ordered from smallest to largest
func UnitsOf(m Measure) []Unit {
	var units []Unit
	for u, info := range unitTable {
		if info.measure == m {
			units = append(units, u)
		}
	}
	sort.Slice(units, func(i, j int) bool {
		fi, fj := unitTable[units[i]].factor, unitTable[units[j]].factor
		if !fi.Equal(fj) {
			return fi.LessThan(fj)
		}
		return units[i] < units[j]
	})
	return units
}

// Convert expresses value, given in unit from, in unit to.
// Identical units return the value untouched.
func Convert(value float64, from, to Unit) (float64, error) {
	from, to = from.Canonical(), to.Canonical()
	src, ok := unitTable[from]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, from)
	}
	dst, ok := unitTable[to]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, to)
	}
	if src.measure != dst.measure {
		return 0, fmt.Errorf("%w: %s (%s) to %s (%s)", ErrIncompatibleUnits, from, src.measure, to, dst.measure)
	}
	if from == to {
		return value, nil
	}

	converted := decimal.NewFromFloat(value).Mul(src.factor).Div(dst.factor)
	return converted.InexactFloat64(), nil
}

// Round rounds value to the given number of decimal places, half away from zero
func Round(value float64, places int32) float64 {
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}
