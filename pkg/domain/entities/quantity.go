package entities

import (
	"fmt"
	"strconv"
)

// Quantity is a numeric value paired with its unit of measure
type Quantity struct {
	Value float64
	Unit  Unit
}

// NewQuantity creates a validated Quantity
func NewQuantity(value float64, unit Unit) (Quantity, error) {
	if !unit.Valid() {
		return Quantity{}, fmt.Errorf("%w: %q", ErrUnknownUnit, unit)
	}
	return Quantity{Value: value, Unit: unit.Canonical()}, nil
}

// To converts the quantity into another unit of the same measure
func (q Quantity) To(unit Unit) (Quantity, error) {
	value, err := Convert(q.Value, q.Unit, unit)
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Value: value, Unit: unit.Canonical()}, nil
}

// Rounded returns the quantity rounded to the given number of decimal places
func (q Quantity) Rounded(places int32) Quantity {
	return Quantity{Value: Round(q.Value, places), Unit: q.Unit}
}

func (q Quantity) String() string {
	return strconv.FormatFloat(q.Value, 'f', -1, 64) + " " + string(q.Unit)
}
