package entities

// Range is an inclusive min/max pair
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RangeOf returns the min and max of values; ok is false for an empty slice
func RangeOf(values []float64) (Range, bool) {
	if len(values) == 0 {
		return Range{}, false
	}
	r := Range{Min: values[0], Max: values[0]}
	for _, v := range values[1:] {
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	return r, true
}

// DimensionBounds holds width and length ranges sharing one unit of measure
type DimensionBounds struct {
	Width  Range `json:"width"`
	Length Range `json:"length"`
	UOM    Unit  `json:"uom"`
}

// MachineBounds are the dimension bounds a machine can handle
type MachineBounds struct {
	MachineID string `json:"machine_id"`
	DimensionBounds
}

// RawMaterialDimension is the sheet size of one candidate material option
type RawMaterialDimension struct {
	OptionID MaterialOptionID `json:"option_id"`
	Label    string           `json:"label"`
	Width    float64          `json:"width"`
	Length   float64          `json:"length"`
	UOM      Unit             `json:"uom"`
}

// FinalDimensions are the dimensions entered for the finished item
type FinalDimensions struct {
	Width  *float64 `json:"width"`
	Length *float64 `json:"length"`
	UOM    Unit     `json:"uom"`
}
