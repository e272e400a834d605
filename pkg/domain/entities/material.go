package entities

import "fmt"

// MaterialOptionID identifies a purchasable raw-material variant
type MaterialOptionID string

// MaterialProperties holds the physical properties of a material option.
// Paper-family options require all three fields.
type MaterialProperties struct {
	WidthValue  *float64
	LengthValue *float64
	SizeUOM     Unit
}

// MaterialOption represents a raw-material sheet variant offered for a product family
type MaterialOption struct {
	ID         MaterialOptionID
	Label      string
	Properties MaterialProperties
}

// NewMaterialOption creates a validated MaterialOption
func NewMaterialOption(id MaterialOptionID, label string, properties MaterialProperties) (*MaterialOption, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("material option id cannot be empty")
	}
	if label == "" {
		return nil, fmt.Errorf("material option label cannot be empty")
	}
	if properties.WidthValue != nil && *properties.WidthValue < 0 {
		return nil, fmt.Errorf("width cannot be negative, got %g", *properties.WidthValue)
	}
	if properties.LengthValue != nil && *properties.LengthValue < 0 {
		return nil, fmt.Errorf("length cannot be negative, got %g", *properties.LengthValue)
	}
	if properties.SizeUOM != "" && !properties.SizeUOM.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownUnit, properties.SizeUOM)
	}

	return &MaterialOption{
		ID:         id,
		Label:      label,
		Properties: properties,
	}, nil
}

// MaterialTemplate links a product component to one material option
type MaterialTemplate struct {
	ID               string
	MaterialOptionID MaterialOptionID
}

// Float returns a pointer to v, for populating optional dimension fields
func Float(v float64) *float64 {
	return &v
}
