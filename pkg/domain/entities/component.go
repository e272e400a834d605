package entities

// Attribute names a user-editable field of a product component
type Attribute string

const (
	AttrWidth   Attribute = "width_value"
	AttrLength  Attribute = "length_value"
	AttrSizeUOM Attribute = "size_uom"
)

// IsDimension reports whether the attribute is a width or length field
func (a Attribute) IsDimension() bool {
	return a == AttrWidth || a == AttrLength
}

// ProductComponent is the caller-owned form data of one product component
// editing session. Sizing strategies read it on every query and write
// WidthValue, LengthValue and SizeUOM back when unit rules are applied.
type ProductComponent struct {
	ID                string
	WidthValue        *float64
	LengthValue       *float64
	SizeUOM           Unit
	MachineOptionID   MachineOptionID
	MaterialTemplates []MaterialTemplate
}
