package dto

import (
	"time"

	"github.com/vsinha/printshop/pkg/domain/entities"
)

// SizingReport contains everything a configurator form needs to render the
// dimension fields of one product component
type SizingReport struct {
	ComponentID   string                          `json:"component_id"`
	Family        string                          `json:"family"`
	TargetUOM     entities.Unit                   `json:"target_uom"`
	Final         entities.FinalDimensions        `json:"final"`
	RawMaterials  []entities.RawMaterialDimension `json:"raw_materials"`
	ItemBounds    *entities.DimensionBounds       `json:"item_bounds"`
	MachineBounds *entities.MachineBounds         `json:"machine_bounds"`
	Attributes    []AttributeBounds               `json:"attributes"`
	EvaluatedIn   time.Duration                   `json:"evaluated_in"`
}

// AttributeBounds is the allowed range of one editable attribute.
// A nil bound is not yet determinable.
type AttributeBounds struct {
	Attribute entities.Attribute `json:"attribute"`
	Min       *float64           `json:"min"`
	Max       *float64           `json:"max"`
}
