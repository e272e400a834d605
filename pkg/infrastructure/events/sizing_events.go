package events

import (
	"github.com/vsinha/printshop/pkg/domain/entities"
)

const (
	StrategyUnavailableEvent  = "sizing.strategy.unavailable"
	BoundsEvaluatedEvent      = "sizing.bounds.evaluated"
	AttributeRuleAppliedEvent = "sizing.attribute.rule_applied"
)

type StrategyUnavailable struct {
	Family string `json:"family"`
}

type BoundsEvaluated struct {
	Family    string                    `json:"family"`
	TargetUOM entities.Unit             `json:"target_uom"`
	Item      *entities.DimensionBounds `json:"item,omitempty"`
	Machine   *entities.MachineBounds   `json:"machine,omitempty"`
}

type AttributeRuleApplied struct {
	Attribute entities.Attribute `json:"attribute"`
	Value     string             `json:"value"`
	FromUOM   entities.Unit      `json:"from_uom"`
	Width     *float64           `json:"width,omitempty"`
	Length    *float64           `json:"length,omitempty"`
}
