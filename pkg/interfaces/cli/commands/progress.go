package commands

import (
	"fmt"
	"io"

	"github.com/vsinha/printshop/pkg/infrastructure/events"
)

var progressEventTypes = []string{
	events.AttributeRuleAppliedEvent,
	events.BoundsEvaluatedEvent,
	events.StrategyUnavailableEvent,
}

// progressHandler prints one line per sizing event in verbose mode
type progressHandler struct {
	out io.Writer
}

func (h *progressHandler) CanHandle(eventType string) bool {
	for _, t := range progressEventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

func (h *progressHandler) Handle(event events.Event) error {
	switch data := event.Data().(type) {
	case events.AttributeRuleApplied:
		fmt.Fprintf(h.out, "  • %s set to %s (was %s)\n", data.Attribute, data.Value, orNone(data.FromUOM))
	case events.BoundsEvaluated:
		fmt.Fprintf(h.out, "  • bounds evaluated in %s\n", orNone(data.TargetUOM))
	case events.StrategyUnavailable:
		fmt.Fprintf(h.out, "  • no sizing strategy for %s\n", data.Family)
	default:
		fmt.Fprintf(h.out, "  • %s\n", event.Type())
	}
	return nil
}
