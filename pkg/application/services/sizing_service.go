package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vsinha/printshop/pkg/application/dto"
	"github.com/vsinha/printshop/pkg/domain/entities"
	"github.com/vsinha/printshop/pkg/domain/repositories"
	"github.com/vsinha/printshop/pkg/domain/services/sizing"
	"github.com/vsinha/printshop/pkg/infrastructure/events"
	"github.com/vsinha/printshop/pkg/infrastructure/logging"
	"github.com/vsinha/printshop/pkg/infrastructure/metrics"
)

// ErrUnsupportedFamily is returned when no sizing strategy exists for a material family
var ErrUnsupportedFamily = errors.New("unsupported material family")

// SizingService evaluates product components against reference data and
// records what it did
type SizingService struct {
	materials repositories.MaterialOptionRepository
	machines  repositories.MachineOptionRepository

	events  events.EventStore
	metrics *metrics.Collector
	log     *slog.Logger
}

// NewSizingService creates a sizing service. eventStore, collector and log may be nil.
func NewSizingService(
	materials repositories.MaterialOptionRepository,
	machines repositories.MachineOptionRepository,
	eventStore events.EventStore,
	collector *metrics.Collector,
	log *slog.Logger,
) *SizingService {
	if log == nil {
		log = logging.Discard()
	}
	return &SizingService{
		materials: materials,
		machines:  machines,
		events:    eventStore,
		metrics:   collector,
		log:       log,
	}
}

// Strategy returns the sizing strategy of a family bound to component
func (s *SizingService) Strategy(family sizing.Family, component *entities.ProductComponent) (sizing.Strategy, error) {
	strategy, ok := sizing.New(family, component, sizing.Meta{Materials: s.materials, Machines: s.machines})
	if s.metrics != nil {
		s.metrics.ObserveDispatch(string(family), ok)
	}
	if !ok {
		s.log.Warn("no sizing strategy", "family", family)
		if component != nil {
			s.record(component.ID, events.StrategyUnavailableEvent, events.StrategyUnavailable{Family: string(family)})
		}
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFamily, family)
	}
	return strategy, nil
}

// Evaluate computes the material, machine and attribute bounds of a component
// in its current unit of measure
func (s *SizingService) Evaluate(ctx context.Context, family sizing.Family, component *entities.ProductComponent) (*dto.SizingReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	strategy, err := s.Strategy(family, component)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	report, err := s.evaluate(strategy, component)
	if err != nil {
		s.fail("evaluate", err, "component", component.ID, "family", family)
		return nil, err
	}
	report.EvaluatedIn = time.Since(start)

	if s.metrics != nil {
		s.metrics.ObserveEvaluation(string(family), report.EvaluatedIn)
	}
	s.log.Debug("bounds evaluated",
		"component", component.ID,
		"family", family,
		"uom", report.TargetUOM,
		"candidates", len(report.RawMaterials),
		"machine", report.MachineBounds != nil)
	s.record(component.ID, events.BoundsEvaluatedEvent, events.BoundsEvaluated{
		Family:    string(family),
		TargetUOM: report.TargetUOM,
		Item:      report.ItemBounds,
		Machine:   report.MachineBounds,
	})

	return report, nil
}

// ApplyAttribute writes value into the edited attribute and applies the
// family's rules, which may rewrite dependent fields of component
func (s *SizingService) ApplyAttribute(ctx context.Context, family sizing.Family, component *entities.ProductComponent, attr entities.Attribute, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	strategy, err := s.Strategy(family, component)
	if err != nil {
		return err
	}

	fromUOM := component.SizeUOM
	if err := strategy.ApplyAttributeRules(attr, value, component); err != nil {
		s.fail("apply_rules", err, "component", component.ID, "attribute", attr, "value", value)
		return fmt.Errorf("failed to apply %s rules: %w", attr, err)
	}

	if s.metrics != nil {
		s.metrics.ObserveRule(string(attr))
	}
	s.log.Info("attribute rules applied",
		"component", component.ID,
		"attribute", attr,
		"value", value,
		"from_uom", fromUOM)
	s.record(component.ID, events.AttributeRuleAppliedEvent, events.AttributeRuleApplied{
		Attribute: attr,
		Value:     value,
		FromUOM:   fromUOM,
		Width:     component.WidthValue,
		Length:    component.LengthValue,
	})
	return nil
}

// ChangeUnit switches the component to uom and re-evaluates it
func (s *SizingService) ChangeUnit(ctx context.Context, family sizing.Family, component *entities.ProductComponent, uom entities.Unit) (*dto.SizingReport, error) {
	if err := s.ApplyAttribute(ctx, family, component, entities.AttrSizeUOM, string(uom)); err != nil {
		return nil, err
	}
	return s.Evaluate(ctx, family, component)
}

func (s *SizingService) evaluate(strategy sizing.Strategy, component *entities.ProductComponent) (*dto.SizingReport, error) {
	report := &dto.SizingReport{
		ComponentID: component.ID,
		Family:      string(strategy.Family()),
		TargetUOM:   strategy.TargetUOM(),
	}

	final, err := strategy.FinalMaterialDimensions()
	if err != nil {
		return nil, err
	}
	report.Final = final

	if report.RawMaterials, err = strategy.RawMaterialDimensions(); err != nil {
		return nil, err
	}
	if report.ItemBounds, err = strategy.MinMaxItemDimensions(report.TargetUOM); err != nil {
		return nil, err
	}

	// Without a target unit, machine bounds follow the material bounds unit
	machineUOM := report.TargetUOM
	if machineUOM == "" && report.ItemBounds != nil {
		machineUOM = report.ItemBounds.UOM
	}
	if report.MachineBounds, err = strategy.MinMaxMachineDimensions(machineUOM); err != nil {
		return nil, err
	}

	for _, attr := range []entities.Attribute{entities.AttrWidth, entities.AttrLength} {
		minimum, err := strategy.AttributeMinValue(attr)
		if err != nil {
			return nil, err
		}
		maximum, err := strategy.AttributeMaxValue(attr)
		if err != nil {
			return nil, err
		}
		report.Attributes = append(report.Attributes, dto.AttributeBounds{
			Attribute: attr,
			Min:       minimum,
			Max:       maximum,
		})
	}

	return report, nil
}

func (s *SizingService) fail(operation string, err error, attrs ...any) {
	if s.metrics != nil {
		s.metrics.ObserveFailure(operation)
	}
	s.log.Error(operation+" failed", append(attrs, "err", err)...)
}

func (s *SizingService) record(streamID, eventType string, data interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.AppendEvent(streamID, events.NewEvent(eventType, streamID, data)); err != nil {
		s.log.Warn("event handler failed", "type", eventType, "err", err)
	}
}
