package model

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Severity ...
type Severity string

const (
	// SeverityMinor ...
	SeverityMinor Severity = "minor"

	// SeverityMajor ...
	SeverityMajor Severity = "major"

	// SeverityCrisis ...
	SeverityCrisis Severity = "crisis"
)

// RequiredAction ...
type RequiredAction string

const (
	// RequiredActionNone ...
	RequiredActionNone RequiredAction = "none"

	// RequiredActionOptional ...
	RequiredActionOptional RequiredAction = "optional"

	// RequiredActionRequired ...
	RequiredActionRequired RequiredAction = "required"
)

// EventStatus ...
type EventStatus string

const (
	// EventStatusActive ...
	EventStatusActive EventStatus = "active"

	// EventStatusPendingDecision ...
	EventStatusPendingDecision EventStatus = "pendingDecision"

	// EventStatusResolved ...
	EventStatusResolved EventStatus = "resolved"

	// EventStatusExpired ...
	EventStatusExpired EventStatus = "expired"
)

// Continuance is the temporal shape of an event occurrence.
// Implemented only by InstantContinuance, TemporaryContinuance and ChainContinuance.
type Continuance interface {
	continuance()
}

// InstantContinuance has no window
type InstantContinuance struct{}

// TemporaryContinuance lasts TTLHours from creation
type TemporaryContinuance struct {
	TTLHours int
}

// ChainContinuance links to a follow-up event, its window is decided by the chain
type ChainContinuance struct {
	ChainID string
}

func (InstantContinuance) continuance()   {}
func (TemporaryContinuance) continuance() {}
func (ChainContinuance) continuance()     {}

// EffectOp is what an event does to one metric on one target.
// Implemented only by DeltaEffect and MultiplierEffect.
type EffectOp interface {
	effectOp()
	EffectTarget() TargetKey
	EffectMetric() MetricKey
}

// DeltaEffect is a one-time additive nudge
type DeltaEffect struct {
	Target TargetKey
	Metric MetricKey
	Amount decimal.Decimal
}

// MultiplierEffect scales a metric by Factor for TTLHours
type MultiplierEffect struct {
	Target   TargetKey
	Metric   MetricKey
	Factor   decimal.Decimal
	TTLHours int
}

func (DeltaEffect) effectOp()      {}
func (MultiplierEffect) effectOp() {}

// EffectTarget ...
func (e DeltaEffect) EffectTarget() TargetKey { return e.Target }

// EffectMetric ...
func (e DeltaEffect) EffectMetric() MetricKey { return e.Metric }

// EffectTarget ...
func (e MultiplierEffect) EffectTarget() TargetKey { return e.Target }

// EffectMetric ...
func (e MultiplierEffect) EffectMetric() MetricKey { return e.Metric }

// EventDefinition is the concrete shape of one event occurrence, produced by a catalog spec
type EventDefinition struct {
	ID             string
	TitleKey       string
	DescriptionKey string

	Continuance Continuance
	Targets     []TargetKey
	Effects     []EffectOp

	RequiresPlayerAction RequiredAction
	Severity             Severity
}

// Validate checks the definition against the invariants of persisted rows
func (d EventDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("definition id is empty")
	}
	switch c := d.Continuance.(type) {
	case InstantContinuance, ChainContinuance:
	case TemporaryContinuance:
		if c.TTLHours <= 0 {
			return fmt.Errorf("temporary continuance ttl hours must be positive, got %d", c.TTLHours)
		}
	default:
		return fmt.Errorf("missing continuance")
	}

	for _, t := range d.Targets {
		if !t.Valid() {
			return fmt.Errorf("invalid target key %q", t)
		}
	}

	for i, op := range d.Effects {
		if !op.EffectTarget().Valid() {
			return fmt.Errorf("effects[%d]: invalid target key %q", i, op.EffectTarget())
		}
		if !op.EffectMetric().Valid() {
			return fmt.Errorf("effects[%d]: invalid metric %q", i, op.EffectMetric())
		}
		if d, ok := op.(DeltaEffect); ok {
			if !fitsScale(d.Amount, AmountScale) {
				return fmt.Errorf("effects[%d]: delta amount %s has more than %d decimal places", i, d.Amount, AmountScale)
			}
			continue
		}
		m := op.(MultiplierEffect)
		if !fitsScale(m.Factor, FactorScale) {
			return fmt.Errorf("effects[%d]: multiplier factor %s has more than %d decimal places", i, m.Factor, FactorScale)
		}
		if !m.Factor.IsPositive() {
			return fmt.Errorf("effects[%d]: multiplier factor must be positive, got %s", i, m.Factor)
		}
		if m.TTLHours <= 0 {
			return fmt.Errorf("effects[%d]: multiplier ttl hours must be positive, got %d", i, m.TTLHours)
		}
	}
	return nil
}

func fitsScale(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Round(places))
}

// EventInstance is the persisted record of one materialized event
type EventInstance struct {
	ID      string `db:"id" json:"id"`
	WorldID int64  `db:"world_id" json:"worldId"`
	Seq     int64  `db:"seq" json:"seq"`
	EventID string `db:"event_id" json:"eventId"`

	Severity       Severity       `db:"severity" json:"severity"`
	RequiresAction RequiredAction `db:"requires_action" json:"requiresAction"`
	Status         EventStatus    `db:"status" json:"status"`

	TitleKey       string `db:"title_key" json:"titleKey"`
	DescriptionKey string `db:"description_key" json:"descriptionKey"`
	SourceKey      string `db:"source_key" json:"sourceKey"`

	Payload json.RawMessage `db:"payload" json:"payload"`

	StartsAt time.Time  `db:"starts_at" json:"startsAt"`
	EndsAt   *time.Time `db:"ends_at" json:"endsAt"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
