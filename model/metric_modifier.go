package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// FactorScale is the number of decimal places stored for a multiplier factor
	FactorScale = 6

	// AmountScale is the number of decimal places stored for a delta amount
	AmountScale = 4
)

// ModifierKind ...
type ModifierKind string

const (
	// ModifierKindMultiplier ...
	ModifierKindMultiplier ModifierKind = "multiplier"

	// ModifierKindDelta ...
	ModifierKindDelta ModifierKind = "delta"
)

// MetricModifier is the persisted effect of one event on one (metric, target) pair.
// Factor is set iff Kind is multiplier, Amount iff Kind is delta.
type MetricModifier struct {
	ID              string `db:"id" json:"id"`
	WorldID         int64  `db:"world_id" json:"worldId"`
	EventInstanceID string `db:"event_instance_id" json:"eventInstanceId"`

	Metric    MetricKey    `db:"metric" json:"metric"`
	TargetKey TargetKey    `db:"target_key" json:"targetKey"`
	Kind      ModifierKind `db:"kind" json:"kind"`

	Factor decimal.NullDecimal `db:"factor" json:"factor"`
	Amount decimal.NullDecimal `db:"amount" json:"amount"`

	StartsAt time.Time `db:"starts_at" json:"startsAt"`
	EndsAt   time.Time `db:"ends_at" json:"endsAt"`

	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// ActiveAt reports whether at is inside [StartsAt, EndsAt)
func (m MetricModifier) ActiveAt(at time.Time) bool {
	return !at.Before(m.StartsAt) && at.Before(m.EndsAt)
}

// Mutation is an immediate additive change requested by a delta effect
type Mutation struct {
	Metric MetricKey       `json:"metric"`
	Target TargetKey       `json:"target"`
	Amount decimal.Decimal `json:"amount"`
}
