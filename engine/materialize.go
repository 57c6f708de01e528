// Package engine holds the pure parts of the event engine: turning event effects
// into modifier rows and folding active modifiers into an effective metric value.
package engine

import (
	"fmt"
	"time"

	"github.com/QuangTung97/airsim-events/model"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultDeltaWindow is the audit window of delta rows (0.001 hour)
const DefaultDeltaWindow = 3600 * time.Millisecond

// MaterializeInput ...
type MaterializeInput struct {
	WorldID         int64
	EventInstanceID string
	Effects         []model.EffectOp
	Now             time.Time

	// DeltaWindow must be positive, zero means DefaultDeltaWindow
	DeltaWindow time.Duration

	// NewID generates modifier ids, nil means random uuids
	NewID func() string
}

// MaterializeOutput ...
type MaterializeOutput struct {
	Modifiers []model.MetricModifier
	Mutations []model.Mutation
}

// Materialize emits, in effect order, one modifier row per effect and one mutation per delta effect
func Materialize(in MaterializeInput) MaterializeOutput {
	deltaWindow := in.DeltaWindow
	if deltaWindow <= 0 {
		deltaWindow = DefaultDeltaWindow
	}
	newID := in.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	var out MaterializeOutput
	for _, op := range in.Effects {
		switch e := op.(type) {
		case model.MultiplierEffect:
			out.Modifiers = append(out.Modifiers, model.MetricModifier{
				ID:              newID(),
				WorldID:         in.WorldID,
				EventInstanceID: in.EventInstanceID,
				Metric:          e.Metric,
				TargetKey:       e.Target,
				Kind:            model.ModifierKindMultiplier,
				Factor:          decimal.NewNullDecimal(e.Factor),
				StartsAt:        in.Now,
				EndsAt:          in.Now.Add(hours(e.TTLHours)),
				CreatedAt:       in.Now,
			})

		case model.DeltaEffect:
			out.Mutations = append(out.Mutations, model.Mutation{
				Metric: e.Metric,
				Target: e.Target,
				Amount: e.Amount,
			})
			out.Modifiers = append(out.Modifiers, model.MetricModifier{
				ID:              newID(),
				WorldID:         in.WorldID,
				EventInstanceID: in.EventInstanceID,
				Metric:          e.Metric,
				TargetKey:       e.Target,
				Kind:            model.ModifierKindDelta,
				Amount:          decimal.NewNullDecimal(e.Amount),
				StartsAt:        in.Now,
				EndsAt:          in.Now.Add(deltaWindow),
				CreatedAt:       in.Now,
			})

		case nil:
			continue

		default:
			panic(fmt.Sprintf("engine: unhandled effect op %T", op))
		}
	}
	return out
}

// InstanceEndsAt returns the end of an event instance window, nil when the continuance has none.
// Chains are resolved elsewhere, so they get no window here.
func InstanceEndsAt(c model.Continuance, startsAt time.Time) *time.Time {
	t, ok := c.(model.TemporaryContinuance)
	if !ok {
		return nil
	}
	endsAt := startsAt.Add(hours(t.TTLHours))
	return &endsAt
}

func hours(n int) time.Duration {
	return time.Duration(n) * time.Hour
}
