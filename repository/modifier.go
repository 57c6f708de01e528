package repository

import (
	"context"
	"time"

	"github.com/QuangTung97/airsim-events/model"
	"github.com/jmoiron/sqlx"
)

// ModifierQuery selects modifiers of one metric on a set of targets active at At
type ModifierQuery struct {
	WorldID int64
	Metric  model.MetricKey
	Targets []model.TargetKey
	At      time.Time
}

// Modifier stores metric modifiers
type Modifier interface {
	InsertModifiers(ctx context.Context, modifiers []model.MetricModifier) error
	QueryActiveModifiers(ctx context.Context, q ModifierQuery) ([]model.MetricModifier, error)
}

type modifierImpl struct {
}

// NewModifier ...
func NewModifier() Modifier {
	return &modifierImpl{}
}

// InsertModifiers must be called inside Transact, does nothing for an empty list
func (r *modifierImpl) InsertModifiers(ctx context.Context, modifiers []model.MetricModifier) error {
	if len(modifiers) == 0 {
		return nil
	}

	query := `
INSERT INTO metric_modifier (
	id, world_id, event_instance_id, metric, target_key, kind,
	factor, amount, starts_at, ends_at, created_at
) VALUES (
	:id, :world_id, :event_instance_id, :metric, :target_key, :kind,
	:factor, :amount, :starts_at, :ends_at, :created_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, modifiers)
	return err
}

// QueryActiveModifiers returns modifiers of every kind, with starts_at <= At < ends_at
func (r *modifierImpl) QueryActiveModifiers(
	ctx context.Context, q ModifierQuery,
) ([]model.MetricModifier, error) {
	if len(q.Targets) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
SELECT id, world_id, event_instance_id, metric, target_key, kind,
	factor, amount, starts_at, ends_at, created_at
FROM metric_modifier
WHERE world_id = ? AND metric = ? AND target_key IN (?)
	AND starts_at <= ? AND ? < ends_at
ORDER BY starts_at, id
`, q.WorldID, q.Metric, q.Targets, q.At, q.At)
	if err != nil {
		return nil, err
	}

	db := GetReadonly(ctx)

	var result []model.MetricModifier
	err = db.SelectContext(ctx, &result, db.Rebind(query), args...)
	return result, err
}
