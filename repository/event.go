package repository

import (
	"context"

	"github.com/QuangTung97/airsim-events/model"
)

// Event stores event instances, seq is assigned per world on insert
type Event interface {
	InsertEventInstance(ctx context.Context, instance model.EventInstance) (int64, error)
	ListEventsAfter(ctx context.Context, worldID int64, afterSeq int64, limit int) ([]model.EventInstance, error)
	ListLatestEvents(ctx context.Context, worldID int64, limit int) ([]model.EventInstance, error)
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

const eventInstanceColumns = `
	id, world_id, seq, event_id, severity, requires_action, status,
	title_key, description_key, source_key, payload, starts_at, ends_at, created_at
`

// nextSeq bumps the per world counter. The counter row stays locked until the
// transaction ends, so seq values of a world commit in ascending order.
func nextSeq(ctx context.Context, tx Transaction, worldID int64) (int64, error) {
	query := `
INSERT INTO world_event_seq (world_id, last_seq) VALUES (?, LAST_INSERT_ID(1))
ON DUPLICATE KEY UPDATE last_seq = LAST_INSERT_ID(last_seq + 1)
`
	if _, err := tx.ExecContext(ctx, query, worldID); err != nil {
		return 0, err
	}

	var seq int64
	err := tx.GetContext(ctx, &seq, `SELECT LAST_INSERT_ID()`)
	return seq, err
}

// InsertEventInstance must be called inside Transact, the seq field of instance is ignored
func (r *eventImpl) InsertEventInstance(ctx context.Context, instance model.EventInstance) (int64, error) {
	tx := GetTx(ctx)

	seq, err := nextSeq(ctx, tx, instance.WorldID)
	if err != nil {
		return 0, err
	}
	instance.Seq = seq

	query := `
INSERT INTO event_instance (` + eventInstanceColumns + `) VALUES (
	:id, :world_id, :seq, :event_id, :severity, :requires_action, :status,
	:title_key, :description_key, :source_key, CONVERT(:payload USING utf8mb4),
	:starts_at, :ends_at, :created_at
)
`
	_, err = tx.NamedExecContext(ctx, query, instance)
	if err != nil {
		return 0, err
	}
	return seq, nil
}

// ListEventsAfter returns instances with seq > afterSeq in ascending seq order
func (r *eventImpl) ListEventsAfter(
	ctx context.Context, worldID int64, afterSeq int64, limit int,
) ([]model.EventInstance, error) {
	query := `
SELECT ` + eventInstanceColumns + `
FROM event_instance
WHERE world_id = ? AND seq > ?
ORDER BY seq ASC
LIMIT ?
`
	var result []model.EventInstance
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, worldID, afterSeq, limit)
	return result, err
}

// ListLatestEvents returns the newest instances in descending seq order
func (r *eventImpl) ListLatestEvents(
	ctx context.Context, worldID int64, limit int,
) ([]model.EventInstance, error) {
	query := `
SELECT ` + eventInstanceColumns + `
FROM event_instance
WHERE world_id = ?
ORDER BY seq DESC
LIMIT ?
`
	var result []model.EventInstance
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, worldID, limit)
	return result, err
}
