package repository

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/integration"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newEventInstance(id string, worldID int64, startsAt string) model.EventInstance {
	t := newTime(startsAt)
	endsAt := t.Add(24 * time.Hour)
	return model.EventInstance{
		ID:      id,
		WorldID: worldID,
		EventID: "GLOBAL.MARKET.FUEL_SHOCK",

		Severity:       model.SeverityMajor,
		RequiresAction: model.RequiredActionNone,
		Status:         model.EventStatusActive,

		TitleKey:       "event.market.fuelShock.title",
		DescriptionKey: "event.market.fuelShock.desc",
		SourceKey:      "world",

		Payload: json.RawMessage(`{"factor":1.5,"ttlHours":24}`),

		StartsAt:  t,
		EndsAt:    &endsAt,
		CreatedAt: t,
	}
}

func insertEvent(t *testing.T, p Provider, repo Event, instance model.EventInstance) int64 {
	var seq int64
	err := p.Transact(newContext(), func(ctx context.Context) error {
		var err error
		seq, err = repo.InsertEventInstance(ctx, instance)
		return err
	})
	assert.Equal(t, nil, err)
	return seq
}

func TestEvent_InsertEventInstance__Seq_Per_World(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("world_event_seq", "event_instance", "metric_modifier")

	p := NewProvider(tc.DB)
	repo := NewEvent()

	assert.Equal(t, int64(1), insertEvent(t, p, repo, newEventInstance("e-1", 1, "2024-01-01T10:00:00Z")))
	assert.Equal(t, int64(2), insertEvent(t, p, repo, newEventInstance("e-2", 1, "2024-01-01T10:00:00Z")))
	assert.Equal(t, int64(1), insertEvent(t, p, repo, newEventInstance("e-3", 2, "2024-01-01T10:00:00Z")))
	assert.Equal(t, int64(3), insertEvent(t, p, repo, newEventInstance("e-4", 1, "2024-01-01T10:00:00Z")))
}

func TestEvent_InsertEventInstance__Round_Trip(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("world_event_seq", "event_instance", "metric_modifier")

	p := NewProvider(tc.DB)
	repo := NewEvent()

	instance := newEventInstance("e-1", 1, "2024-01-01T10:00:00.123Z")
	instance.Seq = insertEvent(t, p, repo, instance)

	rows, err := repo.ListLatestEvents(p.Readonly(newContext()), 1, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(rows))

	row := rows[0]
	assert.JSONEq(t, string(instance.Payload), string(row.Payload))
	row.Payload = instance.Payload
	assert.Equal(t, instance, row)
}

func TestEvent_InsertEventInstance__Rollback_Does_Not_Persist(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("world_event_seq", "event_instance", "metric_modifier")

	p := NewProvider(tc.DB)
	repo := NewEvent()

	err := p.Transact(newContext(), func(ctx context.Context) error {
		_, err := repo.InsertEventInstance(ctx, newEventInstance("e-1", 1, "2024-01-01T10:00:00Z"))
		assert.Equal(t, nil, err)
		return context.Canceled
	})
	assert.Equal(t, context.Canceled, err)

	rows, err := repo.ListEventsAfter(p.Readonly(newContext()), 1, 0, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(rows))
}

func TestEvent_ListEventsAfter(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("world_event_seq", "event_instance", "metric_modifier")

	p := NewProvider(tc.DB)
	repo := NewEvent()

	for i, id := range []string{"e-1", "e-2", "e-3", "e-4", "e-5"} {
		seq := insertEvent(t, p, repo, newEventInstance(id, 1, "2024-01-01T10:00:00Z"))
		assert.Equal(t, int64(i+1), seq)
	}
	insertEvent(t, p, repo, newEventInstance("other", 2, "2024-01-01T10:00:00Z"))

	ctx := p.Readonly(newContext())

	rows, err := repo.ListEventsAfter(ctx, 1, 2, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(rows))
	assert.Equal(t, int64(3), rows[0].Seq)
	assert.Equal(t, int64(4), rows[1].Seq)

	rows, err = repo.ListEventsAfter(ctx, 1, 5, 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(rows))

	rows, err = repo.ListLatestEvents(ctx, 1, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(rows))
	assert.Equal(t, int64(5), rows[0].Seq)
	assert.Equal(t, int64(3), rows[2].Seq)
}

func TestEvent_InsertEventInstance__Concurrent_Seq_Is_Dense(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("world_event_seq", "event_instance", "metric_modifier")

	p := NewProvider(tc.DB)
	repo := NewEvent()

	const numWorkers = 8
	const perWorker = 5

	// the counter row of the world exists before the workers race on it
	seqs := []int64{insertEvent(t, p, repo, newEventInstance(uuid.NewString(), 1, "2024-01-01T10:00:00Z"))}
	var mut sync.Mutex

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				seq := insertEvent(t, p, repo, newEventInstance(uuid.NewString(), 1, "2024-01-01T10:00:00Z"))
				mut.Lock()
				seqs = append(seqs, seq)
				mut.Unlock()
			}
		}()
	}
	wg.Wait()

	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })
	for i, seq := range seqs {
		assert.Equal(t, int64(i+1), seq)
	}

	rows, err := repo.ListEventsAfter(p.Readonly(newContext()), 1, 0, 200)
	assert.Equal(t, nil, err)
	assert.Equal(t, numWorkers*perWorker+1, len(rows))
}
