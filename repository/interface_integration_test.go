package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/airsim-events/pkg/integration"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT VERSION()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetTransaction(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		tx := GetTx(ctx)

		err := tx.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		db := GetReadonly(ctx)

		err := db.GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)

		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Multi_Calls_Multi_Levels(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		return p.Transact(ctx, func(ctx context.Context) error {
			tx := GetTx(ctx)

			err := tx.GetContext(ctx, &version, "SELECT VERSION()")
			assert.Equal(t, nil, err)

			return nil
		})
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Rollback_On_Error(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("fuel_price")

	p := NewProvider(tc.DB)
	repo := NewFuelPrice()

	insertErr := errors.New("abort")
	err := p.Transact(newContext(), func(ctx context.Context) error {
		err := repo.InsertFuelPrice(ctx, newFuelPrice("fp-1", 200, "2024-01-01T10:00:00Z"))
		assert.Equal(t, nil, err)
		return insertErr
	})
	assert.Equal(t, insertErr, err)

	latest, err := repo.GetLatestFuelPrice(p.Readonly(newContext()))
	assert.Equal(t, nil, err)
	assert.Equal(t, false, latest.Valid)
}

func TestProvider_Transact__Rollback_On_Panic(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("fuel_price")

	p := NewProvider(tc.DB)
	repo := NewFuelPrice()

	assert.PanicsWithValue(t, "boom", func() {
		_ = p.Transact(newContext(), func(ctx context.Context) error {
			_ = repo.InsertFuelPrice(ctx, newFuelPrice("fp-1", 200, "2024-01-01T10:00:00Z"))
			panic("boom")
		})
	})

	latest, err := repo.GetLatestFuelPrice(p.Readonly(newContext()))
	assert.Equal(t, nil, err)
	assert.Equal(t, false, latest.Valid)
}
