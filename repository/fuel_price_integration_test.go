package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/integration"
	"github.com/stretchr/testify/assert"
)

func newFuelPrice(id string, price int64, recordedAt string) model.FuelPrice {
	return model.FuelPrice{
		ID:          id,
		PricePerTon: price,
		RecordedAt:  newTime(recordedAt),
	}
}

func TestFuelPrice_GetLatestFuelPrice__Empty(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("fuel_price")

	p := NewProvider(tc.DB)
	repo := NewFuelPrice()

	latest, err := repo.GetLatestFuelPrice(p.Readonly(newContext()))
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullFuelPrice{}, latest)
}

func TestFuelPrice_Insert_And_Query(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("fuel_price")

	p := NewProvider(tc.DB)
	repo := NewFuelPrice()

	prices := []model.FuelPrice{
		newFuelPrice("fp-1", 200, "2024-01-01T08:00:00Z"),
		newFuelPrice("fp-3", 221, "2024-01-01T10:00:00Z"),
		newFuelPrice("fp-2", 214, "2024-01-01T09:00:00.500Z"),
	}
	err := p.Transact(newContext(), func(ctx context.Context) error {
		for _, price := range prices {
			if err := repo.InsertFuelPrice(ctx, price); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Equal(t, nil, err)

	ctx := p.Readonly(newContext())

	latest, err := repo.GetLatestFuelPrice(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.NullFuelPrice{
		Valid:     true,
		FuelPrice: prices[1],
	}, latest)

	history, err := repo.ListFuelPricesSince(ctx, newTime("2024-01-01T09:00:00Z"), 100)
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.FuelPrice{prices[2], prices[1]}, history)

	history, err = repo.ListFuelPricesSince(ctx, newTime("2024-01-01T00:00:00Z"), 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.FuelPrice{prices[0], prices[2]}, history)
}

func TestFuelPrice_LockFuelPrices__Concurrent_Refresh_Inserts_Once(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("fuel_price")

	p := NewProvider(tc.DB)
	repo := NewFuelPrice()

	const numWorkers = 8

	errs := make([]error, numWorkers)
	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		index := i
		go func() {
			defer wg.Done()
			errs[index] = p.Transact(newContext(), func(ctx context.Context) error {
				if err := repo.LockFuelPrices(ctx); err != nil {
					return err
				}
				latest, err := repo.GetLatestFuelPrice(ctx)
				if err != nil {
					return err
				}
				if latest.Valid {
					return nil
				}
				id := fmt.Sprintf("fp-%d", index)
				return repo.InsertFuelPrice(ctx, newFuelPrice(id, 200, "2024-01-01T10:00:00Z"))
			})
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.Equal(t, nil, err)
	}

	history, err := repo.ListFuelPricesSince(p.Readonly(newContext()), newTime("2024-01-01T00:00:00Z"), 100)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(history))
}
