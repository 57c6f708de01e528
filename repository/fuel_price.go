package repository

import (
	"context"
	"errors"
	"time"

	"github.com/QuangTung97/airsim-events/model"
)

// FuelPrice stores the recorded base fuel prices
type FuelPrice interface {
	GetLatestFuelPrice(ctx context.Context) (model.NullFuelPrice, error)
	InsertFuelPrice(ctx context.Context, price model.FuelPrice) error
	ListFuelPricesSince(ctx context.Context, since time.Time, limit int) ([]model.FuelPrice, error)

	// LockFuelPrices serializes writers of the price series until the transaction ends
	LockFuelPrices(ctx context.Context) error
}

type fuelPriceImpl struct {
}

// NewFuelPrice ...
func NewFuelPrice() FuelPrice {
	return &fuelPriceImpl{}
}

// GetLatestFuelPrice ...
func (r *fuelPriceImpl) GetLatestFuelPrice(ctx context.Context) (model.NullFuelPrice, error) {
	query := `
SELECT id, price_per_ton, recorded_at
FROM fuel_price
ORDER BY recorded_at DESC
LIMIT 1
`
	var result []model.FuelPrice
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	if err != nil {
		return model.NullFuelPrice{}, err
	}
	if len(result) == 0 {
		return model.NullFuelPrice{}, nil
	}
	return model.NullFuelPrice{
		Valid:     true,
		FuelPrice: result[0],
	}, nil
}

// InsertFuelPrice ...
func (r *fuelPriceImpl) InsertFuelPrice(ctx context.Context, price model.FuelPrice) error {
	query := `
INSERT INTO fuel_price (id, price_per_ton, recorded_at)
VALUES (:id, :price_per_ton, :recorded_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, price)
	return err
}

// ListFuelPricesSince returns prices recorded at or after since, oldest first
func (r *fuelPriceImpl) ListFuelPricesSince(
	ctx context.Context, since time.Time, limit int,
) ([]model.FuelPrice, error) {
	query := `
SELECT id, price_per_ton, recorded_at
FROM fuel_price
WHERE recorded_at >= ?
ORDER BY recorded_at ASC
LIMIT ?
`
	var result []model.FuelPrice
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, since, limit)
	return result, err
}

// LockFuelPrices ...
func (r *fuelPriceImpl) LockFuelPrices(ctx context.Context) error {
	query := `
SELECT id FROM fuel_price_lock WHERE id = 1 FOR UPDATE
`
	var ids []int64
	err := GetTx(ctx).SelectContext(ctx, &ids, query)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return errors.New("fuel price lock row is missing")
	}
	return nil
}
