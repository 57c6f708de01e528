package model

import "time"

// FuelPrice is one recorded point of the base fuel price
type FuelPrice struct {
	ID          string    `db:"id" json:"id"`
	PricePerTon int64     `db:"price_per_ton" json:"pricePerTon"`
	RecordedAt  time.Time `db:"recorded_at" json:"recordedAt"`
}

// NullFuelPrice ...
type NullFuelPrice struct {
	Valid     bool
	FuelPrice FuelPrice
}
