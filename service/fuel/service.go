// Package fuel keeps the base fuel price of the simulation moving and prices it
// through the active world fuel modifiers.
package fuel

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/QuangTung97/airsim-events/model"
	"github.com/QuangTung97/airsim-events/pkg/apperr"
	"github.com/QuangTung97/airsim-events/pkg/otellib"
	"github.com/QuangTung97/airsim-events/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate moq -rm -out fuel_mocks.go . MultiplierSource RandomSource

// MultiplierSource is implemented by the event service
type MultiplierSource interface {
	GetActiveMultiplier(
		ctx context.Context, worldID int64, metric model.MetricKey, target model.TargetKey, at time.Time,
	) (decimal.Decimal, error)
}

// RandomSource is implemented by *rand.Rand
type RandomSource interface {
	Float64() float64
}

// IService ...
type IService interface {
	GetCurrentPrice(ctx context.Context, worldID int64) (Quote, error)
	ForceGenerate(ctx context.Context, worldID int64) (Quote, error)
	GetHistory(ctx context.Context, worldID int64, hours int) (History, error)
}

// Quote is a recorded base price priced through the active world multiplier
type Quote struct {
	ID              string          `json:"id"`
	BasePricePerTon int64           `json:"basePricePerTon"`
	Multiplier      decimal.Decimal `json:"multiplier"`
	PricePerTon     decimal.Decimal `json:"pricePerTon"`
	RecordedAt      time.Time       `json:"recordedAt"`
	NextUpdateAt    time.Time       `json:"nextUpdateAt"`
}

// History ...
type History struct {
	Data         []model.FuelPrice `json:"data"`
	CurrentPrice decimal.Decimal   `json:"currentPrice"`
	NextUpdateAt time.Time         `json:"nextUpdateAt"`
}

const (
	// DefaultHistoryHours ...
	DefaultHistoryHours = 24

	// MaxHistoryHours ...
	MaxHistoryHours = 720

	// MaxHistoryRows caps the rows returned by GetHistory
	MaxHistoryRows = 100
)

// Params of the random walk
type Params struct {
	BasePrice  int64
	Volatility int64

	// Interval between two recorded prices, also the grid of NextUpdateAt
	Interval time.Duration
}

// Service ...
type Service struct {
	provider    repository.Provider
	repo        repository.FuelPrice
	multipliers MultiplierSource
	params      Params

	now   func() time.Time
	newID func() string

	rndMut sync.Mutex
	rnd    RandomSource
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider, repo repository.FuelPrice, multipliers MultiplierSource, params Params,
) *Service {
	return &Service{
		provider:    provider,
		repo:        repo,
		multipliers: multipliers,
		params:      params,

		now:   time.Now,
		newID: uuid.NewString,
		rnd:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Service) random() float64 {
	s.rndMut.Lock()
	defer s.rndMut.Unlock()
	return s.rnd.Float64()
}

// nextPrice moves the previous price by at most half the volatility, staying within
// two volatilities of the base price
func (s *Service) nextPrice(previous model.NullFuelPrice) int64 {
	base := float64(s.params.BasePrice)
	volatility := float64(s.params.Volatility)

	if !previous.Valid {
		return s.params.BasePrice + int64(math.Floor((s.random()-0.5)*volatility*2))
	}

	price := float64(previous.FuelPrice.PricePerTon) + (s.random()-0.5)*volatility

	low := base - volatility*2
	high := base + volatility*2
	if price < low {
		price = low + s.random()*10
	} else if price > high {
		price = high - s.random()*10
	}
	return int64(math.Round(price))
}

func (s *Service) nextUpdateAt(now time.Time) time.Time {
	return now.UTC().Truncate(s.params.Interval).Add(s.params.Interval)
}

func (s *Service) generate(ctx context.Context, previous model.NullFuelPrice, now time.Time) (model.FuelPrice, error) {
	price := model.FuelPrice{
		ID:          s.newID(),
		PricePerTon: s.nextPrice(previous),
		RecordedAt:  now.UTC().Truncate(time.Millisecond),
	}
	if err := s.repo.InsertFuelPrice(ctx, price); err != nil {
		return model.FuelPrice{}, err
	}

	fuelBasePrice.Set(float64(price.PricePerTon))
	otellib.Extract(ctx).Info("fuel price recorded",
		zap.String("id", price.ID), zap.Int64("price_per_ton", price.PricePerTon))
	return price, nil
}

func (s *Service) quote(ctx context.Context, worldID int64, price model.FuelPrice, now time.Time) (Quote, error) {
	multiplier, err := s.multipliers.GetActiveMultiplier(ctx, worldID, model.MetricFuelPrice, model.TargetWorld, now)
	if err != nil {
		return Quote{}, err
	}
	return Quote{
		ID:              price.ID,
		BasePricePerTon: price.PricePerTon,
		Multiplier:      multiplier,
		PricePerTon:     decimal.NewFromInt(price.PricePerTon).Mul(multiplier),
		RecordedAt:      price.RecordedAt,
		NextUpdateAt:    s.nextUpdateAt(now),
	}, nil
}

// lockedLatest reads the latest price after taking the series lock,
// concurrent refreshes then see the price recorded by the first one
func (s *Service) lockedLatest(ctx context.Context) (model.NullFuelPrice, error) {
	if err := s.repo.LockFuelPrices(ctx); err != nil {
		return model.NullFuelPrice{}, err
	}
	return s.repo.GetLatestFuelPrice(ctx)
}

// GetCurrentPrice records a new price when the latest one is at least one interval old
func (s *Service) GetCurrentPrice(ctx context.Context, worldID int64) (Quote, error) {
	now := s.now()

	var price model.FuelPrice
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		latest, err := s.lockedLatest(ctx)
		if err != nil {
			return err
		}
		if latest.Valid && now.Sub(latest.FuelPrice.RecordedAt) < s.params.Interval {
			price = latest.FuelPrice
			return nil
		}

		price, err = s.generate(ctx, latest, now)
		return err
	})
	if err != nil {
		return Quote{}, apperr.Storage("get current fuel price", err)
	}
	return s.quote(ctx, worldID, price, now)
}

// ForceGenerate records a new price regardless of the age of the latest one
func (s *Service) ForceGenerate(ctx context.Context, worldID int64) (Quote, error) {
	now := s.now()

	var price model.FuelPrice
	err := s.provider.Transact(ctx, func(ctx context.Context) error {
		latest, err := s.lockedLatest(ctx)
		if err != nil {
			return err
		}
		price, err = s.generate(ctx, latest, now)
		return err
	})
	if err != nil {
		return Quote{}, apperr.Storage("generate fuel price", err)
	}
	return s.quote(ctx, worldID, price, now)
}

// GetHistory returns at most MaxHistoryRows prices of the last hours, oldest first
func (s *Service) GetHistory(ctx context.Context, worldID int64, hours int) (History, error) {
	if hours < 1 || hours > MaxHistoryHours {
		return History{}, apperr.NewValidationError("invalid hours", apperr.Issue{
			Path:    "hours",
			Code:    "out_of_range",
			Message: "hours must be between 1 and 720",
		})
	}

	since := s.now().Add(-time.Duration(hours) * time.Hour)
	rows, err := s.repo.ListFuelPricesSince(s.provider.Readonly(ctx), since, MaxHistoryRows)
	if err != nil {
		return History{}, apperr.Storage("list fuel prices", err)
	}
	if rows == nil {
		rows = []model.FuelPrice{}
	}

	current, err := s.GetCurrentPrice(ctx, worldID)
	if err != nil {
		return History{}, err
	}
	return History{
		Data:         rows,
		CurrentPrice: current.PricePerTon,
		NextUpdateAt: current.NextUpdateAt,
	}, nil
}
