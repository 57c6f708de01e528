package catalog

import (
	"github.com/QuangTung97/airsim-events/model"
	"github.com/shopspring/decimal"
)

//==============================
// Fuel Shock
//==============================

// FuelShockPayload ...
type FuelShockPayload struct {
	Factor   float64 `json:"factor" validate:"required,gte=0.5,lte=2,maxdp=6"`
	TTLHours int     `json:"ttlHours" validate:"required,gte=1,lte=720"`
	Reason   *string `json:"reason,omitempty" validate:"omitempty,min=1,max=200"`
}

// FuelShock scales the world fuel price for a while
var FuelShock = Spec[FuelShockPayload]{
	EventID: "GLOBAL.MARKET.FUEL_SHOCK",
	DefineFunc: func(p FuelShockPayload) model.EventDefinition {
		return model.EventDefinition{
			ID:             "GLOBAL.MARKET.FUEL_SHOCK",
			TitleKey:       "event.market.fuelShock.title",
			DescriptionKey: "event.market.fuelShock.desc",

			Continuance: model.TemporaryContinuance{TTLHours: p.TTLHours},
			Targets:     []model.TargetKey{model.TargetWorld},
			Effects: []model.EffectOp{
				model.MultiplierEffect{
					Target:   model.TargetWorld,
					Metric:   model.MetricFuelPrice,
					Factor:   decimal.NewFromFloat(p.Factor),
					TTLHours: p.TTLHours,
				},
			},

			RequiresPlayerAction: model.RequiredActionNone,
			Severity:             model.SeverityMajor,
		}
	},
}

//==============================
// Runway Closed
//==============================

const runwayClosedDefaultTTLHours = 72

var runwayClosedCapacityFactor = decimal.RequireFromString("0.7")

// RunwayClosedPayload ...
type RunwayClosedPayload struct {
	AirportID string `json:"airportId" validate:"required,max=64"`
	TTLHours  int    `json:"ttlHours" validate:"gte=1,lte=720"`
}

// RunwayClosed cuts the capacity of one airport
var RunwayClosed = Spec[RunwayClosedPayload]{
	EventID: "AIRPORT.RUNWAY_CLOSED",
	Defaults: func() RunwayClosedPayload {
		return RunwayClosedPayload{TTLHours: runwayClosedDefaultTTLHours}
	},
	DefineFunc: func(p RunwayClosedPayload) model.EventDefinition {
		airport := model.AirportTarget(p.AirportID)
		return model.EventDefinition{
			ID:             "AIRPORT.RUNWAY_CLOSED",
			TitleKey:       "event.airport.runwayClosed.title",
			DescriptionKey: "event.airport.runwayClosed.desc",

			Continuance: model.TemporaryContinuance{TTLHours: p.TTLHours},
			Targets:     []model.TargetKey{airport},
			Effects: []model.EffectOp{
				model.MultiplierEffect{
					Target:   airport,
					Metric:   model.MetricAirportCapacity,
					Factor:   runwayClosedCapacityFactor,
					TTLHours: p.TTLHours,
				},
			},

			RequiresPlayerAction: model.RequiredActionOptional,
			Severity:             model.SeverityMajor,
		}
	},
}

//==============================
// Reputation Hit
//==============================

// ReputationHitPayload ...
// Amount is nil when missing, a zero amount is rejected.
type ReputationHitPayload struct {
	AirlineID string   `json:"airlineId" validate:"required,max=64"`
	Amount    *float64 `json:"amount" validate:"required,ne=0,gte=-100,lte=100,maxdp=4"`
	Reason    *string `json:"reason,omitempty" validate:"omitempty,min=1,max=200"`
}

// ReputationHit nudges the reputation of one airline once
var ReputationHit = Spec[ReputationHitPayload]{
	EventID: "AIRLINE.REPUTATION_HIT",
	DefineFunc: func(p ReputationHitPayload) model.EventDefinition {
		airline := model.AirlineTarget(p.AirlineID)
		return model.EventDefinition{
			ID:             "AIRLINE.REPUTATION_HIT",
			TitleKey:       "event.airline.reputationHit.title",
			DescriptionKey: "event.airline.reputationHit.desc",

			Continuance: model.InstantContinuance{},
			Targets:     []model.TargetKey{airline},
			Effects: []model.EffectOp{
				model.DeltaEffect{
					Target: airline,
					Metric: model.MetricReputation,
					Amount: decimal.NewFromFloat(*p.Amount),
				},
			},

			RequiresPlayerAction: model.RequiredActionNone,
			Severity:             reputationSeverity(*p.Amount),
		}
	},
}

func reputationSeverity(amount float64) model.Severity {
	if amount < 0 {
		amount = -amount
	}
	switch {
	case amount >= 50:
		return model.SeverityCrisis
	case amount >= 10:
		return model.SeverityMajor
	default:
		return model.SeverityMinor
	}
}
