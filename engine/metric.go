package engine

import (
	"time"

	"github.com/QuangTung97/airsim-events/model"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// EffectiveValue returns base multiplied by the factors of all multiplier modifiers
// of metric that target one of targets and are active at at.
// Targets match by equality only, callers expand scope hierarchies themselves.
func EffectiveValue(
	metric model.MetricKey, targets []model.TargetKey, base decimal.Decimal,
	at time.Time, modifiers []model.MetricModifier,
) decimal.Decimal {
	targetSet := make(map[model.TargetKey]struct{}, len(targets))
	for _, t := range targets {
		targetSet[t] = struct{}{}
	}

	product := one
	for _, m := range modifiers {
		if _, ok := targetSet[m.TargetKey]; !ok {
			continue
		}
		product = foldMultiplier(product, metric, at, m)
	}
	return base.Mul(product)
}

// ActiveMultiplierProduct is the composed factor of a single target, 1 when nothing is active
func ActiveMultiplierProduct(
	metric model.MetricKey, target model.TargetKey, at time.Time, modifiers []model.MetricModifier,
) decimal.Decimal {
	product := one
	for _, m := range modifiers {
		if m.TargetKey != target {
			continue
		}
		product = foldMultiplier(product, metric, at, m)
	}
	return product
}

func foldMultiplier(
	product decimal.Decimal, metric model.MetricKey, at time.Time, m model.MetricModifier,
) decimal.Decimal {
	if m.Metric != metric || m.Kind != model.ModifierKindMultiplier {
		return product
	}
	if !m.ActiveAt(at) {
		return product
	}
	if !m.Factor.Valid || !m.Factor.Decimal.IsPositive() {
		return product
	}
	return product.Mul(m.Factor.Decimal)
}
