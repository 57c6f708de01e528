package model

import "fmt"

// MetricKey ...
type MetricKey string

const (
	// MetricFuelPrice ...
	MetricFuelPrice MetricKey = "fuelPrice"

	// MetricDemand ...
	MetricDemand MetricKey = "demand"

	// MetricAirportCapacity ...
	MetricAirportCapacity MetricKey = "airportCapacity"

	// MetricReputation ...
	MetricReputation MetricKey = "reputation"

	// MetricCostIndex ...
	MetricCostIndex MetricKey = "costIndex"
)

// AllMetricKeys is the closed set of metrics
var AllMetricKeys = []MetricKey{
	MetricFuelPrice,
	MetricDemand,
	MetricAirportCapacity,
	MetricReputation,
	MetricCostIndex,
}

// Valid ...
func (m MetricKey) Valid() bool {
	for _, k := range AllMetricKeys {
		if k == m {
			return true
		}
	}
	return false
}

// ParseMetricKey ...
func ParseMetricKey(s string) (MetricKey, error) {
	m := MetricKey(s)
	if !m.Valid() {
		return "", fmt.Errorf("invalid metric key %q", s)
	}
	return m, nil
}
