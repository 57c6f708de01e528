package fuel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var fuelBasePrice = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "airsim",
	Name:      "fuel_base_price_per_ton",
	Help:      "Latest recorded base fuel price",
})
