package brands

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var lookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "artha_brand_lookup_total",
	Help: "Brand store lookups by outcome (found, not_found, unreachable).",
}, []string{"outcome"})
