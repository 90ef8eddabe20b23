package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Body-shape classifications by gender and outcome (ok, invalid_gender, invalid_unit)
	ClassifyRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bodyshape_classify_requests_total",
		Help: "Total number of body-shape classification requests",
	}, []string{"gender", "outcome"})

	ClassifyLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "bodyshape_classify_latency_seconds",
		Help:    "Latency of the body-shape classifier",
		Buckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01},
	})

	// Onboarding body analyses resolved by the measurement classifier instead of the photo result
	BodyShapeFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "onboarding_bodyshape_fallbacks_total",
		Help: "Body analyses that fell back to the measurement classifier",
	}, []string{"reason"})

	OutfitCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "outfit_catalog_cache_lookups_total",
		Help: "Outfit catalog cache lookups by result (hit, miss, error)",
	}, []string{"result"})

	PointsTransactions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "points_transactions_total",
		Help: "Points ledger transactions by kind",
	}, []string{"kind"})
)

func Init() {
	prometheus.MustRegister(
		ClassifyRequests,
		ClassifyLatency,
		BodyShapeFallbacks,
		OutfitCacheLookups,
		PointsTransactions,
	)
}
