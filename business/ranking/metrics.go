package ranking

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	EvaluationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_ranking_evaluations_total",
			Help: "Count of ranking evaluations by environment and daypart.",
		},
		[]string{"environment", "daypart"},
	)

	ExcludedCardsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landing_ranking_excluded_cards_total",
			Help: "Count of cards dropped by exclusion rules, by card_id.",
		},
		[]string{"card_id"},
	)
)

func init() {
	prometheus.MustRegister(EvaluationsTotal, ExcludedCardsTotal)
}
