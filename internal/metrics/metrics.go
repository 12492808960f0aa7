// Package metrics exposes gameplay counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Hazard Metrics
var (
	HazardsSpawned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHazardsSpawned,
			Help: HelpTextHazardsSpawned,
		},
		[]string{LabelHazard},
	)

	HazardsDestroyed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameHazardsDestroyed,
			Help: HelpTextHazardsDestroyed,
		},
	)

	HazardImpacts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHazardImpacts,
			Help: HelpTextHazardImpacts,
		},
		[]string{LabelHazard},
	)
)

// Player Metrics
var (
	WrongToolUses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWrongTool,
			Help: HelpTextWrongTool,
		},
	)

	PlantsDestroyed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlantsDestroyed,
			Help: HelpTextPlantsDestroyed,
		},
	)

	FruitHarvested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFruitHarvested,
			Help: HelpTextFruitHarvested,
		},
	)

	WeatherChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameWeatherChanges,
			Help: HelpTextWeatherChanges,
		},
		[]string{LabelWeather},
	)
)

// Session Metrics
var (
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameActiveSessions,
			Help: HelpTextActiveSessions,
		},
	)

	FinalScore = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameFinalScore,
			Help:    HelpTextFinalScore,
			Buckets: FinalScoreBuckets,
		},
		[]string{LabelDifficulty},
	)
)
