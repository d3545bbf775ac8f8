// Package metrics exports simulation statistics as Prometheus metrics.
package metrics

import (
	"net/http"

	"github.com/plus3/yock/sim"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the simulation collectors on their own registry.
type Metrics struct {
	Registry *prometheus.Registry

	steps         prometheus.Counter
	spawned       prometheus.Counter
	expired       prometheus.Counter
	bounces       prometheus.Counter
	collisions    prometheus.Counter
	active        prometheus.Gauge
	spawnInterval prometheus.Gauge
	pairChecks    prometheus.Histogram
}

// New registers the simulation collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		steps: factory.NewCounter(prometheus.CounterOpts{
			Name: "yock_steps_total",
			Help: "Simulation steps executed",
		}),
		spawned: factory.NewCounter(prometheus.CounterOpts{
			Name: "yock_sprites_spawned_total",
			Help: "Sprites spawned by the spawn gate",
		}),
		expired: factory.NewCounter(prometheus.CounterOpts{
			Name: "yock_sprites_expired_total",
			Help: "Sprites removed after their lifetime ran out",
		}),
		bounces: factory.NewCounter(prometheus.CounterOpts{
			Name: "yock_bounces_total",
			Help: "Velocity flips at the screen boundary",
		}),
		collisions: factory.NewCounter(prometheus.CounterOpts{
			Name: "yock_collisions_total",
			Help: "Overlapping sprite pairs resolved",
		}),
		active: factory.NewGauge(prometheus.GaugeOpts{
			Name: "yock_sprites_active",
			Help: "Sprites alive after the last step",
		}),
		spawnInterval: factory.NewGauge(prometheus.GaugeOpts{
			Name: "yock_spawn_interval_frames",
			Help: "Current spawn interval threshold",
		}),
		pairChecks: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "yock_pair_checks",
			Help:    "Pairwise collision tests per step",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}
}

// Observe records the statistics of one step.
func (m *Metrics) Observe(stats sim.StepStats) {
	m.steps.Inc()
	m.spawned.Add(float64(stats.Spawned))
	m.expired.Add(float64(stats.Expired))
	m.bounces.Add(float64(stats.Bounces))
	m.collisions.Add(float64(stats.Collisions))
	m.active.Set(float64(stats.Active))

	// Pairs are tested before expiration, so count the sprites that were alive.
	n := stats.Active + stats.Expired
	m.pairChecks.Observe(float64(n * (n - 1) / 2))
}

// SetSpawnInterval records the current spawn threshold.
func (m *Metrics) SetSpawnInterval(frames int) {
	m.spawnInterval.Set(float64(frames))
}

// Recorder returns a StepSystem.OnStep callback that records every step of
// world, including its spawn interval.
func (m *Metrics) Recorder(world *sim.World) func(sim.StepStats) {
	return func(stats sim.StepStats) {
		m.Observe(stats)
		m.SetSpawnInterval(world.SpawnInterval())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
