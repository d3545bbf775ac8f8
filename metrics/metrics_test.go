package metrics_test

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/plus3/yock/frame"
	"github.com/plus3/yock/metrics"
	"github.com/plus3/yock/sim"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	m := metrics.New()

	m.Observe(sim.StepStats{Spawned: 1, Bounces: 2, Collisions: 3, Expired: 0, Active: 4})
	m.Observe(sim.StepStats{Spawned: 0, Bounces: 1, Collisions: 0, Expired: 2, Active: 2})

	assert.Equal(t, 2.0, metricValue(t, m, "yock_steps_total"))

	histograms, err := testutil.GatherAndCount(m.Registry, "yock_pair_checks")
	require.NoError(t, err)
	assert.Equal(t, 1, histograms)

	expected := `
# HELP yock_bounces_total Velocity flips at the screen boundary
# TYPE yock_bounces_total counter
yock_bounces_total 3
# HELP yock_collisions_total Overlapping sprite pairs resolved
# TYPE yock_collisions_total counter
yock_collisions_total 3
# HELP yock_sprites_active Sprites alive after the last step
# TYPE yock_sprites_active gauge
yock_sprites_active 2
# HELP yock_sprites_expired_total Sprites removed after their lifetime ran out
# TYPE yock_sprites_expired_total counter
yock_sprites_expired_total 2
# HELP yock_sprites_spawned_total Sprites spawned by the spawn gate
# TYPE yock_sprites_spawned_total counter
yock_sprites_spawned_total 1
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected),
		"yock_bounces_total",
		"yock_collisions_total",
		"yock_sprites_active",
		"yock_sprites_expired_total",
		"yock_sprites_spawned_total",
	))
}

func TestRecorder(t *testing.T) {
	m := metrics.New()
	cfg := sim.DefaultConfig()
	world := sim.NewWorld(cfg, nil)
	world.SetSpawnInterval(12)

	scheduler := frame.NewScheduler(world.Storage())
	scheduler.Register(&sim.StepSystem{World: world, OnStep: m.Recorder(world)})
	for range 3 {
		scheduler.Once(1.0 / 60.0)
	}

	assert.Equal(t, 12.0, metricValue(t, m, "yock_spawn_interval_frames"))
	assert.Equal(t, 3.0, metricValue(t, m, "yock_steps_total"))
}

func TestHandler(t *testing.T) {
	m := metrics.New()
	m.Observe(sim.StepStats{Active: 7})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, string(body), "yock_sprites_active 7")
}

func metricValue(t *testing.T, m *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		metric := family.GetMetric()[0]
		if g := metric.GetGauge(); g != nil {
			return g.GetValue()
		}
		return metric.GetCounter().GetValue()
	}
	t.Fatalf("metric %s not found", name)
	return 0
}
