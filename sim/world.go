package sim

import (
	"github.com/plus3/yock/ecs"
	"github.com/plus3/yock/geom"
)

// StepStats summarizes what happened during one or more steps.
type StepStats struct {
	Spawned    int
	Bounces    int
	Collisions int
	Expired    int
	Active     int
}

func (s *StepStats) add(o StepStats) {
	s.Spawned += o.Spawned
	s.Bounces += o.Bounces
	s.Collisions += o.Collisions
	s.Expired += o.Expired
	s.Active = o.Active
}

// entity is the component view of one sprite.
type entity struct {
	Bounds   *geom.Rect
	Velocity *Velocity
	Lifetime *Lifetime
	Texture  *TextureID
}

func (e entity) sprite(id ecs.EntityId) Sprite {
	return Sprite{
		Id:       id,
		Bounds:   *e.Bounds,
		Velocity: *e.Velocity,
		Lifetime: int(*e.Lifetime),
		Texture:  *e.Texture,
	}
}

// World owns the sprite entities and advances them one frame at a time.
// It is not safe for concurrent use; the frame driver owns it.
type World struct {
	cfg     Config
	spawner *Spawner

	storage  *ecs.Storage
	view     *ecs.View[entity]
	query    *ecs.Query[entity]
	snapshot []Sprite

	spawnTimer    int
	spawnInterval int

	totals StepStats
}

// NewWorld creates an empty world. A nil spawner disables spawning, which is
// useful for driving hand-built scenes.
func NewWorld(cfg Config, spawner *Spawner) *World {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[geom.Rect](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Lifetime](registry)
	ecs.RegisterComponent[TextureID](registry)
	storage := ecs.NewStorage(registry)

	w := &World{
		cfg:     cfg,
		spawner: spawner,
		storage: storage,
		view:    ecs.NewView[entity](storage),
		query:   ecs.NewQuery[entity](storage),
	}
	w.SetSpawnInterval(cfg.SpawnInterval)
	return w
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Storage returns the entity storage. Schedulers driving a StepSystem apply
// their queued deletions to it.
func (w *World) Storage() *ecs.Storage {
	return w.storage
}

// Sprites returns a copy of every active sprite in slot order. The slice is
// reused by the next call and must not be kept.
func (w *World) Sprites() []Sprite {
	w.snapshot = w.snapshot[:0]
	for id, e := range w.view.Iter() {
		w.snapshot = append(w.snapshot, e.sprite(id))
	}
	return w.snapshot
}

// Sprite returns a copy of the sprite with the given id, if it is still
// active.
func (w *World) Sprite(id ecs.EntityId) (Sprite, bool) {
	e := w.view.Get(id)
	if e == nil {
		return Sprite{}, false
	}
	return e.sprite(id), true
}

// Len returns the number of active sprites.
func (w *World) Len() int {
	return w.storage.Len()
}

// SpawnInterval returns the current spawn threshold in frames.
func (w *World) SpawnInterval() int {
	return w.spawnInterval
}

// SetSpawnInterval changes the spawn threshold, clamped to [0, MaxSpawnInterval].
// It is meant to be driven from a debug control between frames.
func (w *World) SetSpawnInterval(frames int) {
	w.spawnInterval = min(max(frames, 0), MaxSpawnInterval)
}

// SpawnTimer returns the number of frames counted since the spawn gate last
// opened.
func (w *World) SpawnTimer() int {
	return w.spawnTimer
}

// Totals returns the statistics accumulated over every step so far.
func (w *World) Totals() StepStats {
	t := w.totals
	t.Active = w.Len()
	return t
}

// Spawn adds one sprite from the spawner immediately and returns it.
func (w *World) Spawn() Sprite {
	if w.spawner == nil {
		panic("sim: spawn on a world without spawner")
	}
	w.totals.Spawned++
	return w.add(w.spawner.Spawn())
}

// Clear drops every active sprite. Ids handed out before the call may be
// reused afterwards.
func (w *World) Clear() {
	for id := range w.view.Iter() {
		w.storage.Delete(id)
	}
	w.storage.Compact()
}

func (w *World) add(s Sprite) Sprite {
	lifetime := Lifetime(s.Lifetime)
	s.Id = w.view.Spawn(entity{
		Bounds:   &s.Bounds,
		Velocity: &s.Velocity,
		Lifetime: &lifetime,
		Texture:  &s.Texture,
	})
	return s
}

// Step advances the world by one frame of dt seconds: spawn gate, integrate,
// bounce, lifetime decrement, pairwise collisions, expiration. Expired sprites
// are deleted before Step returns.
func (w *World) Step(dt float64) StepStats {
	return w.step(dt, w.storage.Delete)
}

// step runs one frame and hands every expired sprite to remove.
func (w *World) step(dt float64, remove func(ecs.EntityId)) StepStats {
	var stats StepStats

	w.spawnTimer++
	if w.spawnTimer > w.spawnInterval {
		w.spawnTimer = 0
		if w.spawner != nil {
			w.add(w.spawner.Spawn())
			stats.Spawned++
		}
	}

	w.query.Execute()

	// Grouped so that dt == 1/ReferenceFPS scales velocities by exactly 1.
	frames := dt * float64(w.cfg.ReferenceFPS)

	for _, e := range w.query.Iter() {
		*e.Bounds = e.Bounds.Translate(
			int(float64(e.Velocity.X)*frames),
			int(float64(e.Velocity.Y)*frames),
		)
		stats.Bounces += w.bounce(e.Bounds, e.Velocity)
		*e.Lifetime--
	}

	stats.Collisions = w.collide()

	for id, e := range w.query.Iter() {
		if *e.Lifetime <= 0 {
			remove(id)
			stats.Expired++
		}
	}
	stats.Active = w.query.Len() - stats.Expired

	w.totals.add(stats)
	return stats
}

// bounce flips each axis velocity whose leading or trailing edge is at or
// beyond the screen bound. Positions are never clamped.
func (w *World) bounce(b *geom.Rect, v *Velocity) int {
	bounces := 0
	if b.X <= 0 || b.Right() >= w.cfg.ScreenWidth {
		v.X = -v.X
		bounces++
	}
	if b.Y <= 0 || b.Bottom() >= w.cfg.ScreenHeight {
		v.Y = -v.Y
		bounces++
	}
	return bounces
}

// collide resolves every overlapping pair in collection order. Both sprites
// reverse on both axes and are pushed one unit apart per axis; on equal
// coordinates the first sprite moves right/down. Corrections compound when
// three or more sprites overlap.
func (w *World) collide() int {
	collisions := 0
	n := w.query.Len()
	for i := 0; i < n; i++ {
		_, a := w.query.At(i)
		for j := i + 1; j < n; j++ {
			_, b := w.query.At(j)
			if !geom.Collides(*a.Bounds, *b.Bounds) {
				continue
			}
			collisions++

			a.Velocity.reverse()
			b.Velocity.reverse()

			dx, dy := 1, 1
			if a.Bounds.X < b.Bounds.X {
				dx = -1
			}
			if a.Bounds.Y < b.Bounds.Y {
				dy = -1
			}
			*a.Bounds = a.Bounds.Translate(dx, dy)
			*b.Bounds = b.Bounds.Translate(-dx, -dy)
		}
	}
	return collisions
}
