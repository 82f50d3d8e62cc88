package main

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/aquilax/go-perlin"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/chewxy/math32"

	"github.com/SeraphWedd/novage-spatial/featureflag"
	"github.com/SeraphWedd/novage-spatial/geometry"
	"github.com/SeraphWedd/novage-spatial/models"
	"github.com/SeraphWedd/novage-spatial/spatial"
)

const (
	entitySpeed   = 2.5
	minEntitySize = 1.0
	maxEntitySize = 4.0

	noiseFrequency = 0.01
	noiseTimeStep  = 0.002
)

type simulationOptions struct {
	Index          spatial.Partition
	Flags          featureflag.FeatureFlag
	WorldBounds    geometry.AABB2D
	Entities       int
	FrameDuration  time.Duration
	ReportInterval time.Duration
	QueryRadius    float32
	Seed           int64
}

type simEntity struct {
	id   models.EntityID
	pos  geometry.Vec2f
	size geometry.Vec2f
}

// simulation moves a population of entities through a perlin flow field
// and keeps the spatial index in sync, one Update per entity per frame.
// The index itself is not safe for concurrent access, so every touch
// point goes through the mutex; the admin debug endpoint snapshots
// through the same lock.
type simulation struct {
	opts simulationOptions

	mutex    sync.Mutex
	noise    *perlin.Perlin
	rng      *rand.Rand
	idGen    models.EntityIDGenerator
	entities []simEntity
	frames   uint64
	probed   uint64
}

func newSimulation(opts simulationOptions) *simulation {
	s := &simulation{
		opts:  opts,
		noise: perlin.NewPerlin(2, 2, 3, opts.Seed),
		rng:   rand.New(rand.NewSource(opts.Seed)),
	}

	size := opts.WorldBounds.Size()
	s.entities = make([]simEntity, opts.Entities)
	for i := range s.entities {
		e := &s.entities[i]
		e.id = s.idGen.New()
		e.pos = opts.WorldBounds.Min.Add(geometry.NewVec2f(
			s.rng.Float32()*size.X,
			s.rng.Float32()*size.Y,
		))
		edge := minEntitySize + s.rng.Float32()*(maxEntitySize-minEntitySize)
		e.size = geometry.NewVec2f(edge, edge)

		opts.Index.Insert(e.id, geometry.AABB2DFromCenterSize(e.pos, e.size), i)
	}

	return s
}

func (s *simulation) run(ctx context.Context) {
	frames := time.NewTicker(s.opts.FrameDuration)
	defer frames.Stop()

	reports := time.NewTicker(s.opts.ReportInterval)
	defer reports.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-reports.C:
			s.report()

		case <-frames.C:
			s.step()
		}
	}
}

func (s *simulation) step() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.frames++
	t := float64(s.frames) * noiseTimeStep

	for i := range s.entities {
		e := &s.entities[i]

		angle := float32(s.noise.Noise3D(
			float64(e.pos.X)*noiseFrequency,
			float64(e.pos.Y)*noiseFrequency,
			t,
		)) * 2 * math32.Pi
		e.pos = e.pos.Add(geometry.NewVec2f(
			math32.Cos(angle),
			math32.Sin(angle),
		).Mul(entitySpeed))

		s.opts.Index.Update(e.id, geometry.AABB2DFromCenterSize(e.pos, e.size))
	}

	s.opts.Flags.IfNotSet(featureflag.FlagDisableQueries, func() {
		probe := s.entities[s.frames%uint64(len(s.entities))]
		region := geometry.AABB2DFromCircle(probe.pos, s.opts.QueryRadius)
		s.probed += uint64(len(s.opts.Index.QueryAABB(region)))
	})
}

func (s *simulation) report() {
	info := s.debugInfo()

	logs.WithTag("kind", info.Kind).
		WithTag("frames", s.frames).
		WithTag("objects", info.Objects).
		WithTag("nodes", info.Nodes).
		WithTag("depth", info.Depth).
		WithTag("probed_objects", s.probed).
		Info("simulation summary")
}

func (s *simulation) debugInfo() spatial.DebugInfo {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.opts.Index.DebugInfo()
}
