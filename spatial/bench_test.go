package spatial

import (
	"math/rand"
	"testing"

	"github.com/SeraphWedd/novage-spatial/geometry"
)

func populate(b *testing.B, index Partition, count int) *rand.Rand {
	b.Helper()

	rng := rand.New(rand.NewSource(3))
	for i := uint32(1); i <= uint32(count); i++ {
		minX := rng.Float32() * 990
		minY := rng.Float32() * 990
		index.Insert(entity(i), box(minX, minY, minX+5, minY+5), nil)
	}
	return rng
}

func benchmarkQueryAABB(b *testing.B, index Partition) {
	rng := populate(b, index, 10000)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		minX := rng.Float32() * 950
		minY := rng.Float32() * 950
		index.QueryAABB(box(minX, minY, minX+50, minY+50))
	}
}

func BenchmarkQuadtreeQueryAABB(b *testing.B) {
	benchmarkQueryAABB(b, NewQuadtree(box(0, 0, 1000, 1000), DefaultMaxObjects, DefaultMaxDepth))
}

func BenchmarkHashGridQueryAABB(b *testing.B) {
	benchmarkQueryAABB(b, NewHashGrid(50))
}

func benchmarkUpdate(b *testing.B, index Partition) {
	rng := populate(b, index, 10000)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		id := entity(uint32(n%10000) + 1)
		minX := rng.Float32() * 990
		minY := rng.Float32() * 990
		index.Update(id, box(minX, minY, minX+5, minY+5))
	}
}

func BenchmarkQuadtreeUpdate(b *testing.B) {
	benchmarkUpdate(b, NewQuadtree(box(0, 0, 1000, 1000), DefaultMaxObjects, DefaultMaxDepth))
}

func BenchmarkHashGridUpdate(b *testing.B) {
	benchmarkUpdate(b, NewHashGrid(50))
}

func BenchmarkQuadtreeRaycast(b *testing.B) {
	tree := NewQuadtree(box(0, 0, 1000, 1000), DefaultMaxObjects, DefaultMaxDepth)
	rng := populate(b, tree, 10000)
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		origin := geometry.NewVec2f(rng.Float32()*1000, rng.Float32()*1000)
		tree.RaycastFirst(origin, geometry.NewVec2f(1, 0), 200)
	}
}
