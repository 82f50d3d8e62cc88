package spatial

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManagerInsertAndQuery(t *testing.T) {
	m := NewManager(box(0, 0, 100, 100), WithName("insert-query"))

	m.Insert(entity(1), box(10, 10, 20, 20), "a")
	m.Insert(entity(2), box(60, 60, 70, 70), "b")

	require.Equal(t, 2, m.ObjectCount())
	require.True(t, m.Registered(entity(1)))
	require.True(t, m.Registered(entity(2)))
	require.False(t, m.Registered(entity(3)))

	results := m.QueryAABB(box(0, 0, 50, 50))
	require.Len(t, results, 1)
	require.Equal(t, entity(1), results[0].Entity)
	require.Equal(t, "a", results[0].Data)
}

func TestManagerAutoExpand(t *testing.T) {
	world := box(0, 0, 100, 100)

	t.Run("insert outside grows the world", func(t *testing.T) {
		m := NewManager(world, WithName("expand-insert"))
		m.Insert(entity(1), box(10, 10, 20, 20), nil)
		m.Insert(entity(2), box(150, 150, 160, 160), nil)

		require.True(t, m.Bounds().Contains(box(150, 150, 160, 160)))
		require.Equal(t, 2, m.ObjectCount())

		// the in-world entity survives the rebuild
		results := m.QueryAABB(box(0, 0, 100, 100))
		require.Equal(t, 1, entitySet(results)[entity(1)])

		results = m.QueryAABB(box(140, 140, 170, 170))
		require.Equal(t, 1, entitySet(results)[entity(2)])
	})

	t.Run("entities outside the old world survive further growth", func(t *testing.T) {
		m := NewManager(world, WithName("expand-chain"))
		m.Insert(entity(1), box(150, 150, 160, 160), nil)
		m.Insert(entity(2), box(-50, -50, -40, -40), nil)

		require.True(t, m.Bounds().Contains(box(150, 150, 160, 160)))
		require.True(t, m.Bounds().Contains(box(-50, -50, -40, -40)))

		results := m.QueryAABB(m.Bounds())
		require.Len(t, results, 2)
	})

	t.Run("update outside grows the world", func(t *testing.T) {
		m := NewManager(world, WithName("expand-update"))
		m.Insert(entity(1), box(10, 10, 20, 20), "payload")

		require.True(t, m.Update(entity(1), box(200, 10, 210, 20)))
		require.True(t, m.Bounds().Contains(box(200, 10, 210, 20)))

		results := m.QueryAABB(box(200, 10, 210, 20))
		require.Len(t, results, 1)
		require.Equal(t, "payload", results[0].Data)
	})

	t.Run("disabled leaves the world alone", func(t *testing.T) {
		m := NewManager(world, WithName("expand-off"), WithAutoExpand(false))
		require.False(t, m.AutoExpand())

		m.Insert(entity(1), box(150, 150, 160, 160), nil)
		require.Equal(t, world, m.Bounds())
		require.Equal(t, 1, m.ObjectCount())
	})
}

func TestManagerExpandWorldBounds(t *testing.T) {
	m := NewManager(box(0, 0, 100, 100), WithName("manual-expand"), WithAutoExpand(false))
	m.Insert(entity(1), box(10, 10, 20, 20), nil)

	m.ExpandWorldBounds(box(-100, -100, 0, 0))
	require.Equal(t, box(-100, -100, 100, 100), m.Bounds())

	results := m.QueryAABB(box(0, 0, 50, 50))
	require.Equal(t, 1, entitySet(results)[entity(1)])
}

func TestManagerRemove(t *testing.T) {
	m := NewManager(box(0, 0, 100, 100), WithName("remove"))
	m.Insert(entity(1), box(10, 10, 20, 20), nil)

	require.True(t, m.Remove(entity(1)))
	require.False(t, m.Registered(entity(1)))
	require.Equal(t, 0, m.ObjectCount())

	require.False(t, m.Remove(entity(1)))
	require.False(t, m.Remove(entity(99)))
}

func TestManagerClear(t *testing.T) {
	m := NewManager(box(0, 0, 100, 100), WithName("clear"))
	for i := uint32(1); i <= 10; i++ {
		f := float32(i) * 5
		m.Insert(entity(i), box(f, f, f+3, f+3), nil)
	}

	m.Clear()
	require.Equal(t, 0, m.ObjectCount())
	require.False(t, m.Registered(entity(1)))
	require.Empty(t, m.QueryAABB(m.Bounds()))
}

func TestManagerOptions(t *testing.T) {
	t.Run("named", func(t *testing.T) {
		m := NewManager(box(0, 0, 10, 10), WithName("scene"))
		require.Equal(t, "scene", m.Name())
		require.Equal(t, "scene", m.DebugInfo().Name)
	})

	t.Run("unnamed gets a generated name", func(t *testing.T) {
		m := NewManager(box(0, 0, 10, 10))
		require.NotEmpty(t, m.Name())
	})

	t.Run("tuned tree parameters apply", func(t *testing.T) {
		m := NewManager(box(0, 0, 100, 100),
			WithName("tuned"),
			WithMaxObjects(1),
			WithMaxDepth(2),
		)
		for i := uint32(1); i <= 8; i++ {
			f := float32(i) * 10
			m.Insert(entity(i), box(f, f, f+2, f+2), nil)
		}

		stats := m.tree.Stats()
		require.Equal(t, 8, stats.Objects)
		require.LessOrEqual(t, stats.Depth, 2)
	})
}

func TestManagerImplementsPartition(t *testing.T) {
	var index Partition = NewManager(box(0, 0, 100, 100), WithName("iface"))

	index.Insert(entity(1), box(10, 10, 20, 20), nil)
	require.Equal(t, 1, index.ObjectCount())

	info := index.DebugInfo()
	require.Equal(t, "quadtree", info.Kind)
	require.Equal(t, 1, info.Objects)
}

func BenchmarkManagerInsert(b *testing.B) {
	for _, size := range []int{100, 1000, 10000} {
		b.Run(fmt.Sprintf("%d", size), func(b *testing.B) {
			world := box(0, 0, 1000, 1000)
			for n := 0; n < b.N; n++ {
				b.StopTimer()
				m := NewManager(world, WithName("bench"))
				b.StartTimer()
				for i := 0; i < size; i++ {
					f := float32(i%1000) + 0.5
					m.Insert(entity(uint32(i+1)), box(f, f, f+2, f+2), nil)
				}
			}
		})
	}
}
