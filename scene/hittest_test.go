package scene

import (
	"context"
	"math"
	"testing"

	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func hitNames(hits []Hit) []string {
	var names []string
	for _, h := range hits {
		names = append(names, h.Name)
	}

	return names
}

func hitTestGraph(t *testing.T) *Graph {
	t.Helper()

	g := NewGraph()

	mustAdd(t, g, NewNode("background").
		WithShape(Rectangle{Size: gm.VecOf(100, 100)}))

	mustAdd(t, g, NewNode("circle").
		WithLayer(2).
		WithShape(Circle{Radius: 2}))

	mustAdd(t, g, NewNode("marker").
		WithLayer(2).
		WithShape(Point{Radius: 0.5}))

	group := mustAdd(t, g, NewNode("group").
		WithOffset(gm.Pair{10, 0}).
		WithLayer(5))

	mustAdd(t, g, NewNode("child").
		WithParent(group).
		WithLayer(1).
		WithShape(Circle{Radius: 1}))

	flat := mustAdd(t, g, NewNode("flat").
		WithScale(gm.Pair{0, 1}).
		WithLayer(10).
		WithShape(Circle{Radius: 100}))

	mustAdd(t, g, NewNode("flat-child").
		WithParent(flat).
		WithLayer(10).
		WithShape(Circle{Radius: 100}))

	return g
}

func TestGraph_HitTest(t *testing.T) {
	g := hitTestGraph(t)

	t.Run("top most layer first", func(t *testing.T) {
		hits := g.HitTest(gm.Pair{0, 0})
		require.Equal(t, []string{"circle", "marker", "background"}, hitNames(hits))
	})

	t.Run("outside of the smaller shapes", func(t *testing.T) {
		hits := g.HitTest(gm.Pair{1.5, 0})
		require.Equal(t, []string{"circle", "background"}, hitNames(hits))
	})

	t.Run("pointer in local coordinates", func(t *testing.T) {
		hits := g.HitTest(gm.Pair{10.5, 0})
		require.Equal(t, []string{"child", "background"}, hitNames(hits))

		requireVecInDelta(t, gm.VecOf(0.5, 0), hits[0].Local)
		requireVecInDelta(t, gm.VecOf(10.5, 0), hits[1].Local)
	})

	t.Run("miss", func(t *testing.T) {
		require.Empty(t, g.HitTest(gm.Pair{60, 60}))
	})
}

func TestGraph_HitTestCamera(t *testing.T) {
	g := NewGraph()

	viewport := Viewport{
		Size:   gm.VecOf(800, 600),
		Domain: testDomain,
	}

	g.SetCamera(viewport.Camera())

	mustAdd(t, g, NewNode("unit").
		WithOffset(gm.Pair{1, 1}).
		WithRotation(math.Pi/4).
		WithShape(Rectangle{Size: gm.VecOf(1, 1)}))

	// (1, 1) in graph coordinates is at (440, 260) on screen
	hits := g.HitTest(gm.Pair{440, 260})
	require.Len(t, hits, 1)
	requireVecInDelta(t, gm.VecZero, hits[0].Local)

	// (1.6, 1) is inside the corner of the rotated square
	require.Len(t, g.HitTest(gm.Pair{464, 260}), 1)

	// (1.8, 1) is outside
	require.Empty(t, g.HitTest(gm.Pair{472, 260}))
}

func TestGraph_HitTestAll(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := hitTestGraph(t)

	pointers := []gm.Vec{
		gm.VecOf(0, 0),
		gm.VecOf(10.5, 0),
		gm.VecOf(60, 60),
	}

	results, err := g.HitTestAll(context.Background(), pointers, 2)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for idx, pointer := range pointers {
		require.Equal(t, g.HitTest(pointer), results[idx])
	}

	t.Run("no workers", func(t *testing.T) {
		results, err := g.HitTestAll(context.Background(), pointers, 0)
		require.NoError(t, err)
		require.Len(t, results, 3)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := g.HitTestAll(ctx, pointers, 2)
		require.ErrorIs(t, err, context.Canceled)
	})
}
