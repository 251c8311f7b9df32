package scene

import (
	"testing"

	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/stretchr/testify/require"
)

var testDomain = Domain{
	X: gm.VecOf(-10, 10),
	Y: gm.VecOf(-7.5, 7.5),
}

func TestDomain(t *testing.T) {
	require.Equal(t, gm.VecOf(20, 15), testDomain.Size())
	require.Equal(t, gm.VecZero, testDomain.Center())

	shifted := Domain{X: gm.VecOf(0, 4), Y: gm.VecOf(2, 4)}
	require.Equal(t, gm.VecOf(2, 3), shifted.Center())

	require.True(t, testDomain.Contains(gm.VecOf(10, -7.5)))
	require.False(t, testDomain.Contains(gm.VecOf(10.5, 0)))

	// a reversed range is not flipped
	reversed := Domain{X: gm.VecOf(1, 0), Y: gm.VecOf(0, 1)}
	require.Equal(t, gm.VecOf(-1, 1), reversed.Size())
}

func TestViewport_Camera(t *testing.T) {
	viewport := Viewport{
		Size:   gm.VecOf(800, 600),
		Domain: testDomain,
	}

	camera := viewport.Camera()

	requireVecInDelta(t, gm.VecOf(400, 300), camera.Transform(gm.VecZero))
	requireVecInDelta(t, gm.VecOf(0, 0), camera.Transform(gm.VecOf(-10, 7.5)))
	requireVecInDelta(t, gm.VecOf(800, 600), camera.Transform(gm.VecOf(10, -7.5)))

	// y points up
	requireVecInDelta(t, gm.VecOf(400, 260), camera.Transform(gm.VecOf(0, 1)))

	requireVecInDelta(t, gm.VecOf(-10, 7.5), viewport.ScreenToGraph(gm.VecZero))
}

func TestViewport_ShiftedDomain(t *testing.T) {
	viewport := Viewport{
		Size:   gm.VecOf(100, 100),
		Domain: Domain{X: gm.VecOf(0, 10), Y: gm.VecOf(0, 10)},
	}

	requireVecInDelta(t, gm.VecOf(50, 50), viewport.Camera().Transform(gm.VecOf(5, 5)))
	requireVecInDelta(t, gm.VecOf(0, 100), viewport.Camera().Transform(gm.VecOf(0, 0)))
}

func TestScalingModes(t *testing.T) {
	cases := []struct {
		name     string
		mode     ScalingMode
		screen   gm.Vec
		expected gm.Vec
	}{
		{"window", ScalingModeWindowSize{}, gm.VecOf(800, 600), gm.VecOf(800, 600)},
		{"fixed", ScalingModeFixed{Visible: gm.VecOf(20, 15)}, gm.VecOf(1600, 600), gm.VecOf(20, 15)},
		{"auto-min wide", ScalingModeAutoMin{Min: gm.VecOf(20, 15)}, gm.VecOf(1600, 600), gm.VecOf(40, 15)},
		{"auto-min tall", ScalingModeAutoMin{Min: gm.VecOf(20, 15)}, gm.VecOf(400, 600), gm.VecOf(20, 30)},
		{"auto-min exact", ScalingModeAutoMin{Min: gm.VecOf(20, 15)}, gm.VecOf(800, 600), gm.VecOf(20, 15)},
		{"auto-max wide", ScalingModeAutoMax{Max: gm.VecOf(20, 15)}, gm.VecOf(1600, 600), gm.VecOf(20, 7.5)},
		{"auto-max tall", ScalingModeAutoMax{Max: gm.VecOf(20, 15)}, gm.VecOf(400, 600), gm.VecOf(10, 15)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			visible := tc.mode.VisibleSize(tc.screen)
			requireVecInDelta(t, tc.expected, visible)

			switch tc.mode.(type) {
			case ScalingModeAutoMin, ScalingModeAutoMax:
				// square pixels
				require.InDelta(t, visible.X/tc.screen.X, visible.Y/tc.screen.Y, 1e-12)
			}
		})
	}
}

func TestViewport_KeepsAspectRatio(t *testing.T) {
	viewport := Viewport{
		Size:        gm.VecOf(1600, 600),
		Domain:      testDomain,
		ScalingMode: ScalingModeAutoMin{Min: gm.VecOf(20, 15)},
	}

	camera := viewport.Camera()

	// 40 pixels per unit on both axes
	requireVecInDelta(t, gm.VecOf(840, 260), camera.Transform(gm.VecOf(1, 1)))
}

func TestScalingModeByName(t *testing.T) {
	for _, name := range []string{"", "fixed", "window", "auto-min", "auto-max"} {
		mode, ok := ScalingModeByName(name, testDomain)
		require.True(t, ok, name)
		require.NotNil(t, mode, name)
	}

	mode, _ := ScalingModeByName("auto-max", testDomain)
	require.Equal(t, ScalingModeAutoMax{Max: gm.VecOf(20, 15)}, mode)

	_, ok := ScalingModeByName("stretch", testDomain)
	require.False(t, ok)
}
