package scene

import (
	"github.com/oliverbestmann/bykegraph/gm"
)

// Domain is the visible range of graph coordinates. X and Y each hold a
// (min, max) pair.
type Domain struct {
	X, Y gm.Vec
}

// Rect returns the domain as a rectangle. A reversed range is kept as is and
// yields a negative size.
func (d Domain) Rect() gm.Rect {
	return gm.Rect{
		Min: gm.VecOf(d.X.X, d.Y.X),
		Max: gm.VecOf(d.X.Y, d.Y.Y),
	}
}

func (d Domain) Size() gm.Vec {
	return d.Rect().Size()
}

func (d Domain) Center() gm.Vec {
	return d.Rect().Center()
}

// Contains reports whether the point lies within the domain, the boundary included.
func (d Domain) Contains(p gm.Vec) bool {
	return d.Rect().Contains(p)
}

// Viewport maps the graph domain onto a screen of Size pixels. The domain
// center is placed at the screen center, and the y-axis is flipped so that
// it points up on screen.
type Viewport struct {
	Size   gm.Vec
	Domain Domain

	// ScalingMode decides how many graph units are visible. If nil, the
	// domain is stretched onto the screen.
	ScalingMode ScalingMode
}

// VisibleSize returns the size of the visible area in graph units.
func (v Viewport) VisibleSize() gm.Vec {
	mode := v.ScalingMode
	if mode == nil {
		mode = ScalingModeFixed{Visible: v.Domain.Size()}
	}

	return mode.VisibleSize(v.Size)
}

// Camera returns the transformation from graph coordinates into screen pixels.
func (v Viewport) Camera() *gm.Affine {
	scale := v.Size.Div(v.VisibleSize())

	toScreen := gm.AffineOf(scale.X, 0, 0, -scale.Y, v.Size.X/2, v.Size.Y/2)

	return gm.NewAffine().
		Translate(v.Domain.Center().Negate()).
		Multiply(toScreen)
}

// ScreenToGraph converts a position in screen pixels into graph coordinates.
func (v Viewport) ScreenToGraph(screen gm.Vec) gm.Vec {
	return v.Camera().Inverse().Transform(screen)
}

// ScalingMode decides how many graph units are visible on a screen of the
// given size in pixels.
type ScalingMode interface {
	VisibleSize(screen gm.Vec) gm.Vec
}

// ScalingModeWindowSize shows one graph unit per pixel.
type ScalingModeWindowSize struct{}

func (s ScalingModeWindowSize) VisibleSize(screen gm.Vec) gm.Vec {
	return screen
}

// ScalingModeFixed stretches Visible onto the screen. Pixels are not square
// unless the screen has the aspect ratio of Visible.
type ScalingModeFixed struct {
	Visible gm.Vec
}

func (s ScalingModeFixed) VisibleSize(screen gm.Vec) gm.Vec {
	return s.Visible
}

// ScalingModeAutoMin keeps pixels square and shows at least Min graph units
// on both axes. The axis with spare pixels shows more.
type ScalingModeAutoMin struct {
	Min gm.Vec
}

func (s ScalingModeAutoMin) VisibleSize(screen gm.Vec) gm.Vec {
	unitsPerPixel := s.Min.Div(screen)
	return screen.Scale(max(unitsPerPixel.X, unitsPerPixel.Y))
}

// ScalingModeAutoMax keeps pixels square and shows at most Max graph units
// on both axes. The axis with too few pixels is cropped.
type ScalingModeAutoMax struct {
	Max gm.Vec
}

func (s ScalingModeAutoMax) VisibleSize(screen gm.Vec) gm.Vec {
	unitsPerPixel := s.Max.Div(screen)
	return screen.Scale(min(unitsPerPixel.X, unitsPerPixel.Y))
}

// ScalingModeByName returns the scaling mode for a viewport of the given domain.
// Valid names are "fixed", "window", "auto-min" and "auto-max". The empty
// name selects "fixed".
func ScalingModeByName(name string, domain Domain) (ScalingMode, bool) {
	size := domain.Size()

	switch name {
	case "", "fixed":
		return ScalingModeFixed{Visible: size}, true
	case "window":
		return ScalingModeWindowSize{}, true
	case "auto-min":
		return ScalingModeAutoMin{Min: size}, true
	case "auto-max":
		return ScalingModeAutoMax{Max: size}, true
	default:
		return nil, false
	}
}
