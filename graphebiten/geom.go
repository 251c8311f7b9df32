// Package graphebiten connects a scene.Graph to ebiten: transforms convert to
// and from ebiten.GeoM, and the mouse cursor can be used as a pointer.
package graphebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/oliverbestmann/bykegraph/scene"
)

// ToGeoM converts the transformation into an ebiten.GeoM.
func ToGeoM(m *gm.Affine) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.C)
	g.SetElement(0, 2, m.Tx)
	g.SetElement(1, 0, m.B)
	g.SetElement(1, 1, m.D)
	g.SetElement(1, 2, m.Ty)
	return g
}

// AffineFromGeoM converts an ebiten.GeoM into a transformation.
func AffineFromGeoM(g ebiten.GeoM) *gm.Affine {
	return gm.AffineOf(
		g.Element(0, 0),
		g.Element(1, 0),
		g.Element(0, 1),
		g.Element(1, 1),
		g.Element(0, 2),
		g.Element(1, 2),
	)
}

// NodeGeoM returns the GeoM to draw something given in the local frame of
// the node onto the screen.
func NodeGeoM(graph *scene.Graph, id scene.NodeId) ebiten.GeoM {
	return ToGeoM(graph.LocalToCamera(id))
}

// ScreenToLocal transforms a screen position into the local frame of the node.
// The result is not valid if the node can not be inverted, e.g. if it was
// scaled to zero.
func ScreenToLocal(graph *scene.Graph, id scene.NodeId, x, y int) (gm.Vec, bool) {
	toLocal, ok := graph.LocalToCamera(id).TryInverse()
	if !ok {
		return gm.Vec{}, false
	}

	return toLocal.Transform(gm.VecOf(float64(x), float64(y))), true
}

// Cursor returns the current position of the mouse cursor in screen space.
func Cursor() gm.Vec {
	x, y := ebiten.CursorPosition()
	return gm.VecOf(float64(x), float64(y))
}

// CursorLocal returns the current mouse cursor position in the local frame of
// the node.
func CursorLocal(graph *scene.Graph, id scene.NodeId) (gm.Vec, bool) {
	x, y := ebiten.CursorPosition()
	return ScreenToLocal(graph, id, x, y)
}
