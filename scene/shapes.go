package scene

import (
	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/oliverbestmann/bykegraph/hit"
)

// Shape is the hit area of a node, given in the node's local frame.
type Shape interface {
	Contains(point gm.Vec) bool
}

// Point is a point marker that can be hit within Radius.
type Point struct {
	Position gm.Vec
	Radius   float64
}

func (s Point) Contains(point gm.Vec) bool {
	return hit.PointInsideCircle(s.Position, s.Radius, point)
}

type Circle struct {
	Center gm.Vec
	Radius float64
}

func (s Circle) Contains(point gm.Vec) bool {
	return hit.PointInsideCircle(s.Center, s.Radius, point)
}

type Ellipse struct {
	Center gm.Vec
	Radii  gm.Vec
}

func (s Ellipse) Contains(point gm.Vec) bool {
	return hit.PointInsideEllipse(s.Center, s.Radii, point)
}

type Rectangle struct {
	Center gm.Vec
	Size   gm.Vec
}

func (s Rectangle) Contains(point gm.Vec) bool {
	return hit.PointInsideRectangle(s.Center, s.Size, point)
}

type Polygon struct {
	Vertices []gm.Vec
}

func (s Polygon) Contains(point gm.Vec) bool {
	return hit.PointInsidePolygon(s.Vertices, point)
}

// Sector is the circular sector around B, spanning clockwise from the ray B→A
// to the ray B→C. It is used for sectors and angle markers.
type Sector struct {
	A, B, C gm.Vec
	Radius  float64
}

func (s Sector) Contains(point gm.Vec) bool {
	return hit.PointInsideSector(s.A, s.B, s.C, s.Radius, point)
}

// Segment is a line or vector from A to B. It is hit within Tolerance.
type Segment struct {
	A, B      gm.Vec
	Tolerance float64
}

func (s Segment) Contains(point gm.Vec) bool {
	return hit.DistanceToLineSegment(s.A, s.B, point) <= s.Tolerance
}

// Polyline is an open line through all vertices. It is hit within Tolerance.
type Polyline struct {
	Vertices  []gm.Vec
	Tolerance float64
}

func (s Polyline) Contains(point gm.Vec) bool {
	return hit.DistanceToPolyline(s.Vertices, point) <= s.Tolerance
}

// Arc is the part of a circle between From and To. It is hit within Tolerance.
type Arc struct {
	Center    gm.Vec
	From, To  gm.Rad
	Radius    float64
	Tolerance float64
}

func (s Arc) Contains(point gm.Vec) bool {
	return hit.DistanceToArc(s.Center, s.From, s.To, s.Radius, point) <= s.Tolerance
}

// FunctionPlot samples fn at evenly spaced x values in [from, to] and returns
// the resulting polyline. At least two samples are taken.
func FunctionPlot(fn func(x float64) float64, from, to float64, samples int, tolerance float64) Polyline {
	samples = max(samples, 2)

	vertices := make([]gm.Vec, 0, samples)
	for idx := range samples {
		x := from + (to-from)*float64(idx)/float64(samples-1)
		vertices = append(vertices, gm.VecOf(x, fn(x)))
	}

	return Polyline{Vertices: vertices, Tolerance: tolerance}
}
