package graphebiten

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/oliverbestmann/bykegraph/scene"
)

// number of line segments used to approximate a full circle
const circleSegments = 64

// Outline returns the outline of the shape as a set of polylines in the
// shape's local frame. Closed outlines repeat their first vertex at the end.
func Outline(shape scene.Shape) [][]gm.Vec {
	switch shape := shape.(type) {
	case scene.Point:
		return [][]gm.Vec{ellipse(shape.Position, gm.VecSplat(shape.Radius))}

	case scene.Circle:
		return [][]gm.Vec{ellipse(shape.Center, gm.VecSplat(shape.Radius))}

	case scene.Ellipse:
		return [][]gm.Vec{ellipse(shape.Center, shape.Radii)}

	case scene.Rectangle:
		rect := gm.RectWithCenterAndSize(shape.Center, shape.Size)
		return [][]gm.Vec{closed([]gm.Vec{rect.Min, rect.TopRight(), rect.Max, rect.BottomLeft()})}

	case scene.Polygon:
		return [][]gm.Vec{closed(shape.Vertices)}

	case scene.Sector:
		bToA := shape.A.Sub(shape.B)
		sweep := bToA.ClockwiseAngleTo(shape.C.Sub(shape.B))

		// clockwise is a decreasing angle
		points := []gm.Vec{shape.B}
		points = append(points, arc(shape.B, shape.Radius, bToA.Angle(), -sweep)...)
		return [][]gm.Vec{closed(points)}

	case scene.Segment:
		return [][]gm.Vec{{shape.A, shape.B}}

	case scene.Polyline:
		return [][]gm.Vec{shape.Vertices}

	case scene.Arc:
		sweep := (shape.To - shape.From).Positive()
		if sweep == 0 {
			sweep = gm.Tau
		}

		return [][]gm.Vec{arc(shape.Center, shape.Radius, shape.From, sweep)}

	default:
		return nil
	}
}

func ellipse(center gm.Vec, radii gm.Vec) []gm.Vec {
	points := make([]gm.Vec, 0, circleSegments+1)
	for idx := range circleSegments + 1 {
		angle := gm.Rad(gm.Tau * float64(idx) / circleSegments)
		points = append(points, center.Add(gm.VecFromAngle(angle).Mul(radii)))
	}

	return points
}

func arc(center gm.Vec, radius float64, start, sweep gm.Rad) []gm.Vec {
	steps := max(2, int(circleSegments*math.Abs(float64(sweep))/gm.Tau))

	points := make([]gm.Vec, 0, steps+1)
	for idx := range steps + 1 {
		angle := start + sweep*gm.Rad(idx)/gm.Rad(steps)
		points = append(points, center.Add(gm.VecFromPolar(angle, radius)))
	}

	return points
}

func closed(points []gm.Vec) []gm.Vec {
	if len(points) == 0 {
		return nil
	}

	return append(points[:len(points):len(points)], points[0])
}

// DrawNode strokes the outline of the node's shape onto dst.
func DrawNode(dst *ebiten.Image, graph *scene.Graph, id scene.NodeId, clr color.Color, width float32) {
	node, ok := graph.Node(id)
	if !ok || node.Shape == nil {
		return
	}

	toScreen := graph.LocalToCamera(id)

	for _, line := range Outline(node.Shape) {
		for idx := 1; idx < len(line); idx++ {
			a := toScreen.Transform(line[idx-1])
			b := toScreen.Transform(line[idx])

			vector.StrokeLine(dst,
				float32(a.X), float32(a.Y),
				float32(b.X), float32(b.Y),
				width, clr, true)
		}
	}
}
