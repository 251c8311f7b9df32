// Package hit answers spatial queries of the form "is point p inside or near
// shape s". Shapes are not stored anywhere, each function receives the raw
// shape parameters.
//
// The functions never fail. Degenerate shapes are handled where it is cheap
// (zero length segments, polygons with less than three vertices), everything
// else follows IEEE 754: an ellipse with a zero radius divides by zero.
package hit

import (
	"math"

	"github.com/oliverbestmann/bykegraph/gm"
)

// PointInsideCircle reports whether point is within radius of center,
// the boundary included.
func PointInsideCircle(center gm.VecLike, radius float64, point gm.VecLike) bool {
	return gm.Wrap(center).DistanceTo(point) <= radius
}

// PointInsideEllipse reports whether point is inside the axis aligned ellipse
// with the given radii. A zero radius yields an undefined result.
func PointInsideEllipse(center gm.VecLike, radii gm.VecLike, point gm.VecLike) bool {
	d := gm.Wrap(point).Sub(center).Div(radii)
	return d.LengthSqr() <= 1
}

// PointInsideRectangle reports whether point is inside the axis aligned
// rectangle of the given size centered at center, the boundary included.
func PointInsideRectangle(center gm.VecLike, size gm.VecLike, point gm.VecLike) bool {
	rect := gm.RectWithCenterAndSize(gm.Wrap(center), gm.Wrap(size))
	return rect.Contains(gm.Wrap(point))
}

// PointInsideSector reports whether point lies in the circular sector with
// apex b, bounded by the rays b→a and b→c. The sector covers the clockwise
// turn from b→a to b→c, which may be more than half a circle. The point must be
// strictly closer to b than radius.
func PointInsideSector(a, b, c gm.VecLike, radius float64, point gm.VecLike) bool {
	apex := gm.Wrap(b)
	p := gm.Wrap(point)

	if p.DistanceTo(apex) >= radius {
		return false
	}

	bToA := gm.Wrap(a).Sub(apex)
	bToC := gm.Wrap(c).Sub(apex)
	bToPoint := p.Sub(apex)

	totalAngle := bToA.ClockwiseAngleTo(bToC)
	angleToPoint := bToA.ClockwiseAngleTo(bToPoint)

	return angleToPoint >= 0 && angleToPoint <= totalAngle
}

// PointInsidePolygon reports whether point is inside the polygon using the
// even-odd rule. The polygon is closed implicitly and may be given in either
// winding order. Polygons with less than three vertices contain no points.
func PointInsidePolygon[V gm.VecLike](vertices []V, point gm.VecLike) bool {
	if len(vertices) < 3 {
		return false
	}

	p := gm.Wrap(point)

	var inside bool

	// cast a ray from p towards +x and count the edges it crosses
	for i, j := 0, len(vertices)-1; i < len(vertices); j, i = i, i+1 {
		a := gm.Wrap(vertices[i])
		b := gm.Wrap(vertices[j])

		if (a.Y > p.Y) != (b.Y > p.Y) {
			crossX := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < crossX {
				inside = !inside
			}
		}
	}

	return inside
}

// DistanceToLineSegment returns the shortest distance between point and any
// point on the segment from a to b. A segment with a == b is treated as a point.
func DistanceToLineSegment(a, b gm.VecLike, point gm.VecLike) float64 {
	start := gm.Wrap(a)
	p := gm.Wrap(point)

	segment := gm.Wrap(b).Sub(start)

	lengthSqr := segment.LengthSqr()
	if lengthSqr == 0 {
		return p.DistanceTo(start)
	}

	t := p.Sub(start).Dot(segment) / lengthSqr
	t = max(0, min(1, t))

	projection := start.Add(segment.Scale(t))
	return p.DistanceTo(projection)
}

// DistanceToPolyline returns the shortest distance between point and the open
// polyline through the given vertices. A single vertex is treated as a point,
// no vertices at all result in +Inf.
func DistanceToPolyline[V gm.VecLike](vertices []V, point gm.VecLike) float64 {
	switch len(vertices) {
	case 0:
		return math.Inf(1)
	case 1:
		return gm.Wrap(point).DistanceTo(vertices[0])
	}

	distance := math.Inf(1)
	for idx := 1; idx < len(vertices); idx++ {
		distance = min(distance, DistanceToLineSegment(vertices[idx-1], vertices[idx], point))
	}

	return distance
}

// DistanceToArc returns the distance between point and the arc of the circle
// around center with the given radius, spanning from fromAngle to toAngle in
// the direction of increasing angles. The arc may wrap around zero.
//
// If the direction from center to point lies within the arc, the distance to
// the arc point in that direction is returned. Otherwise the distance to the
// angularly closer end point is returned. If both end points are equally
// close, fromAngle wins.
func DistanceToArc(center gm.VecLike, fromAngle, toAngle gm.Rad, radius float64, point gm.VecLike) float64 {
	c := gm.Wrap(center)
	p := gm.Wrap(point)

	angleToPoint := p.Sub(c).Angle()

	angle := angleToPoint
	if !angleToPoint.IsBetween(fromAngle, toAngle) {
		angle = closestAngle(angleToPoint, fromAngle, toAngle)
	}

	pointOnArc := c.Add(gm.VecFromPolar(angle, radius))
	return p.DistanceTo(pointOnArc)
}

func closestAngle(angle, alpha, beta gm.Rad) gm.Rad {
	if angle.CircularDistance(alpha) <= angle.CircularDistance(beta) {
		return alpha
	}

	return beta
}
