// Package cpgeom converts between chipmunk2d and gm types and lets cp bodies
// drive nodes of a scene.Graph.
package cpgeom

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/bykegraph/gm"
)

func VecFromCP(v cp.Vector) gm.Vec {
	return gm.Vec(v)
}

func ToCP(v gm.VecLike) cp.Vector {
	return cp.Vector(gm.Wrap(v))
}

// BodyAffine returns the transformation from the body's local frame into the
// frame the body lives in.
func BodyAffine(body *cp.Body) *gm.Affine {
	return gm.NewAffine().
		Rotate(gm.Rad(body.Angle())).
		Translate(VecFromCP(body.Position()))
}
