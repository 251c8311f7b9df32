package scene

import (
	"cmp"
	"context"
	"slices"

	"github.com/oliverbestmann/bykegraph/gm"
	"golang.org/x/sync/errgroup"
)

// Hit describes a node whose shape contains the pointer.
type Hit struct {
	Node  NodeId
	Name  string
	Layer int

	// Local is the pointer position in the node's local frame.
	Local gm.Vec
}

type candidate struct {
	Id      NodeId
	Node    Node
	ToLocal *gm.Affine
}

// candidates returns all nodes with a shape, top most layer first. Nodes on the
// same layer keep their insertion order.
func (g *Graph) candidates() []candidate {
	var candidates []candidate

	for _, id := range g.Nodes() {
		node, _ := g.Node(id)
		if node.Shape == nil {
			continue
		}

		toLocal, ok := g.LocalToCamera(id).TryInverse()
		if !ok {
			// the node was scaled down to nothing
			continue
		}

		candidates = append(candidates, candidate{
			Id:      id,
			Node:    node,
			ToLocal: toLocal,
		})
	}

	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.Node.Layer, a.Node.Layer)
	})

	return candidates
}

func hitTest(candidates []candidate, pointer gm.Vec) []Hit {
	var hits []Hit

	for _, c := range candidates {
		// transform pointer position into the local space of the node
		pos := c.ToLocal.Transform(pointer)

		if c.Node.Shape.Contains(pos) {
			hits = append(hits, Hit{
				Node:  c.Id,
				Name:  c.Node.Name,
				Layer: c.Node.Layer,
				Local: pos,
			})
		}
	}

	return hits
}

// HitTest returns all nodes whose shape contains the pointer, top most layer
// first. The pointer is given in camera space. Nodes with a singular
// transformation can not be hit.
func (g *Graph) HitTest(pointer gm.VecLike) []Hit {
	return hitTest(g.candidates(), gm.Wrap(pointer))
}

// HitTestAll runs HitTest for every pointer using up to workers goroutines.
// The result holds the hits of pointers[idx] at index idx.
func (g *Graph) HitTestAll(ctx context.Context, pointers []gm.Vec, workers int) ([][]Hit, error) {
	candidates := g.candidates()

	results := make([][]Hit, len(pointers))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(workers, 1))

	for idx, pointer := range pointers {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			results[idx] = hitTest(candidates, pointer)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
