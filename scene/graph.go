package scene

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/bykegraph/gm"
)

var (
	ErrUnknownParent  = errors.New("unknown parent")
	ErrUnknownNode    = errors.New("unknown node")
	ErrDuplicateName  = errors.New("duplicate node name")
	ErrUnknownShape   = errors.New("unknown shape type")
	ErrInvalidVec     = errors.New("invalid vector")
	ErrInvalidScaling = errors.New("invalid scaling mode")

	ErrInvalidViewport = errors.New("viewport and domain must have a positive size")
)

// NodeId is the index of a node within its Graph.
type NodeId int

// NoParent is the parent of root nodes.
const NoParent NodeId = -1

// Node is a coordinate frame in the scene. Its local transform scales first,
// then rotates and finally moves by Offset, all relative to the parent frame.
type Node struct {
	Name     string
	Parent   NodeId
	Offset   gm.Vec
	Rotation gm.Rad
	Scale    gm.Vec

	// Nodes on a higher layer are hit first.
	Layer int

	// Shape is optional, nodes without a shape only group their children.
	Shape Shape
}

// NewNode returns a root node with unit scale.
func NewNode(name string) Node {
	return Node{
		Name:   name,
		Parent: NoParent,
		Scale:  gm.VecOne,
	}
}

func (n Node) WithParent(parent NodeId) Node {
	n.Parent = parent
	return n
}

func (n Node) WithOffset(offset gm.VecLike) Node {
	n.Offset = gm.Wrap(offset)
	return n
}

func (n Node) WithRotation(rotation gm.Rad) Node {
	n.Rotation = rotation
	return n
}

func (n Node) WithScale(scale gm.VecLike) Node {
	n.Scale = gm.Wrap(scale)
	return n
}

func (n Node) WithLayer(layer int) Node {
	n.Layer = layer
	return n
}

func (n Node) WithShape(shape Shape) Node {
	n.Shape = shape
	return n
}

// Local returns the transformation from the node's frame into its parent's frame.
func (n Node) Local() *gm.Affine {
	return gm.NewAffine().
		Scale(n.Scale).
		Rotate(n.Rotation).
		Translate(n.Offset)
}

type slot struct {
	Node
	removed bool
}

// Graph is an arena of nodes. Nodes refer to their parent by index, and a
// parent must be added before its children, so the hierarchy can not contain
// cycles.
//
// World and camera transforms are not stored, they are derived from the chain
// of parents whenever they are requested. Changing the offset of a node is thus
// immediately visible in all of its descendants.
//
// A Graph may be read from multiple goroutines, but must not be modified
// concurrently.
type Graph struct {
	slots  []slot
	names  map[string]NodeId
	camera gm.Affine
}

func NewGraph() *Graph {
	return &Graph{
		names:  map[string]NodeId{},
		camera: *gm.NewAffine(),
	}
}

// Add adds a node to the graph and returns its id.
func (g *Graph) Add(node Node) (NodeId, error) {
	if node.Parent != NoParent {
		if _, ok := g.alive(node.Parent); !ok {
			return 0, fmt.Errorf("add %q: %w %d", node.Name, ErrUnknownParent, node.Parent)
		}
	}

	if node.Name != "" {
		if _, exists := g.names[node.Name]; exists {
			return 0, fmt.Errorf("add %q: %w", node.Name, ErrDuplicateName)
		}
	}

	id := NodeId(len(g.slots))
	g.slots = append(g.slots, slot{Node: node})

	if node.Name != "" {
		g.names[node.Name] = id
	}

	return id, nil
}

// Remove removes a node from the graph. Children of the node are not removed.
// They keep their reference to the removed parent and are treated as roots.
func (g *Graph) Remove(id NodeId) error {
	s, ok := g.alive(id)
	if !ok {
		return fmt.Errorf("remove %d: %w", id, ErrUnknownNode)
	}

	s.removed = true
	delete(g.names, s.Name)

	return nil
}

// Len returns the number of ids handed out, including removed nodes.
func (g *Graph) Len() int {
	return len(g.slots)
}

func (g *Graph) Node(id NodeId) (Node, bool) {
	s, ok := g.alive(id)
	if !ok {
		return Node{}, false
	}

	return s.Node, true
}

// Lookup returns the id of the node with the given name.
func (g *Graph) Lookup(name string) (NodeId, bool) {
	id, ok := g.names[name]
	return id, ok
}

// Nodes returns the ids of all nodes that were not removed, in insertion order.
func (g *Graph) Nodes() []NodeId {
	var ids []NodeId
	for idx := range g.slots {
		if !g.slots[idx].removed {
			ids = append(ids, NodeId(idx))
		}
	}

	return ids
}

func (g *Graph) SetOffset(id NodeId, offset gm.VecLike) error {
	return g.update(id, func(n *Node) { n.Offset = gm.Wrap(offset) })
}

func (g *Graph) SetRotation(id NodeId, rotation gm.Rad) error {
	return g.update(id, func(n *Node) { n.Rotation = rotation })
}

func (g *Graph) SetScale(id NodeId, scale gm.VecLike) error {
	return g.update(id, func(n *Node) { n.Scale = gm.Wrap(scale) })
}

func (g *Graph) SetShape(id NodeId, shape Shape) error {
	return g.update(id, func(n *Node) { n.Shape = shape })
}

func (g *Graph) update(id NodeId, fn func(n *Node)) error {
	s, ok := g.alive(id)
	if !ok {
		return fmt.Errorf("update %d: %w", id, ErrUnknownNode)
	}

	fn(&s.Node)
	return nil
}

// Camera returns a copy of the transformation from world into camera space.
func (g *Graph) Camera() *gm.Affine {
	return g.camera.Clone()
}

// SetCamera sets the transformation from world into camera space.
func (g *Graph) SetCamera(camera gm.AffineLike) {
	g.camera = *gm.AffineFrom(camera)
}

// LocalToWorld returns the transformation from the node's frame into world space.
// An unknown node yields the identity.
func (g *Graph) LocalToWorld(id NodeId) *gm.Affine {
	s, ok := g.alive(id)
	if !ok {
		return gm.NewAffine()
	}

	return s.Local().Multiply(g.ParentToWorld(id))
}

// ParentToWorld returns the transformation from the frame of the node's parent
// into world space. This is the identity for root nodes.
func (g *Graph) ParentToWorld(id NodeId) *gm.Affine {
	world := gm.NewAffine()

	s, ok := g.alive(id)
	if !ok {
		return world
	}

	for parentId := s.Parent; parentId != NoParent; {
		parent, ok := g.alive(parentId)
		if !ok {
			slog.Warn("Transform hierarchy broken, missing parent",
				slog.Int("nodeId", int(id)),
				slog.Int("parentId", int(parentId)))

			break
		}

		world.Multiply(parent.Local())
		parentId = parent.Parent
	}

	return world
}

// LocalToCamera returns the transformation from the node's frame into camera space.
func (g *Graph) LocalToCamera(id NodeId) *gm.Affine {
	return g.LocalToWorld(id).Multiply(&g.camera)
}

// ParentToCamera returns the transformation from the frame of the node's parent
// into camera space.
func (g *Graph) ParentToCamera(id NodeId) *gm.Affine {
	return g.ParentToWorld(id).Multiply(&g.camera)
}

// WorldPosition returns the position of the node's origin in world space.
func (g *Graph) WorldPosition(id NodeId) gm.Vec {
	return g.LocalToWorld(id).Transform(gm.VecZero)
}

// CameraPosition returns the position of the node's origin in camera space.
func (g *Graph) CameraPosition(id NodeId) gm.Vec {
	s, ok := g.alive(id)
	if !ok {
		return g.camera.Transform(gm.VecZero)
	}

	return s.Offset.Transform(g.ParentToCamera(id))
}

func (g *Graph) alive(id NodeId) (*slot, bool) {
	if id < 0 || int(id) >= len(g.slots) {
		return nil, false
	}

	s := &g.slots[id]
	if s.removed {
		return nil, false
	}

	return s, true
}
