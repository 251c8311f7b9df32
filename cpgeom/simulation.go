package cpgeom

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/oliverbestmann/bykegraph/scene"
)

type link struct {
	Node scene.NodeId
	Body *cp.Body
}

// Simulation steps a cp.Space and copies the position and angle of every
// attached body into its node. Bodies live in the frame of their node's parent.
type Simulation struct {
	Space *cp.Space
	Graph *scene.Graph

	links []link
}

func NewSimulation(graph *scene.Graph) *Simulation {
	return &Simulation{
		Space: cp.NewSpace(),
		Graph: graph,
	}
}

func (s *Simulation) SetGravity(gravity gm.VecLike) {
	s.Space.SetGravity(ToCP(gravity))
}

// Attach adds the body to the space and lets it drive the node. The body starts
// at the node's current offset and rotation.
func (s *Simulation) Attach(id scene.NodeId, body *cp.Body) error {
	node, ok := s.Graph.Node(id)
	if !ok {
		return fmt.Errorf("attach body: %w %d", scene.ErrUnknownNode, id)
	}

	s.Space.AddBody(body)

	body.SetPosition(ToCP(node.Offset))
	body.SetAngle(float64(node.Rotation))

	s.links = append(s.links, link{Node: id, Body: body})

	return nil
}

// Len returns the number of attached bodies.
func (s *Simulation) Len() int {
	return len(s.links)
}

// Step advances the simulation by dt seconds and updates all attached nodes.
// Bodies whose node was removed from the graph are removed from the space.
func (s *Simulation) Step(dt float64) {
	s.Space.Step(dt)

	links := s.links[:0]

	for _, l := range s.links {
		if err := s.sync(l); err != nil {
			slog.Warn("Removing body of missing node",
				slog.Int("nodeId", int(l.Node)),
				slog.String("err", err.Error()))

			s.Space.RemoveBody(l.Body)
			continue
		}

		links = append(links, l)
	}

	s.links = links
}

func (s *Simulation) sync(l link) error {
	if err := s.Graph.SetOffset(l.Node, VecFromCP(l.Body.Position())); err != nil {
		return err
	}

	return s.Graph.SetRotation(l.Node, gm.Rad(l.Body.Angle()))
}
