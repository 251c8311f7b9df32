package scene

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/oliverbestmann/bykegraph/gm"
	"gopkg.in/yaml.v3"
)

// Document is the serialized form of a scene.
type Document struct {
	Viewport *ViewportConfig `yaml:"viewport"`
	Nodes    []NodeConfig    `yaml:"nodes"`
}

type ViewportConfig struct {
	Size   Vec    `yaml:"size"`
	Domain struct {
		X Vec `yaml:"x"`
		Y Vec `yaml:"y"`
	} `yaml:"domain"`
	Mode string `yaml:"mode"`
}

type NodeConfig struct {
	Name   string `yaml:"name"`
	Parent string `yaml:"parent,omitempty"`
	Offset *Vec   `yaml:"offset,omitempty"`

	// Rotation in degrees
	Rotation float64 `yaml:"rotation,omitempty"`

	Scale *Vec         `yaml:"scale,omitempty"`
	Layer int          `yaml:"layer,omitempty"`
	Shape *ShapeConfig `yaml:"shape,omitempty"`
}

type ShapeConfig struct {
	Type string `yaml:"type"`

	Center   Vec     `yaml:"center,omitempty"`
	Radius   float64 `yaml:"radius,omitempty"`
	Radii    Vec     `yaml:"radii,omitempty"`
	Size     Vec     `yaml:"size,omitempty"`
	Vertices []Vec   `yaml:"vertices,omitempty"`

	// sector and angle: apex B, rays towards A and C
	A Vec `yaml:"a,omitempty"`
	B Vec `yaml:"b,omitempty"`
	C Vec `yaml:"c,omitempty"`

	// arc angles in degrees
	From float64 `yaml:"from,omitempty"`
	To   float64 `yaml:"to,omitempty"`

	Tolerance float64 `yaml:"tolerance,omitempty"`
}

// Vec decodes any vector like yaml value: a scalar, a two element sequence or
// a mapping with x/y or width/height keys.
type Vec struct {
	gm.Vec
}

func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	var like gm.VecLike

	switch node.Kind {
	case yaml.ScalarNode:
		var value float64
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("line %d: %w: %w", node.Line, ErrInvalidVec, err)
		}

		like = gm.Splat(value)

	case yaml.SequenceNode:
		var values []float64
		if err := node.Decode(&values); err != nil {
			return fmt.Errorf("line %d: %w: %w", node.Line, ErrInvalidVec, err)
		}

		if len(values) != 2 {
			return fmt.Errorf("line %d: %w: expected 2 values, got %d", node.Line, ErrInvalidVec, len(values))
		}

		like = gm.Pair{values[0], values[1]}

	case yaml.MappingNode:
		var fields gm.Fields
		if err := node.Decode(&fields); err != nil {
			return fmt.Errorf("line %d: %w: %w", node.Line, ErrInvalidVec, err)
		}

		if !hasAny(fields, "x", "width") || !hasAny(fields, "y", "height") {
			return fmt.Errorf("line %d: %w: need x/y or width/height", node.Line, ErrInvalidVec)
		}

		like = fields

	default:
		return fmt.Errorf("line %d: %w", node.Line, ErrInvalidVec)
	}

	v.Vec = gm.Wrap(like)
	return nil
}

func (v Vec) MarshalYAML() (any, error) {
	return []float64{v.X, v.Y}, nil
}

func hasAny(fields gm.Fields, keys ...string) bool {
	for _, key := range keys {
		if _, ok := fields[key]; ok {
			return true
		}
	}

	return false
}

// LoadFile loads a scene from a yaml file.
func LoadFile(path string) (*Graph, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}

	defer fp.Close()

	return Load(fp)
}

// Load decodes a yaml Document and builds the Graph described by it.
func Load(r io.Reader) (*Graph, error) {
	startTime := time.Now()

	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}

	graph, err := doc.Build()
	if err != nil {
		return nil, err
	}

	slog.Debug("Loaded scene",
		slog.Int("nodes", graph.Len()),
		slog.Duration("duration", time.Since(startTime)))

	return graph, nil
}

// DecodeFile decodes the Document stored in a yaml file.
func DecodeFile(path string) (*Document, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}

	defer fp.Close()

	return Decode(fp)
}

// Decode decodes a yaml Document. Empty input yields an empty Document.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}

		return nil, fmt.Errorf("decode scene: %w", err)
	}

	return &doc, nil
}

// Build creates the Graph described by the document.
func (doc *Document) Build() (*Graph, error) {
	graph := NewGraph()

	if doc.Viewport != nil {
		viewport, err := doc.Viewport.Build()
		if err != nil {
			return nil, err
		}

		graph.SetCamera(viewport.Camera())
	}

	for idx, config := range doc.Nodes {
		node, err := config.Build(graph)
		if err != nil {
			return nil, fmt.Errorf("node %d (%q): %w", idx, config.Name, err)
		}

		if _, err := graph.Add(node); err != nil {
			return nil, err
		}
	}

	return graph, nil
}

func (c *ViewportConfig) Build() (Viewport, error) {
	domain := Domain{X: c.Domain.X.Vec, Y: c.Domain.Y.Vec}

	size := domain.Size()
	if c.Size.X <= 0 || c.Size.Y <= 0 || size.X <= 0 || size.Y <= 0 {
		return Viewport{}, fmt.Errorf("viewport: %w: size %s, domain %s", ErrInvalidViewport, c.Size.Vec, size)
	}

	mode, ok := ScalingModeByName(c.Mode, domain)
	if !ok {
		return Viewport{}, fmt.Errorf("viewport: %w %q", ErrInvalidScaling, c.Mode)
	}

	viewport := Viewport{
		Size:        c.Size.Vec,
		Domain:      domain,
		ScalingMode: mode,
	}

	return viewport, nil
}

func (c *NodeConfig) Build(graph *Graph) (Node, error) {
	node := NewNode(c.Name).
		WithRotation(gm.DegToRad(c.Rotation)).
		WithLayer(c.Layer)

	if c.Parent != "" {
		parent, ok := graph.Lookup(c.Parent)
		if !ok {
			return Node{}, fmt.Errorf("%w %q", ErrUnknownParent, c.Parent)
		}

		node = node.WithParent(parent)
	}

	if c.Offset != nil {
		node = node.WithOffset(c.Offset.Vec)
	}

	if c.Scale != nil {
		node = node.WithScale(c.Scale.Vec)
	}

	if c.Shape != nil {
		shape, err := c.Shape.Build()
		if err != nil {
			return Node{}, err
		}

		node = node.WithShape(shape)
	}

	return node, nil
}

func (c *ShapeConfig) Build() (Shape, error) {
	switch c.Type {
	case "point":
		return Point{Position: c.Center.Vec, Radius: c.Radius}, nil

	case "circle":
		return Circle{Center: c.Center.Vec, Radius: c.Radius}, nil

	case "ellipse":
		return Ellipse{Center: c.Center.Vec, Radii: c.Radii.Vec}, nil

	case "rectangle":
		return Rectangle{Center: c.Center.Vec, Size: c.Size.Vec}, nil

	case "polygon":
		return Polygon{Vertices: vecsOf(c.Vertices)}, nil

	case "sector", "angle":
		return Sector{A: c.A.Vec, B: c.B.Vec, C: c.C.Vec, Radius: c.Radius}, nil

	case "segment", "line", "vector":
		if len(c.Vertices) == 2 {
			return Segment{A: c.Vertices[0].Vec, B: c.Vertices[1].Vec, Tolerance: c.Tolerance}, nil
		}

		return Segment{A: c.A.Vec, B: c.B.Vec, Tolerance: c.Tolerance}, nil

	case "polyline", "plot":
		return Polyline{Vertices: vecsOf(c.Vertices), Tolerance: c.Tolerance}, nil

	case "arc":
		return Arc{
			Center:    c.Center.Vec,
			From:      gm.DegToRad(c.From),
			To:        gm.DegToRad(c.To),
			Radius:    c.Radius,
			Tolerance: c.Tolerance,
		}, nil

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownShape, c.Type)
	}
}

func vecsOf(values []Vec) []gm.Vec {
	vecs := make([]gm.Vec, len(values))
	for idx, value := range values {
		vecs[idx] = value.Vec
	}

	return vecs
}
