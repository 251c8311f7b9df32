package graphebiten

import (
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/oliverbestmann/bykegraph/internal/set"
	"github.com/oliverbestmann/bykegraph/scene"
)

type EventKind int

const (
	PointerOver EventKind = iota
	PointerOut
	Clicked
)

func (k EventKind) String() string {
	switch k {
	case PointerOver:
		return "PointerOver"
	case PointerOut:
		return "PointerOut"
	case Clicked:
		return "Clicked"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

type Event struct {
	Kind EventKind
	Node scene.NodeId
}

// Picker tracks which nodes are below the pointer and emits events whenever
// that changes.
type Picker struct {
	Graph *scene.Graph

	hovered set.Set[scene.NodeId]
}

func NewPicker(graph *scene.Graph) *Picker {
	return &Picker{Graph: graph}
}

// Hovered returns the nodes that were below the pointer during the last update.
func (p *Picker) Hovered() []scene.NodeId {
	return p.hovered.Sorted()
}

// Update hit tests the pointer, given in camera space. Nodes that are hit for
// the first time receive PointerOver, nodes that are no longer hit receive
// PointerOut. If clicked is set, every node below the pointer receives Clicked,
// top most layer first.
func (p *Picker) Update(pointer gm.Vec, clicked bool) []Event {
	var events []Event

	hits := p.Graph.HitTest(pointer)

	var current set.Set[scene.NodeId]
	for _, hit := range hits {
		current.Insert(hit.Node)
	}

	for id := range p.hovered.Without(current) {
		events = append(events, Event{Kind: PointerOut, Node: id})
	}

	for _, hit := range hits {
		if !p.hovered.Has(hit.Node) {
			events = append(events, Event{Kind: PointerOver, Node: hit.Node})
		}
	}

	if clicked {
		for _, hit := range hits {
			events = append(events, Event{Kind: Clicked, Node: hit.Node})
		}
	}

	if len(events) > 0 {
		slog.Debug("Pointer events", slog.Int("count", len(events)), slog.String("pointer", pointer.String()))
	}

	p.hovered = current

	return events
}

// UpdateFromInput runs Update with the mouse cursor and the left mouse button.
// It must be called from within ebiten's update function.
func (p *Picker) UpdateFromInput() []Event {
	clicked := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	return p.Update(Cursor(), clicked)
}
