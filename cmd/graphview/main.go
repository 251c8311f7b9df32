package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/oliverbestmann/bykegraph/graphebiten"
	"github.com/oliverbestmann/bykegraph/internal/config"
	"github.com/oliverbestmann/bykegraph/internal/observability"
	"github.com/oliverbestmann/bykegraph/scene"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	colorShape    = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	colorHover    = color.RGBA{R: 0x20, G: 0x70, B: 0xe0, A: 0xff}
	colorSelected = color.RGBA{R: 0xe0, G: 0x30, B: 0x30, A: 0xff}
)

func main() {
	var withProfile bool

	cmd := &cobra.Command{
		Use:   "graphview scene.yaml",
		Short: "Show a scene and highlight the nodes below the mouse cursor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if withProfile {
				defer profile.Start(profile.CPUProfile).Stop()
			}

			observability.InitializeLogger(config.LoggerConfig{
				Level:       "info",
				Format:      "console",
				ServiceName: "graphview",
			})

			defer observability.Sync()

			return run(args[0])
		},
	}

	cmd.Flags().BoolVar(&withProfile, "profile", false, "write a cpu profile")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	doc, err := scene.DecodeFile(path)
	if err != nil {
		return err
	}

	graph, err := doc.Build()
	if err != nil {
		return err
	}

	size := gm.VecOf(800, 600)
	if doc.Viewport != nil {
		size = doc.Viewport.Size.Vec
	}

	v := &viewer{
		graph:    graph,
		picker:   graphebiten.NewPicker(graph),
		size:     size,
		selected: map[scene.NodeId]bool{},
	}

	ebiten.SetWindowSize(int(size.X), int(size.Y))
	ebiten.SetWindowTitle("graphview - " + path)

	return ebiten.RunGame(v)
}

type viewer struct {
	graph    *scene.Graph
	picker   *graphebiten.Picker
	size     gm.Vec
	selected map[scene.NodeId]bool
}

func (v *viewer) Update() error {
	for _, event := range v.picker.UpdateFromInput() {
		if event.Kind != graphebiten.Clicked {
			continue
		}

		v.selected[event.Node] = !v.selected[event.Node]

		node, _ := v.graph.Node(event.Node)
		slog.Info("Node clicked",
			slog.Int("nodeId", int(event.Node)),
			slog.String("name", node.Name),
			slog.Bool("selected", v.selected[event.Node]))
	}

	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	hovered := map[scene.NodeId]bool{}
	for _, id := range v.picker.Hovered() {
		hovered[id] = true
	}

	for _, id := range v.graph.Nodes() {
		clr := colorShape

		switch {
		case v.selected[id]:
			clr = colorSelected
		case hovered[id]:
			clr = colorHover
		}

		graphebiten.DrawNode(screen, v.graph, id, clr, 2)
	}

	cursor := v.graph.Camera().Inverse().Transform(graphebiten.Cursor())
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x=%.2f y=%.2f", cursor.X, cursor.Y), 8, 8)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(v.size.X), int(v.size.Y)
}
