package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/oliverbestmann/bykegraph/scene"
	"github.com/spf13/cobra"
)

type nodeInfo struct {
	Node   int        `json:"node"`
	Name   string     `json:"name,omitempty"`
	Parent *int       `json:"parent,omitempty"`
	Layer  int        `json:"layer"`
	Shape  string     `json:"shape,omitempty"`
	World  [6]float64 `json:"world"`
	Camera [6]float64 `json:"camera"`
	Origin [2]float64 `json:"origin"`
}

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the local-to-world and local-to-camera transform of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := scene.LoadFile(a.cfg.Query.Scene)
			if err != nil {
				return fmt.Errorf("load %q: %w", a.cfg.Query.Scene, err)
			}

			infos := inspectGraph(graph)

			if a.cfg.Query.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			return writeInspectText(cmd.OutOrStdout(), infos)
		},
	}

	cmd.Flags().String("scene", "", "scene file to load")
	cmd.Flags().String("format", "", "output format, text or json")

	return cmd
}

func inspectGraph(graph *scene.Graph) []nodeInfo {
	infos := []nodeInfo{}

	for _, id := range graph.Nodes() {
		node, _ := graph.Node(id)

		info := nodeInfo{
			Node:   int(id),
			Name:   node.Name,
			Layer:  node.Layer,
			Shape:  shapeName(node.Shape),
			World:  graph.LocalToWorld(id).Coefficients(),
			Camera: graph.LocalToCamera(id).Coefficients(),
		}

		if node.Parent != scene.NoParent {
			parent := int(node.Parent)
			info.Parent = &parent
		}

		origin := graph.CameraPosition(id)
		info.Origin = [2]float64{origin.X, origin.Y}

		infos = append(infos, info)
	}

	return infos
}

func writeInspectText(w io.Writer, infos []nodeInfo) error {
	var sb strings.Builder

	for _, info := range infos {
		fmt.Fprintf(&sb, "%s", nodeLabel(info.Node, info.Name))
		if info.Parent != nil {
			fmt.Fprintf(&sb, " (parent #%d)", *info.Parent)
		}

		if info.Shape != "" {
			fmt.Fprintf(&sb, " %s", info.Shape)
		}

		fmt.Fprintf(&sb, " layer=%d\n", info.Layer)
		fmt.Fprintf(&sb, "  world  %s\n", formatCoefficients(info.World))
		fmt.Fprintf(&sb, "  camera %s\n", formatCoefficients(info.Camera))
		fmt.Fprintf(&sb, "  origin %s,%s\n", formatFloat(info.Origin[0]), formatFloat(info.Origin[1]))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func formatCoefficients(c gm.Coefficients) string {
	values := make([]string, len(c))
	for idx, value := range c {
		values[idx] = formatFloat(value)
	}

	return "[" + strings.Join(values, " ") + "]"
}

func shapeName(shape scene.Shape) string {
	switch shape.(type) {
	case nil:
		return ""
	case scene.Point:
		return "point"
	case scene.Circle:
		return "circle"
	case scene.Ellipse:
		return "ellipse"
	case scene.Rectangle:
		return "rectangle"
	case scene.Polygon:
		return "polygon"
	case scene.Sector:
		return "sector"
	case scene.Segment:
		return "segment"
	case scene.Polyline:
		return "polyline"
	case scene.Arc:
		return "arc"
	default:
		return fmt.Sprintf("%T", shape)
	}
}
