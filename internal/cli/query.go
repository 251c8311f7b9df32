package cli

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/oliverbestmann/bykegraph/gm"
	"github.com/oliverbestmann/bykegraph/internal/observability"
	"github.com/oliverbestmann/bykegraph/scene"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ErrInvalidPointer = errors.New("invalid pointer")

type hitResult struct {
	Node  int        `json:"node"`
	Name  string     `json:"name,omitempty"`
	Layer int        `json:"layer"`
	Local [2]float64 `json:"local"`
}

type queryResult struct {
	Pointer [2]float64  `json:"pointer"`
	Hits    []hitResult `json:"hits"`
}

func newQueryCmd(a *app) *cobra.Command {
	var pointers []string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Hit test pointers given in screen coordinates against a scene",
		Example: "  graphhit query --scene scene.yaml --at 400,300 --at 10,20\n" +
			"  graphhit query --scene scene.yaml --at 400,300 --format json",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(pointers) == 0 {
				return fmt.Errorf("%w: at least one --at x,y is required", ErrInvalidPointer)
			}

			parsed := make([]gm.Vec, 0, len(pointers))
			for _, value := range pointers {
				pointer, err := parsePointer(value)
				if err != nil {
					return err
				}

				parsed = append(parsed, pointer)
			}

			return a.runQuery(cmd, parsed)
		},
	}

	cmd.Flags().StringArrayVar(&pointers, "at", nil, "pointer position x,y in screen coordinates, may be repeated")
	cmd.Flags().String("scene", "", "scene file to load")
	cmd.Flags().Int("workers", 0, "number of concurrent hit tests")
	cmd.Flags().String("format", "", "output format, text or json")

	return cmd
}

func (a *app) runQuery(cmd *cobra.Command, pointers []gm.Vec) error {
	logger := observability.GetLogger().Named("query")

	graph, err := scene.LoadFile(a.cfg.Query.Scene)
	if err != nil {
		return fmt.Errorf("load %q: %w", a.cfg.Query.Scene, err)
	}

	startTime := time.Now()

	hits, err := graph.HitTestAll(cmd.Context(), pointers, a.cfg.Query.Workers)
	if err != nil {
		return fmt.Errorf("hit test: %w", err)
	}

	logger.Info("Hit test finished",
		zap.String("scene", a.cfg.Query.Scene),
		zap.Int("pointers", len(pointers)),
		zap.Int("workers", a.cfg.Query.Workers),
		zap.Duration("duration", time.Since(startTime)))

	results := make([]queryResult, len(pointers))
	for idx, pointer := range pointers {
		results[idx] = queryResultOf(pointer, hits[idx])
	}

	out := cmd.OutOrStdout()

	if a.cfg.Query.Format == "json" {
		return writeJSON(out, results)
	}

	return writeQueryText(out, results)
}

func queryResultOf(pointer gm.Vec, hits []scene.Hit) queryResult {
	result := queryResult{
		Pointer: [2]float64{pointer.X, pointer.Y},
		Hits:    []hitResult{},
	}

	for _, hit := range hits {
		result.Hits = append(result.Hits, hitResult{
			Node:  int(hit.Node),
			Name:  hit.Name,
			Layer: hit.Layer,
			Local: [2]float64{hit.Local.X, hit.Local.Y},
		})
	}

	return result
}

func writeQueryText(w io.Writer, results []queryResult) error {
	var sb strings.Builder

	for _, result := range results {
		fmt.Fprintf(&sb, "%s,%s:", formatFloat(result.Pointer[0]), formatFloat(result.Pointer[1]))

		if len(result.Hits) == 0 {
			sb.WriteString(" no hits\n")
			continue
		}

		sb.WriteString("\n")

		for _, hit := range result.Hits {
			fmt.Fprintf(&sb, "  %s\tlayer=%d\tlocal=%s,%s\n",
				nodeLabel(hit.Node, hit.Name), hit.Layer,
				formatFloat(hit.Local[0]), formatFloat(hit.Local[1]))
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// parsePointer parses a pointer given as "x,y".
func parsePointer(value string) (gm.Vec, error) {
	xs, ys, ok := strings.Cut(value, ",")
	if !ok {
		return gm.Vec{}, fmt.Errorf("%w %q, expected x,y", ErrInvalidPointer, value)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return gm.Vec{}, fmt.Errorf("%w %q: %w", ErrInvalidPointer, value, err)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return gm.Vec{}, fmt.Errorf("%w %q: %w", ErrInvalidPointer, value, err)
	}

	return gm.VecOf(x, y), nil
}

func nodeLabel(id int, name string) string {
	if name == "" {
		return "#" + strconv.Itoa(id)
	}

	return name
}

// formatFloat prints value with at most six significant digits. Rounding
// noise of the matrix inversion is removed, including negative zero.
func formatFloat(value float64) string {
	value = math.Round(value*1e9) / 1e9
	if value == 0 {
		value = 0
	}

	return strconv.FormatFloat(value, 'g', 6, 64)
}
