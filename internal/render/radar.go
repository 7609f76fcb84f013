package render

import (
	"math"

	"github.com/sora4431/ghstats/internal/app"
)

const (
	radarWidth       = 400
	radarHeight      = 320
	radarCenterX     = 200
	radarCenterY     = 172
	radarRadius      = 104
	radarAxes        = 5
	radarLabelOffset = 16
)

// Benchmarks are the per-axis ceilings treated as 100% on the radar chart.
type Benchmarks struct {
	Commits      float64
	PullRequests float64
	Reviews      float64
	Issues       float64
	Stars        float64
}

// DefaultBenchmarks are ceilings suitable for an average active account.
var DefaultBenchmarks = Benchmarks{
	Commits:      1000,
	PullRequests: 200,
	Reviews:      100,
	Issues:       100,
	Stars:        500,
}

type radarLabel struct {
	X, Y   float64
	Anchor string
	Text   string
}

type spoke struct {
	X1, Y1, X2, Y2 float64
}

type radarVM struct {
	Width  int
	Height int
	Theme  Theme

	Rings    []string
	Spokes   []spoke
	Polygon  string
	Vertices []Point
	Labels   []radarLabel
}

// normalizeMetric maps a value to a [0,1] radius fraction against its
// benchmark ceiling.
func normalizeMetric(value, benchmark float64) float64 {
	if benchmark <= 0 {
		return 0
	}
	return math.Min(value/benchmark, 1)
}

// labelAnchor picks the text anchor so the label never overlaps the
// pentagon interior: the top axis is centered, right-side axes grow to the
// right, left-side axes to the left.
func labelAnchor(i, n int) string {
	ux := math.Cos(axisAngle(i, n))
	switch {
	case math.Abs(ux) < 0.2:
		return "middle"
	case ux > 0:
		return "start"
	default:
		return "end"
	}
}

// buildRadar lays out the five-axis radial summary.
func buildRadar(stats app.Stats, b Benchmarks, th Theme) radarVM {
	axes := []struct {
		label     string
		value     float64
		benchmark float64
	}{
		{"Commits", float64(stats.Totals.Commits), b.Commits},
		{"PRs", float64(stats.Totals.PullRequests), b.PullRequests},
		{"Reviews", float64(stats.Totals.Reviews), b.Reviews},
		{"Issues", float64(stats.Totals.Issues), b.Issues},
		{"Stars", float64(stats.Stars), b.Stars},
	}

	rings := make([]string, 0, 4)
	for _, frac := range []float64{0.25, 0.5, 0.75, 1.0} {
		ps := make([]Point, 0, radarAxes)
		for i := 0; i < radarAxes; i++ {
			ps = append(ps, axisPoint(radarCenterX, radarCenterY, frac*radarRadius, i, radarAxes))
		}
		rings = append(rings, polygonPoints(ps))
	}

	spokes := make([]spoke, 0, radarAxes)
	for i := 0; i < radarAxes; i++ {
		outer := axisPoint(radarCenterX, radarCenterY, radarRadius, i, radarAxes)
		spokes = append(spokes, spoke{
			X1: radarCenterX, Y1: radarCenterY,
			X2: outer.X, Y2: outer.Y,
		})
	}

	vertices := make([]Point, 0, radarAxes)
	labels := make([]radarLabel, 0, radarAxes)
	for i, a := range axes {
		r := normalizeMetric(a.value, a.benchmark) * radarRadius
		vertices = append(vertices, axisPoint(radarCenterX, radarCenterY, r, i, radarAxes))

		lp := axisPoint(radarCenterX, radarCenterY, radarRadius+radarLabelOffset, i, radarAxes)
		if vy := math.Sin(axisAngle(i, radarAxes)); vy > 0.3 {
			lp.Y += 8
		} else if vy > -0.3 {
			lp.Y += 4
		}
		labels = append(labels, radarLabel{
			X:      lp.X,
			Y:      lp.Y,
			Anchor: labelAnchor(i, radarAxes),
			Text:   a.label,
		})
	}

	return radarVM{
		Width:    radarWidth,
		Height:   radarHeight,
		Theme:    th,
		Rings:    rings,
		Spokes:   spokes,
		Polygon:  polygonPoints(vertices),
		Vertices: vertices,
		Labels:   labels,
	}
}
