package render

import (
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	trendWidth     = 800
	trendHeight    = 280
	trendPadLeft   = 46
	trendPadRight  = 18
	trendPadTop    = 44
	trendPadBottom = 34
)

type gridLine struct {
	Y     float64
	Label string
}

type tick struct {
	X     float64
	Label string
}

type trendVM struct {
	Width  int
	Height int
	Theme  Theme

	PlotLeft  float64
	PlotRight float64
	BaseY     float64

	Area   string
	Line   string
	Points []Point
	Grid   []gridLine
	Ticks  []tick
}

// lastMonths returns the n "YYYY-MM" keys ending with now's month, in
// chronological order. The ordering comes from the calendar, never from
// histogram map order.
func lastMonths(now time.Time, n int) []string {
	y, m, _ := now.UTC().Date()
	first := time.Date(y, m, 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(n - 1), 0)

	keys := make([]string, n)
	for i := range keys {
		keys[i] = first.AddDate(0, i, 0).Format("2006-01")
	}
	return keys
}

// smoothPath joins the points with cubic segments whose control points sit
// at the horizontal midpoint at each endpoint's own y. Not a true spline,
// just a fixed de-jag heuristic.
func smoothPath(ps []Point) string {
	if len(ps) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	b.WriteString(coord(ps[0].X))
	b.WriteByte(',')
	b.WriteString(coord(ps[0].Y))

	for i := 1; i < len(ps); i++ {
		prev, cur := ps[i-1], ps[i]
		mid := (prev.X + cur.X) / 2
		b.WriteString(" C ")
		b.WriteString(coord(mid))
		b.WriteByte(',')
		b.WriteString(coord(prev.Y))
		b.WriteByte(' ')
		b.WriteString(coord(mid))
		b.WriteByte(',')
		b.WriteString(coord(cur.Y))
		b.WriteByte(' ')
		b.WriteString(coord(cur.X))
		b.WriteByte(',')
		b.WriteString(coord(cur.Y))
	}

	return b.String()
}

// buildTrend lays out the smoothed monthly series with its area fill.
// Months absent from the histogram count as zero; the value axis maximum
// is floored at one so an empty series still renders.
func buildTrend(monthly map[string]int, now time.Time, months int, th Theme) trendVM {
	keys := lastMonths(now, months)

	maxVal := 1
	values := make([]int, len(keys))
	for i, k := range keys {
		values[i] = monthly[k]
		if values[i] > maxVal {
			maxVal = values[i]
		}
	}

	plotW := float64(trendWidth - trendPadLeft - trendPadRight)
	plotH := float64(trendHeight - trendPadTop - trendPadBottom)
	baseY := float64(trendHeight - trendPadBottom)

	points := make([]Point, len(keys))
	ticks := make([]tick, len(keys))
	for i, k := range keys {
		x := float64(trendPadLeft)
		if len(keys) > 1 {
			x += plotW * float64(i) / float64(len(keys)-1)
		} else {
			x += plotW / 2
		}
		y := baseY - plotH*float64(values[i])/float64(maxVal)
		points[i] = Point{X: x, Y: y}

		label := k
		if t, err := time.Parse("2006-01", k); err == nil {
			label = t.Format("Jan")
		}
		ticks[i] = tick{X: x, Label: label}
	}

	area := make([]Point, 0, len(points)+2)
	area = append(area, Point{X: trendPadLeft, Y: baseY})
	area = append(area, points...)
	area = append(area, Point{X: trendPadLeft + plotW, Y: baseY})

	grid := make([]gridLine, 0, 4)
	for _, frac := range []float64{0.25, 0.5, 0.75, 1.0} {
		grid = append(grid, gridLine{
			Y:     baseY - frac*plotH,
			Label: strconv.Itoa(int(math.Round(frac * float64(maxVal)))),
		})
	}

	return trendVM{
		Width:     trendWidth,
		Height:    trendHeight,
		Theme:     th,
		PlotLeft:  trendPadLeft,
		PlotRight: trendPadLeft + plotW,
		BaseY:     baseY,
		Area:      polygonPoints(area),
		Line:      smoothPath(points),
		Points:    points,
		Grid:      grid,
		Ticks:     ticks,
	}
}
