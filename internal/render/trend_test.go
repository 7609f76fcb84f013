package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastMonths(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	keys := lastMonths(now, 18)
	require.Len(t, keys, 18)
	assert.Equal(t, "2022-10", keys[0])
	assert.Equal(t, "2024-03", keys[17])

	// Chronological, derived from the calendar.
	for i := 1; i < len(keys); i++ {
		assert.Less(t, keys[i-1], keys[i])
	}
}

func TestBuildTrendSinglePeak(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	const v = 40
	monthly := map[string]int{"2023-06": v}

	vm := buildTrend(monthly, now, 18, Dark)
	require.Len(t, vm.Points, 18)

	plotH := float64(trendHeight - trendPadTop - trendPadBottom)

	var minY = vm.BaseY
	for _, p := range vm.Points {
		if p.Y < minY {
			minY = p.Y
		}
	}
	// The peak reaches the top of the plot since max == v.
	assert.InDelta(t, vm.BaseY-plotH, minY, 1e-9)

	// All other months sit on the baseline.
	var baseline int
	for _, p := range vm.Points {
		if p.Y == vm.BaseY {
			baseline++
		}
	}
	assert.Equal(t, 17, baseline)

	// Grid line labels are round(frac * max).
	require.Len(t, vm.Grid, 4)
	assert.Equal(t, "10", vm.Grid[0].Label)
	assert.Equal(t, "20", vm.Grid[1].Label)
	assert.Equal(t, "30", vm.Grid[2].Label)
	assert.Equal(t, "40", vm.Grid[3].Label)
}

func TestBuildTrendEmptySeries(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	vm := buildTrend(nil, now, 18, Dark)
	require.Len(t, vm.Points, 18)

	// Max floors at one, every point sits on the baseline, and the chart
	// still renders a valid document.
	for _, p := range vm.Points {
		assert.Equal(t, vm.BaseY, p.Y)
	}
	assert.Equal(t, "1", vm.Grid[3].Label)
	assert.NotEmpty(t, vm.Line)
	assert.NotEmpty(t, vm.Area)
}

func TestBuildTrendAreaClosesOnBaseline(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	vm := buildTrend(map[string]int{"2024-01": 5}, now, 18, Dark)

	first := coord(vm.PlotLeft) + "," + coord(vm.BaseY)
	last := coord(vm.PlotRight) + "," + coord(vm.BaseY)
	assert.True(t, strings.HasPrefix(vm.Area, first))
	assert.True(t, strings.HasSuffix(vm.Area, last))
}

func TestSmoothPathControlPoints(t *testing.T) {
	t.Parallel()

	ps := []Point{{X: 0, Y: 100}, {X: 10, Y: 50}}
	// Control points sit at the horizontal midpoint at each endpoint's y.
	assert.Equal(t, "M 0.00,100.00 C 5.00,100.00 5.00,50.00 10.00,50.00", smoothPath(ps))
}

func TestBuildTrendXSpacing(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	vm := buildTrend(nil, now, 18, Dark)

	assert.InDelta(t, vm.PlotLeft, vm.Points[0].X, 1e-9)
	assert.InDelta(t, vm.PlotRight, vm.Points[17].X, 1e-9)

	step := vm.Points[1].X - vm.Points[0].X
	for i := 1; i < len(vm.Points); i++ {
		assert.InDelta(t, step, vm.Points[i].X-vm.Points[i-1].X, 1e-9)
	}
}
