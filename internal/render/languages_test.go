package render

import (
	"math"
	"testing"

	"github.com/sora4431/ghstats/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopLanguages(t *testing.T) {
	t.Parallel()

	langs := []app.LanguageStat{
		{Name: "Go", Bytes: 100},
		{Name: "Python", Bytes: 300},
		{Name: "Shell", Bytes: 100},
		{Name: "Rust", Bytes: 200},
	}

	top := topLanguages(langs, 3)
	require.Len(t, top, 3)
	assert.Equal(t, "Python", top[0].Name)
	assert.Equal(t, "Rust", top[1].Name)
	// Ties keep first-seen order.
	assert.Equal(t, "Go", top[2].Name)

	// Input order is not disturbed.
	assert.Equal(t, "Go", langs[0].Name)
}

func TestBuildLanguagesSegmentWidthsSumToBar(t *testing.T) {
	t.Parallel()

	langs := []app.LanguageStat{
		{Name: "Go", Color: "#00ADD8", Bytes: 123},
		{Name: "Python", Color: "#3572A5", Bytes: 456},
		{Name: "Elm", Color: "#60B5CC", Bytes: 7},
	}

	vm := buildLanguages(langs, 7, Dark)
	require.False(t, vm.Empty)
	require.Len(t, vm.Segments, 3)

	var sum float64
	for _, s := range vm.Segments {
		sum += s.W
	}
	assert.InDelta(t, vm.BarW, sum, 1e-9)

	// Segments are contiguous left to right.
	x := vm.BarX
	for _, s := range vm.Segments {
		assert.InDelta(t, x, s.X, 1e-9)
		x += s.W
	}
}

func TestBuildLanguagesLegendColumnMajor(t *testing.T) {
	t.Parallel()

	langs := make([]app.LanguageStat, 0, 5)
	for _, n := range []string{"A", "B", "C", "D", "E"} {
		langs = append(langs, app.LanguageStat{Name: n, Color: "#111111", Bytes: 10})
	}

	vm := buildLanguages(langs, 7, Dark)
	require.Len(t, vm.Legend, 5)

	// 5 entries over 2 columns: rows A,B,C fill column 0 before D,E start
	// column 1.
	assert.Equal(t, vm.Legend[0].SwatchX, vm.Legend[1].SwatchX)
	assert.Equal(t, vm.Legend[0].SwatchX, vm.Legend[2].SwatchX)
	assert.Greater(t, vm.Legend[3].SwatchX, vm.Legend[0].SwatchX)
	assert.Equal(t, vm.Legend[3].SwatchY, vm.Legend[0].SwatchY)
	assert.Equal(t, vm.Legend[4].SwatchY, vm.Legend[1].SwatchY)
}

func TestBuildLanguagesPercentages(t *testing.T) {
	t.Parallel()

	langs := []app.LanguageStat{
		{Name: "Go", Bytes: 750},
		{Name: "Shell", Bytes: 250},
	}

	vm := buildLanguages(langs, 7, Dark)
	require.Len(t, vm.Legend, 2)
	assert.Equal(t, "75.0%", vm.Legend[0].Percent)
	assert.Equal(t, "25.0%", vm.Legend[1].Percent)
}

func TestBuildLanguagesKnownColorOverride(t *testing.T) {
	t.Parallel()

	langs := []app.LanguageStat{
		{Name: "Go", Color: "#deadbe", Bytes: 10},
		{Name: "Elm", Color: "#60B5CC", Bytes: 5},
	}

	vm := buildLanguages(langs, 7, Dark)
	require.Len(t, vm.Segments, 2)
	assert.Equal(t, "#00ADD8", vm.Segments[0].Color)
	assert.Equal(t, "#60B5CC", vm.Segments[1].Color)
}

func TestBuildLanguagesEmpty(t *testing.T) {
	t.Parallel()

	vm := buildLanguages(nil, 7, Dark)
	assert.True(t, vm.Empty)
	assert.Equal(t, langEmptyHeight, vm.Height)
	assert.Empty(t, vm.Segments)
}

func TestBuildLanguagesZeroBytesTotal(t *testing.T) {
	t.Parallel()

	// Languages can be reported with a zero byte count; with no bytes at
	// all there are no shares to draw, so the empty layout is used instead
	// of dividing by zero.
	langs := []app.LanguageStat{
		{Name: "Go", Color: "#00ADD8", Bytes: 0},
		{Name: "Shell", Color: "#89e051", Bytes: 0},
	}

	vm := buildLanguages(langs, 7, Dark)
	assert.True(t, vm.Empty)
	assert.Equal(t, langEmptyHeight, vm.Height)
	assert.Empty(t, vm.Segments)
	assert.Empty(t, vm.Legend)
}

func TestBuildLanguagesTopKCut(t *testing.T) {
	t.Parallel()

	langs := make([]app.LanguageStat, 0, 10)
	for i := 0; i < 10; i++ {
		langs = append(langs, app.LanguageStat{
			Name:  string(rune('A' + i)),
			Bytes: int(math.Pow(2, float64(i))),
		})
	}

	vm := buildLanguages(langs, 7, Dark)
	assert.Len(t, vm.Segments, 7)
	assert.Len(t, vm.Legend, 7)
}
