package render

import (
	"fmt"
	"sort"

	"github.com/sora4431/ghstats/internal/app"
)

const (
	langWidth       = 400
	langHeight      = 160
	langEmptyHeight = 80
	langPad         = 18
	langBarY        = 48
	langBarHeight   = 10
	langBarRadius   = 5
	langLegendTop   = 78
	langLegendCols  = 2
	langLegendRowH  = 18
)

// langColors overrides repository-reported colors for common languages so
// the bar stays consistent with github's own language palette.
var langColors = map[string]string{
	"TypeScript": "#3178c6", "Python": "#3572A5", "JavaScript": "#f1e05a",
	"Ruby": "#701516", "CSS": "#563d7c", "HTML": "#e34c26",
	"Shell": "#89e051", "Go": "#00ADD8", "Rust": "#dea584",
	"Svelte": "#ff3e00", "Vue": "#41b883", "SCSS": "#c6538c",
	"Java": "#b07219", "Kotlin": "#A97BFF", "Swift": "#F05138",
	"C": "#555555", "C++": "#f34b7d", "Dockerfile": "#384d54",
}

type barSegment struct {
	X, W  float64
	Color string
}

type legendEntry struct {
	SwatchX, SwatchY float64
	NameX, PctX      float64
	TextY            float64
	Color            string
	Name             string
	Percent          string
}

type languagesVM struct {
	Width  int
	Height int
	Theme  Theme

	Empty bool

	BarX, BarY, BarW, BarH, BarRadius float64
	Segments                          []barSegment
	Legend                            []legendEntry
}

// topLanguages ranks languages by byte count descending and keeps the
// first k. The sort is stable so ties keep their first-seen order.
func topLanguages(langs []app.LanguageStat, k int) []app.LanguageStat {
	out := make([]app.LanguageStat, len(langs))
	copy(out, langs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Bytes > out[j].Bytes
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

func languageColor(l app.LanguageStat) string {
	if c, ok := langColors[l.Name]; ok {
		return c
	}
	return l.Color
}

// buildLanguages lays out the stacked segment bar and its legend. Segment
// widths are proportional shares of the top-k byte total; the legend fills
// a fixed column count column-major.
func buildLanguages(langs []app.LanguageStat, k int, th Theme) languagesVM {
	top := topLanguages(langs, k)
	if len(top) == 0 {
		return languagesVM{
			Width:  langWidth,
			Height: langEmptyHeight,
			Theme:  th,
			Empty:  true,
		}
	}

	var total float64
	for _, l := range top {
		total += float64(l.Bytes)
	}
	if total == 0 {
		return languagesVM{
			Width:  langWidth,
			Height: langEmptyHeight,
			Theme:  th,
			Empty:  true,
		}
	}

	barW := float64(langWidth - 2*langPad)

	segments := make([]barSegment, 0, len(top))
	x := float64(langPad)
	for _, l := range top {
		w := barW * float64(l.Bytes) / total
		segments = append(segments, barSegment{
			X:     x,
			W:     w,
			Color: languageColor(l),
		})
		x += w
	}

	rows := (len(top) + langLegendCols - 1) / langLegendCols
	colW := barW / langLegendCols

	legend := make([]legendEntry, 0, len(top))
	for i, l := range top {
		col := i / rows
		row := i % rows
		ex := langPad + float64(col)*colW
		ey := langLegendTop + float64(row)*langLegendRowH

		legend = append(legend, legendEntry{
			SwatchX: ex + 5,
			SwatchY: ey,
			NameX:   ex + 15,
			PctX:    ex + colW - 12,
			TextY:   ey + 4,
			Color:   languageColor(l),
			Name:    l.Name,
			Percent: fmt.Sprintf("%.1f%%", float64(l.Bytes)/total*100),
		})
	}

	return languagesVM{
		Width:     langWidth,
		Height:    langHeight,
		Theme:     th,
		BarX:      langPad,
		BarY:      langBarY,
		BarW:      barW,
		BarH:      langBarHeight,
		BarRadius: langBarRadius,
		Segments:  segments,
		Legend:    legend,
	}
}
