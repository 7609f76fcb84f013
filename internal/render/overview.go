package render

import "github.com/sora4431/ghstats/internal/app"

const (
	overviewWidth   = 400
	overviewHeight  = 272
	overviewPad     = 18
	overviewGridTop = 58
	overviewCols    = 2
	overviewRows    = 3
	overviewGap     = 8
)

type overviewCell struct {
	X, Y, W, H float64

	// Precomputed text positions: value and label centered in the cell.
	CX, ValueY, LabelY float64

	Value string
	Label string
	Color string
}

type overviewVM struct {
	Width  int
	Height int
	Theme  Theme

	Title    string
	Subtitle string
	Cells    []overviewCell

	Footnote  string
	FootnoteX float64
	FootnoteY float64
}

// buildOverview lays out the six counters in a fixed column grid. Cell
// position is a pure function of the item index.
func buildOverview(stats app.Stats, th Theme) overviewVM {
	items := []struct {
		label string
		value int
	}{
		{"Commits", stats.Totals.Commits},
		{"Pull Requests", stats.Totals.PullRequests},
		{"PR Reviews", stats.Totals.Reviews},
		{"Issues", stats.Totals.Issues},
		{"Stars Earned", stats.Stars},
		{"Repositories", stats.RepoCount},
	}

	cellW := float64(overviewWidth-2*overviewPad-(overviewCols-1)*overviewGap) / overviewCols
	cellH := float64(overviewHeight-overviewGridTop-overviewPad-(overviewRows-1)*overviewGap) / overviewRows

	cells := make([]overviewCell, 0, len(items))
	for i, it := range items {
		col := i % overviewCols
		row := i / overviewCols
		x := overviewPad + float64(col)*(cellW+overviewGap)
		y := overviewGridTop + float64(row)*(cellH+overviewGap)

		cells = append(cells, overviewCell{
			X:      x,
			Y:      y,
			W:      cellW,
			H:      cellH,
			CX:     x + cellW/2,
			ValueY: y + cellH/2,
			LabelY: y + cellH/2 + 17,
			Value:  formatCount(it.value),
			Label:  it.label,
			Color:  th.Colors[i%len(th.Colors)],
		})
	}

	vm := overviewVM{
		Width:    overviewWidth,
		Height:   overviewHeight,
		Theme:    th,
		Title:    "GitHub Stats",
		Subtitle: "since " + stats.CreatedAt.Format("Jan 2006"),
		Cells:    cells,
	}
	if stats.PublicOnly {
		vm.Footnote = "* public contributions only"
		vm.FootnoteX = overviewWidth - overviewPad
		vm.FootnoteY = overviewHeight - 6
	}

	return vm
}
