package app

// defaultLanguageColor is used when the API reports no color for a language.
const defaultLanguageColor = "#8b949e"

// Aggregator folds per-window contribution payloads into cumulative totals,
// a month-keyed time series and a language byte histogram. Folding is
// commutative: the same windows folded in any order produce the same state.
type Aggregator struct {
	totals    Totals
	monthly   map[string]int
	langs     []LanguageStat
	langIndex map[string]int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		monthly:   make(map[string]int),
		langIndex: make(map[string]int),
	}
}

// Fold accumulates one window's payload.
func (a *Aggregator) Fold(c Contributions) {
	a.totals.Commits += c.Totals.Commits
	a.totals.PullRequests += c.Totals.PullRequests
	a.totals.Reviews += c.Totals.Reviews
	a.totals.Issues += c.Totals.Issues

	for _, d := range c.Days {
		if len(d.Date) < 7 {
			continue
		}
		a.monthly[d.Date[:7]] += d.Count
	}

	for _, repo := range c.Repositories {
		if repo.IsFork {
			continue
		}
		for _, lang := range repo.Languages {
			a.foldLanguage(lang)
		}
	}
}

func (a *Aggregator) foldLanguage(lang LanguageSize) {
	color := lang.Color
	if color == "" {
		color = defaultLanguageColor
	}

	i, ok := a.langIndex[lang.Name]
	if !ok {
		a.langIndex[lang.Name] = len(a.langs)
		a.langs = append(a.langs, LanguageStat{
			Name:  lang.Name,
			Color: color,
			Bytes: lang.Bytes,
		})
		return
	}

	a.langs[i].Bytes += lang.Bytes
	// Repositories may report different colors for the same language name;
	// the last seen one wins.
	a.langs[i].Color = color
}

// Totals returns the accumulated counters.
func (a *Aggregator) Totals() Totals {
	return a.totals
}

// Monthly returns a copy of the month-keyed contribution series.
func (a *Aggregator) Monthly() map[string]int {
	out := make(map[string]int, len(a.monthly))
	for k, v := range a.monthly {
		out[k] = v
	}
	return out
}

// Languages returns a copy of the language histogram in first-seen order.
func (a *Aggregator) Languages() []LanguageStat {
	out := make([]LanguageStat, len(a.langs))
	copy(out, a.langs)
	return out
}
