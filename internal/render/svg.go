package render

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/sora4431/ghstats/internal/app"
)

//go:embed templates/*.svg.tmpl
var templatesFS embed.FS

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

var cardTmpl = template.Must(
	template.New("cards").
		Funcs(template.FuncMap{
			"f":   coord,
			"esc": xmlEscaper.Replace,
		}).
		ParseFS(templatesFS, "templates/*.svg.tmpl"),
)

// Kind names one chart card.
type Kind string

// Chart kinds.
const (
	KindOverview  Kind = "overview"
	KindLanguages Kind = "languages"
	KindRadar     Kind = "radar"
	KindTrend     Kind = "trend"
)

// Kinds returns all chart kinds in rendering order.
func Kinds() []Kind {
	return []Kind{KindOverview, KindLanguages, KindRadar, KindTrend}
}

// Card is one rendered vector document.
type Card struct {
	Kind  Kind
	Theme string
	Data  []byte
}

// Name returns the card's file name.
func (c Card) Name() string {
	return string(c.Kind) + "-" + c.Theme + ".svg"
}

// Options tunes the chart layout.
type Options struct {
	// TrendMonths is the number of calendar months on the trend chart.
	TrendMonths int

	// TopLanguages is how many languages the segment bar keeps.
	TopLanguages int

	// Benchmarks are the radar axis ceilings.
	Benchmarks Benchmarks
}

func (o Options) withDefaults() Options {
	if o.TrendMonths <= 0 {
		o.TrendMonths = 18
	}
	if o.TopLanguages <= 0 {
		o.TopLanguages = 7
	}
	if o.Benchmarks == (Benchmarks{}) {
		o.Benchmarks = DefaultBenchmarks
	}
	return o
}

// Cards renders every (chart kind, theme) pair for the given stats.
func Cards(stats app.Stats, opts Options) ([]Card, error) {
	opts = opts.withDefaults()

	cards := make([]Card, 0, len(Kinds())*2)
	for _, th := range Themes() {
		vms := map[Kind]interface{}{
			KindOverview:  buildOverview(stats, th),
			KindLanguages: buildLanguages(stats.Languages, opts.TopLanguages, th),
			KindRadar:     buildRadar(stats, opts.Benchmarks, th),
			KindTrend:     buildTrend(stats.Monthly, stats.GeneratedAt, opts.TrendMonths, th),
		}

		for _, kind := range Kinds() {
			var buf bytes.Buffer
			if err := cardTmpl.ExecuteTemplate(&buf, string(kind)+".svg.tmpl", vms[kind]); err != nil {
				return nil, fmt.Errorf("rendering %s card: %w", kind, err)
			}
			cards = append(cards, Card{
				Kind:  kind,
				Theme: th.Name,
				Data:  buf.Bytes(),
			})
		}
	}

	return cards, nil
}
