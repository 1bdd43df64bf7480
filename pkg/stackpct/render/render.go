// Package render draws the percentage view of a chart with go-chart.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/ukaji3/stackpct-go/pkg/stackpct/models"
	"github.com/ukaji3/stackpct-go/pkg/stackpct/normalize"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Format is an image output format.
type Format string

const (
	// FormatSVG renders an SVG document.
	FormatSVG Format = "svg"
	// FormatPNG renders a PNG image.
	FormatPNG Format = "png"
)

// ErrNoData indicates there is no category to draw.
var ErrNoData = errors.New("no categories to render")

// ErrUnknownFormat indicates an unsupported output format.
var ErrUnknownFormat = errors.New("unknown image format")

// Options configures the rendered image.
type Options struct {
	Title  string
	Width  int
	Height int
}

// StackedBar builds a 100% stacked bar chart with one bar per label.
// Hidden series are left out of every bar. A category whose visible total is zero
// is drawn as an empty bar.
func StackedBar(labels []string, set models.PercentSet, mask models.VisibilityMask, opts Options) (chart.StackedBarChart, error) {
	if len(labels) == 0 {
		return chart.StackedBarChart{}, ErrNoData
	}

	bars := make([]chart.StackedBar, len(labels))
	for i, label := range labels {
		var values []chart.Value
		total := 0.0
		for s, series := range set {
			if !mask.IsVisible(s) || i >= len(series.Values) {
				continue
			}
			color := chart.GetDefaultColor(s)
			values = append(values, chart.Value{
				Label: series.Label,
				Value: series.Values[i],
				Style: chart.Style{FillColor: color, StrokeColor: color, StrokeWidth: 1},
			})
			total += series.Values[i]
		}
		// go-chart scales each bar by its own total, so an all-zero bar needs a placeholder
		if total <= 0 {
			values = []chart.Value{{
				Value: 100,
				Style: chart.Style{FillColor: drawing.ColorTransparent, StrokeColor: drawing.ColorTransparent},
			}}
		}
		bars[i] = chart.StackedBar{Name: label, Values: values}
	}

	return chart.StackedBarChart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}, nil
}

// Write renders the percentage view of result to w.
// Results built for raw chart types are normalized first.
func Write(w io.Writer, result *models.ChartResult, format Format, opts Options) error {
	var provider chart.RendererProvider
	switch format {
	case FormatSVG:
		provider = chart.SVG
	case FormatPNG:
		provider = chart.PNG
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	set := result.Percentages
	if set == nil {
		set = normalize.NormalizeCategories(result.Data.Datasets, result.Hidden, len(result.Data.Labels))
	}

	graph, err := StackedBar(result.Data.Labels, set, result.Hidden, opts)
	if err != nil {
		return err
	}
	return graph.Render(provider, w)
}
