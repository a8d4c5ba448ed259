// Package chart maps a frequency table onto the supported chart layouts.
package chart

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/wordscope/wordscope/internal/freq"
)

// Kind identifies one of the selectable chart layouts.
type Kind string

const (
	KindWordCloud     Kind = "wordcloud"
	KindBar           Kind = "bar"
	KindHorizontalBar Kind = "hbar"
	KindPie           Kind = "pie"
	KindLine          Kind = "line"
	KindScatter       Kind = "scatter"
	KindRadar         Kind = "radar"
	KindArea          Kind = "area"
)

const (
	// DefaultTopN bounds most charts and the ranked listing.
	DefaultTopN = 20
	// RadarTopN bounds the radar layout, which gets unreadable past ten spokes.
	RadarTopN = 10
)

// Option pairs a selectable kind with its display label.
type Option struct {
	Kind  Kind
	Label string
}

// Kinds returns the selectable chart kinds in presentation order, word cloud
// first.
func Kinds() []Option {
	return []Option{
		{KindWordCloud, "词云"},
		{KindBar, "垂直条形图"},
		{KindHorizontalBar, "水平条形图"},
		{KindPie, "饼图"},
		{KindLine, "折线图"},
		{KindScatter, "散点图"},
		{KindRadar, "雷达图"},
		{KindArea, "面积图"},
	}
}

// ParseKind maps a selector string to a Kind. Unknown selectors report
// ok == false; the caller renders no chart in that case rather than failing.
func ParseKind(s string) (Kind, bool) {
	switch k := Kind(s); k {
	case KindWordCloud, KindBar, KindHorizontalBar, KindPie,
		KindLine, KindScatter, KindRadar, KindArea:
		return k, true
	}
	return "", false
}

// Renderable is the opaque chart object handed to the display layer: it
// writes itself out as a self-contained HTML document.
type Renderable interface {
	Render(w io.Writer) error
}

const seriesName = "出现次数"

// Build maps the table onto the chart primitive for kind. Unknown kinds and
// the image-rendered word cloud yield nil; so does a radar over an empty
// table. Given the same table and top-N constants the data series is
// identical across calls.
func Build(kind Kind, t *freq.Table) Renderable {
	switch kind {
	case KindBar:
		return buildBar(t, false)
	case KindHorizontalBar:
		return buildBar(t, true)
	case KindPie:
		return buildPie(t)
	case KindLine:
		return buildLine(t, false)
	case KindArea:
		return buildLine(t, true)
	case KindScatter:
		return buildScatter(t)
	case KindRadar:
		return buildRadar(t)
	}
	return nil
}

func tokens(entries []freq.Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Token)
	}
	return names
}

func buildBar(t *freq.Table, horizontal bool) Renderable {
	entries := t.TopN(DefaultTopN)
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "词频排行"}))
	data := make([]opts.BarData, 0, len(entries))
	for _, e := range entries {
		data = append(data, opts.BarData{Value: e.Count})
	}
	bar.SetXAxis(tokens(entries)).AddSeries(seriesName, data)
	if horizontal {
		bar.XYReversal()
	}
	return bar
}

func buildPie(t *freq.Table) Renderable {
	entries := t.TopN(DefaultTopN)
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "词频占比"}))
	data := make([]opts.PieData, 0, len(entries))
	for _, e := range entries {
		data = append(data, opts.PieData{Name: e.Token, Value: e.Count})
	}
	pie.AddSeries(seriesName, data)
	return pie
}

func buildLine(t *freq.Table, filled bool) Renderable {
	entries := t.TopN(DefaultTopN)
	line := charts.NewLine()
	line.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "词频走势"}))
	data := make([]opts.LineData, 0, len(entries))
	for _, e := range entries {
		data = append(data, opts.LineData{Value: e.Count})
	}
	line.SetXAxis(tokens(entries)).AddSeries(seriesName, data)
	if filled {
		line.SetSeriesOptions(charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.5}))
	}
	return line
}

func buildScatter(t *freq.Table) Renderable {
	entries := t.TopN(DefaultTopN)
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "词频散点"}))
	max := 0
	for _, e := range entries {
		if e.Count > max {
			max = e.Count
		}
	}
	data := make([]opts.ScatterData, 0, len(entries))
	for _, e := range entries {
		data = append(data, opts.ScatterData{
			Value:      e.Count,
			SymbolSize: symbolSize(e.Count, max),
		})
	}
	scatter.SetXAxis(tokens(entries)).AddSeries(seriesName, data)
	return scatter
}

// symbolSize scales a count into a readable point diameter. The most frequent
// token gets the largest symbol; everything else scales linearly down to a
// floor that keeps rare tokens visible.
func symbolSize(count, max int) int {
	const (
		minSize = 8
		maxSize = 40
	)
	if max <= 0 {
		return minSize
	}
	return minSize + (maxSize-minSize)*count/max
}

func buildRadar(t *freq.Table) Renderable {
	entries := t.TopN(RadarTopN)
	if len(entries) == 0 {
		return nil
	}
	radar := charts.NewRadar()
	// entries are count-descending, so the first count is the axis maximum
	max := float32(entries[0].Count)
	indicators := make([]*opts.Indicator, 0, len(entries))
	values := make([]float32, 0, len(entries))
	for _, e := range entries {
		indicators = append(indicators, &opts.Indicator{Name: e.Token, Max: max})
		values = append(values, float32(e.Count))
	}
	radar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "词频雷达"}),
		charts.WithRadarComponentOpts(opts.RadarComponent{Indicator: indicators}),
	)
	radar.AddSeries(seriesName, []opts.RadarData{{Value: values}},
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.4}),
	)
	return radar
}
