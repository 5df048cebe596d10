/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	htmltemplate "html/template"
	"sync"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/humaidq/pulseboard/health"
)

// TrendCharts holds the rendered chart markup for one dashboard pass.
type TrendCharts struct {
	Weight    htmltemplate.HTML
	HeartRate htmltemplate.HTML
}

// RenderSession owns the live chart instances. Each render pass
// disposes the previous pass's instances before building new ones, so
// repeated loads never accumulate chart registrations.
type RenderSession struct {
	mu     sync.Mutex
	charts []*charts.Line
}

func NewRenderSession() *RenderSession {
	return &RenderSession{}
}

// Render builds the weight and heart-rate trend charts for the given
// document and renders them to embeddable HTML.
func (s *RenderSession) Render(doc *health.Document) (TrendCharts, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Dispose the prior pass's instances before replacing them.
	s.charts = nil

	weight := buildTrendChart("Weight & Body Fat", health.WeightSeries(doc.DailyCheckins))
	heartRate := buildTrendChart("Heart Rate", health.HeartRateSeries(doc.DailyCheckins))
	s.charts = []*charts.Line{weight, heartRate}

	weightHTML, err := renderChart(weight)
	if err != nil {
		return TrendCharts{}, err
	}

	heartRateHTML, err := renderChart(heartRate)
	if err != nil {
		return TrendCharts{}, err
	}

	return TrendCharts{
		Weight:    weightHTML,
		HeartRate: heartRateHTML,
	}, nil
}

// HandleCount reports how many chart instances the session currently
// holds.
func (s *RenderSession) HandleCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.charts)
}

func buildTrendChart(title string, bundle health.ChartBundle) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)

	line.SetXAxis(bundle.Labels)
	for _, series := range bundle.Series {
		line.AddSeries(series.Name, lineData(series.Points))
	}

	line.SetSeriesOptions(
		charts.WithLineChartOpts(opts.LineChart{
			Smooth:     opts.Bool(true),
			ShowSymbol: opts.Bool(true),
		}),
	)

	return line
}

// lineData keeps missing values as nulls so the chart breaks the line
// instead of plotting zero.
func lineData(points []*float64) []opts.LineData {
	data := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		if p == nil {
			data = append(data, opts.LineData{Value: nil})
			continue
		}

		data = append(data, opts.LineData{Value: *p})
	}

	return data
}

func renderChart(line *charts.Line) (htmltemplate.HTML, error) {
	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", err
	}

	return htmltemplate.HTML(buf.String()), nil
}
