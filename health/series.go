/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package health

// MetricSeries is one named value series aligned with a chart's labels.
// A nil point is an explicit gap: the charting layer shows a break
// there instead of a zero, and the point is never dropped so the series
// stays parallel to the labels.
type MetricSeries struct {
	Name   string
	Points []*float64
}

// ChartBundle holds the parallel label/value series for one chart.
type ChartBundle struct {
	Labels []string
	Series []MetricSeries
}

// WeightSeries shapes the check-in sequence into the weight chart
// bundle: dates as labels, weight and body-fat as series.
func WeightSeries(checkins []DailyCheckin) ChartBundle {
	labels := make([]string, 0, len(checkins))
	weight := make([]*float64, 0, len(checkins))
	bodyFat := make([]*float64, 0, len(checkins))

	for _, c := range checkins {
		labels = append(labels, c.Date)
		weight = append(weight, point(c.WeightKg))
		bodyFat = append(bodyFat, point(c.BodyFatPct))
	}

	return ChartBundle{
		Labels: labels,
		Series: []MetricSeries{
			{Name: "Weight (kg)", Points: weight},
			{Name: "Body fat (%)", Points: bodyFat},
		},
	}
}

// HeartRateSeries shapes the check-in sequence into the heart-rate
// chart bundle: dates as labels, resting HR and zone-2 walk HR as
// series.
func HeartRateSeries(checkins []DailyCheckin) ChartBundle {
	labels := make([]string, 0, len(checkins))
	resting := make([]*float64, 0, len(checkins))
	zone2 := make([]*float64, 0, len(checkins))

	for _, c := range checkins {
		labels = append(labels, c.Date)
		resting = append(resting, point(c.RestingHR))
		zone2 = append(zone2, point(c.Zone2WalkHR))
	}

	return ChartBundle{
		Labels: labels,
		Series: []MetricSeries{
			{Name: "Resting HR", Points: resting},
			{Name: "Zone 2 walk HR", Points: zone2},
		},
	}
}

func point(m Measurement) *float64 {
	if !m.finite() {
		return nil
	}

	v := m.Value

	return &v
}
