/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/humaidq/pulseboard/health"
	"github.com/humaidq/pulseboard/logging"
)

var webLogger = logging.Logger(logging.SourceWeb)

// WorkoutRow is one presented workout table row. Missing fields are
// already substituted with dashes.
type WorkoutRow struct {
	Date     string
	Type     string
	Duration string
	Calories string
}

// BloodRow is one presented blood-test table row.
type BloodRow struct {
	Date        string
	Name        string
	Value       string
	Range       string
	Status      string
	StatusClass string
}

// Dashboard serves the health dashboard. It holds the configured data
// source and the render session that owns the chart instances.
type Dashboard struct {
	Source        string
	BuiltinRanges bool

	session *RenderSession
}

func NewDashboard(source string, builtinRanges bool) *Dashboard {
	return &Dashboard{
		Source:        source,
		BuiltinRanges: builtinRanges,
		session:       NewRenderSession(),
	}
}

// Show loads the health document and renders the full dashboard. On
// any load failure it renders the error panel instead; the dashboard
// is never partially populated.
func (d *Dashboard) Show(c flamego.Context, t template.Template, data template.Data) {
	renderID := uuid.NewString()
	data["RenderID"] = renderID
	setSiteTitle(data)

	doc, err := health.Load(c.Request().Context(), d.Source)
	if err != nil {
		webLogger.Error("failed to load health data",
			"render_id", renderID,
			"source", d.Source,
			"error", err)

		data["Error"] = err.Error()
		t.HTML(http.StatusBadGateway, "error")

		return
	}

	if d.BuiltinRanges {
		health.ApplyBuiltinRanges(doc)
	}

	trend, err := d.session.Render(doc)
	if err != nil {
		webLogger.Error("failed to render charts",
			"render_id", renderID,
			"error", err)

		data["Error"] = err.Error()
		t.HTML(http.StatusInternalServerError, "error")

		return
	}

	data["KPI"] = health.BuildKPISnapshot(doc.DailyCheckins)
	data["Workouts"] = workoutRows(doc.RecentWorkouts())
	data["BloodTests"] = bloodRows(doc.RecentBloodTests())
	data["Narrative"] = health.Summarize(doc)
	data["WeightChart"] = trend.Weight
	data["HeartRateChart"] = trend.HeartRate

	webLogger.Info("rendered dashboard",
		"render_id", renderID,
		"checkins", len(doc.DailyCheckins),
		"workouts", len(doc.Workouts),
		"blood_tests", len(doc.BloodTests))

	t.HTML(http.StatusOK, "dashboard")
}

// Healthz is a liveness probe. It does not touch the data source.
func Healthz(c flamego.Context) string {
	c.ResponseWriter().Header().Set("Content-Type", "text/plain; charset=utf-8")

	return "ok"
}

func workoutRows(workouts []health.Workout) []WorkoutRow {
	rows := make([]WorkoutRow, 0, len(workouts))
	for _, w := range workouts {
		rows = append(rows, WorkoutRow{
			Date:     textOrDash(w.Date),
			Type:     textOrDash(w.Type),
			Duration: measurementOrDash(w.DurationMin),
			Calories: measurementOrDash(w.Calories),
		})
	}

	return rows
}

func bloodRows(tests []health.BloodTest) []BloodRow {
	rows := make([]BloodRow, 0, len(tests))
	for _, bt := range tests {
		status := bt.Status()

		rows = append(rows, BloodRow{
			Date:        textOrDash(bt.Date),
			Name:        textOrDash(bt.Name),
			Value:       valueWithUnit(bt.Value, bt.Unit),
			Range:       rangeCell(bt.RangeLow, bt.RangeHigh, bt.Unit),
			Status:      string(status),
			StatusClass: status.StyleClass(),
		})
	}

	return rows
}

func textOrDash(s string) string {
	if s == "" {
		return health.NoCell
	}

	return s
}

func measurementOrDash(m health.Measurement) string {
	if !m.Valid {
		return health.NoCell
	}

	return health.FormatMeasurement(m)
}

// valueWithUnit formats "110 mg/dL", omitting the unit when absent.
func valueWithUnit(m health.Measurement, unit string) string {
	if !m.Valid {
		return health.NoCell
	}

	if unit == "" {
		return health.FormatMeasurement(m)
	}

	return fmt.Sprintf("%s %s", health.FormatMeasurement(m), unit)
}

// rangeCell formats the reference range for display: "70–100 mg/dL"
// for two-sided ranges, "≥ 70" or "≤ 100" for one-sided ones, and a
// dash when no bound is present.
func rangeCell(low, high health.Measurement, unit string) string {
	var cell string

	switch {
	case low.Valid && high.Valid:
		cell = fmt.Sprintf("%s–%s", health.FormatMeasurement(low), health.FormatMeasurement(high))
	case low.Valid:
		cell = fmt.Sprintf("≥ %s", health.FormatMeasurement(low))
	case high.Valid:
		cell = fmt.Sprintf("≤ %s", health.FormatMeasurement(high))
	default:
		return health.NoCell
	}

	if unit != "" {
		cell += " " + unit
	}

	return cell
}
