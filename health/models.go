/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package health

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// Presentation truncation limits. Workouts and blood tests are sorted
// most-recent-first before these are applied.
const (
	maxWorkoutRows   = 12
	maxBloodTestRows = 15
	maxLabFlags      = 5
)

// Measurement is an optional numeric reading from the health document.
// A JSON value that is absent, null, or not coercible to a finite
// number unmarshals as invalid; it never produces an unmarshal error.
type Measurement struct {
	Value float64
	Valid bool
}

// UnmarshalJSON accepts numbers and numeric strings. Everything else,
// including null and non-numeric strings, yields an invalid Measurement.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	m.Value = 0
	m.Valid = false

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = s
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	m.Value = v
	m.Valid = true

	return nil
}

// finite reports whether the measurement holds a usable finite value.
func (m Measurement) finite() bool {
	return m.Valid && !math.IsNaN(m.Value) && !math.IsInf(m.Value, 0)
}

// DailyCheckin is one day's self-reported metrics. Date is the unique
// key and sort key; all metrics are optional.
type DailyCheckin struct {
	Date        string      `json:"date"`
	WeightKg    Measurement `json:"weightKg"`
	BodyFatPct  Measurement `json:"bodyFatPct"`
	RestingHR   Measurement `json:"restingHr"`
	Zone2WalkHR Measurement `json:"zone2WalkHr"`
	Steps       Measurement `json:"steps"`
	Notes       string      `json:"notes"`
}

// Workout is one training session. There is no uniqueness constraint
// on dates.
type Workout struct {
	Date        string      `json:"date"`
	Type        string      `json:"type"`
	DurationMin Measurement `json:"durationMin"`
	Calories    Measurement `json:"calories"`
}

// BloodTest is one lab result, optionally carrying its own reference
// range. Either or both bounds may be absent.
type BloodTest struct {
	Date      string      `json:"date"`
	Name      string      `json:"name"`
	Value     Measurement `json:"value"`
	Unit      string      `json:"unit"`
	RangeLow  Measurement `json:"rangeLow"`
	RangeHigh Measurement `json:"rangeHigh"`
}

// Baseline is the optional reference point for the narrative summary.
type Baseline struct {
	Date string `json:"date"`
}

// Document is one immutable snapshot of the health data file. It is
// rebuilt from JSON on every render pass and never mutated afterwards.
//
// All dates are ISO-8601 strings, so lexical order equals
// chronological order; sorting compares the strings directly.
type Document struct {
	DailyCheckins []DailyCheckin `json:"dailyCheckins"`
	Workouts      []Workout      `json:"workouts"`
	BloodTests    []BloodTest    `json:"bloodTests"`
	Baseline      *Baseline      `json:"baseline"`
}

// RecentWorkouts returns the most recent workouts, at most 12, in the
// document's descending order.
func (d *Document) RecentWorkouts() []Workout {
	if len(d.Workouts) <= maxWorkoutRows {
		return d.Workouts
	}

	return d.Workouts[:maxWorkoutRows]
}

// RecentBloodTests returns the most recent blood tests, at most 15, in
// the document's descending order.
func (d *Document) RecentBloodTests() []BloodTest {
	if len(d.BloodTests) <= maxBloodTestRows {
		return d.BloodTests
	}

	return d.BloodTests[:maxBloodTestRows]
}

// LabStatus classifies a blood test value against its reference range.
// It is derived at render time, never stored.
type LabStatus string

// LabStatus values.
const (
	StatusNormal  LabStatus = "Normal"
	StatusHigh    LabStatus = "High"
	StatusLow     LabStatus = "Low"
	StatusUnknown LabStatus = "Unknown"
)

// StyleClass returns the CSS class the table presenter keys off this
// status.
func (s LabStatus) StyleClass() string {
	switch s {
	case StatusHigh:
		return "status-high"
	case StatusLow:
		return "status-low"
	case StatusNormal:
		return "status-normal"
	default:
		return "status-unknown"
	}
}
