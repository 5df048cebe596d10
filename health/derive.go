/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package health

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Placeholders for missing values. KPI cards and table cells use the
// double and single dash; the narrative uses the em dash.
const (
	NoValue = "--"
	NoCell  = "-"
	NoText  = "—"
)

// noFlagsSentence is the fixed sentence used when no blood test
// classifies as High or Low.
const noFlagsSentence = "No abnormal lab results."

// KPISnapshot holds the latest check-in's headline values, each already
// formatted with the "--" placeholder when missing.
type KPISnapshot struct {
	Weight    string
	BodyFat   string
	RestingHR string
	Steps     string
}

// BuildKPISnapshot derives the KPI snapshot from the
// chronologically-sorted check-in sequence. Last value wins; there is
// no averaging. An empty sequence produces all placeholders.
func BuildKPISnapshot(checkins []DailyCheckin) KPISnapshot {
	var latest DailyCheckin
	if len(checkins) > 0 {
		latest = checkins[len(checkins)-1]
	}

	return KPISnapshot{
		Weight:    FormatMeasurement(latest.WeightKg),
		BodyFat:   FormatMeasurement(latest.BodyFatPct),
		RestingHR: FormatMeasurement(latest.RestingHR),
		Steps:     FormatMeasurement(latest.Steps),
	}
}

// FormatMeasurement renders a measurement as its shortest decimal
// representation, or "--" when missing.
func FormatMeasurement(m Measurement) string {
	if !m.finite() {
		return NoValue
	}

	return strconv.FormatFloat(m.Value, 'f', -1, 64)
}

// Delta is a - b, defined only when both measurements are valid. An
// undefined delta propagates as an invalid Measurement, never as NaN.
func Delta(a, b Measurement) Measurement {
	if !a.finite() || !b.finite() {
		return Measurement{}
	}

	return Measurement{Value: a.Value - b.Value, Valid: true}
}

// FormatDelta renders a delta rounded to two decimals, prefixed with
// "+" when strictly positive. Zero prints as "0" and an undefined
// delta prints as the em dash.
//
// Rounding is math.Round on the value scaled by 100 (half away from
// zero), subject to binary float representation: 1.005 scales to
// 100.49999... and so rounds down.
func FormatDelta(d Measurement) string {
	if !d.finite() {
		return NoText
	}

	rounded := math.Round(d.Value*100) / 100
	s := strconv.FormatFloat(rounded, 'f', -1, 64)

	if rounded > 0 {
		return "+" + s
	}

	return s
}

// LabFlags classifies the descending-sorted blood tests and returns the
// first abnormal results, at most 5, formatted as
// "<name>: <value> <unit> (<status>)".
//
// Flags come from the full sorted list, not the 15-row table slice, so
// an abnormal result pushed off the table still surfaces here.
func LabFlags(tests []BloodTest) []string {
	var flags []string

	for _, t := range tests {
		status := t.Status()
		if status != StatusHigh && status != StatusLow {
			continue
		}

		value := FormatMeasurement(t.Value)
		if t.Unit != "" {
			value += " " + t.Unit
		}

		flags = append(flags, fmt.Sprintf("%s: %s (%s)", t.Name, value, status))
		if len(flags) == maxLabFlags {
			break
		}
	}

	return flags
}

// Summarize composes the narrative summary in its fixed order: baseline
// date, latest check-in date, weight, body fat, and resting HR each
// with their delta since the first check-in, the latest notes, and the
// lab-flags sentence. Every missing piece degrades to the em dash.
func Summarize(doc *Document) string {
	var first, latest DailyCheckin
	if len(doc.DailyCheckins) > 0 {
		first = doc.DailyCheckins[0]
		latest = doc.DailyCheckins[len(doc.DailyCheckins)-1]
	}

	baselineDate := NoText
	switch {
	case doc.Baseline != nil && doc.Baseline.Date != "":
		baselineDate = doc.Baseline.Date
	case first.Date != "":
		baselineDate = first.Date
	}

	latestDate := NoText
	if latest.Date != "" {
		latestDate = latest.Date
	}

	notes := NoText
	if latest.Notes != "" {
		notes = latest.Notes
	}

	flags := noFlagsSentence
	if list := LabFlags(doc.BloodTests); len(list) > 0 {
		flags = "Lab flags: " + strings.Join(list, "; ") + "."
	}

	return fmt.Sprintf(
		"Baseline %s, latest check-in %s. Weight %s kg (%s since baseline). "+
			"Body fat %s%% (%s since baseline). Resting HR %s bpm (%s since baseline). "+
			"Notes: %s. %s",
		baselineDate, latestDate,
		summaryValue(latest.WeightKg), FormatDelta(Delta(latest.WeightKg, first.WeightKg)),
		summaryValue(latest.BodyFatPct), FormatDelta(Delta(latest.BodyFatPct, first.BodyFatPct)),
		summaryValue(latest.RestingHR), FormatDelta(Delta(latest.RestingHR, first.RestingHR)),
		notes, flags,
	)
}

func summaryValue(m Measurement) string {
	if !m.finite() {
		return NoText
	}

	return FormatMeasurement(m)
}
