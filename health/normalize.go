/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package health

import "sort"

// Normalize prepares a freshly parsed document for derivation: absent
// collections become empty slices, daily check-ins are sorted ascending
// by date, and workouts and blood tests are sorted descending by date.
//
// Ordering compares the ISO date strings lexically; for ISO-8601 dates
// lexical order and chronological order coincide, so no date parsing is
// needed and records with unparseable dates still sort
// deterministically.
func (d *Document) Normalize() {
	if d.DailyCheckins == nil {
		d.DailyCheckins = []DailyCheckin{}
	}

	if d.Workouts == nil {
		d.Workouts = []Workout{}
	}

	if d.BloodTests == nil {
		d.BloodTests = []BloodTest{}
	}

	sort.SliceStable(d.DailyCheckins, func(i, j int) bool {
		return d.DailyCheckins[i].Date < d.DailyCheckins[j].Date
	})

	sort.SliceStable(d.Workouts, func(i, j int) bool {
		return d.Workouts[i].Date > d.Workouts[j].Date
	})

	sort.SliceStable(d.BloodTests, func(i, j int) bool {
		return d.BloodTests[i].Date > d.BloodTests[j].Date
	})
}
