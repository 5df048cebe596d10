// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package health

import "testing"

func TestNormalizeSortsCheckinsAscending(t *testing.T) {
	t.Parallel()

	doc := &Document{
		DailyCheckins: []DailyCheckin{
			{Date: "2024-02-01"},
			{Date: "2024-01-01"},
		},
	}
	doc.Normalize()

	if doc.DailyCheckins[0].Date != "2024-01-01" || doc.DailyCheckins[1].Date != "2024-02-01" {
		t.Fatalf("expected ascending check-ins, got %q then %q",
			doc.DailyCheckins[0].Date, doc.DailyCheckins[1].Date)
	}
}

func TestNormalizeSortsBloodTestsDescending(t *testing.T) {
	t.Parallel()

	doc := &Document{
		BloodTests: []BloodTest{
			{Date: "2024-01-01", Name: "Glucose"},
			{Date: "2024-02-01", Name: "Glucose"},
		},
		Workouts: []Workout{
			{Date: "2024-01-01"},
			{Date: "2024-02-01"},
		},
	}
	doc.Normalize()

	if doc.BloodTests[0].Date != "2024-02-01" || doc.BloodTests[1].Date != "2024-01-01" {
		t.Fatalf("expected descending blood tests, got %q then %q",
			doc.BloodTests[0].Date, doc.BloodTests[1].Date)
	}

	if doc.Workouts[0].Date != "2024-02-01" || doc.Workouts[1].Date != "2024-01-01" {
		t.Fatalf("expected descending workouts, got %q then %q",
			doc.Workouts[0].Date, doc.Workouts[1].Date)
	}
}

func TestNormalizeDefaultsAbsentCollections(t *testing.T) {
	t.Parallel()

	doc := &Document{}
	doc.Normalize()

	if doc.DailyCheckins == nil || doc.Workouts == nil || doc.BloodTests == nil {
		t.Fatalf("expected empty collections, got %+v", doc)
	}

	if len(doc.DailyCheckins) != 0 || len(doc.Workouts) != 0 || len(doc.BloodTests) != 0 {
		t.Fatalf("expected zero-length collections, got %+v", doc)
	}
}

func TestNormalizeIsStableForEqualDates(t *testing.T) {
	t.Parallel()

	doc := &Document{
		Workouts: []Workout{
			{Date: "2024-01-01", Type: "run"},
			{Date: "2024-01-01", Type: "swim"},
		},
	}
	doc.Normalize()

	if doc.Workouts[0].Type != "run" || doc.Workouts[1].Type != "swim" {
		t.Fatalf("expected stable order for equal dates, got %q then %q",
			doc.Workouts[0].Type, doc.Workouts[1].Type)
	}
}
