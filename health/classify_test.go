// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package health

import "testing"

func num(v float64) Measurement {
	return Measurement{Value: v, Valid: true}
}

func none() Measurement {
	return Measurement{}
}

func TestClassifyWithinRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value Measurement
		low   Measurement
		high  Measurement
		want  LabStatus
	}{
		{"inside range", num(85), num(70), num(100), StatusNormal},
		{"at low bound", num(70), num(70), num(100), StatusNormal},
		{"at high bound", num(100), num(70), num(100), StatusNormal},
		{"below range", num(69.9), num(70), num(100), StatusLow},
		{"above range", num(100.1), num(70), num(100), StatusHigh},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := Classify(tc.value, tc.low, tc.high); got != tc.want {
				t.Fatalf("Classify(%v, %v, %v) = %q, want %q", tc.value, tc.low, tc.high, got, tc.want)
			}
		})
	}
}

func TestClassifyOneSidedBounds(t *testing.T) {
	t.Parallel()

	// A missing low bound must never produce Low, and a missing high
	// bound must never produce High.
	if got := Classify(num(120), num(70), none()); got != StatusNormal {
		t.Fatalf("expected Normal with only a low bound, got %q", got)
	}

	if got := Classify(num(50), num(70), none()); got != StatusLow {
		t.Fatalf("expected Low with only a low bound, got %q", got)
	}

	if got := Classify(num(50), none(), num(100)); got != StatusNormal {
		t.Fatalf("expected Normal with only a high bound, got %q", got)
	}

	if got := Classify(num(120), none(), num(100)); got != StatusHigh {
		t.Fatalf("expected High with only a high bound, got %q", got)
	}
}

func TestClassifyUnknown(t *testing.T) {
	t.Parallel()

	if got := Classify(none(), num(70), num(100)); got != StatusUnknown {
		t.Fatalf("expected Unknown for missing value, got %q", got)
	}

	if got := Classify(num(85), none(), none()); got != StatusUnknown {
		t.Fatalf("expected Unknown for missing bounds, got %q", got)
	}

	if got := Classify(none(), none(), none()); got != StatusUnknown {
		t.Fatalf("expected Unknown for all missing, got %q", got)
	}
}

func TestBloodTestStatus(t *testing.T) {
	t.Parallel()

	test := BloodTest{
		Date: "2024-02-01", Name: "Glucose", Value: num(110),
		Unit: "mg/dL", RangeLow: num(70), RangeHigh: num(100),
	}

	if got := test.Status(); got != StatusHigh {
		t.Fatalf("expected High, got %q", got)
	}

	if got := StatusHigh.StyleClass(); got != "status-high" {
		t.Fatalf("expected status-high class, got %q", got)
	}
}
