/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package health

// Classify determines a lab status from a value and its reference
// bounds. It is pure and fails soft: a missing value, or a range with
// neither bound present, yields Unknown rather than an error.
//
// A one-sided range classifies against the present bound alone, so a
// test with only a high bound can come back High or Normal but never
// Low.
func Classify(value, low, high Measurement) LabStatus {
	if !value.finite() || (!low.finite() && !high.finite()) {
		return StatusUnknown
	}

	if low.finite() && value.Value < low.Value {
		return StatusLow
	}

	if high.finite() && value.Value > high.Value {
		return StatusHigh
	}

	return StatusNormal
}

// Status classifies the test against its own reference range.
func (t BloodTest) Status() LabStatus {
	return Classify(t.Value, t.RangeLow, t.RangeHigh)
}
