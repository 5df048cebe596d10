/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package health

import "strings"

// ReferenceRange is a built-in default range for a common lab test,
// used only when a blood test carries no bounds of its own.
type ReferenceRange struct {
	TestName string
	Low      *float64
	High     *float64
}

// ptr is a helper to create pointers to float64 literals
func ptr(f float64) *float64 {
	return &f
}

// BuiltinReferenceRanges returns the default adult reference ranges.
// This is the authoritative source of truth for the built-in table.
func BuiltinReferenceRanges() []ReferenceRange {
	return []ReferenceRange{
		// ===== BLOOD COUNTS =====
		{TestName: "White blood cells", Low: ptr(4.5), High: ptr(11.0)},
		{TestName: "Red blood cells", Low: ptr(3.92), High: ptr(5.65)},
		{TestName: "Hemoglobin", Low: ptr(11.6), High: ptr(16.6)},
		{TestName: "Hematocrit", Low: ptr(36.0), High: ptr(50.0)},
		{TestName: "Platelets", Low: ptr(150.0), High: ptr(450.0)},

		// ===== METABOLIC =====
		{TestName: "Glucose", Low: ptr(70.0), High: ptr(99.0)},
		{TestName: "Glucose fasting FBS", Low: ptr(70.0), High: ptr(99.0)},
		{TestName: "HbA1c", Low: ptr(4.0), High: ptr(5.6)},
		{TestName: "Creatinine", Low: ptr(0.59), High: ptr(1.35)},
		{TestName: "Uric Acid", Low: ptr(140.0), High: ptr(420.0)},

		// ===== LIPID PANEL =====
		// One-sided by design: cholesterol targets have no lower bound
		// and HDL has no upper bound.
		{TestName: "Total Cholesterol", High: ptr(200.0)},
		{TestName: "LDL Cholesterol", High: ptr(100.0)},
		{TestName: "HDL Cholesterol", Low: ptr(40.0)},
		{TestName: "Triglycerides", High: ptr(150.0)},

		// ===== LIVER FUNCTION =====
		{TestName: "SGPT (ALT), Serum", Low: ptr(10.0), High: ptr(50.0)},
		{TestName: "SGOT (AST)", Low: ptr(10.0), High: ptr(40.0)},
	}
}

// ApplyBuiltinRanges fills in bounds for blood tests that carry no
// range at all, matching by test name case-insensitively. Tests with
// any bound of their own are left untouched, so document-supplied
// ranges always win and classification semantics for them are
// unchanged.
func ApplyBuiltinRanges(doc *Document) {
	ranges := BuiltinReferenceRanges()

	for i := range doc.BloodTests {
		t := &doc.BloodTests[i]
		if t.RangeLow.Valid || t.RangeHigh.Valid {
			continue
		}

		for _, r := range ranges {
			if !strings.EqualFold(r.TestName, t.Name) {
				continue
			}

			if r.Low != nil {
				t.RangeLow = Measurement{Value: *r.Low, Valid: true}
			}
			if r.High != nil {
				t.RangeHigh = Measurement{Value: *r.High, Valid: true}
			}

			break
		}
	}
}
