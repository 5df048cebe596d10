// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleDocument = `{
	"dailyCheckins": [
		{"date": "2024-02-01", "weightKg": 78},
		{"date": "2024-01-01", "weightKg": 80}
	],
	"bloodTests": [
		{"date": "2024-02-01", "name": "Glucose", "value": 110, "rangeLow": 70, "rangeHigh": 100, "unit": "mg/dL"}
	]
}`

func TestLoadFromHTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleDocument))
	}))
	defer srv.Close()

	doc, err := Load(t.Context(), srv.URL+"/health.json")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Normalized: check-ins ascending regardless of document order.
	if doc.DailyCheckins[0].Date != "2024-01-01" {
		t.Fatalf("expected normalized document, got first check-in %q", doc.DailyCheckins[0].Date)
	}

	// Absent keys default to empty collections, never an error.
	if doc.Workouts == nil || len(doc.Workouts) != 0 {
		t.Fatalf("expected empty workouts, got %+v", doc.Workouts)
	}
}

func TestLoadFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "health.json")
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	doc, err := Load(t.Context(), path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(doc.DailyCheckins) != 2 {
		t.Fatalf("expected 2 check-ins, got %d", len(doc.DailyCheckins))
	}
}

func TestLoadNotFound(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := Load(t.Context(), srv.URL+"/wrong-name.json")
	if err == nil {
		t.Fatal("expected load error")
	}

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %T", err)
	}

	if !strings.Contains(loadErr.Error(), "not found") {
		t.Fatalf("expected naming-mismatch hint, got %q", loadErr.Error())
	}

	// The raw status must survive into the message.
	if !strings.Contains(loadErr.Error(), "404") {
		t.Fatalf("expected raw status in %q", loadErr.Error())
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"dailyCheckins": [`))
	}))
	defer srv.Close()

	_, err := Load(t.Context(), srv.URL+"/health.json")

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}

	if !strings.Contains(loadErr.Error(), "not valid JSON") {
		t.Fatalf("expected parse hint, got %q", loadErr.Error())
	}
}

func TestLoadServerError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := Load(t.Context(), srv.URL+"/health.json")

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}

	if !strings.Contains(loadErr.Error(), "unexpected status") {
		t.Fatalf("expected status hint, got %q", loadErr.Error())
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(t.Context(), filepath.Join(t.TempDir(), "missing.json"))

	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("expected *LoadError, got %v", err)
	}

	if !strings.Contains(loadErr.Error(), "does not exist") {
		t.Fatalf("expected missing-file hint, got %q", loadErr.Error())
	}
}

func TestLoadEmptySource(t *testing.T) {
	t.Parallel()

	_, err := Load(t.Context(), "")
	if err == nil || !strings.Contains(err.Error(), "no data source configured") {
		t.Fatalf("expected empty-source error, got %v", err)
	}
}
