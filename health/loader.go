/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

var errEmptySource = errors.New("data source is required")

// LoadError is the single error surfaced when the health document
// cannot be loaded. Hint distinguishes the likely cause (missing file,
// naming mismatch, malformed JSON, deployment timing); Err carries the
// raw underlying error.
type LoadError struct {
	Source string
	Hint   string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load health data from %q: %s (%v)", e.Source, e.Hint, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load fetches and parses the health document from an http(s) URL or a
// local file path. On any transport, status, or parse failure it
// returns a single *LoadError and no document; it never hands back a
// partially parsed result. The returned document is normalized and
// must be treated as immutable for the render pass.
//
// There is no loader-internal timeout; cancellation is owned by the
// caller through ctx.
func Load(ctx context.Context, source string) (*Document, error) {
	if strings.TrimSpace(source) == "" {
		return nil, &LoadError{
			Source: source,
			Hint:   "no data source configured; set --data or PULSEBOARD_DATA",
			Err:    errEmptySource,
		}
	}

	raw, err := read(ctx, source)
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{
			Source: source,
			Hint:   "the document is not valid JSON; check for trailing commas, truncated uploads, or a non-JSON file published under this name",
			Err:    err,
		}
	}

	doc.Normalize()

	return &doc, nil
}

func read(ctx context.Context, source string) ([]byte, *LoadError) {
	if isHTTPSource(source) {
		return fetch(ctx, source)
	}

	raw, err := os.ReadFile(source)
	if err != nil {
		hint := "the data file could not be read"
		if errors.Is(err, os.ErrNotExist) {
			hint = "the data file does not exist; check the path and file name match the published document"
		}

		return nil, &LoadError{Source: source, Hint: hint, Err: err}
	}

	return raw, nil
}

func fetch(ctx context.Context, source string) ([]byte, *LoadError) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, &LoadError{Source: source, Hint: "the data URL is malformed", Err: err}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, &LoadError{
			Source: source,
			Hint:   "the server could not be reached; if the site was just deployed, the data file may not be published yet",
			Err:    err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &LoadError{
			Source: source,
			Hint:   "the data file was not found; check the file name and path match the deployed document",
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LoadError{
			Source: source,
			Hint:   "the server returned an unexpected status",
			Err:    fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &LoadError{Source: source, Hint: "the response body could not be read", Err: err}
	}

	return raw, nil
}

func isHTTPSource(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
