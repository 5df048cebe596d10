/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "errors"

var errDataSourceRequired = errors.New("data source is required (set via --data or PULSEBOARD_DATA env var)")
