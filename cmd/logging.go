/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import "github.com/humaidq/pulseboard/logging"

var appLogger = logging.Logger(logging.SourceApp)
var loaderLogger = logging.Logger(logging.SourceLoader)
var serverErrorLogger = logging.StdLogger(logging.SourceWeb)
