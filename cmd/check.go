/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/pulseboard/health"
)

var CmdCheck = &cli.Command{
	Name:  "check",
	Usage: "Load the health document and print a summary",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "data",
			Sources: cli.EnvVars("PULSEBOARD_DATA"),
			Usage:   "path or URL of the health JSON document",
		},
		&cli.BoolFlag{
			Name:  "builtin-ranges",
			Value: false,
			Usage: "fill in default reference ranges for tests without bounds",
		},
	},
	Action: check,
}

func check(ctx context.Context, cmd *cli.Command) error {
	source := cmd.String("data")
	if source == "" {
		return errDataSourceRequired
	}

	doc, err := health.Load(ctx, source)
	if err != nil {
		loaderLogger.Error("failed to load health data", "source", source, "error", err)
		return err
	}

	if cmd.Bool("builtin-ranges") {
		health.ApplyBuiltinRanges(doc)
	}

	kpi := health.BuildKPISnapshot(doc.DailyCheckins)

	fmt.Printf("Check-ins: %d\n", len(doc.DailyCheckins))
	fmt.Printf("Workouts: %d\n", len(doc.Workouts))
	fmt.Printf("Blood tests: %d\n", len(doc.BloodTests))
	fmt.Printf("Weight: %s kg\n", kpi.Weight)
	fmt.Printf("Body fat: %s %%\n", kpi.BodyFat)
	fmt.Printf("Resting HR: %s bpm\n", kpi.RestingHR)
	fmt.Printf("Steps: %s\n", kpi.Steps)
	fmt.Println()
	fmt.Println(health.Summarize(doc))

	return nil
}
