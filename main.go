/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/pulseboard/cmd"
)

func main() {
	app := &cli.Command{
		Name:  "pulseboard",
		Usage: "Pulseboard - Personal Health Dashboard",
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdCheck,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
