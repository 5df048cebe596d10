/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/pulseboard/routes"
	"github.com/humaidq/pulseboard/static"
	"github.com/humaidq/pulseboard/templates"
)

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the dashboard web server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "port",
			Value: "8080",
			Usage: "the web server port",
		},
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
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
	},
	Action: start,
}

func start(ctx context.Context, cmd *cli.Command) error {
	source := cmd.String("data")
	if source == "" {
		return errDataSourceRequired
	}

	dash := routes.NewDashboard(source, cmd.Bool("builtin-ranges"))

	f, err := newApp(dash, cmd.Bool("dev"))
	if err != nil {
		return err
	}

	port := cmd.String("port")
	appLogger.Info("starting web server", "port", port, "source", source)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", port),
		Handler:      f,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     serverErrorLogger,
	}

	return srv.ListenAndServe()
}

// newApp wires the flamego instance: middleware, templates, static
// assets and the dashboard routes.
func newApp(dash *routes.Dashboard, dev bool) (*flamego.Flame, error) {
	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(routes.RequestLogger)

	opts := template.Options{}
	if dev {
		opts.Directory = "templates"
	} else {
		fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
		if err != nil {
			return nil, err
		}

		opts.FileSystem = fs
	}

	f.Use(template.Templater(opts))
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))

	f.Get("/", dash.Show)
	f.Get("/healthz", routes.Healthz)

	return f, nil
}
