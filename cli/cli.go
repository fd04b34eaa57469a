package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

// Handle parses the command line. Subcommands run and exit the process; the
// bare invocation returns so main can start the daemon loop.
func Handle() {
	shouldExit := true
	cmd := &cli.Command{
		Commands: []*cli.Command{
			{
				Name:    "monitor",
				Aliases: []string{"m"},
				Usage:   "Watch the live output of an active dbwd instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					monitor()
					return nil
				},
			},
			{
				Name:    "settings",
				Aliases: []string{"s"},
				Usage:   "Edit dbwd settings and reload an active instance",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					settingsEditor()
					return nil
				},
			},
			{
				Name:    "route",
				Aliases: []string{"r"},
				Usage:   "Publish a bench path extracted from an OpenStreetMap file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "input-file",
						Usage: "The OSM XML file to extract the path from",
						Aliases: []string{
							"i",
						},
						Value: "./map.osm",
					},
					&cli.StringFlag{
						Name:  "way",
						Usage: "Name of the way to use; defaults to the first highway way in the file",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return route(cmd.String("input-file"), cmd.String("way"))
				},
			},
		},
		Name:  "Dbwd",
		Usage: "Start an instance of dbwd",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			shouldExit = false
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}

	if shouldExit {
		os.Exit(0)
	}
}
