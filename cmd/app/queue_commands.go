package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/hospitalos/opdqueue/cmd/app/commands"
	"github.com/hospitalos/opdqueue/internal/app"
	"github.com/hospitalos/opdqueue/internal/config"
)

func getQueueCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "register-doctor",
			Usage: "Register a new doctor in the directory",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Doctor's full name",
				},
				&cli.StringFlag{
					Name:    "specialization",
					Aliases: []string{"s"},
					Usage:   "Medical specialization (e.g., 'General Medicine')",
				},
				&cli.IntFlag{
					Name:    "max-patients",
					Aliases: []string{"m"},
					Value:   0,
					Usage:   "Daily patient cap (0 means no cap)",
				},
				&cli.IntFlag{
					Name:    "avg-minutes",
					Aliases: []string{"a"},
					Value:   0,
					Usage:   "Average consultation minutes (0 means unknown)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				doctorUseCase, err := container.DoctorUseCase()
				if err != nil {
					return err
				}

				return commands.RunRegisterDoctor(
					ctx,
					doctorUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("name"),
					cmd.String("specialization"),
					int(cmd.Int("max-patients")),
					int(cmd.Int("avg-minutes")),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "recompute-waits",
			Usage: "Refresh wait estimates for a doctor's queue",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "doctor-id",
					Aliases:  []string{"d"},
					Required: true,
					Usage:    "Doctor UUID",
				},
				&cli.StringFlag{
					Name:    "service-date",
					Aliases: []string{"s"},
					Usage:   "Service date in YYYY-MM-DD format (defaults to today)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				queueUseCase, err := container.QueueUseCase()
				if err != nil {
					return err
				}

				return commands.RunRecomputeWaits(
					ctx,
					queueUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("doctor-id"),
					cmd.String("service-date"),
				)
			},
		},
	}
}
