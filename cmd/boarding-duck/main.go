// Command boarding-duck runs the Discord bot that keeps Pole, Thematic and
// Project roles in sync with member reactions.
//
// Subcommands:
//
//	run                start the bot (default)
//	migrate            apply database migrations and exit
//	register-commands  overwrite the guild slash commands
//	tree               print the current hierarchy
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/UTT-Alumni/boarding-duck/internal/app"
	"github.com/UTT-Alumni/boarding-duck/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cliApp := &cli.App{
		Name:    "boarding-duck",
		Usage:   "Discord bot mapping thematic reactions to roles",
		Version: app.BuildVersion(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Load configuration from `FILE`",
				EnvVars: []string{"CONFIG_PATH"},
			},
		},
		Before: func(c *cli.Context) error {
			if path := c.String("config"); path != "" {
				return os.Setenv("CONFIG_PATH", path)
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			return runBot(c.Context)
		},
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Start the bot",
				Action: func(c *cli.Context) error {
					return runBot(c.Context)
				},
			},
			{
				Name:  "migrate",
				Usage: "Apply pending database migrations",
				Action: func(c *cli.Context) error {
					return withConfig(c.Context, app.Migrate)
				},
			},
			{
				Name:  "register-commands",
				Usage: "Overwrite the guild slash commands",
				Action: func(c *cli.Context) error {
					return withConfig(c.Context, app.RegisterCommands)
				},
			},
			{
				Name:  "tree",
				Usage: "Print the Pole / Thematic / Project hierarchy",
				Action: func(c *cli.Context) error {
					return withConfig(c.Context, func(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
						tree, err := app.Tree(ctx, cfg, logger)
						if err != nil {
							return err
						}
						_, err = fmt.Fprintln(c.App.Writer, tree)
						return err
					})
				},
			},
		},
	}

	if err := cliApp.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func runBot(ctx context.Context) error {
	return withConfig(ctx, app.Run)
}

func withConfig(ctx context.Context, fn func(context.Context, *config.Config, *slog.Logger) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	return fn(ctx, cfg, app.NewLogger(cfg.Log))
}
