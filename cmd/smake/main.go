package main

import (
	"context"
	"fmt"
	"os"

	"github.com/thyringer/smake/internal/cli"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "smake",
		Usage:   "SQL script splitter and runner",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "split",
				Usage:     "Split a SQL script into statements and print the listing",
				ArgsUsage: "<script.sql>",
				Action:    splitCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "Output format (text or json)",
						Value: "text",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.BoolFlag{
						Name:  "strict",
						Usage: "Reject a final statement without a terminating ';'",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
			{
				Name:      "run",
				Usage:     "Execute a SQL script (or every script in a directory) against PostgreSQL",
				ArgsUsage: "<script.sql | directory>",
				Action:    runCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:    "connection",
						Aliases: []string{"c"},
						Usage:   "PostgreSQL connection string (URI or key=value format). Supports standard PG* environment variables.",
					},
					&urfavecli.DurationFlag{
						Name:  "timeout",
						Usage: "Per-statement timeout",
					},
					&urfavecli.BoolFlag{
						Name:  "strict",
						Usage: "Reject a final statement without a terminating ';'",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "Enable debug output",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// splitCommand handles the 'smake split' command
func splitCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := &cli.DefaultConfig

	cli.ApplyFlagsToConfig(config, "", 0,
		cmd.Bool("strict"), cmd.String("format"), cmd.String("output"), cmd.Bool("verbose"))

	if err := cli.ValidateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	script := cmd.Args().First()
	if script == "" {
		return fmt.Errorf("missing script argument (usage: smake split <script.sql>)")
	}

	return cli.Split(config, script)
}

// runCommand handles the 'smake run' command
func runCommand(ctx context.Context, cmd *urfavecli.Command) error {
	config := &cli.DefaultConfig

	cli.ApplyFlagsToConfig(config, cmd.String("connection"), cmd.Duration("timeout"),
		cmd.Bool("strict"), "", "", cmd.Bool("verbose"))

	if err := cli.ValidateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	searchPath := cmd.Args().First()
	if searchPath == "" {
		searchPath = "."
	}

	exitCode, err := cli.Run(ctx, config, searchPath)
	if err != nil {
		return err
	}
	if exitCode != 0 {
		os.Exit(exitCode)
	}
	return nil
}
