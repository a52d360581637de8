package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/5w1tchy/pwmeter/internal/strength"
	"github.com/5w1tchy/pwmeter/internal/tui"
)

const version = "0.1.0"

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "pwmeter",
		Usage:   "Heuristic password strength meter",
		Suggest: true,
		Version: version,

		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Analyze passwords given as arguments, or one per line on stdin",
				ArgsUsage: "[password...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "json",
						Aliases: []string{"j"},
						Usage:   "Print one JSON object per password",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return checkCommand(cmd.Root().Writer, cmd.Root().Reader, cmd.Args().Slice(), cmd.Bool("json"))
				},
				Description: checkDescription(),
			},
			{
				Name:  "watch",
				Usage: "Interactive meter that updates on every keystroke",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return tui.Run()
				},
			},
		},
	}
}

// checkDescription lists the fixed sets Analyze matches against.
func checkDescription() string {
	return "Rejected outright (whole password, any case): " +
		strings.Join(strength.Blacklist(), ", ") +
		"\nFlagged when contained anywhere: " +
		strings.Join(strength.Sequences(), ", ")
}

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
