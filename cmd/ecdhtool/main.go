// Command ecdhtool generates keys, runs ECDH agreements and compares field
// inversion strategies for the curves in the kex registry.
package main

import (
	"fmt"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

var (
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Value:   "warn",
		EnvVars: []string{"ECDHTOOL_LOG_LEVEL"},
	}
	curveFlag = &cli.StringFlag{
		Name:    "curve",
		Aliases: []string{"c"},
		Usage:   "curve name, see the curves command",
		Value:   "P-256",
		EnvVars: []string{"ECDHTOOL_CURVE"},
	}
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "ecdhtool",
		Usage: "elliptic-curve Diffie-Hellman key agreement tool",
		Flags: []cli.Flag{logLevelFlag},
		Before: func(ctx *cli.Context) error {
			lvl, err := logging.LevelFromString(ctx.String(logLevelFlag.Name))
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logging.SetAllLoggers(lvl)
			return nil
		},
		Commands: []*cli.Command{
			curvesCommand,
			keygenCommand,
			agreeCommand,
			benchInverseCommand,
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
