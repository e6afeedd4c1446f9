package cmd

import (
	"context"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Print the effective configuration as TOML",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: auto-discover from the working directory)",
			},
		},
		Action: runConfig,
	}
}

func runConfig(_ context.Context, cmd *cli.Command) error {
	errOut := stderr(cmd)
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}

	data, err := toml.Marshal(cfg.Map())
	if err != nil {
		fmt.Fprintf(errOut, "Error: failed to encode config: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}

	w := stdout(cmd)
	if cfg.ConfigFile != "" {
		if _, err := fmt.Fprintf(w, "# loaded from %s\n", cfg.ConfigFile); err != nil {
			return err
		}
	}
	_, err = w.Write(data)
	return err
}
