package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"

	"github.com/wharflab/julint/internal/config"
	"github.com/wharflab/julint/internal/linter"
	"github.com/wharflab/julint/internal/rules"
)

func rulesCommand() *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List the lint rules in evaluation order",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file (default: auto-discover from the working directory)",
			},
		},
		Action: runRules,
	}
}

func runRules(_ context.Context, cmd *cli.Command) error {
	cfg, err := loadCommandConfig(cmd)
	if err != nil {
		fmt.Fprintf(stderr(cmd), "Error: %v\n", err)
		return cli.Exit("", ExitConfigError)
	}

	enabled := make(map[string]bool)
	for _, code := range linter.EnabledRuleCodes(nil, cfg) {
		enabled[code] = true
	}

	w := stdout(cmd)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Code", "Severity", "Category", "Fix", "Enabled"})

	for i, rule := range rules.All() {
		meta := rule.Metadata()
		severity := meta.DefaultSeverity.String()
		if override := cfg.Rules.GetSeverity(meta.Code); override != "" {
			severity = override
		}
		fix := ""
		if _, ok := rule.(rules.FixingRule); ok {
			fix = string(cfg.Rules.GetFixMode(meta.Code))
		}
		t.AppendRow(table.Row{i + 1, meta.Code, severity, meta.Category, fix, yesNo(enabled[meta.Code])})
	}

	t.Render()
	_, err = fmt.Fprintf(w, "(%d rules, %d enabled)\n", len(rules.All()), len(enabled))
	return err
}

// loadCommandConfig loads --config, or the config discovered from the
// working directory.
func loadCommandConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path = config.DiscoverFromDir(wd)
	}
	return config.LoadFromFile(path)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
