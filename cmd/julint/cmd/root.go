package cmd

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/wharflab/julint/internal/version"
)

const appDescription = `julint checks Julia source for common syntax slips (Python-isms,
malformed catch clauses, misplaced @test keywords, unbalanced
delimiters) and rewrites the ones it can fix safely.

Examples:
  julint lint script.jl
  julint lint --format json src/
  cat script.jl | julint lint -
  julint rules`

// NewApp creates the CLI application
func NewApp() *cli.Command {
	return &cli.Command{
		Name:           "julint",
		Usage:          "A linter and autofixer for Julia source",
		Version:        version.Version(),
		Description:    appDescription,
		DefaultCommand: "lint",
		Commands: []*cli.Command{
			lintCommand(),
			rulesCommand(),
			configCommand(),
			versionCommand(),
		},
	}
}

// Execute runs the CLI application
func Execute() error {
	return NewApp().Run(context.Background(), os.Args)
}

// stdout returns the root command's writer.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// stderr returns the root command's error writer.
func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}

// stdin returns the root command's reader.
func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}
