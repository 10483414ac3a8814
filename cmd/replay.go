package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/etnz/tokensense"
	"github.com/google/subcommands"
)

type replayCmd struct {
	file string
	out  outputFlags
}

func (*replayCmd) Name() string     { return "replay" }
func (*replayCmd) Synopsis() string { return "apply an edit script to the default form" }
func (*replayCmd) Usage() string {
	return `tsense replay [-f <file>] [-json | -q <jsonpath>]

  Reads edits in JSONL format, one {"field": ..., "value": ...} per line,
  applies them in order to the default form and prints the report.
  Rejected edits are logged and skipped.
`
}

func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Edit script file (JSONL), standard input if empty.")
	f.BoolVar(&c.out.json, "json", false, "Print the state as JSON.")
	f.StringVar(&c.out.query, "q", "", "Print the result of a JSONPath query on the JSON state.")
}

// readEdits decodes the edit script from the -f file or from stdin.
func (c *replayCmd) readEdits(stdin io.Reader) ([]tokensense.Edit, error) {
	if c.file == "" {
		return tokensense.DecodeEdits(stdin)
	}
	f, err := os.Open(c.file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tokensense.DecodeEdits(f)
}

func (c *replayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	edits, err := c.readEdits(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading edit script: %v\n", err)
		return subcommands.ExitFailure
	}

	session, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	for _, err := range session.Replay(edits) {
		slog.Warn("skipping edit", "err", err)
	}

	if err := c.out.writeState(os.Stdout, session.State()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
