package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/etnz/tokensense/renderer"
	"github.com/google/subcommands"
)

type sessionCmd struct {
	report bool
}

func (*sessionCmd) Name() string     { return "session" }
func (*sessionCmd) Synopsis() string { return "open the interactive calculator" }
func (*sessionCmd) Usage() string {
	return `tsense session [-report]

  Opens the calculator in the terminal. Every keystroke updates the figures.
  See "tsense topic session" for the key bindings.
`
}

func (c *sessionCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.report, "report", false, "Print the report of the final state on exit.")
}

func (c *sessionCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	// rejections are shown in the form, log lines would garble the screen.
	session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	p := tea.NewProgram(newSessionModel(session), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.report {
		printMarkdown(renderer.StateMarkdown(session.State()))
	}
	return subcommands.ExitSuccess
}
