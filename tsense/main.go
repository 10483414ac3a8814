// Command tsense is a token burn calculator and holdings tracker.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/tokensense/cmd"
	"github.com/google/subcommands"
)

func main() {
	// When invoked by the shell for completion, this exits.
	cmd.Completion().Complete("tsense")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	cmd.SetupLogging()
	os.Exit(int(commander.Execute(context.Background())))
}
