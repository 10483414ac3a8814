// Package cmd implements the tsense command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/tokensense"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&calcCmd{}, "calculator")
	c.Register(&replayCmd{}, "calculator")
	c.Register(&sessionCmd{}, "calculator")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", getEnv("TSENSE_CURRENCY", tokensense.DefaultCurrency), "ISO code of the price currency (env TSENSE_CURRENCY)")
var verbose = flag.Bool("v", getEnvBool("TSENSE_VERBOSE", false), "log debug messages (env TSENSE_VERBOSE)")

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getEnvBool(k string, def bool) bool {
	b, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return def
	}
	return b
}

// newSession starts a session on the default form, in the app currency.
func newSession() (*tokensense.Session, error) {
	s, err := tokensense.NewDefaultState(*currency)
	if err != nil {
		return nil, err
	}
	return tokensense.NewSession(s), nil
}

// printMarkdown renders md for the terminal on the standard output.
func printMarkdown(md string) { printMarkdownTo(os.Stdout, md) }

// printMarkdownTo renders md for the terminal, falling back to the raw text.
func printMarkdownTo(w io.Writer, md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(w, md)
		return
	}
	fmt.Fprint(w, out)
}
