package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tokensense"
	"github.com/google/subcommands"
)

type calcCmd struct {
	supply   string
	burn     string
	price    string
	holdings string
	share    string
	out      outputFlags
}

func (*calcCmd) Name() string { return "calc" }
func (*calcCmd) Synopsis() string {
	return "compute circulating supply, market cap and holdings value"
}
func (*calcCmd) Usage() string {
	return `tsense calc [-supply <n>] [-burn <pct>] [-price <p>] [-holdings <n> | -share <pct>] [-json | -q <jsonpath>]

  Starts from the default form, applies the given values in the order
  supply, burn, price, then holdings or share, and prints the report.
`
}

func (c *calcCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.supply, "supply", "", "Initial token supply, grouping commas allowed.")
	f.StringVar(&c.burn, "burn", "", "Burn percentage, between 0 and 100.")
	f.StringVar(&c.price, "price", "", "Price per token.")
	f.StringVar(&c.holdings, "holdings", "", "Token holdings, grouping commas allowed.")
	f.StringVar(&c.share, "share", "", "Holdings as a percentage of the circulating supply.")
	f.BoolVar(&c.out.json, "json", false, "Print the state as JSON.")
	f.StringVar(&c.out.query, "q", "", "Print the result of a JSONPath query on the JSON state.")
}

// edits returns the edits of the flags set in f, in form order.
func (c *calcCmd) edits(f *flag.FlagSet) ([]tokensense.Edit, error) {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	if set["holdings"] && set["share"] {
		return nil, fmt.Errorf("-holdings and -share are mutually exclusive")
	}

	values := map[tokensense.Field]string{
		tokensense.FieldSupply:   c.supply,
		tokensense.FieldBurn:     c.burn,
		tokensense.FieldPrice:    c.price,
		tokensense.FieldHoldings: c.holdings,
		tokensense.FieldShare:    c.share,
	}
	var edits []tokensense.Edit
	for _, field := range tokensense.Fields {
		if set[string(field)] {
			edits = append(edits, tokensense.NewEdit(field, values[field]))
		}
	}
	return edits, nil
}

func (c *calcCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Error: unexpected arguments %q\n", f.Args())
		return subcommands.ExitUsageError
	}
	edits, err := c.edits(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	session, err := newSession()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if rejected := session.Replay(edits); len(rejected) > 0 {
		for _, err := range rejected {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitUsageError
	}

	if err := c.out.writeState(os.Stdout, session.State()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
