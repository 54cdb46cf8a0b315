package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"kpifolio/renderer"
)

// poCmd holds the flags for the 'po' subcommand.
type poCmd struct{}

func (*poCmd) Name() string     { return "po" }
func (*poCmd) Synopsis() string { return "display the purchase order coverage report" }
func (*poCmd) Usage() string {
	return `kpr po

  Displays committed amounts, recorded spend, open commitments and the
  conversion ratio for every project with purchase orders or spend.
`
}

func (c *poCmd) SetFlags(f *flag.FlagSet) {}

func (c *poCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := DecodeSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PurchaseOrderMarkdown(s.NewPurchaseOrderReport()))
	return subcommands.ExitSuccess
}
